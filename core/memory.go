package core

import (
	"fmt"

	"github.com/sarchlab/m2sim/number"
)

// Memory is flat, byte-addressable storage with bounds-checked,
// width-aware reads and writes. Unlike the fixed Read8/16/32/64 pairs a
// hand-specialized emulator exposes, Memory takes the width as a
// parameter so the execution core can stay generic over all four sizes.
type Memory struct {
	data []byte
}

// NewMemory allocates zeroed memory of the given size in bytes.
func NewMemory(size int) *Memory {
	return &Memory{data: make([]byte, size)}
}

// Read returns the little-endian value of the given size at addr.
func (m *Memory) Read(addr uint64, size number.Size) (number.Number, error) {
	width := uint64(size.Bytes())
	if addr+width > uint64(len(m.data)) || addr+width < addr {
		return number.Number{}, newExecError(ErrMemoryRange, fmt.Errorf("read at %#x (width %d) exceeds memory of size %d", addr, width, len(m.data)))
	}
	return number.FromBytes(size, m.data[addr:addr+width])
}

// Write stores value's bytes at addr, little-endian.
func (m *Memory) Write(addr uint64, value number.Number) error {
	width := uint64(value.Size.Bytes())
	if addr+width > uint64(len(m.data)) || addr+width < addr {
		return newExecError(ErrMemoryRange, fmt.Errorf("write at %#x (width %d) exceeds memory of size %d", addr, width, len(m.data)))
	}
	copy(m.data[addr:addr+width], value.Bytes())
	return nil
}

// Len reports the memory's total size in bytes.
func (m *Memory) Len() int {
	return len(m.data)
}

// LoadAt copies program bytes into memory starting at addr, for callers
// that need to seed a program before running it. It is bounds-checked the
// same way Write is.
func (m *Memory) LoadAt(addr uint64, program []byte) error {
	end := addr + uint64(len(program))
	if end > uint64(len(m.data)) || end < addr {
		return newExecError(ErrMemoryRange, fmt.Errorf("load at %#x (length %d) exceeds memory of size %d", addr, len(program), len(m.data)))
	}
	copy(m.data[addr:end], program)
	return nil
}
