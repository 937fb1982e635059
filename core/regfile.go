package core

import (
	"github.com/sarchlab/m2sim/isa"
	"github.com/sarchlab/m2sim/number"
)

// registerCount is the number of general-purpose registers the data model
// names (spec.md's eight GP registers).
const registerCount = 8

// RegisterFile holds the eight general-purpose registers, the flag bits,
// and the program counter.
type RegisterFile struct {
	X     [registerCount]uint64
	Flags isa.Flags
	PC    uint64
}

// Read returns register reg's value truncated to width.
func (r *RegisterFile) Read(reg byte, width number.Size) uint64 {
	return r.X[reg] & widthMask(width)
}

// Write stores value into register reg at width, zero-extending: bits
// above width are cleared rather than left with their previous contents,
// matching a narrow store on a wider register file.
func (r *RegisterFile) Write(reg byte, width number.Size, value uint64) {
	r.X[reg] = value & widthMask(width)
}

func widthMask(width number.Size) uint64 {
	bits := uint(width.Bytes()) * 8
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}
