package core

import (
	"fmt"

	"github.com/sarchlab/m2sim/isa"
	"github.com/sarchlab/m2sim/number"
)

// Core bundles the register file, memory, and ports one Execute call
// operates on. There is no scheduler and no internal goroutine: a caller
// drives execution one instruction at a time.
type Core struct {
	Regs   RegisterFile
	Memory *Memory
	Ports  *Ports
}

// NewCore builds a Core over freshly allocated memory and ports.
func NewCore(memorySize, portCount int) *Core {
	return &Core{
		Memory: NewMemory(memorySize),
		Ports:  NewPorts(portCount),
	}
}

// Execute runs one decoded instruction: it fetches the static and dynamic
// operands at the instruction's width, applies the operation's pure
// function, and — unless the operation suppresses its destination write
// (Cmp) — commits the result to wherever Destination names, then updates
// the flag register. A failure partway through (an out-of-range memory
// address) aborts before any state is written.
func (c *Core) Execute(inst isa.Instruction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newExecError(ErrMemoryRange, fmt.Errorf("recovered: %v", r))
		}
	}()

	if _, lookupErr := isa.Lookup(byte(inst.Operation.Extension), inst.Operation.Code); lookupErr != nil {
		return newExecError(ErrInvalidCode, lookupErr)
	}

	var a, b uint64
	if inst.Operands.Static != nil {
		a = c.Regs.Read(inst.Operands.Static.Register, inst.Width)
	}

	var dynAddr uint64
	var dynIsMemory bool
	if inst.Operands.Dynamic != nil {
		dyn := inst.Operands.Dynamic
		switch dyn.Addressing {
		case isa.AddressingRegister:
			b = c.Regs.Read(dyn.Register, inst.Width)
		case isa.AddressingConstant:
			if dyn.Immediate.Size != inst.Width {
				return newExecError(ErrWidthMismatch, fmt.Errorf(
					"constant operand is %d bytes, instruction width is %d bytes",
					dyn.Immediate.Size.Bytes(), inst.Width.Bytes()))
			}
			b = dyn.Immediate.Value
		case isa.AddressingMemoryAtRegister:
			dynIsMemory = true
			dynAddr = c.Regs.Read(dyn.Register, number.Quad)
			value, readErr := c.Memory.Read(dynAddr, inst.Width)
			if readErr != nil {
				return readErr
			}
			b = value.Value
		case isa.AddressingMemoryAtConstant:
			dynIsMemory = true
			dynAddr = dyn.Immediate.Value
			value, readErr := c.Memory.Read(dynAddr, inst.Width)
			if readErr != nil {
				return readErr
			}
			b = value.Value
		}
	}

	if inst.Operation.Presence == isa.PresenceNone {
		return nil
	}

	result, flags := inst.Operation.Apply(byte(inst.Width.Bytes()), a, b)

	if !inst.Operation.WritesDestination {
		c.Regs.Flags = flags
		return nil
	}

	switch inst.Destination {
	case isa.DestinationStatic:
		if inst.Operands.Static == nil {
			return newExecError(ErrDestination, fmt.Errorf("static destination without a static operand"))
		}
		c.Regs.Write(inst.Operands.Static.Register, inst.Width, result)
	case isa.DestinationDynamic:
		dyn := inst.Operands.Dynamic
		if dyn == nil {
			return newExecError(ErrDestination, fmt.Errorf("dynamic destination without a dynamic operand"))
		}
		if dynIsMemory {
			if writeErr := c.Memory.Write(dynAddr, number.New(inst.Width, result)); writeErr != nil {
				return writeErr
			}
		} else {
			c.Regs.Write(dyn.Register, inst.Width, result)
		}
	}

	c.Regs.Flags = flags
	return nil
}
