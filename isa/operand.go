package isa

import "github.com/sarchlab/m2sim/number"

// Addressing names the four ways the dynamic operand can resolve to a
// value, coded in the two addressing bits of driver byte 1.
type Addressing byte

const (
	AddressingRegister         Addressing = 0
	AddressingMemoryAtRegister Addressing = 1
	AddressingConstant         Addressing = 2
	AddressingMemoryAtConstant Addressing = 3
)

func (a Addressing) String() string {
	switch a {
	case AddressingRegister:
		return "register"
	case AddressingConstant:
		return "constant"
	case AddressingMemoryAtRegister:
		return "memory-at-register"
	case AddressingMemoryAtConstant:
		return "memory-at-constant"
	default:
		return "addressing(invalid)"
	}
}

// IsMemory reports whether this addressing mode dereferences memory rather
// than naming a register or carrying an immediate directly.
func (a Addressing) IsMemory() bool {
	return a == AddressingMemoryAtRegister || a == AddressingMemoryAtConstant
}

// IsConstant reports whether this addressing mode carries an encoded
// immediate (the operand value itself for Constant, the memory address for
// MemoryAtConstant) rather than a register index.
func (a Addressing) IsConstant() bool {
	return a == AddressingConstant || a == AddressingMemoryAtConstant
}

// Static is the always-register-indexed operand: it is read directly from
// the register file by index, with no addressing mode of its own.
type Static struct {
	Register byte
}

// Dynamic is the addressing-mode-dependent operand. Exactly one of its
// fields is meaningful, chosen by Addressing.
type Dynamic struct {
	Addressing Addressing
	Register   byte          // valid when Addressing is Register or MemoryAtRegister
	Immediate  number.Number // valid when Addressing is Constant or MemoryAtConstant
}

// Destination names which operand — static or dynamic — receives the
// result of a computation.
type Destination byte

const (
	DestinationStatic Destination = iota
	DestinationDynamic
)

func (d Destination) String() string {
	if d == DestinationDynamic {
		return "dynamic"
	}
	return "static"
}

// OperandsPresence enumerates which operands an operation declares it
// reads, fixed per operation in the catalog rather than chosen at decode
// time.
type OperandsPresence byte

const (
	PresenceNone OperandsPresence = iota
	PresenceStaticOnly
	PresenceDynamicOnly
	PresenceBoth
)

// HasStatic reports whether this presence includes the static operand.
func (p OperandsPresence) HasStatic() bool {
	return p == PresenceStaticOnly || p == PresenceBoth
}

// HasDynamic reports whether this presence includes the dynamic operand.
func (p OperandsPresence) HasDynamic() bool {
	return p == PresenceDynamicOnly || p == PresenceBoth
}

// Operands carries the operands an instruction was decoded with, shaped by
// its operation's OperandsPresence. Exactly the fields that presence calls
// for are populated.
type Operands struct {
	Presence OperandsPresence
	Static   *Static
	Dynamic  *Dynamic
}
