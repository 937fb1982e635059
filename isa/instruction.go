package isa

import (
	"fmt"

	"github.com/sarchlab/m2sim/number"
)

// Instruction is the fully decoded form of one encoded instruction: the
// resolved operation, the operating width, the destination, and the
// operands the operation declared.
type Instruction struct {
	Operation   Operation
	Width       number.Size
	Destination Destination
	Synchronise bool
	Operands    Operands
}

// Decode reads one instruction from src: the two driver bytes, then —
// unless the resolved operation declares OperandsPresence::None — the
// registers byte and any immediate bytes its addressing mode calls for.
//
// Decode enforces destination/addressing consistency (invariant: a
// dynamic destination cannot point at constant addressing) before
// returning.
func Decode(src Source) (Instruction, error) {
	driverBytes, err := src.ReadN(2)
	if err != nil {
		return Instruction{}, newDecodeError(ErrLength, err)
	}
	driver := NewDriver([2]byte{driverBytes[0], driverBytes[1]})

	op, err := Lookup(driver.Extension, driver.Operation)
	if err != nil {
		return Instruction{}, newDecodeError(ErrInvalidCode, err)
	}

	destination := DestinationStatic
	if driver.DynamicDestination {
		destination = DestinationDynamic
	}

	if op.Presence == PresenceNone {
		return Instruction{
			Operation:   op,
			Width:       number.Byte,
			Destination: destination,
			Synchronise: driver.Synchronise,
		}, nil
	}

	registersByte, err := src.NextByte()
	if err != nil {
		return Instruction{}, newDecodeError(ErrLength, err)
	}
	registers := NewRegisters(registersByte)
	width := number.SizeFromExponent(registers.Width)

	operands, err := decodeOperands(src, op.Presence, registers, driver, width)
	if err != nil {
		return Instruction{}, err
	}

	if destination == DestinationDynamic {
		if operands.Dynamic == nil {
			return Instruction{}, newDecodeError(ErrDestination, fmt.Errorf("dynamic destination but no dynamic operand present"))
		}
		if operands.Dynamic.Addressing == AddressingConstant {
			return Instruction{}, newDecodeError(ErrDestination, fmt.Errorf("dynamic destination cannot use constant addressing"))
		}
	}
	if destination == DestinationStatic && operands.Static == nil {
		return Instruction{}, newDecodeError(ErrDestination, fmt.Errorf("static destination but no static operand present"))
	}

	return Instruction{
		Operation:   op,
		Width:       width,
		Destination: destination,
		Synchronise: driver.Synchronise,
		Operands:    operands,
	}, nil
}

func decodeOperands(src Source, presence OperandsPresence, registers Registers, driver Driver, width number.Size) (Operands, error) {
	operands := Operands{Presence: presence}

	if presence.HasStatic() {
		operands.Static = &Static{Register: registers.Static}
	}

	if presence.HasDynamic() {
		addressing := Addressing(driver.Addressing)
		dynamic := Dynamic{Addressing: addressing}

		switch {
		case addressing.IsConstant():
			immWidth := number.SizeFromExponent(driver.ImmediateExponent)
			raw, err := src.ReadN(immWidth.Bytes())
			if err != nil {
				return Operands{}, newDecodeError(ErrLength, err)
			}
			imm, err := number.FromBytes(immWidth, raw)
			if err != nil {
				return Operands{}, newDecodeError(ErrLength, err)
			}
			dynamic.Immediate = imm
		default:
			dynamic.Register = registers.Dynamic
		}

		operands.Dynamic = &dynamic
	}

	return operands, nil
}

// Encode packs an Instruction back into its variable-length wire form: the
// driver bytes, then — if the operation has any operands — the registers
// byte followed by any immediate bytes the dynamic operand's addressing
// mode calls for.
func Encode(inst Instruction) []byte {
	driver := Driver{
		Extension:          byte(inst.Operation.Extension),
		Operation:          inst.Operation.Code,
		Synchronise:        inst.Synchronise,
		DynamicDestination: inst.Destination == DestinationDynamic,
	}

	if inst.Operation.Presence == PresenceNone {
		driverBytes := driver.Encode()
		return driverBytes[:]
	}

	registers := Registers{Width: inst.Width.Exponent()}

	var immediate []byte
	if inst.Operands.Static != nil {
		registers.Static = inst.Operands.Static.Register
	}
	if inst.Operands.Dynamic != nil {
		dynamic := inst.Operands.Dynamic
		driver.Addressing = byte(dynamic.Addressing)
		if dynamic.Addressing.IsConstant() {
			driver.ImmediateExponent = dynamic.Immediate.Size.Exponent()
			immediate = dynamic.Immediate.Bytes()
		} else {
			registers.Dynamic = dynamic.Register
		}
	}

	driverBytes := driver.Encode()
	encoded := make([]byte, 0, 2+1+len(immediate))
	encoded = append(encoded, driverBytes[:]...)
	encoded = append(encoded, registers.Encode())
	encoded = append(encoded, immediate...)
	return encoded
}
