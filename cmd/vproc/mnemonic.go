package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/m2sim/isa"
	"github.com/sarchlab/m2sim/number"
)

var sizeNames = map[string]number.Size{
	"byte": number.Byte,
	"word": number.Word,
	"dual": number.Dual,
	"quad": number.Quad,
}

func sizeName(size number.Size) string {
	for name, s := range sizeNames {
		if s == size {
			return name
		}
	}
	return "byte"
}

var extensionNames = map[string]isa.Extension{
	"arithmetic": isa.ExtensionArithmetic,
	"logic":      isa.ExtensionLogic,
}

func extensionName(extension isa.Extension) string {
	for name, e := range extensionNames {
		if e == extension {
			return name
		}
	}
	return "arithmetic"
}

var addressingNames = map[string]isa.Addressing{
	"register":  isa.AddressingRegister,
	"constant":  isa.AddressingConstant,
	"memreg":    isa.AddressingMemoryAtRegister,
	"memconst":  isa.AddressingMemoryAtConstant,
}

func addressingName(addressing isa.Addressing) string {
	for name, a := range addressingNames {
		if a == addressing {
			return name
		}
	}
	return "register"
}

// parseLine turns one mnemonic line into an Instruction. The grammar is
// deliberately small:
//
//	<extension>.<operation> [<width> <destination> <static> <mode> <value>]
//
// A line naming an OperandsPresence::None operation stops after the
// mnemonic. A line naming a StaticOnly operation stops after <static>.
func parseLine(line string) (isa.Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return isa.Instruction{}, fmt.Errorf("vproc: empty line")
	}

	mnemonic := strings.SplitN(fields[0], ".", 2)
	if len(mnemonic) != 2 {
		return isa.Instruction{}, fmt.Errorf("vproc: expected <extension>.<operation>, got %q", fields[0])
	}

	extension, ok := extensionNames[mnemonic[0]]
	if !ok {
		return isa.Instruction{}, fmt.Errorf("vproc: unknown extension %q", mnemonic[0])
	}

	var op isa.Operation
	found := false
	for code := byte(0); code < 16; code++ {
		candidate, err := isa.Lookup(byte(extension), code)
		if err != nil {
			continue
		}
		if candidate.Name == mnemonic[1] {
			op, found = candidate, true
			break
		}
	}
	if !found {
		return isa.Instruction{}, fmt.Errorf("vproc: unknown operation %q in extension %q", mnemonic[1], mnemonic[0])
	}

	inst := isa.Instruction{Operation: op, Width: number.Byte}
	if op.Presence == isa.PresenceNone {
		return inst, nil
	}

	if len(fields) < 4 {
		return isa.Instruction{}, fmt.Errorf("vproc: %q needs width, destination, and a static register", fields[0])
	}

	size, ok := sizeNames[fields[1]]
	if !ok {
		return isa.Instruction{}, fmt.Errorf("vproc: unknown width %q", fields[1])
	}
	inst.Width = size

	switch fields[2] {
	case "static":
		inst.Destination = isa.DestinationStatic
	case "dynamic":
		inst.Destination = isa.DestinationDynamic
	default:
		return isa.Instruction{}, fmt.Errorf("vproc: unknown destination %q", fields[2])
	}

	staticReg, err := strconv.ParseUint(fields[3], 10, 8)
	if err != nil {
		return isa.Instruction{}, fmt.Errorf("vproc: bad static register %q: %w", fields[3], err)
	}
	operands := isa.Operands{Presence: op.Presence}
	if op.Presence.HasStatic() {
		operands.Static = &isa.Static{Register: byte(staticReg)}
	}

	if op.Presence.HasDynamic() {
		if len(fields) < 6 {
			return isa.Instruction{}, fmt.Errorf("vproc: %q needs a dynamic addressing mode and value", fields[0])
		}
		addressing, ok := addressingNames[fields[4]]
		if !ok {
			return isa.Instruction{}, fmt.Errorf("vproc: unknown addressing mode %q", fields[4])
		}
		dynamic := isa.Dynamic{Addressing: addressing}
		if addressing.IsConstant() {
			value, err := strconv.ParseUint(fields[5], 10, 64)
			if err != nil {
				return isa.Instruction{}, fmt.Errorf("vproc: bad immediate %q: %w", fields[5], err)
			}
			dynamic.Immediate = number.New(size, value)
		} else {
			reg, err := strconv.ParseUint(fields[5], 10, 8)
			if err != nil {
				return isa.Instruction{}, fmt.Errorf("vproc: bad dynamic register %q: %w", fields[5], err)
			}
			dynamic.Register = byte(reg)
		}
		operands.Dynamic = &dynamic
	}

	inst.Operands = operands
	return inst, nil
}

// formatLine is parseLine's inverse, used by the disassemble command.
func formatLine(inst isa.Instruction) string {
	mnemonic := fmt.Sprintf("%s.%s", extensionName(inst.Operation.Extension), inst.Operation.Name)
	if inst.Operation.Presence == isa.PresenceNone {
		return mnemonic
	}

	destination := "static"
	if inst.Destination == isa.DestinationDynamic {
		destination = "dynamic"
	}

	staticReg := byte(0)
	if inst.Operands.Static != nil {
		staticReg = inst.Operands.Static.Register
	}

	line := fmt.Sprintf("%s %s %s %d", mnemonic, sizeName(inst.Width), destination, staticReg)

	if inst.Operands.Dynamic != nil {
		dyn := inst.Operands.Dynamic
		value := fmt.Sprintf("%d", dyn.Register)
		if dyn.Addressing.IsConstant() {
			value = fmt.Sprintf("%d", dyn.Immediate.Value)
		}
		line += fmt.Sprintf(" %s %s", addressingName(dyn.Addressing), value)
	}

	return line
}
