package isa

import "fmt"

// Flags holds the four condition bits an arithmetic or logic operation may
// update: Carry (unsigned overflow), Overflow (signed overflow), Zero, and
// Negative.
type Flags struct {
	Carry    bool
	Overflow bool
	Zero     bool
	Negative bool
}

// Extension names one of the closed, enumerable 6-bit extension codes. The
// catalog is fixed at compile time; there is no runtime registration.
type Extension byte

const (
	ExtensionArithmetic Extension = 0
	ExtensionLogic      Extension = 1
)

func (e Extension) String() string {
	switch e {
	case ExtensionArithmetic:
		return "arithmetic"
	case ExtensionLogic:
		return "logic"
	default:
		return fmt.Sprintf("extension(%d)", byte(e))
	}
}

// Apply computes an operation's result and resulting flags at the given
// width. For a unary operation (Not) only a is meaningful; b is ignored.
// Apply is pure: it never touches memory, registers, or ports.
type Apply func(width byte, a, b uint64) (result uint64, flags Flags)

// Operation describes one entry in an extension's operation table: its
// name, which operands it declares, whether its result is written back to
// the destination (false for comparisons and for the no-operand nop), and
// its pure semantics.
type Operation struct {
	Extension         Extension
	Code              byte
	Name              string
	Presence          OperandsPresence
	WritesDestination bool
	Apply             Apply
}

// InvalidCodeError is returned when an extension or operation code does
// not name an entry in the catalog.
type InvalidCodeError struct {
	Extension byte
	Operation byte
}

func (e InvalidCodeError) Error() string {
	return fmt.Sprintf("isa: invalid code: extension=%#02x operation=%#02x", e.Extension, e.Operation)
}

var arithmeticTable = [...]Operation{
	{Extension: ExtensionArithmetic, Code: 0x0, Name: "add", Presence: PresenceBoth, WritesDestination: true, Apply: applyAdd},
	{Extension: ExtensionArithmetic, Code: 0x1, Name: "sub", Presence: PresenceBoth, WritesDestination: true, Apply: applySub},
	{Extension: ExtensionArithmetic, Code: 0x2, Name: "mul", Presence: PresenceBoth, WritesDestination: true, Apply: applyMul},
	{Extension: ExtensionArithmetic, Code: 0x3, Name: "cmp", Presence: PresenceBoth, WritesDestination: false, Apply: applySub},
	{Extension: ExtensionArithmetic, Code: 0x4, Name: "nop", Presence: PresenceNone, WritesDestination: false, Apply: applyNop},
}

var logicTable = [...]Operation{
	{Extension: ExtensionLogic, Code: 0x0, Name: "and", Presence: PresenceBoth, WritesDestination: true, Apply: applyAnd},
	{Extension: ExtensionLogic, Code: 0x1, Name: "or", Presence: PresenceBoth, WritesDestination: true, Apply: applyOr},
	{Extension: ExtensionLogic, Code: 0x2, Name: "xor", Presence: PresenceBoth, WritesDestination: true, Apply: applyXor},
	{Extension: ExtensionLogic, Code: 0x3, Name: "not", Presence: PresenceStaticOnly, WritesDestination: true, Apply: applyNot},
}

// Lookup resolves an extension code and an operation code into a catalog
// Operation, returning an InvalidCodeError when either is out of range.
func Lookup(extensionCode, operationCode byte) (Operation, error) {
	var table []Operation
	switch Extension(extensionCode) {
	case ExtensionArithmetic:
		table = arithmeticTable[:]
	case ExtensionLogic:
		table = logicTable[:]
	default:
		return Operation{}, InvalidCodeError{Extension: extensionCode, Operation: operationCode}
	}

	if int(operationCode) >= len(table) {
		return Operation{}, InvalidCodeError{Extension: extensionCode, Operation: operationCode}
	}
	return table[operationCode], nil
}

func widthMask(width byte) uint64 {
	bits := uint(width) * 8
	if bits == 0 || bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

func signBit(width byte, value uint64) bool {
	bits := uint(width) * 8
	if bits == 0 || bits >= 64 {
		return (value >> 63) == 1
	}
	return (value>>(bits-1))&1 == 1
}

func applyAdd(width byte, a, b uint64) (uint64, Flags) {
	mask := widthMask(width)
	a, b = a&mask, b&mask
	result := (a + b) & mask
	flags := Flags{
		Carry:    result < a,
		Zero:     result == 0,
		Negative: signBit(width, result),
	}
	flags.Overflow = signBit(width, a) == signBit(width, b) && signBit(width, a) != signBit(width, result)
	return result, flags
}

func applySub(width byte, a, b uint64) (uint64, Flags) {
	mask := widthMask(width)
	a, b = a&mask, b&mask
	result := (a - b) & mask
	flags := Flags{
		Carry:    a >= b,
		Zero:     result == 0,
		Negative: signBit(width, result),
	}
	flags.Overflow = signBit(width, a) != signBit(width, b) && signBit(width, b) == signBit(width, result)
	return result, flags
}

func applyMul(width byte, a, b uint64) (uint64, Flags) {
	mask := widthMask(width)
	result := (a & mask) * (b & mask) & mask
	return result, Flags{
		Zero:     result == 0,
		Negative: signBit(width, result),
	}
}

func applyAnd(width byte, a, b uint64) (uint64, Flags) {
	return logicResult(width, a&b)
}

func applyOr(width byte, a, b uint64) (uint64, Flags) {
	return logicResult(width, a|b)
}

func applyXor(width byte, a, b uint64) (uint64, Flags) {
	return logicResult(width, a^b)
}

func applyNot(width byte, a, _ uint64) (uint64, Flags) {
	return logicResult(width, ^a)
}

// applyNop backs the Arithmetic extension's no-operand entry; it has
// nothing to compute and no flags to set.
func applyNop(_ byte, _, _ uint64) (uint64, Flags) {
	return 0, Flags{}
}

func logicResult(width byte, value uint64) (uint64, Flags) {
	mask := widthMask(width)
	result := value & mask
	return result, Flags{
		Zero:     result == 0,
		Negative: signBit(width, result),
	}
}
