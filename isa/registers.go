package isa

// Registers holds the structured contents of the optional registers byte:
// the operating width and the two operand register indices.
type Registers struct {
	Width   byte
	Static  byte
	Dynamic byte
}

// NewRegisters decodes the registers byte.
func NewRegisters(encoded byte) Registers {
	return Registers{
		Width:   extractWidth(encoded),
		Static:  extractStaticOperand(encoded),
		Dynamic: extractDynamicOperand(encoded),
	}
}

// Encode packs the Registers back into its one-byte wire form.
func (r Registers) Encode() byte {
	var encoded byte
	encoded = setWidth(encoded, r.Width)
	encoded = setStaticOperand(encoded, r.Static)
	encoded = setDynamicOperand(encoded, r.Dynamic)
	return encoded
}
