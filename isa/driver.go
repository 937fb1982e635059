package isa

// Driver holds the structured contents of the two mandatory driver bytes.
// All fields are unchecked: validity against a known extension/operation is
// the catalog's job, not the driver's.
type Driver struct {
	Extension          byte
	Operation          byte
	Synchronise        bool
	DynamicDestination bool
	Addressing         byte
	ImmediateExponent  byte
}

// NewDriver decodes the two driver bytes into a Driver.
func NewDriver(bytes [2]byte) Driver {
	driver0, driver1 := bytes[0], bytes[1]
	return Driver{
		Extension:          extractExtension(driver0),
		Operation:          extractOperation(driver1),
		Synchronise:        extractSynchronise(driver0),
		DynamicDestination: extractDynamicDestination(driver0),
		Addressing:         extractAddressing(driver1),
		ImmediateExponent:  extractImmediateExponent(driver1),
	}
}

// Encode packs the Driver back into its two-byte wire form.
func (d Driver) Encode() [2]byte {
	var driver0, driver1 byte

	driver0 = setExtension(driver0, d.Extension)
	driver0 = setSynchronise(driver0, d.Synchronise)
	driver0 = setDynamicDestination(driver0, d.DynamicDestination)

	driver1 = setOperation(driver1, d.Operation)
	driver1 = setAddressing(driver1, d.Addressing)
	driver1 = setImmediateExponent(driver1, d.ImmediateExponent)

	return [2]byte{driver0, driver1}
}
