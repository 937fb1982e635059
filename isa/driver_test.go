package isa_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/m2sim/isa"
)

var _ = Describe("Driver", func() {
	It("decodes both driver bytes", func() {
		driver := isa.NewDriver([2]byte{0b001010_0_1, 0b1111_10_01})

		Expect(driver.Extension).To(Equal(byte(0b001010)))
		Expect(driver.Synchronise).To(BeFalse())
		Expect(driver.DynamicDestination).To(BeTrue())
		Expect(driver.Operation).To(Equal(byte(0b1111)))
		Expect(driver.Addressing).To(Equal(byte(0b10)))
		Expect(driver.ImmediateExponent).To(Equal(byte(0b01)))
	})

	It("round-trips through decode and encode", func() {
		original := isa.Driver{
			Extension:          0b101010,
			Operation:          0b1100,
			Synchronise:        true,
			DynamicDestination: false,
			Addressing:         0b11,
			ImmediateExponent:  0b10,
		}

		encoded := original.Encode()
		decoded := isa.NewDriver(encoded)
		Expect(decoded).To(Equal(original))
	})
})
