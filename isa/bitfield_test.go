package isa

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("bitfield extract/set", func() {
	It("extracts the extension, synchronise, and dynamic-destination fields", func() {
		Expect(extractExtension(0b001010_0_1)).To(Equal(byte(0b001010)))
		Expect(extractSynchronise(0b001010_0_1)).To(BeFalse())
		Expect(extractDynamicDestination(0b001010_0_1)).To(BeTrue())
	})

	It("extracts the operation, addressing, and immediate-exponent fields", func() {
		Expect(extractOperation(0b1111_10_01)).To(Equal(byte(0b1111)))
		Expect(extractAddressing(0b1111_10_01)).To(Equal(byte(0b10)))
		Expect(extractImmediateExponent(0b1111_10_01)).To(Equal(byte(0b01)))
	})

	It("extracts the width, static, and dynamic register fields", func() {
		Expect(extractWidth(0b10_000_001)).To(Equal(byte(0b10)))
		Expect(extractStaticOperand(0b10_000_001)).To(Equal(byte(0)))
		Expect(extractDynamicOperand(0b10_000_001)).To(Equal(byte(1)))
	})

	It("is total: set then extract returns the masked value for every byte and field value", func() {
		setters := []struct {
			name   string
			set    func(byte, byte) byte
			get    func(byte) byte
			mask   byte
		}{
			{"extension", setExtension, extractExtension, driver0ExtensionMask},
			{"operation", setOperation, extractOperation, driver1OperationMask},
			{"addressing", setAddressing, extractAddressing, driver1AddressingMask},
			{"immediateExponent", setImmediateExponent, extractImmediateExponent, driver1ImmediateExponentMask},
			{"width", setWidth, extractWidth, registersWidthMask},
			{"static", setStaticOperand, extractStaticOperand, registersStaticMask},
			{"dynamic", setDynamicOperand, extractDynamicOperand, registersDynamicMask},
		}

		for _, s := range setters {
			for u := 0; u < 256; u++ {
				for v := 0; v < 256; v++ {
					got := s.get(s.set(byte(u), byte(v)))
					Expect(got).To(Equal(byte(v) & s.mask), "field %s u=%d v=%d", s.name, u, v)
				}
			}
		}
	})

	It("set preserves bits outside the target field", func() {
		before := byte(0b10110110)
		after := setOperation(before, 0b1010)
		Expect(after &^ (driver1OperationMask << driver1OperationShift)).To(Equal(before &^ (driver1OperationMask << driver1OperationShift)))
	})
})
