package codec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/bangzek/modbus-codec"
)

var _ = Describe("Function", func() {
	DescribeTable("known",
		func(code byte, f Function, read bool, s string) {
			g, isException, err := LookupFunction(code)
			Expect(err).ToNot(HaveOccurred())
			Expect(g).To(Equal(f))
			Expect(isException).To(BeFalse())
			Expect(f.Code()).To(Equal(code))
			Expect(f.IsRead()).To(Equal(read))
			Expect(f.String()).To(Equal(s))

			g, isException, err = LookupFunction(code | 0x80)
			Expect(err).ToNot(HaveOccurred())
			Expect(g).To(Equal(f))
			Expect(isException).To(BeTrue())
		},
		Entry(nil, byte(0x01), ReadCoils, true, "ReadCoils"),
		Entry(nil, byte(0x02), ReadDiscreteInputs, true, "ReadDiscreteInputs"),
		Entry(nil, byte(0x03), ReadHoldingRegisters, true, "ReadHoldingRegisters"),
		Entry(nil, byte(0x04), ReadInputRegisters, true, "ReadInputRegisters"),
		Entry(nil, byte(0x05), WriteSingleCoil, false, "WriteSingleCoil"),
		Entry(nil, byte(0x06), WriteSingleRegister, false, "WriteSingleRegister"),
		Entry(nil, byte(0x0F), WriteMultipleCoils, false, "WriteMultipleCoils"),
		Entry(nil, byte(0x10), WriteMultipleRegisters, false, "WriteMultipleRegisters"),
	)

	DescribeTable("unknown",
		func(code byte, msg string) {
			_, _, err := LookupFunction(code)
			Expect(err).To(MatchError(InvalidFunctionErr(code)))
			Expect(err).To(MatchError(ErrInvalidFrame))
			Expect(err).To(MatchError(msg))
		},
		Entry(nil, byte(0x00), "invalid function code: 00"),
		Entry(nil, byte(0x07), "invalid function code: 07"),
		Entry(nil, byte(0x2B), "invalid function code: 2B"),
		Entry(nil, byte(0x87), "invalid function code: 87"),
	)

	It("has ERR string", func() {
		Expect(Function(0x07).String()).To(Equal("ERR:07"))
	})
})
