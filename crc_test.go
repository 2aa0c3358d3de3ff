package codec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/bangzek/modbus-codec"
)

var _ = Describe("Checksum", func() {
	DescribeTable("frames",
		func(b []byte, cs uint16) {
			Expect(Checksum(b)).To(Equal(cs))
			Expect(CheckChecksum(b, cs)).To(BeTrue())
			Expect(CheckChecksum(b, cs^1)).To(BeFalse())
			Expect(AppendChecksum(b)).To(Equal(
				append(append([]byte{}, b...), byte(cs), byte(cs>>8))))
		},
		Entry("read holding registers", []byte{1, 3, 0, 0, 0, 2}, uint16(0x0BC4)),
		Entry("registers reply", []byte{1, 3, 2, 0x27, 0xC5}, uint16(0xE763)),
		Entry("exception reply", []byte{3, 0x81, 4}, uint16(0x53E0)),
		Entry("write coils", []byte{0x11, 0x0F, 0, 0x13, 0, 0x0A, 2, 0xCD, 1},
			uint16(0x0BBF)),
	)

	It("sets the last 2 bytes", func() {
		b := []byte{3, 1, 0, 2, 0, 1, 0, 0}
		SetChecksum(b)
		Expect(b).To(Equal([]byte{3, 1, 0, 2, 0, 1, 0x5D, 0xE8}))
	})

	It("doesn't touch the input", func() {
		b := make([]byte, 6, 8)
		copy(b, []byte{1, 3, 0, 0, 0, 2})
		c := AppendChecksum(b)
		Expect(b).To(HaveLen(6))
		Expect(c).To(Equal([]byte{1, 3, 0, 0, 0, 2, 0xC4, 0x0B}))
	})
})
