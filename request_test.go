package codec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/bangzek/modbus-codec"
)

var _ = Describe("Request", func() {
	DescribeTable("Encode",
		func(req Request, f Function, bodyLen int, tx string, b []byte) {
			h := req.Head()
			Expect(h.Function).To(Equal(f))
			Expect(h.Version).To(Equal(RTU))
			Expect(h.Tid).To(BeZero())
			Expect(h.IsException).To(BeFalse())
			Expect(h.BodyLen).To(BeEquivalentTo(bodyLen))
			Expect(h.Unit).To(Equal(b[0]))
			Expect(req.Tx()).To(Equal(tx))
			Expect(req.String()).To(Equal(tx))
			Expect(Encode(req)).To(Equal(b))
		},
		Entry("read coils", NewReadCoilsCmd(3, 2, 1),
			ReadCoils, 4, "3<-RC  2:1",
			[]byte{3, 1, 0, 2, 0, 1, 0x5D, 0xE8}),
		Entry("read discrete inputs", NewReadDInputsCmd(3, 2, 1),
			ReadDiscreteInputs, 4, "3<-RDI 2:1",
			[]byte{3, 2, 0, 2, 0, 1, 0x19, 0xE8}),
		Entry("read holding registers", NewReadHRegsCmd(1, 0, 2),
			ReadHoldingRegisters, 4, "1<-RHR 0:2",
			[]byte{1, 3, 0, 0, 0, 2, 0xC4, 0x0B}),
		Entry("read input registers", NewReadIRegsCmd(0x11, 8, 2),
			ReadInputRegisters, 4, "17<-RIR 8:2",
			[]byte{0x11, 4, 0, 8, 0, 2, 0xF2, 0x99}),
		Entry("write coil", NewWriteCoilCmd(0, 258, true),
			WriteSingleCoil, 4, "0<-W1C 258 true",
			[]byte{0, 5, 1, 2, 0xFF, 0, 0x2D, 0xD7}),
		Entry("write coil off", NewWriteCoilCmd(1, 0, false),
			WriteSingleCoil, 4, "1<-W1C 0 false",
			[]byte{1, 5, 0, 0, 0, 0, 0xCD, 0xCA}),
		Entry("write register", NewWriteRegCmd(0x11, 4, 0xABCD),
			WriteSingleRegister, 4, "17<-W1R 4 43981",
			[]byte{0x11, 6, 0, 4, 0xAB, 0xCD, 0x74, 0x3E}),
		Entry("write coils", NewWriteCoilsCmd(0x11, 0x13, []bool{
			true, false, true, true, false, false, true, true, true, false,
		}),
			WriteMultipleCoils, 7, "17<-WC  19:10[1 0 1 1 0  0 1 1 1 0]",
			[]byte{0x11, 0x0F, 0, 0x13, 0, 0x0A, 2, 0xCD, 1, 0xBF, 0x0B}),
		Entry("write registers", NewWriteRegsCmd(0x11, 1, []uint16{10, 258}),
			WriteMultipleRegisters, 9, "17<-WR  1:2[   10   258]",
			[]byte{0x11, 0x10, 0, 1, 0, 2, 4, 0, 0x0A, 1, 2, 0xC6, 0xF0}),
	)

	It("appends after existing bytes", func() {
		b := AppendEncode([]byte{0xAA}, NewReadHRegsCmd(1, 0, 2))
		Expect(b).To(Equal([]byte{0xAA, 1, 3, 0, 0, 0, 2, 0xC4, 0x0B}))
	})

	Context("AsTCP", func() {
		rtu := NewReadHRegsCmd(1, 0, 2)
		tcp := AsTCP(rtu, 5)

		It("has TCP head", func() {
			Expect(tcp.Head()).To(Equal(Head{
				Tid:      5,
				Unit:     1,
				Function: ReadHoldingRegisters,
				BodyLen:  4,
				Version:  TCP,
			}))
		})
		It("encodes MBAP without checksum", func() {
			Expect(Encode(tcp)).To(Equal([]byte{
				0, 5, 0, 0, 0, 6, 1, 3, 0, 0, 0, 2,
			}))
		})
		It("leaves the request unchanged", func() {
			Expect(rtu.Head().Version).To(Equal(RTU))
			Expect(Encode(rtu)).To(HaveLen(8))
		})
		It("keeps the type", func() {
			Expect(tcp).To(BeAssignableToTypeOf(rtu))
		})
	})

	Context("accessors", func() {
		It("has read fields", func() {
			cmd := NewReadCoilsCmd(4, 321, 5)
			Expect(cmd.DevAddr()).To(Equal(byte(4)))
			Expect(cmd.Addr()).To(Equal(uint16(321)))
			Expect(cmd.Count()).To(Equal(5))
			Expect(cmd.Body()).To(Equal(ReadRequest{Addr: 321, Count: 5}))
		})
		It("has write coil fields", func() {
			cmd := NewWriteCoilCmd(1, 7, true)
			Expect(cmd.Coil()).To(BeTrue())
			Expect(cmd.Body()).To(Equal(WriteSingleRequest{Addr: 7, Value: 0xFF00}))
		})
		It("has write coils fields", func() {
			cmd := NewWriteCoilsCmd(1, 7, []bool{false, true, true})
			Expect(cmd.Count()).To(Equal(3))
			Expect(cmd.ByteCount()).To(Equal(1))
			Expect(cmd.Coil(0)).To(BeFalse())
			Expect(cmd.Coil(2)).To(BeTrue())
			Expect(func() {
				cmd.Coil(3)
			}).Should(PanicWith("invalid i: 3"))
		})
		It("has write registers fields", func() {
			cmd := NewWriteRegsCmd(1, 7, []uint16{1, 65535})
			Expect(cmd.Count()).To(Equal(2))
			Expect(cmd.ByteCount()).To(Equal(4))
			Expect(cmd.Reg(1)).To(Equal(uint16(65535)))
			Expect(cmd.Body().Values).To(Equal([]byte{0, 1, 0xFF, 0xFF}))
		})
	})

	Describe("Invalid New", func() {
		It("can't do no broadcast", func() {
			Expect(func() {
				NewReadCoilsCmd(0, 2, 1)
			}).Should(PanicWith("could not broadcast ReadCoilsCmd"))
			Expect(func() {
				NewReadIRegsCmd(0, 2, 1)
			}).Should(PanicWith("could not broadcast ReadIRegsCmd"))
		})
		It("can't read zero", func() {
			Expect(func() {
				NewReadDInputsCmd(1, 2, 0)
			}).Should(PanicWith("zero count"))
		})
		It("can't read beyond the limit", func() {
			Expect(func() {
				NewReadCoilsCmd(1, 2, 2001)
			}).Should(PanicWith("count too many: 2001"))
			Expect(func() {
				NewReadHRegsCmd(1, 2, 126)
			}).Should(PanicWith("count too many: 126"))
		})
		It("can't overflow address", func() {
			Expect(func() {
				NewReadCoilsCmd(1, 63537, 2000)
			}).Should(PanicWith("address overflow: 63537, 2000"))
			Expect(func() {
				NewWriteRegsCmd(1, 65535, []uint16{1, 2})
			}).Should(PanicWith("address overflow: 65535, 2"))
		})
		It("can't write nothing", func() {
			Expect(func() {
				NewWriteCoilsCmd(1, 0, nil)
			}).Should(PanicWith("empty values"))
			Expect(func() {
				NewWriteRegsCmd(1, 0, []uint16{})
			}).Should(PanicWith("empty values"))
		})
		It("can't write too many", func() {
			Expect(func() {
				NewWriteCoilsCmd(1, 0, make([]bool, 1969))
			}).Should(PanicWith("values too many: 1969"))
			Expect(func() {
				NewWriteRegsCmd(1, 0, make([]uint16, 124))
			}).Should(PanicWith("values too many: 124"))
		})
	})
})
