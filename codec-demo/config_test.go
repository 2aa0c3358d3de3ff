package main

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	codec "github.com/bangzek/modbus-codec"
)

var _ = Describe("Config", func() {
	write := func(s string) string {
		f := filepath.Join(GinkgoT().TempDir(), "port.yaml")
		Expect(os.WriteFile(f, []byte(s), 0o600)).To(Succeed())
		return f
	}

	It("loads a serial port", func() {
		cfg, err := loadConfig(write(`
serial:
  dev: /dev/ttyUSB0
  baudrate: 19200
  parity: even
  stop_bits: 2
  wait: 50ms
timeout: 500ms
`))
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Serial).To(Equal(&codec.SerialPort{
			Dev:      "/dev/ttyUSB0",
			Baudrate: 19200,
			Parity:   codec.EvenParity,
			StopBits: 2,
			Wait:     50 * time.Millisecond,
		}))
		Expect(cfg.Timeout).To(Equal(500 * time.Millisecond))
		Expect(cfg.port()).To(BeIdenticalTo(cfg.Serial))
	})

	It("loads a tcp port", func() {
		cfg, err := loadConfig(write(`
tcp:
  addr: 10.0.0.7:4001
  dial_timeout: 1s
`))
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.TCP).To(Equal(&codec.TCPPort{
			Addr:        "10.0.0.7:4001",
			DialTimeout: time.Second,
		}))
		Expect(cfg.port()).To(BeIdenticalTo(cfg.TCP))
	})

	It("gives an empty config without a file", func() {
		cfg, err := loadConfig("")
		Expect(err).ToNot(HaveOccurred())
		_, err = cfg.port()
		Expect(err).To(MatchError(errNoPort))
	})

	DescribeTable("rejects",
		func(s, msg string) {
			cfg, err := loadConfig(write(s))
			if err == nil {
				_, err = cfg.port()
			}
			Expect(err).To(MatchError(ContainSubstring(msg)))
		},
		Entry("bad parity", "serial:\n  dev: x\n  parity: odd-ish\n",
			`Invalid Parity from "odd-ish"`),
		Entry("both ports", "serial:\n  dev: x\ntcp:\n  addr: y\n",
			"both serial and tcp"),
		Entry("no dev", "serial:\n  baudrate: 9600\n", "serial.dev is empty"),
		Entry("no addr", "tcp:\n  wait: 1s\n", "tcp.addr is empty"),
		Entry("stop bits", "serial:\n  dev: x\n  stop_bits: 3\n",
			"invalid serial.stop_bits: 3"),
	)

	It("fails on a missing file", func() {
		_, err := loadConfig(filepath.Join(GinkgoT().TempDir(), "none"))
		Expect(err).To(MatchError(os.ErrNotExist))
	})
})
