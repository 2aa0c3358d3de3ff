package codec

import (
	"fmt"
	"io"
	"time"

	"github.com/albenik/go-serial/v2"
)

const (
	SERIAL_TIMEOUT = 30 * time.Millisecond
	SERIAL_WAIT    = 30 * time.Millisecond
	BAUDRATE       = 9600
)

type OpenErr struct {
	Dev string
	Err error
}

func (e OpenErr) Error() string {
	return e.Err.Error() + " while opening " + e.Dev
}

func (e OpenErr) Unwrap() error {
	return e.Err
}

// SerialPort opens an RS-485/RS-232 line in 8 data bits. Zero fields get
// the package defaults on Open.
type SerialPort struct {
	Dev      string        `yaml:"dev"`
	Timeout  time.Duration `yaml:"timeout"`
	Wait     time.Duration `yaml:"wait"`
	Baudrate int           `yaml:"baudrate"`
	Parity   Parity        `yaml:"parity"`
	StopBits int           `yaml:"stop_bits"`
}

func (p *SerialPort) stopBits() serial.StopBits {
	switch p.StopBits {
	case 0, 1:
		return serial.OneStopBit
	case 2:
		return serial.TwoStopBits
	default:
		panic(fmt.Sprintf("invalid stop bits: %d", p.StopBits))
	}
}

func (p *SerialPort) Open(
	repeat bool,
) (io.ReadWriteCloser, time.Duration, error) {
	if p.Dev == "" {
		panic("empty SerialPort.Dev")
	}
	if p.Timeout <= 0 {
		p.Timeout = SERIAL_TIMEOUT
	}
	if p.Wait <= 0 {
		p.Wait = SERIAL_WAIT
	}
	if p.Baudrate <= 0 {
		p.Baudrate = BAUDRATE
	}

	if repeat {
		debugLog("Opening %s", p.Dev)
	} else {
		log("Opening %s", p.Dev)
	}
	port, err := serial.Open(p.Dev,
		serial.WithBaudrate(p.Baudrate),
		serial.WithDataBits(8),
		serial.WithParity(serial.Parity(p.Parity)),
		serial.WithStopBits(p.stopBits()),
		serial.WithReadTimeout(int(p.Timeout.Milliseconds())),
		serial.WithWriteTimeout(int(p.Timeout.Milliseconds())))
	if err != nil {
		return nil, p.Wait, OpenErr{p.Dev, err}
	}
	log("%s opened at %d %s", p.Dev, p.Baudrate, p.Parity)
	return port, p.Wait, nil
}
