package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	codec "github.com/bangzek/modbus-codec"
)

// Config is the port file, e.g.
//
//	serial:
//	  dev: /dev/ttyUSB0
//	  baudrate: 19200
//	  parity: even
//	timeout: 500ms
type Config struct {
	Serial  *codec.SerialPort `yaml:"serial,omitempty"`
	TCP     *codec.TCPPort    `yaml:"tcp,omitempty"`
	Timeout time.Duration     `yaml:"timeout,omitempty"`
}

var errNoPort = errors.New("no port: use --dev, --tcp or a config file")

// loadConfig reads file. An empty name gives an empty Config.
func loadConfig(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return cfg, nil
}

func (c *Config) port() (codec.PortOpener, error) {
	switch {
	case c.Serial != nil && c.TCP != nil:
		return nil, errors.New("both serial and tcp ports configured")
	case c.Serial != nil:
		if c.Serial.Dev == "" {
			return nil, errors.New("serial.dev is empty")
		}
		if c.Serial.StopBits < 0 || c.Serial.StopBits > 2 {
			return nil, fmt.Errorf("invalid serial.stop_bits: %d",
				c.Serial.StopBits)
		}
		return c.Serial, nil
	case c.TCP != nil:
		if c.TCP.Addr == "" {
			return nil, errors.New("tcp.addr is empty")
		}
		return c.TCP, nil
	default:
		return nil, errNoPort
	}
}
