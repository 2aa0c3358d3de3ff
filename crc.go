package codec

import "github.com/sigurn/crc16"

var crcTable = crc16.MakeTable(crc16.CRC16_MODBUS)

// Checksum returns the Modbus CRC-16 of b.
func Checksum(b []byte) uint16 {
	return crc16.Checksum(b, crcTable)
}

func CheckChecksum(b []byte, cs uint16) bool {
	return Checksum(b) == cs
}

// AppendChecksum appends the checksum of b, low byte first.
func AppendChecksum(b []byte) []byte {
	cs := Checksum(b)
	return append(b, byte(cs), byte(cs>>8))
}

// SetChecksum overwrites the last 2 bytes of a full frame.
func SetChecksum(b []byte) {
	cs := Checksum(b[:len(b)-2])
	b[len(b)-2] = byte(cs)
	b[len(b)-1] = byte(cs >> 8)
}

func frameChecksum(b []byte) uint16 {
	return uint16(b[len(b)-2]) | uint16(b[len(b)-1])<<8
}
