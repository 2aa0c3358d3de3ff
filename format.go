package codec

import "strconv"

func tag(f Function) string {
	switch f {
	case ReadCoils:
		return "RC  "
	case ReadDiscreteInputs:
		return "RDI "
	case ReadHoldingRegisters:
		return "RHR "
	case ReadInputRegisters:
		return "RIR "
	case WriteSingleCoil:
		return "W1C "
	case WriteSingleRegister:
		return "W1R "
	case WriteMultipleCoils:
		return "WC  "
	case WriteMultipleRegisters:
		return "WR  "
	default:
		return "??  "
	}
}

func appendTx(b []byte, h Head) []byte {
	b = strconv.AppendInt(b, int64(h.Unit), 10)
	b = append(b, "<-"...)
	return append(b, tag(h.Function)...)
}

func appendRx(b []byte, h Head) []byte {
	b = strconv.AppendInt(b, int64(h.Unit), 10)
	b = append(b, "->"...)
	return append(b, tag(h.Function)...)
}

// appendBits writes n bits as 0/1 in rows of 10, split in groups of 5.
func appendBits(b []byte, n int, bit func(int) bool) []byte {
	b = strconv.AppendInt(b, int64(n), 10)
	b = append(b, '[')
	for i := 0; i < n; i++ {
		if i == 0 && n > 10 {
			b = append(b, '\n', ' ')
		}
		if i > 0 {
			if i%10 == 0 {
				b = append(b, '\n', ' ')
			} else {
				b = append(b, ' ')
				if i%5 == 0 {
					b = append(b, ' ')
				}
			}
		}
		if bit(i) {
			b = append(b, '1')
		} else {
			b = append(b, '0')
		}
	}
	if n > 10 {
		b = append(b, '\n')
	}
	return append(b, ']')
}

// appendRegs writes n registers right aligned to 5 digits.
func appendRegs(b []byte, n int, reg func(int) uint16) []byte {
	var a [5]byte
	t := a[:0]
	b = strconv.AppendInt(b, int64(n), 10)
	b = append(b, '[')
	for i := 0; i < n; i++ {
		if i == 0 && n > 10 {
			b = append(b, '\n', ' ')
		}
		if i > 0 {
			if i%10 == 0 {
				b = append(b, '\n', ' ')
			} else {
				b = append(b, ' ')
				if i%5 == 0 {
					b = append(b, ':', ' ')
				}
			}
		}
		t = strconv.AppendInt(t[:0], int64(reg(i)), 10)
		for j := len(t); j < cap(t); j++ {
			b = append(b, ' ')
		}
		b = append(b, t...)
	}
	if n > 10 {
		b = append(b, '\n')
	}
	return append(b, ']')
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, " true"...)
	}
	return append(b, " false"...)
}
