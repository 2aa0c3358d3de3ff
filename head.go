package codec

// Version selects the envelope a frame travels in.
type Version byte

const (
	RTU Version = iota
	TCP
)

func (v Version) String() string {
	switch v {
	case RTU:
		return "RTU"
	case TCP:
		return "TCP"
	default:
		return "ERR"
	}
}

const (
	rtuHeadLen = 2 // unit, function
	crcLen     = 2
	mbapLen    = 7 // tid, protocol, length, unit
	tcpHeadLen = mbapLen + 1
)

// Head is the per-frame envelope. Tid is only sent by TCP and stays 0
// for RTU.
type Head struct {
	Tid         uint16
	Unit        byte
	Function    Function
	IsException bool
	BodyLen     uint16
	Version     Version
}

func newHead(unit byte, f Function, bodyLen uint16) Head {
	return Head{
		Unit:     unit,
		Function: f,
		BodyLen:  bodyLen,
		Version:  RTU,
	}
}

func (h Head) functionCode() byte {
	if h.IsException {
		return h.Function.Code() | exceptionBit
	}
	return h.Function.Code()
}

func (h Head) Len() int {
	if h.Version == TCP {
		return tcpHeadLen
	}
	return rtuHeadLen
}

func (h Head) AppendTo(b []byte) []byte {
	if h.Version == TCP {
		// length counts unit and function too
		l := h.BodyLen + 2
		b = append(b,
			byte(h.Tid>>8), byte(h.Tid),
			0, 0,
			byte(l>>8), byte(l))
	}
	return append(b, h.Unit, h.functionCode())
}
