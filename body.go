package codec

import "fmt"

// ReadRequest is the body of the four read requests.
type ReadRequest struct {
	Addr  uint16
	Count uint16
}

func (r ReadRequest) Len() uint16 {
	return 4
}

func (r ReadRequest) AppendTo(b []byte) []byte {
	return append(b,
		byte(r.Addr>>8), byte(r.Addr),
		byte(r.Count>>8), byte(r.Count))
}

// WriteSingleRequest is the body of a single coil or register write. For
// a coil, Value is 0xFF00 for on and 0 for off.
type WriteSingleRequest struct {
	Addr  uint16
	Value uint16
}

func (r WriteSingleRequest) Len() uint16 {
	return 4
}

func (r WriteSingleRequest) AppendTo(b []byte) []byte {
	return append(b,
		byte(r.Addr>>8), byte(r.Addr),
		byte(r.Value>>8), byte(r.Value))
}

// WriteMultiRequest is the body of a multiple coils or registers write.
// Values is already packed: coils LSB first, registers big endian.
type WriteMultiRequest struct {
	Addr   uint16
	Count  uint16
	Values []byte
}

func (r WriteMultiRequest) Len() uint16 {
	return 5 + uint16(len(r.Values))
}

func (r WriteMultiRequest) AppendTo(b []byte) []byte {
	b = append(b,
		byte(r.Addr>>8), byte(r.Addr),
		byte(r.Count>>8), byte(r.Count),
		byte(len(r.Values)))
	return append(b, r.Values...)
}

//----------------------------------------------------------------------

// ReadResponse holds the data bytes of a read reply, without the byte
// count.
type ReadResponse struct {
	Values []byte
}

func parseReadResponse(b []byte) (ReadResponse, error) {
	if len(b) < 1 || int(b[0])+1 != len(b) {
		return ReadResponse{}, fmt.Errorf("bad read response length: %d", len(b))
	}
	v := make([]byte, len(b)-1)
	copy(v, b[1:])
	return ReadResponse{Values: v}, nil
}

// Bit returns bit i, counted LSB first from the first byte.
func (r ReadResponse) Bit(i int) bool {
	if i < 0 || i >= len(r.Values)*8 {
		panic(fmt.Sprintf("invalid i: %d", i))
	}
	b := byte(1 << (i % 8))
	return r.Values[i/8]&b == b
}

func (r ReadResponse) RegCount() int {
	return len(r.Values) / 2
}

func (r ReadResponse) Reg(i int) uint16 {
	if i < 0 || i >= r.RegCount() {
		panic(fmt.Sprintf("invalid i: %d", i))
	}
	return (uint16(r.Values[i*2]) << 8) | uint16(r.Values[i*2+1])
}

func (r ReadResponse) Regs() []uint16 {
	regs := make([]uint16, r.RegCount())
	for i := range regs {
		regs[i] = r.Reg(i)
	}
	return regs
}

// WriteSingleResponse is the echo of a single write.
type WriteSingleResponse struct {
	Addr  uint16
	Value uint16
}

func parseWriteSingleResponse(b []byte) (WriteSingleResponse, error) {
	if len(b) != 4 {
		return WriteSingleResponse{}, fmt.Errorf("bad write response length: %d", len(b))
	}
	return WriteSingleResponse{
		Addr:  (uint16(b[0]) << 8) | uint16(b[1]),
		Value: (uint16(b[2]) << 8) | uint16(b[3]),
	}, nil
}

// WriteMultiResponse is the address and count echoed by a multiple write.
type WriteMultiResponse struct {
	Addr  uint16
	Count uint16
}

func parseWriteMultiResponse(b []byte) (WriteMultiResponse, error) {
	if len(b) != 4 {
		return WriteMultiResponse{}, fmt.Errorf("bad write response length: %d", len(b))
	}
	return WriteMultiResponse{
		Addr:  (uint16(b[0]) << 8) | uint16(b[1]),
		Count: (uint16(b[2]) << 8) | uint16(b[3]),
	}, nil
}

func parseException(b []byte) (ExceptionResponse, error) {
	if len(b) != 1 {
		return 0, fmt.Errorf("bad exception length: %d", len(b))
	}
	return ExceptionResponse(b[0]), nil
}
