package codec

// Encode returns the wire frame of r.
func Encode(r Request) []byte {
	h := r.Head()
	return AppendEncode(make([]byte, 0, h.Len()+int(h.BodyLen)+crcLen), r)
}

// AppendEncode appends the wire frame of r to b. The checksum of an RTU
// frame covers only the bytes of that frame.
func AppendEncode(b []byte, r Request) []byte {
	start := len(b)
	h := r.Head()
	b = h.AppendTo(b)
	b = r.appendBody(b)
	if h.Version == RTU {
		cs := Checksum(b[start:])
		b = append(b, byte(cs), byte(cs>>8))
	}
	return b
}
