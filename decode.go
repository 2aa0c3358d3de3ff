package codec

// Decode takes at most one reply to pending from the start of buf.
//
// It returns the response and the number of bytes the frame used. While
// buf doesn't hold a whole frame yet, it returns nil, 0 and nil and the
// caller should try again with more bytes. Any error is fatal for the
// exchange: nothing is consumed and buf can't be resynchronized.
func Decode(pending Request, buf []byte) (Response, int, error) {
	if pending.Head().Version == TCP {
		return decodeTCP(pending, buf)
	}
	return decodeRTU(pending, buf)
}

func decodeRTU(pending Request, buf []byte) (Response, int, error) {
	h := pending.Head()
	if len(buf) < rtuHeadLen {
		return nil, 0, nil
	}

	l, isException, err := bodyLen(h, buf[1], buf[rtuHeadLen:])
	if err != nil || l == 0 {
		return nil, 0, err
	}

	n := rtuHeadLen + l + crcLen
	if len(buf) < n {
		return nil, 0, nil
	}
	frame := buf[:n]
	if !CheckChecksum(frame[:n-crcLen], frameChecksum(frame)) {
		return nil, 0, ChecksumErr(clone(frame))
	}
	if frame[0] != h.Unit {
		return nil, 0, UnitMismatchErr{Got: frame[0], Want: h.Unit}
	}

	res, err := pending.respond(frame[rtuHeadLen:n-crcLen], isException)
	if err != nil {
		debugLog("bad rx: %s", err)
		return nil, 0, BadRxErr(clone(frame))
	}
	return res, n, nil
}

// bodyLen returns the length of the reply body following the function
// byte fc, or 0 when it can't be known yet. An exception reply is always
// a single code byte whatever function it is for. A read reply is its
// byte count plus the count itself. A write reply echoes 4 bytes.
func bodyLen(h Head, fc byte, rest []byte) (int, bool, error) {
	f, isException, err := LookupFunction(fc)
	if err != nil {
		return 0, isException, err
	}
	if isException {
		return 1, true, nil
	}
	if f != h.Function {
		return 0, false, FunctionMismatchErr{Got: f, Want: h.Function}
	}
	if f.IsRead() {
		if len(rest) < 1 {
			return 0, false, nil
		}
		return int(rest[0]) + 1, false, nil
	}
	return 4, false, nil
}

func decodeTCP(pending Request, buf []byte) (Response, int, error) {
	h := pending.Head()
	if len(buf) < tcpHeadLen {
		return nil, 0, nil
	}

	// length counts unit, function and body
	l := (int(buf[4]) << 8) | int(buf[5])
	if buf[2] != 0 || buf[3] != 0 || l < 3 || l > 254 {
		return nil, 0, BadRxErr(clone(buf[:tcpHeadLen]))
	}
	want, isException, err := bodyLen(h, buf[7], buf[tcpHeadLen:])
	if err != nil {
		return nil, 0, err
	}
	n := mbapLen - 1 + l
	if len(buf) < n {
		return nil, 0, nil
	}
	frame := buf[:n]
	if want != l-2 {
		return nil, 0, BadRxErr(clone(frame))
	}
	if tid := (uint16(frame[0]) << 8) | uint16(frame[1]); tid != h.Tid {
		return nil, 0, BadRxErr(clone(frame))
	}
	if frame[6] != h.Unit {
		return nil, 0, UnitMismatchErr{Got: frame[6], Want: h.Unit}
	}

	res, err := pending.respond(frame[tcpHeadLen:], isException)
	if err != nil {
		debugLog("bad rx: %s", err)
		return nil, 0, BadRxErr(clone(frame))
	}
	return res, n, nil
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

//----------------------------------------------------------------------

// Decoder accumulates bytes from a stream and matches them to the pending
// request. It is not safe for concurrent use.
type Decoder struct {
	req Request
	buf []byte
}

func NewDecoder(req Request) *Decoder {
	return &Decoder{req: req}
}

// Expect replaces the pending request. Buffered bytes are kept.
func (d *Decoder) Expect(req Request) {
	d.req = req
}

func (d *Decoder) Pending() Request {
	return d.req
}

// Write buffers p. It never fails.
func (d *Decoder) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *Decoder) Buffered() []byte {
	return d.buf
}

// Reset drops all buffered bytes, abandoning a partial frame.
func (d *Decoder) Reset() {
	d.buf = d.buf[:0]
}

// Next decodes one response from the buffer. It returns nil, nil when more
// bytes are needed. Bytes after the frame stay buffered.
func (d *Decoder) Next() (Response, error) {
	if d.req == nil {
		panic("no pending request")
	}
	res, n, err := Decode(d.req, d.buf)
	if err != nil || res == nil {
		return nil, err
	}
	d.buf = append(d.buf[:0], d.buf[n:]...)
	return res, nil
}
