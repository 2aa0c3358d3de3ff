package codec

import (
	"fmt"
	"strconv"
)

// Request is one of the eight *Cmd types. It is built once by its
// constructor and not modified afterwards.
type Request interface {
	Head() Head
	Tx() string
	String() string

	appendBody(b []byte) []byte
	respond(body []byte, isException bool) (Response, error)
	withHead(h Head) Request
}

// AsTCP returns a copy of r framed for Modbus TCP with transaction id tid.
func AsTCP(r Request, tid uint16) Request {
	h := r.Head()
	h.Version = TCP
	h.Tid = tid
	return r.withHead(h)
}

func checkRead(name string, devAddr byte, addr, count, limit uint16) {
	if devAddr == 0 {
		panic("could not broadcast " + name)
	}
	if count == 0 {
		panic("zero count")
	}
	if count > limit {
		panic(fmt.Sprintf("count too many: %d", count))
	}
	if addr+count-1 < addr {
		panic(fmt.Sprintf("address overflow: %d, %d", addr, count))
	}
}

//----------------------------------------------------------------------

type readCmd struct {
	head Head
	body ReadRequest
}

func newReadCmd(devAddr byte, f Function, addr, count uint16) readCmd {
	body := ReadRequest{Addr: addr, Count: count}
	return readCmd{
		head: newHead(devAddr, f, body.Len()),
		body: body,
	}
}

func (c *readCmd) Head() Head {
	return c.head
}

// Body returns the request body.
func (c *readCmd) Body() ReadRequest {
	return c.body
}

func (c *readCmd) DevAddr() byte {
	return c.head.Unit
}

func (c *readCmd) Addr() uint16 {
	return c.body.Addr
}

func (c *readCmd) Count() int {
	return int(c.body.Count)
}

func (c *readCmd) appendBody(b []byte) []byte {
	return c.body.AppendTo(b)
}

func (c *readCmd) Tx() string {
	b := appendTx(make([]byte, 0, 24), c.head)
	b = strconv.AppendInt(b, int64(c.Addr()), 10)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(c.Count()), 10)
	return string(b)
}

func (c *readCmd) String() string {
	return c.Tx()
}

func (c *readCmd) result(body []byte, isException bool) (readRes, error) {
	r := readRes{readCmd: *c}
	if isException {
		e, err := parseException(body)
		r.err = e
		return r, err
	}
	rb, err := parseReadResponse(body)
	if err != nil {
		return r, err
	}
	r.body = rb
	return r, nil
}

type ReadCoilsCmd struct {
	readCmd
}

func NewReadCoilsCmd(devAddr byte, addr uint16, count uint16) *ReadCoilsCmd {
	checkRead("ReadCoilsCmd", devAddr, addr, count, 2000)
	return &ReadCoilsCmd{newReadCmd(devAddr, ReadCoils, addr, count)}
}

func (c *ReadCoilsCmd) withHead(h Head) Request {
	n := *c
	n.head = h
	return &n
}

func (c *ReadCoilsCmd) respond(body []byte, isException bool) (Response, error) {
	r, err := c.result(body, isException)
	if err != nil {
		return nil, err
	}
	return &ReadCoilsRes{r}, nil
}

type ReadDInputsCmd struct {
	readCmd
}

func NewReadDInputsCmd(
	devAddr byte, addr uint16, count uint16,
) *ReadDInputsCmd {
	checkRead("ReadDInputsCmd", devAddr, addr, count, 2000)
	return &ReadDInputsCmd{newReadCmd(devAddr, ReadDiscreteInputs, addr, count)}
}

func (c *ReadDInputsCmd) withHead(h Head) Request {
	n := *c
	n.head = h
	return &n
}

func (c *ReadDInputsCmd) respond(body []byte, isException bool) (Response, error) {
	r, err := c.result(body, isException)
	if err != nil {
		return nil, err
	}
	return &ReadDInputsRes{r}, nil
}

type ReadHRegsCmd struct {
	readCmd
}

func NewReadHRegsCmd(devAddr byte, addr uint16, count uint16) *ReadHRegsCmd {
	checkRead("ReadHRegsCmd", devAddr, addr, count, 125)
	return &ReadHRegsCmd{newReadCmd(devAddr, ReadHoldingRegisters, addr, count)}
}

func (c *ReadHRegsCmd) withHead(h Head) Request {
	n := *c
	n.head = h
	return &n
}

func (c *ReadHRegsCmd) respond(body []byte, isException bool) (Response, error) {
	r, err := c.result(body, isException)
	if err != nil {
		return nil, err
	}
	return &ReadHRegsRes{r}, nil
}

type ReadIRegsCmd struct {
	readCmd
}

func NewReadIRegsCmd(devAddr byte, addr uint16, count uint16) *ReadIRegsCmd {
	checkRead("ReadIRegsCmd", devAddr, addr, count, 125)
	return &ReadIRegsCmd{newReadCmd(devAddr, ReadInputRegisters, addr, count)}
}

func (c *ReadIRegsCmd) withHead(h Head) Request {
	n := *c
	n.head = h
	return &n
}

func (c *ReadIRegsCmd) respond(body []byte, isException bool) (Response, error) {
	r, err := c.result(body, isException)
	if err != nil {
		return nil, err
	}
	return &ReadIRegsRes{r}, nil
}

//----------------------------------------------------------------------

type writeSingleCmd struct {
	head Head
	body WriteSingleRequest
}

func newWriteSingleCmd(devAddr byte, f Function, addr, val uint16) writeSingleCmd {
	body := WriteSingleRequest{Addr: addr, Value: val}
	return writeSingleCmd{
		head: newHead(devAddr, f, body.Len()),
		body: body,
	}
}

func (c *writeSingleCmd) Head() Head {
	return c.head
}

// Body returns the request body.
func (c *writeSingleCmd) Body() WriteSingleRequest {
	return c.body
}

func (c *writeSingleCmd) DevAddr() byte {
	return c.head.Unit
}

func (c *writeSingleCmd) Addr() uint16 {
	return c.body.Addr
}

func (c *writeSingleCmd) appendBody(b []byte) []byte {
	return c.body.AppendTo(b)
}

func (c *writeSingleCmd) String() string {
	b := appendTx(make([]byte, 0, 24), c.head)
	b = c.appendValue(b, c.body.Addr, c.body.Value)
	return string(b)
}

func (c *writeSingleCmd) Tx() string {
	return c.String()
}

func (c *writeSingleCmd) appendValue(b []byte, addr, val uint16) []byte {
	b = strconv.AppendInt(b, int64(addr), 10)
	if c.head.Function == WriteSingleCoil {
		return appendBool(b, val == coilOn)
	}
	b = append(b, ' ')
	return strconv.AppendInt(b, int64(val), 10)
}

func (c *writeSingleCmd) result(body []byte, isException bool) (writeSingleRes, error) {
	r := writeSingleRes{writeSingleCmd: *c}
	if isException {
		e, err := parseException(body)
		r.err = e
		return r, err
	}
	rb, err := parseWriteSingleResponse(body)
	if err != nil {
		return r, err
	}
	if rb.Addr != c.body.Addr || rb.Value != c.body.Value {
		return r, fmt.Errorf("bad echo: %d %d", rb.Addr, rb.Value)
	}
	r.body = rb
	return r, nil
}

const coilOn = 0xFF00

type WriteCoilCmd struct {
	writeSingleCmd
}

func NewWriteCoilCmd(devAddr byte, addr uint16, val bool) *WriteCoilCmd {
	var v uint16
	if val {
		v = coilOn
	}
	return &WriteCoilCmd{newWriteSingleCmd(devAddr, WriteSingleCoil, addr, v)}
}

func (c *WriteCoilCmd) Coil() bool {
	return c.body.Value == coilOn
}

func (c *WriteCoilCmd) withHead(h Head) Request {
	n := *c
	n.head = h
	return &n
}

func (c *WriteCoilCmd) respond(body []byte, isException bool) (Response, error) {
	r, err := c.result(body, isException)
	if err != nil {
		return nil, err
	}
	return &WriteCoilRes{r}, nil
}

type WriteRegCmd struct {
	writeSingleCmd
}

func NewWriteRegCmd(devAddr byte, addr uint16, val uint16) *WriteRegCmd {
	return &WriteRegCmd{newWriteSingleCmd(devAddr, WriteSingleRegister, addr, val)}
}

func (c *WriteRegCmd) Reg() uint16 {
	return c.body.Value
}

func (c *WriteRegCmd) withHead(h Head) Request {
	n := *c
	n.head = h
	return &n
}

func (c *WriteRegCmd) respond(body []byte, isException bool) (Response, error) {
	r, err := c.result(body, isException)
	if err != nil {
		return nil, err
	}
	return &WriteRegRes{r}, nil
}

//----------------------------------------------------------------------

type writeMultiCmd struct {
	head Head
	body WriteMultiRequest
}

func newWriteMultiCmd(
	devAddr byte, f Function, addr, count uint16, values []byte,
) writeMultiCmd {
	body := WriteMultiRequest{Addr: addr, Count: count, Values: values}
	return writeMultiCmd{
		head: newHead(devAddr, f, body.Len()),
		body: body,
	}
}

func (c *writeMultiCmd) Head() Head {
	return c.head
}

// Body returns the request body. Its Values must not be modified.
func (c *writeMultiCmd) Body() WriteMultiRequest {
	return c.body
}

func (c *writeMultiCmd) DevAddr() byte {
	return c.head.Unit
}

func (c *writeMultiCmd) Addr() uint16 {
	return c.body.Addr
}

func (c *writeMultiCmd) Count() int {
	return int(c.body.Count)
}

func (c *writeMultiCmd) ByteCount() int {
	return len(c.body.Values)
}

func (c *writeMultiCmd) appendBody(b []byte) []byte {
	return c.body.AppendTo(b)
}

func (c *writeMultiCmd) Tx() string {
	b := appendTx(make([]byte, 0, 32+c.Count()*6), c.head)
	b = strconv.AppendInt(b, int64(c.Addr()), 10)
	b = append(b, ':')
	if c.head.Function == WriteMultipleCoils {
		b = appendBits(b, c.Count(), c.bit)
	} else {
		b = appendRegs(b, c.Count(), c.reg)
	}
	return string(b)
}

func (c *writeMultiCmd) String() string {
	return c.Tx()
}

func (c *writeMultiCmd) bit(i int) bool {
	b := byte(1 << (i % 8))
	return c.body.Values[i/8]&b == b
}

func (c *writeMultiCmd) reg(i int) uint16 {
	return (uint16(c.body.Values[i*2]) << 8) | uint16(c.body.Values[i*2+1])
}

func (c *writeMultiCmd) result(body []byte, isException bool) (writeMultiRes, error) {
	r := writeMultiRes{writeMultiCmd: *c}
	if isException {
		e, err := parseException(body)
		r.err = e
		return r, err
	}
	rb, err := parseWriteMultiResponse(body)
	if err != nil {
		return r, err
	}
	if rb.Addr != c.body.Addr || rb.Count != c.body.Count {
		return r, fmt.Errorf("bad echo: %d:%d", rb.Addr, rb.Count)
	}
	r.body = rb
	return r, nil
}

type WriteCoilsCmd struct {
	writeMultiCmd
}

func NewWriteCoilsCmd(devAddr byte, addr uint16, values []bool) *WriteCoilsCmd {
	if len(values) == 0 {
		panic("empty values")
	}
	if len(values) > 1968 {
		panic(fmt.Sprintf("values too many: %d", len(values)))
	}
	count := uint16(len(values))
	if addr+count-1 < addr {
		panic(fmt.Sprintf("address overflow: %d, %d", addr, count))
	}

	b := make([]byte, (len(values)+7)/8)
	for i, v := range values {
		if v {
			b[i/8] |= 1 << (i % 8)
		}
	}
	return &WriteCoilsCmd{
		newWriteMultiCmd(devAddr, WriteMultipleCoils, addr, count, b),
	}
}

func (c *WriteCoilsCmd) Coil(i int) bool {
	if i < 0 || i >= c.Count() {
		panic(fmt.Sprintf("invalid i: %d", i))
	}
	return c.bit(i)
}

func (c *WriteCoilsCmd) withHead(h Head) Request {
	n := *c
	n.head = h
	return &n
}

func (c *WriteCoilsCmd) respond(body []byte, isException bool) (Response, error) {
	r, err := c.result(body, isException)
	if err != nil {
		return nil, err
	}
	return &WriteCoilsRes{r}, nil
}

type WriteRegsCmd struct {
	writeMultiCmd
}

func NewWriteRegsCmd(devAddr byte, addr uint16, values []uint16) *WriteRegsCmd {
	if len(values) == 0 {
		panic("empty values")
	}
	if len(values) > 123 {
		panic(fmt.Sprintf("values too many: %d", len(values)))
	}
	count := uint16(len(values))
	if addr+count-1 < addr {
		panic(fmt.Sprintf("address overflow: %d, %d", addr, count))
	}

	b := make([]byte, 0, len(values)*2)
	for _, v := range values {
		b = append(b, byte(v>>8), byte(v))
	}
	return &WriteRegsCmd{
		newWriteMultiCmd(devAddr, WriteMultipleRegisters, addr, count, b),
	}
}

func (c *WriteRegsCmd) Reg(i int) uint16 {
	if i < 0 || i >= c.Count() {
		panic(fmt.Sprintf("invalid i: %d", i))
	}
	return c.reg(i)
}

func (c *WriteRegsCmd) withHead(h Head) Request {
	n := *c
	n.head = h
	return &n
}

func (c *WriteRegsCmd) respond(body []byte, isException bool) (Response, error) {
	r, err := c.result(body, isException)
	if err != nil {
		return nil, err
	}
	return &WriteRegsRes{r}, nil
}
