package codec

import (
	"fmt"
	"strconv"
)

// Response is one of the eight *Res types, each matching the *Cmd that
// was pending when the reply was decoded. It carries the request head and
// body, and either the reply body or the device exception from Err.
type Response interface {
	Head() Head
	Err() error
	Tx() string
	Rx() string
	String() string

	response()
}

type readRes struct {
	readCmd
	body ReadResponse
	err  error
}

func (r *readRes) response() {}

func (r *readRes) Err() error {
	return r.err
}

func (r *readRes) Result() (ReadResponse, error) {
	return r.body, r.err
}

// Bytes returns the data bytes of the reply.
func (r *readRes) Bytes() []byte {
	return r.body.Values
}

func (r *readRes) Rx() string {
	b := appendRx(make([]byte, 0, 32+r.Count()*6), r.head)
	if r.err != nil {
		b = append(b, r.err.Error()...)
	} else if r.isBits() {
		b = appendBits(b, r.n(), r.body.Bit)
	} else {
		b = appendRegs(b, r.n(), r.body.Reg)
	}
	return string(b)
}

func (r *readRes) isBits() bool {
	return r.head.Function == ReadCoils || r.head.Function == ReadDiscreteInputs
}

// n is the number of values both requested and present in the reply. A
// device may answer with fewer bytes than the request asked for.
func (r *readRes) n() int {
	have := r.body.RegCount()
	if r.isBits() {
		have = len(r.body.Values) * 8
	}
	return min(r.Count(), have)
}

func (r *readRes) String() string {
	return r.Tx() + "\n" + r.Rx()
}

func (r *readRes) check(i int) {
	if i < 0 || i >= r.n() {
		panic(fmt.Sprintf("invalid i: %d", i))
	}
}

type ReadCoilsRes struct {
	readRes
}

func (r *ReadCoilsRes) Coil(i int) bool {
	r.check(i)
	return r.body.Bit(i)
}

type ReadDInputsRes struct {
	readRes
}

func (r *ReadDInputsRes) Input(i int) bool {
	r.check(i)
	return r.body.Bit(i)
}

type ReadHRegsRes struct {
	readRes
}

func (r *ReadHRegsRes) Reg(i int) uint16 {
	r.check(i)
	return r.body.Reg(i)
}

func (r *ReadHRegsRes) Regs() []uint16 {
	return r.body.Regs()
}

type ReadIRegsRes struct {
	readRes
}

func (r *ReadIRegsRes) Reg(i int) uint16 {
	r.check(i)
	return r.body.Reg(i)
}

func (r *ReadIRegsRes) Regs() []uint16 {
	return r.body.Regs()
}

//----------------------------------------------------------------------

type writeSingleRes struct {
	writeSingleCmd
	body WriteSingleResponse
	err  error
}

func (r *writeSingleRes) response() {}

func (r *writeSingleRes) Err() error {
	return r.err
}

func (r *writeSingleRes) Result() (WriteSingleResponse, error) {
	return r.body, r.err
}

func (r *writeSingleRes) Rx() string {
	b := appendRx(make([]byte, 0, 32), r.head)
	if r.err != nil {
		b = append(b, r.err.Error()...)
	} else {
		b = r.appendValue(b, r.body.Addr, r.body.Value)
	}
	return string(b)
}

func (r *writeSingleRes) String() string {
	return r.Tx() + "\n" + r.Rx()
}

type WriteCoilRes struct {
	writeSingleRes
}

// Coil returns the echoed coil state.
func (r *WriteCoilRes) Coil() bool {
	return r.body.Value == coilOn
}

type WriteRegRes struct {
	writeSingleRes
}

func (r *WriteRegRes) Reg() uint16 {
	return r.body.Value
}

//----------------------------------------------------------------------

type writeMultiRes struct {
	writeMultiCmd
	body WriteMultiResponse
	err  error
}

func (r *writeMultiRes) response() {}

func (r *writeMultiRes) Err() error {
	return r.err
}

func (r *writeMultiRes) Result() (WriteMultiResponse, error) {
	return r.body, r.err
}

func (r *writeMultiRes) Rx() string {
	b := appendRx(make([]byte, 0, 32), r.head)
	if r.err != nil {
		b = append(b, r.err.Error()...)
	} else {
		b = strconv.AppendInt(b, int64(r.body.Addr), 10)
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(r.body.Count), 10)
	}
	return string(b)
}

func (r *writeMultiRes) String() string {
	return r.Tx() + "\n" + r.Rx()
}

type WriteCoilsRes struct {
	writeMultiRes
}

type WriteRegsRes struct {
	writeMultiRes
}
