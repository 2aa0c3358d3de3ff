package codec

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrTimeout = errors.New("timeout")

	// ErrInvalidFrame is matched by every error that makes a received
	// frame unusable. The exchange can't be recovered from the same
	// buffer.
	ErrInvalidFrame = errors.New("invalid frame")
)

// ExceptionResponse is the exception code sent back by a device that
// could not honor a request.
type ExceptionResponse byte

const (
	IllegalFunction    ExceptionResponse = 0x01
	IllegalDataAddress ExceptionResponse = 0x02
	IllegalDataValue   ExceptionResponse = 0x03
	SlaveDeviceFail    ExceptionResponse = 0x04
	Acknowledge        ExceptionResponse = 0x05
	SlaveDeviceBusy    ExceptionResponse = 0x06
	MemoryParityErr    ExceptionResponse = 0x08
	GatewayPathUnavail ExceptionResponse = 0x0A
	GatewayTargetFail  ExceptionResponse = 0x0B
)

func (e ExceptionResponse) Error() string {
	switch e {
	case IllegalFunction:
		return "Illegal Function"
	case IllegalDataAddress:
		return "Illegal Data Address"
	case IllegalDataValue:
		return "Illegal Data Value"
	case SlaveDeviceFail:
		return "Slave Device Failure"
	case Acknowledge:
		return "Acknowledge"
	case SlaveDeviceBusy:
		return "Slave Device Busy"
	case MemoryParityErr:
		return "Memory Parity Error"
	case GatewayPathUnavail:
		return "Gateway Path Unavail"
	case GatewayTargetFail:
		return "Gateway Target Fail"
	default:
		return "Exception 0x" + strconv.FormatUint(uint64(e), 16)
	}
}

func (e ExceptionResponse) Code() byte {
	return byte(e)
}

//----------------------------------------------------------------------

type InvalidFunctionErr byte

func (e InvalidFunctionErr) Error() string {
	return fmt.Sprintf("invalid function code: %02X", byte(e))
}

func (e InvalidFunctionErr) Is(target error) bool {
	return target == ErrInvalidFrame
}

type FunctionMismatchErr struct {
	Got  Function
	Want Function
}

func (e FunctionMismatchErr) Error() string {
	return fmt.Sprintf("function mismatch: got %s, want %s", e.Got, e.Want)
}

func (e FunctionMismatchErr) Is(target error) bool {
	return target == ErrInvalidFrame
}

type UnitMismatchErr struct {
	Got  byte
	Want byte
}

func (e UnitMismatchErr) Error() string {
	return fmt.Sprintf("unit mismatch: got %d, want %d", e.Got, e.Want)
}

func (e UnitMismatchErr) Is(target error) bool {
	return target == ErrInvalidFrame
}

// ChecksumErr holds the whole frame, checksum included.
type ChecksumErr []byte

func (e ChecksumErr) Error() string {
	return fmt.Sprintf("invalid checksum: [% X]", []byte(e))
}

func (e ChecksumErr) Is(target error) bool {
	return target == ErrInvalidFrame
}

// BadRxErr is a frame whose envelope is not consistent with itself or
// with the pending request.
type BadRxErr []byte

func (e BadRxErr) Error() string {
	return fmt.Sprintf("invalid response: [% X]", []byte(e))
}

func (e BadRxErr) Is(target error) bool {
	return target == ErrInvalidFrame
}
