package codec

import "fmt"

type Function byte

const (
	ReadCoils              Function = 0x01
	ReadDiscreteInputs     Function = 0x02
	ReadHoldingRegisters   Function = 0x03
	ReadInputRegisters     Function = 0x04
	WriteSingleCoil        Function = 0x05
	WriteSingleRegister    Function = 0x06
	WriteMultipleCoils     Function = 0x0F
	WriteMultipleRegisters Function = 0x10
)

// exceptionBit is set by a device on the echoed function code of an
// exception reply.
const exceptionBit = 0x80

// LookupFunction maps a function byte off the wire. The exception bit is
// stripped and reported separately; the rest must be a known function.
func LookupFunction(code byte) (Function, bool, error) {
	isException := code&exceptionBit != 0
	f := Function(code &^ exceptionBit)
	if !f.IsValid() {
		return 0, isException, InvalidFunctionErr(code)
	}
	return f, isException, nil
}

func (f Function) Code() byte {
	return byte(f)
}

func (f Function) IsValid() bool {
	switch f {
	case ReadCoils, ReadDiscreteInputs,
		ReadHoldingRegisters, ReadInputRegisters,
		WriteSingleCoil, WriteSingleRegister,
		WriteMultipleCoils, WriteMultipleRegisters:
		return true
	default:
		return false
	}
}

// IsRead reports whether replies to f are prefixed by a byte count.
func (f Function) IsRead() bool {
	switch f {
	case ReadCoils, ReadDiscreteInputs,
		ReadHoldingRegisters, ReadInputRegisters:
		return true
	default:
		return false
	}
}

func (f Function) String() string {
	switch f {
	case ReadCoils:
		return "ReadCoils"
	case ReadDiscreteInputs:
		return "ReadDiscreteInputs"
	case ReadHoldingRegisters:
		return "ReadHoldingRegisters"
	case ReadInputRegisters:
		return "ReadInputRegisters"
	case WriteSingleCoil:
		return "WriteSingleCoil"
	case WriteSingleRegister:
		return "WriteSingleRegister"
	case WriteMultipleCoils:
		return "WriteMultipleCoils"
	case WriteMultipleRegisters:
		return "WriteMultipleRegisters"
	default:
		return fmt.Sprintf("ERR:%02X", byte(f))
	}
}
