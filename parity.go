package codec

import (
	"fmt"
	"strings"

	"github.com/albenik/go-serial/v2"
)

type Parity serial.Parity

const (
	NoParity    = Parity(serial.NoParity)
	OddParity   = Parity(serial.OddParity)
	EvenParity  = Parity(serial.EvenParity)
	MarkParity  = Parity(serial.MarkParity)
	SpaceParity = Parity(serial.SpaceParity)
)

func (p Parity) IsValid() bool {
	switch p {
	case NoParity, OddParity, EvenParity, MarkParity, SpaceParity:
		return true
	default:
		return false
	}
}

func (p Parity) String() string {
	switch p {
	case NoParity:
		return "NONE"
	case OddParity:
		return "ODD"
	case EvenParity:
		return "EVEN"
	case MarkParity:
		return "MARK"
	case SpaceParity:
		return "SPACE"
	default:
		return fmt.Sprintf("ERR:%d", p)
	}
}

func (p Parity) MarshalText() ([]byte, error) {
	if p.IsValid() {
		return []byte(p.String()), nil
	} else {
		return nil, fmt.Errorf("Invalid Parity: %d", p)
	}
}

// UnmarshalText accepts the String forms in any case.
func (p *Parity) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "NONE":
		*p = NoParity
	case "ODD":
		*p = OddParity
	case "EVEN":
		*p = EvenParity
	case "MARK":
		*p = MarkParity
	case "SPACE":
		*p = SpaceParity
	default:
		return fmt.Errorf("Invalid Parity from %q", b)
	}
	return nil
}
