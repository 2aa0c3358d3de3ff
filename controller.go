package codec

import (
	"io"
	"time"

	"github.com/bangzek/clock"
)

const (
	TIMEOUT = time.Second
)

type nower interface {
	Now() time.Time
}

var (
	ctime nower = clock.New()
)

type PortOpener interface {
	Open(bool) (io.ReadWriteCloser, time.Duration, error)
}

// Controller runs one request at a time over a port. The port is opened on
// first use and closed after any failure, dropping whatever was buffered.
type Controller struct {
	Port    PortOpener
	Timeout time.Duration

	port   io.ReadWriteCloser
	wait   time.Duration
	repeat bool
	dec    Decoder
	tx     []byte
	rx     [256]byte
}

func (c *Controller) Close() {
	if c.port != nil {
		c.port.Close()
		c.port = nil
	}
	c.dec.Reset()
}

// Send writes req and waits for its response. A broadcast request gets no
// response and returns nil, nil. A device exception is returned as the
// response together with its Err.
func (c *Controller) Send(req Request) (Response, error) {
	if c.Timeout <= 0 {
		c.Timeout = TIMEOUT
	}
	if c.port == nil {
		var err error
		c.port, c.wait, err = c.Port.Open(c.repeat)
		if err != nil {
			c.repeat = true
			return nil, err
		}
		c.repeat = false
	}

	c.tx = AppendEncode(c.tx[:0], req)
	debugLog("tx: % X", c.tx)
	debugLog("TX: %s", req.Tx())
	if n, err := c.port.Write(c.tx); err != nil {
		c.Close()
		return nil, err
	} else if n != len(c.tx) {
		c.Close()
		return nil, io.ErrShortWrite
	}

	time.Sleep(c.wait)

	if req.Head().Unit == 0 {
		return nil, nil
	}

	c.dec.Reset()
	c.dec.Expect(req)
	for deadline := ctime.Now().Add(c.Timeout); ; {
		n, err := c.port.Read(c.rx[:])
		if err != nil {
			c.Close()
			return nil, err
		} else if n > 0 {
			debugLog("rx: % X", c.rx[:n])
			c.dec.Write(c.rx[:n])
			res, err := c.dec.Next()
			if err != nil {
				c.Close()
				return nil, err
			} else if res != nil {
				debugLog("RX: %s", res.Rx())
				return res, res.Err()
			}
		}

		if ctime.Now().After(deadline) {
			c.Close()
			return nil, ErrTimeout
		}
	}
}
