package codec

import (
	"io"
	"net"
	"time"
)

const (
	TCP_TIMEOUT      = 100 * time.Millisecond
	TCP_DIAL_TIMEOUT = 3 * time.Second
)

// TCPPort carries RTU frames over a TCP socket, as serial device servers
// do. Every Read and Write gets its own Timeout deadline, so an idle line
// reads as 0 bytes instead of blocking.
type TCPPort struct {
	Addr        string        `yaml:"addr"`
	Timeout     time.Duration `yaml:"timeout"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	Wait        time.Duration `yaml:"wait"`
}

func (p *TCPPort) Open(
	repeat bool,
) (io.ReadWriteCloser, time.Duration, error) {
	if p.Addr == "" {
		panic("empty TCPPort.Addr")
	}
	if p.Timeout <= 0 {
		p.Timeout = TCP_TIMEOUT
	}
	if p.DialTimeout <= 0 {
		p.DialTimeout = TCP_DIAL_TIMEOUT
	}

	if repeat {
		debugLog("Dialing %s", p.Addr)
	} else {
		log("Dialing %s", p.Addr)
	}
	conn, err := net.DialTimeout("tcp", p.Addr, p.DialTimeout)
	if err != nil {
		return nil, p.Wait, OpenErr{p.Addr, err}
	}
	log("%s connected", p.Addr)
	return &tcpConn{conn, p.Timeout}, p.Wait, nil
}

type tcpConn struct {
	net.Conn
	timeout time.Duration
}

func (c *tcpConn) Read(b []byte) (int, error) {
	c.SetReadDeadline(time.Now().Add(c.timeout))
	n, err := c.Conn.Read(b)
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return n, nil
	}
	return n, err
}

func (c *tcpConn) Write(b []byte) (int, error) {
	c.SetWriteDeadline(time.Now().Add(c.timeout))
	return c.Conn.Write(b)
}
