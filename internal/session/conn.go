package session

import (
	"bufio"
	"io"
	"net"
)

// MaxLineLength bounds a single protocol line, terminator included. A client
// sending a longer line is disconnected.
const MaxLineLength = 4096

// LineConn is one client's bidirectional stream of protocol lines.
type LineConn interface {
	// ReadLine blocks until a full line arrives. It returns io.EOF once the
	// client has closed its side.
	ReadLine() (string, error)
	// WriteLine sends s followed by a line terminator.
	WriteLine(s string) error
	Close() error
	RemoteAddr() string
}

type tcpConn struct {
	conn net.Conn
	sc   *bufio.Scanner
	w    *bufio.Writer
}

func NewTCPConn(conn net.Conn) LineConn {
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 256), MaxLineLength)
	return &tcpConn{
		conn: conn,
		sc:   sc,
		w:    bufio.NewWriter(conn),
	}
}

// ReadLine strips the terminator and a trailing \r. An unterminated line
// before EOF still counts; a line over MaxLineLength is bufio.ErrTooLong.
func (c *tcpConn) ReadLine() (string, error) {
	if c.sc.Scan() {
		return c.sc.Text(), nil
	}
	if err := c.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (c *tcpConn) WriteLine(s string) error {
	if _, err := c.w.WriteString(s + "\n"); err != nil {
		return err
	}
	return c.w.Flush()
}

func (c *tcpConn) Close() error {
	return c.conn.Close()
}

func (c *tcpConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
