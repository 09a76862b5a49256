package handlers

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper-mp/internal/session"
)

// wsConn carries protocol lines over text frames. A frame sent by the client
// may hold several newline separated lines; every reply is one frame.
type wsConn struct {
	conn    *websocket.Conn
	pending []string
	once    sync.Once
}

var _ session.LineConn = (*wsConn)(nil)

// newWSConn caps incoming frames at session.MaxLineLength; gorilla answers a
// larger frame with a close and fails the read.
func newWSConn(conn *websocket.Conn) *wsConn {
	conn.SetReadLimit(session.MaxLineLength)
	return &wsConn{conn: conn}
}

func (c *wsConn) ReadLine() (string, error) {
	for len(c.pending) == 0 {
		mt, buf, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return "", io.EOF
			}
			return "", err
		}
		if mt != websocket.TextMessage {
			return "", io.EOF
		}
		text := strings.TrimSuffix(string(buf), "\n")
		for _, line := range strings.Split(text, "\n") {
			c.pending = append(c.pending, strings.TrimSuffix(line, "\r"))
		}
	}
	line := c.pending[0]
	c.pending = c.pending[1:]
	return line, nil
}

func (c *wsConn) WriteLine(s string) error {
	return c.conn.WriteMessage(websocket.TextMessage, []byte(s))
}

// Close sends a close frame once and drops the connection. It may be called
// from another goroutine while ReadLine is blocked.
func (c *wsConn) Close() error {
	var err error
	c.once.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		err = c.conn.Close()
	})
	return err
}

func (c *wsConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
