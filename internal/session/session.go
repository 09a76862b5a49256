package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-mp/internal/journal"
)

type state int

const (
	stateConnected state = iota
	stateActive
	stateClosed
)

func (s state) String() string {
	switch s {
	case stateConnected:
		return "connected"
	case stateActive:
		return "active"
	case stateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

type session struct {
	id        string
	transport string
	conn      LineConn
	server    *Server
	log       *logrus.Entry
	state     state

	// number of players, this one included, at the moment it connected
	seat int64
}

func (s *Server) newSession(conn LineConn, transport string) *session {
	id := uuid.NewString()
	return &session{
		id:        id,
		transport: transport,
		conn:      conn,
		server:    s,
		log: s.logger.WithFields(logrus.Fields{
			"conn_id":     id,
			"transport":   transport,
			"remote_addr": conn.RemoteAddr(),
		}),
	}
}

func (sess *session) event(kind journal.Kind) journal.Event {
	return journal.Event{
		Kind:       kind,
		ConnID:     sess.id,
		Transport:  sess.transport,
		RemoteAddr: sess.conn.RemoteAddr(),
		Players:    sess.server.Players(),
	}
}

func (sess *session) open() {
	sess.server.stats.connections.Add(1)
	sess.seat = sess.server.stats.players.Add(1)
	sess.state = stateConnected
	sess.log.WithField("players", sess.seat).Info("player connected")
	sess.server.record(sess.event(journal.Connect))
}

// close ends the session and gives up its seat in the player count.
func (sess *session) close() {
	if sess.state == stateClosed {
		return
	}
	sess.state = stateClosed
	sess.conn.Close()
	sess.server.stats.players.Add(-1)
	sess.log.WithField("players", sess.server.Players()).Info("player disconnected")
	sess.server.record(sess.event(journal.Disconnect))
}

func (sess *session) run(ctx context.Context) error {
	board := sess.server.board
	welcome := fmt.Sprintf(
		welcomeFormat, board.Width(), board.Height(), sess.seat,
	)
	if err := sess.conn.WriteLine(welcome); err != nil {
		return err
	}
	sess.state = stateActive

	for {
		line, err := sess.conn.ReadLine()
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		sess.log.Debug("\t> ", line)

		reply, done := sess.respond(line)
		if err := sess.conn.WriteLine(reply); err != nil {
			return err
		}
		sess.log.Debug("\t< ", firstLine(reply))
		if done {
			return nil
		}
	}
}

// respond executes one protocol line against the board. done reports that the
// connection has to be closed once the reply is sent.
func (sess *session) respond(line string) (reply string, done bool) {
	srv := sess.server
	srv.stats.commands.Add(1)

	req, err := parseRequest(line)
	if err != nil {
		sess.log.WithError(err).Debug("bad request")
		return helpMessage, false
	}

	switch req.cmd {
	case cmdLook:
		return srv.board.String(), false
	case cmdHelp:
		return helpMessage, false
	case cmdBye:
		return byeMessage, true
	case cmdDig:
		if srv.board.Dig(req.x, req.y) {
			srv.stats.detonations.Add(1)
			e := sess.event(journal.Boom)
			e.X, e.Y = &req.x, &req.y
			srv.record(e)
			sess.log.WithFields(logrus.Fields{"x": req.x, "y": req.y}).Info("boom")
			return boomMessage, !srv.debug
		}
		return srv.board.String(), false
	case cmdFlag:
		srv.board.Flag(req.x, req.y)
		return srv.board.String(), false
	case cmdDeflag:
		srv.board.Deflag(req.x, req.y)
		return srv.board.String(), false
	}
	return helpMessage, false
}
