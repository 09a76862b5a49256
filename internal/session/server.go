package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-mp/internal/journal"
	"github.com/vancomm/minesweeper-mp/internal/mines"
)

const (
	welcomeFormat = "Welcome to Minesweeper. Board: %d columns by %d rows. Players: %d including you. Type 'help' for help."
	helpMessage   = "Commands: look | dig x y | flag x y | deflag x y | help | bye"
	byeMessage    = "You chose to leave the game. Goodbye!"
	boomMessage   = "BOOM!"
)

// Recorder receives notable session events. [journal.Journal] implements it.
type Recorder interface {
	Record(e journal.Event)
}

// Server plays a single shared board with every connected client. Each
// connection is served by its own goroutine; the board and the counters are
// the only state shared between them.
type Server struct {
	board    *mines.Board
	debug    bool
	logger   *logrus.Logger
	recorder Recorder
	stats    counters

	mu       sync.Mutex
	sessions map[*session]struct{}
	active   sync.WaitGroup
}

type Option func(*Server)

// WithDebug keeps clients connected after they dig up a mine.
func WithDebug(debug bool) Option {
	return func(s *Server) {
		s.debug = debug
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Server) {
		s.recorder = r
	}
}

func New(board *mines.Board, logger *logrus.Logger, opts ...Option) *Server {
	s := &Server{
		board:    board,
		logger:   logger,
		sessions: make(map[*session]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Board() *mines.Board {
	return s.board
}

func (s *Server) Debug() bool {
	return s.debug
}

// Players is the number of currently connected clients.
func (s *Server) Players() int {
	return int(s.stats.players.Load())
}

func (s *Server) Stats() Stats {
	return s.stats.snapshot()
}

// Serve accepts connections on ln and serves each one on its own goroutine.
// It returns nil after ctx is cancelled, or the accept error if the listener
// fails. Either way ln is closed and every session, including those started
// through Handle by other transports, has ended and been recorded.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	var workers errgroup.Group

	stop := context.AfterFunc(ctx, func() {
		ln.Close()
		s.closeAll()
	})
	defer stop()

	s.logger.WithField("addr", ln.Addr().String()).Info("accepting players")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				workers.Wait()
				s.active.Wait()
				return nil
			}
			ln.Close()
			s.closeAll()
			workers.Wait()
			s.active.Wait()
			return fmt.Errorf("unable to accept connection: %w", err)
		}
		workers.Go(func() error {
			s.Handle(ctx, NewTCPConn(conn), "tcp")
			return nil
		})
	}
}

// Handle runs the protocol on conn until the client leaves, blows up outside
// of debug mode, or the connection fails. conn is closed on return.
func (s *Server) Handle(ctx context.Context, conn LineConn, transport string) {
	sess := s.newSession(conn, transport)
	if !s.track(sess) {
		conn.Close()
		return
	}
	defer s.untrack(sess)

	sess.open()
	defer sess.close()

	err := sess.run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, net.ErrClosed):
		sess.log.Debug("client went away")
	default:
		sess.log.WithError(err).Warn("connection failed")
	}
}

// track returns false once the server has begun shutting down.
func (s *Server) track(sess *session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		return false
	}
	s.sessions[sess] = struct{}{}
	s.active.Add(1)
	return true
}

func (s *Server) untrack(sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sess)
	s.active.Done()
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sess := range s.sessions {
		sess.conn.Close()
	}
	s.sessions = nil
}

func (s *Server) record(e journal.Event) {
	if s.recorder != nil {
		s.recorder.Record(e)
	}
}
