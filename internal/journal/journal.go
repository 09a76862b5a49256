// Package journal keeps an append-only record of what happened on the board:
// players joining and leaving and mines going off. It never stores board state.
package journal

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Kind string

const (
	Connect    Kind = "connect"
	Disconnect Kind = "disconnect"
	Boom       Kind = "boom"
)

type Event struct {
	Kind       Kind
	ConnID     string
	Transport  string
	RemoteAddr string
	X, Y       *int
	Players    int
	At         time.Time
}

const writeTimeout = 5 * time.Second

type Store interface {
	InsertEvent(ctx context.Context, e Event) error
}

// Journal buffers events and writes them to a Store from a single goroutine,
// so recording never blocks a player's connection. Events are dropped when
// the buffer is full or the journal has been closed.
type Journal struct {
	store  Store
	logger *logrus.Logger

	mu     sync.RWMutex
	closed bool
	events chan Event
}

func New(store Store, logger *logrus.Logger, size int) *Journal {
	return &Journal{
		store:  store,
		logger: logger,
		events: make(chan Event, size),
	}
}

func (j *Journal) Record(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}

	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.closed {
		j.dropped(e, "journal closed, dropping event")
		return
	}
	select {
	case j.events <- e:
	default:
		j.dropped(e, "journal buffer full, dropping event")
	}
}

// Close stops accepting events. Run returns once everything recorded before
// Close has been written.
func (j *Journal) Close() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.closed {
		j.closed = true
		close(j.events)
	}
}

// Run writes buffered events until Close is called and the buffer is empty.
func (j *Journal) Run() error {
	for e := range j.events {
		j.write(e)
	}
	return nil
}

func (j *Journal) dropped(e Event, msg string) {
	j.logger.WithFields(logrus.Fields{
		"kind":    e.Kind,
		"conn_id": e.ConnID,
	}).Warn(msg)
}

func (j *Journal) write(e Event) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := j.store.InsertEvent(ctx, e); err != nil {
		j.logger.WithFields(logrus.Fields{
			"kind":    e.Kind,
			"conn_id": e.ConnID,
		}).WithError(err).Error("unable to write journal event")
	}
}
