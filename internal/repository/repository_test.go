package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-mp/internal/database"
	"github.com/vancomm/minesweeper-mp/internal/journal"
)

func TestClassify(t *testing.T) {
	missing := &pgconn.PgError{Code: pgerrcode.UndefinedTable}
	assert.ErrorIs(t, classify(fmt.Errorf("insert: %w", missing)), ErrNotMigrated)

	other := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	assert.NotErrorIs(t, classify(other), ErrNotMigrated)
	assert.NoError(t, classify(nil))
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, true},
		{"admin shutdown", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, true},
		{"too many connections", &pgconn.PgError{Code: pgerrcode.TooManyConnections}, true},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, false},
		{"plain error", errors.New("boom"), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, IsTransient(test.err))
		})
	}
}

// TestEventsRoundTrip needs a disposable PostgreSQL database.
func TestEventsRoundTrip(t *testing.T) {
	url, ok := os.LookupEnv("MINES_TEST_DATABASE_URL")
	if !ok {
		t.Skip("MINES_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	require.NoError(t, database.Migrate(url, database.Migrations))
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	defer pool.Close()
	_, err = pool.Exec(ctx, "TRUNCATE board_event")
	require.NoError(t, err)

	q := New(pool)
	x, y := 1, 1
	id := uuid.NewString()
	for _, e := range []journal.Event{
		{Kind: journal.Connect, Players: 1},
		{Kind: journal.Boom, X: &x, Y: &y, Players: 1},
		{Kind: journal.Disconnect},
	} {
		e.ConnID, e.Transport, e.RemoteAddr, e.At = id, "tcp", "127.0.0.1:1", time.Now()
		require.NoError(t, q.InsertEvent(ctx, e))
	}

	counts, err := q.EventCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []EventCount{
		{Kind: "boom", Count: 1},
		{Kind: "connect", Count: 1},
		{Kind: "disconnect", Count: 1},
	}, counts)
}
