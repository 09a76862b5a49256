package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/vancomm/minesweeper-mp/internal/journal"
)

// InsertEvent implements [journal.Store].
func (q Queries) InsertEvent(ctx context.Context, e journal.Event) error {
	args := pgx.NamedArgs{
		"kind":        string(e.Kind),
		"conn_id":     e.ConnID,
		"transport":   e.Transport,
		"remote_addr": e.RemoteAddr,
		"x":           e.X,
		"y":           e.Y,
		"players":     e.Players,
		"created_at":  e.At,
	}
	_, err := q.db.Exec(
		ctx,
		`INSERT INTO board_event (
			kind, conn_id, transport, remote_addr, x, y, players, created_at
		)
		VALUES (
			@kind, @conn_id, @transport, @remote_addr, @x, @y, @players, @created_at
		);`,
		args,
	)
	return classify(err)
}

type EventCount struct {
	Kind  string `json:"kind"`
	Count int64  `json:"count"`
}

// EventCounts tallies the journal by event kind.
func (q Queries) EventCounts(ctx context.Context) ([]EventCount, error) {
	rows, err := q.db.Query(
		ctx,
		"SELECT kind, count(*) AS count FROM board_event GROUP BY kind ORDER BY kind",
	)
	if err != nil {
		return nil, classify(err)
	}
	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[EventCount])
	return counts, classify(err)
}
