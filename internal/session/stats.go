package session

import (
	"strings"
	"sync/atomic"
)

// Stats is a point-in-time copy of the server counters.
type Stats struct {
	Players     int64 `json:"players"`
	Connections int64 `json:"connections"`
	Commands    int64 `json:"commands"`
	Detonations int64 `json:"detonations"`
}

type counters struct {
	players     atomic.Int64
	connections atomic.Int64
	commands    atomic.Int64
	detonations atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Players:     c.players.Load(),
		Connections: c.connections.Load(),
		Commands:    c.commands.Load(),
		Detonations: c.detonations.Load(),
	}
}

func firstLine(s string) string {
	line, _, found := strings.Cut(s, "\n")
	if found {
		return line + " ..."
	}
	return line
}
