package mines

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Untouched CellState = iota
	Flagged
	Dug
)

func (s CellState) String() string {
	switch s {
	case Untouched:
		return "untouched"
	case Flagged:
		return "flagged"
	case Dug:
		return "dug"
	default:
		return "invalid"
	}
}

// Grid holds one value per cell, row-major: cell (x, y) lives at y*width+x.
type Grid[T any] []T

func newGrid[T any](width, height int, fill T) Grid[T] {
	g := make(Grid[T], width*height)
	for i := range g {
		g[i] = fill
	}
	return g
}

// Token returns the player-visible rendering of a cell given its state and
// the number of mines around it.
func Token(s CellState, adjacent int) string {
	switch {
	case s == Flagged:
		return "F"
	case s == Untouched:
		return "-"
	case adjacent == 0:
		return " "
	default:
		return strconv.Itoa(adjacent)
	}
}

// Snapshot is a copy of the player-visible board taken at a single instant.
type Snapshot struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  [][]string `json:"cells"`
}

// String renders rows of space separated tokens joined by newlines, without a
// trailing newline.
func (s Snapshot) String() string {
	var b strings.Builder
	for y, row := range s.Cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(row, " "))
	}
	return b.String()
}
