package mines

import "sync"

// Board is the state of a single shared game: where the mines are and what
// the players have done to every cell. All methods are safe for concurrent
// use; each one runs under a single board-wide lock, so a render never
// observes a half finished flood fill.
type Board struct {
	mu     sync.Mutex
	width  int
	height int
	mines  Grid[bool]
	cells  Grid[CellState]
}

// NewBoard builds a width x height board with every cell untouched and a mine
// at each of the given points. A point outside the grid is a [ConfigError].
func NewBoard(width, height int, mines []Point) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, configErrorf("dimensions must be positive, got %dx%d", width, height)
	}
	b := &Board{
		width:  width,
		height: height,
		mines:  newGrid(width, height, false),
		cells:  newGrid(width, height, Untouched),
	}
	for _, p := range mines {
		if !b.inBounds(p.X, p.Y) {
			return nil, configErrorf(
				"mine at (%d, %d) lies outside a %dx%d grid", p.X, p.Y, width, height,
			)
		}
		b.mines[b.index(p.X, p.Y)] = true
	}
	return b, nil
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) inBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// adjacentMines must be called with b.mu held.
func (b *Board) adjacentMines(x, y int) int {
	n := 0
	for xx, yy := range neighbours(b.width, b.height, x, y) {
		if b.mines[b.index(xx, yy)] {
			n++
		}
	}
	return n
}

// Dig opens an untouched cell and reports whether it held a mine. A mine is
// consumed by the detonation. Digging a cell with no adjacent mines opens
// every untouched cell of the connected zero region and its numbered border.
// Out of range, flagged and already dug cells are left alone.
func (b *Board) Dig(x, y int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.inBounds(x, y) {
		return false
	}
	i := b.index(x, y)
	if b.cells[i] != Untouched {
		return false
	}
	if b.mines[i] {
		b.cells[i] = Dug
		b.mines[i] = false
		return true
	}

	todo := []Point{{x, y}}
	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		j := b.index(p.X, p.Y)
		if b.cells[j] != Untouched {
			continue
		}
		b.cells[j] = Dug
		if b.adjacentMines(p.X, p.Y) != 0 {
			continue
		}
		for xx, yy := range neighbours(b.width, b.height, p.X, p.Y) {
			if b.cells[b.index(xx, yy)] == Untouched {
				todo = append(todo, Point{xx, yy})
			}
		}
	}
	return false
}

// Flag marks an untouched cell. It reports whether the cell changed.
func (b *Board) Flag(x, y int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.inBounds(x, y) || b.cells[b.index(x, y)] != Untouched {
		return false
	}
	b.cells[b.index(x, y)] = Flagged
	return true
}

// Deflag removes a flag. It reports whether the cell changed.
func (b *Board) Deflag(x, y int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.inBounds(x, y) || b.cells[b.index(x, y)] != Flagged {
		return false
	}
	b.cells[b.index(x, y)] = Untouched
	return true
}

// State returns the status of a cell, or false if (x, y) is off the board.
func (b *Board) State(x, y int) (CellState, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.inBounds(x, y) {
		return 0, false
	}
	return b.cells[b.index(x, y)], true
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	rows := make([][]string, b.height)
	for y := range b.height {
		row := make([]string, b.width)
		for x := range b.width {
			i := b.index(x, y)
			adjacent := 0
			if b.cells[i] == Dug {
				adjacent = b.adjacentMines(x, y)
			}
			row[x] = Token(b.cells[i], adjacent)
		}
		rows[y] = row
	}
	return Snapshot{Width: b.width, Height: b.height, Cells: rows}
}

// String renders the board the way it is sent to players.
func (b *Board) String() string {
	return b.Snapshot().String()
}
