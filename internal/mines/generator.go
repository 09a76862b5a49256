package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"strconv"
	"strings"
)

// DefaultDensity is the chance of any single cell holding a mine on a
// generated board.
const DefaultDensity = 0.25

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// RandomBoard places a mine on every cell independently with probability
// density.
func RandomBoard(width, height int, density float64, r *rand.Rand) (*Board, error) {
	if density < 0 || density > 1 {
		return nil, configErrorf("mine density %v is not within [0, 1]", density)
	}
	var mines []Point
	for x := range max(width, 0) {
		for y := range max(height, 0) {
			if r.Float64() < density {
				mines = append(mines, Point{x, y})
			}
		}
	}
	return NewBoard(width, height, mines)
}

// ParseSize reads board dimensions written as "W,H", nothing more.
func ParseSize(s string) (width int, height int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf(`invalid board size "%s": want W,H`, s)
	}
	if width, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf(`invalid board size "%s": %w`, s, err)
	}
	if height, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf(`invalid board size "%s": %w`, s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf(`invalid board size "%s": dimensions must be positive`, s)
	}
	return width, height, nil
}
