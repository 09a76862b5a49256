package mines

import "iter"

type Point struct {
	X, Y int
}

// neighbours yields the in-bounds cells around (x, y), excluding (x, y) itself.
func neighbours(width, height, x, y int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				xx, yy := x+dx, y+dy
				if xx < 0 || xx >= width || yy < 0 || yy >= height {
					continue
				}
				if !yield(xx, yy) {
					return
				}
			}
		}
	}
}
