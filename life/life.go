// CLAUDE:SUMMARY Conway's Game of Life (B3/S23) on a bounded rectangular grid; pure Step and Simulate.
// Package life implements Conway's Game of Life on a bounded,
// non-wrapping rectangular grid.
package life

import "errors"

// ErrNoSteps is returned by Simulate when fewer than one frame is requested.
var ErrNoSteps = errors.New("life: steps must be at least 1")

// Grid is a rectangular binary matrix: 1 alive, 0 dead.
// All rows have equal length.
type Grid [][]int

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Step computes the next generation under the standard B3/S23 rules.
// Cells outside the grid count as dead; the universe does not wrap.
// The receiver is never modified.
func (g Grid) Step() Grid {
	rows := g.Rows()
	cols := g.Cols()

	next := make(Grid, rows)
	for r := range next {
		next[r] = make([]int, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := g.neighbors(r, c)
			if g[r][c] == 1 {
				if n == 2 || n == 3 {
					next[r][c] = 1
				}
			} else if n == 3 {
				next[r][c] = 1
			}
		}
	}
	return next
}

// neighbors counts live cells in the Moore neighborhood of (r, c).
func (g Grid) neighbors(r, c int) int {
	s := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			rr := r + dr
			cc := c + dc
			if rr >= 0 && rr < len(g) && cc >= 0 && cc < len(g[rr]) {
				s += g[rr][cc]
			}
		}
	}
	return s
}

// Simulate returns exactly steps generations. Frame 0 is the seed itself;
// frame i is Step applied i times. Earlier frames stay unchanged as later
// ones are computed because Step always allocates a fresh grid.
func Simulate(seed Grid, steps int) ([]Grid, error) {
	if steps < 1 {
		return nil, ErrNoSteps
	}
	frames := make([]Grid, 0, steps)
	frames = append(frames, seed)
	cur := seed
	for i := 1; i < steps; i++ {
		cur = cur.Step()
		frames = append(frames, cur)
	}
	return frames, nil
}
