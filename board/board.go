// Package board holds the toroidal grid state, the generation-transition
// rule, and the state fingerprint used for cycle detection.
package board

import (
	"fmt"
	"math/rand/v2"
)

// Board is a fixed-size toroidal grid with double-buffered cell storage.
// Cells are stored row-major as 0/1 bytes. cur always holds the current
// generation; the transition writes into nxt and Swap exchanges the two.
type Board struct {
	rows, cols int
	cur, nxt   []uint8
}

// New allocates a board with all cells dead.
func New(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board: dimensions must be positive, got %dx%d", rows, cols)
	}
	n := rows * cols
	return &Board{
		rows: rows,
		cols: cols,
		cur:  make([]uint8, n),
		nxt:  make([]uint8, n),
	}, nil
}

// Rows returns the row count.
func (b *Board) Rows() int { return b.rows }

// Cols returns the column count.
func (b *Board) Cols() int { return b.cols }

// Cell reports whether the cell at (row, col) is alive in the current
// generation. Indices must already be in range.
func (b *Board) Cell(row, col int) bool {
	return b.cur[row*b.cols+col] == 1
}

// Set writes a cell in the current generation.
func (b *Board) Set(row, col int, alive bool) {
	idx := row*b.cols + col
	if alive {
		b.cur[idx] = 1
	} else {
		b.cur[idx] = 0
	}
}

// Cells exposes the current buffer so callers can read values directly.
func (b *Board) Cells() []uint8 { return b.cur }

// Randomize fills the current generation with independent fair coin
// flips from rng (probability 0.5 alive per cell).
func (b *Board) Randomize(rng *rand.Rand) {
	for i := range b.cur {
		b.cur[i] = uint8(rng.IntN(2))
	}
}

// Swap exchanges the current and next buffers in O(1).
func (b *Board) Swap() {
	b.cur, b.nxt = b.nxt, b.cur
}

// Population returns the number of live cells in the current generation.
func (b *Board) Population() int {
	pop := 0
	for _, c := range b.cur {
		pop += int(c)
	}
	return pop
}
