package board

import "fmt"

// NeighborTable precomputes, for every row and column index, its toroidal
// predecessor and successor. Built once per board lifetime and read-only
// afterwards, so the transition loop never does modulo arithmetic.
type NeighborTable struct {
	prevRow, nextRow []int
	prevCol, nextCol []int
}

// NewNeighborTable builds wrap index tables for a rows x cols grid.
func NewNeighborTable(rows, cols int) (*NeighborTable, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board: neighbor table dimensions must be positive, got %dx%d", rows, cols)
	}
	nt := &NeighborTable{
		prevRow: make([]int, rows),
		nextRow: make([]int, rows),
		prevCol: make([]int, cols),
		nextCol: make([]int, cols),
	}
	for i := 0; i < rows; i++ {
		nt.prevRow[i] = (i + rows - 1) % rows
		nt.nextRow[i] = (i + 1) % rows
	}
	for j := 0; j < cols; j++ {
		nt.prevCol[j] = (j + cols - 1) % cols
		nt.nextCol[j] = (j + 1) % cols
	}
	return nt, nil
}

// PrevRow returns the wrapped predecessor of row i.
func (nt *NeighborTable) PrevRow(i int) int { return nt.prevRow[i] }

// NextRow returns the wrapped successor of row i.
func (nt *NeighborTable) NextRow(i int) int { return nt.nextRow[i] }

// PrevCol returns the wrapped predecessor of column j.
func (nt *NeighborTable) PrevCol(j int) int { return nt.prevCol[j] }

// NextCol returns the wrapped successor of column j.
func (nt *NeighborTable) NextCol(j int) int { return nt.nextCol[j] }
