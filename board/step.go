package board

// Counts summarizes one transition: the next generation's live-cell total
// and how many cells changed state in each direction.
type Counts struct {
	Population int
	Births     int
	Deaths     int
}

// Add accumulates another partial result, used when the row range is
// split across workers.
func (c *Counts) Add(o Counts) {
	c.Population += o.Population
	c.Births += o.Births
	c.Deaths += o.Deaths
}

// Step applies the B3/S23 rule to every cell of the current generation,
// writing results into the next buffer. The current buffer is never
// mutated; the caller swaps buffers afterwards.
func Step(b *Board, nt *NeighborTable) Counts {
	return StepRows(b, nt, 0, b.rows)
}

// StepRows evaluates rows [r0, r1) of the transition. Each cell's next
// state depends only on the current buffer, so disjoint row ranges may
// be evaluated concurrently.
func StepRows(b *Board, nt *NeighborTable, r0, r1 int) Counts {
	var counts Counts
	cols := b.cols
	g := b.cur
	n := b.nxt
	for i := r0; i < r1; i++ {
		base0 := nt.prevRow[i] * cols
		base1 := i * cols
		base2 := nt.nextRow[i] * cols
		for j := 0; j < cols; j++ {
			j0 := nt.prevCol[j]
			j2 := nt.nextCol[j]
			live := int(g[base0+j0]) + int(g[base0+j]) + int(g[base0+j2]) +
				int(g[base1+j0]) + int(g[base1+j2]) +
				int(g[base2+j0]) + int(g[base2+j]) + int(g[base2+j2])

			alive := g[base1+j] == 1
			next := live == 3 || (alive && live == 2)
			if next {
				n[base1+j] = 1
				counts.Population++
				if !alive {
					counts.Births++
				}
			} else {
				n[base1+j] = 0
				if alive {
					counts.Deaths++
				}
			}
		}
	}
	return counts
}
