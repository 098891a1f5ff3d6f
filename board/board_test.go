package board

import (
	"math/rand/v2"
	"testing"
)

func mustBoard(t *testing.T, rows, cols int) *Board {
	t.Helper()
	b, err := New(rows, cols)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", rows, cols, err)
	}
	return b
}

func mustTable(t *testing.T, rows, cols int) *NeighborTable {
	t.Helper()
	nt, err := NewNeighborTable(rows, cols)
	if err != nil {
		t.Fatalf("NewNeighborTable(%d, %d) failed: %v", rows, cols, err)
	}
	return nt
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 5},
		{"zero cols", 5, 0},
		{"negative rows", -1, 3},
		{"negative cols", 3, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.rows, tt.cols); err == nil {
				t.Errorf("New(%d, %d) succeeded, expected error", tt.rows, tt.cols)
			}
			if _, err := NewNeighborTable(tt.rows, tt.cols); err == nil {
				t.Errorf("NewNeighborTable(%d, %d) succeeded, expected error", tt.rows, tt.cols)
			}
		})
	}
}

func TestNeighborTableWrap(t *testing.T) {
	nt := mustTable(t, 4, 3)

	if got := nt.PrevRow(0); got != 3 {
		t.Errorf("PrevRow(0) = %d, want 3", got)
	}
	if got := nt.NextRow(3); got != 0 {
		t.Errorf("NextRow(3) = %d, want 0", got)
	}
	if got := nt.PrevRow(2); got != 1 {
		t.Errorf("PrevRow(2) = %d, want 1", got)
	}
	if got := nt.PrevCol(0); got != 2 {
		t.Errorf("PrevCol(0) = %d, want 2", got)
	}
	if got := nt.NextCol(2); got != 0 {
		t.Errorf("NextCol(2) = %d, want 0", got)
	}
	if got := nt.NextCol(1); got != 2 {
		t.Errorf("NextCol(1) = %d, want 2", got)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := mustBoard(t, 16, 16)
	b := mustBoard(t, 16, 16)
	a.Randomize(rand.New(rand.NewPCG(42, 0)))
	b.Randomize(rand.New(rand.NewPCG(42, 0)))

	ac, bc := a.Cells(), b.Cells()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("cell %d differs between identically seeded boards", i)
		}
	}
}

func TestPopulation(t *testing.T) {
	b := mustBoard(t, 3, 3)
	if got := b.Population(); got != 0 {
		t.Fatalf("empty board population = %d, want 0", got)
	}
	b.Set(0, 0, true)
	b.Set(2, 2, true)
	if got := b.Population(); got != 2 {
		t.Fatalf("population = %d, want 2", got)
	}
	b.Set(0, 0, false)
	if got := b.Population(); got != 1 {
		t.Fatalf("population after clear = %d, want 1", got)
	}
}

func TestStepBlockIsStillLife(t *testing.T) {
	b := mustBoard(t, 5, 6)
	nt := mustTable(t, 5, 6)
	for _, rc := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		b.Set(rc[0], rc[1], true)
	}

	counts := Step(b, nt)
	b.Swap()

	if counts.Population != 4 || counts.Births != 0 || counts.Deaths != 0 {
		t.Fatalf("block counts = %+v, want population 4 and no changes", counts)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 6; j++ {
			want := (i == 1 || i == 2) && (j == 1 || j == 2)
			if b.Cell(i, j) != want {
				t.Errorf("cell (%d,%d) = %v, want %v", i, j, b.Cell(i, j), want)
			}
		}
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	b := mustBoard(t, 6, 6)
	nt := mustTable(t, 6, 6)
	// Vertical blinker in column 2.
	for _, rc := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		b.Set(rc[0], rc[1], true)
	}

	counts := Step(b, nt)
	b.Swap()
	if counts.Population != 3 || counts.Births != 2 || counts.Deaths != 2 {
		t.Fatalf("blinker counts = %+v, want population 3, births 2, deaths 2", counts)
	}
	for _, rc := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		if !b.Cell(rc[0], rc[1]) {
			t.Errorf("cell (%d,%d) dead after one step, want alive", rc[0], rc[1])
		}
	}
	if b.Population() != 3 {
		t.Fatalf("population after one step = %d, want 3", b.Population())
	}

	Step(b, nt)
	b.Swap()
	for _, rc := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		if !b.Cell(rc[0], rc[1]) {
			t.Errorf("cell (%d,%d) dead after two steps, want alive", rc[0], rc[1])
		}
	}
}

func TestStepWrapsAcrossSeam(t *testing.T) {
	b := mustBoard(t, 4, 4)
	nt := mustTable(t, 4, 4)
	// Horizontal blinker straddling the column seam in row 0.
	for _, rc := range [][2]int{{0, 3}, {0, 0}, {0, 1}} {
		b.Set(rc[0], rc[1], true)
	}

	Step(b, nt)
	b.Swap()

	// Rotates into a vertical blinker around (0,0), wrapping the row seam.
	for _, rc := range [][2]int{{3, 0}, {0, 0}, {1, 0}} {
		if !b.Cell(rc[0], rc[1]) {
			t.Errorf("cell (%d,%d) dead after step, want alive", rc[0], rc[1])
		}
	}
	if b.Population() != 3 {
		t.Fatalf("population = %d, want 3", b.Population())
	}
}

func TestStepRowsMatchesStep(t *testing.T) {
	full := mustBoard(t, 10, 10)
	split := mustBoard(t, 10, 10)
	full.Randomize(rand.New(rand.NewPCG(7, 0)))
	split.Randomize(rand.New(rand.NewPCG(7, 0)))
	nt := mustTable(t, 10, 10)

	fullCounts := Step(full, nt)
	var splitCounts Counts
	splitCounts.Add(StepRows(split, nt, 0, 4))
	splitCounts.Add(StepRows(split, nt, 4, 10))

	if fullCounts != splitCounts {
		t.Fatalf("split counts %+v differ from full counts %+v", splitCounts, fullCounts)
	}

	full.Swap()
	split.Swap()
	fc, sc := full.Cells(), split.Cells()
	for i := range fc {
		if fc[i] != sc[i] {
			t.Fatalf("cell %d differs between full and split evaluation", i)
		}
	}
}

func TestSwapExchangesBuffers(t *testing.T) {
	b := mustBoard(t, 3, 3)
	nt := mustTable(t, 3, 3)
	b.Set(1, 1, true)

	Step(b, nt) // lone cell dies
	b.Swap()
	if b.Population() != 0 {
		t.Fatalf("population after lone-cell step = %d, want 0", b.Population())
	}

	// The old generation is now the next buffer; another swap restores it.
	b.Swap()
	if !b.Cell(1, 1) {
		t.Fatal("swap did not preserve the previous generation in the other buffer")
	}
}
