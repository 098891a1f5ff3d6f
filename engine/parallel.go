package engine

import (
	"runtime"
	"sync"

	"github.com/pthm-cable/torus/board"
)

// parallelThreshold is the minimum cell count before the transition is
// split across workers. Below this, single-threaded is faster due to
// goroutine overhead.
const parallelThreshold = 1 << 14

// rowChunk is a range of rows for one worker to evaluate.
type rowChunk struct {
	start, end int
}

// stepPool evaluates transitions over persistent worker goroutines.
// Workers read only the current buffer and write disjoint row ranges of
// the next buffer, so the only synchronization is the completion barrier
// before the caller swaps buffers.
type stepPool struct {
	b          *board.Board
	nt         *board.NeighborTable
	numWorkers int

	workChan chan rowChunk     // sends row ranges to workers
	doneChan chan board.Counts // workers return partial counts
	stopChan chan struct{}     // signals workers to exit
	wg       sync.WaitGroup
	running  bool
}

func newStepPool(b *board.Board, nt *board.NeighborTable, workers int) *stepPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &stepPool{b: b, nt: nt, numWorkers: workers}
}

// startWorkers launches the persistent worker goroutines.
func (p *stepPool) startWorkers() {
	if p.running {
		return
	}
	p.workChan = make(chan rowChunk, p.numWorkers)
	p.doneChan = make(chan board.Counts, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// stop signals all workers to exit and waits for them.
func (p *stepPool) stop() {
	if !p.running {
		return
	}
	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

func (p *stepPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			p.doneChan <- board.StepRows(p.b, p.nt, chunk.start, chunk.end)
		}
	}
}

// step evaluates one full generation into the next buffer and returns
// its counts. The caller swaps buffers afterwards.
func (p *stepPool) step() board.Counts {
	rows := p.b.Rows()
	if p.numWorkers == 1 || rows*p.b.Cols() < parallelThreshold {
		return board.Step(p.b, p.nt)
	}

	if !p.running {
		p.startWorkers()
	}

	chunkSize := (rows + p.numWorkers - 1) / p.numWorkers
	dispatched := 0
	for w := 0; w < p.numWorkers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, rows)
		if start >= end {
			continue
		}
		p.workChan <- rowChunk{start: start, end: end}
		dispatched++
	}

	var counts board.Counts
	for i := 0; i < dispatched; i++ {
		counts.Add(<-p.doneChan)
	}
	return counts
}
