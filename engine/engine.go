// Package engine drives the generation loop: repeated transitions,
// stop-condition detection, and frame emission to a renderer.
package engine

import (
	"fmt"

	"github.com/pthm-cable/torus/board"
)

// StopReason identifies why a run ended.
type StopReason int

const (
	// ReasonCompleted means the requested number of generations ran with
	// no stop condition triggered.
	ReasonCompleted StopReason = iota
	// ReasonCycle means the new state's fingerprint was already in the
	// visited set (cycle detection enabled).
	ReasonCycle
	// ReasonStatic means a generation reproduced its predecessor exactly
	// (cycle detection disabled).
	ReasonStatic
	// ReasonEmpty means every cell died.
	ReasonEmpty
)

func (r StopReason) String() string {
	switch r {
	case ReasonCompleted:
		return "completed"
	case ReasonCycle:
		return "cycle"
	case ReasonStatic:
		return "static"
	case ReasonEmpty:
		return "empty"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Sink receives rendered frames and stop notices from a run. The board
// passed to Frame is only valid for the duration of the call.
type Sink interface {
	Frame(generation int, b *board.Board) error
	Notice(message string) error
}

// GenerationInfo describes one state reached during a run.
type GenerationInfo struct {
	Generation  int
	Population  int
	Births      int
	Deaths      int
	Fingerprint uint64
}

// Options configure a run.
type Options struct {
	// Steps is the number of generations to attempt. Zero is allowed and
	// emits only the initial state.
	Steps int
	// FinalOnly renders only the last generation reached instead of
	// every generation.
	FinalOnly bool
	// DetectCycle stops the run when a previously seen state recurs,
	// replacing the static-board check.
	DetectCycle bool
	// Workers is the transition worker count; 0 means GOMAXPROCS.
	Workers int
	// OnGeneration, when set, observes every state the run reaches,
	// including generation 0. A cycle-stop's repeated state is not
	// reported.
	OnGeneration func(GenerationInfo)
}

// Result summarizes a finished run.
type Result struct {
	Reason StopReason
	// Generations is the number of completed transitions. A cycle stop
	// does not count its triggering transition: the state it produced is
	// a repeat of one already seen.
	Generations int
	// Fingerprint is the fingerprint of the last state reached.
	Fingerprint uint64
}

// Engine owns one simulation instance. It is not safe for concurrent
// use; independent instances need no coordination.
type Engine struct {
	b       *board.Board
	nt      *board.NeighborTable
	opts    Options
	visited map[uint64]struct{}
	pool    *stepPool
}

// New builds an engine around an initialized board.
func New(b *board.Board, opts Options) (*Engine, error) {
	if opts.Steps < 0 {
		return nil, fmt.Errorf("engine: steps must be non-negative, got %d", opts.Steps)
	}
	nt, err := board.NewNeighborTable(b.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	e := &Engine{b: b, nt: nt, opts: opts}
	if opts.DetectCycle {
		e.visited = make(map[uint64]struct{}, opts.Steps+1)
	}
	e.pool = newStepPool(b, nt, opts.Workers)
	return e, nil
}

// Board returns the engine's board, holding the last state reached.
func (e *Engine) Board() *board.Board { return e.b }

// Close releases the transition worker pool.
func (e *Engine) Close() { e.pool.stop() }

// Run executes the generation loop until the requested step count
// completes or a stop condition triggers, emitting frames and notices
// to sink according to the rendering mode.
func (e *Engine) Run(sink Sink) (Result, error) {
	fp := board.Fingerprint(e.b)
	e.observe(GenerationInfo{Generation: 0, Population: e.b.Population(), Fingerprint: fp})
	if e.visited != nil {
		e.visited[fp] = struct{}{}
	}
	if !e.opts.FinalOnly {
		if err := sink.Frame(0, e.b); err != nil {
			return Result{}, err
		}
	}

	if e.opts.Steps == 0 {
		if e.opts.FinalOnly {
			if err := sink.Frame(0, e.b); err != nil {
				return Result{}, err
			}
		}
		return Result{Reason: ReasonCompleted, Generations: 0, Fingerprint: fp}, nil
	}

	for gen := 1; gen <= e.opts.Steps; gen++ {
		counts := e.pool.step()
		e.b.Swap()
		prev := fp
		fp = board.Fingerprint(e.b)

		// All cells dead is checked first: it is also a trivial cycle of
		// length 1, but reported as the more specific condition.
		if counts.Population == 0 {
			e.observe(GenerationInfo{gen, 0, counts.Births, counts.Deaths, fp})
			return e.stop(sink, ReasonEmpty, gen, fp,
				fmt.Sprintf("Board became empty at generation %d. Stopping.", gen))
		}

		if e.visited != nil {
			if _, seen := e.visited[fp]; seen {
				// The repeated state was already rendered; notice only.
				if err := sink.Notice(fmt.Sprintf("Cycle detected at generation %d. Stopping.", gen)); err != nil {
					return Result{}, err
				}
				return Result{Reason: ReasonCycle, Generations: gen - 1, Fingerprint: fp}, nil
			}
			e.visited[fp] = struct{}{}
		} else if fp == prev {
			e.observe(GenerationInfo{gen, counts.Population, counts.Births, counts.Deaths, fp})
			return e.stop(sink, ReasonStatic, gen, fp,
				fmt.Sprintf("Board became static at generation %d. Stopping.", gen))
		}

		e.observe(GenerationInfo{gen, counts.Population, counts.Births, counts.Deaths, fp})
		if !e.opts.FinalOnly || gen == e.opts.Steps {
			if err := sink.Frame(gen, e.b); err != nil {
				return Result{}, err
			}
		}
	}

	return Result{Reason: ReasonCompleted, Generations: e.opts.Steps, Fingerprint: fp}, nil
}

// stop emits a notice plus the triggering board and closes out the run.
func (e *Engine) stop(sink Sink, reason StopReason, gen int, fp uint64, notice string) (Result, error) {
	if err := sink.Notice(notice); err != nil {
		return Result{}, err
	}
	if err := sink.Frame(gen, e.b); err != nil {
		return Result{}, err
	}
	return Result{Reason: reason, Generations: gen, Fingerprint: fp}, nil
}

func (e *Engine) observe(info GenerationInfo) {
	if e.opts.OnGeneration != nil {
		e.opts.OnGeneration(info)
	}
}
