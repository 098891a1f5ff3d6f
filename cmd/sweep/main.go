// Package main runs batches of random-seed Life simulations and
// aggregates how and when they ended.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/torus/board"
	"github.com/pthm-cable/torus/config"
	"github.com/pthm-cable/torus/engine"
)

// RunResult is one row of sweep.csv.
type RunResult struct {
	Seed            uint64  `csv:"seed"`
	Reason          string  `csv:"reason"`
	Generations     int     `csv:"generations"`
	FinalPopulation int     `csv:"final_population"`
	ElapsedSec      float64 `csv:"elapsed_sec"`
}

// discardSink drops frames and notices; sweep runs are statistics only.
type discardSink struct{}

func (discardSink) Frame(int, *board.Board) error { return nil }
func (discardSink) Notice(string) error           { return nil }

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	runs := flag.Int("runs", 100, "Number of seeds to simulate")
	baseSeed := flag.Uint64("base-seed", 1, "First seed; run i uses base-seed + i")
	outputDir := flag.String("output", "", "Output directory for sweep.csv")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if *runs <= 0 {
		log.Fatalf("--runs must be positive, got %d", *runs)
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	results := make([]RunResult, 0, *runs)
	bar := pb.StartNew(*runs)
	for i := 0; i < *runs; i++ {
		seed := *baseSeed + uint64(i)
		res, err := runOne(cfg, seed)
		if err != nil {
			log.Fatalf("seed %d: %v", seed, err)
		}
		results = append(results, res)
		bar.Increment()
	}
	bar.Finish()

	if err := writeResults(filepath.Join(*outputDir, "sweep.csv"), results); err != nil {
		log.Fatalf("failed to write results: %v", err)
	}

	printSummary(cfg, results)
}

// runOne simulates a single seed without rendering and reports its
// outcome.
func runOne(cfg *config.Config, seed uint64) (RunResult, error) {
	b, err := board.New(cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return RunResult{}, err
	}
	b.Randomize(rand.New(rand.NewPCG(seed, 0)))

	finalPop := 0
	eng, err := engine.New(b, engine.Options{
		Steps:       cfg.Run.Steps,
		FinalOnly:   true,
		DetectCycle: cfg.Run.DetectCycle,
		Workers:     cfg.Engine.Workers,
		OnGeneration: func(info engine.GenerationInfo) {
			finalPop = info.Population
		},
	})
	if err != nil {
		return RunResult{}, err
	}
	defer eng.Close()

	start := time.Now()
	result, err := eng.Run(discardSink{})
	if err != nil {
		return RunResult{}, err
	}

	return RunResult{
		Seed:            seed,
		Reason:          result.Reason.String(),
		Generations:     result.Generations,
		FinalPopulation: finalPop,
		ElapsedSec:      time.Since(start).Seconds(),
	}, nil
}

func writeResults(path string, results []RunResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(results, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printSummary(cfg *config.Config, results []RunResult) {
	gens := make([]float64, len(results))
	reasons := map[string]int{}
	for i, r := range results {
		gens[i] = float64(r.Generations)
		reasons[r.Reason]++
	}
	mean, stdev := stat.MeanStdDev(gens, nil)

	fmt.Printf("sweep: %d runs of %dx%d, %d steps each\n",
		len(results), cfg.Grid.Rows, cfg.Grid.Cols, cfg.Run.Steps)
	fmt.Printf("generations survived: mean %.1f, stdev %.1f\n", mean, stdev)
	for _, reason := range []string{"completed", "cycle", "static", "empty"} {
		if n := reasons[reason]; n > 0 {
			fmt.Printf("  %-9s %d\n", reason, n)
		}
	}
}
