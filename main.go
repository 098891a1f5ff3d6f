package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pthm-cable/torus/board"
	"github.com/pthm-cable/torus/config"
	"github.com/pthm-cable/torus/engine"
	"github.com/pthm-cable/torus/render"
	"github.com/pthm-cable/torus/telemetry"
)

func main() {
	// CLI flags; short forms share the same destination as the long ones.
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	steps := flag.Int("steps", 0, "Number of generations to attempt")
	flag.IntVar(steps, "s", 0, "Shorthand for -steps")
	rows := flag.Int("rows", 0, "Grid row count")
	flag.IntVar(rows, "r", 0, "Shorthand for -rows")
	cols := flag.Int("cols", 0, "Grid column count")
	flag.IntVar(cols, "c", 0, "Shorthand for -cols")
	finalOnly := flag.Bool("final-only", false, "Render only the last generation reached")
	flag.BoolVar(finalOnly, "f", false, "Shorthand for -final-only")
	detectCycle := flag.Bool("detect-cycle", false, "Stop when a repeated state is detected")
	flag.BoolVar(detectCycle, "d", false, "Shorthand for -detect-cycle")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	workers := flag.Int("workers", 0, "Transition worker count (0 = GOMAXPROCS)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV log and config snapshot")
	flag.Parse()

	// Diagnostics go to stderr; stdout carries only frames and notices.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Explicitly set flags override config values.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["steps"] || set["s"] {
		cfg.Run.Steps = *steps
	}
	if set["rows"] || set["r"] {
		cfg.Grid.Rows = *rows
	}
	if set["cols"] || set["c"] {
		cfg.Grid.Cols = *cols
	}
	if set["final-only"] || set["f"] {
		cfg.Run.FinalOnly = *finalOnly
	}
	if set["detect-cycle"] || set["d"] {
		cfg.Run.DetectCycle = *detectCycle
	}
	if set["seed"] {
		cfg.Run.Seed = *seed
	}
	if set["workers"] {
		cfg.Engine.Workers = *workers
	}
	if set["output-dir"] {
		cfg.Telemetry.OutputDir = *outputDir
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	rngSeed := cfg.Run.Seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	b, err := board.New(cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		slog.Error("failed to create board", "error", err)
		os.Exit(1)
	}
	b.Randomize(rand.New(rand.NewPCG(rngSeed, 0)))

	out, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	collector := telemetry.NewCollector(out)

	eng, err := engine.New(b, engine.Options{
		Steps:       cfg.Run.Steps,
		FinalOnly:   cfg.Run.FinalOnly,
		DetectCycle: cfg.Run.DetectCycle,
		Workers:     cfg.Engine.Workers,
		OnGeneration: func(info engine.GenerationInfo) {
			collector.Record(telemetry.GenerationRecord{
				Generation:  info.Generation,
				Population:  info.Population,
				Births:      info.Births,
				Deaths:      info.Deaths,
				Fingerprint: info.Fingerprint,
			})
		},
	})
	if err != nil {
		slog.Error("failed to create engine", "error", err)
		os.Exit(1)
	}
	defer eng.Close()

	slog.Info("starting simulation",
		"rows", cfg.Grid.Rows,
		"cols", cfg.Grid.Cols,
		"steps", cfg.Run.Steps,
		"final_only", cfg.Run.FinalOnly,
		"detect_cycle", cfg.Run.DetectCycle,
		"seed", rngSeed,
	)

	start := time.Now()
	result, err := eng.Run(render.NewWriter(os.Stdout))
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
	if err := collector.Err(); err != nil {
		slog.Error("telemetry output failed", "error", err)
		os.Exit(1)
	}

	summary := telemetry.Summarize(collector.Records())
	slog.Info("run finished",
		"reason", result.Reason.String(),
		"generations", result.Generations,
		"fingerprint", result.Fingerprint,
		"mean_population", summary.MeanPopulation,
		"final_population", summary.FinalPopulation,
		"elapsed", time.Since(start),
	)
}
