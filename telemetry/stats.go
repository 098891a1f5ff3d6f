package telemetry

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RunSummary aggregates the population series of a finished run.
type RunSummary struct {
	Generations     int
	MeanPopulation  float64
	StdevPopulation float64
	MinPopulation   int
	MaxPopulation   int
	FinalPopulation int
}

// Summarize computes aggregate statistics over the recorded generations.
// An empty input yields a zero summary.
func Summarize(records []GenerationRecord) RunSummary {
	if len(records) == 0 {
		return RunSummary{}
	}

	pops := make([]float64, len(records))
	minPop, maxPop := records[0].Population, records[0].Population
	for i, rec := range records {
		pops[i] = float64(rec.Population)
		if rec.Population < minPop {
			minPop = rec.Population
		}
		if rec.Population > maxPop {
			maxPop = rec.Population
		}
	}

	mean, stdev := stat.MeanStdDev(pops, nil)
	if math.IsNaN(stdev) {
		// Single sample has no deviation.
		stdev = 0
	}

	return RunSummary{
		Generations:     len(records) - 1,
		MeanPopulation:  mean,
		StdevPopulation: stdev,
		MinPopulation:   minPop,
		MaxPopulation:   maxPop,
		FinalPopulation: records[len(records)-1].Population,
	}
}
