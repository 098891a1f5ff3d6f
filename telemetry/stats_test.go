package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	records := []GenerationRecord{
		{Generation: 0, Population: 10},
		{Generation: 1, Population: 20},
		{Generation: 2, Population: 30},
	}

	s := Summarize(records)

	if s.Generations != 2 {
		t.Errorf("generations = %d, want 2", s.Generations)
	}
	if math.Abs(s.MeanPopulation-20) > 0.001 {
		t.Errorf("mean = %v, want 20", s.MeanPopulation)
	}
	if math.Abs(s.StdevPopulation-10) > 0.001 {
		t.Errorf("stdev = %v, want 10", s.StdevPopulation)
	}
	if s.MinPopulation != 10 || s.MaxPopulation != 30 {
		t.Errorf("min/max = %d/%d, want 10/30", s.MinPopulation, s.MaxPopulation)
	}
	if s.FinalPopulation != 30 {
		t.Errorf("final = %d, want 30", s.FinalPopulation)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (RunSummary{}) {
		t.Errorf("empty summary = %+v, want zero value", s)
	}
}

func TestSummarizeSingleRecord(t *testing.T) {
	s := Summarize([]GenerationRecord{{Generation: 0, Population: 7}})

	if s.Generations != 0 {
		t.Errorf("generations = %d, want 0", s.Generations)
	}
	if s.MeanPopulation != 7 || s.FinalPopulation != 7 {
		t.Errorf("mean/final = %v/%d, want 7/7", s.MeanPopulation, s.FinalPopulation)
	}
	if s.StdevPopulation != 0 {
		t.Errorf("stdev of single sample = %v, want 0", s.StdevPopulation)
	}
}
