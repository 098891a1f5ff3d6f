// Package telemetry collects per-generation statistics from a run and
// writes them to structured CSV output.
package telemetry

// GenerationRecord is one row of generations.csv.
type GenerationRecord struct {
	Generation  int    `csv:"generation"`
	Population  int    `csv:"population"`
	Births      int    `csv:"births"`
	Deaths      int    `csv:"deaths"`
	Fingerprint uint64 `csv:"fingerprint"`
}

// Collector accumulates per-generation records during a run. When an
// output manager is attached, every record is also streamed to disk.
type Collector struct {
	records []GenerationRecord
	out     *OutputManager // may be nil
	err     error
}

// NewCollector creates a collector. out may be nil to keep records
// in memory only.
func NewCollector(out *OutputManager) *Collector {
	return &Collector{out: out}
}

// Record appends one generation's statistics.
func (c *Collector) Record(rec GenerationRecord) {
	c.records = append(c.records, rec)
	if err := c.out.WriteGeneration(rec); err != nil && c.err == nil {
		c.err = err
	}
}

// Records returns everything recorded so far.
func (c *Collector) Records() []GenerationRecord {
	return c.records
}

// Populations returns the population series as float64 for summary
// statistics.
func (c *Collector) Populations() []float64 {
	pops := make([]float64, len(c.records))
	for i, rec := range c.records {
		pops[i] = float64(rec.Population)
	}
	return pops
}

// Err returns the first output error encountered while streaming
// records, if any.
func (c *Collector) Err() error {
	return c.err
}
