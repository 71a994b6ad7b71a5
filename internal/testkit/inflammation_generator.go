package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// InflammationGeneratorConfig configures the synthetic study generator
type InflammationGeneratorConfig struct {
	Patients int     `json:"patients"`
	Days     int     `json:"days"`
	Peak     float64 `json:"peak"`  // expected inflammation at the midpoint of the study
	Noise    float64 `json:"noise"` // per-patient scale jitter, as a fraction of the peak
	Seed     int64   `json:"seed"`
}

// DefaultInflammationConfig matches the shape of the published study files
func DefaultInflammationConfig() InflammationGeneratorConfig {
	return InflammationGeneratorConfig{
		Patients: 60,
		Days:     40,
		Peak:     20,
		Noise:    0.25,
		Seed:     42,
	}
}

// InflammationGenerator produces deterministic inflammation tables
type InflammationGenerator struct {
	config InflammationGeneratorConfig
	rng    *rand.Rand
}

// NewInflammationGenerator creates a generator seeded from config
func NewInflammationGenerator(config InflammationGeneratorConfig) *InflammationGenerator {
	return &InflammationGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate builds a patients x days table of non-negative whole numbers.
// Inflammation is zero on day 0, rises to around Peak at the middle of the
// study and falls back towards zero on the last day.
func (g *InflammationGenerator) Generate() (*mat.Dense, error) {
	if g.config.Patients <= 0 || g.config.Days <= 0 {
		return nil, fmt.Errorf("patients and days must be positive, got %d x %d", g.config.Patients, g.config.Days)
	}

	table := mat.NewDense(g.config.Patients, g.config.Days, nil)
	mid := float64(g.config.Days-1) / 2
	for i := 0; i < g.config.Patients; i++ {
		scale := 1 + g.config.Noise*(2*g.rng.Float64()-1)
		for d := 0; d < g.config.Days; d++ {
			if d == 0 {
				continue
			}
			trend := g.config.Peak
			if mid > 0 {
				trend *= 1 - math.Abs(float64(d)-mid)/mid
			}
			// Whole-number readings with up to one unit of jitter either way
			value := math.Round(trend*scale) + float64(g.rng.Intn(3)-1)
			table.Set(i, d, math.Max(0, value))
		}
	}

	return table, nil
}
