package nscp

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for common beam design scenarios
// These are the most frequently used combinations for gravity loads
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// Factor returns the load factor the combination applies to a load case
func (lc LoadCombination) Factor(c beam.Case) float64 {
	switch c.Normalize() {
	case beam.CaseDead:
		return lc.Dead
	case beam.CaseLive:
		return lc.Live
	case beam.CaseRoof:
		return lc.Roof
	case beam.CaseWind:
		return lc.Wind
	case beam.CaseEarthquake:
		return lc.Earthquake
	case beam.CaseRain:
		return lc.Rain
	}
	return 0
}

// Apply builds the factored beam: every load is scaled by the factor of
// its case. Loads whose case is not part of the combination are dropped.
func (lc LoadCombination) Apply(b *beam.Beam) (*beam.Beam, error) {
	factored, err := beam.NewBeam(b.Length())
	if err != nil {
		return nil, err
	}
	for _, l := range b.Loads() {
		f := lc.Factor(l.LoadCase())
		if f == 0 {
			continue
		}
		if err := factored.AddLoad(l.Scale(f)); err != nil {
			return nil, fmt.Errorf("combination %s: %w", lc.ID, err)
		}
	}
	return factored, nil
}

// CombinationResult holds the response of a beam under one combination
type CombinationResult struct {
	Combination LoadCombination
	Reactions   beam.Reactions
	Extremes    beam.Extremes
}

// Mu is the factored moment: the largest moment magnitude along the span
func (r CombinationResult) Mu() float64 {
	return math.Abs(r.Extremes.Governing.Value)
}

// Vu is the factored shear: the largest shear magnitude along the span
func (r CombinationResult) Vu() float64 {
	return math.Max(math.Abs(r.Extremes.MaxShear.Value), math.Abs(r.Extremes.MinShear.Value))
}

// CalculateGoverning analyzes the beam under every combination and returns
// the results in order together with the index of the combination giving
// the largest factored moment. The index is -1 when combinations is empty.
func CalculateGoverning(b *beam.Beam, combinations []LoadCombination, samples int) ([]CombinationResult, int, error) {
	results := make([]CombinationResult, 0, len(combinations))
	governing := -1
	var maxMu float64

	for _, combo := range combinations {
		factored, err := combo.Apply(b)
		if err != nil {
			return nil, -1, err
		}
		r, err := factored.Reactions()
		if err != nil {
			return nil, -1, err
		}
		s, err := factored.SampleDiagram(samples)
		if err != nil {
			return nil, -1, err
		}
		res := CombinationResult{
			Combination: combo,
			Reactions:   r,
			Extremes:    beam.FindExtremes(s),
		}
		if governing < 0 || res.Mu() > maxMu {
			maxMu = res.Mu()
			governing = len(results)
		}
		results = append(results, res)
	}

	return results, governing, nil
}
