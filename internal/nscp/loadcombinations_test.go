package nscp

import (
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/cpmech/gosl/chk"
)

func casedBeam(tst *testing.T) *beam.Beam {
	b, err := beam.NewBeam(6)
	if err != nil {
		tst.Fatal(err)
	}
	loads := []beam.Load{
		beam.DistributedLoad{Intensity: 10, Start: 0, End: 6, Case: beam.CaseDead},
		beam.PointLoad{Magnitude: 30, Position: 3, Case: beam.CaseLive},
		beam.PointLoad{Magnitude: 20, Position: 3, Case: beam.CaseWind},
	}
	for _, l := range loads {
		if err := b.AddLoad(l); err != nil {
			tst.Fatal(err)
		}
	}
	return b
}

func Test_combo01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("combo01. factors")

	lc := LoadCombinations[3]
	chk.Float64(tst, "D", 0, lc.Factor(beam.CaseDead), 1.2)
	chk.Float64(tst, "empty case is dead", 0, lc.Factor(""), 1.2)
	chk.Float64(tst, "L", 0, lc.Factor(beam.CaseLive), 1.0)
	chk.Float64(tst, "W", 0, lc.Factor(beam.CaseWind), 1.0)
	chk.Float64(tst, "E", 0, lc.Factor(beam.CaseEarthquake), 0)
	chk.Float64(tst, "unknown", 0, lc.Factor("X"), 0)
}

func Test_combo02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("combo02. apply")

	b := casedBeam(tst)

	f, err := SimplifiedCombinations[1].Apply(b)
	if err != nil {
		tst.Fatal(err)
	}
	// wind is not part of 1.2D + 1.6L
	chk.IntAssert(f.Len(), 2)
	chk.Float64(tst, "total", 1e-12, f.TotalLoad(), 1.2*60+1.6*30)
	chk.IntAssert(b.Len(), 3)

	r, _ := f.Reactions()
	chk.Float64(tst, "Ra", 1e-12, r.Start, (1.2*60+1.6*30)/2)
}

func Test_combo03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("combo03. governing")

	b := casedBeam(tst)

	results, gov, err := CalculateGoverning(b, LoadCombinations, 61)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(results), len(LoadCombinations))

	// midspan moments: udl wL²/8 = 45 per unit factor, point PL/4 = 1.5P
	want := []float64{
		1.4 * 45,
		1.2*45 + 1.6*45,
		1.2*45 + 1.0*45 + 0.5*30,
		1.2*45 + 1.0*45 + 1.0*30,
		1.2*45 + 1.0*45,
		0.9*45 + 1.0*30,
		0.9 * 45,
	}
	for i, res := range results {
		chk.Float64(tst, "Mu "+res.Combination.ID, 1e-9, res.Mu(), want[i])
		chk.Float64(tst, "x "+res.Combination.ID, 1e-9, res.Extremes.Governing.X, 3)
	}
	chk.IntAssert(gov, 3)

	_, gov, err = CalculateGoverning(b, nil, 61)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(gov, -1)
}
