package beam

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_beam01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("beam01. construction")

	tcs := []struct {
		name   string
		length float64
		ok     bool
	}{
		{"positive", 10, true},
		{"tiny", 1e-6, true},
		{"zero", 0, false},
		{"negative", -3, false},
		{"nan", math.NaN(), false},
		{"inf", math.Inf(1), false},
	}

	for _, tc := range tcs {
		tst.Run(tc.name, func(t *testing.T) {
			b, err := NewBeam(tc.length)
			if tc.ok {
				if err != nil {
					t.Fatal(err)
				}
				chk.Float64(t, "length", 0, b.Length(), tc.length)
				chk.IntAssert(b.Len(), 0)
				return
			}
			var de *DegenerateBeamError
			if !errors.As(err, &de) {
				t.Fatalf("expected DegenerateBeamError, got %v", err)
			}
			if b != nil {
				t.Fatalf("expected nil beam")
			}
		})
	}
}

func Test_beam02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("beam02. load registration")

	b, err := NewBeam(10)
	if err != nil {
		tst.Fatal(err)
	}

	valid := []Load{
		PointLoad{Magnitude: 1000, Position: 0},
		PointLoad{Magnitude: 1000, Position: 10},
		PointLoad{Magnitude: -200, Position: 4, Case: CaseWind},
		DistributedLoad{Intensity: 500, Start: 0, End: 10},
		DistributedLoad{Intensity: 500, Start: 6, End: 10, Case: CaseLive},
	}
	for _, l := range valid {
		if err := b.AddLoad(l); err != nil {
			tst.Fatalf("%v: %v", l, err)
		}
	}
	chk.IntAssert(b.Len(), len(valid))

	invalid := []struct {
		name string
		add  func() error
	}{
		{"point beyond end", func() error { return b.AddPointLoad(1000, 11) }},
		{"point before start", func() error { return b.AddPointLoad(1000, -0.5) }},
		{"point nan", func() error { return b.AddPointLoad(math.NaN(), 2) }},
		{"distributed empty", func() error { return b.AddDistributedLoad(500, 5, 5) }},
		{"distributed reversed", func() error { return b.AddDistributedLoad(500, 6, 2) }},
		{"distributed beyond end", func() error { return b.AddDistributedLoad(500, 6, 12) }},
		{"distributed before start", func() error { return b.AddDistributedLoad(500, -1, 2) }},
		{"distributed inf", func() error { return b.AddDistributedLoad(math.Inf(1), 1, 2) }},
		{"unknown case", func() error { return b.AddLoad(PointLoad{Magnitude: 1, Position: 1, Case: "X"}) }},
		{"nil load", func() error { return b.AddLoad(nil) }},
		{"pointer variant", func() error { return b.AddLoad(&PointLoad{Magnitude: 1, Position: 1}) }},
	}
	for _, tc := range invalid {
		tst.Run(tc.name, func(t *testing.T) {
			err := tc.add()
			var le *InvalidLoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected InvalidLoadError, got %v", err)
			}
			if le.Error() == "" {
				t.Fatalf("empty message")
			}
		})
	}

	// rejected loads leave the registry untouched
	chk.IntAssert(b.Len(), len(valid))
	loads := b.Loads()
	for i := range valid {
		if loads[i] != valid[i] {
			tst.Fatalf("load %d: got %v, want %v", i, loads[i], valid[i])
		}
	}
}

func Test_beam03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("beam03. remove and copy")

	b, _ := NewBeam(8)
	b.AddPointLoad(10, 1)
	b.AddPointLoad(20, 2)
	b.AddDistributedLoad(5, 3, 4)

	// Loads returns a copy
	loads := b.Loads()
	loads[0] = PointLoad{Magnitude: 99, Position: 7}
	if b.Loads()[0] != (PointLoad{Magnitude: 10, Position: 1}) {
		tst.Fatalf("registry modified through copy")
	}

	if err := b.RemoveLoad(1); err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(b.Len(), 2)
	chk.Float64(tst, "total", 1e-15, b.TotalLoad(), 10+5)
	if _, ok := b.Loads()[1].(DistributedLoad); !ok {
		tst.Fatalf("order not kept after removal")
	}

	for _, i := range []int{-1, 2, 10} {
		if err := b.RemoveLoad(i); !errors.Is(err, ErrNoSuchLoad) {
			tst.Fatalf("index %d: expected ErrNoSuchLoad, got %v", i, err)
		}
	}
}

func Test_beam04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("beam04. load helpers")

	d := DistributedLoad{Intensity: 500, Start: 6, End: 10}
	chk.Float64(tst, "span", 0, d.Span(), 4)
	chk.Float64(tst, "resultant", 0, d.Resultant(), 2000)
	chk.Float64(tst, "centroid", 0, d.Centroid(), 8)
	if d.LoadCase() != CaseDead {
		tst.Fatalf("empty case should be dead load")
	}

	s := d.Scale(1.6).(DistributedLoad)
	chk.Float64(tst, "scaled", 1e-12, s.Intensity, 800)
	chk.Float64(tst, "original", 0, d.Intensity, 500)

	p := PointLoad{Magnitude: 1000, Position: 3, Case: CaseLive}.Scale(0.5)
	chk.Float64(tst, "point scaled", 0, p.Resultant(), 500)
	if p.LoadCase() != CaseLive {
		tst.Fatalf("case lost on scaling")
	}
}
