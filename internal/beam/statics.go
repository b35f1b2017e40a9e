package beam

import (
	"github.com/cpmech/gosl/utl"
)

// Reactions holds the vertical support forces (N, upward-positive)
type Reactions struct {
	Start float64 // pinned support at x = 0
	End   float64 // roller support at x = length
}

// Sum is the total upward support force
func (r Reactions) Sum() float64 {
	return r.Start + r.End
}

// Sample is one station of the shear force and bending moment diagrams
type Sample struct {
	X      float64 `json:"x"`
	Shear  float64 `json:"shear"`
	Moment float64 `json:"moment"`
}

// Reactions solves global equilibrium for the current load set.
//
// Moments are taken about the start support, so the end reaction is the
// total load moment divided by the span; vertical force balance then
// gives the start reaction.
func (b *Beam) Reactions() (Reactions, error) {
	if !isFinite(b.length) || b.length <= 0 {
		return Reactions{}, &DegenerateBeamError{Length: b.length}
	}
	return b.reactions(), nil
}

func (b *Beam) reactions() Reactions {
	var force, moment float64
	for _, l := range b.loads {
		f := l.Resultant()
		force += f
		moment += f * l.Centroid()
	}
	end := moment / b.length
	return Reactions{Start: force - end, End: end}
}

// ShearForce returns the internal shear just right of the cut at x.
//
// The start reaction enters with a negative sign and applied loads left
// of the cut are added. A load boundary coinciding with x is treated as
// not yet passed: a point load at x is excluded, and a distributed load
// starting at x contributes nothing.
func (b *Beam) ShearForce(x float64) (float64, error) {
	if err := b.checkPosition(x); err != nil {
		return 0, err
	}
	return b.shear(x, b.reactions()), nil
}

// BendingMoment returns the internal moment at the cut x, using the same
// sign and boundary conventions as ShearForce.
func (b *Beam) BendingMoment(x float64) (float64, error) {
	if err := b.checkPosition(x); err != nil {
		return 0, err
	}
	return b.moment(x, b.reactions()), nil
}

// SampleDiagram evaluates shear and moment on n evenly spaced stations
// from 0 to the span length inclusive.
func (b *Beam) SampleDiagram(n int) ([]Sample, error) {
	if !isFinite(b.length) || b.length <= 0 {
		return nil, &DegenerateBeamError{Length: b.length}
	}
	if n < 2 {
		return nil, ErrSampleCount
	}
	r := b.reactions()
	xs := utl.LinSpace(0, b.length, n)
	xs[n-1] = b.length
	samples := make([]Sample, n)
	for i, x := range xs {
		samples[i] = Sample{X: x, Shear: b.shear(x, r), Moment: b.moment(x, r)}
	}
	return samples, nil
}

func (b *Beam) shear(x float64, r Reactions) float64 {
	var v float64
	v -= r.Start
	for _, l := range b.loads {
		switch ld := l.(type) {
		case PointLoad:
			if ld.Position < x {
				v += ld.Magnitude
			}
		case DistributedLoad:
			switch {
			case x <= ld.Start:
			case x < ld.End:
				v += ld.Intensity * (x - ld.Start)
			default:
				v += ld.Resultant()
			}
		}
	}
	return v
}

func (b *Beam) moment(x float64, r Reactions) float64 {
	var m float64
	m -= r.Start * x
	for _, l := range b.loads {
		switch ld := l.(type) {
		case PointLoad:
			if ld.Position < x {
				m += ld.Magnitude * (x - ld.Position)
			}
		case DistributedLoad:
			switch {
			case x <= ld.Start:
			case x < ld.End:
				a := x - ld.Start
				m += ld.Intensity * a * a / 2
			default:
				m += ld.Resultant() * (x - ld.Centroid())
			}
		}
	}
	return m
}

func (b *Beam) checkPosition(x float64) error {
	if !isFinite(b.length) || b.length <= 0 {
		return &DegenerateBeamError{Length: b.length}
	}
	if !isFinite(x) || !b.within(x) {
		return &OutOfRangeError{X: x, Length: b.length}
	}
	return nil
}
