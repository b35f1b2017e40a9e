package beam

import (
	"math"
)

// Beam is a single simply supported span: pinned support at 0, roller
// support at Length. Loads are appended and the beam is then analyzed;
// reactions are recomputed on every query, so a caller holding a
// Reactions value across a later AddLoad sees stale numbers.
type Beam struct {
	length float64
	loads  []Load
}

// NewBeam creates an unloaded beam of the given span (m)
func NewBeam(length float64) (*Beam, error) {
	if !isFinite(length) || length <= 0 {
		return nil, &DegenerateBeamError{Length: length}
	}
	return &Beam{length: length}, nil
}

// Length returns the span between supports (m)
func (b *Beam) Length() float64 {
	return b.length
}

// Len returns the number of registered loads
func (b *Beam) Len() int {
	return len(b.loads)
}

// Loads returns a copy of the loads in insertion order
func (b *Beam) Loads() []Load {
	out := make([]Load, len(b.loads))
	copy(out, b.loads)
	return out
}

// AddPointLoad appends a dead-load point force of magnitude (N) at position (m)
func (b *Beam) AddPointLoad(magnitude, position float64) error {
	return b.AddLoad(PointLoad{Magnitude: magnitude, Position: position})
}

// AddDistributedLoad appends a dead-load uniform load of intensity (N/m)
// acting from start to end (m)
func (b *Beam) AddDistributedLoad(intensity, start, end float64) error {
	return b.AddLoad(DistributedLoad{Intensity: intensity, Start: start, End: end})
}

// AddLoad validates l against the span and appends it. A rejected load
// leaves the beam unchanged.
func (b *Beam) AddLoad(l Load) error {
	if err := b.validate(l); err != nil {
		return err
	}
	b.loads = append(b.loads, l)
	return nil
}

// RemoveLoad drops the load at index i, keeping the order of the rest
func (b *Beam) RemoveLoad(i int) error {
	if i < 0 || i >= len(b.loads) {
		return ErrNoSuchLoad
	}
	kept := make([]Load, 0, len(b.loads)-1)
	for j, l := range b.loads {
		if j != i {
			kept = append(kept, l)
		}
	}
	b.loads = kept
	return nil
}

// TotalLoad is the sum of all load resultants (N)
func (b *Beam) TotalLoad() float64 {
	var total float64
	for _, l := range b.loads {
		total += l.Resultant()
	}
	return total
}

func (b *Beam) validate(l Load) error {
	if l == nil {
		return &InvalidLoadError{Reason: "nil load"}
	}
	if !l.LoadCase().Valid() {
		return &InvalidLoadError{Load: l, Reason: "unknown load case " + string(l.LoadCase())}
	}
	switch v := l.(type) {
	case PointLoad:
		if !isFinite(v.Magnitude) || !isFinite(v.Position) {
			return &InvalidLoadError{Load: l, Reason: "magnitude and position must be finite"}
		}
		if !b.within(v.Position) {
			return &InvalidLoadError{Load: l, Reason: "position lies outside the span"}
		}
	case DistributedLoad:
		if !isFinite(v.Intensity) || !isFinite(v.Start) || !isFinite(v.End) {
			return &InvalidLoadError{Load: l, Reason: "intensity and bounds must be finite"}
		}
		if v.Start >= v.End {
			return &InvalidLoadError{Load: l, Reason: "start must be less than end"}
		}
		if !b.within(v.Start) || !b.within(v.End) {
			return &InvalidLoadError{Load: l, Reason: "extent lies outside the span"}
		}
	default:
		return &InvalidLoadError{Load: l, Reason: "unsupported load type"}
	}
	return nil
}

func (b *Beam) within(x float64) bool {
	return x >= 0 && x <= b.length
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
