package beam

import "fmt"

// Case identifies the load type a load belongs to, used when building
// NSCP load combinations. The empty case is treated as dead load.
type Case string

// Load cases (NSCP 2015 Section 203.3)
const (
	CaseDead       Case = "D"
	CaseLive       Case = "L"
	CaseRoof       Case = "Lr"
	CaseWind       Case = "W"
	CaseEarthquake Case = "E"
	CaseRain       Case = "R"
)

// Cases lists every known load case in display order
var Cases = []Case{CaseDead, CaseLive, CaseRoof, CaseWind, CaseEarthquake, CaseRain}

// Normalize returns the case with the empty value mapped to dead load
func (c Case) Normalize() Case {
	if c == "" {
		return CaseDead
	}
	return c
}

// Valid reports whether c is one of the known load cases
func (c Case) Valid() bool {
	c = c.Normalize()
	for _, k := range Cases {
		if c == k {
			return true
		}
	}
	return false
}

// Load is a transverse load acting on the beam. It is either a PointLoad
// or a DistributedLoad; no other implementations exist.
type Load interface {
	// Resultant is the total downward force of the load (N)
	Resultant() float64

	// Centroid is the position of the resultant measured from the start support (m)
	Centroid() float64

	// LoadCase is the load case the load belongs to
	LoadCase() Case

	// Scale returns a copy of the load with its magnitude multiplied by f
	Scale(f float64) Load

	load()
}

// PointLoad is a concentrated force, downward-positive
type PointLoad struct {
	Magnitude float64 // N
	Position  float64 // m from the start support
	Case      Case
}

func (p PointLoad) Resultant() float64 { return p.Magnitude }
func (p PointLoad) Centroid() float64  { return p.Position }
func (p PointLoad) LoadCase() Case     { return p.Case.Normalize() }

func (p PointLoad) Scale(f float64) Load {
	p.Magnitude *= f
	return p
}

func (p PointLoad) String() string {
	return fmt.Sprintf("point %.2f N @ %.3f m (%s)", p.Magnitude, p.Position, p.LoadCase())
}

func (PointLoad) load() {}

// DistributedLoad is a uniform force per unit length over [Start, End]
type DistributedLoad struct {
	Intensity float64 // N/m
	Start     float64 // m
	End       float64 // m
	Case      Case
}

// Span is the loaded length
func (d DistributedLoad) Span() float64 { return d.End - d.Start }

func (d DistributedLoad) Resultant() float64 { return d.Intensity * d.Span() }
func (d DistributedLoad) Centroid() float64  { return d.Start + d.Span()/2 }
func (d DistributedLoad) LoadCase() Case     { return d.Case.Normalize() }

func (d DistributedLoad) Scale(f float64) Load {
	d.Intensity *= f
	return d
}

func (d DistributedLoad) String() string {
	return fmt.Sprintf("distributed %.2f N/m from %.3f to %.3f m (%s)", d.Intensity, d.Start, d.End, d.LoadCase())
}

func (DistributedLoad) load() {}
