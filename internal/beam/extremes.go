package beam

import "math"

// Station is a value of a diagram at a position
type Station struct {
	X     float64
	Value float64
}

// Extremes summarizes a sampled diagram
type Extremes struct {
	MaxShear  Station
	MinShear  Station
	MaxMoment Station
	MinMoment Station

	// Governing moment: the station with the largest |M|
	Governing Station
}

// FindExtremes scans samples for the peak shear and moment values. Ties
// keep the first station found.
func FindExtremes(samples []Sample) Extremes {
	var ext Extremes
	if len(samples) == 0 {
		return ext
	}

	first := samples[0]
	ext.MaxShear = Station{first.X, first.Shear}
	ext.MinShear = ext.MaxShear
	ext.MaxMoment = Station{first.X, first.Moment}
	ext.MinMoment = ext.MaxMoment
	ext.Governing = ext.MaxMoment

	for _, s := range samples[1:] {
		if s.Shear > ext.MaxShear.Value {
			ext.MaxShear = Station{s.X, s.Shear}
		}
		if s.Shear < ext.MinShear.Value {
			ext.MinShear = Station{s.X, s.Shear}
		}
		if s.Moment > ext.MaxMoment.Value {
			ext.MaxMoment = Station{s.X, s.Moment}
		}
		if s.Moment < ext.MinMoment.Value {
			ext.MinMoment = Station{s.X, s.Moment}
		}
		if math.Abs(s.Moment) > math.Abs(ext.Governing.Value) {
			ext.Governing = Station{s.X, s.Moment}
		}
	}
	return ext
}
