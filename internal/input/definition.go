package input

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	errtree "github.com/Konstantin8105/errors"
	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Load types accepted in definition files
const (
	TypePoint       = "point"
	TypeDistributed = "distributed"
)

// Definition describes a beam and its loads as stored in a JSON file
type Definition struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Length      float64 `json:"length"` // m
	Loads       []Load  `json:"loads"`
}

// Load is one entry of a definition. Point loads use Magnitude and
// Position; distributed loads use Intensity, Start and End.
type Load struct {
	Type      string  `json:"type"`
	Magnitude float64 `json:"magnitude,omitempty"` // N
	Position  float64 `json:"position,omitempty"`  // m
	Intensity float64 `json:"intensity,omitempty"` // N/m
	Start     float64 `json:"start,omitempty"`     // m
	End       float64 `json:"end,omitempty"`       // m
	Case      string  `json:"case,omitempty"`
}

// ToLoad converts the entry to a beam load
func (l Load) ToLoad() (beam.Load, error) {
	c := beam.Case(l.Case)
	switch strings.ToLower(strings.TrimSpace(l.Type)) {
	case TypePoint:
		return beam.PointLoad{Magnitude: l.Magnitude, Position: l.Position, Case: c}, nil
	case TypeDistributed, "udl":
		return beam.DistributedLoad{Intensity: l.Intensity, Start: l.Start, End: l.End, Case: c}, nil
	}
	return nil, fmt.Errorf("unknown load type %q", l.Type)
}

// FromBeam builds a definition describing b
func FromBeam(name string, b *beam.Beam) Definition {
	def := Definition{Name: name, Length: b.Length()}
	for _, l := range b.Loads() {
		switch v := l.(type) {
		case beam.PointLoad:
			def.Loads = append(def.Loads, Load{
				Type:      TypePoint,
				Magnitude: v.Magnitude,
				Position:  v.Position,
				Case:      string(v.LoadCase()),
			})
		case beam.DistributedLoad:
			def.Loads = append(def.Loads, Load{
				Type:      TypeDistributed,
				Intensity: v.Intensity,
				Start:     v.Start,
				End:       v.End,
				Case:      string(v.LoadCase()),
			})
		}
	}
	return def
}

// DefinitionError lists every problem found while building a
// definition. Unwrap exposes the individual load errors, so errors.As
// finds a *beam.InvalidLoadError among them.
type DefinitionError struct {
	tree error
	errs []error
}

func (e *DefinitionError) Error() string { return e.tree.Error() }

func (e *DefinitionError) Unwrap() []error { return e.errs }

// Build creates the beam. Every load is checked and all problems are
// reported together in a *DefinitionError.
func (d Definition) Build() (*beam.Beam, error) {
	b, err := beam.NewBeam(d.Length)
	if err != nil {
		return nil, err
	}

	et := errtree.New("beam definition")
	var errs []error
	for i, l := range d.Loads {
		ld, err := l.ToLoad()
		if err == nil {
			err = b.AddLoad(ld)
		}
		if err != nil {
			err = fmt.Errorf("load %d: %w", i+1, err)
			et.Add(err)
			errs = append(errs, err)
		}
	}
	if et.IsError() {
		return nil, &DefinitionError{tree: et, errs: errs}
	}
	return b, nil
}

// LoadFromFile loads a beam definition from a JSON file
func LoadFromFile(filepath string) (*Definition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}

	return &def, nil
}
