package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/input"
	"github.com/spf13/cobra"
)

// beamFlags describes a beam on the command line, either through a
// definition file or through --length with repeated --point/--udl flags.
// Loads given as flags are added to those read from the file.
type beamFlags struct {
	file   string
	name   string
	length float64
	points []string
	udls   []string
}

func (f *beamFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.file, "file", "f", "", "Beam definition file (.json or .xlsx)")
	c.Flags().StringVarP(&f.name, "name", "n", "", "Beam name used in titles and exports")
	c.Flags().Float64VarP(&f.length, "length", "L", 0, "Span length (m)")
	c.Flags().StringArrayVarP(&f.points, "point", "p", nil, "Point load [CASE:]MAG@POS in N and m (repeatable)")
	c.Flags().StringArrayVarP(&f.udls, "udl", "u", nil, "Distributed load [CASE:]W@START:END in N/m and m (repeatable)")
}

func (f *beamFlags) definition() (*input.Definition, error) {
	var def *input.Definition
	if f.file != "" {
		d, err := readDefinition(f.file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.file, err)
		}
		def = d
	} else {
		if f.length == 0 {
			return nil, errors.New("provide the span with --length or a definition with --file")
		}
		def = &input.Definition{Name: "beam"}
	}
	if f.length != 0 {
		def.Length = f.length
	}
	if f.name != "" {
		def.Name = f.name
	}

	for _, s := range f.points {
		l, err := input.ParsePointLoad(s)
		if err != nil {
			return nil, err
		}
		def.Loads = append(def.Loads, l)
	}
	for _, s := range f.udls {
		l, err := input.ParseDistributedLoad(s)
		if err != nil {
			return nil, err
		}
		def.Loads = append(def.Loads, l)
	}
	return def, nil
}

// build returns the beam name and the validated beam
func (f *beamFlags) build() (string, *beam.Beam, error) {
	def, err := f.definition()
	if err != nil {
		return "", nil, err
	}
	b, err := def.Build()
	if err != nil {
		return "", nil, err
	}
	return def.Name, b, nil
}

func readDefinition(path string) (*input.Definition, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return input.LoadFromXLSX(file)
	}
	return input.LoadFromFile(path)
}
