package export

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/input"
	"github.com/xuri/excelize/v2"
)

// Sheet names written by NewWorkbook
const (
	SheetSummary = "Summary"
	SheetDiagram = "Diagram"
	SheetLoads   = input.DefinitionSheet
)

// Result is what gets written to a workbook
type Result struct {
	Name      string
	Beam      *beam.Beam
	Reactions beam.Reactions
	Samples   []beam.Sample
}

// NewWorkbook lays the result out over three sheets: a summary with the
// reactions and extremes, the beam definition (readable again by
// input.LoadFromXLSX), and the sampled diagram (x, V, M) ready for
// charting in a spreadsheet.
func NewWorkbook(res Result) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetLoads, SheetDiagram} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := writeSummary(f, res); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeLoads(f, res); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSamples(f, res.Samples); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteXLSX writes the workbook to w
func WriteXLSX(w io.Writer, res Result) error {
	f, err := NewWorkbook(res)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// SaveXLSX writes the workbook to a file
func SaveXLSX(filename string, res Result) error {
	f, err := NewWorkbook(res)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(filename)
}

func writeSummary(f *excelize.File, res Result) error {
	ext := beam.FindExtremes(res.Samples)
	rows := [][]interface{}{
		{"Beam", res.Name},
		{"Length (m)", res.Beam.Length()},
		{"Total load (N)", res.Beam.TotalLoad()},
		{"Reaction at start (N)", res.Reactions.Start},
		{"Reaction at end (N)", res.Reactions.End},
		{"Max shear (N)", ext.MaxShear.Value, "at (m)", ext.MaxShear.X},
		{"Min shear (N)", ext.MinShear.Value, "at (m)", ext.MinShear.X},
		{"Max moment (N·m)", ext.MaxMoment.Value, "at (m)", ext.MaxMoment.X},
		{"Min moment (N·m)", ext.MinMoment.Value, "at (m)", ext.MinMoment.X},
	}
	return setRows(f, SheetSummary, 1, rows)
}

func writeLoads(f *excelize.File, res Result) error {
	return setRows(f, SheetLoads, 1, input.FromBeam(res.Name, res.Beam).Rows())
}

func writeSamples(f *excelize.File, samples []beam.Sample) error {
	rows := make([][]interface{}, 0, len(samples)+1)
	rows = append(rows, []interface{}{"x (m)", "V (N)", "M (N·m)"})
	for _, s := range samples {
		rows = append(rows, []interface{}{s.X, s.Shear, s.Moment})
	}
	return setRows(f, SheetDiagram, 1, rows)
}

func setRows(f *excelize.File, sheet string, first int, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, first+i)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, first+i, err)
		}
	}
	return nil
}
