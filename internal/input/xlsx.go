package input

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefinitionSheet is the sheet LoadFromXLSX reads when a workbook has
// one; other workbooks are read from their first sheet.
const DefinitionSheet = "Loads"

// LoadFromXLSX reads a beam definition from a workbook.
//
// Layout:
//
//	row 1:  length | <span in m> [| name | <beam name>]
//	row 2:  header (ignored)
//	row 3+: type | magnitude or intensity | position or start | end | case
func LoadFromXLSX(r io.Reader) (*Definition, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if idx, err := f.GetSheetIndex(DefinitionSheet); err == nil && idx >= 0 {
		sheet = DefinitionSheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 || len(rows[0]) < 2 {
		return nil, fmt.Errorf("sheet %q: first row must hold the beam length", sheet)
	}

	def := &Definition{Name: sheet}
	def.Length, err = parseCell(rows[0][1])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: length: %w", sheet, err)
	}
	if len(rows[0]) >= 4 && strings.EqualFold(strings.TrimSpace(rows[0][2]), "name") {
		def.Name = strings.TrimSpace(rows[0][3])
	}

	for i := 2; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		l, err := parseLoadRow(row)
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
		}
		def.Loads = append(def.Loads, l)
	}

	return def, nil
}

// Rows lays the definition out the way LoadFromXLSX reads it
func (d Definition) Rows() [][]interface{} {
	rows := [][]interface{}{
		{"length", d.Length, "name", d.Name},
		{"type", "magnitude / intensity", "position / start", "end", "case"},
	}
	for _, l := range d.Loads {
		switch l.Type {
		case TypePoint:
			rows = append(rows, []interface{}{TypePoint, l.Magnitude, l.Position, nil, l.Case})
		default:
			rows = append(rows, []interface{}{TypeDistributed, l.Intensity, l.Start, l.End, l.Case})
		}
	}
	return rows
}

func parseLoadRow(row []string) (Load, error) {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	l := Load{
		Type: strings.ToLower(strings.TrimSpace(cell(0))),
		Case: strings.TrimSpace(cell(4)),
	}
	value, err := parseCell(cell(1))
	if err != nil {
		return l, err
	}
	first, err := parseCell(cell(2))
	if err != nil {
		return l, err
	}

	switch l.Type {
	case TypePoint:
		l.Magnitude = value
		l.Position = first
	case TypeDistributed, "udl":
		l.Type = TypeDistributed
		l.Intensity = value
		l.Start = first
		l.End, err = parseCell(cell(3))
		if err != nil {
			return l, err
		}
	default:
		return l, fmt.Errorf("unknown load type %q", cell(0))
	}
	return l, nil
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	return strconv.ParseFloat(s, 64)
}
