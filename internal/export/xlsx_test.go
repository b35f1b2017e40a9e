package export

import (
	"bytes"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/input"
	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

func workedResult(tst *testing.T) Result {
	b, _ := beam.NewBeam(10)
	b.AddPointLoad(1000, 3)
	b.AddLoad(beam.DistributedLoad{Intensity: 500, Start: 6, End: 10, Case: beam.CaseLive})
	r, err := b.Reactions()
	if err != nil {
		tst.Fatal(err)
	}
	samples, err := b.SampleDiagram(11)
	if err != nil {
		tst.Fatal(err)
	}
	return Result{Name: "worked", Beam: b, Reactions: r, Samples: samples}
}

func cellFloat(tst *testing.T, f *excelize.File, sheet, cell string) float64 {
	s, err := f.GetCellValue(sheet, cell)
	if err != nil {
		tst.Fatal(err)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		tst.Fatalf("%s!%s = %q: %v", sheet, cell, s, err)
	}
	return v
}

func Test_xlsx01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("xlsx01. workbook layout")

	res := workedResult(tst)
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, res); err != nil {
		tst.Fatal(err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		tst.Fatal(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 3 || sheets[0] != SheetSummary {
		tst.Fatalf("sheets: %v", sheets)
	}

	chk.Float64(tst, "Ra", 1e-9, cellFloat(tst, f, SheetSummary, "B4"), 1100)
	chk.Float64(tst, "Rb", 1e-9, cellFloat(tst, f, SheetSummary, "B5"), 1900)

	rows, err := f.GetRows(SheetDiagram)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(rows), 12)
	chk.Float64(tst, "last x", 1e-12, cellFloat(tst, f, SheetDiagram, "A12"), 10)
	chk.Float64(tst, "last V", 1e-9, cellFloat(tst, f, SheetDiagram, "B12"), 1900)

	loads, err := f.GetRows(SheetLoads)
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(len(loads), 4)
	if loads[3][0] != "distributed" || loads[3][4] != "L" {
		tst.Fatalf("load row: %v", loads[3])
	}
}

func Test_xlsx02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("xlsx02. save to file")

	path := filepath.Join(tst.TempDir(), "worked.xlsx")
	if err := SaveXLSX(path, workedResult(tst)); err != nil {
		tst.Fatal(err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		tst.Fatal(err)
	}
	defer f.Close()
	chk.Float64(tst, "length", 0, cellFloat(tst, f, SheetSummary, "B2"), 10)
}

func Test_xlsx03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("xlsx03. exported workbook reads back as a definition")

	res := workedResult(tst)
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, res); err != nil {
		tst.Fatal(err)
	}

	def, err := input.LoadFromXLSX(bytes.NewReader(buf.Bytes()))
	if err != nil {
		tst.Fatal(err)
	}
	if def.Name != "worked" {
		tst.Fatalf("name: %q", def.Name)
	}
	b, err := def.Build()
	if err != nil {
		tst.Fatal(err)
	}
	chk.IntAssert(b.Len(), 2)
	if got := b.Loads()[1].LoadCase(); got != beam.CaseLive {
		tst.Fatalf("case: %q", got)
	}
	r, err := b.Reactions()
	if err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "Ra", 1e-9, r.Start, res.Reactions.Start)
	chk.Float64(tst, "Rb", 1e-9, r.End, res.Reactions.End)
}
