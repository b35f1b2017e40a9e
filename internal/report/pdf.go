package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/phpdave11/gofpdf"
	"gonum.org/v1/plot/vg"
)

// Input is the content of a calculation report
type Input struct {
	Title     string
	Project   string
	Author    string
	Date      time.Time
	Beam      *beam.Beam
	Reactions beam.Reactions
	Samples   []beam.Sample
}

const diagramImage = "diagram"

// New lays out the report: header, load table, reactions, extremes and
// the stacked shear/moment diagrams.
func New(in Input) (*gofpdf.Fpdf, error) {
	if in.Title == "" {
		in.Title = "Simply Supported Beam Analysis"
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(in.Title, true)
	pdf.SetCreator("gobeam v"+version.Version, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if in.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
		pdf.Ln(6)
	}
	if in.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", in.Date.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "INPUT DATA")
	row(pdf, "Span length", fmt.Sprintf("%.3f m", in.Beam.Length()))
	row(pdf, "Supports", "pinned at 0, roller at L")
	row(pdf, "Number of loads", fmt.Sprintf("%d", in.Beam.Len()))
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range []struct {
		w float64
		s string
	}{{10, "#"}, {30, "Type"}, {40, "Magnitude"}, {30, "From (m)"}, {30, "To (m)"}, {20, "Case"}} {
		pdf.CellFormat(h.w, 6, h.s, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for i, l := range in.Beam.Loads() {
		var typ, mag, from, to string
		switch v := l.(type) {
		case beam.PointLoad:
			typ, mag, from, to = "Point", fmt.Sprintf("%.2f N", v.Magnitude), fmt.Sprintf("%.3f", v.Position), "-"
		case beam.DistributedLoad:
			typ, mag, from, to = "Distributed", fmt.Sprintf("%.2f N/m", v.Intensity), fmt.Sprintf("%.3f", v.Start), fmt.Sprintf("%.3f", v.End)
		}
		pdf.CellFormat(10, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, typ, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, mag, "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, from, "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, to, "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, string(l.LoadCase()), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	section(pdf, "SUPPORT REACTIONS")
	row(pdf, "Total applied load", fmt.Sprintf("%.2f N", in.Beam.TotalLoad()))
	row(pdf, "Reaction at start (Ra)", fmt.Sprintf("%.2f N", in.Reactions.Start))
	row(pdf, "Reaction at end (Rb)", fmt.Sprintf("%.2f N", in.Reactions.End))
	pdf.Ln(4)

	ext := beam.FindExtremes(in.Samples)
	section(pdf, "EXTREMES")
	row(pdf, "Maximum shear", fmt.Sprintf("%.2f N at %.3f m", ext.MaxShear.Value, ext.MaxShear.X))
	row(pdf, "Minimum shear", fmt.Sprintf("%.2f N at %.3f m", ext.MinShear.Value, ext.MinShear.X))
	row(pdf, "Maximum moment", fmt.Sprintf("%.2f N-m at %.3f m", ext.MaxMoment.Value, ext.MaxMoment.X))
	row(pdf, "Minimum moment", fmt.Sprintf("%.2f N-m at %.3f m", ext.MinMoment.Value, ext.MinMoment.X))
	pdf.Ln(4)

	var img bytes.Buffer
	if err := diagram.WriteDiagram(&img, in.Samples, "png", 7*vg.Inch, 6*vg.Inch); err != nil {
		return nil, fmt.Errorf("rendering diagram: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader(diagramImage, opts, &img)
	pdf.AddPage()
	section(pdf, "SHEAR FORCE AND BENDING MOMENT DIAGRAMS")
	pdf.ImageOptions(diagramImage, 15, pdf.GetY()+2, 180, 0, false, opts, 0, "")

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	return pdf, nil
}

// Write renders the report to w
func Write(w io.Writer, in Input) error {
	pdf, err := New(in)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// Save renders the report to a file
func Save(filename string, in Input) error {
	pdf, err := New(in)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(filename)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
