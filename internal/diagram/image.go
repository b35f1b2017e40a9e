package diagram

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	shearColor  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	shearFill   = color.RGBA{R: 100, G: 149, B: 237, A: 120}
	momentColor = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	momentFill  = color.RGBA{R: 237, G: 120, B: 100, A: 120}
)

// NewShearPlot builds the shear force diagram
func NewShearPlot(samples []beam.Sample) (*plot.Plot, error) {
	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i] = plotter.XY{X: s.X, Y: s.Shear}
	}
	return newDiagramPlot("Shear Force Diagram", "Shear Force (N)", pts, shearColor, shearFill, "V")
}

// NewMomentPlot builds the bending moment diagram
func NewMomentPlot(samples []beam.Sample) (*plot.Plot, error) {
	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i] = plotter.XY{X: s.X, Y: s.Moment}
	}
	return newDiagramPlot("Bending Moment Diagram", "Bending Moment (N·m)", pts, momentColor, momentFill, "M")
}

func newDiagramPlot(title, ylabel string, pts plotter.XYs, c, fill color.Color, symbol string) (*plot.Plot, error) {
	if len(pts) < 2 {
		return nil, beam.ErrSampleCount
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position along beam (m)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = c
	line.FillColor = fill
	p.Add(line)

	// Beam axis
	axis, err := plotter.NewLine(plotter.XYs{
		{X: pts[0].X, Y: 0},
		{X: pts[len(pts)-1].X, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Black
	p.Add(axis)

	// Mark the peak magnitude
	peak := 0
	for i := range pts {
		if math.Abs(pts[i].Y) > math.Abs(pts[peak].Y) {
			peak = i
		}
	}
	mark, err := plotter.NewScatter(plotter.XYs{pts[peak]})
	if err != nil {
		return nil, err
	}
	mark.GlyphStyle.Color = c
	mark.GlyphStyle.Radius = vg.Points(3)
	mark.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(mark)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{pts[peak]},
		Labels: []string{fmt.Sprintf("%s=%.2f @ %.2f m", symbol, pts[peak].Y, pts[peak].X)},
	})
	if err != nil {
		return nil, err
	}
	p.Add(lbl)

	return p, nil
}

// WriteDiagram draws the shear and moment diagrams stacked on one page
// and writes them to w in the given format (png, svg, pdf, ...).
func WriteDiagram(w io.Writer, samples []beam.Sample, format string, width, height vg.Length) error {
	sp, err := NewShearPlot(samples)
	if err != nil {
		return err
	}
	mp, err := NewMomentPlot(samples)
	if err != nil {
		return err
	}

	c, err := draw.NewFormattedCanvas(width, height, strings.ToLower(format))
	if err != nil {
		return err
	}

	plots := [][]*plot.Plot{{sp}, {mp}}
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  4 * vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	_, err = c.WriteTo(w)
	return err
}

// ExportDiagram writes the stacked diagrams to filename. The format
// follows the file extension; files without one get ".png".
func ExportDiagram(samples []beam.Sample, filename string, width, height vg.Length) (string, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "png"
		filename += ".png"
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if err := WriteDiagram(f, samples, ext, width, height); err != nil {
		f.Close()
		return "", err
	}
	return filename, f.Close()
}
