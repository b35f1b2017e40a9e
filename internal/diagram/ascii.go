package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/guptarohit/asciigraph"
)

// Terminal plot size in characters
const (
	DefaultWidth  = 60
	DefaultHeight = 12
)

// DrawShearDiagram renders the sampled shear force as a terminal line chart
func DrawShearDiagram(samples []beam.Sample, width, height int) string {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Shear
	}
	return drawSeries(values, width, height, "Shear Force Diagram (N)")
}

// DrawMomentDiagram renders the sampled bending moment as a terminal line chart
func DrawMomentDiagram(samples []beam.Sample, width, height int) string {
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Moment
	}
	return drawSeries(values, width, height, "Bending Moment Diagram (N·m)")
}

func drawSeries(values []float64, width, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return asciigraph.Plot(values,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}

// DrawBeamSchematic sketches the beam, its supports and each load, one
// load per row above the beam line. width is the beam length in characters.
func DrawBeamSchematic(b *beam.Beam, width int) string {
	if width < 10 {
		width = DefaultWidth
	}
	var sb strings.Builder

	col := func(x float64) int {
		c := int(math.Round(x / b.Length() * float64(width-1)))
		if c < 0 {
			return 0
		}
		if c > width-1 {
			return width - 1
		}
		return c
	}

	sb.WriteString("\n")
	for _, l := range b.Loads() {
		switch v := l.(type) {
		case beam.PointLoad:
			sb.WriteString(fmt.Sprintf("  %s↓ %.2f N (%s)\n",
				strings.Repeat(" ", col(v.Position)), v.Magnitude, v.LoadCase()))
		case beam.DistributedLoad:
			s, e := col(v.Start), col(v.End)
			sb.WriteString(fmt.Sprintf("  %s%s %.2f N/m (%s)\n",
				strings.Repeat(" ", s), strings.Repeat("↓", e-s+1), v.Intensity, v.LoadCase()))
		}
	}

	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("═", width)))
	sb.WriteString(fmt.Sprintf("  △%s○\n", strings.Repeat(" ", width-2)))

	left := "0.00"
	right := fmt.Sprintf("%.2f m", b.Length())
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(fmt.Sprintf("  %s%s%s\n", left, strings.Repeat(" ", gap), right))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-len([]rune(s)))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
