package cmd

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/export"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	analyzeBeam beamFlags

	// Sampling and queries
	analyzeSamples int
	analyzeAt      []float64

	// Terminal output
	analyzeDiagram   bool
	analyzeSchematic bool

	// Exports
	analyzeOutput  string
	analyzeXLSX    string
	analyzeReport  string
	analyzeProject string
	analyzeAuthor  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute reactions, shear and moment of a simply supported beam",
	Long: `Compute the support reactions, shear force and bending moment of a
simply supported beam (pin at x = 0, roller at x = L).

Sign convention: loads act downward as positive values. Shear starts at
-Ra and moments are negative when sagging.

Load syntax:
  --point [CASE:]MAG@POS        point load of MAG (N) at POS (m)
  --udl   [CASE:]W@START:END    uniform load of W (N/m) over START..END (m)
  CASE is one of D, L, Lr, W, E, R (default D)

Examples:
  # 10 m beam with a 1 kN point load at 3 m and 500 N/m over the last 4 m
  gobeam analyze --length 10 --point 1000@3 --udl 500@6:10

  # Values at given stations with terminal diagrams
  gobeam analyze -L 10 -p 1000@3 --at 2.5,5 --diagram

  # Read the beam from a file and export a PNG, a workbook and a report
  gobeam analyze --file beam.json --output sfd-bmd.png --xlsx beam.xlsx --report beam.pdf`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeBeam.register(analyzeCmd)

	analyzeCmd.Flags().IntVarP(&analyzeSamples, "samples", "s", 0, "Number of stations along the span (default GOBEAM_SAMPLES or 1000)")
	analyzeCmd.Flags().Float64SliceVar(&analyzeAt, "at", nil, "Report shear and moment at these positions (m)")

	analyzeCmd.Flags().BoolVarP(&analyzeDiagram, "diagram", "d", false, "Draw shear and moment diagrams in the terminal")
	analyzeCmd.Flags().BoolVar(&analyzeSchematic, "schematic", false, "Draw the beam and its loads in the terminal")

	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Export the diagrams as an image (.png, .svg, .pdf)")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Export results to an Excel workbook")
	analyzeCmd.Flags().StringVar(&analyzeReport, "report", "", "Write a PDF calculation report")
	analyzeCmd.Flags().StringVar(&analyzeProject, "project", "", "Project name shown in the report")
	analyzeCmd.Flags().StringVar(&analyzeAuthor, "author", "", "Author shown in the report")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	name, b, err := analyzeBeam.build()
	if err != nil {
		return err
	}

	samples := analyzeSamples
	if samples == 0 {
		samples = cfg.Samples
	}

	r, err := b.Reactions()
	if err != nil {
		return err
	}
	diagramSamples, err := b.SampleDiagram(samples)
	if err != nil {
		return err
	}
	ext := beam.FindExtremes(diagramSamples)

	out := cmd.OutOrStdout()

	// Print header
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          SIMPLY SUPPORTED BEAM ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Beam:\t%s\n", name)
	fmt.Fprintf(w, "  Span (L):\t%.3f m\n", b.Length())
	for i, l := range b.Loads() {
		fmt.Fprintf(w, "  Load %d:\t%s\n", i+1, l)
	}
	fmt.Fprintf(w, "  Total load:\t%.2f N\n", b.TotalLoad())
	fmt.Fprintf(w, "  Stations:\t%d\n", samples)
	w.Flush()
	fmt.Fprintln(out)

	if analyzeSchematic {
		fmt.Fprintln(out, diagram.DrawBeamSchematic(b, diagram.DefaultWidth))
	}

	// Reactions
	fmt.Fprintln(out, "SUPPORT REACTIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ra (pin, x = 0):\t%.2f N\n", r.Start)
	fmt.Fprintf(w, "  Rb (roller, x = L):\t%.2f N\n", r.End)
	fmt.Fprintf(w, "  Ra + Rb:\t%.2f N", r.Sum())
	if inEquilibrium(b, r) {
		fmt.Fprintf(w, " ✓")
	} else {
		fmt.Fprintf(w, " ⚠ (≠ total load)")
	}
	fmt.Fprintln(w)
	w.Flush()
	fmt.Fprintln(out)

	// Extremes
	fmt.Fprintln(out, "EXTREME VALUES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tValue\tat x (m)\n")
	fmt.Fprintf(w, "  Max shear:\t%.2f N\t%.3f\n", ext.MaxShear.Value, ext.MaxShear.X)
	fmt.Fprintf(w, "  Min shear:\t%.2f N\t%.3f\n", ext.MinShear.Value, ext.MinShear.X)
	fmt.Fprintf(w, "  Max moment:\t%.2f N-m\t%.3f\n", ext.MaxMoment.Value, ext.MaxMoment.X)
	fmt.Fprintf(w, "  Min moment:\t%.2f N-m\t%.3f\n", ext.MinMoment.Value, ext.MinMoment.X)
	w.Flush()
	fmt.Fprintln(out)

	if len(analyzeAt) > 0 {
		if err := printStations(out, b, analyzeAt); err != nil {
			return err
		}
	}

	if analyzeDiagram {
		fmt.Fprintln(out, diagram.DrawShearDiagram(diagramSamples, diagram.DefaultWidth, diagram.DefaultHeight))
		fmt.Fprintln(out)
		fmt.Fprintln(out, diagram.DrawMomentDiagram(diagramSamples, diagram.DefaultWidth, diagram.DefaultHeight))
		fmt.Fprintln(out)
	}

	fmt.Fprint(out, diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("Ra = %.2f N", r.Start),
		fmt.Sprintf("Rb = %.2f N", r.End),
		fmt.Sprintf("Governing M = %.2f N-m @ %.3f m", ext.Governing.Value, ext.Governing.X),
	}))
	fmt.Fprintln(out)

	return exportAnalysis(out, name, b, r, diagramSamples)
}

// inEquilibrium checks Ra + Rb against the total applied load
func inEquilibrium(b *beam.Beam, r beam.Reactions) bool {
	scale := 1.0
	for _, l := range b.Loads() {
		scale += math.Abs(l.Resultant())
	}
	return math.Abs(r.Sum()-b.TotalLoad()) <= 1e-9*scale
}

func printStations(out io.Writer, b *beam.Beam, xs []float64) error {
	fmt.Fprintln(out, "VALUES AT STATIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  x (m)\tV (N)\tM (N-m)\n")
	fmt.Fprintf(w, "  ─────\t─────\t───────\n")
	for _, x := range xs {
		v, err := b.ShearForce(x)
		if err != nil {
			return err
		}
		m, err := b.BendingMoment(x)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %.3f\t%.2f\t%.2f\n", x, v, m)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func exportAnalysis(out io.Writer, name string, b *beam.Beam, r beam.Reactions, samples []beam.Sample) error {
	if analyzeOutput != "" {
		width := vg.Length(cfg.PlotWidth) * vg.Inch
		height := vg.Length(cfg.PlotHeight) * vg.Inch
		path, err := diagram.ExportDiagram(samples, analyzeOutput, width, height)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "  Diagram saved to %s\n", path)
	}

	if analyzeXLSX != "" {
		err := export.SaveXLSX(analyzeXLSX, export.Result{
			Name:      name,
			Beam:      b,
			Reactions: r,
			Samples:   samples,
		})
		if err != nil {
			return fmt.Errorf("exporting workbook: %w", err)
		}
		fmt.Fprintf(out, "  Workbook saved to %s\n", analyzeXLSX)
	}

	if analyzeReport != "" {
		err := report.Save(analyzeReport, report.Input{
			Title:     name,
			Project:   analyzeProject,
			Author:    analyzeAuthor,
			Date:      time.Now(),
			Beam:      b,
			Reactions: r,
			Samples:   samples,
		})
		if err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(out, "  Report saved to %s\n", analyzeReport)
	}
	return nil
}
