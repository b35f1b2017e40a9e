package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	combosBeam    beamFlags
	combosSamples int

	// Options
	showAll       bool
	useSimplified bool
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Factored reactions, shear and moment using NSCP load combinations",
	Long: `Analyze the beam under every NSCP 2015 load combination and report the
governing factored moment (Mu) and shear (Vu).

Each load carries a load case given as a CASE: prefix on the command line
or a "case" field in definition files. Loads without a case are dead loads.

Load Cases:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Dead and live point loads
  gobeam combos --length 6 --point D:20000@3 --point L:12000@3

  # Distributed dead load with a live point load, all combinations
  gobeam combos -L 8 -u D:5000@0:8 -p L:10000@4 --all`,
	RunE: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosBeam.register(combosCmd)
	combosCmd.Flags().IntVarP(&combosSamples, "samples", "s", 0, "Number of stations along the span (default GOBEAM_SAMPLES or 1000)")

	// Options
	combosCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	combosCmd.Flags().BoolVar(&useSimplified, "simplified", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runCombos(cmd *cobra.Command, args []string) error {
	name, b, err := combosBeam.build()
	if err != nil {
		return err
	}
	if b.Len() == 0 {
		return errors.New("provide at least one load; use 'gobeam combos --help' for usage information")
	}

	samples := combosSamples
	if samples == 0 {
		samples = cfg.Samples
	}

	// Select which combinations to use
	combinations := nscp.LoadCombinations
	if useSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	results, governing, err := nscp.CalculateGoverning(b, combinations, samples)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Print header
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          NSCP 2015 FACTORED BEAM RESPONSE")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	// Unfactored loads per case
	fmt.Fprintf(out, "UNFACTORED LOADS (%s, L = %.3f m):\n", name, b.Length())
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	totals := totalsByCase(b)
	for _, c := range beam.Cases {
		if t, ok := totals[c]; ok {
			fmt.Fprintf(w, "  %s (%s):\t%.2f N\n", caseNames[c], c, t)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	if showAll {
		fmt.Fprintln(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tRa (N)\tRb (N)\tVu (N)\tMu (N-m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t──────\t──────\t──────\t────────\n")

		for i, res := range results {
			marker := ""
			if i == governing {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.2f\t%.2f%s\n",
				res.Combination.ID, res.Combination.Description,
				res.Reactions.Start, res.Reactions.End, res.Vu(), res.Mu(), marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	gov := results[governing]

	// Print result
	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", gov.Combination.ID, gov.Combination.Description)
	fmt.Fprintf(out, "  Location of Mu: x = %.3f m\n", gov.Extremes.Governing.X)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  FACTORED MOMENT (Mu) = %.2f N-m  \n", gov.Mu())
	fmt.Fprintf(out, "  ║  FACTORED SHEAR  (Vu) = %.2f N  \n", gov.Vu())
	fmt.Fprintf(out, "  ╚═══════════════════════════════════╝\n")
	fmt.Fprintln(out)
	return nil
}

var caseNames = map[beam.Case]string{
	beam.CaseDead:       "Dead Load",
	beam.CaseLive:       "Live Load",
	beam.CaseRoof:       "Roof Live Load",
	beam.CaseWind:       "Wind Load",
	beam.CaseEarthquake: "Earthquake Load",
	beam.CaseRain:       "Rain Load",
}

func totalsByCase(b *beam.Beam) map[beam.Case]float64 {
	totals := make(map[beam.Case]float64)
	for _, l := range b.Loads() {
		totals[l.LoadCase()] += l.Resultant()
	}
	return totals
}
