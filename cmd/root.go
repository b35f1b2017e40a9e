package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var (
	envFile string

	// cfg holds the defaults for every command, read from the
	// environment before a command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Simply Supported Beam Analysis Tool",
	Long: `gobeam - Go Simply Supported Beam Analyzer

A CLI tool for the static analysis of simply supported beams
under point loads and uniformly distributed loads.

This tool helps structural engineers compute:
  - Support reactions (pin at the start, roller at the end)
  - Shear force and bending moment anywhere along the span
  - Shear and moment diagrams (terminal, PNG/SVG/PDF, XLSX)
  - Factored responses using NSCP 2015 load combinations

Defaults may be set through GOBEAM_* environment variables or a .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gobeam v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Simply Supported Beam Analyzer                       ║")
		fmt.Fprintf(out, "  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the static analysis of simply supported beams.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Support reactions, shear force and bending moment")
		fmt.Fprintln(out, "    • Point loads and uniformly distributed loads")
		fmt.Fprintln(out, "    • Shear and moment diagrams (terminal, image, spreadsheet)")
		fmt.Fprintln(out, "    • PDF calculation reports")
		fmt.Fprintln(out, "    • Factored responses using NSCP load combinations")
		fmt.Fprintln(out, "    • HTTP API")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gobeam --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Environment file with GOBEAM_* defaults (default .env)")
}
