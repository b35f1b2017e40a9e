package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gobeam/internal/server"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var (
	serveAddr    string
	serveRate    float64
	serveBurst   int
	serveSamples int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve beam analysis over HTTP",
	Long: `Start an HTTP API for beam analysis.

Endpoints:
  GET  /api/health               service status and version
  POST /api/analyze              reactions, extremes and sampled diagrams (JSON)
  POST /api/diagram?format=png   stacked shear and moment diagrams (png, svg, pdf)

Request bodies use the same JSON layout as definition files, with an
optional "samples" field. Requests are rate limited per client address.

Examples:
  gobeam serve --addr :8080
  curl -X POST localhost:8080/api/analyze -d @beam.json`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default GOBEAM_ADDR or :8080)")
	serveCmd.Flags().Float64Var(&serveRate, "rate", 0, "Requests per second per client (default GOBEAM_RATE or 5)")
	serveCmd.Flags().IntVar(&serveBurst, "burst", 0, "Request burst per client (default GOBEAM_BURST or 10)")
	serveCmd.Flags().IntVarP(&serveSamples, "samples", "s", 0, "Default number of stations (default GOBEAM_SAMPLES or 1000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	opts := server.Options{
		Samples:    cfg.Samples,
		Rate:       cfg.Rate,
		Burst:      cfg.Burst,
		PlotWidth:  vg.Length(cfg.PlotWidth) * vg.Inch,
		PlotHeight: vg.Length(cfg.PlotHeight) * vg.Inch,
		Logger:     log.New(os.Stderr, "gobeam: ", log.LstdFlags),
	}
	if serveRate > 0 {
		opts.Rate = serveRate
	}
	if serveBurst > 0 {
		opts.Burst = serveBurst
	}
	if serveSamples > 0 {
		opts.Samples = serveSamples
	}
	addr := cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, addr, server.NewRouter(opts), opts.Logger)
}
