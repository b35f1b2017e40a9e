package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvSamples    = "GOBEAM_SAMPLES"
	EnvAddr       = "GOBEAM_ADDR"
	EnvRate       = "GOBEAM_RATE"
	EnvBurst      = "GOBEAM_BURST"
	EnvPlotWidth  = "GOBEAM_PLOT_WIDTH"
	EnvPlotHeight = "GOBEAM_PLOT_HEIGHT"
)

// Config holds defaults shared by the commands. Flags given on the
// command line override these values.
type Config struct {
	Samples int // stations along the span for diagrams

	// HTTP API
	Addr  string
	Rate  float64 // requests per second per client
	Burst int

	// Exported diagram size (inches)
	PlotWidth  float64
	PlotHeight float64
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Samples:    1000,
		Addr:       ":8080",
		Rate:       5,
		Burst:      10,
		PlotWidth:  8,
		PlotHeight: 8,
	}
}

// DefaultEnvFile is read by Load when no env file is named
const DefaultEnvFile = ".env"

// Load reads env files into the environment and then applies the
// GOBEAM_* variables over the defaults. Without arguments it reads
// DefaultEnvFile when present; files named explicitly must exist.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		err := godotenv.Load(DefaultEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", DefaultEnvFile, err)
		}
		return FromEnv()
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv applies the GOBEAM_* variables over the defaults
func FromEnv() (Config, error) {
	cfg := Default()

	if v, ok := os.LookupEnv(EnvSamples); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 {
			return cfg, fmt.Errorf("%s: want an integer >= 2, got %q", EnvSamples, v)
		}
		cfg.Samples = n
	}
	if v, ok := os.LookupEnv(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := os.LookupEnv(EnvRate); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return cfg, fmt.Errorf("%s: want a positive number, got %q", EnvRate, v)
		}
		cfg.Rate = r
	}
	if v, ok := os.LookupEnv(EnvBurst); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("%s: want a positive integer, got %q", EnvBurst, v)
		}
		cfg.Burst = n
	}
	for _, p := range []struct {
		key string
		dst *float64
	}{
		{EnvPlotWidth, &cfg.PlotWidth},
		{EnvPlotHeight, &cfg.PlotHeight},
	} {
		v, ok := os.LookupEnv(p.key)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return cfg, fmt.Errorf("%s: want a positive number, got %q", p.key, v)
		}
		*p.dst = f
	}

	return cfg, nil
}
