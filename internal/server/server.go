package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/input"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
	"gonum.org/v1/plot/vg"
)

// MaxSamples bounds the stations a single request may ask for
const MaxSamples = 100000

// Options configures the HTTP API
type Options struct {
	Samples    int     // default stations when a request gives none
	Rate       float64 // requests per second per client
	Burst      int
	PlotWidth  vg.Length
	PlotHeight vg.Length
	Logger     *log.Logger
}

// AnalyzeRequest is the body of POST /api/analyze and POST /api/diagram
type AnalyzeRequest struct {
	input.Definition
	Samples int `json:"samples,omitempty"`
}

// AnalyzeResponse is the body returned by POST /api/analyze
type AnalyzeResponse struct {
	Name      string        `json:"name,omitempty"`
	Length    float64       `json:"length"`
	TotalLoad float64       `json:"total_load"`
	Reactions ReactionsJSON `json:"reactions"`
	Extremes  ExtremesJSON  `json:"extremes"`
	Samples   []beam.Sample `json:"samples"`
}

type ReactionsJSON struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type StationJSON struct {
	X     float64 `json:"x"`
	Value float64 `json:"value"`
}

type ExtremesJSON struct {
	MaxShear  StationJSON `json:"max_shear"`
	MinShear  StationJSON `json:"min_shear"`
	MaxMoment StationJSON `json:"max_moment"`
	MinMoment StationJSON `json:"min_moment"`
}

type errorJSON struct {
	Error string `json:"error"`
}

// Handler serves the beam analysis API
type Handler struct {
	opts Options
	log  *log.Logger
}

// NewRouter wires the API routes behind the rate limiter
func NewRouter(opts Options) *mux.Router {
	if opts.Samples < 2 {
		opts.Samples = 1000
	}
	if opts.Rate <= 0 {
		opts.Rate = 5
	}
	if opts.Burst < 1 {
		opts.Burst = 10
	}
	if opts.PlotWidth <= 0 {
		opts.PlotWidth = 8 * vg.Inch
	}
	if opts.PlotHeight <= 0 {
		opts.PlotHeight = 8 * vg.Inch
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	h := &Handler{opts: opts, log: opts.Logger}
	limiter := NewIPRateLimiter(rate.Limit(opts.Rate), opts.Burst)

	// The limiter sits on the root router: middleware on a subrouter
	// turns method mismatches into 404.
	r := mux.NewRouter()
	r.Use(limiter.LimitMiddleware)
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", h.Health).Methods("GET")
	api.HandleFunc("/analyze", h.Analyze).Methods("POST")
	api.HandleFunc("/diagram", h.Diagram).Methods("POST")

	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version.Version})
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, b, ok := h.decode(w, r)
	if !ok {
		return
	}
	reactions, err := b.Reactions()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	samples, err := b.SampleDiagram(req.Samples)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !finite(reactions, samples) {
		writeError(w, http.StatusUnprocessableEntity, errNotFinite.Error())
		return
	}

	ext := beam.FindExtremes(samples)
	h.writeJSON(w, http.StatusOK, AnalyzeResponse{
		Name:      req.Name,
		Length:    b.Length(),
		TotalLoad: b.TotalLoad(),
		Reactions: ReactionsJSON{Start: reactions.Start, End: reactions.End},
		Extremes: ExtremesJSON{
			MaxShear:  StationJSON(ext.MaxShear),
			MinShear:  StationJSON(ext.MinShear),
			MaxMoment: StationJSON(ext.MaxMoment),
			MinMoment: StationJSON(ext.MinMoment),
		},
		Samples: samples,
	})
}

// Diagram renders the stacked diagrams; ?format= selects png (default),
// svg or pdf.
func (h *Handler) Diagram(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "png"
	}
	contentType, ok := contentTypes[format]
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported format "+format)
		return
	}

	req, b, ok := h.decode(w, r)
	if !ok {
		return
	}
	samples, err := b.SampleDiagram(req.Samples)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !finite(beam.Reactions{}, samples) {
		writeError(w, http.StatusUnprocessableEntity, errNotFinite.Error())
		return
	}

	var buf bytes.Buffer
	if err := diagram.WriteDiagram(&buf, samples, format, h.opts.PlotWidth, h.opts.PlotHeight); err != nil {
		h.log.Printf("diagram: %v", err)
		writeError(w, http.StatusInternalServerError, "rendering diagram failed")
		return
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Printf("diagram: %v", err)
	}
}

var errNotFinite = errors.New("loads overflow: reactions or diagram values are not finite")

// finite reports whether every reaction and sampled value is a finite number
func finite(r beam.Reactions, samples []beam.Sample) bool {
	vals := []float64{r.Start, r.End}
	for _, s := range samples {
		vals = append(vals, s.Shear, s.Moment)
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

var contentTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
	"pdf": "application/pdf",
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (AnalyzeRequest, *beam.Beam, bool) {
	var req AnalyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return req, nil, false
	}
	if req.Samples == 0 {
		req.Samples = h.opts.Samples
	}
	if req.Samples < 2 || req.Samples > MaxSamples {
		writeError(w, http.StatusBadRequest, beam.ErrSampleCount.Error())
		return req, nil, false
	}

	b, err := req.Build()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return req, nil, false
	}
	return req, b, true
}

// writeJSON encodes v before sending the status so that an encoding
// failure turns into a 500 instead of an empty response.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	if err := writeJSON(w, status, v); err != nil {
		h.log.Printf("encoding response: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(errorJSON{Error: "encoding response failed"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n'))
	return err
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorJSON{Error: msg})
}

// Run serves handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Println("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Println("Server stopped")
	return nil
}
