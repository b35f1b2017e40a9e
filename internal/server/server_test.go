package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"math"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"
)

const workedBody = `{
  "name": "worked",
  "length": 10,
  "samples": 11,
  "loads": [
    {"type": "point", "magnitude": 1000, "position": 3},
    {"type": "distributed", "intensity": 500, "start": 6, "end": 10}
  ]
}`

// finite inputs whose load moment overflows to +Inf
const overflowBody = `{"length": 1e300, "loads": [{"type": "point", "magnitude": 1e300, "position": 1e300}]}`

func newTestServer(tst *testing.T, opts Options) *httptest.Server {
	opts.Logger = log.New(io.Discard, "", 0)
	srv := httptest.NewServer(NewRouter(opts))
	tst.Cleanup(srv.Close)
	return srv
}

func post(tst *testing.T, url, body string) *http.Response {
	res, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		tst.Fatal(err)
	}
	tst.Cleanup(func() { res.Body.Close() })
	return res
}

func Test_server01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("server01. analyze")

	srv := newTestServer(tst, Options{Rate: 100, Burst: 100})

	res := post(tst, srv.URL+"/api/analyze", workedBody)
	chk.IntAssert(res.StatusCode, http.StatusOK)

	var out AnalyzeResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		tst.Fatal(err)
	}
	chk.Float64(tst, "Ra", 1e-9, out.Reactions.Start, 1100)
	chk.Float64(tst, "Rb", 1e-9, out.Reactions.End, 1900)
	chk.Float64(tst, "total", 1e-9, out.TotalLoad, 3000)
	chk.IntAssert(len(out.Samples), 11)
	chk.Float64(tst, "V(L)", 1e-9, out.Samples[10].Shear, 1900)
	chk.Float64(tst, "min M", 1e-9, out.Extremes.MinMoment.Value, -3600)
	if out.Name != "worked" {
		tst.Fatalf("name: %q", out.Name)
	}

	res, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		tst.Fatal(err)
	}
	defer res.Body.Close()
	chk.IntAssert(res.StatusCode, http.StatusOK)
}

func Test_server02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("server02. bad requests")

	srv := newTestServer(tst, Options{Rate: 100, Burst: 100})

	tcs := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{"length":`, http.StatusBadRequest},
		{"too few samples", `{"length": 10, "samples": 1}`, http.StatusBadRequest},
		{"degenerate", `{"length": 0}`, http.StatusUnprocessableEntity},
		{"bad load", `{"length": 10, "loads": [{"type": "point", "magnitude": 1, "position": 12}]}`, http.StatusUnprocessableEntity},
		{"overflow", overflowBody, http.StatusUnprocessableEntity},
	}
	for _, tc := range tcs {
		tst.Run(tc.name, func(t *testing.T) {
			res := post(t, srv.URL+"/api/analyze", tc.body)
			if res.StatusCode != tc.status {
				t.Fatalf("status %d, want %d", res.StatusCode, tc.status)
			}
			var e errorJSON
			if err := json.NewDecoder(res.Body).Decode(&e); err != nil || e.Error == "" {
				t.Fatalf("missing error body: %v", err)
			}
		})
	}

	res, err := http.Get(srv.URL + "/api/analyze")
	if err != nil {
		tst.Fatal(err)
	}
	defer res.Body.Close()
	chk.IntAssert(res.StatusCode, http.StatusMethodNotAllowed)
}

func Test_server03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("server03. diagram")

	srv := newTestServer(tst, Options{Rate: 100, Burst: 100})

	res := post(tst, srv.URL+"/api/diagram", workedBody)
	chk.IntAssert(res.StatusCode, http.StatusOK)
	if ct := res.Header.Get("Content-Type"); ct != "image/png" {
		tst.Fatalf("content type %q", ct)
	}
	data, _ := io.ReadAll(res.Body)
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		tst.Fatalf("not a png")
	}

	res = post(tst, srv.URL+"/api/diagram?format=svg", workedBody)
	chk.IntAssert(res.StatusCode, http.StatusOK)

	res = post(tst, srv.URL+"/api/diagram?format=gif", workedBody)
	chk.IntAssert(res.StatusCode, http.StatusBadRequest)

	res = post(tst, srv.URL+"/api/diagram", overflowBody)
	chk.IntAssert(res.StatusCode, http.StatusUnprocessableEntity)
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		tst.Fatalf("error content type %q", ct)
	}
}

func Test_server04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("server04. rate limit")

	srv := newTestServer(tst, Options{Rate: 0.001, Burst: 2})

	codes := make([]int, 3)
	for i := range codes {
		res, err := http.Get(srv.URL + "/api/health")
		if err != nil {
			tst.Fatal(err)
		}
		res.Body.Close()
		codes[i] = res.StatusCode
	}
	chk.Ints(tst, "codes", codes, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests})
}

func Test_server05(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("server05. run and shutdown")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, "127.0.0.1:0", NewRouter(Options{}), log.New(io.Discard, "", 0))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			tst.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		tst.Fatalf("server did not stop")
	}
}

func Test_server06(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("server06. idle clients are evicted")

	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 1)
	l.now = func() time.Time { return clock }

	l.getLimiter("10.0.0.1")
	l.getLimiter("10.0.0.2")
	chk.IntAssert(len(l.ips), 2)

	clock = clock.Add(VisitorTTL / 2)
	l.getLimiter("10.0.0.2")

	clock = clock.Add(VisitorTTL/2 + time.Second)
	l.getLimiter("10.0.0.3")
	chk.IntAssert(len(l.ips), 2)
	if _, ok := l.ips["10.0.0.1"]; ok {
		tst.Fatalf("idle client kept")
	}
	if _, ok := l.ips["10.0.0.2"]; !ok {
		tst.Fatalf("active client dropped")
	}
}

func Test_server07(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("server07. unencodable response")

	rec := httptest.NewRecorder()
	err := writeJSON(rec, http.StatusOK, StationJSON{X: 1, Value: math.Inf(1)})
	if err == nil {
		tst.Fatalf("expected encoding error")
	}
	chk.IntAssert(rec.Code, http.StatusInternalServerError)
	var e errorJSON
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil || e.Error == "" {
		tst.Fatalf("missing error body: %v", err)
	}
}
