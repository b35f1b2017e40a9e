package input

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePointLoad parses the command line form [CASE:]MAG@POS, e.g.
// "1000@3" or "L:1000@3".
func ParsePointLoad(s string) (Load, error) {
	c, body := splitCase(s)
	mag, pos, ok := strings.Cut(body, "@")
	if !ok {
		return Load{}, fmt.Errorf("point load %q: expected MAG@POS", s)
	}
	m, err := strconv.ParseFloat(strings.TrimSpace(mag), 64)
	if err != nil {
		return Load{}, fmt.Errorf("point load %q: magnitude: %w", s, err)
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
	if err != nil {
		return Load{}, fmt.Errorf("point load %q: position: %w", s, err)
	}
	return Load{Type: TypePoint, Magnitude: m, Position: p, Case: c}, nil
}

// ParseDistributedLoad parses the command line form [CASE:]W@START:END,
// e.g. "500@6:10" or "L:500@6:10".
func ParseDistributedLoad(s string) (Load, error) {
	c, body := splitCase(s)
	w, span, ok := strings.Cut(body, "@")
	if !ok {
		return Load{}, fmt.Errorf("distributed load %q: expected W@START:END", s)
	}
	start, end, ok := strings.Cut(span, ":")
	if !ok {
		return Load{}, fmt.Errorf("distributed load %q: expected W@START:END", s)
	}

	var vals [3]float64
	for i, f := range []string{w, start, end} {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Load{}, fmt.Errorf("distributed load %q: %w", s, err)
		}
		vals[i] = v
	}
	return Load{Type: TypeDistributed, Intensity: vals[0], Start: vals[1], End: vals[2], Case: c}, nil
}

// splitCase strips an optional "CASE:" prefix. A prefix is recognized
// only when it appears before the '@' separator.
func splitCase(s string) (string, string) {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	colon := strings.Index(s, ":")
	if colon < 0 || (at >= 0 && colon > at) {
		return "", s
	}
	return strings.TrimSpace(s[:colon]), s[colon+1:]
}
