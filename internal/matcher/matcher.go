// Package matcher finds the reference tone nearest to a query color.
//
// The reference set is a dozen points, so the index is a plain slice scanned
// linearly. Distances are Euclidean in RGB space. When two reference points
// are equally close, the one defined first in the palette wins.
package matcher

import (
	"math"

	"github.com/ironsheep/shade-mcp/internal/palette"
)

// Query is a color to match. Channels are not clamped: averages that are
// fractional or slightly out of the 0-255 range are accepted as is.
type Query struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// FromRGB converts an 8-bit triple into a Query.
func FromRGB(c palette.RGB) Query {
	return Query{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Result is the closest reference tone and its distance from the query.
type Result struct {
	ID       string  `json:"id"`
	Distance float64 `json:"distance"`
}

type point struct {
	id      string
	r, g, b float64
}

// Matcher is a read-only nearest-neighbor index over a palette's colors. It
// is safe for concurrent use.
type Matcher struct {
	points []point
}

// New indexes every tone of p in palette order.
func New(p *palette.Palette) *Matcher {
	tones := p.Tones()
	m := &Matcher{points: make([]point, len(tones))}
	for i, t := range tones {
		m.points[i] = point{
			id: t.ID,
			r:  float64(t.RGB.R),
			g:  float64(t.RGB.G),
			b:  float64(t.RGB.B),
		}
	}
	return m
}

// Match returns the identifier of the reference tone closest to q.
func (m *Matcher) Match(q Query) string {
	return m.Nearest(q).ID
}

// Nearest returns the closest reference tone and its Euclidean distance.
// Only a strictly smaller distance replaces the current best, which keeps the
// first-defined point on ties. A query with a NaN channel matches the first
// tone with a NaN distance.
func (m *Matcher) Nearest(q Query) Result {
	if math.IsNaN(q.R) || math.IsNaN(q.G) || math.IsNaN(q.B) {
		return Result{ID: m.points[0].id, Distance: math.NaN()}
	}

	// |q-p|^2 = |q|^2 - 2(q.p) + |p|^2, and |q|^2 is the same for every point,
	// so points are ranked by |p|^2/2 - q.p. Huge queries are ranked by their
	// direction, scaled down by s.
	u, s := q.scaled()
	best := 0
	bestScore := math.Inf(1)
	for i, p := range m.points {
		score := (p.r*p.r+p.g*p.g+p.b*p.b)/(2*s) - (u.R*p.r + u.G*p.g + u.B*p.b)
		if score < bestScore {
			best, bestScore = i, score
		}
	}

	p := m.points[best]
	return Result{
		ID:       p.id,
		Distance: math.Hypot(math.Hypot(q.R-p.r, q.G-p.g), q.B-p.b),
	}
}

// scaleThreshold is the channel magnitude above which a query is divided by
// its largest channel before ranking, keeping q.p far from overflow.
const scaleThreshold = 1e150

// scaled returns q divided by its largest channel magnitude and that divisor.
// Queries within scaleThreshold come back unchanged with a divisor of 1. An
// infinite channel dominates: the result points along the infinite channels
// only and the divisor is +Inf.
func (q Query) scaled() (Query, float64) {
	s := math.Max(math.Abs(q.R), math.Max(math.Abs(q.G), math.Abs(q.B)))
	switch {
	case s <= scaleThreshold:
		return q, 1
	case math.IsInf(s, 1):
		return Query{R: infSign(q.R), G: infSign(q.G), B: infSign(q.B)}, s
	}
	return Query{R: q.R / s, G: q.G / s, B: q.B / s}, s
}

func infSign(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return 1
	case math.IsInf(v, -1):
		return -1
	}
	return 0
}
