package matcher

import (
	"math"
	"testing"

	"github.com/ironsheep/shade-mcp/internal/palette"
)

func newTestPalette(t *testing.T, tones ...palette.Tone) *palette.Palette {
	t.Helper()
	p, err := palette.New(tones)
	if err != nil {
		t.Fatalf("palette.New failed: %v", err)
	}
	return p
}

func TestMatch_SelfMatch(t *testing.T) {
	p := palette.Default()
	m := New(p)

	for _, tone := range p.Tones() {
		t.Run(tone.ID, func(t *testing.T) {
			res := m.Nearest(FromRGB(tone.RGB))
			if res.ID != tone.ID {
				t.Errorf("Match(%v): got %s, want %s", tone.RGB, res.ID, tone.ID)
			}
			if res.Distance != 0 {
				t.Errorf("Distance: got %f, want 0", res.Distance)
			}
		})
	}
}

func TestMatch_Deterministic(t *testing.T) {
	m := New(palette.Default())
	q := Query{R: 201.7, G: 143.2, B: 111.9}

	first := m.Match(q)
	for i := 0; i < 100; i++ {
		if got := m.Match(q); got != first {
			t.Fatalf("call %d: got %s, want %s", i, got, first)
		}
	}
}

func TestMatch_TieBreakFirstDefined(t *testing.T) {
	a := palette.Tone{ID: "A", RGB: palette.RGB{R: 0, G: 0, B: 0}}
	b := palette.Tone{ID: "B", RGB: palette.RGB{R: 10, G: 0, B: 0}}
	mid := Query{R: 5, G: 0, B: 0}

	if got := New(newTestPalette(t, a, b)).Match(mid); got != "A" {
		t.Errorf("A before B: got %s, want A", got)
	}
	if got := New(newTestPalette(t, b, a)).Match(mid); got != "B" {
		t.Errorf("B before A: got %s, want B", got)
	}
}

func TestMatch_TieBreakAmongSeveral(t *testing.T) {
	// Far point first, then three points equidistant from the origin.
	p := newTestPalette(t,
		palette.Tone{ID: "far", RGB: palette.RGB{R: 200, G: 200, B: 200}},
		palette.Tone{ID: "red", RGB: palette.RGB{R: 20}},
		palette.Tone{ID: "green", RGB: palette.RGB{G: 20}},
		palette.Tone{ID: "blue", RGB: palette.RGB{B: 20}},
	)

	if got := New(p).Match(Query{}); got != "red" {
		t.Errorf("got %s, want red", got)
	}
}

func TestMatch_OutOfGamut(t *testing.T) {
	m := New(palette.Default())

	tests := []struct {
		name string
		q    Query
		want string
	}{
		{"black", Query{0, 0, 0}, "NC55"},
		{"white", Query{255, 255, 255}, "NC10"},
		{"negative", Query{-40, -40, -40}, "NC55"},
		{"above range", Query{300, 260, 240}, "NC10"},
		{"fractional", Query{229.6, 170.4, 139.9}, "NC30"},
		{"huge negative red", Query{-1e200, 0, 0}, "NC55"},
		{"huge positive red", Query{1e200, 0, 0}, "NC10"},
		{"huge negative all", Query{-1e160, -1e160, -1e160}, "NC55"},
		{"beyond float64 precision", Query{-1e20, 0, 0}, "NC55"},
		{"negative infinity", Query{math.Inf(-1), 0, 0}, "NC55"},
		{"positive infinity", Query{math.Inf(1), 0, 0}, "NC10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.q); got != tt.want {
				t.Errorf("Match(%v): got %s, want %s", tt.q, got, tt.want)
			}
		})
	}
}

func TestNearest_Distance(t *testing.T) {
	m := New(palette.Default())
	res := m.Nearest(Query{0, 0, 0})

	want := math.Sqrt(90*90 + 30*30 + 10*10)
	if math.Abs(res.Distance-want) > 1e-9 {
		t.Errorf("Distance: got %f, want %f", res.Distance, want)
	}
}

func TestNearest_NaN(t *testing.T) {
	m := New(palette.Default())
	res := m.Nearest(Query{R: math.NaN()})
	if res.ID != "NC10" {
		t.Errorf("NaN query: got %s, want first tone NC10", res.ID)
	}
}

func TestNearest_HugeQueryDistance(t *testing.T) {
	m := New(palette.Default())
	res := m.Nearest(Query{R: -1e200})
	if res.ID != "NC55" {
		t.Fatalf("ID: got %s, want NC55", res.ID)
	}
	if math.IsNaN(res.Distance) || math.IsInf(res.Distance, 0) {
		t.Fatalf("Distance: got %v, want a finite value", res.Distance)
	}
	if math.Abs(res.Distance-1e200)/1e200 > 1e-12 {
		t.Errorf("Distance: got %g, want about 1e200", res.Distance)
	}
}

func TestNearest_TieBreakAfterScaling(t *testing.T) {
	// Both points lie on the plane x = 0, so a query far along -x is
	// equidistant from them up to the precision of the scaled query.
	a := palette.Tone{ID: "A", RGB: palette.RGB{G: 10}}
	b := palette.Tone{ID: "B", RGB: palette.RGB{B: 10}}
	q := Query{R: -1e200}

	if got := New(newTestPalette(t, a, b)).Match(q); got != "A" {
		t.Errorf("A before B: got %s, want A", got)
	}
	if got := New(newTestPalette(t, b, a)).Match(q); got != "B" {
		t.Errorf("B before A: got %s, want B", got)
	}
}
