// Package palette holds the fixed reference table of named skin tones and the
// product labels recommended for each of them.
//
// A Palette is immutable once built. The package-level Default palette is
// constructed at init time and shared read-only by every request, so it is
// safe for concurrent use without locking.
package palette

import (
	"errors"
	"fmt"
)

// NoRecommendations is the single entry returned by ProductsOf when a tone
// identifier is not part of the palette.
const NoRecommendations = "No recommendations available"

// RGB is an 8-bit color triple.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// String formats the triple as "(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Tone is one reference entry: an identifier, its color and the ordered list
// of products associated with it.
type Tone struct {
	ID       string   `json:"id" yaml:"id"`
	RGB      RGB      `json:"rgb" yaml:"rgb"`
	Products []string `json:"products" yaml:"products"`
}

// Palette is an ordered, read-only set of reference tones.
type Palette struct {
	tones []Tone
	index map[string]int
}

var (
	// ErrEmptyPalette is returned by New when no tones are given.
	ErrEmptyPalette = errors.New("palette must contain at least one tone")

	// ErrDuplicateTone is returned by New when two tones share an identifier.
	ErrDuplicateTone = errors.New("duplicate tone identifier")
)

// New builds a palette from tones, keeping their order. The input is copied so
// later changes by the caller do not leak into the palette.
func New(tones []Tone) (*Palette, error) {
	if len(tones) == 0 {
		return nil, ErrEmptyPalette
	}

	p := &Palette{
		tones: make([]Tone, 0, len(tones)),
		index: make(map[string]int, len(tones)),
	}
	for _, t := range tones {
		if t.ID == "" {
			return nil, fmt.Errorf("tone at position %d has an empty identifier", len(p.tones))
		}
		if _, ok := p.index[t.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTone, t.ID)
		}
		p.index[t.ID] = len(p.tones)
		p.tones = append(p.tones, Tone{
			ID:       t.ID,
			RGB:      t.RGB,
			Products: append([]string(nil), t.Products...),
		})
	}
	return p, nil
}

// Len returns the number of tones.
func (p *Palette) Len() int {
	return len(p.tones)
}

// RGBOf returns the color of the tone with the given identifier.
func (p *Palette) RGBOf(id string) (RGB, bool) {
	i, ok := p.index[id]
	if !ok {
		return RGB{}, false
	}
	return p.tones[i].RGB, true
}

// ProductsOf returns the products for a tone in their defined order. An
// unknown identifier yields a one-element list holding NoRecommendations.
// The returned slice is a copy.
func (p *Palette) ProductsOf(id string) []string {
	i, ok := p.index[id]
	if !ok {
		return []string{NoRecommendations}
	}
	return append([]string(nil), p.tones[i].Products...)
}

// Contains reports whether id names a tone in the palette.
func (p *Palette) Contains(id string) bool {
	_, ok := p.index[id]
	return ok
}

// IDs returns tone identifiers in palette order.
func (p *Palette) IDs() []string {
	ids := make([]string, len(p.tones))
	for i, t := range p.tones {
		ids[i] = t.ID
	}
	return ids
}

// Tones returns a copy of every tone in palette order.
func (p *Palette) Tones() []Tone {
	out := make([]Tone, len(p.tones))
	for i, t := range p.tones {
		out[i] = Tone{
			ID:       t.ID,
			RGB:      t.RGB,
			Products: append([]string(nil), t.Products...),
		}
	}
	return out
}
