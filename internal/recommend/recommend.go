// Package recommend wires the skin-tone pipeline together: extract a sample
// color from a photo, match it to the nearest reference tone and look up the
// products recommended for that tone.
//
// A Recommender holds only read-only state and is safe for concurrent use.
package recommend

import (
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/ironsheep/shade-mcp/internal/imaging"
	"github.com/ironsheep/shade-mcp/internal/matcher"
	"github.com/ironsheep/shade-mcp/internal/palette"
)

// Recommender runs the extract, match and lookup steps against one palette.
type Recommender struct {
	palette *palette.Palette
	matcher *matcher.Matcher
}

// New builds a recommender and its nearest-neighbor index for p.
func New(p *palette.Palette) *Recommender {
	return &Recommender{
		palette: p,
		matcher: matcher.New(p),
	}
}

var (
	defaultOnce sync.Once
	defaultRec  *Recommender
)

// Default returns the process-wide recommender over palette.Default(). It is
// built on first use and shared afterwards.
func Default() *Recommender {
	defaultOnce.Do(func() {
		defaultRec = New(palette.Default())
	})
	return defaultRec
}

// Palette returns the palette this recommender matches against.
func (r *Recommender) Palette() *palette.Palette {
	return r.palette
}

// Match is the outcome of matching a color against the palette.
type Match struct {
	// Tone is the identifier of the closest reference tone.
	Tone string `json:"tone" yaml:"tone"`

	// ToneColor is the reference color of Tone.
	ToneColor imaging.ColorResult `json:"tone_color" yaml:"tone_color"`

	// Products lists the recommended products in their defined order.
	Products []string `json:"products" yaml:"products"`

	// Distance is the Euclidean RGB distance to the reference color. It is
	// always finite; a query too far out to measure reports math.MaxFloat64.
	Distance float64 `json:"distance" yaml:"distance"`
}

// Result is the full pipeline output for one photo.
type Result struct {
	Match `yaml:",inline"`

	// Detected is the averaged sample color.
	Detected imaging.ColorResult `json:"detected" yaml:"detected"`

	// Window is the region the sample color was averaged over.
	Window imaging.Region `json:"window" yaml:"window"`

	// DeltaE is the CIEDE2000 difference between Detected and ToneColor.
	DeltaE float64 `json:"delta_e" yaml:"delta_e"`
}

// DetectedRGB returns the detected color as 8-bit RGB.
func (r *Result) DetectedRGB() imaging.RGBColor {
	return r.Detected.RGB
}

// ToneRGB returns the matched reference color as 8-bit RGB.
func (r *Result) ToneRGB() imaging.RGBColor {
	return r.ToneColor.RGB
}

// Analyze runs the pipeline on a decoded image.
func (r *Recommender) Analyze(img image.Image) (*Result, error) {
	sample, err := imaging.ExtractSample(img)
	if err != nil {
		return nil, fmt.Errorf("failed to extract skin tone: %w", err)
	}

	q := matcher.Query{
		R: float64(sample.Color.R),
		G: float64(sample.Color.G),
		B: float64(sample.Color.B),
	}
	m := r.MatchRGB(q)

	return &Result{
		Match:    *m,
		Detected: imaging.NewColorResult(sample.Color),
		Window:   sample.Window,
		DeltaE:   imaging.DeltaE(sample.Color, m.ToneColor.RGB),
	}, nil
}

// AnalyzeReader decodes a JPEG or PNG from rd and runs the pipeline. A decode
// failure stops the pipeline and wraps imaging.ErrUnsupportedImage.
func (r *Recommender) AnalyzeReader(rd io.Reader) (*Result, error) {
	img, err := imaging.Decode(rd)
	if err != nil {
		return nil, err
	}
	return r.Analyze(img)
}

// MatchRGB matches an arbitrary, possibly out-of-range color. It never fails.
func (r *Recommender) MatchRGB(q matcher.Query) *Match {
	nearest := r.matcher.Nearest(q)

	// The matcher only knows palette identifiers, so the lookup below always
	// hits; ProductsOf still degrades to the placeholder if it ever misses.
	ref, _ := r.palette.RGBOf(nearest.ID)
	return &Match{
		Tone:      nearest.ID,
		ToneColor: imaging.NewColorResult(imaging.RGBColor{R: ref.R, G: ref.G, B: ref.B}),
		Products:  r.palette.ProductsOf(nearest.ID),
		Distance:  finiteDistance(nearest.Distance),
	}
}

// finiteDistance keeps results encodable as JSON, which has no NaN or Inf.
func finiteDistance(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return math.MaxFloat64
	}
	return d
}

// Products returns the products for a tone, or the placeholder list for an
// unknown identifier.
func (r *Recommender) Products(tone string) []string {
	return r.palette.ProductsOf(tone)
}

// Swatch renders the detected and matched colors side by side.
func (r *Recommender) Swatch(res *Result, size int) (*imaging.EncodedImage, error) {
	return imaging.RenderSwatch(res.DetectedRGB(), res.ToneRGB(), size)
}
