package imaging

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r" yaml:"r"` // Red component (0-255)
	G uint8 `json:"g" yaml:"g"` // Green component (0-255)
	B uint8 `json:"b" yaml:"b"` // Blue component (0-255)
}

// String formats the color as "(r, g, b)".
func (c RGBColor) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h" yaml:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s" yaml:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l" yaml:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex string   `json:"hex" yaml:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb" yaml:"rgb"` // RGB components
	HSL HSLColor `json:"hsl" yaml:"hsl"` // HSL representation
}

// NewColorResult describes c as hex, RGB and HSL.
func NewColorResult(c RGBColor) ColorResult {
	cf := toColorful(c)
	h, s, l := cf.Hsl()

	return ColorResult{
		Hex: strings.ToUpper(cf.Hex()),
		RGB: c,
		HSL: HSLColor{
			H: int(h),
			S: int(s * 100),
			L: int(l * 100),
		},
	}
}

// DeltaE returns the CIEDE2000 difference between two colors, on
// go-colorful's scale where lightness runs 0-1. It is informational only;
// tone matching uses Euclidean RGB distance.
func DeltaE(a, b RGBColor) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}

func toColorful(c RGBColor) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
