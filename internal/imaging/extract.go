package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int `json:"x1" yaml:"x1"`
	Y1 int `json:"y1" yaml:"y1"`
	X2 int `json:"x2" yaml:"x2"`
	Y2 int `json:"y2" yaml:"y2"`
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Width returns X2 - X1.
func (r Region) Width() int { return r.X2 - r.X1 }

// Height returns Y2 - Y1.
func (r Region) Height() int { return r.Y2 - r.Y1 }

// SampleWindow returns the centered rectangle averaged by ExtractSkinTone.
//
// For a W x H image the center is (W/2, H/2) and the half extents are
// max(1, W/10) and max(1, H/10), all with integer division. The window spans
// [center-half, center+half) on each axis and is clamped to the image, so
// images smaller than 10 pixels still get a non-empty window.
//
// The returned coordinates are absolute, i.e. offset by bounds.Min.
func SampleWindow(bounds image.Rectangle) Region {
	w, h := bounds.Dx(), bounds.Dy()
	cx, cy := w/2, h/2
	hw, hh := max(1, w/10), max(1, h/10)

	return Region{
		X1: bounds.Min.X + clamp(cx-hw, 0, w),
		Y1: bounds.Min.Y + clamp(cy-hh, 0, h),
		X2: bounds.Min.X + clamp(cx+hw, 0, w),
		Y2: bounds.Min.Y + clamp(cy+hh, 0, h),
	}
}

// ExtractSkinTone estimates a representative skin color for img by averaging
// every pixel inside SampleWindow. Each channel mean is truncated toward zero.
//
// The image is treated as three-channel RGB. Alpha is not taken into account
// and grayscale images are averaged after conversion to RGB.
//
// Returns ErrEmptyImage if img has no pixels.
func ExtractSkinTone(img image.Image) (RGBColor, error) {
	c, _, err := extractWithWindow(img)
	return c, err
}

// extractWithWindow is ExtractSkinTone that also reports the sampled region.
func extractWithWindow(img image.Image) (RGBColor, Region, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return RGBColor{}, Region{}, ErrEmptyImage
	}

	win := SampleWindow(bounds)
	sample := imaging.Crop(img, win.Rect())

	sb := sample.Bounds()
	n := uint64(sb.Dx()) * uint64(sb.Dy())
	if n == 0 {
		return RGBColor{}, win, ErrEmptyImage
	}

	var sumR, sumG, sumB uint64
	for y := 0; y < sb.Dy(); y++ {
		row := sample.Pix[y*sample.Stride : y*sample.Stride+sb.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			sumR += uint64(row[i])
			sumG += uint64(row[i+1])
			sumB += uint64(row[i+2])
		}
	}

	// Integer division truncates the exact mean.
	return RGBColor{
		R: uint8(sumR / n),
		G: uint8(sumG / n),
		B: uint8(sumB / n),
	}, win, nil
}

// Sample is the extractor output together with the region it came from.
type Sample struct {
	Color  RGBColor `json:"color"`
	Window Region   `json:"window"`
}

// ExtractSample runs ExtractSkinTone and also reports the sampled region.
func ExtractSample(img image.Image) (*Sample, error) {
	c, win, err := extractWithWindow(img)
	if err != nil {
		return nil, err
	}
	return &Sample{Color: c, Window: win}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
