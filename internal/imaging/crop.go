package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts a rectangular region from an image and returns it as PNG.
func Crop(img image.Image, region Region, scale float64) (*EncodedImage, error) {
	bounds := img.Bounds()

	if region.X1 < bounds.Min.X || region.Y1 < bounds.Min.Y || region.X2 > bounds.Max.X || region.Y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			region.X1, region.Y1, region.X2, region.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	cropped := imaging.Crop(img, region.Rect())

	if scale != 1.0 && scale > 0 {
		newWidth := max(1, int(float64(cropped.Bounds().Dx())*scale))
		newHeight := max(1, int(float64(cropped.Bounds().Dy())*scale))
		// Nearest neighbor keeps the enlarged sample blocky and faithful.
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.NearestNeighbor)
	}

	return EncodePNG(cropped)
}

// CropSampleWindow returns the region ExtractSkinTone averages, as PNG.
func CropSampleWindow(img image.Image, scale float64) (*EncodedImage, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return Crop(img, SampleWindow(img.Bounds()), scale)
}
