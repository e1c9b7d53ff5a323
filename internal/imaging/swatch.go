package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// DefaultSwatchSize is the edge length in pixels of one swatch square.
const DefaultSwatchSize = 120

// EncodedImage is a rendered image encoded as base64 PNG.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// SolidSwatch returns a size x size square filled with c.
func SolidSwatch(c RGBColor, size int) *image.NRGBA {
	if size <= 0 {
		size = DefaultSwatchSize
	}
	return imaging.New(size, size, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// SwatchPair renders the detected color on the left and the matched
// reference tone on the right, each as a size x size square.
func SwatchPair(detected, reference RGBColor, size int) *image.NRGBA {
	if size <= 0 {
		size = DefaultSwatchSize
	}
	canvas := imaging.New(size*2, size, color.NRGBA{A: 255})
	canvas = imaging.Paste(canvas, SolidSwatch(detected, size), image.Pt(0, 0))
	canvas = imaging.Paste(canvas, SolidSwatch(reference, size), image.Pt(size, 0))
	return canvas
}

// RenderSwatch renders SwatchPair and encodes it as PNG.
func RenderSwatch(detected, reference RGBColor, size int) (*EncodedImage, error) {
	return EncodePNG(SwatchPair(detected, reference, size))
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := imgio.PNGEncoder()(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// EncodePNG encodes img as base64 PNG.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		return nil, err
	}

	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
