// Package imaging decodes uploaded photos, estimates a representative skin
// color from them and renders the color swatches shown next to a match.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with (0,0) at the
// top-left corner. Regions are half-open: (X1,Y1) is inclusive and (X2,Y2)
// is exclusive.
//
// # Sample Window
//
// ExtractSkinTone averages a centered rectangle whose half extents are a
// tenth of the image dimensions, never less than one pixel. There is no face
// detection or skin segmentation; the subject is assumed to be centered.
// No gamma or white-balance correction is applied.
//
// # Error Handling
//
// Decode failures are wrapped in ErrUnsupportedImage. Tiny images are not an
// error; only an image with zero area yields ErrEmptyImage.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Every other function is
// stateless and can be called concurrently.
package imaging
