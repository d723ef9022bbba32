// Package codec defines the shared contract for the lossy image codecs.
package codec

import (
	"github.com/cocosip/go-image-codec/raster"
)

// Codec is the universal interface for all image codecs.
//
// Compress is a pure function of (image, quality): it never mutates the
// source image and every invocation produces a fresh reconstruction of
// the same shape, with samples clamped to [0,255].
type Codec interface {
	// Compress reconstructs the image after a lossy transform round trip
	Compress(img *raster.Image, quality int) (*raster.Image, error)

	// Name returns a human-readable name
	Name() string
}

// Options is an interface for codec-specific options
type Options interface {
	// Validate checks if the options are valid
	Validate() error
}

// BaseOptions provides common options for all codecs
type BaseOptions struct {
	// Quality factor (1-100, higher retains more detail)
	Quality int
}

// Validate validates base options
func (o *BaseOptions) Validate() error {
	return ValidateQuality(o.Quality)
}

// ValidateQuality checks a quality parameter against the (0,100] contract.
func ValidateQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return ErrInvalidQuality
	}
	return nil
}

// ValidateImage checks the input contract shared by both codecs: a
// non-nil grid with both dimensions at least 2 and a consistent buffer.
func ValidateImage(img *raster.Image) error {
	if img == nil || len(img.Pix) == 0 {
		return ErrNilImage
	}
	if img.Width < 2 || img.Height < 2 {
		return ErrImageTooSmall
	}
	if len(img.Pix) != img.Width*img.Height {
		return raster.ErrShapeMismatch
	}
	return nil
}
