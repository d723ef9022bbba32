// Package raster provides the grayscale sample grid shared by all codecs.
package raster

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid dimension is not positive
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrShapeMismatch is returned when two grids do not have the same shape
	ErrShapeMismatch = errors.New("image shape mismatch")
)

// Image is a single-channel image stored as float64 samples in row-major
// order. Sample values are nominally in [0,255]; intermediate transform
// stages may exceed that range.
type Image struct {
	Pix    []float64
	Width  int
	Height int
}

// New allocates a zero-filled image of the given dimensions.
func New(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Image{
		Pix:    make([]float64, width*height),
		Width:  width,
		Height: height,
	}, nil
}

// FromGray8 converts 8-bit grayscale pixel data to a float64 image.
func FromGray8(pix []byte, width, height int) (*Image, error) {
	img, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(pix) != width*height {
		return nil, ErrShapeMismatch
	}
	for i, v := range pix {
		img.Pix[i] = float64(v)
	}
	return img, nil
}

// At returns the sample at (x, y).
func (m *Image) At(x, y int) float64 {
	return m.Pix[y*m.Width+x]
}

// Set stores a sample at (x, y).
func (m *Image) Set(x, y int, v float64) {
	m.Pix[y*m.Width+x] = v
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	pix := make([]float64, len(m.Pix))
	copy(pix, m.Pix)
	return &Image{Pix: pix, Width: m.Width, Height: m.Height}
}

// SameShape reports whether two images have identical dimensions.
func (m *Image) SameShape(other *Image) bool {
	return m.Width == other.Width && m.Height == other.Height
}

// Gray8 converts the image to 8-bit grayscale pixel data.
// Samples are rounded to nearest and clipped to [0,255].
func (m *Image) Gray8() []byte {
	pix := make([]byte, len(m.Pix))
	for i, v := range m.Pix {
		r := int(v + 0.5)
		if r < 0 {
			r = 0
		}
		if r > 255 {
			r = 255
		}
		pix[i] = byte(r)
	}
	return pix
}

// Clamp limits every sample to the range [lo, hi] in place.
func (m *Image) Clamp(lo, hi float64) {
	for i, v := range m.Pix {
		if v < lo {
			m.Pix[i] = lo
		} else if v > hi {
			m.Pix[i] = hi
		}
	}
}
