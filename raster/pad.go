package raster

// PadEdge returns a copy of the image padded on the bottom and right so
// that both dimensions are multiples of the given tile size. New rows and
// columns replicate the nearest edge sample, which avoids seam artifacts
// at block and pyramid boundaries. If the image is already aligned the
// returned copy has the same dimensions.
func PadEdge(src *Image, multiple int) *Image {
	padH := (multiple - src.Height%multiple) % multiple
	padW := (multiple - src.Width%multiple) % multiple

	width := src.Width + padW
	height := src.Height + padH
	dst := &Image{
		Pix:    make([]float64, width*height),
		Width:  width,
		Height: height,
	}

	for y := 0; y < height; y++ {
		sy := y
		if sy >= src.Height {
			sy = src.Height - 1
		}
		for x := 0; x < width; x++ {
			sx := x
			if sx >= src.Width {
				sx = src.Width - 1
			}
			dst.Pix[y*width+x] = src.Pix[sy*src.Width+sx]
		}
	}
	return dst
}

// Crop returns the top-left width×height sub-region as a new image.
// Used to discard padding after an inverse transform.
func (m *Image) Crop(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width > m.Width || height > m.Height {
		return nil, ErrShapeMismatch
	}
	dst := &Image{
		Pix:    make([]float64, width*height),
		Width:  width,
		Height: height,
	}
	for y := 0; y < height; y++ {
		copy(dst.Pix[y*width:(y+1)*width], m.Pix[y*m.Width:y*m.Width+width])
	}
	return dst, nil
}

// AbsDiff returns the per-sample absolute difference of two images of
// identical shape.
func AbsDiff(a, b *Image) (*Image, error) {
	if !a.SameShape(b) {
		return nil, ErrShapeMismatch
	}
	dst := &Image{
		Pix:    make([]float64, len(a.Pix)),
		Width:  a.Width,
		Height: a.Height,
	}
	for i := range a.Pix {
		d := a.Pix[i] - b.Pix[i]
		if d < 0 {
			d = -d
		}
		dst.Pix[i] = d
	}
	return dst, nil
}
