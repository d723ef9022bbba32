package wavelet

import (
	"github.com/cocosip/go-image-codec/codec"
	"github.com/cocosip/go-image-codec/raster"
)

// Codec implements the codec.Codec interface for the Haar wavelet
type Codec struct{}

// NewCodec creates a new Haar wavelet codec
func NewCodec() *Codec {
	return &Codec{}
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "haar-wavelet"
}

// Compress runs the wavelet round trip: pad to a multiple of 2^levels
// with edge extension, decompose the pyramid, zero the smallest
// coefficients by magnitude percentile, reconstruct, then crop back to
// the source shape and clamp to [0,255]. Images with a dimension below
// 2 are rejected; a zero-level transform would be a silent no-op.
func (c *Codec) Compress(img *raster.Image, quality int) (*raster.Image, error) {
	opts := NewOptions(quality)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := codec.ValidateImage(img); err != nil {
		return nil, err
	}

	levels := Levels(img.Width, img.Height)
	padded := raster.PadEdge(img, 1<<levels)

	ForwardMultilevel(padded.Pix, padded.Width, padded.Height, padded.Width, levels)
	Threshold(padded.Pix, opts.Quality)
	InverseMultilevel(padded.Pix, padded.Width, padded.Height, padded.Width, levels)

	result, err := padded.Crop(img.Width, img.Height)
	if err != nil {
		return nil, err
	}
	result.Clamp(0, 255)
	return result, nil
}

func init() {
	codec.Register(NewCodec())
}
