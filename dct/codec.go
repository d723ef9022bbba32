package dct

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cocosip/go-image-codec/codec"
	"github.com/cocosip/go-image-codec/raster"
)

// dcBias is subtracted from every sample before the forward transform
// and added back after the inverse, centering values around zero.
const dcBias = 128.0

// Codec implements the codec.Codec interface for the 8x8 block DCT
type Codec struct{}

// NewCodec creates a new block DCT codec
func NewCodec() *Codec {
	return &Codec{}
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "block-dct"
}

// Compress runs the transform/quantize/reconstruct round trip:
// pad to a multiple of 8 with edge extension, per tile subtract the DC
// bias, forward transform, quantize against the quality-scaled table,
// dequantize, inverse transform, re-bias, then crop back to the source
// shape and clamp to [0,255]. Tiles are independent, so tile rows are
// processed in parallel; the result does not depend on tile order.
func (c *Codec) Compress(img *raster.Image, quality int) (*raster.Image, error) {
	opts := NewOptions(quality)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := codec.ValidateImage(img); err != nil {
		return nil, err
	}

	quant := ScaleQuantTable(DefaultLuminanceQuantTable, opts.Quality)

	padded := raster.PadEdge(img, BlockSize)
	out := &raster.Image{
		Pix:    make([]float64, len(padded.Pix)),
		Width:  padded.Width,
		Height: padded.Height,
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for by := 0; by < padded.Height; by += BlockSize {
		g.Go(func() error {
			var block [64]float64
			for bx := 0; bx < padded.Width; bx += BlockSize {
				processBlock(padded, out, bx, by, &quant, &block)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result, err := out.Crop(img.Width, img.Height)
	if err != nil {
		return nil, err
	}
	result.Clamp(0, 255)
	return result, nil
}

// processBlock runs one tile through the lossy round trip. It reads only
// its own padded sub-region and writes only its own output region.
func processBlock(src, dst *raster.Image, bx, by int, quant *[64]float64, block *[64]float64) {
	for y := 0; y < BlockSize; y++ {
		row := (by + y) * src.Width
		for x := 0; x < BlockSize; x++ {
			block[y*BlockSize+x] = src.Pix[row+bx+x] - dcBias
		}
	}

	Forward2D(block)

	// Quantization is the lossy step: coefficients are rounded to the
	// nearest multiple of the table entry.
	for i := 0; i < 64; i++ {
		block[i] = math.Round(block[i]/quant[i]) * quant[i]
	}

	Inverse2D(block)

	for y := 0; y < BlockSize; y++ {
		row := (by + y) * dst.Width
		for x := 0; x < BlockSize; x++ {
			dst.Pix[row+bx+x] = block[y*BlockSize+x] + dcBias
		}
	}
}

func init() {
	codec.Register(NewCodec())
}
