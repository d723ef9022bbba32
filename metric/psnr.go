// Package metric provides objective quality measures between an original
// image and a lossy reconstruction.
package metric

import (
	"math"

	"github.com/cocosip/go-image-codec/raster"
)

// maxPixel is the peak sample value for 8-bit luminance data
const maxPixel = 255.0

// MSE computes the mean squared error over all samples of two images of
// identical shape.
func MSE(original, compressed *raster.Image) (float64, error) {
	if original == nil || compressed == nil {
		return 0, raster.ErrShapeMismatch
	}
	if !original.SameShape(compressed) {
		return 0, raster.ErrShapeMismatch
	}

	sum := 0.0
	for i := range original.Pix {
		d := original.Pix[i] - compressed.Pix[i]
		sum += d * d
	}
	return sum / float64(len(original.Pix)), nil
}

// PSNR computes the peak signal-to-noise ratio in decibels between two
// images of identical shape. Identical images yield +Inf.
func PSNR(original, compressed *raster.Image) (float64, error) {
	mse, err := MSE(original, compressed)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 20 * math.Log10(maxPixel/math.Sqrt(mse)), nil
}

// MaxAbsError returns the largest absolute per-sample difference.
func MaxAbsError(original, compressed *raster.Image) (float64, error) {
	if original == nil || compressed == nil || !original.SameShape(compressed) {
		return 0, raster.ErrShapeMismatch
	}

	maxErr := 0.0
	for i := range original.Pix {
		d := original.Pix[i] - compressed.Pix[i]
		if d < 0 {
			d = -d
		}
		if d > maxErr {
			maxErr = d
		}
	}
	return maxErr, nil
}

// MeanAbsError returns the average absolute per-sample difference.
func MeanAbsError(original, compressed *raster.Image) (float64, error) {
	if original == nil || compressed == nil || !original.SameShape(compressed) {
		return 0, raster.ErrShapeMismatch
	}

	sum := 0.0
	for i := range original.Pix {
		d := original.Pix[i] - compressed.Pix[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum / float64(len(original.Pix)), nil
}
