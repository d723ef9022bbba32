package wavelet

import "math"

// MaxLevels caps the pyramid depth
const MaxLevels = 3

// Levels returns the decomposition depth for an image of the given
// dimensions: min(3, floor(log2(min(width, height)))).
func Levels(width, height int) int {
	shorter := min(width, height)
	if shorter < 2 {
		return 0
	}
	levels := int(math.Log2(float64(shorter)))
	if levels > MaxLevels {
		levels = MaxLevels
	}
	return levels
}

// ForwardMultilevel performs the multilevel Haar decomposition in place.
// Level 0 transforms the whole width x height region; every deeper level
// transforms only the low-frequency quadrant produced by the previous
// level. High-frequency subbands are never decomposed further. The
// region dimensions must be multiples of 2^levels.
func ForwardMultilevel(pix []float64, width, height, stride, levels int) {
	for level := 0; level < levels; level++ {
		w := width >> level
		h := height >> level
		if w < 2 || h < 2 {
			break
		}
		Forward2D(pix, w, h, stride)
	}
}

// InverseMultilevel reconstructs the image from a multilevel
// decomposition, processing sub-regions from the deepest level back to
// level 0.
func InverseMultilevel(pix []float64, width, height, stride, levels int) {
	for level := levels - 1; level >= 0; level-- {
		w := width >> level
		h := height >> level
		if w < 2 || h < 2 {
			continue
		}
		Inverse2D(pix, w, h, stride)
	}
}
