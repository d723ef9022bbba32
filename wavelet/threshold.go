package wavelet

import "sort"

// percentile returns the p-th percentile (0-100) of values using linear
// interpolation between order statistics. values is modified by sorting.
func percentile(values []float64, p float64) float64 {
	sort.Float64s(values)
	n := len(values)
	if n == 1 {
		return values[0]
	}

	rank := p / 100 * float64(n-1)
	lo := int(rank)
	if lo >= n-1 {
		return values[n-1]
	}
	frac := rank - float64(lo)
	return values[lo] + frac*(values[lo+1]-values[lo])
}

// Threshold zeroes every coefficient whose magnitude falls below the
// (100-quality)-th percentile of all coefficient magnitudes. quality is
// the percentage of coefficients to keep, so higher quality retains
// more detail. This is the lossy step of the wavelet codec.
func Threshold(coeffs []float64, quality int) {
	abs := make([]float64, len(coeffs))
	for i, v := range coeffs {
		if v < 0 {
			v = -v
		}
		abs[i] = v
	}

	cut := percentile(abs, float64(100-quality))
	for i, v := range coeffs {
		if v < 0 {
			v = -v
		}
		if v < cut {
			coeffs[i] = 0
		}
	}
}
