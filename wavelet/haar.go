// Package wavelet implements the multi-level Haar wavelet codec.
package wavelet

import "math"

var sqrt2 = math.Sqrt(2)

// Forward1D performs the forward Haar transform on a 1D signal.
// If the input length is odd the last sample is duplicated first.
// Output layout: first half = pairwise averages (a+b)/sqrt2, second
// half = pairwise differences (a-b)/sqrt2. With this normalization the
// transform is orthonormal and energy preserving.
func Forward1D(data []float64) []float64 {
	n := len(data)
	if n%2 != 0 {
		data = append(append([]float64{}, data...), data[n-1])
		n++
	}

	out := make([]float64, n)
	half := n / 2
	for i := 0; i < half; i++ {
		out[i] = (data[2*i] + data[2*i+1]) / sqrt2
		out[half+i] = (data[2*i] - data[2*i+1]) / sqrt2
	}
	return out
}

// Inverse1D performs the inverse Haar transform, the exact algebraic
// inverse of Forward1D for even-length input.
func Inverse1D(data []float64) []float64 {
	n := len(data)
	out := make([]float64, n)
	half := n / 2
	for i := 0; i < half; i++ {
		out[2*i] = (data[i] + data[half+i]) / sqrt2
		out[2*i+1] = (data[i] - data[half+i]) / sqrt2
	}
	return out
}

// Forward2D applies the forward Haar transform to a width x height
// region of a row-major buffer with the given stride: first to every
// row, then to every column of the row-transformed result. The region
// dimensions must be even.
func Forward2D(pix []float64, width, height, stride int) {
	// Rows
	row := make([]float64, width)
	for y := 0; y < height; y++ {
		copy(row, pix[y*stride:y*stride+width])
		for x, v := range Forward1D(row) {
			pix[y*stride+x] = v
		}
	}

	// Columns
	col := make([]float64, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			col[y] = pix[y*stride+x]
		}
		for y, v := range Forward1D(col) {
			pix[y*stride+x] = v
		}
	}
}

// Inverse2D applies the inverse Haar transform to a region, columns
// first and then rows, the exact reverse order of Forward2D.
func Inverse2D(pix []float64, width, height, stride int) {
	// Columns
	col := make([]float64, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			col[y] = pix[y*stride+x]
		}
		for y, v := range Inverse1D(col) {
			pix[y*stride+x] = v
		}
	}

	// Rows
	row := make([]float64, width)
	for y := 0; y < height; y++ {
		copy(row, pix[y*stride:y*stride+width])
		for x, v := range Inverse1D(row) {
			pix[y*stride+x] = v
		}
	}
}
