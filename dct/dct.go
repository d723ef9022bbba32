// Package dct implements the 8x8 block DCT codec.
//
// The transform is the orthonormal Type-II DCT and its Type-III inverse:
//
//	X[k] = s(k) * sum_{n=0}^{N-1} x[n] * cos(pi * k * (2n+1) / (2N))
//	s(0) = sqrt(1/N), s(k>0) = sqrt(2/N)
//
// With this normalization the forward and inverse transforms are exact
// algebraic inverses, and the separable 2D transform commutes: rows then
// columns equals columns then rows.
package dct

import "math"

// BlockSize is the tile size used by the codec
const BlockSize = 8

// basis[k][n] = s(k) * cos(pi * k * (2n+1) / 16)
var basis = func() [BlockSize][BlockSize]float64 {
	var b [BlockSize][BlockSize]float64
	for k := 0; k < BlockSize; k++ {
		scale := math.Sqrt(2.0 / BlockSize)
		if k == 0 {
			scale = math.Sqrt(1.0 / BlockSize)
		}
		for n := 0; n < BlockSize; n++ {
			b[k][n] = scale * math.Cos(math.Pi*float64(k)*float64(2*n+1)/(2.0*BlockSize))
		}
	}
	return b
}()

// Forward2D performs the 2D orthonormal DCT on an 8x8 block
// (row-major, 64 values). The 1D transform is applied to each row, then
// to each column of the row-transformed result.
func Forward2D(block *[64]float64) {
	var tmp [64]float64

	// Rows
	for y := 0; y < BlockSize; y++ {
		row := y * BlockSize
		for k := 0; k < BlockSize; k++ {
			sum := 0.0
			for n := 0; n < BlockSize; n++ {
				sum += basis[k][n] * block[row+n]
			}
			tmp[row+k] = sum
		}
	}

	// Columns
	for x := 0; x < BlockSize; x++ {
		for k := 0; k < BlockSize; k++ {
			sum := 0.0
			for n := 0; n < BlockSize; n++ {
				sum += basis[k][n] * tmp[n*BlockSize+x]
			}
			block[k*BlockSize+x] = sum
		}
	}
}

// Inverse2D performs the inverse (Type-III) 2D DCT on an 8x8 block,
// columns first, then rows.
func Inverse2D(block *[64]float64) {
	var tmp [64]float64

	// Columns
	for x := 0; x < BlockSize; x++ {
		for n := 0; n < BlockSize; n++ {
			sum := 0.0
			for k := 0; k < BlockSize; k++ {
				sum += basis[k][n] * block[k*BlockSize+x]
			}
			tmp[n*BlockSize+x] = sum
		}
	}

	// Rows
	for y := 0; y < BlockSize; y++ {
		row := y * BlockSize
		for n := 0; n < BlockSize; n++ {
			sum := 0.0
			for k := 0; k < BlockSize; k++ {
				sum += basis[k][n] * tmp[row+k]
			}
			block[row+n] = sum
		}
	}
}
