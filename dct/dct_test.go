package dct

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestForwardInverseRoundTrip(t *testing.T) {
	var block [64]float64
	for i := range block {
		block[i] = float64((i*31+7)%256) - 128
	}
	original := block

	Forward2D(&block)
	Inverse2D(&block)

	for i := range block {
		if math.Abs(block[i]-original[i]) > tol {
			t.Fatalf("sample %d = %v, want %v", i, block[i], original[i])
		}
	}
}

func TestForward2DUniformBlockHasOnlyDC(t *testing.T) {
	var block [64]float64
	for i := range block {
		block[i] = 50
	}

	Forward2D(&block)

	// For a constant block the 2D orthonormal DCT concentrates all
	// energy in the DC coefficient: 8 * value.
	if math.Abs(block[0]-400) > tol {
		t.Errorf("DC coefficient = %v, want 400", block[0])
	}
	for i := 1; i < 64; i++ {
		if math.Abs(block[i]) > tol {
			t.Errorf("AC coefficient %d = %v, want 0", i, block[i])
		}
	}
}

func TestForward2DPreservesEnergy(t *testing.T) {
	var block [64]float64
	for i := range block {
		block[i] = math.Sin(float64(i)) * 100
	}

	var inEnergy float64
	for _, v := range block {
		inEnergy += v * v
	}

	Forward2D(&block)

	var outEnergy float64
	for _, v := range block {
		outEnergy += v * v
	}

	if math.Abs(inEnergy-outEnergy) > 1e-6 {
		t.Errorf("energy not preserved: in %v, out %v", inEnergy, outEnergy)
	}
}

func TestScaleQuantTableIdentityAtQuality50(t *testing.T) {
	scaled := ScaleQuantTable(DefaultLuminanceQuantTable, 50)
	for i := range scaled {
		if scaled[i] != DefaultLuminanceQuantTable[i] {
			t.Errorf("entry %d = %v, want %v", i, scaled[i], DefaultLuminanceQuantTable[i])
		}
	}
}

func TestScaleQuantTableNeverZero(t *testing.T) {
	for quality := 1; quality <= 100; quality++ {
		scaled := ScaleQuantTable(DefaultLuminanceQuantTable, quality)
		for i, v := range scaled {
			if v < 1 {
				t.Fatalf("quality %d entry %d = %v, want >= 1", quality, i, v)
			}
			if v != math.Trunc(v) {
				t.Fatalf("quality %d entry %d = %v, want an integer", quality, i, v)
			}
		}
	}
}

func TestScaleQuantTableDirection(t *testing.T) {
	coarse := ScaleQuantTable(DefaultLuminanceQuantTable, 10)
	fine := ScaleQuantTable(DefaultLuminanceQuantTable, 90)

	// Lower quality scales the table up, higher quality scales it down.
	if coarse[63] <= DefaultLuminanceQuantTable[63] {
		t.Errorf("quality 10 entry = %v, want > %v", coarse[63], DefaultLuminanceQuantTable[63])
	}
	if fine[63] >= DefaultLuminanceQuantTable[63] {
		t.Errorf("quality 90 entry = %v, want < %v", fine[63], DefaultLuminanceQuantTable[63])
	}
	// At quality 100 the scale is zero and every entry clamps to 1.
	lossless := ScaleQuantTable(DefaultLuminanceQuantTable, 100)
	for i, v := range lossless {
		if v != 1 {
			t.Errorf("quality 100 entry %d = %v, want 1", i, v)
		}
	}
}
