package dct

// DefaultLuminanceQuantTable is the standard JPEG luminance quantization table
var DefaultLuminanceQuantTable = [64]float64{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

// ScaleQuantTable scales a quantization table by quality factor (1-100).
// Quality 50 leaves the table unchanged; lower quality increases
// quantization (more loss), higher quality decreases it. Entries are
// rounded down to integers after scaling and never fall below 1, so
// element-wise division by the table is always safe.
func ScaleQuantTable(baseTable [64]float64, quality int) [64]float64 {
	var scale float64
	if quality < 50 {
		scale = 50.0 / float64(quality)
	} else {
		scale = 2.0 - float64(quality)/50.0
	}

	var result [64]float64
	for i := 0; i < 64; i++ {
		val := float64(int(baseTable[i]*scale + 0.5))
		if val < 1 {
			val = 1
		}
		result[i] = val
	}
	return result
}
