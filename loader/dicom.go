package loader

import (
	"encoding/binary"
	"fmt"

	"github.com/cocosip/go-dicom/pkg/dicom/parser"
	"github.com/cocosip/go-dicom/pkg/imaging"

	"github.com/cocosip/go-image-codec/raster"
)

// loadDICOM parses a DICOM file and converts the first frame of its
// pixel data to a luminance grid. Only single-sample (monochrome)
// frames with 8 or 16 bits allocated are supported; 16-bit samples are
// rescaled into [0,255] using the stored bit depth.
func loadDICOM(path string) (*raster.Image, error) {
	res, err := parser.ParseFile(path, parser.WithReadOption(parser.ReadAll))
	if err != nil {
		return nil, err
	}

	pd, err := imaging.CreatePixelData(res.Dataset)
	if err != nil {
		return nil, err
	}

	info := pd.Info
	if int(info.SamplesPerPixel) != 1 {
		return nil, fmt.Errorf("%w: %d samples per pixel", ErrUnsupportedFormat, info.SamplesPerPixel)
	}

	frame, err := pd.GetFrame(0)
	if err != nil {
		return nil, err
	}

	width := int(info.Width)
	height := int(info.Height)
	img, err := raster.New(width, height)
	if err != nil {
		return nil, err
	}

	switch int(info.BitsAllocated) {
	case 8:
		if len(frame) < width*height {
			return nil, fmt.Errorf("%w: frame too short", ErrUnsupportedFormat)
		}
		for i := 0; i < width*height; i++ {
			img.Pix[i] = float64(frame[i])
		}
	case 16:
		if len(frame) < width*height*2 {
			return nil, fmt.Errorf("%w: frame too short", ErrUnsupportedFormat)
		}
		maxStored := float64(uint32(1)<<uint(info.BitsStored) - 1)
		for i := 0; i < width*height; i++ {
			v := binary.LittleEndian.Uint16(frame[i*2 : i*2+2])
			img.Pix[i] = float64(v) / maxStored * 255
		}
	default:
		return nil, fmt.Errorf("%w: %d bits allocated", ErrUnsupportedFormat, info.BitsAllocated)
	}

	return img, nil
}
