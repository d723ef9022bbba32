// Package report renders comparison results into artifacts on disk: a
// side-by-side panel sheet (original, both reconstructions, both error
// maps) and a JSON summary. It sits outside the compression core, which
// never writes files itself.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/cocosip/go-image-codec/compare"
	"github.com/cocosip/go-image-codec/metric"
	"github.com/cocosip/go-image-codec/raster"
)

var _ compare.Reporter = (*Reporter)(nil)

// errorMapScale is the error magnitude rendered at full heat
const errorMapScale = 50.0

// panelMargin is the gap between panels in the sheet, in pixels
const panelMargin = 8

// Reporter writes comparison artifacts into a directory.
type Reporter struct {
	dir string
}

// New creates a reporter that writes into dir, creating it if needed.
func New(dir string) (*Reporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report dir: %w", err)
	}
	return &Reporter{dir: dir}, nil
}

// MethodSummary captures the fidelity statistics of one codec.
type MethodSummary struct {
	// PSNRdB is omitted when the reconstruction is identical to the
	// source (infinite PSNR); Lossless marks that case instead.
	PSNRdB   *float64 `json:"psnr_db,omitempty"`
	Lossless bool     `json:"lossless,omitempty"`
	MaxError float64  `json:"max_error"`
	MeanErr  float64  `json:"mean_error"`
}

// Summary is the JSON artifact written next to the panel sheet.
type Summary struct {
	Quality int           `json:"quality"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	DCT     MethodSummary `json:"dct"`
	DWT     MethodSummary `json:"dwt"`
}

// Report writes the panel sheet and summary for one comparison result.
func (r *Reporter) Report(ctx context.Context, source *raster.Image, result *compare.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sheet := composeSheet(source, result)
	sheetPath := filepath.Join(r.dir, fmt.Sprintf("compression_comparison_q%d.png", result.Quality))
	f, err := os.Create(sheetPath)
	if err != nil {
		return fmt.Errorf("report sheet: %w", err)
	}
	if err := png.Encode(f, sheet); err != nil {
		f.Close()
		return fmt.Errorf("report sheet: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report sheet: %w", err)
	}

	summary, err := buildSummary(source, result)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("report summary: %w", err)
	}
	summaryPath := filepath.Join(r.dir, fmt.Sprintf("compression_summary_q%d.json", result.Quality))
	if err := os.WriteFile(summaryPath, data, 0o644); err != nil {
		return fmt.Errorf("report summary: %w", err)
	}
	return nil
}

func buildSummary(source *raster.Image, result *compare.Result) (*Summary, error) {
	dct, err := methodSummary(source, result.DCT, result.DCTPSNR)
	if err != nil {
		return nil, err
	}
	dwt, err := methodSummary(source, result.DWT, result.DWTPSNR)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Quality: result.Quality,
		Width:   source.Width,
		Height:  source.Height,
		DCT:     dct,
		DWT:     dwt,
	}, nil
}

func methodSummary(source, reconstructed *raster.Image, psnr float64) (MethodSummary, error) {
	maxErr, err := metric.MaxAbsError(source, reconstructed)
	if err != nil {
		return MethodSummary{}, err
	}
	meanErr, err := metric.MeanAbsError(source, reconstructed)
	if err != nil {
		return MethodSummary{}, err
	}

	s := MethodSummary{MaxError: maxErr, MeanErr: meanErr}
	if math.IsInf(psnr, 1) {
		s.Lossless = true
	} else {
		s.PSNRdB = &psnr
	}
	return s, nil
}

// composeSheet lays out two rows of three panels: the original and both
// reconstructions on top, both error maps (heat-colored) below.
func composeSheet(source *raster.Image, result *compare.Result) image.Image {
	pw, ph := source.Width, source.Height
	sheetW := 3*pw + 4*panelMargin
	sheetH := 2*ph + 3*panelMargin

	sheet := image.NewRGBA(image.Rect(0, 0, sheetW, sheetH))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	paste := func(col, row int, panel image.Image) {
		x := panelMargin + col*(pw+panelMargin)
		y := panelMargin + row*(ph+panelMargin)
		draw.Draw(sheet, image.Rect(x, y, x+pw, y+ph), panel, image.Point{}, draw.Src)
	}

	paste(0, 0, grayPanel(source))
	paste(1, 0, grayPanel(result.DCT))
	paste(2, 0, grayPanel(result.DWT))
	paste(1, 1, heatPanel(result.DCTError))
	paste(2, 1, heatPanel(result.DWTError))
	return sheet
}

func grayPanel(img *raster.Image) image.Image {
	panel := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	copy(panel.Pix, img.Gray8())
	return panel
}

// heatPanel renders an error map with a black-red-yellow-white ramp,
// saturating at errorMapScale.
func heatPanel(errMap *raster.Image) image.Image {
	panel := image.NewRGBA(image.Rect(0, 0, errMap.Width, errMap.Height))
	for i, v := range errMap.Pix {
		t := v / errorMapScale
		if t > 1 {
			t = 1
		}
		panel.SetRGBA(i%errMap.Width, i/errMap.Width, color.RGBA{
			R: rampByte(3 * t),
			G: rampByte(3*t - 1),
			B: rampByte(3*t - 2),
			A: 255,
		})
	}
	return panel
}

func rampByte(t float64) uint8 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 255
	}
	return uint8(t*255 + 0.5)
}
