package report

import (
	"context"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocosip/go-image-codec/compare"
	"github.com/cocosip/go-image-codec/raster"
)

func TestReportWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	reporter, err := New(filepath.Join(dir, "out"))
	require.NoError(t, err)

	img, err := raster.New(24, 16)
	require.NoError(t, err)
	for i := range img.Pix {
		img.Pix[i] = float64((i * 5) % 256)
	}

	session, err := compare.NewSession(img)
	require.NoError(t, err)

	result, err := session.RunAndReport(context.Background(), 50, reporter)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Panel sheet: three columns, two rows, plus margins.
	sheetPath := filepath.Join(dir, "out", "compression_comparison_q50.png")
	f, err := os.Open(sheetPath)
	require.NoError(t, err)
	defer f.Close()
	sheet, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 3*24+4*panelMargin, sheet.Bounds().Dx())
	assert.Equal(t, 2*16+3*panelMargin, sheet.Bounds().Dy())

	// JSON summary.
	data, err := os.ReadFile(filepath.Join(dir, "out", "compression_summary_q50.json"))
	require.NoError(t, err)

	var summary Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 50, summary.Quality)
	assert.Equal(t, 24, summary.Width)
	assert.Equal(t, 16, summary.Height)
	if !summary.DCT.Lossless {
		require.NotNil(t, summary.DCT.PSNRdB)
		assert.Greater(t, *summary.DCT.PSNRdB, 0.0)
	}
	if !summary.DWT.Lossless {
		require.NotNil(t, summary.DWT.PSNRdB)
		assert.Greater(t, *summary.DWT.PSNRdB, 0.0)
	}
}

func TestReportHandlesLosslessResult(t *testing.T) {
	dir := t.TempDir()
	reporter, err := New(dir)
	require.NoError(t, err)

	img, err := raster.New(8, 8)
	require.NoError(t, err)
	for i := range img.Pix {
		img.Pix[i] = 128
	}

	// A uniform image reconstructs exactly under the DCT at quality 50,
	// which exercises the infinite-PSNR path through JSON encoding.
	session, err := compare.NewSession(img)
	require.NoError(t, err)
	result, err := session.Run(context.Background(), 50)
	require.NoError(t, err)

	require.NoError(t, reporter.Report(context.Background(), img, result))

	data, err := os.ReadFile(filepath.Join(dir, "compression_summary_q50.json"))
	require.NoError(t, err)

	var summary Summary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.True(t, summary.DCT.Lossless)
	assert.Nil(t, summary.DCT.PSNRdB)
}

func TestReportRespectsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	reporter, err := New(dir)
	require.NoError(t, err)

	img, err := raster.New(8, 8)
	require.NoError(t, err)
	session, err := compare.NewSession(img)
	require.NoError(t, err)
	result, err := session.Run(context.Background(), 50)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, reporter.Report(ctx, img, result))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
