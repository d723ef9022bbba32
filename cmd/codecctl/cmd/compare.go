package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/cocosip/go-image-codec/compare"
	"github.com/cocosip/go-image-codec/loader"
	"github.com/cocosip/go-image-codec/report"
)

// defaultQualities is the sweep run when no --quality flags are given.
var defaultQualities = []int{10, 30, 50, 70, 90}

// NewCompareCmd runs both codecs over a source image at one or more
// quality levels and writes a report per level.
func NewCompareCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "run DCT and Haar wavelet compression side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, _ := cmd.Flags().GetString("source")
			if source == "" {
				return fmt.Errorf("--source is required")
			}
			qualities, _ := cmd.Flags().GetIntSlice("quality")
			if len(qualities) == 0 {
				qualities = defaultQualities
			}
			outDir, _ := cmd.Flags().GetString("out")
			timeout, _ := cmd.Flags().GetInt("timeout")

			img, err := loader.Load(ctx, source, &loader.Options{
				Timeout: time.Duration(timeout) * time.Second,
			})
			if err != nil {
				var loadErr *loader.Error
				if errors.As(err, &loadErr) {
					slog.ErrorContext(ctx, "source could not be loaded", "source", loadErr.Source, "error", loadErr.Err)
				}
				return err
			}
			slog.InfoContext(ctx, "image loaded", "source", source, "width", img.Width, "height", img.Height)

			session, err := compare.NewSession(img)
			if err != nil {
				return err
			}
			reporter, err := report.New(outDir)
			if err != nil {
				return err
			}

			for _, quality := range qualities {
				result, err := session.RunAndReport(ctx, quality, reporter)
				if err != nil {
					return fmt.Errorf("quality %d: %w", quality, err)
				}
				fmt.Printf("quality %d%%: DCT PSNR %s dB, DWT PSNR %s dB\n",
					quality, formatPSNR(result.DCTPSNR), formatPSNR(result.DWTPSNR))
			}
			slog.InfoContext(ctx, "comparison reports written", "session", session.ID(), "dir", outDir)
			return nil
		},
	}
	cmd.Flags().String("source", "", "image source: local path or http(s) URL (.png/.jpg/.gif/.dcm)")
	cmd.Flags().IntSlice("quality", nil, "quality levels 1-100 (repeatable; default 10,30,50,70,90)")
	cmd.Flags().String("out", ".", "directory for report artifacts")
	cmd.Flags().Int("timeout", 10, "remote fetch timeout in seconds")
	return cmd
}

func formatPSNR(psnr float64) string {
	if math.IsInf(psnr, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", psnr)
}
