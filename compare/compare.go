// Package compare runs the two codecs side by side over one source
// image and collects the fidelity results.
package compare

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cocosip/go-image-codec/codec"
	"github.com/cocosip/go-image-codec/dct"
	"github.com/cocosip/go-image-codec/metric"
	"github.com/cocosip/go-image-codec/raster"
	"github.com/cocosip/go-image-codec/wavelet"
)

// Result holds the outcome of one comparison run at a single quality.
type Result struct {
	Quality int

	DCT *raster.Image
	DWT *raster.Image

	DCTPSNR float64
	DWTPSNR float64

	// Per-pixel absolute error maps against the source
	DCTError *raster.Image
	DWTError *raster.Image
}

// Reporter is the external reporting boundary. Implementations consume
// a finished result and produce whatever artifact they want; the
// comparison core itself never writes files.
type Reporter interface {
	Report(ctx context.Context, source *raster.Image, result *Result) error
}

// Session owns one immutable source image and compares the two codecs
// against it. The source is copied at construction and never mutated,
// so a session can run any number of quality levels.
type Session struct {
	id     uuid.UUID
	source *raster.Image
	dct    codec.Codec
	dwt    codec.Codec
}

// NewSession validates the source image and creates a comparison
// session over a private copy of it.
func NewSession(source *raster.Image) (*Session, error) {
	if err := codec.ValidateImage(source); err != nil {
		return nil, err
	}
	return &Session{
		id:     uuid.New(),
		source: source.Clone(),
		dct:    dct.NewCodec(),
		dwt:    wavelet.NewCodec(),
	}, nil
}

// ID returns the session identifier used in logs and report names.
func (s *Session) ID() string {
	return s.id.String()
}

// Source returns the session's source image. Callers must treat it as
// read-only.
func (s *Session) Source() *raster.Image {
	return s.source
}

// Run compresses the source with both codecs at the given quality and
// computes the PSNR and error map of each reconstruction. The two
// codecs are independent and run concurrently; a failure in either one
// propagates up unmodified.
func (s *Session) Run(ctx context.Context, quality int) (*Result, error) {
	if err := codec.ValidateQuality(quality); err != nil {
		return nil, err
	}

	result := &Result{Quality: quality}

	var g errgroup.Group
	g.Go(func() error {
		out, err := s.dct.Compress(s.source, quality)
		if err != nil {
			return fmt.Errorf("%s: %w", s.dct.Name(), err)
		}
		result.DCT = out
		return nil
	})
	g.Go(func() error {
		out, err := s.dwt.Compress(s.source, quality)
		if err != nil {
			return fmt.Errorf("%s: %w", s.dwt.Name(), err)
		}
		result.DWT = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var err error
	if result.DCTPSNR, err = metric.PSNR(s.source, result.DCT); err != nil {
		return nil, err
	}
	if result.DWTPSNR, err = metric.PSNR(s.source, result.DWT); err != nil {
		return nil, err
	}
	if result.DCTError, err = raster.AbsDiff(s.source, result.DCT); err != nil {
		return nil, err
	}
	if result.DWTError, err = raster.AbsDiff(s.source, result.DWT); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "comparison complete",
		"session", s.id.String(),
		"quality", quality,
		"dct_psnr_db", result.DCTPSNR,
		"dwt_psnr_db", result.DWTPSNR,
	)
	return result, nil
}

// RunAndReport runs one quality level and hands the result to the
// reporting collaborator.
func (s *Session) RunAndReport(ctx context.Context, quality int, reporter Reporter) (*Result, error) {
	result, err := s.Run(ctx, quality)
	if err != nil {
		return nil, err
	}
	if reporter != nil {
		if err := reporter.Report(ctx, s.source, result); err != nil {
			return nil, fmt.Errorf("report: %w", err)
		}
	}
	return result, nil
}
