// Package loader resolves a source identifier (local path or URL) to a
// grayscale sample grid. Load failures carry their own error type so
// callers can tell them apart from compute failures.
package loader

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cocosip/go-image-codec/raster"
)

// ErrUnsupportedFormat is returned when the source cannot be decoded
// into a grayscale grid.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultTimeout bounds remote fetches when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// defaultUserAgent is sent on remote fetches; some image hosts
// (Wikimedia among them) reject requests without a browser User-Agent.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Error wraps any failure to resolve a source into pixel data.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options configures the loader.
type Options struct {
	// Timeout bounds remote fetches; zero means DefaultTimeout
	Timeout time.Duration

	// UserAgent overrides the default browser User-Agent header
	UserAgent string
}

// Load resolves a source — http(s) URL or local path — to a grayscale
// image. PNG, JPEG and GIF sources decode through the standard image
// registry; local .dcm files are parsed as DICOM. The context bounds
// the remote fetch; load fails closed on timeout.
func Load(ctx context.Context, source string, opts *Options) (*raster.Image, error) {
	if opts == nil {
		opts = &Options{}
	}

	var (
		img *raster.Image
		err error
	)
	switch {
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		img, err = loadURL(ctx, source, opts)
	case strings.EqualFold(filepath.Ext(source), ".dcm"):
		img, err = loadDICOM(source)
	default:
		img, err = loadFile(source)
	}
	if err != nil {
		return nil, &Error{Source: source, Err: err}
	}
	return img, nil
}

func loadURL(ctx context.Context, source string, opts *Options) (*raster.Image, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return decode(resp.Body)
}

func loadFile(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f)
}

// decode reads any registered image format and converts it to a
// luminance grid using the ITU-R 601-2 weights, the same conversion a
// grayscale ("L" mode) decode applies.
func decode(r io.Reader) (*raster.Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	bounds := src.Bounds()
	img, err := raster.New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(src.At(x, y)).(color.Gray)
			img.Set(x-bounds.Min.X, y-bounds.Min.Y, float64(g.Y))
		}
	}
	return img, nil
}
