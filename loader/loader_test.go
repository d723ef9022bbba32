package loader

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeGrayPNG produces a PNG with a deterministic gradient.
func encodeGrayPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) % 256)})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadLocalPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, os.WriteFile(path, encodeGrayPNG(t, 24, 16), 0o644))

	img, err := Load(context.Background(), path, nil)
	require.NoError(t, err)

	assert.Equal(t, 24, img.Width)
	assert.Equal(t, 16, img.Height)
	assert.Equal(t, float64(0), img.At(0, 0))
	assert.Equal(t, float64(5), img.At(3, 2))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/image.png", nil)
	require.Error(t, err)

	var loadErr *Error
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "/nonexistent/image.png", loadErr.Source)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsNonImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("this is not an image"), 0o644))

	_, err := Load(context.Background(), path, nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFromURL(t *testing.T) {
	data := encodeGrayPNG(t, 10, 10)
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write(data)
	}))
	defer srv.Close()

	img, err := Load(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Width)
	assert.Equal(t, 10, img.Height)
	assert.Contains(t, gotUA, "Mozilla/5.0")
}

func TestLoadFromURLNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Load(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var loadErr *Error
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadFromURLHonorsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	start := time.Now()
	_, err := Load(context.Background(), srv.URL, &Options{Timeout: 50 * time.Millisecond})
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestLoadFromURLHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadMissingDICOMFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "scan.dcm"), nil)
	require.Error(t, err)

	var loadErr *Error
	assert.ErrorAs(t, err, &loadErr)
}
