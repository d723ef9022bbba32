package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidQuality is returned when quality parameter is invalid
	ErrInvalidQuality = errors.New("invalid quality (must be 1-100)")

	// ErrNilImage is returned when the source image is nil or empty
	ErrNilImage = errors.New("nil or empty source image")

	// ErrImageTooSmall is returned when a dimension is below the 2-sample minimum
	ErrImageTooSmall = errors.New("image dimensions must be at least 2x2")
)
