package wavelet

import (
	"github.com/cocosip/go-image-codec/codec"
)

// Options contains encoding options for the Haar wavelet codec
type Options struct {
	codec.BaseOptions
}

// NewOptions creates options with the given quality
func NewOptions(quality int) *Options {
	return &Options{BaseOptions: codec.BaseOptions{Quality: quality}}
}

// Validate validates the options
func (o *Options) Validate() error {
	return o.BaseOptions.Validate()
}
