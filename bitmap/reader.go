package bitmap

import (
	"errors"
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

var (
	errBadWidth  = errors.New("bitmap: width must be positive")
	errNotEnough = errors.New("bitmap: not a whole number of pages")
)

// Decode returns pix, a packed bitmap width pixels wide, as an image. The
// image shares pix rather than copying it.
func Decode(pix []byte, width int) (*image1bit.VerticalLSB, error) {
	if width <= 0 {
		return nil, errBadWidth
	}
	if len(pix)%width != 0 {
		return nil, errNotEnough
	}

	return &image1bit.VerticalLSB{
		Pix:    pix,
		Stride: width,
		Rect:   image.Rect(0, 0, width, len(pix)/width*PageHeight),
	}, nil
}
