package image2oled

import "errors"

const (
	// DefaultWidth is the width of both common keyboard OLED panels
	DefaultWidth = 128
	// DefaultHeight is the height of the larger panel
	DefaultHeight = 64
	// SmallHeight is the height of the 128x32 panel
	SmallHeight = 32

	pageHeight = 8
)

// Errors returned by Resolve, always wrapped in an *Error of KindUsage.
var (
	ErrConflictingSize = errors.New("use only -s/--small OR -x/--width <WIDTH> -y/--height <HEIGHT> to set your OLED resolution")
	ErrIncompleteSize  = errors.New("please provide both width and height of your OLED: -x <WIDTH> -y <HEIGHT>")
	ErrNonPositiveSize = errors.New("given OLED resolution must be positive integers")
	ErrHeightNotPaged  = errors.New("vertical resolution must be a multiple of 8")
)

// Fill is the colour used to pad the canvas around the scaled image.
type Fill int

// Padding colours.
const (
	Black Fill = iota
	White
)

func (f Fill) String() string {
	if f == White {
		return "white"
	}
	return "black"
}

// index returns the palette index of f in Palette
func (f Fill) index() uint8 {
	if f == White {
		return 1
	}
	return 0
}

// Options holds the raw, unvalidated input from the command line. A nil
// Width or Height means the flag wasn't supplied.
type Options struct {
	Small       bool
	Width       *int
	Height      *int
	White       bool
	Dither      bool
	Preview     bool
	WriteToFile bool
}

// Config is the validated configuration shared by every stage. It is
// created once by Resolve and passed by value from then on.
type Config struct {
	Width       int
	Height      int
	AspectRatio float64
	Padding     Fill
	Dither      bool
	Preview     bool
	WriteToFile bool
}

// Pages returns the number of 8 pixel high pages in the display.
func (c Config) Pages() int {
	return c.Height / pageHeight
}

// Size returns the length of the packed array for the display.
func (c Config) Size() int {
	return c.Width * c.Pages()
}

// Resolve validates o and derives the target resolution from it. Any
// failure is returned as an *Error of KindUsage wrapping one of the
// ErrConflictingSize, ErrIncompleteSize, ErrNonPositiveSize or
// ErrHeightNotPaged sentinels.
func Resolve(o Options) (Config, error) {
	if o.Small && (o.Width != nil || o.Height != nil) {
		return Config{}, &Error{Kind: KindUsage, Err: ErrConflictingSize}
	}

	if (o.Width == nil) != (o.Height == nil) {
		return Config{}, &Error{Kind: KindUsage, Err: ErrIncompleteSize}
	}

	width, height := DefaultWidth, DefaultHeight
	switch {
	case o.Small:
		height = SmallHeight
	case o.Width != nil:
		width, height = *o.Width, *o.Height
	}

	if width <= 0 || height <= 0 {
		return Config{}, &Error{Kind: KindUsage, Err: ErrNonPositiveSize}
	}

	if height%pageHeight != 0 {
		return Config{}, &Error{Kind: KindUsage, Err: ErrHeightNotPaged}
	}

	padding := Black
	if o.White {
		padding = White
	}

	return Config{
		Width:       width,
		Height:      height,
		AspectRatio: float64(width) / float64(height),
		Padding:     padding,
		Dither:      o.Dither,
		Preview:     o.Preview,
		WriteToFile: o.WriteToFile,
	}, nil
}
