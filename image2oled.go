/*
Package image2oled converts raster images into monolithic bitmaps for small
monochrome OLED displays such as the 128x64 and 128x32 panels commonly fitted
to keyboards.

The image is reduced to one bit per pixel, scaled to fit the display while
preserving its aspect ratio, centred on a padded canvas and then packed into
pages of eight vertical pixels per byte. The result is emitted as a C snippet
that can be pasted into a keymap and drawn with oled_write_raw_P.
*/
package image2oled

import "log"

// Converter runs the conversion pipeline for a resolved Config.
type Converter struct {
	cfg    Config
	logger *log.Logger
}

// New returns a Converter for cfg. Progress messages are written to logger,
// which may be nil to discard them.
func New(cfg Config, logger *log.Logger) *Converter {
	return &Converter{
		cfg:    cfg,
		logger: orDiscard(logger),
	}
}
