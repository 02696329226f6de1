// Package display sends packed bitmaps to an SSD1306-class OLED controller
// attached over I²C, so a conversion can be checked on real hardware before
// it is flashed into firmware.
package display

import (
	"errors"
	"fmt"

	"github.com/bodgit/image2oled/bitmap"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

var (
	errBadSize       = errors.New("display: width and height must be positive and height a multiple of 8")
	errBadBufferSize = errors.New("display: invalid buffer size")
)

// Open initializes the host drivers and opens the named I²C bus. An empty
// name opens the first bus found.
func Open(name string) (i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("display: failed to initialize host: %w", err)
	}
	return i2creg.Open(name)
}

// Show draws pix, a packed bitmap of width by height pixels, on the
// controller attached to bus. The controller uses the same page layout so pix
// is sent unchanged.
func Show(bus i2c.Bus, width, height int, pix []byte) error {
	if width <= 0 || height <= 0 || height%bitmap.PageHeight != 0 {
		return errBadSize
	}
	if len(pix) != bitmap.Size(width, height) {
		return errBadBufferSize
	}

	dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{W: width, H: height})
	if err != nil {
		return err
	}

	if _, err := dev.Write(pix); err != nil {
		return err
	}

	return nil
}
