package bitmap

import (
	"errors"
	"image"
	"image/color"
	"io"
)

var errNotPaged = errors.New("bitmap: image height must be a multiple of 8")

// threshold is the 8-bit luma at or above which a pixel is lit
const threshold = 0x80

func luma(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y >= threshold
}

// lit returns a function reporting whether the pixel at (x, y) of m is lit.
// Pixels outside the bounds of m are never lit.
func lit(m image.Image) func(x, y int) bool {
	b := m.Bounds()
	switch m := m.(type) {
	case *image.Paletted:
		// Look up each palette entry once
		lut := make([]bool, len(m.Palette))
		for i, c := range m.Palette {
			lut[i] = luma(c)
		}
		return func(x, y int) bool {
			if !(image.Point{X: x, Y: y}.In(b)) {
				return false
			}
			i := int(m.ColorIndexAt(x, y))
			return i < len(lut) && lut[i]
		}
	case *image.Gray:
		return func(x, y int) bool {
			return image.Point{X: x, Y: y}.In(b) && m.GrayAt(x, y).Y >= threshold
		}
	}
	return func(x, y int) bool {
		return image.Point{X: x, Y: y}.In(b) && luma(m.At(x, y))
	}
}

// Pack returns the pixels of m in page-major order. A partial last page is
// padded with unlit pixels. Pack never modifies m and always returns
// Size(width, height) bytes.
func Pack(m image.Image) []byte {
	b := m.Bounds()
	on := lit(m)

	out := make([]byte, 0, Size(b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y += PageHeight {
		for x := b.Min.X; x < b.Max.X; x++ {
			var col byte
			for p := 0; p < PageHeight; p++ {
				if on(x, y+p) {
					col |= 1 << p
				}
			}
			out = append(out, col)
		}
	}
	return out
}

// Encode writes the Image m to w in page-major bitmap format.
func Encode(w io.Writer, m image.Image) error {
	if m.Bounds().Dy()%PageHeight != 0 {
		return errNotPaged
	}
	_, err := w.Write(Pack(m))
	return err
}
