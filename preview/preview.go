// Package preview renders packed bitmaps as block characters for a terminal.
//
// Each character covers one column of two rows, so a 128x64 display is drawn
// as 32 lines of 128 characters.
package preview

import (
	"bufio"
	"io"

	"github.com/bodgit/image2oled/bitmap"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Glyphs indexed by top | bottom<<1
var glyphs = [4]rune{
	' ', // both off
	'▀', // upper half block
	'▄', // lower half block
	'█', // full block
}

func glyph(top, bottom image1bit.Bit) rune {
	var i int
	if top {
		i |= 1
	}
	if bottom {
		i |= 2
	}
	return glyphs[i]
}

// Render writes pix, a packed bitmap width pixels wide, to w. Lines are
// produced page by page, covering rows 0 and 1 of the page, then 2 and 3, and
// so on.
func Render(w io.Writer, pix []byte, width int) error {
	m, err := bitmap.Decode(pix, width)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y += 2 {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			if _, err := bw.WriteRune(glyph(m.BitAt(x, y), m.BitAt(x, y+1))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
