package image2oled

import (
	"errors"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"math"
	"os"

	"github.com/makeworld-the-better-one/dither/v2"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Palette is the palette of every normalized image. Index 1 is a lit pixel.
var Palette = color.Palette{color.Black, color.White}

var errEmptyImage = errors.New("image has no pixels")

// threshold is the 8-bit luma at or above which a pixel is lit
const threshold = 0x80

// NormalizeFile opens and decodes the image at path and normalizes it with
// Normalize. The file is closed before returning.
func NormalizeFile(path string, cfg Config, logger *log.Logger) (*image.Paletted, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Op: "error reading image file", Err: err}
	}
	defer f.Close()

	logger = orDiscard(logger)
	logger.Printf("Reading file %s\n", path)

	return Normalize(f, cfg, logger)
}

// Normalize decodes an image from r and returns a new paletted image of exactly
// cfg.Width by cfg.Height pixels using Palette. The decoded image is reduced
// to one bit, scaled to fit while preserving its aspect ratio and centred on
// a canvas filled with cfg.Padding.
func Normalize(r io.Reader, cfg Config, logger *log.Logger) (*image.Paletted, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Op: "error reading image file", Err: err}
	}
	return normalize(src, cfg, orDiscard(logger))
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return logger
}

func normalize(src image.Image, cfg Config, logger *log.Logger) (*image.Paletted, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, &Error{Kind: KindDecode, Op: "error reading image file", Err: errEmptyImage}
	}

	var bw *image.Paletted
	switch {
	case isBilevel(src):
		bw = thresholdImage(src)
	case cfg.Dither:
		logger.Println("Converting image to black and white, dithering")
		bw = ditherImage(src)
	default:
		logger.Println("Converting image to black and white, not dithering")
		bw = thresholdImage(src)
	}

	w, h := fit(b.Dx(), b.Dy(), cfg)
	scaled := image.NewPaletted(image.Rect(0, 0, w, h), Palette)
	draw.NearestNeighbor.Scale(scaled, scaled.Rect, bw, bw.Bounds(), draw.Src, nil)

	canvas := image.NewPaletted(image.Rect(0, 0, cfg.Width, cfg.Height), Palette)
	if i := cfg.Padding.index(); i != 0 {
		for j := range canvas.Pix {
			canvas.Pix[j] = i
		}
	}

	draw.Draw(canvas, scaled.Rect.Add(offset(w, h, cfg)), scaled, image.Point{}, draw.Src)

	return canvas, nil
}

// fit returns the size of a w by h image scaled by a single factor so that it
// touches the target along its dominant axis. Each axis is rounded half to
// even independently.
func fit(w, h int, cfg Config) (int, int) {
	factor := float64(cfg.Height) / float64(h)
	if float64(w)/float64(h) >= cfg.AspectRatio {
		factor = float64(cfg.Width) / float64(w)
	}
	return int(math.RoundToEven(float64(w) * factor)), int(math.RoundToEven(float64(h) * factor))
}

// offset returns where a w by h image is pasted on the canvas. Only one axis
// is ever centred and the floor division can leave the image one pixel closer
// to the top or left edge.
func offset(w, h int, cfg Config) image.Point {
	switch {
	case cfg.Width > w:
		return image.Pt((cfg.Width-w)/2, 0)
	case cfg.Height > h:
		return image.Pt(0, (cfg.Height-h)/2)
	}
	return image.Point{}
}

func isBlackOrWhite(c color.Color) bool {
	r, g, b, a := c.RGBA()
	if a != 0xffff || r != g || g != b {
		return false
	}
	return r == 0 || r == 0xffff
}

// isBilevel reports whether m is already strictly black and white
func isBilevel(m image.Image) bool {
	switch m := m.(type) {
	case *image.Paletted:
		for _, c := range m.Palette {
			if !isBlackOrWhite(c) {
				return false
			}
		}
		return true
	case *image.Gray:
		for _, y := range m.Pix {
			if y != 0x00 && y != 0xff {
				return false
			}
		}
		return true
	}
	return false
}

// opaque returns c with its alpha channel dropped, so a transparent pixel
// keeps whatever colour it carries.
func opaque(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}

func thresholdImage(m image.Image) *image.Paletted {
	b := m.Bounds()
	dst := image.NewPaletted(b, Palette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.GrayModel.Convert(opaque(m.At(x, y))).(color.Gray).Y >= threshold {
				dst.SetColorIndex(x, y, 1)
			}
		}
	}
	return dst
}

func ditherImage(m image.Image) *image.Paletted {
	b := m.Bounds()

	// Work on an opaque copy as the ditherer modifies its input where it can
	dup := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dup.SetRGBA(x, y, opaque(m.At(x, y)))
		}
	}

	d := dither.NewDitherer(Palette)
	d.Matrix = dither.FloydSteinberg

	return d.DitherPaletted(dup)
}
