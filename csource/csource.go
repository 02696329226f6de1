/*
Package csource generates the C snippet that embeds a packed bitmap in a QMK
keymap.

The snippet declares a function render_image_<name> holding a PROGMEM byte
array and passing it to oled_write_raw_P. The array is laid out with one
display row of values per line so the shape of the image is visible in the
source.
*/
package csource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const indent = "    "

var errBadWidth = errors.New("csource: width must be positive")

// OutputPath returns the path of the C file for the image at input; the
// extension of input is replaced with .c.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".c"
}

func isIdent(r rune, first bool) bool {
	switch {
	case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return !first
	}
	return false
}

// Symbol returns a C identifier for the file at path: the base name without
// its extension, with anything that can't appear in an identifier replaced
// by an underscore.
func Symbol(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	var sb strings.Builder
	for _, r := range stem {
		switch {
		case isIdent(r, sb.Len() == 0):
			sb.WriteRune(r)
		case sb.Len() == 0 && r >= '0' && r <= '9':
			sb.WriteByte('_')
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}

	if sb.Len() == 0 {
		return "image"
	}
	return sb.String()
}

// Write writes the snippet for pix, a packed bitmap width pixels wide, to w
// using name for both the array and the render function.
func Write(w io.Writer, name string, pix []byte, width int) error {
	if width <= 0 {
		return errBadWidth
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "static void render_image_%s(void) {\n", name)
	fmt.Fprintf(bw, "%sstatic const char PROGMEM %s[] = {\n%s%s", indent, name, indent, indent)
	for i, b := range pix {
		if i > 0 && i%width == 0 {
			fmt.Fprintf(bw, "\n%s%s", indent, indent)
		}
		if i == len(pix)-1 {
			fmt.Fprintf(bw, "%-3d\n", b)
		} else {
			fmt.Fprintf(bw, "%-3d, ", b)
		}
	}
	fmt.Fprintf(bw, "%s};\n\n", indent)
	fmt.Fprintf(bw, "%soled_write_raw_P(%s, sizeof(%s));\n}\n", indent, name, name)

	return bw.Flush()
}
