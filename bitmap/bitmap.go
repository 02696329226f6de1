/*
Package bitmap implements the page-major monochrome bitmap format used by
SSD1306-class OLED controllers.

The display is split into pages of eight rows. Pages are written top to
bottom and within each page there is one byte per column, left to right. Bit
0 of each byte is the topmost row of the page and a set bit is a lit pixel,
so the byte at index x + page*width holds pixels (x, page*8) through
(x, page*8+7). There is no header or padding; a width by height display
occupies width*height/8 bytes.
*/
package bitmap

// PageHeight is the number of rows packed into each byte
const PageHeight = 8

// Size returns the number of bytes needed for a width by height bitmap.
func Size(width, height int) int {
	return width * ((height + PageHeight - 1) / PageHeight)
}
