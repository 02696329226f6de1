package image2oled

import (
	"fmt"
	"io"
	"os"

	"github.com/bodgit/image2oled/bitmap"
	"github.com/bodgit/image2oled/csource"
	"github.com/bodgit/image2oled/preview"
)

// Result describes a finished conversion.
type Result struct {
	// Pix is the packed bitmap
	Pix []byte
	// Output is the path of the C file, or empty if the snippet was
	// written to the caller's writer
	Output string
}

// Success returns the message telling the user what to do with the snippet.
func (r *Result) Success() string {
	what := "above"
	if r.Output != "" {
		what = "contents of " + r.Output
	}
	return fmt.Sprintf("Success! Copy the %s to your keymap.c to start using it!", what)
}

// Run converts the image at input. The preview, if enabled, is always written
// to w; the snippet is written to w or, if the Config says so, to the .c file
// alongside input. The output file is only created once the image has been
// decoded and packed.
func (c *Converter) Run(input string, w io.Writer) (*Result, error) {
	m, err := NormalizeFile(input, c.cfg, c.logger)
	if err != nil {
		return nil, err
	}

	pix := bitmap.Pack(m)

	if c.cfg.Preview {
		if err := c.preview(w, pix); err != nil {
			return nil, &Error{Kind: KindWrite, Op: "error printing preview", Err: err}
		}
	}

	output := csource.OutputPath(input)
	name := csource.Symbol(output)

	if !c.cfg.WriteToFile {
		if err := csource.Write(w, name, pix, c.cfg.Width); err != nil {
			return nil, &Error{Kind: KindWrite, Op: "error writing output", Err: err}
		}
		return &Result{Pix: pix}, nil
	}

	if err := c.writeFile(output, name, pix); err != nil {
		return nil, &Error{Kind: KindWrite, Op: "error writing to output file", Err: err}
	}

	return &Result{Pix: pix, Output: output}, nil
}

func (c *Converter) preview(w io.Writer, pix []byte) error {
	if _, err := fmt.Fprintln(w, "Printing preview:"); err != nil {
		return err
	}
	return preview.Render(w, pix, c.cfg.Width)
}

func (c *Converter) writeFile(file, name string, pix []byte) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	c.logger.Printf("Writing to file %s\n", file)

	if err := csource.Write(f, name, pix, c.cfg.Width); err != nil {
		return err
	}

	return f.Close()
}
