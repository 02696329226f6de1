package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bodgit/image2oled"
	"github.com/bodgit/image2oled/display"
	"github.com/urfave/cli/v2"
)

const usageExitCode = 2

var errTooManyArgs = errors.New("only one INPUTFILE can be converted at a time")

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func exitError(err error) error {
	code := 1
	if image2oled.KindOf(err) == image2oled.KindUsage {
		code = usageExitCode
	}
	return cli.Exit(err, code)
}

func options(c *cli.Context) image2oled.Options {
	o := image2oled.Options{
		Small:       c.Bool("small"),
		White:       c.Bool("white"),
		Dither:      c.Bool("dither"),
		Preview:     c.Bool("preview"),
		WriteToFile: c.Bool("output"),
	}
	if c.IsSet("width") {
		width := c.Int("width")
		o.Width = &width
	}
	if c.IsSet("height") {
		height := c.Int("height")
		o.Height = &height
	}
	return o
}

func show(c *cli.Context, cfg image2oled.Config, pix []byte) error {
	bus, err := display.Open(c.String("i2c-bus"))
	if err != nil {
		return err
	}
	defer bus.Close()

	return display.Show(bus, cfg.Width, cfg.Height, pix)
}

// interspersed moves every flag in args ahead of the positional arguments,
// as the flag parser stops at the first positional. Flags in flags that
// aren't booleans consume the following argument as their value.
func interspersed(flags []cli.Flag, args []string) []string {
	if len(args) == 0 {
		return args
	}

	takesValue := make(map[string]bool)
	for _, f := range flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			takesValue[name] = true
		}
	}

	opts := []string{args[0]}
	var positional []string
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case len(arg) > 1 && arg[0] == '-':
			opts = append(opts, arg)
			name := strings.TrimLeft(arg, "-")
			if !strings.Contains(name, "=") && takesValue[name] && i+1 < len(args) {
				i++
				opts = append(opts, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) == 0 {
		return opts
	}
	return append(append(opts, "--"), positional...)
}

func convert(c *cli.Context) error {
	switch {
	case c.NArg() < 1:
		if err := cli.ShowAppHelp(c); err != nil {
			return err
		}
		return cli.Exit("", 1)
	case c.NArg() > 1:
		return cli.Exit(errTooManyArgs, usageExitCode)
	}

	cfg, err := image2oled.Resolve(options(c))
	if err != nil {
		return exitError(err)
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}

	res, err := image2oled.New(cfg, logger).Run(c.Args().First(), c.App.Writer)
	if err != nil {
		return exitError(err)
	}

	if c.Bool("display") {
		if err := show(c, cfg, res.Pix); err != nil {
			return exitError(&image2oled.Error{Kind: image2oled.KindDisplay, Op: "error drawing on display", Err: err})
		}
	}

	fmt.Fprintln(c.App.ErrWriter, res.Success())

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "image2oled"
	app.Usage = "Convert an image into a C array for a 128x64 or 128x32 OLED"
	app.Version = "1.0.0"
	app.ArgsUsage = "INPUTFILE"
	app.HideHelpCommand = true
	app.UseShortOptionHandling = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the C array to the input filename with filetype .c instead of stdout",
		},
		&cli.BoolFlag{
			Name:    "preview",
			Aliases: []string{"p"},
			Usage:   "print the resulting image to the terminal",
		},
		&cli.BoolFlag{
			Name:    "dither",
			Aliases: []string{"d"},
			Usage:   "dither the image in conversion from colour to black and white, if applicable",
		},
		&cli.BoolFlag{
			Name:    "small",
			Aliases: []string{"s"},
			Usage:   "set if your OLED has a resolution of 128x32 instead of 128x64",
		},
		&cli.IntFlag{
			Name:    "width",
			Aliases: []string{"x"},
			Usage:   "pixel width of your OLED",
		},
		&cli.IntFlag{
			Name:    "height",
			Aliases: []string{"y"},
			Usage:   "pixel height of your OLED, if no OLED resolution is given 128x64 is assumed",
		},
		&cli.BoolFlag{
			Name:    "white",
			Aliases: []string{"w"},
			Usage:   "pad images with a different aspect ratio to your OLED with white instead of black",
		},
		&cli.BoolFlag{
			Name:  "display",
			Usage: "also draw the image on an SSD1306 attached over I2C",
		},
		&cli.StringFlag{
			Name:    "i2c-bus",
			EnvVars: []string{"IMAGE2OLED_I2C_BUS"},
			Usage:   "I2C bus used with --display, defaults to the first bus found",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = convert

	return app
}

func run(app *cli.App, args []string) error {
	return app.Run(interspersed(app.Flags, args))
}

func main() {
	if err := run(newApp(), os.Args); err != nil {
		log.Fatal(err)
	}
}
