package image2oled

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, file string, m image.Image) {
	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()
	require.Nil(t, png.Encode(f, m))
}

func TestRunStdout(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "logo.png")
	writePNG(t, input, uniform(64, 64, color.White))

	cfg := defaultConfig(t, Options{})
	b := new(bytes.Buffer)

	res, err := New(cfg, nil).Run(input, b)
	require.Nil(t, err)

	assert.Empty(t, res.Output)
	assert.Len(t, res.Pix, 1024)
	for i, v := range res.Pix {
		want := byte(0x00)
		if x := i % 128; x >= 32 && x < 96 {
			want = 0xff
		}
		require.Equal(t, want, v, "byte %d", i)
	}

	assert.True(t, strings.HasPrefix(b.String(), "static void render_image_logo(void) {\n"))
	assert.Contains(t, b.String(), "    oled_write_raw_P(logo, sizeof(logo));\n")
	assert.Equal(t, "Success! Copy the above to your keymap.c to start using it!", res.Success())

	_, err = os.Stat(filepath.Join(dir, "logo.c"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunPreview(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "logo.png")
	writePNG(t, input, uniform(256, 64, color.White))

	cfg := defaultConfig(t, Options{Small: true, Preview: true})
	b := new(bytes.Buffer)

	_, err := New(cfg, nil).Run(input, b)
	require.Nil(t, err)

	lines := strings.Split(b.String(), "\n")
	require.True(t, len(lines) > 17)
	assert.Equal(t, "Printing preview:", lines[0])
	// 256x64 scaled to 128x32 fills the display
	for _, line := range lines[1:17] {
		assert.Equal(t, strings.Repeat("█", 128), line)
	}
	assert.Equal(t, "static void render_image_logo(void) {", lines[17])
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "my logo.png")
	writePNG(t, input, uniform(256, 128, color.Black))

	cfg := defaultConfig(t, Options{WriteToFile: true})
	b := new(bytes.Buffer)
	logs := new(bytes.Buffer)

	res, err := New(cfg, log.New(logs, "", 0)).Run(input, b)
	require.Nil(t, err)

	output := filepath.Join(dir, "my logo.c")
	assert.Equal(t, output, res.Output)
	assert.Equal(t, make([]byte, 1024), res.Pix)
	assert.Empty(t, b.String())
	assert.Equal(t, "Success! Copy the contents of "+output+" to your keymap.c to start using it!", res.Success())
	assert.Contains(t, logs.String(), "Reading file "+input)
	assert.Contains(t, logs.String(), "Writing to file "+output)

	contents, err := os.ReadFile(output)
	require.Nil(t, err)
	assert.True(t, strings.HasPrefix(string(contents), "static void render_image_my_logo(void) {\n"))
	assert.Equal(t, 1023, strings.Count(string(contents), "0  , "))
}

func TestRunDecodeError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.png")
	require.Nil(t, os.WriteFile(input, []byte("not a png"), 0o644))

	cfg := defaultConfig(t, Options{WriteToFile: true})

	_, err := New(cfg, nil).Run(input, new(bytes.Buffer))
	assert.Equal(t, KindDecode, KindOf(err))

	// Nothing is written when the image can't be read
	_, err = os.Stat(filepath.Join(dir, "broken.c"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunWriteError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "logo.png")
	writePNG(t, input, uniform(8, 8, color.White))

	// A directory in the way of the output file
	require.Nil(t, os.Mkdir(filepath.Join(dir, "logo.c"), 0o755))

	cfg := defaultConfig(t, Options{WriteToFile: true})

	_, err := New(cfg, nil).Run(input, new(bytes.Buffer))
	assert.Equal(t, KindWrite, KindOf(err))
}
