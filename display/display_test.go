package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestShowValidation(t *testing.T) {
	tables := map[string]struct {
		width, height int
		pix           []byte
		err           error
	}{
		"zero width":   {0, 64, nil, errBadSize},
		"height 63":    {128, 63, make([]byte, 1008), errBadSize},
		"short buffer": {128, 64, make([]byte, 512), errBadBufferSize},
		"long buffer":  {128, 32, make([]byte, 1024), errBadBufferSize},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			bus := &i2ctest.Record{}
			assert.Equal(t, table.err, Show(bus, table.width, table.height, table.pix))
			assert.Empty(t, bus.Ops)
		})
	}
}

func TestShow(t *testing.T) {
	const width, height = 128, 64

	pix := make([]byte, width*height/8)
	for i := range pix {
		pix[i] = byte(i) | 1
	}

	bus := &i2ctest.Record{}
	require.Nil(t, Show(bus, width, height, pix))

	// Initialisation burst, then a command and a data write for each page
	require.Len(t, bus.Ops, 1+2*height/8)
	for _, op := range bus.Ops {
		assert.Equal(t, uint16(0x3c), op.Addr)
	}
	require.NotEmpty(t, bus.Ops[0].W)
	assert.Equal(t, byte(0x00), bus.Ops[0].W[0])

	for page := 0; page < height/8; page++ {
		cmd, data := bus.Ops[1+2*page], bus.Ops[2+2*page]
		assert.Equal(t, []byte{0x00, 0xb0 | byte(page), 0x00, 0x10}, cmd.W, "page %d", page)
		assert.Equal(t, append([]byte{0x40}, pix[page*width:(page+1)*width]...), data.W, "page %d", page)
	}
}
