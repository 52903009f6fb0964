package records

import (
	"bytes"
	"strings"
	"testing"

	"ObbTileServer/geometry"
	iface "ObbTileServer/interface"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	in := iface.DetectionSet{
		{
			Box:   geometry.NewOrientedBox(512.25, 1033.5, 42.125, 17.75, 1.2345678),
			Class: "small-vehicle",
			Conf:  0.87654,
			Frame: iface.FrameGlobal,
		},
		{
			Box:   geometry.NewOrientedBox(10, 20, 30, 40, 0),
			Class: "helipad",
			Conf:  0.5,
			Frame: iface.FrameGlobal,
		},
		{
			Box:   geometry.NewOrientedBox(999.9, 1.1, 3.3, 4.4, 3.0),
			Class: "storage-tank",
			Conf:  1,
			Frame: iface.FrameGlobal,
		},
	}

	var buf bytes.Buffer
	err := Write(&buf, in)
	assert.NoError(t, err)

	out, err := Read(&buf)
	assert.NoError(t, err)
	if assert.Len(t, out, len(in)) {
		for i := range in {
			assert.Equal(t, in[i].Class, out[i].Class)
			assert.Equal(t, in[i].Conf, out[i].Conf)
			assert.Equal(t, in[i].Box, out[i].Box)
			assert.Equal(t, iface.FrameGlobal, out[i].Frame)
		}
	}
}

func TestRead(t *testing.T) {
	t.Run("Test comments and blanks", func(t *testing.T) {
		input := "# detections for P0003.png\n\nship 0.9 100 200 30 10 0.5\n"
		out, err := Read(strings.NewReader(input))
		assert.NoError(t, err)
		if assert.Len(t, out, 1) {
			assert.Equal(t, "ship", out[0].Class)
			assert.InDelta(t, 0.9, out[0].Conf, 1e-6)
		}
	})

	t.Run("Test wrong field count", func(t *testing.T) {
		_, err := Read(strings.NewReader("ship 0.9 100 200 30 10\n"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("Test bad number", func(t *testing.T) {
		_, err := Read(strings.NewReader("ship 0.9 abc 200 30 10 0.5\n"))
		assert.Error(t, err)
	})

	t.Run("Test invalid geometry", func(t *testing.T) {
		_, err := Read(strings.NewReader("ship 0.9 100 200 0 10 0.5\n"))
		assert.ErrorIs(t, err, geometry.ErrInvalidGeometry)
	})

	t.Run("Test empty input", func(t *testing.T) {
		out, err := Read(strings.NewReader(""))
		assert.NoError(t, err)
		assert.Len(t, out, 0)
	})
}
