package merger

import (
	"sort"
	"testing"

	"ObbTileServer/geometry"
	iface "ObbTileServer/interface"

	"github.com/stretchr/testify/assert"
)

func det(class string, conf float32, cx, cy, w, h, angle float32) iface.Detection {
	return iface.Detection{
		Box:   geometry.NewOrientedBox(cx, cy, w, h, angle),
		Class: class,
		Conf:  conf,
		Frame: iface.FrameGlobal,
	}
}

func sortSet(s iface.DetectionSet) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Class != s[j].Class {
			return s[i].Class < s[j].Class
		}
		return s[i].Conf > s[j].Conf
	})
}

func TestMerge(t *testing.T) {
	t.Run("Test invalid config", func(t *testing.T) {
		_, err := Merge(nil, Config{IoUThreshold: 0, ScoreThreshold: 0.5})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
		_, err = Merge(nil, Config{IoUThreshold: 1.5, ScoreThreshold: 0.5})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
		_, err = Merge(nil, Config{IoUThreshold: 0.5, ScoreThreshold: -0.1})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
	})

	t.Run("Test duplicate tank across tiles", func(t *testing.T) {
		// the same tank seen by two overlapping tiles with slightly
		// shifted boxes: only the 0.9 copy survives
		a := iface.DetectionSet{det("tank", 0.9, 500, 500, 50, 50, 0)}
		b := iface.DetectionSet{det("tank", 0.7, 505, 505, 50, 50, 0)}
		out, err := Merge([]iface.DetectionSet{a, b}, Config{IoUThreshold: 0.5, ScoreThreshold: 0.1})
		assert.NoError(t, err)
		if assert.Len(t, out, 1) {
			assert.Equal(t, "tank", out[0].Class)
			assert.InDelta(t, 0.9, out[0].Conf, 1e-6)
			assert.InDelta(t, 500.0, out[0].Box.Cx, 1e-6)
		}
	})

	t.Run("Test score threshold", func(t *testing.T) {
		sets := []iface.DetectionSet{{
			det("ship", 0.9, 100, 100, 30, 10, 0.3),
			det("ship", 0.2, 400, 400, 30, 10, 0.3),
		}}
		out, err := Merge(sets, Config{IoUThreshold: 0.5, ScoreThreshold: 0.25})
		assert.NoError(t, err)
		assert.Len(t, out, 1)
		assert.InDelta(t, 0.9, out[0].Conf, 1e-6)
	})

	t.Run("Test no merge across classes", func(t *testing.T) {
		sets := []iface.DetectionSet{{
			det("small-vehicle", 0.8, 200, 200, 20, 40, 0.1),
			det("large-vehicle", 0.6, 201, 201, 20, 40, 0.1),
		}}
		out, err := Merge(sets, Config{IoUThreshold: 0.5, ScoreThreshold: 0.1})
		assert.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("Test disjoint same class kept", func(t *testing.T) {
		sets := []iface.DetectionSet{{
			det("plane", 0.9, 100, 100, 60, 40, 0.4),
			det("plane", 0.8, 900, 900, 60, 40, 0.4),
		}}
		out, err := Merge(sets, Config{IoUThreshold: 0.5, ScoreThreshold: 0.1})
		assert.NoError(t, err)
		sortSet(out)
		assert.Len(t, out, 2)
		assert.InDelta(t, 0.9, out[0].Conf, 1e-6)
		assert.InDelta(t, 0.8, out[1].Conf, 1e-6)
	})

	t.Run("Test tile local frame dropped", func(t *testing.T) {
		local := det("harbor", 0.9, 50, 50, 20, 20, 0)
		local.Frame = iface.FrameTileLocal
		out, err := Merge([]iface.DetectionSet{{local}}, Config{IoUThreshold: 0.5, ScoreThreshold: 0.1})
		assert.NoError(t, err)
		assert.Len(t, out, 0)
	})

	t.Run("Test invalid geometry dropped", func(t *testing.T) {
		bad := iface.Detection{
			Box:   geometry.OrientedBox{Cx: 10, Cy: 10, W: 0, H: 5},
			Class: "bridge",
			Conf:  0.9,
			Frame: iface.FrameGlobal,
		}
		out, err := Merge([]iface.DetectionSet{{bad}}, Config{IoUThreshold: 0.5, ScoreThreshold: 0.1})
		assert.NoError(t, err)
		assert.Len(t, out, 0)
	})

	t.Run("Test rotated duplicates", func(t *testing.T) {
		// both copies rotated the same way, centers 2px apart
		sets := []iface.DetectionSet{
			{det("ship", 0.85, 300, 300, 80, 20, 1.1)},
			{det("ship", 0.80, 302, 301, 80, 20, 1.1)},
		}
		out, err := Merge(sets, Config{IoUThreshold: 0.5, ScoreThreshold: 0.1})
		assert.NoError(t, err)
		if assert.Len(t, out, 1) {
			assert.InDelta(t, 0.85, out[0].Conf, 1e-6)
		}
	})
}
