package tiler

import (
	"testing"

	iface "ObbTileServer/interface"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

func TestPlan(t *testing.T) {
	t.Run("Test invalid config", func(t *testing.T) {
		_, err := Plan(100, 100, Config{TileSize: 0, Overlap: 10})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
		_, err = Plan(100, 100, Config{TileSize: 100, Overlap: 0})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
		_, err = Plan(100, 100, Config{TileSize: 100, Overlap: 100})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
		_, err = Plan(100, 100, Config{TileSize: 100, Overlap: 200})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
		_, err = Plan(0, 100, Config{TileSize: 100, Overlap: 20})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
	})

	t.Run("Test 2000x2000 tile 1000 overlap 200", func(t *testing.T) {
		regions, err := Plan(2000, 2000, Config{TileSize: 1000, Overlap: 200})
		assert.NoError(t, err)
		// stride 800, last offset clamped to 1000: axis offsets {0, 800, 1000}
		assert.Len(t, regions, 9)
		offsets := map[[2]int]bool{}
		for _, r := range regions {
			assert.Equal(t, 1000, r.Width)
			assert.Equal(t, 1000, r.Height)
			offsets[[2]int{r.OffsetX, r.OffsetY}] = true
		}
		for _, x := range []int{0, 800, 1000} {
			for _, y := range []int{0, 800, 1000} {
				assert.True(t, offsets[[2]int{x, y}], "missing tile at (%d,%d)", x, y)
			}
		}
	})

	t.Run("Test row major order", func(t *testing.T) {
		regions, err := Plan(2000, 2000, Config{TileSize: 1000, Overlap: 200})
		assert.NoError(t, err)
		assert.Equal(t, 0, regions[0].OffsetX)
		assert.Equal(t, 0, regions[0].OffsetY)
		assert.Equal(t, 800, regions[1].OffsetX)
		assert.Equal(t, 0, regions[1].OffsetY)
		assert.Equal(t, 0, regions[3].OffsetX)
		assert.Equal(t, 800, regions[3].OffsetY)
		for i, r := range regions {
			assert.Equal(t, i, r.Index)
		}
	})

	t.Run("Test deterministic", func(t *testing.T) {
		a, err := Plan(3017, 1511, Config{TileSize: 640, Overlap: 64})
		assert.NoError(t, err)
		b, err := Plan(3017, 1511, Config{TileSize: 640, Overlap: 64})
		assert.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("Test full coverage", func(t *testing.T) {
		cases := []struct {
			w, h     int
			tile, ov int
		}{
			{2000, 2000, 1000, 200},
			{1920, 1080, 640, 64},
			{3017, 1511, 512, 100},
			{513, 513, 512, 128},
			{100, 100, 512, 128}, // smaller than one tile
		}
		for _, tc := range cases {
			regions, err := Plan(tc.w, tc.h, Config{TileSize: tc.tile, Overlap: tc.ov})
			assert.NoError(t, err)
			covered := make([][]bool, tc.h)
			for y := range covered {
				covered[y] = make([]bool, tc.w)
			}
			for _, r := range regions {
				assert.GreaterOrEqual(t, r.OffsetX, 0)
				assert.GreaterOrEqual(t, r.OffsetY, 0)
				assert.LessOrEqual(t, r.OffsetX+r.Width, tc.w)
				assert.LessOrEqual(t, r.OffsetY+r.Height, tc.h)
				for y := r.OffsetY; y < r.OffsetY+r.Height; y++ {
					for x := r.OffsetX; x < r.OffsetX+r.Width; x++ {
						covered[y][x] = true
					}
				}
			}
			for y := 0; y < tc.h; y++ {
				for x := 0; x < tc.w; x++ {
					if !covered[y][x] {
						t.Fatalf("pixel (%d,%d) not covered for case %dx%d tile=%d overlap=%d", x, y, tc.w, tc.h, tc.tile, tc.ov)
					}
				}
			}
		}
	})
}

func TestExtract(t *testing.T) {
	src := gocv.NewMatWithSize(1080, 1920, gocv.MatTypeCV8UC3)
	defer src.Close()

	t.Run("Test extract tile", func(t *testing.T) {
		regions, err := Plan(src.Cols(), src.Rows(), Config{TileSize: 640, Overlap: 64})
		assert.NoError(t, err)
		tile, err := Extract(src, regions[0])
		assert.NoError(t, err)
		defer tile.Close()
		assert.Equal(t, 640, tile.Cols())
		assert.Equal(t, 640, tile.Rows())
	})

	t.Run("Test extract outside image", func(t *testing.T) {
		_, err := Extract(src, Region{OffsetX: 1900, OffsetY: 0, Width: 640, Height: 640})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
	})

	t.Run("Test extract empty source", func(t *testing.T) {
		empty := gocv.NewMat()
		defer empty.Close()
		_, err := Extract(empty, Region{Width: 10, Height: 10})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
	})
}
