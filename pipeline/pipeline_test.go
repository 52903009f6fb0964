package pipeline

import (
	"context"
	"fmt"
	"testing"

	"ObbTileServer/geometry"
	iface "ObbTileServer/interface"
	"ObbTileServer/merger"
	"ObbTileServer/tiler"

	"github.com/stretchr/testify/assert"
	"gocv.io/x/gocv"
)

// globalObject is a ground-truth object the mock backend "sees" whenever
// its center falls inside the tile it is handed.
type globalObject struct {
	class  string
	conf   float32
	cx, cy float32
	w, h   float32
	angle  float32
}

// MockBackend recovers the tile offset from the pixel encoding written by
// encodedImage and reports tile-local detections for its objects.
type MockBackend struct {
	objects []globalObject
	failAt  [2]int // offset of a tile that must fail, -1 to disable
	fatal   bool
}

func (m *MockBackend) LoadModel(modelPath string, names iface.NamesConf, conf float32, iou float32, useGPU bool) (bool, error) {
	return true, nil
}

func (m *MockBackend) Detect(img gocv.Mat) (iface.DetectionSet, error) {
	if m.fatal {
		return nil, fmt.Errorf("%w: model evicted", iface.ErrDetectorUnavailable)
	}
	// offset is encoded in the top-left pixel: row value, col value
	offsetX := int(img.GetUCharAt(0, 1))
	offsetY := int(img.GetUCharAt(0, 0))
	if m.failAt[0] == offsetX && m.failAt[1] == offsetY {
		return nil, fmt.Errorf("%w: corrupt tile", iface.ErrInference)
	}
	out := iface.DetectionSet{}
	for _, obj := range m.objects {
		lx := obj.cx - float32(offsetX)
		ly := obj.cy - float32(offsetY)
		if lx < 0 || ly < 0 || lx >= float32(img.Cols()) || ly >= float32(img.Rows()) {
			continue
		}
		// nudge the score per tile so NMS has a clear winner
		conf := obj.conf - float32(offsetX+offsetY)*1e-4
		out = append(out, iface.Detection{
			Box:   geometry.NewOrientedBox(lx, ly, obj.w, obj.h, obj.angle),
			Class: obj.class,
			Conf:  conf,
			Frame: iface.FrameTileLocal,
		})
	}
	return out, nil
}

func (m *MockBackend) Destroy() {}
func (m *MockBackend) CheckConfig() iface.EngineConfig {
	return iface.EngineConfig{ModelPath: "mock", Conf: 0.5, Iou: 0.5}
}
func (m *MockBackend) SetInputSize(size int) {}

// encodedImage builds a single-channel image where every pixel carries
// its own global coordinates: channel value at (r,c) alternates between
// row and column so a cropped tile can tell where it came from.
func encodedImage(w, h int) gocv.Mat {
	img := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC1)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if c%2 == 0 {
				img.SetUCharAt(r, c, uint8(r))
			} else {
				img.SetUCharAt(r, c, uint8(c-1))
			}
		}
	}
	return img
}

func TestRun(t *testing.T) {
	tcfg := tiler.Config{TileSize: 100, Overlap: 40} // offsets {0,60} each axis
	mcfg := merger.Config{IoUThreshold: 0.5, ScoreThreshold: 0.1}

	t.Run("Test duplicate across tiles merged once", func(t *testing.T) {
		img := encodedImage(160, 160)
		defer img.Close()
		backend := &MockBackend{
			objects: []globalObject{{class: "tank", conf: 0.9, cx: 80, cy: 80, w: 30, h: 30}},
			failAt:  [2]int{-1, -1},
		}
		res, err := Run(context.Background(), img, backend, tcfg, mcfg, Options{})
		assert.NoError(t, err)
		assert.Equal(t, 4, res.Report.TilesTotal)
		assert.Equal(t, 0, res.Report.TilesFailed)
		if assert.Len(t, res.Detections, 1) {
			d := res.Detections[0]
			assert.Equal(t, "tank", d.Class)
			assert.Equal(t, iface.FrameGlobal, d.Frame)
			// winner is the copy from tile (0,0), back in global coords
			assert.InDelta(t, 0.9, d.Conf, 1e-6)
			assert.InDelta(t, 80.0, d.Box.Cx, 1e-4)
			assert.InDelta(t, 80.0, d.Box.Cy, 1e-4)
		}
	})

	t.Run("Test failed tile recovered", func(t *testing.T) {
		img := encodedImage(160, 160)
		defer img.Close()
		backend := &MockBackend{
			objects: []globalObject{{class: "plane", conf: 0.8, cx: 30, cy: 30, w: 20, h: 20}},
			failAt:  [2]int{60, 0},
		}
		res, err := Run(context.Background(), img, backend, tcfg, mcfg, Options{})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Report.TilesFailed)
		if assert.Len(t, res.Report.Failures, 1) {
			assert.ErrorIs(t, res.Report.Failures[0].Err, iface.ErrInference)
			assert.Equal(t, 60, res.Report.Failures[0].OffsetX)
			assert.Equal(t, 0, res.Report.Failures[0].OffsetY)
		}
		// the object sits at (30,30), only tile (0,0) sees it
		assert.Len(t, res.Detections, 1)
	})

	t.Run("Test detector unavailable is fatal", func(t *testing.T) {
		img := encodedImage(160, 160)
		defer img.Close()
		backend := &MockBackend{fatal: true, failAt: [2]int{-1, -1}}
		_, err := Run(context.Background(), img, backend, tcfg, mcfg, Options{})
		assert.ErrorIs(t, err, iface.ErrDetectorUnavailable)
	})

	t.Run("Test cancelled before dispatch", func(t *testing.T) {
		img := encodedImage(160, 160)
		defer img.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		backend := &MockBackend{failAt: [2]int{-1, -1}}
		res, err := Run(ctx, img, backend, tcfg, mcfg, Options{})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, res.Detections)
	})

	t.Run("Test parallel workers", func(t *testing.T) {
		img := encodedImage(160, 160)
		defer img.Close()
		backend := &MockBackend{
			objects: []globalObject{
				{class: "ship", conf: 0.9, cx: 80, cy: 80, w: 30, h: 10, angle: 0.8},
				{class: "harbor", conf: 0.7, cx: 20, cy: 140, w: 25, h: 25},
			},
			failAt: [2]int{-1, -1},
		}
		res, err := Run(context.Background(), img, backend, tcfg, mcfg, Options{MaxConcurrentInferences: 4})
		assert.NoError(t, err)
		assert.Equal(t, 0, res.Report.TilesFailed)
		classes := map[string]int{}
		for _, d := range res.Detections {
			classes[d.Class]++
		}
		assert.Equal(t, 1, classes["ship"])
		assert.Equal(t, 1, classes["harbor"])
	})

	t.Run("Test invalid tiling config", func(t *testing.T) {
		img := encodedImage(160, 160)
		defer img.Close()
		backend := &MockBackend{failAt: [2]int{-1, -1}}
		_, err := Run(context.Background(), img, backend, tiler.Config{TileSize: 50, Overlap: 50}, mcfg, Options{})
		assert.ErrorIs(t, err, iface.ErrInvalidConfig)
	})
}
