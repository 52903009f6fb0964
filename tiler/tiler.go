package tiler

import (
	"fmt"
	"image"

	iface "ObbTileServer/interface"

	"gocv.io/x/gocv"
)

// Config holds the tiling parameters. Tiles are square, TileSize pixels a
// side, and adjacent tiles share Overlap pixels.
type Config struct {
	TileSize int `yaml:"tileSize"`
	Overlap  int `yaml:"overlap"`
}

func (c Config) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tileSize must be positive, got %d", iface.ErrInvalidConfig, c.TileSize)
	}
	if c.Overlap <= 0 {
		return fmt.Errorf("%w: overlap must be positive, got %d", iface.ErrInvalidConfig, c.Overlap)
	}
	if c.Overlap >= c.TileSize {
		return fmt.Errorf("%w: overlap %d must be smaller than tileSize %d", iface.ErrInvalidConfig, c.Overlap, c.TileSize)
	}
	return nil
}

// Region is one tile footprint in global image coordinates.
type Region struct {
	Index   int
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// Rect returns the footprint as an image.Rectangle for Mat cropping.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.OffsetX, r.OffsetY, r.OffsetX+r.Width, r.OffsetY+r.Height)
}

// Plan computes the tile footprints for an image of the given size.
// Tiles come out in row-major order starting at (0,0) with stride
// tileSize-overlap. The last tile of each row/column is pulled back so it
// stays inside the image, which keeps every tile full-size at the cost of
// extra overlap on the boundary. Every pixel ends up in at least one tile.
// Same inputs always give the same plan.
func Plan(width, height int, cfg Config) ([]Region, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d", iface.ErrInvalidConfig, width, height)
	}

	xs := axisOffsets(width, cfg.TileSize, cfg.Overlap)
	ys := axisOffsets(height, cfg.TileSize, cfg.Overlap)

	regions := make([]Region, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			w := cfg.TileSize
			h := cfg.TileSize
			// images smaller than one tile get a single clamped tile
			if w > width {
				w = width
			}
			if h > height {
				h = height
			}
			regions = append(regions, Region{
				Index:   len(regions),
				OffsetX: x,
				OffsetY: y,
				Width:   w,
				Height:  h,
			})
		}
	}
	return regions, nil
}

// axisOffsets walks one axis with the configured stride and clamps the
// last offset to srcLen-tileSize. Duplicate offsets produced by the clamp
// are collapsed.
func axisOffsets(srcLen, tileSize, overlap int) []int {
	stride := tileSize - overlap
	if srcLen <= tileSize {
		return []int{0}
	}
	var offsets []int
	for pos := 0; ; pos += stride {
		if pos+tileSize >= srcLen {
			last := srcLen - tileSize
			if len(offsets) == 0 || offsets[len(offsets)-1] != last {
				offsets = append(offsets, last)
			}
			break
		}
		offsets = append(offsets, pos)
	}
	return offsets
}

// Extract cuts the tile pixels out of the source image. The returned Mat
// is a fresh copy; the caller owns it and must Close it. Extraction is
// done lazily, per tile, at dispatch time.
func Extract(src gocv.Mat, r Region) (gocv.Mat, error) {
	if src.Empty() {
		return gocv.Mat{}, fmt.Errorf("%w: empty source image", iface.ErrInvalidConfig)
	}
	if r.OffsetX < 0 || r.OffsetY < 0 || r.OffsetX+r.Width > src.Cols() || r.OffsetY+r.Height > src.Rows() {
		return gocv.Mat{}, fmt.Errorf("%w: region %v outside image %dx%d", iface.ErrInvalidConfig, r.Rect(), src.Cols(), src.Rows())
	}
	view := src.Region(r.Rect())
	defer view.Close()
	// Region shares memory with src; clone so the tile survives on its own
	return view.Clone(), nil
}
