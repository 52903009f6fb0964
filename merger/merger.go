package merger

import (
	"fmt"
	"sort"

	"ObbTileServer/geometry"
	iface "ObbTileServer/interface"
	"ObbTileServer/logger"
)

// Config holds the merge parameters. IoUThreshold is the oriented-NMS
// suppression cutoff, ScoreThreshold drops weak candidates up front.
type Config struct {
	IoUThreshold   float32 `yaml:"iouThreshold"`
	ScoreThreshold float32 `yaml:"scoreThreshold"`
}

// DefaultConfig is the reconciliation policy for objects straddling the
// tile overlap margin: plain NMS at 0.5, no box averaging.
func DefaultConfig() Config {
	return Config{IoUThreshold: 0.5, ScoreThreshold: 0.25}
}

func (c Config) Validate() error {
	if c.IoUThreshold <= 0 || c.IoUThreshold > 1 {
		return fmt.Errorf("%w: iouThreshold must be in (0,1], got %g", iface.ErrInvalidConfig, c.IoUThreshold)
	}
	if c.ScoreThreshold < 0 || c.ScoreThreshold > 1 {
		return fmt.Errorf("%w: scoreThreshold must be in [0,1], got %g", iface.ErrInvalidConfig, c.ScoreThreshold)
	}
	return nil
}

// Merge reduces per-tile detection sets, already mapped to global
// coordinates, into one deduplicated set for the image. Candidates below
// the score threshold are dropped, then oriented NMS runs per class so
// an object seen by two overlapping tiles survives exactly once, as the
// higher-scoring copy. Output order is undefined.
func Merge(sets []iface.DetectionSet, cfg Config) (iface.DetectionSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	byClass := make(map[string][]iface.Detection)
	for _, set := range sets {
		for _, det := range set {
			if det.Conf < cfg.ScoreThreshold {
				continue
			}
			if det.Frame != iface.FrameGlobal {
				logger.S().Warnw("dropping detection not in global frame", "class", det.Class)
				continue
			}
			if !det.Box.Valid() {
				logger.S().Warnw("dropping detection with invalid geometry",
					"class", det.Class, "w", det.Box.W, "h", det.Box.H)
				continue
			}
			byClass[det.Class] = append(byClass[det.Class], det)
		}
	}

	merged := make(iface.DetectionSet, 0)
	for _, candidates := range byClass {
		merged = append(merged, suppress(candidates, cfg.IoUThreshold)...)
	}
	return merged, nil
}

// suppress runs greedy NMS over one class group: highest score first,
// everything overlapping it past the threshold goes.
func suppress(candidates []iface.Detection, iouThreshold float32) []iface.Detection {
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Conf > candidates[j].Conf
	})
	removed := make([]bool, len(candidates))
	keep := make([]iface.Detection, 0, len(candidates))
	for i, det := range candidates {
		if removed[i] {
			continue
		}
		keep = append(keep, det)
		for j := i + 1; j < len(candidates); j++ {
			if removed[j] {
				continue
			}
			if geometry.RotatedIoU(det.Box, candidates[j].Box) > iouThreshold {
				removed[j] = true
			}
		}
	}
	return keep
}
