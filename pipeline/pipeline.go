package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	iface "ObbTileServer/interface"
	"ObbTileServer/logger"
	"ObbTileServer/merger"
	"ObbTileServer/monitor"
	"ObbTileServer/tiler"

	"gocv.io/x/gocv"
)

// Options tunes the per-image tile fan-out.
type Options struct {
	// MaxConcurrentInferences bounds the tile worker pool. Zero or
	// negative means 1: safe when nothing is known about the backend's
	// accelerator sharing.
	MaxConcurrentInferences int
}

// TileFailure records one tile whose inference failed. The tile still
// contributed an empty DetectionSet; the run went on.
type TileFailure struct {
	Index   int
	OffsetX int
	OffsetY int
	Err     error
}

// Report is the per-run metadata handed back with the merged detections.
type Report struct {
	TilesTotal  int
	TilesFailed int
	Failures    []TileFailure
}

// Result packages the merged global DetectionSet with the run report.
type Result struct {
	Detections iface.DetectionSet
	Report     Report
}

type tileJob struct {
	region tiler.Region
}

type tileResult struct {
	region tiler.Region
	dets   iface.DetectionSet
	err    error
}

// Run sequences tiling, per-tile detection and merging for one image:
// Plan fans tiles out over a bounded worker pool, each worker detects on
// its tile and maps the hits to global coordinates, then the merger
// reduces everything into one deduplicated set.
//
// Cancellation is cooperative at tile granularity: the context is
// checked between dispatches, in-flight tiles run to completion and the
// remaining queue is dropped. Run holds no state across calls; it is as
// concurrent as the supplied backend's own lock allows.
func Run(ctx context.Context, img gocv.Mat, backend iface.Backend, tcfg tiler.Config, mcfg merger.Config, opts Options) (Result, error) {
	if err := mcfg.Validate(); err != nil {
		return Result{}, err
	}
	if img.Empty() {
		return Result{}, fmt.Errorf("%w: empty image", iface.ErrInvalidConfig)
	}
	plan, err := tiler.Plan(img.Cols(), img.Rows(), tcfg)
	if err != nil {
		return Result{}, err
	}

	workers := opts.MaxConcurrentInferences
	if workers < 1 {
		workers = 1
	}
	if workers > len(plan) {
		workers = len(plan)
	}

	jobs := make(chan tileJob)
	results := make(chan tileResult, len(plan))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			for job := range jobs {
				results <- detectTile(img, backend, job.region)
			}
		}()
	}

	dispatched := 0
dispatch:
	for _, region := range plan {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- tileJob{region: region}:
			dispatched++
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	report := Report{TilesTotal: len(plan)}
	sets := make([]iface.DetectionSet, 0, dispatched)
	var fatalErr error
	for res := range results {
		if res.err != nil {
			// a backend that lost its model is fatal for the whole run,
			// not a per-tile recovery
			if errors.Is(res.err, iface.ErrDetectorUnavailable) && fatalErr == nil {
				fatalErr = res.err
			}
			report.TilesFailed++
			report.Failures = append(report.Failures, TileFailure{
				Index:   res.region.Index,
				OffsetX: res.region.OffsetX,
				OffsetY: res.region.OffsetY,
				Err:     res.err,
			})
			monitor.TileFailures.Inc()
			logger.S().Warnw("tile inference failed",
				"tile", res.region.Index, "offsetX", res.region.OffsetX, "offsetY", res.region.OffsetY, "err", res.err)
			continue
		}
		sets = append(sets, res.dets)
	}

	if fatalErr != nil {
		return Result{Report: report}, fatalErr
	}
	if err := ctx.Err(); err != nil {
		return Result{Report: report}, err
	}

	merged, err := merger.Merge(sets, mcfg)
	if err != nil {
		return Result{Report: report}, err
	}
	return Result{Detections: merged, Report: report}, nil
}

// detectTile crops one tile, runs the backend on it and maps the hits to
// global coordinates. A panicking backend is downgraded to a tile
// failure so one bad tile cannot take the image down.
func detectTile(img gocv.Mat, backend iface.Backend, region tiler.Region) (res tileResult) {
	res.region = region
	defer func() {
		if r := recover(); r != nil {
			res.dets = nil
			res.err = fmt.Errorf("%w: panic on tile %d: %v", iface.ErrInference, region.Index, r)
		}
	}()

	tile, err := tiler.Extract(img, region)
	if err != nil {
		res.err = fmt.Errorf("%w: extract tile %d: %v", iface.ErrInference, region.Index, err)
		return res
	}
	defer tile.Close()

	dets, err := backend.Detect(tile)
	monitor.TilesProcessed.Inc()
	if err != nil {
		res.err = err
		return res
	}
	global := make(iface.DetectionSet, 0, len(dets))
	for _, d := range dets {
		global = append(global, d.ToGlobal(float32(region.OffsetX), float32(region.OffsetY)))
	}
	res.dets = global
	return res
}
