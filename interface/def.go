package iface

import "errors"

// Error taxonomy for the whole pipeline.
var (
	// ErrInvalidConfig: bad tiling or merge parameters. Fatal, no retry.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrDetectorUnavailable: the native model could not be loaded or
	// initialized. Fatal for the whole run.
	ErrDetectorUnavailable = errors.New("detector unavailable")
	// ErrInference: a single tile failed. Recovered locally, the tile
	// contributes an empty DetectionSet and the failure is reported.
	ErrInference = errors.New("inference error")
)

// DOTANames is the default aerial category set used when the caller does
// not supply its own names.
var DOTANames = []string{
	"plane",
	"ship",
	"storage-tank",
	"baseball-diamond",
	"tennis-court",
	"basketball-court",
	"ground-track-field",
	"harbor",
	"bridge",
	"large-vehicle",
	"small-vehicle",
	"helicopter",
	"roundabout",
	"soccer-ball-field",
	"swimming-pool",
	"container-crane",
	"airport",
	"helipad",
}
