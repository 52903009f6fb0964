package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	iface "ObbTileServer/interface"

	"github.com/ebitengine/purego"
	"gopkg.in/yaml.v3"
)

const UNREGISTERED = 0x0001
const REGISTERED = 0x0002
const IDLE = 0x0003
const BUSY = 0x0004

// MaxDetections caps how many boxes one native Detect call can hand back.
const MaxDetections = 1024

// BackendConfig describes where the native inference library lives and
// which head it implements.
type BackendConfig struct {
	UseBackend     string `yaml:"useBackend"` // "obb" (single-stage) or "frcnn" (two-stage)
	BackendDir     string `yaml:"backendDir"`
	BackendLibName string `yaml:"backendLibName"`
}

var (
	backendCfg BackendConfig
	loaded     bool
	engineKind iface.DetectorKind
)

// Native entry points, bound at LoadEngine time. Boxes come back packed
// as 5 floats per detection: cx, cy, w, h, angle. The two-stage head
// leaves the angle slot at zero.
var (
	nativeCreate       func() uintptr
	nativeDestroy      func(uintptr)
	nativeInit         func(uintptr, string, float32, float32, bool) bool
	nativeDetect       func(uintptr, []byte, int32, int32, int32, []float32, []float32, []int32, int32) int32
	nativeSetInputSize func(uintptr, int32)
)

func defaultLibName() string {
	switch runtime.GOOS {
	case "windows":
		return "ObbDet.dll"
	case "darwin":
		return "libObbDet.dylib"
	default:
		return "libObbDet.so"
	}
}

// LoadEngine reads the backend descriptor yaml and binds the native
// library. Must run once before any Detector is created; every failure
// here is fatal for the run.
func LoadEngine(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("%w: read backend config: %v", iface.ErrDetectorUnavailable, err)
	}
	cfg := BackendConfig{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: parse backend config: %v", iface.ErrDetectorUnavailable, err)
	}
	return loadEngineFromConfig(cfg)
}

func loadEngineFromConfig(cfg BackendConfig) (err error) {
	switch cfg.UseBackend {
	case "obb":
		engineKind = iface.SingleStage
	case "frcnn":
		engineKind = iface.TwoStage
	default:
		return fmt.Errorf("%w: unsupported backend: %s", iface.ErrDetectorUnavailable, cfg.UseBackend)
	}
	if cfg.BackendLibName == "" {
		cfg.BackendLibName = defaultLibName()
	}
	libPath := filepath.Join(cfg.BackendDir, cfg.BackendLibName)
	handle, err := openLibrary(libPath)
	if err != nil {
		return fmt.Errorf("%w: load %s: %v", iface.ErrDetectorUnavailable, libPath, err)
	}
	// RegisterLibFunc panics on a missing symbol
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: bind %s: %v", iface.ErrDetectorUnavailable, libPath, r)
		}
	}()
	purego.RegisterLibFunc(&nativeCreate, handle, "CreateDetector")
	purego.RegisterLibFunc(&nativeDestroy, handle, "DestroyDetector")
	purego.RegisterLibFunc(&nativeInit, handle, "InitDetector")
	purego.RegisterLibFunc(&nativeDetect, handle, "Detect")
	purego.RegisterLibFunc(&nativeSetInputSize, handle, "SetInputSize")
	backendCfg = cfg
	loaded = true
	return nil
}

// Kind reports which detector head the loaded backend implements.
func Kind() iface.DetectorKind {
	return engineKind
}

// Loaded reports whether a native backend has been bound.
func Loaded() bool {
	return loaded
}

// ReadLinesReadFile loads one class name per line, tolerating CRLF and
// blank lines.
func ReadLinesReadFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := strings.Split(string(b), "\n")
	var lines []string
	for _, l := range raw {
		l = strings.TrimRight(l, "\r")
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines, nil
}
