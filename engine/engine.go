package engine

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"ObbTileServer/geometry"
	iface "ObbTileServer/interface"
	"ObbTileServer/logger"

	"gocv.io/x/gocv"
)

// Detector wraps one native detector instance behind the Backend
// contract. The mutex serializes Detect so a pipeline pool wider than
// the backend can take still issues one inference at a time.
type Detector struct {
	ModelPath    string
	Names        []string
	Conf         float32
	Iou          float32
	UseGPU       bool
	Kind         iface.DetectorKind
	Instance     uintptr
	State        int
	ErrorMessage string

	mu sync.Mutex
}

func (d *Detector) New() bool {
	if !loaded {
		d.ErrorMessage = "backend not loaded"
		return false
	}
	d.Instance = nativeCreate()
	d.Kind = engineKind
	d.State = REGISTERED
	return d.Instance != 0
}

func (d *Detector) CheckConfig() iface.EngineConfig {
	d.mu.Lock()
	defer d.mu.Unlock()
	return iface.EngineConfig{
		ModelPath: d.ModelPath,
		Conf:      d.Conf,
		Iou:       d.Iou,
		UseGPU:    d.UseGPU,
		Kind:      d.Kind,
		Names: iface.NamesConf{
			IsFile: false,
			Data:   d.Names,
		},
	}
}

func (d *Detector) LoadModel(modelPath string, names iface.NamesConf, conf float32, iou float32, useGPU bool) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if names.IsFile {
		parsed, err := ReadLinesReadFile(names.Data.(string))
		if err != nil {
			return false, fmt.Errorf("%w: read names file: %v", iface.ErrDetectorUnavailable, err)
		}
		d.Names = parsed
	} else {
		rv := reflect.ValueOf(names.Data)
		if rv.Kind() != reflect.Slice {
			return false, fmt.Errorf("%w: names must be a slice or a file path", iface.ErrDetectorUnavailable)
		}
		n := rv.Len()
		d.Names = make([]string, n)
		for i := 0; i < n; i++ {
			d.Names[i] = rv.Index(i).Interface().(string)
		}
	}
	if len(d.Names) == 0 {
		d.Names = iface.DOTANames
	}
	switch backendCfg.UseBackend {
	case "obb", "frcnn":
		if !strings.HasSuffix(modelPath, ".onnx") {
			return false, fmt.Errorf("%w: %s backend only supports .onnx weights", iface.ErrDetectorUnavailable, backendCfg.UseBackend)
		}
	default:
		return false, fmt.Errorf("%w: backend not loaded", iface.ErrDetectorUnavailable)
	}
	if !loaded || d.State == UNREGISTERED || d.Instance == 0 {
		return false, fmt.Errorf("%w: detector not registered", iface.ErrDetectorUnavailable)
	}
	d.ModelPath = modelPath
	d.Conf = conf
	d.Iou = iou
	d.UseGPU = useGPU
	if !nativeInit(d.Instance, d.ModelPath, d.Conf, d.Iou, d.UseGPU) {
		d.State = REGISTERED
		return false, fmt.Errorf("%w: init failed for %s", iface.ErrDetectorUnavailable, modelPath)
	}
	d.State = IDLE
	return true, nil
}

func (d *Detector) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Instance != 0 {
		nativeDestroy(d.Instance)
	}
	d.ModelPath = ""
	d.Conf = 0
	d.Iou = 0
	d.UseGPU = false
	d.Instance = 0
	d.State = UNREGISTERED
}

// Detect runs the native head on one tile-sized image and normalizes the
// output into tile-local oriented detections. Axis-aligned boxes from the
// two-stage head come through with angle 0. Records with non-positive
// size are dropped and logged, never fatal.
func (d *Detector) Detect(img gocv.Mat) (iface.DetectionSet, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch d.State {
	case IDLE, BUSY:
	case REGISTERED:
		return nil, fmt.Errorf("%w: model not loaded", iface.ErrDetectorUnavailable)
	default:
		// zero value and UNREGISTERED both land here
		return nil, fmt.Errorf("%w: detector not registered", iface.ErrDetectorUnavailable)
	}
	if img.Empty() {
		return nil, fmt.Errorf("%w: empty image", iface.ErrInference)
	}
	d.State = BUSY
	defer func() { d.State = IDLE }()

	imgData := img.ToBytes()
	width := img.Cols()
	height := img.Rows()
	channels := img.Channels()

	boxes := make([]float32, MaxDetections*5)
	scores := make([]float32, MaxDetections)
	classes := make([]int32, MaxDetections)
	n := nativeDetect(d.Instance, imgData, int32(width), int32(height), int32(channels), boxes, scores, classes, MaxDetections)
	if n < 0 {
		return nil, fmt.Errorf("%w: native detect failed for %dx%dx%d input", iface.ErrInference, width, height, channels)
	}
	if n > MaxDetections {
		n = MaxDetections
	}

	dets := make(iface.DetectionSet, 0, n)
	for i := int32(0); i < n; i++ {
		classIdx := int(classes[i])
		if classIdx < 0 || classIdx >= len(d.Names) {
			logger.S().Warnw("dropping detection with out-of-range class", "class", classIdx)
			continue
		}
		angle := boxes[i*5+4]
		if d.Kind == iface.TwoStage {
			angle = 0
		}
		box := geometry.NewOrientedBox(boxes[i*5], boxes[i*5+1], boxes[i*5+2], boxes[i*5+3], angle)
		if !box.Valid() {
			logger.S().Warnw("dropping detection with invalid geometry",
				"class", d.Names[classIdx], "w", box.W, "h", box.H)
			continue
		}
		dets = append(dets, iface.Detection{
			Box:   box,
			Class: d.Names[classIdx],
			Conf:  scores[i],
			Frame: iface.FrameTileLocal,
		})
	}
	return dets, nil
}

func (d *Detector) SetInputSize(size int) {
	if d.Instance != 0 {
		nativeSetInputSize(d.Instance, int32(size))
	}
}
