package iface

import (
	"ObbTileServer/geometry"

	"gocv.io/x/gocv"
)

type NamesConf struct {
	IsFile bool
	Data   any
}

// Frame tags which coordinate system a detection lives in.
type Frame int

const (
	FrameTileLocal Frame = iota
	FrameGlobal
)

// Detection is one oriented box with its class label and confidence.
type Detection struct {
	Box   geometry.OrientedBox
	Class string
	Conf  float32
	Frame Frame
}

// ToGlobal translates a tile-local detection by the tile offset and
// retags it. Already-global detections are returned unchanged.
func (d Detection) ToGlobal(tileOffsetX, tileOffsetY float32) Detection {
	if d.Frame == FrameGlobal {
		return d
	}
	d.Box = d.Box.ToGlobal(tileOffsetX, tileOffsetY)
	d.Frame = FrameGlobal
	return d
}

// DetectionSet is an ordered sequence of detections in a single frame.
// Insertion order carries no meaning.
type DetectionSet []Detection

type EngineConfig struct {
	UseGPU    bool
	ModelPath string
	Names     NamesConf
	Conf      float32
	Iou       float32
	Kind      DetectorKind
}

// DetectorKind selects the inference head wired behind the adapter.
type DetectorKind int

const (
	// SingleStage is a YOLO-style real-time head whose outputs carry an
	// angle channel.
	SingleStage DetectorKind = iota
	// TwoStage is a proposal-based high-accuracy head; its axis-aligned
	// boxes are normalized to oriented boxes with angle 0.
	TwoStage
)

func (k DetectorKind) String() string {
	switch k {
	case SingleStage:
		return "single-stage"
	case TwoStage:
		return "two-stage"
	}
	return "unknown"
}

// Backend is the capability contract every concrete detector variant has
// to satisfy. Detect runs on one tile-sized image and returns tile-local
// detections.
type Backend interface {
	LoadModel(modelPath string, names NamesConf, conf float32, iou float32, useGPU bool) (bool, error)
	Detect(image gocv.Mat) (DetectionSet, error)
	Destroy()
	CheckConfig() EngineConfig
	SetInputSize(size int)
}
