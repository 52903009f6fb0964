// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: detect.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type InitEngineRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ModelPath      string   `protobuf:"bytes,1,opt,name=model_path,json=modelPath,proto3" json:"model_path,omitempty"`
	Names          []string `protobuf:"bytes,2,rep,name=names,proto3" json:"names,omitempty"`
	Confidence     float32  `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Iou            float32  `protobuf:"fixed32,4,opt,name=iou,proto3" json:"iou,omitempty"`
	UseGpu         bool     `protobuf:"varint,5,opt,name=use_gpu,json=useGpu,proto3" json:"use_gpu,omitempty"`
	Description    string   `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	EngineType     int32    `protobuf:"varint,7,opt,name=engine_type,json=engineType,proto3" json:"engine_type,omitempty"`
	TileSize       int32    `protobuf:"varint,8,opt,name=tile_size,json=tileSize,proto3" json:"tile_size,omitempty"`
	Overlap        int32    `protobuf:"varint,9,opt,name=overlap,proto3" json:"overlap,omitempty"`
	MergeIou       float32  `protobuf:"fixed32,10,opt,name=merge_iou,json=mergeIou,proto3" json:"merge_iou,omitempty"`
	ScoreThreshold float32  `protobuf:"fixed32,11,opt,name=score_threshold,json=scoreThreshold,proto3" json:"score_threshold,omitempty"`
	MaxConcurrent  int32    `protobuf:"varint,12,opt,name=max_concurrent,json=maxConcurrent,proto3" json:"max_concurrent,omitempty"`
}

func (x *InitEngineRequest) Reset() {
	*x = InitEngineRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *InitEngineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitEngineRequest) ProtoMessage() {}

func (x *InitEngineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitEngineRequest.ProtoReflect.Descriptor instead.
func (*InitEngineRequest) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{0}
}

func (x *InitEngineRequest) GetModelPath() string {
	if x != nil {
		return x.ModelPath
	}
	return ""
}

func (x *InitEngineRequest) GetNames() []string {
	if x != nil {
		return x.Names
	}
	return nil
}

func (x *InitEngineRequest) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *InitEngineRequest) GetIou() float32 {
	if x != nil {
		return x.Iou
	}
	return 0
}

func (x *InitEngineRequest) GetUseGpu() bool {
	if x != nil {
		return x.UseGpu
	}
	return false
}

func (x *InitEngineRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *InitEngineRequest) GetEngineType() int32 {
	if x != nil {
		return x.EngineType
	}
	return 0
}

func (x *InitEngineRequest) GetTileSize() int32 {
	if x != nil {
		return x.TileSize
	}
	return 0
}

func (x *InitEngineRequest) GetOverlap() int32 {
	if x != nil {
		return x.Overlap
	}
	return 0
}

func (x *InitEngineRequest) GetMergeIou() float32 {
	if x != nil {
		return x.MergeIou
	}
	return 0
}

func (x *InitEngineRequest) GetScoreThreshold() float32 {
	if x != nil {
		return x.ScoreThreshold
	}
	return 0
}

func (x *InitEngineRequest) GetMaxConcurrent() int32 {
	if x != nil {
		return x.MaxConcurrent
	}
	return 0
}

type InitEngineResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Id      string `protobuf:"bytes,2,opt,name=id,proto3" json:"id,omitempty"`
	Message string `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *InitEngineResponse) Reset() {
	*x = InitEngineResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *InitEngineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitEngineResponse) ProtoMessage() {}

func (x *InitEngineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitEngineResponse.ProtoReflect.Descriptor instead.
func (*InitEngineResponse) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{1}
}

func (x *InitEngineResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *InitEngineResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *InitEngineResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type InferenceRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id      string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ImgData []byte `protobuf:"bytes,2,opt,name=img_data,json=imgData,proto3" json:"img_data,omitempty"`
}

func (x *InferenceRequest) Reset() {
	*x = InferenceRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *InferenceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InferenceRequest) ProtoMessage() {}

func (x *InferenceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InferenceRequest.ProtoReflect.Descriptor instead.
func (*InferenceRequest) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{2}
}

func (x *InferenceRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *InferenceRequest) GetImgData() []byte {
	if x != nil {
		return x.ImgData
	}
	return nil
}

// Oriented box: center, size, rotation angle in radians [0, pi).
type OBox struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Cx    float32 `protobuf:"fixed32,1,opt,name=cx,proto3" json:"cx,omitempty"`
	Cy    float32 `protobuf:"fixed32,2,opt,name=cy,proto3" json:"cy,omitempty"`
	W     float32 `protobuf:"fixed32,3,opt,name=w,proto3" json:"w,omitempty"`
	H     float32 `protobuf:"fixed32,4,opt,name=h,proto3" json:"h,omitempty"`
	Angle float32 `protobuf:"fixed32,5,opt,name=angle,proto3" json:"angle,omitempty"`
}

func (x *OBox) Reset() {
	*x = OBox{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *OBox) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OBox) ProtoMessage() {}

func (x *OBox) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OBox.ProtoReflect.Descriptor instead.
func (*OBox) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{3}
}

func (x *OBox) GetCx() float32 {
	if x != nil {
		return x.Cx
	}
	return 0
}

func (x *OBox) GetCy() float32 {
	if x != nil {
		return x.Cy
	}
	return 0
}

func (x *OBox) GetW() float32 {
	if x != nil {
		return x.W
	}
	return 0
}

func (x *OBox) GetH() float32 {
	if x != nil {
		return x.H
	}
	return 0
}

func (x *OBox) GetAngle() float32 {
	if x != nil {
		return x.Angle
	}
	return 0
}

type Position struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	X int32 `protobuf:"varint,1,opt,name=x,proto3" json:"x,omitempty"`
	Y int32 `protobuf:"varint,2,opt,name=y,proto3" json:"y,omitempty"`
}

func (x *Position) Reset() {
	*x = Position{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Position) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Position) ProtoMessage() {}

func (x *Position) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Position.ProtoReflect.Descriptor instead.
func (*Position) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{4}
}

func (x *Position) GetX() int32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Position) GetY() int32 {
	if x != nil {
		return x.Y
	}
	return 0
}

type SingleResult struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name       string      `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Confidence float32     `protobuf:"fixed32,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Box        *OBox       `protobuf:"bytes,3,opt,name=box,proto3" json:"box,omitempty"`
	Corners    []*Position `protobuf:"bytes,4,rep,name=corners,proto3" json:"corners,omitempty"`
	Center     *Position   `protobuf:"bytes,5,opt,name=center,proto3" json:"center,omitempty"`
}

func (x *SingleResult) Reset() {
	*x = SingleResult{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SingleResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SingleResult) ProtoMessage() {}

func (x *SingleResult) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SingleResult.ProtoReflect.Descriptor instead.
func (*SingleResult) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{5}
}

func (x *SingleResult) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SingleResult) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *SingleResult) GetBox() *OBox {
	if x != nil {
		return x.Box
	}
	return nil
}

func (x *SingleResult) GetCorners() []*Position {
	if x != nil {
		return x.Corners
	}
	return nil
}

func (x *SingleResult) GetCenter() *Position {
	if x != nil {
		return x.Center
	}
	return nil
}

type InferenceResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success     bool            `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Results     []*SingleResult `protobuf:"bytes,2,rep,name=results,proto3" json:"results,omitempty"`
	TilesTotal  int32           `protobuf:"varint,3,opt,name=tiles_total,json=tilesTotal,proto3" json:"tiles_total,omitempty"`
	TilesFailed int32           `protobuf:"varint,4,opt,name=tiles_failed,json=tilesFailed,proto3" json:"tiles_failed,omitempty"`
}

func (x *InferenceResponse) Reset() {
	*x = InferenceResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *InferenceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InferenceResponse) ProtoMessage() {}

func (x *InferenceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InferenceResponse.ProtoReflect.Descriptor instead.
func (*InferenceResponse) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{6}
}

func (x *InferenceResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *InferenceResponse) GetResults() []*SingleResult {
	if x != nil {
		return x.Results
	}
	return nil
}

func (x *InferenceResponse) GetTilesTotal() int32 {
	if x != nil {
		return x.TilesTotal
	}
	return 0
}

func (x *InferenceResponse) GetTilesFailed() int32 {
	if x != nil {
		return x.TilesFailed
	}
	return 0
}

type DestroyEngineRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (x *DestroyEngineRequest) Reset() {
	*x = DestroyEngineRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DestroyEngineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DestroyEngineRequest) ProtoMessage() {}

func (x *DestroyEngineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DestroyEngineRequest.ProtoReflect.Descriptor instead.
func (*DestroyEngineRequest) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{7}
}

func (x *DestroyEngineRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DestroyEngineResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *DestroyEngineResponse) Reset() {
	*x = DestroyEngineResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DestroyEngineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DestroyEngineResponse) ProtoMessage() {}

func (x *DestroyEngineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DestroyEngineResponse.ProtoReflect.Descriptor instead.
func (*DestroyEngineResponse) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{8}
}

func (x *DestroyEngineResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *DestroyEngineResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type CheckEngineRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (x *CheckEngineRequest) Reset() {
	*x = CheckEngineRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CheckEngineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckEngineRequest) ProtoMessage() {}

func (x *CheckEngineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckEngineRequest.ProtoReflect.Descriptor instead.
func (*CheckEngineRequest) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{9}
}

func (x *CheckEngineRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type EngineInfo struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id             string   `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Description    string   `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	EngineType     int32    `protobuf:"varint,3,opt,name=engine_type,json=engineType,proto3" json:"engine_type,omitempty"`
	ModelPath      string   `protobuf:"bytes,4,opt,name=model_path,json=modelPath,proto3" json:"model_path,omitempty"`
	Names          []string `protobuf:"bytes,5,rep,name=names,proto3" json:"names,omitempty"`
	Confidence     float32  `protobuf:"fixed32,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Iou            float32  `protobuf:"fixed32,7,opt,name=iou,proto3" json:"iou,omitempty"`
	UseGpu         bool     `protobuf:"varint,8,opt,name=use_gpu,json=useGpu,proto3" json:"use_gpu,omitempty"`
	TileSize       int32    `protobuf:"varint,9,opt,name=tile_size,json=tileSize,proto3" json:"tile_size,omitempty"`
	Overlap        int32    `protobuf:"varint,10,opt,name=overlap,proto3" json:"overlap,omitempty"`
	MergeIou       float32  `protobuf:"fixed32,11,opt,name=merge_iou,json=mergeIou,proto3" json:"merge_iou,omitempty"`
	ScoreThreshold float32  `protobuf:"fixed32,12,opt,name=score_threshold,json=scoreThreshold,proto3" json:"score_threshold,omitempty"`
	MaxConcurrent  int32    `protobuf:"varint,13,opt,name=max_concurrent,json=maxConcurrent,proto3" json:"max_concurrent,omitempty"`
}

func (x *EngineInfo) Reset() {
	*x = EngineInfo{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *EngineInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EngineInfo) ProtoMessage() {}

func (x *EngineInfo) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EngineInfo.ProtoReflect.Descriptor instead.
func (*EngineInfo) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{10}
}

func (x *EngineInfo) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *EngineInfo) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *EngineInfo) GetEngineType() int32 {
	if x != nil {
		return x.EngineType
	}
	return 0
}

func (x *EngineInfo) GetModelPath() string {
	if x != nil {
		return x.ModelPath
	}
	return ""
}

func (x *EngineInfo) GetNames() []string {
	if x != nil {
		return x.Names
	}
	return nil
}

func (x *EngineInfo) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *EngineInfo) GetIou() float32 {
	if x != nil {
		return x.Iou
	}
	return 0
}

func (x *EngineInfo) GetUseGpu() bool {
	if x != nil {
		return x.UseGpu
	}
	return false
}

func (x *EngineInfo) GetTileSize() int32 {
	if x != nil {
		return x.TileSize
	}
	return 0
}

func (x *EngineInfo) GetOverlap() int32 {
	if x != nil {
		return x.Overlap
	}
	return 0
}

func (x *EngineInfo) GetMergeIou() float32 {
	if x != nil {
		return x.MergeIou
	}
	return 0
}

func (x *EngineInfo) GetScoreThreshold() float32 {
	if x != nil {
		return x.ScoreThreshold
	}
	return 0
}

func (x *EngineInfo) GetMaxConcurrent() int32 {
	if x != nil {
		return x.MaxConcurrent
	}
	return 0
}

type CheckEngineResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success    bool        `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	EngineInfo *EngineInfo `protobuf:"bytes,2,opt,name=engine_info,json=engineInfo,proto3" json:"engine_info,omitempty"`
	Message    string      `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *CheckEngineResponse) Reset() {
	*x = CheckEngineResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CheckEngineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckEngineResponse) ProtoMessage() {}

func (x *CheckEngineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckEngineResponse.ProtoReflect.Descriptor instead.
func (*CheckEngineResponse) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{11}
}

func (x *CheckEngineResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *CheckEngineResponse) GetEngineInfo() *EngineInfo {
	if x != nil {
		return x.EngineInfo
	}
	return nil
}

func (x *CheckEngineResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type CheckAllEngineResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool          `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Engines []*EngineInfo `protobuf:"bytes,2,rep,name=engines,proto3" json:"engines,omitempty"`
	Message string        `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (x *CheckAllEngineResponse) Reset() {
	*x = CheckAllEngineResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CheckAllEngineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckAllEngineResponse) ProtoMessage() {}

func (x *CheckAllEngineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckAllEngineResponse.ProtoReflect.Descriptor instead.
func (*CheckAllEngineResponse) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{12}
}

func (x *CheckAllEngineResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *CheckAllEngineResponse) GetEngines() []*EngineInfo {
	if x != nil {
		return x.Engines
	}
	return nil
}

func (x *CheckAllEngineResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type FileInfo struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (x *FileInfo) Reset() {
	*x = FileInfo{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *FileInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileInfo) ProtoMessage() {}

func (x *FileInfo) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileInfo.ProtoReflect.Descriptor instead.
func (*FileInfo) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{13}
}

func (x *FileInfo) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type UploadFileRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Types that are assignable to Data:
	//
	//	*UploadFileRequest_FileInfo
	//	*UploadFileRequest_ChunkData
	Data isUploadFileRequest_Data `protobuf_oneof:"data"`
}

func (x *UploadFileRequest) Reset() {
	*x = UploadFileRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *UploadFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadFileRequest) ProtoMessage() {}

func (x *UploadFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadFileRequest.ProtoReflect.Descriptor instead.
func (*UploadFileRequest) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{14}
}

func (m *UploadFileRequest) GetData() isUploadFileRequest_Data {
	if m != nil {
		return m.Data
	}
	return nil
}

func (x *UploadFileRequest) GetFileInfo() *FileInfo {
	if x, ok := x.GetData().(*UploadFileRequest_FileInfo); ok {
		return x.FileInfo
	}
	return nil
}

func (x *UploadFileRequest) GetChunkData() []byte {
	if x, ok := x.GetData().(*UploadFileRequest_ChunkData); ok {
		return x.ChunkData
	}
	return nil
}

type isUploadFileRequest_Data interface {
	isUploadFileRequest_Data()
}

type UploadFileRequest_FileInfo struct {
	FileInfo *FileInfo `protobuf:"bytes,1,opt,name=file_info,json=fileInfo,proto3,oneof"`
}

type UploadFileRequest_ChunkData struct {
	ChunkData []byte `protobuf:"bytes,2,opt,name=chunk_data,json=chunkData,proto3,oneof"`
}

func (*UploadFileRequest_FileInfo) isUploadFileRequest_Data() {}

func (*UploadFileRequest_ChunkData) isUploadFileRequest_Data() {}

type UploadFileResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success  bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message  string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	FilePath string `protobuf:"bytes,3,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
}

func (x *UploadFileResponse) Reset() {
	*x = UploadFileResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_detect_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *UploadFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadFileResponse) ProtoMessage() {}

func (x *UploadFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_detect_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadFileResponse.ProtoReflect.Descriptor instead.
func (*UploadFileResponse) Descriptor() ([]byte, []int) {
	return file_detect_proto_rawDescGZIP(), []int{15}
}

func (x *UploadFileResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *UploadFileResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *UploadFileResponse) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

var File_detect_proto protoreflect.FileDescriptor

var file_detect_proto_rawDesc = []byte{
	0x0a, 0x0c, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x09,
	0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x1a, 0x1b, 0x67, 0x6f, 0x6f, 0x67, 0x6c,
	0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x65, 0x6d, 0x70, 0x74, 0x79,
	0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0xfa, 0x02, 0x0a, 0x11, 0x49, 0x6e, 0x69, 0x74, 0x45,
	0x6e, 0x67, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a,
	0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x5f, 0x70, 0x61, 0x74, 0x68, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x09, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x50, 0x61, 0x74, 0x68, 0x12, 0x14, 0x0a, 0x05, 0x6e,
	0x61, 0x6d, 0x65, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28, 0x09, 0x52, 0x05, 0x6e, 0x61, 0x6d, 0x65,
	0x73, 0x12, 0x1e, 0x0a, 0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x02, 0x52, 0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63,
	0x65, 0x12, 0x10, 0x0a, 0x03, 0x69, 0x6f, 0x75, 0x18, 0x04, 0x20, 0x01, 0x28, 0x02, 0x52, 0x03,
	0x69, 0x6f, 0x75, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x5f, 0x67, 0x70, 0x75, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x75, 0x73, 0x65, 0x47, 0x70, 0x75, 0x12, 0x20, 0x0a, 0x0b,
	0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1f,
	0x0a, 0x0b, 0x65, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x18, 0x07, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x0a, 0x65, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x54, 0x79, 0x70, 0x65, 0x12,
	0x1b, 0x0a, 0x09, 0x74, 0x69, 0x6c, 0x65, 0x5f, 0x73, 0x69, 0x7a, 0x65, 0x18, 0x08, 0x20, 0x01,
	0x28, 0x05, 0x52, 0x08, 0x74, 0x69, 0x6c, 0x65, 0x53, 0x69, 0x7a, 0x65, 0x12, 0x18, 0x0a, 0x07,
	0x6f, 0x76, 0x65, 0x72, 0x6c, 0x61, 0x70, 0x18, 0x09, 0x20, 0x01, 0x28, 0x05, 0x52, 0x07, 0x6f,
	0x76, 0x65, 0x72, 0x6c, 0x61, 0x70, 0x12, 0x1b, 0x0a, 0x09, 0x6d, 0x65, 0x72, 0x67, 0x65, 0x5f,
	0x69, 0x6f, 0x75, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x02, 0x52, 0x08, 0x6d, 0x65, 0x72, 0x67, 0x65,
	0x49, 0x6f, 0x75, 0x12, 0x27, 0x0a, 0x0f, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x5f, 0x74, 0x68, 0x72,
	0x65, 0x73, 0x68, 0x6f, 0x6c, 0x64, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x02, 0x52, 0x0e, 0x73, 0x63,
	0x6f, 0x72, 0x65, 0x54, 0x68, 0x72, 0x65, 0x73, 0x68, 0x6f, 0x6c, 0x64, 0x12, 0x25, 0x0a, 0x0e,
	0x6d, 0x61, 0x78, 0x5f, 0x63, 0x6f, 0x6e, 0x63, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x74, 0x18, 0x0c,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x0d, 0x6d, 0x61, 0x78, 0x43, 0x6f, 0x6e, 0x63, 0x75, 0x72, 0x72,
	0x65, 0x6e, 0x74, 0x22, 0x58, 0x0a, 0x12, 0x49, 0x6e, 0x69, 0x74, 0x45, 0x6e, 0x67, 0x69, 0x6e,
	0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75, 0x63,
	0x63, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63, 0x63,
	0x65, 0x73, 0x73, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x02, 0x69, 0x64, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x22, 0x3d, 0x0a,
	0x10, 0x49, 0x6e, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69,
	0x64, 0x12, 0x19, 0x0a, 0x08, 0x69, 0x6d, 0x67, 0x5f, 0x64, 0x61, 0x74, 0x61, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x0c, 0x52, 0x07, 0x69, 0x6d, 0x67, 0x44, 0x61, 0x74, 0x61, 0x22, 0x58, 0x0a, 0x04,
	0x4f, 0x42, 0x6f, 0x78, 0x12, 0x0e, 0x0a, 0x02, 0x63, 0x78, 0x18, 0x01, 0x20, 0x01, 0x28, 0x02,
	0x52, 0x02, 0x63, 0x78, 0x12, 0x0e, 0x0a, 0x02, 0x63, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x02,
	0x52, 0x02, 0x63, 0x79, 0x12, 0x0c, 0x0a, 0x01, 0x77, 0x18, 0x03, 0x20, 0x01, 0x28, 0x02, 0x52,
	0x01, 0x77, 0x12, 0x0c, 0x0a, 0x01, 0x68, 0x18, 0x04, 0x20, 0x01, 0x28, 0x02, 0x52, 0x01, 0x68,
	0x12, 0x14, 0x0a, 0x05, 0x61, 0x6e, 0x67, 0x6c, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x02, 0x52,
	0x05, 0x61, 0x6e, 0x67, 0x6c, 0x65, 0x22, 0x26, 0x0a, 0x08, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69,
	0x6f, 0x6e, 0x12, 0x0c, 0x0a, 0x01, 0x78, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x01, 0x78,
	0x12, 0x0c, 0x0a, 0x01, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05, 0x52, 0x01, 0x79, 0x22, 0xc1,
	0x01, 0x0a, 0x0c, 0x53, 0x69, 0x6e, 0x67, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x12,
	0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e,
	0x61, 0x6d, 0x65, 0x12, 0x1e, 0x0a, 0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63,
	0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x02, 0x52, 0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65,
	0x6e, 0x63, 0x65, 0x12, 0x21, 0x0a, 0x03, 0x62, 0x6f, 0x78, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x0f, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e, 0x4f, 0x42, 0x6f,
	0x78, 0x52, 0x03, 0x62, 0x6f, 0x78, 0x12, 0x2d, 0x0a, 0x07, 0x63, 0x6f, 0x72, 0x6e, 0x65, 0x72,
	0x73, 0x18, 0x04, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x13, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74,
	0x65, 0x63, 0x74, 0x2e, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x07, 0x63, 0x6f,
	0x72, 0x6e, 0x65, 0x72, 0x73, 0x12, 0x2b, 0x0a, 0x06, 0x63, 0x65, 0x6e, 0x74, 0x65, 0x72, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x13, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63,
	0x74, 0x2e, 0x50, 0x6f, 0x73, 0x69, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x06, 0x63, 0x65, 0x6e, 0x74,
	0x65, 0x72, 0x22, 0xa4, 0x01, 0x0a, 0x11, 0x49, 0x6e, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75, 0x63, 0x63,
	0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65,
	0x73, 0x73, 0x12, 0x31, 0x0a, 0x07, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x73, 0x18, 0x02, 0x20,
	0x03, 0x28, 0x0b, 0x32, 0x17, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e,
	0x53, 0x69, 0x6e, 0x67, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x52, 0x07, 0x72, 0x65,
	0x73, 0x75, 0x6c, 0x74, 0x73, 0x12, 0x1f, 0x0a, 0x0b, 0x74, 0x69, 0x6c, 0x65, 0x73, 0x5f, 0x74,
	0x6f, 0x74, 0x61, 0x6c, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0a, 0x74, 0x69, 0x6c, 0x65,
	0x73, 0x54, 0x6f, 0x74, 0x61, 0x6c, 0x12, 0x21, 0x0a, 0x0c, 0x74, 0x69, 0x6c, 0x65, 0x73, 0x5f,
	0x66, 0x61, 0x69, 0x6c, 0x65, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0b, 0x74, 0x69,
	0x6c, 0x65, 0x73, 0x46, 0x61, 0x69, 0x6c, 0x65, 0x64, 0x22, 0x26, 0x0a, 0x14, 0x44, 0x65, 0x73,
	0x74, 0x72, 0x6f, 0x79, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69,
	0x64, 0x22, 0x4b, 0x0a, 0x15, 0x44, 0x65, 0x73, 0x74, 0x72, 0x6f, 0x79, 0x45, 0x6e, 0x67, 0x69,
	0x6e, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75,
	0x63, 0x63, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63,
	0x63, 0x65, 0x73, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x22, 0x24,
	0x0a, 0x12, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x02, 0x69, 0x64, 0x22, 0x83, 0x03, 0x0a, 0x0a, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x49,
	0x6e, 0x66, 0x6f, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x02, 0x69, 0x64, 0x12, 0x20, 0x0a, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69,
	0x6f, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69,
	0x70, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x1f, 0x0a, 0x0b, 0x65, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x5f,
	0x74, 0x79, 0x70, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0a, 0x65, 0x6e, 0x67, 0x69,
	0x6e, 0x65, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1d, 0x0a, 0x0a, 0x6d, 0x6f, 0x64, 0x65, 0x6c, 0x5f,
	0x70, 0x61, 0x74, 0x68, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x6d, 0x6f, 0x64, 0x65,
	0x6c, 0x50, 0x61, 0x74, 0x68, 0x12, 0x14, 0x0a, 0x05, 0x6e, 0x61, 0x6d, 0x65, 0x73, 0x18, 0x05,
	0x20, 0x03, 0x28, 0x09, 0x52, 0x05, 0x6e, 0x61, 0x6d, 0x65, 0x73, 0x12, 0x1e, 0x0a, 0x0a, 0x63,
	0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x02, 0x52,
	0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x12, 0x10, 0x0a, 0x03, 0x69,
	0x6f, 0x75, 0x18, 0x07, 0x20, 0x01, 0x28, 0x02, 0x52, 0x03, 0x69, 0x6f, 0x75, 0x12, 0x17, 0x0a,
	0x07, 0x75, 0x73, 0x65, 0x5f, 0x67, 0x70, 0x75, 0x18, 0x08, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06,
	0x75, 0x73, 0x65, 0x47, 0x70, 0x75, 0x12, 0x1b, 0x0a, 0x09, 0x74, 0x69, 0x6c, 0x65, 0x5f, 0x73,
	0x69, 0x7a, 0x65, 0x18, 0x09, 0x20, 0x01, 0x28, 0x05, 0x52, 0x08, 0x74, 0x69, 0x6c, 0x65, 0x53,
	0x69, 0x7a, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x6f, 0x76, 0x65, 0x72, 0x6c, 0x61, 0x70, 0x18, 0x0a,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x07, 0x6f, 0x76, 0x65, 0x72, 0x6c, 0x61, 0x70, 0x12, 0x1b, 0x0a,
	0x09, 0x6d, 0x65, 0x72, 0x67, 0x65, 0x5f, 0x69, 0x6f, 0x75, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x02,
	0x52, 0x08, 0x6d, 0x65, 0x72, 0x67, 0x65, 0x49, 0x6f, 0x75, 0x12, 0x27, 0x0a, 0x0f, 0x73, 0x63,
	0x6f, 0x72, 0x65, 0x5f, 0x74, 0x68, 0x72, 0x65, 0x73, 0x68, 0x6f, 0x6c, 0x64, 0x18, 0x0c, 0x20,
	0x01, 0x28, 0x02, 0x52, 0x0e, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x54, 0x68, 0x72, 0x65, 0x73, 0x68,
	0x6f, 0x6c, 0x64, 0x12, 0x25, 0x0a, 0x0e, 0x6d, 0x61, 0x78, 0x5f, 0x63, 0x6f, 0x6e, 0x63, 0x75,
	0x72, 0x72, 0x65, 0x6e, 0x74, 0x18, 0x0d, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0d, 0x6d, 0x61, 0x78,
	0x43, 0x6f, 0x6e, 0x63, 0x75, 0x72, 0x72, 0x65, 0x6e, 0x74, 0x22, 0x81, 0x01, 0x0a, 0x13, 0x43,
	0x68, 0x65, 0x63, 0x6b, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x12, 0x36, 0x0a, 0x0b,
	0x65, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x5f, 0x69, 0x6e, 0x66, 0x6f, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x15, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e, 0x45, 0x6e,
	0x67, 0x69, 0x6e, 0x65, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x0a, 0x65, 0x6e, 0x67, 0x69, 0x6e, 0x65,
	0x49, 0x6e, 0x66, 0x6f, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x22, 0x7d,
	0x0a, 0x16, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x41, 0x6c, 0x6c, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75, 0x63, 0x63,
	0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65,
	0x73, 0x73, 0x12, 0x2f, 0x0a, 0x07, 0x65, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x73, 0x18, 0x02, 0x20,
	0x03, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e,
	0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x07, 0x65, 0x6e, 0x67, 0x69,
	0x6e, 0x65, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x22, 0x1e, 0x0a,
	0x08, 0x46, 0x69, 0x6c, 0x65, 0x49, 0x6e, 0x66, 0x6f, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x22, 0x70, 0x0a,
	0x11, 0x55, 0x70, 0x6c, 0x6f, 0x61, 0x64, 0x46, 0x69, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x32, 0x0a, 0x09, 0x66, 0x69, 0x6c, 0x65, 0x5f, 0x69, 0x6e, 0x66, 0x6f, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x13, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63,
	0x74, 0x2e, 0x46, 0x69, 0x6c, 0x65, 0x49, 0x6e, 0x66, 0x6f, 0x48, 0x00, 0x52, 0x08, 0x66, 0x69,
	0x6c, 0x65, 0x49, 0x6e, 0x66, 0x6f, 0x12, 0x1f, 0x0a, 0x0a, 0x63, 0x68, 0x75, 0x6e, 0x6b, 0x5f,
	0x64, 0x61, 0x74, 0x61, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0c, 0x48, 0x00, 0x52, 0x09, 0x63, 0x68,
	0x75, 0x6e, 0x6b, 0x44, 0x61, 0x74, 0x61, 0x42, 0x06, 0x0a, 0x04, 0x64, 0x61, 0x74, 0x61, 0x22,
	0x65, 0x0a, 0x12, 0x55, 0x70, 0x6c, 0x6f, 0x61, 0x64, 0x46, 0x69, 0x6c, 0x65, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x12,
	0x18, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x66, 0x69, 0x6c,
	0x65, 0x5f, 0x70, 0x61, 0x74, 0x68, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x66, 0x69,
	0x6c, 0x65, 0x50, 0x61, 0x74, 0x68, 0x32, 0x9b, 0x04, 0x0a, 0x0d, 0x44, 0x65, 0x74, 0x65, 0x63,
	0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x49, 0x0a, 0x0a, 0x49, 0x6e, 0x69, 0x74,
	0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x12, 0x1c, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65,
	0x63, 0x74, 0x2e, 0x49, 0x6e, 0x69, 0x74, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74,
	0x2e, 0x49, 0x6e, 0x69, 0x74, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x46, 0x0a, 0x09, 0x49, 0x6e, 0x66, 0x65, 0x72, 0x65, 0x6e, 0x63, 0x65,
	0x12, 0x1b, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e, 0x49, 0x6e, 0x66,
	0x65, 0x72, 0x65, 0x6e, 0x63, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e,
	0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e, 0x49, 0x6e, 0x66, 0x65, 0x72, 0x65,
	0x6e, 0x63, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x52, 0x0a, 0x0d, 0x44,
	0x65, 0x73, 0x74, 0x72, 0x6f, 0x79, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x12, 0x1f, 0x2e, 0x6f,
	0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e, 0x44, 0x65, 0x73, 0x74, 0x72, 0x6f, 0x79,
	0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e,
	0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e, 0x44, 0x65, 0x73, 0x74, 0x72, 0x6f,
	0x79, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x4c, 0x0a, 0x0b, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x12, 0x1d,
	0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e, 0x43, 0x68, 0x65, 0x63, 0x6b,
	0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e,
	0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x45,
	0x6e, 0x67, 0x69, 0x6e, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4b, 0x0a,
	0x0e, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x41, 0x6c, 0x6c, 0x45, 0x6e, 0x67, 0x69, 0x6e, 0x65, 0x12,
	0x16, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75,
	0x66, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x1a, 0x21, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74,
	0x65, 0x63, 0x74, 0x2e, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x41, 0x6c, 0x6c, 0x45, 0x6e, 0x67, 0x69,
	0x6e, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3a, 0x0a, 0x08, 0x53, 0x68,
	0x75, 0x74, 0x64, 0x6f, 0x77, 0x6e, 0x12, 0x16, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x1a, 0x16,
	0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66,
	0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x12, 0x4c, 0x0a, 0x0b, 0x55, 0x70, 0x6c, 0x6f, 0x61, 0x64,
	0x4d, 0x6f, 0x64, 0x65, 0x6c, 0x12, 0x1c, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63,
	0x74, 0x2e, 0x55, 0x70, 0x6c, 0x6f, 0x61, 0x64, 0x46, 0x69, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x6f, 0x62, 0x62, 0x64, 0x65, 0x74, 0x65, 0x63, 0x74, 0x2e,
	0x55, 0x70, 0x6c, 0x6f, 0x61, 0x64, 0x46, 0x69, 0x6c, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x28, 0x01, 0x42, 0x0a, 0x5a, 0x08, 0x2e, 0x2f, 0x3b, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_detect_proto_rawDescOnce sync.Once
	file_detect_proto_rawDescData = file_detect_proto_rawDesc
)

func file_detect_proto_rawDescGZIP() []byte {
	file_detect_proto_rawDescOnce.Do(func() {
		file_detect_proto_rawDescData = protoimpl.X.CompressGZIP(file_detect_proto_rawDescData)
	})
	return file_detect_proto_rawDescData
}

var file_detect_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_detect_proto_goTypes = []any{
	(*InitEngineRequest)(nil),      // 0: obbdetect.InitEngineRequest
	(*InitEngineResponse)(nil),     // 1: obbdetect.InitEngineResponse
	(*InferenceRequest)(nil),       // 2: obbdetect.InferenceRequest
	(*OBox)(nil),                   // 3: obbdetect.OBox
	(*Position)(nil),               // 4: obbdetect.Position
	(*SingleResult)(nil),           // 5: obbdetect.SingleResult
	(*InferenceResponse)(nil),      // 6: obbdetect.InferenceResponse
	(*DestroyEngineRequest)(nil),   // 7: obbdetect.DestroyEngineRequest
	(*DestroyEngineResponse)(nil),  // 8: obbdetect.DestroyEngineResponse
	(*CheckEngineRequest)(nil),     // 9: obbdetect.CheckEngineRequest
	(*EngineInfo)(nil),             // 10: obbdetect.EngineInfo
	(*CheckEngineResponse)(nil),    // 11: obbdetect.CheckEngineResponse
	(*CheckAllEngineResponse)(nil), // 12: obbdetect.CheckAllEngineResponse
	(*FileInfo)(nil),               // 13: obbdetect.FileInfo
	(*UploadFileRequest)(nil),      // 14: obbdetect.UploadFileRequest
	(*UploadFileResponse)(nil),     // 15: obbdetect.UploadFileResponse
	(*emptypb.Empty)(nil),          // 16: google.protobuf.Empty
}
var file_detect_proto_depIdxs = []int32{
	3,  // 0: obbdetect.SingleResult.box:type_name -> obbdetect.OBox
	4,  // 1: obbdetect.SingleResult.corners:type_name -> obbdetect.Position
	4,  // 2: obbdetect.SingleResult.center:type_name -> obbdetect.Position
	5,  // 3: obbdetect.InferenceResponse.results:type_name -> obbdetect.SingleResult
	10, // 4: obbdetect.CheckEngineResponse.engine_info:type_name -> obbdetect.EngineInfo
	10, // 5: obbdetect.CheckAllEngineResponse.engines:type_name -> obbdetect.EngineInfo
	13, // 6: obbdetect.UploadFileRequest.file_info:type_name -> obbdetect.FileInfo
	0,  // 7: obbdetect.DetectService.InitEngine:input_type -> obbdetect.InitEngineRequest
	2,  // 8: obbdetect.DetectService.Inference:input_type -> obbdetect.InferenceRequest
	7,  // 9: obbdetect.DetectService.DestroyEngine:input_type -> obbdetect.DestroyEngineRequest
	9,  // 10: obbdetect.DetectService.CheckEngine:input_type -> obbdetect.CheckEngineRequest
	16, // 11: obbdetect.DetectService.CheckAllEngine:input_type -> google.protobuf.Empty
	16, // 12: obbdetect.DetectService.Shutdown:input_type -> google.protobuf.Empty
	14, // 13: obbdetect.DetectService.UploadModel:input_type -> obbdetect.UploadFileRequest
	1,  // 14: obbdetect.DetectService.InitEngine:output_type -> obbdetect.InitEngineResponse
	6,  // 15: obbdetect.DetectService.Inference:output_type -> obbdetect.InferenceResponse
	8,  // 16: obbdetect.DetectService.DestroyEngine:output_type -> obbdetect.DestroyEngineResponse
	11, // 17: obbdetect.DetectService.CheckEngine:output_type -> obbdetect.CheckEngineResponse
	12, // 18: obbdetect.DetectService.CheckAllEngine:output_type -> obbdetect.CheckAllEngineResponse
	16, // 19: obbdetect.DetectService.Shutdown:output_type -> google.protobuf.Empty
	15, // 20: obbdetect.DetectService.UploadModel:output_type -> obbdetect.UploadFileResponse
	14, // [14:21] is the sub-list for method output_type
	7,  // [7:14] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_detect_proto_init() }
func file_detect_proto_init() {
	if File_detect_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_detect_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*InitEngineRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*InitEngineResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*InferenceRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*OBox); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*Position); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*SingleResult); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*InferenceResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*DestroyEngineRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*DestroyEngineResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*CheckEngineRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*EngineInfo); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*CheckEngineResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*CheckAllEngineResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[13].Exporter = func(v any, i int) any {
			switch v := v.(*FileInfo); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[14].Exporter = func(v any, i int) any {
			switch v := v.(*UploadFileRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_detect_proto_msgTypes[15].Exporter = func(v any, i int) any {
			switch v := v.(*UploadFileResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	file_detect_proto_msgTypes[14].OneofWrappers = []any{
		(*UploadFileRequest_FileInfo)(nil),
		(*UploadFileRequest_ChunkData)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_detect_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_detect_proto_goTypes,
		DependencyIndexes: file_detect_proto_depIdxs,
		MessageInfos:      file_detect_proto_msgTypes,
	}.Build()
	File_detect_proto = out.File
	file_detect_proto_rawDesc = nil
	file_detect_proto_goTypes = nil
	file_detect_proto_depIdxs = nil
}
