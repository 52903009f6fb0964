// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: detect.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	DetectService_InitEngine_FullMethodName     = "/obbdetect.DetectService/InitEngine"
	DetectService_Inference_FullMethodName      = "/obbdetect.DetectService/Inference"
	DetectService_DestroyEngine_FullMethodName  = "/obbdetect.DetectService/DestroyEngine"
	DetectService_CheckEngine_FullMethodName    = "/obbdetect.DetectService/CheckEngine"
	DetectService_CheckAllEngine_FullMethodName = "/obbdetect.DetectService/CheckAllEngine"
	DetectService_Shutdown_FullMethodName       = "/obbdetect.DetectService/Shutdown"
	DetectService_UploadModel_FullMethodName    = "/obbdetect.DetectService/UploadModel"
)

// DetectServiceClient is the client API for DetectService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DetectServiceClient interface {
	InitEngine(ctx context.Context, in *InitEngineRequest, opts ...grpc.CallOption) (*InitEngineResponse, error)
	Inference(ctx context.Context, in *InferenceRequest, opts ...grpc.CallOption) (*InferenceResponse, error)
	DestroyEngine(ctx context.Context, in *DestroyEngineRequest, opts ...grpc.CallOption) (*DestroyEngineResponse, error)
	CheckEngine(ctx context.Context, in *CheckEngineRequest, opts ...grpc.CallOption) (*CheckEngineResponse, error)
	CheckAllEngine(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*CheckAllEngineResponse, error)
	Shutdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	UploadModel(ctx context.Context, opts ...grpc.CallOption) (DetectService_UploadModelClient, error)
}

type detectServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDetectServiceClient(cc grpc.ClientConnInterface) DetectServiceClient {
	return &detectServiceClient{cc}
}

func (c *detectServiceClient) InitEngine(ctx context.Context, in *InitEngineRequest, opts ...grpc.CallOption) (*InitEngineResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InitEngineResponse)
	err := c.cc.Invoke(ctx, DetectService_InitEngine_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *detectServiceClient) Inference(ctx context.Context, in *InferenceRequest, opts ...grpc.CallOption) (*InferenceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InferenceResponse)
	err := c.cc.Invoke(ctx, DetectService_Inference_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *detectServiceClient) DestroyEngine(ctx context.Context, in *DestroyEngineRequest, opts ...grpc.CallOption) (*DestroyEngineResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DestroyEngineResponse)
	err := c.cc.Invoke(ctx, DetectService_DestroyEngine_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *detectServiceClient) CheckEngine(ctx context.Context, in *CheckEngineRequest, opts ...grpc.CallOption) (*CheckEngineResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckEngineResponse)
	err := c.cc.Invoke(ctx, DetectService_CheckEngine_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *detectServiceClient) CheckAllEngine(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*CheckAllEngineResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckAllEngineResponse)
	err := c.cc.Invoke(ctx, DetectService_CheckAllEngine_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *detectServiceClient) Shutdown(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, DetectService_Shutdown_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *detectServiceClient) UploadModel(ctx context.Context, opts ...grpc.CallOption) (DetectService_UploadModelClient, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &DetectService_ServiceDesc.Streams[0], DetectService_UploadModel_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &detectServiceUploadModelClient{ClientStream: stream}
	return x, nil
}

type DetectService_UploadModelClient interface {
	Send(*UploadFileRequest) error
	CloseAndRecv() (*UploadFileResponse, error)
	grpc.ClientStream
}

type detectServiceUploadModelClient struct {
	grpc.ClientStream
}

func (x *detectServiceUploadModelClient) Send(m *UploadFileRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *detectServiceUploadModelClient) CloseAndRecv() (*UploadFileResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(UploadFileResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// DetectServiceServer is the server API for DetectService service.
// All implementations must embed UnimplementedDetectServiceServer
// for forward compatibility
type DetectServiceServer interface {
	InitEngine(context.Context, *InitEngineRequest) (*InitEngineResponse, error)
	Inference(context.Context, *InferenceRequest) (*InferenceResponse, error)
	DestroyEngine(context.Context, *DestroyEngineRequest) (*DestroyEngineResponse, error)
	CheckEngine(context.Context, *CheckEngineRequest) (*CheckEngineResponse, error)
	CheckAllEngine(context.Context, *emptypb.Empty) (*CheckAllEngineResponse, error)
	Shutdown(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	UploadModel(DetectService_UploadModelServer) error
	mustEmbedUnimplementedDetectServiceServer()
}

// UnimplementedDetectServiceServer must be embedded to have forward compatible implementations.
type UnimplementedDetectServiceServer struct {
}

func (UnimplementedDetectServiceServer) InitEngine(context.Context, *InitEngineRequest) (*InitEngineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InitEngine not implemented")
}
func (UnimplementedDetectServiceServer) Inference(context.Context, *InferenceRequest) (*InferenceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Inference not implemented")
}
func (UnimplementedDetectServiceServer) DestroyEngine(context.Context, *DestroyEngineRequest) (*DestroyEngineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DestroyEngine not implemented")
}
func (UnimplementedDetectServiceServer) CheckEngine(context.Context, *CheckEngineRequest) (*CheckEngineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckEngine not implemented")
}
func (UnimplementedDetectServiceServer) CheckAllEngine(context.Context, *emptypb.Empty) (*CheckAllEngineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckAllEngine not implemented")
}
func (UnimplementedDetectServiceServer) Shutdown(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Shutdown not implemented")
}
func (UnimplementedDetectServiceServer) UploadModel(DetectService_UploadModelServer) error {
	return status.Errorf(codes.Unimplemented, "method UploadModel not implemented")
}
func (UnimplementedDetectServiceServer) mustEmbedUnimplementedDetectServiceServer() {}

// UnsafeDetectServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DetectServiceServer will
// result in compilation errors.
type UnsafeDetectServiceServer interface {
	mustEmbedUnimplementedDetectServiceServer()
}

func RegisterDetectServiceServer(s grpc.ServiceRegistrar, srv DetectServiceServer) {
	s.RegisterService(&DetectService_ServiceDesc, srv)
}

func _DetectService_InitEngine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitEngineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DetectServiceServer).InitEngine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DetectService_InitEngine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DetectServiceServer).InitEngine(ctx, req.(*InitEngineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DetectService_Inference_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InferenceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DetectServiceServer).Inference(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DetectService_Inference_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DetectServiceServer).Inference(ctx, req.(*InferenceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DetectService_DestroyEngine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DestroyEngineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DetectServiceServer).DestroyEngine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DetectService_DestroyEngine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DetectServiceServer).DestroyEngine(ctx, req.(*DestroyEngineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DetectService_CheckEngine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckEngineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DetectServiceServer).CheckEngine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DetectService_CheckEngine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DetectServiceServer).CheckEngine(ctx, req.(*CheckEngineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DetectService_CheckAllEngine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DetectServiceServer).CheckAllEngine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DetectService_CheckAllEngine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DetectServiceServer).CheckAllEngine(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DetectService_Shutdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DetectServiceServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DetectService_Shutdown_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DetectServiceServer).Shutdown(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _DetectService_UploadModel_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(DetectServiceServer).UploadModel(&detectServiceUploadModelServer{ServerStream: stream})
}

type DetectService_UploadModelServer interface {
	SendAndClose(*UploadFileResponse) error
	Recv() (*UploadFileRequest, error)
	grpc.ServerStream
}

type detectServiceUploadModelServer struct {
	grpc.ServerStream
}

func (x *detectServiceUploadModelServer) SendAndClose(m *UploadFileResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *detectServiceUploadModelServer) Recv() (*UploadFileRequest, error) {
	m := new(UploadFileRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// DetectService_ServiceDesc is the grpc.ServiceDesc for DetectService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DetectService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "obbdetect.DetectService",
	HandlerType: (*DetectServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "InitEngine",
			Handler:    _DetectService_InitEngine_Handler,
		},
		{
			MethodName: "Inference",
			Handler:    _DetectService_Inference_Handler,
		},
		{
			MethodName: "DestroyEngine",
			Handler:    _DetectService_DestroyEngine_Handler,
		},
		{
			MethodName: "CheckEngine",
			Handler:    _DetectService_CheckEngine_Handler,
		},
		{
			MethodName: "CheckAllEngine",
			Handler:    _DetectService_CheckAllEngine_Handler,
		},
		{
			MethodName: "Shutdown",
			Handler:    _DetectService_Shutdown_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "UploadModel",
			Handler:       _DetectService_UploadModel_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "detect.proto",
}
