// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: quicktab.proto

package api

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	QuickTabSync_Sync_FullMethodName     = "/quicktab.api.QuickTabSync/Sync"
	QuickTabSync_Probe_FullMethodName    = "/quicktab.api.QuickTabSync/Probe"
	QuickTabSync_GetState_FullMethodName = "/quicktab.api.QuickTabSync/GetState"
	QuickTabSync_PutState_FullMethodName = "/quicktab.api.QuickTabSync/PutState"
)

// QuickTabSyncClient is the client API for QuickTabSync service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// QuickTabSync is the message channel between execution contexts and the
// coordinator. Contexts open one bidirectional Sync stream each; the
// coordinator relays state-change events back over the same stream.
type QuickTabSyncClient interface {
	// Sync is the long-lived frame stream. The first client frame must be a
	// Hello; the coordinator answers with HelloAck before anything else.
	Sync(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[Frame, Frame], error)
	// Probe is a cheap liveness check used by the circuit-breaker probe path.
	// It is unary so it works even when no stream can be established.
	Probe(ctx context.Context, in *ProbeRequest, opts ...grpc.CallOption) (*ProbeResponse, error)
	// GetState reads the authoritative snapshot for a namespace key.
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error)
	// PutState writes a snapshot guarded by an expected revision.
	PutState(ctx context.Context, in *PutStateRequest, opts ...grpc.CallOption) (*PutStateResponse, error)
}

type quickTabSyncClient struct {
	cc grpc.ClientConnInterface
}

func NewQuickTabSyncClient(cc grpc.ClientConnInterface) QuickTabSyncClient {
	return &quickTabSyncClient{cc}
}

func (c *quickTabSyncClient) Sync(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[Frame, Frame], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &QuickTabSync_ServiceDesc.Streams[0], QuickTabSync_Sync_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[Frame, Frame]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type QuickTabSync_SyncClient = grpc.BidiStreamingClient[Frame, Frame]

func (c *quickTabSyncClient) Probe(ctx context.Context, in *ProbeRequest, opts ...grpc.CallOption) (*ProbeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProbeResponse)
	err := c.cc.Invoke(ctx, QuickTabSync_Probe_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quickTabSyncClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*GetStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStateResponse)
	err := c.cc.Invoke(ctx, QuickTabSync_GetState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *quickTabSyncClient) PutState(ctx context.Context, in *PutStateRequest, opts ...grpc.CallOption) (*PutStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PutStateResponse)
	err := c.cc.Invoke(ctx, QuickTabSync_PutState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QuickTabSyncServer is the server API for QuickTabSync service.
// All implementations must embed UnimplementedQuickTabSyncServer
// for forward compatibility.
//
// QuickTabSync is the message channel between execution contexts and the
// coordinator. Contexts open one bidirectional Sync stream each; the
// coordinator relays state-change events back over the same stream.
type QuickTabSyncServer interface {
	// Sync is the long-lived frame stream. The first client frame must be a
	// Hello; the coordinator answers with HelloAck before anything else.
	Sync(grpc.BidiStreamingServer[Frame, Frame]) error
	// Probe is a cheap liveness check used by the circuit-breaker probe path.
	// It is unary so it works even when no stream can be established.
	Probe(context.Context, *ProbeRequest) (*ProbeResponse, error)
	// GetState reads the authoritative snapshot for a namespace key.
	GetState(context.Context, *GetStateRequest) (*GetStateResponse, error)
	// PutState writes a snapshot guarded by an expected revision.
	PutState(context.Context, *PutStateRequest) (*PutStateResponse, error)
	mustEmbedUnimplementedQuickTabSyncServer()
}

// UnimplementedQuickTabSyncServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQuickTabSyncServer struct{}

func (UnimplementedQuickTabSyncServer) Sync(grpc.BidiStreamingServer[Frame, Frame]) error {
	return status.Error(codes.Unimplemented, "method Sync not implemented")
}
func (UnimplementedQuickTabSyncServer) Probe(context.Context, *ProbeRequest) (*ProbeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Probe not implemented")
}
func (UnimplementedQuickTabSyncServer) GetState(context.Context, *GetStateRequest) (*GetStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetState not implemented")
}
func (UnimplementedQuickTabSyncServer) PutState(context.Context, *PutStateRequest) (*PutStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PutState not implemented")
}
func (UnimplementedQuickTabSyncServer) mustEmbedUnimplementedQuickTabSyncServer() {}
func (UnimplementedQuickTabSyncServer) testEmbeddedByValue()                      {}

// UnsafeQuickTabSyncServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QuickTabSyncServer will
// result in compilation errors.
type UnsafeQuickTabSyncServer interface {
	mustEmbedUnimplementedQuickTabSyncServer()
}

func RegisterQuickTabSyncServer(s grpc.ServiceRegistrar, srv QuickTabSyncServer) {
	// If the following call panics, it indicates UnimplementedQuickTabSyncServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&QuickTabSync_ServiceDesc, srv)
}

func _QuickTabSync_Sync_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(QuickTabSyncServer).Sync(&grpc.GenericServerStream[Frame, Frame]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type QuickTabSync_SyncServer = grpc.BidiStreamingServer[Frame, Frame]

func _QuickTabSync_Probe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProbeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuickTabSyncServer).Probe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuickTabSync_Probe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuickTabSyncServer).Probe(ctx, req.(*ProbeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QuickTabSync_GetState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuickTabSyncServer).GetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuickTabSync_GetState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuickTabSyncServer).GetState(ctx, req.(*GetStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QuickTabSync_PutState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QuickTabSyncServer).PutState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QuickTabSync_PutState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QuickTabSyncServer).PutState(ctx, req.(*PutStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// QuickTabSync_ServiceDesc is the grpc.ServiceDesc for QuickTabSync service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var QuickTabSync_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "quicktab.api.QuickTabSync",
	HandlerType: (*QuickTabSyncServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Probe",
			Handler:    _QuickTabSync_Probe_Handler,
		},
		{
			MethodName: "GetState",
			Handler:    _QuickTabSync_GetState_Handler,
		},
		{
			MethodName: "PutState",
			Handler:    _QuickTabSync_PutState_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Sync",
			Handler:       _QuickTabSync_Sync_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "quicktab.proto",
}
