// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: quicktab.proto

package api

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type PutStateResponse_Status int32

const (
	PutStateResponse_SUCCESS        PutStateResponse_Status = 0
	PutStateResponse_STALE          PutStateResponse_Status = 1
	PutStateResponse_QUOTA_EXCEEDED PutStateResponse_Status = 2
	PutStateResponse_ERROR          PutStateResponse_Status = 3
)

// Enum value maps for PutStateResponse_Status.
var (
	PutStateResponse_Status_name = map[int32]string{
		0: "SUCCESS",
		1: "STALE",
		2: "QUOTA_EXCEEDED",
		3: "ERROR",
	}
	PutStateResponse_Status_value = map[string]int32{
		"SUCCESS":        0,
		"STALE":          1,
		"QUOTA_EXCEEDED": 2,
		"ERROR":          3,
	}
)

func (x PutStateResponse_Status) Enum() *PutStateResponse_Status {
	p := new(PutStateResponse_Status)
	*p = x
	return p
}

func (x PutStateResponse_Status) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PutStateResponse_Status) Descriptor() protoreflect.EnumDescriptor {
	return file_quicktab_proto_enumTypes[0].Descriptor()
}

func (PutStateResponse_Status) Type() protoreflect.EnumType {
	return &file_quicktab_proto_enumTypes[0]
}

func (x PutStateResponse_Status) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use PutStateResponse_Status.Descriptor instead.
func (PutStateResponse_Status) EnumDescriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{13, 0}
}

type Frame struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Body:
	//
	//	*Frame_Hello
	//	*Frame_HelloAck
	//	*Frame_Heartbeat
	//	*Frame_HeartbeatAck
	//	*Frame_Operation
	//	*Frame_OperationResult
	//	*Frame_StateChanged
	Body          isFrame_Body `protobuf_oneof:"body"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Frame) Reset() {
	*x = Frame{}
	mi := &file_quicktab_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Frame) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Frame) ProtoMessage() {}

func (x *Frame) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Frame.ProtoReflect.Descriptor instead.
func (*Frame) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{0}
}

func (x *Frame) GetBody() isFrame_Body {
	if x != nil {
		return x.Body
	}
	return nil
}

func (x *Frame) GetHello() *Hello {
	if x != nil {
		if x, ok := x.Body.(*Frame_Hello); ok {
			return x.Hello
		}
	}
	return nil
}

func (x *Frame) GetHelloAck() *HelloAck {
	if x != nil {
		if x, ok := x.Body.(*Frame_HelloAck); ok {
			return x.HelloAck
		}
	}
	return nil
}

func (x *Frame) GetHeartbeat() *Heartbeat {
	if x != nil {
		if x, ok := x.Body.(*Frame_Heartbeat); ok {
			return x.Heartbeat
		}
	}
	return nil
}

func (x *Frame) GetHeartbeatAck() *HeartbeatAck {
	if x != nil {
		if x, ok := x.Body.(*Frame_HeartbeatAck); ok {
			return x.HeartbeatAck
		}
	}
	return nil
}

func (x *Frame) GetOperation() *OperationRequest {
	if x != nil {
		if x, ok := x.Body.(*Frame_Operation); ok {
			return x.Operation
		}
	}
	return nil
}

func (x *Frame) GetOperationResult() *OperationResult {
	if x != nil {
		if x, ok := x.Body.(*Frame_OperationResult); ok {
			return x.OperationResult
		}
	}
	return nil
}

func (x *Frame) GetStateChanged() *StateChanged {
	if x != nil {
		if x, ok := x.Body.(*Frame_StateChanged); ok {
			return x.StateChanged
		}
	}
	return nil
}

type isFrame_Body interface {
	isFrame_Body()
}

type Frame_Hello struct {
	Hello *Hello `protobuf:"bytes,1,opt,name=hello,proto3,oneof"`
}

type Frame_HelloAck struct {
	HelloAck *HelloAck `protobuf:"bytes,2,opt,name=hello_ack,json=helloAck,proto3,oneof"`
}

type Frame_Heartbeat struct {
	Heartbeat *Heartbeat `protobuf:"bytes,3,opt,name=heartbeat,proto3,oneof"`
}

type Frame_HeartbeatAck struct {
	HeartbeatAck *HeartbeatAck `protobuf:"bytes,4,opt,name=heartbeat_ack,json=heartbeatAck,proto3,oneof"`
}

type Frame_Operation struct {
	Operation *OperationRequest `protobuf:"bytes,5,opt,name=operation,proto3,oneof"`
}

type Frame_OperationResult struct {
	OperationResult *OperationResult `protobuf:"bytes,6,opt,name=operation_result,json=operationResult,proto3,oneof"`
}

type Frame_StateChanged struct {
	StateChanged *StateChanged `protobuf:"bytes,7,opt,name=state_changed,json=stateChanged,proto3,oneof"`
}

func (*Frame_Hello) isFrame_Body() {}

func (*Frame_HelloAck) isFrame_Body() {}

func (*Frame_Heartbeat) isFrame_Body() {}

func (*Frame_HeartbeatAck) isFrame_Body() {}

func (*Frame_Operation) isFrame_Body() {}

func (*Frame_OperationResult) isFrame_Body() {}

func (*Frame_StateChanged) isFrame_Body() {}

type Hello struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContextId     string                 `protobuf:"bytes,1,opt,name=context_id,json=contextId,proto3" json:"context_id,omitempty"`
	NamespaceId   string                 `protobuf:"bytes,2,opt,name=namespace_id,json=namespaceId,proto3" json:"namespace_id,omitempty"`
	ContextKind   string                 `protobuf:"bytes,3,opt,name=context_kind,json=contextKind,proto3" json:"context_kind,omitempty"` // "page", "panel", "coordinator"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Hello) Reset() {
	*x = Hello{}
	mi := &file_quicktab_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Hello) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Hello) ProtoMessage() {}

func (x *Hello) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Hello.ProtoReflect.Descriptor instead.
func (*Hello) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{1}
}

func (x *Hello) GetContextId() string {
	if x != nil {
		return x.ContextId
	}
	return ""
}

func (x *Hello) GetNamespaceId() string {
	if x != nil {
		return x.NamespaceId
	}
	return ""
}

func (x *Hello) GetContextKind() string {
	if x != nil {
		return x.ContextKind
	}
	return ""
}

type HelloAck struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CoordinatorId string                 `protobuf:"bytes,1,opt,name=coordinator_id,json=coordinatorId,proto3" json:"coordinator_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HelloAck) Reset() {
	*x = HelloAck{}
	mi := &file_quicktab_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HelloAck) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HelloAck) ProtoMessage() {}

func (x *HelloAck) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HelloAck.ProtoReflect.Descriptor instead.
func (*HelloAck) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{2}
}

func (x *HelloAck) GetCoordinatorId() string {
	if x != nil {
		return x.CoordinatorId
	}
	return ""
}

type Heartbeat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Seq           uint64                 `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	SentAtUnixMs  int64                  `protobuf:"varint,2,opt,name=sent_at_unix_ms,json=sentAtUnixMs,proto3" json:"sent_at_unix_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Heartbeat) Reset() {
	*x = Heartbeat{}
	mi := &file_quicktab_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Heartbeat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Heartbeat) ProtoMessage() {}

func (x *Heartbeat) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Heartbeat.ProtoReflect.Descriptor instead.
func (*Heartbeat) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{3}
}

func (x *Heartbeat) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *Heartbeat) GetSentAtUnixMs() int64 {
	if x != nil {
		return x.SentAtUnixMs
	}
	return 0
}

type HeartbeatAck struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Seq           uint64                 `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HeartbeatAck) Reset() {
	*x = HeartbeatAck{}
	mi := &file_quicktab_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HeartbeatAck) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HeartbeatAck) ProtoMessage() {}

func (x *HeartbeatAck) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HeartbeatAck.ProtoReflect.Descriptor instead.
func (*HeartbeatAck) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{4}
}

func (x *HeartbeatAck) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

type OperationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Op            string                 `protobuf:"bytes,2,opt,name=op,proto3" json:"op,omitempty"` // create|move|resize|minimize|restore|close|focus|adopt
	EntityId      string                 `protobuf:"bytes,3,opt,name=entity_id,json=entityId,proto3" json:"entity_id,omitempty"`
	Url           string                 `protobuf:"bytes,4,opt,name=url,proto3" json:"url,omitempty"`
	Left          int32                  `protobuf:"varint,5,opt,name=left,proto3" json:"left,omitempty"`
	Top           int32                  `protobuf:"varint,6,opt,name=top,proto3" json:"top,omitempty"`
	Width         int32                  `protobuf:"varint,7,opt,name=width,proto3" json:"width,omitempty"`
	Height        int32                  `protobuf:"varint,8,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OperationRequest) Reset() {
	*x = OperationRequest{}
	mi := &file_quicktab_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OperationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OperationRequest) ProtoMessage() {}

func (x *OperationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OperationRequest.ProtoReflect.Descriptor instead.
func (*OperationRequest) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{5}
}

func (x *OperationRequest) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *OperationRequest) GetOp() string {
	if x != nil {
		return x.Op
	}
	return ""
}

func (x *OperationRequest) GetEntityId() string {
	if x != nil {
		return x.EntityId
	}
	return ""
}

func (x *OperationRequest) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *OperationRequest) GetLeft() int32 {
	if x != nil {
		return x.Left
	}
	return 0
}

func (x *OperationRequest) GetTop() int32 {
	if x != nil {
		return x.Top
	}
	return 0
}

func (x *OperationRequest) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *OperationRequest) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

type OperationResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequestId     string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Ok            bool                   `protobuf:"varint,2,opt,name=ok,proto3" json:"ok,omitempty"`
	Revision      int64                  `protobuf:"varint,3,opt,name=revision,proto3" json:"revision,omitempty"`
	ErrorKind     string                 `protobuf:"bytes,4,opt,name=error_kind,json=errorKind,proto3" json:"error_kind,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OperationResult) Reset() {
	*x = OperationResult{}
	mi := &file_quicktab_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OperationResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OperationResult) ProtoMessage() {}

func (x *OperationResult) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OperationResult.ProtoReflect.Descriptor instead.
func (*OperationResult) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{6}
}

func (x *OperationResult) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *OperationResult) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *OperationResult) GetRevision() int64 {
	if x != nil {
		return x.Revision
	}
	return 0
}

func (x *OperationResult) GetErrorKind() string {
	if x != nil {
		return x.ErrorKind
	}
	return ""
}

func (x *OperationResult) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type StateChanged struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NamespaceKey  string                 `protobuf:"bytes,1,opt,name=namespace_key,json=namespaceKey,proto3" json:"namespace_key,omitempty"`
	Snapshot      *Snapshot              `protobuf:"bytes,2,opt,name=snapshot,proto3" json:"snapshot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StateChanged) Reset() {
	*x = StateChanged{}
	mi := &file_quicktab_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StateChanged) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StateChanged) ProtoMessage() {}

func (x *StateChanged) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StateChanged.ProtoReflect.Descriptor instead.
func (*StateChanged) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{7}
}

func (x *StateChanged) GetNamespaceKey() string {
	if x != nil {
		return x.NamespaceKey
	}
	return ""
}

func (x *StateChanged) GetSnapshot() *Snapshot {
	if x != nil {
		return x.Snapshot
	}
	return nil
}

type ProbeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContextId     string                 `protobuf:"bytes,1,opt,name=context_id,json=contextId,proto3" json:"context_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProbeRequest) Reset() {
	*x = ProbeRequest{}
	mi := &file_quicktab_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProbeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProbeRequest) ProtoMessage() {}

func (x *ProbeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProbeRequest.ProtoReflect.Descriptor instead.
func (*ProbeRequest) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{8}
}

func (x *ProbeRequest) GetContextId() string {
	if x != nil {
		return x.ContextId
	}
	return ""
}

type ProbeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CoordinatorId string                 `protobuf:"bytes,1,opt,name=coordinator_id,json=coordinatorId,proto3" json:"coordinator_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProbeResponse) Reset() {
	*x = ProbeResponse{}
	mi := &file_quicktab_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProbeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProbeResponse) ProtoMessage() {}

func (x *ProbeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProbeResponse.ProtoReflect.Descriptor instead.
func (*ProbeResponse) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{9}
}

func (x *ProbeResponse) GetCoordinatorId() string {
	if x != nil {
		return x.CoordinatorId
	}
	return ""
}

type GetStateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NamespaceKey  string                 `protobuf:"bytes,1,opt,name=namespace_key,json=namespaceKey,proto3" json:"namespace_key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStateRequest) Reset() {
	*x = GetStateRequest{}
	mi := &file_quicktab_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStateRequest) ProtoMessage() {}

func (x *GetStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStateRequest.ProtoReflect.Descriptor instead.
func (*GetStateRequest) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{10}
}

func (x *GetStateRequest) GetNamespaceKey() string {
	if x != nil {
		return x.NamespaceKey
	}
	return ""
}

type GetStateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Found         bool                   `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Snapshot      *Snapshot              `protobuf:"bytes,2,opt,name=snapshot,proto3" json:"snapshot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStateResponse) Reset() {
	*x = GetStateResponse{}
	mi := &file_quicktab_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStateResponse) ProtoMessage() {}

func (x *GetStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStateResponse.ProtoReflect.Descriptor instead.
func (*GetStateResponse) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{11}
}

func (x *GetStateResponse) GetFound() bool {
	if x != nil {
		return x.Found
	}
	return false
}

func (x *GetStateResponse) GetSnapshot() *Snapshot {
	if x != nil {
		return x.Snapshot
	}
	return nil
}

type PutStateRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	NamespaceKey     string                 `protobuf:"bytes,1,opt,name=namespace_key,json=namespaceKey,proto3" json:"namespace_key,omitempty"`
	Snapshot         *Snapshot              `protobuf:"bytes,2,opt,name=snapshot,proto3" json:"snapshot,omitempty"`
	ExpectedRevision int64                  `protobuf:"varint,3,opt,name=expected_revision,json=expectedRevision,proto3" json:"expected_revision,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *PutStateRequest) Reset() {
	*x = PutStateRequest{}
	mi := &file_quicktab_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PutStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PutStateRequest) ProtoMessage() {}

func (x *PutStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PutStateRequest.ProtoReflect.Descriptor instead.
func (*PutStateRequest) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{12}
}

func (x *PutStateRequest) GetNamespaceKey() string {
	if x != nil {
		return x.NamespaceKey
	}
	return ""
}

func (x *PutStateRequest) GetSnapshot() *Snapshot {
	if x != nil {
		return x.Snapshot
	}
	return nil
}

func (x *PutStateRequest) GetExpectedRevision() int64 {
	if x != nil {
		return x.ExpectedRevision
	}
	return 0
}

type PutStateResponse struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Status        PutStateResponse_Status `protobuf:"varint,1,opt,name=status,proto3,enum=quicktab.api.PutStateResponse_Status" json:"status,omitempty"`
	Revision      int64                   `protobuf:"varint,2,opt,name=revision,proto3" json:"revision,omitempty"`
	ErrorMessage  string                  `protobuf:"bytes,3,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PutStateResponse) Reset() {
	*x = PutStateResponse{}
	mi := &file_quicktab_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PutStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PutStateResponse) ProtoMessage() {}

func (x *PutStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PutStateResponse.ProtoReflect.Descriptor instead.
func (*PutStateResponse) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{13}
}

func (x *PutStateResponse) GetStatus() PutStateResponse_Status {
	if x != nil {
		return x.Status
	}
	return PutStateResponse_SUCCESS
}

func (x *PutStateResponse) GetRevision() int64 {
	if x != nil {
		return x.Revision
	}
	return 0
}

func (x *PutStateResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type QuickTab struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Url              string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
	Left             int32                  `protobuf:"varint,3,opt,name=left,proto3" json:"left,omitempty"`
	Top              int32                  `protobuf:"varint,4,opt,name=top,proto3" json:"top,omitempty"`
	Width            int32                  `protobuf:"varint,5,opt,name=width,proto3" json:"width,omitempty"`
	Height           int32                  `protobuf:"varint,6,opt,name=height,proto3" json:"height,omitempty"`
	Minimized        bool                   `protobuf:"varint,7,opt,name=minimized,proto3" json:"minimized,omitempty"`
	ZIndex           int32                  `protobuf:"varint,8,opt,name=z_index,json=zIndex,proto3" json:"z_index,omitempty"`
	OwnerContextId   string                 `protobuf:"bytes,9,opt,name=owner_context_id,json=ownerContextId,proto3" json:"owner_context_id,omitempty"`
	OwnerNamespaceId string                 `protobuf:"bytes,10,opt,name=owner_namespace_id,json=ownerNamespaceId,proto3" json:"owner_namespace_id,omitempty"`
	Revision         int64                  `protobuf:"varint,11,opt,name=revision,proto3" json:"revision,omitempty"`
	LastWriterId     string                 `protobuf:"bytes,12,opt,name=last_writer_id,json=lastWriterId,proto3" json:"last_writer_id,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *QuickTab) Reset() {
	*x = QuickTab{}
	mi := &file_quicktab_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuickTab) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuickTab) ProtoMessage() {}

func (x *QuickTab) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuickTab.ProtoReflect.Descriptor instead.
func (*QuickTab) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{14}
}

func (x *QuickTab) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *QuickTab) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *QuickTab) GetLeft() int32 {
	if x != nil {
		return x.Left
	}
	return 0
}

func (x *QuickTab) GetTop() int32 {
	if x != nil {
		return x.Top
	}
	return 0
}

func (x *QuickTab) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *QuickTab) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *QuickTab) GetMinimized() bool {
	if x != nil {
		return x.Minimized
	}
	return false
}

func (x *QuickTab) GetZIndex() int32 {
	if x != nil {
		return x.ZIndex
	}
	return 0
}

func (x *QuickTab) GetOwnerContextId() string {
	if x != nil {
		return x.OwnerContextId
	}
	return ""
}

func (x *QuickTab) GetOwnerNamespaceId() string {
	if x != nil {
		return x.OwnerNamespaceId
	}
	return ""
}

func (x *QuickTab) GetRevision() int64 {
	if x != nil {
		return x.Revision
	}
	return 0
}

func (x *QuickTab) GetLastWriterId() string {
	if x != nil {
		return x.LastWriterId
	}
	return ""
}

type Snapshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entities      map[string]*QuickTab   `protobuf:"bytes,1,rep,name=entities,proto3" json:"entities,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Revision      int64                  `protobuf:"varint,2,opt,name=revision,proto3" json:"revision,omitempty"`
	SaveId        string                 `protobuf:"bytes,3,opt,name=save_id,json=saveId,proto3" json:"save_id,omitempty"`
	Checksum      string                 `protobuf:"bytes,4,opt,name=checksum,proto3" json:"checksum,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Snapshot) Reset() {
	*x = Snapshot{}
	mi := &file_quicktab_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Snapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Snapshot) ProtoMessage() {}

func (x *Snapshot) ProtoReflect() protoreflect.Message {
	mi := &file_quicktab_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Snapshot.ProtoReflect.Descriptor instead.
func (*Snapshot) Descriptor() ([]byte, []int) {
	return file_quicktab_proto_rawDescGZIP(), []int{15}
}

func (x *Snapshot) GetEntities() map[string]*QuickTab {
	if x != nil {
		return x.Entities
	}
	return nil
}

func (x *Snapshot) GetRevision() int64 {
	if x != nil {
		return x.Revision
	}
	return 0
}

func (x *Snapshot) GetSaveId() string {
	if x != nil {
		return x.SaveId
	}
	return ""
}

func (x *Snapshot) GetChecksum() string {
	if x != nil {
		return x.Checksum
	}
	return ""
}

var File_quicktab_proto protoreflect.FileDescriptor

const file_quicktab_proto_rawDesc = "" +
	"\n" +
	"\x0equicktab.proto\x12\fquicktab.api\"\xbe\x03\n" +
	"\x05Frame\x12+\n" +
	"\x05hello\x18\x01 \x01(\v2\x13.quicktab.api.HelloH\x00R\x05hello\x125\n" +
	"\thello_ack\x18\x02 \x01(\v2\x16.quicktab.api.HelloAckH\x00R\bhelloAck\x127\n" +
	"\theartbeat\x18\x03 \x01(\v2\x17.quicktab.api.HeartbeatH\x00R\theartbeat\x12A\n" +
	"\rheartbeat_ack\x18\x04 \x01(\v2\x1a.quicktab.api.HeartbeatAckH\x00R\fheartbeatAck\x12>\n" +
	"\toperation\x18\x05 \x01(\v2\x1e.quicktab.api.OperationRequestH\x00R\toperation\x12J\n" +
	"\x10operation_result\x18\x06 \x01(\v2\x1d.quicktab.api.OperationResultH\x00R\x0foperationResult\x12A\n" +
	"\rstate_changed\x18\a \x01(\v2\x1a.quicktab.api.StateChangedH\x00R\fstateChangedB\x06\n" +
	"\x04body\"l\n" +
	"\x05Hello\x12\x1d\n" +
	"\n" +
	"context_id\x18\x01 \x01(\tR\tcontextId\x12!\n" +
	"\fnamespace_id\x18\x02 \x01(\tR\vnamespaceId\x12!\n" +
	"\fcontext_kind\x18\x03 \x01(\tR\vcontextKind\"1\n" +
	"\bHelloAck\x12%\n" +
	"\x0ecoordinator_id\x18\x01 \x01(\tR\rcoordinatorId\"D\n" +
	"\tHeartbeat\x12\x10\n" +
	"\x03seq\x18\x01 \x01(\x04R\x03seq\x12%\n" +
	"\x0fsent_at_unix_ms\x18\x02 \x01(\x03R\fsentAtUnixMs\" \n" +
	"\fHeartbeatAck\x12\x10\n" +
	"\x03seq\x18\x01 \x01(\x04R\x03seq\"\xc4\x01\n" +
	"\x10OperationRequest\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x0e\n" +
	"\x02op\x18\x02 \x01(\tR\x02op\x12\x1b\n" +
	"\tentity_id\x18\x03 \x01(\tR\bentityId\x12\x10\n" +
	"\x03url\x18\x04 \x01(\tR\x03url\x12\x12\n" +
	"\x04left\x18\x05 \x01(\x05R\x04left\x12\x10\n" +
	"\x03top\x18\x06 \x01(\x05R\x03top\x12\x14\n" +
	"\x05width\x18\a \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\b \x01(\x05R\x06height\"\xa0\x01\n" +
	"\x0fOperationResult\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x0e\n" +
	"\x02ok\x18\x02 \x01(\bR\x02ok\x12\x1a\n" +
	"\brevision\x18\x03 \x01(\x03R\brevision\x12\x1d\n" +
	"\n" +
	"error_kind\x18\x04 \x01(\tR\terrorKind\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\"g\n" +
	"\fStateChanged\x12#\n" +
	"\rnamespace_key\x18\x01 \x01(\tR\fnamespaceKey\x122\n" +
	"\bsnapshot\x18\x02 \x01(\v2\x16.quicktab.api.SnapshotR\bsnapshot\"-\n" +
	"\fProbeRequest\x12\x1d\n" +
	"\n" +
	"context_id\x18\x01 \x01(\tR\tcontextId\"6\n" +
	"\rProbeResponse\x12%\n" +
	"\x0ecoordinator_id\x18\x01 \x01(\tR\rcoordinatorId\"6\n" +
	"\x0fGetStateRequest\x12#\n" +
	"\rnamespace_key\x18\x01 \x01(\tR\fnamespaceKey\"\\\n" +
	"\x10GetStateResponse\x12\x14\n" +
	"\x05found\x18\x01 \x01(\bR\x05found\x122\n" +
	"\bsnapshot\x18\x02 \x01(\v2\x16.quicktab.api.SnapshotR\bsnapshot\"\x97\x01\n" +
	"\x0fPutStateRequest\x12#\n" +
	"\rnamespace_key\x18\x01 \x01(\tR\fnamespaceKey\x122\n" +
	"\bsnapshot\x18\x02 \x01(\v2\x16.quicktab.api.SnapshotR\bsnapshot\x12+\n" +
	"\x11expected_revision\x18\x03 \x01(\x03R\x10expectedRevision\"\xd3\x01\n" +
	"\x10PutStateResponse\x12=\n" +
	"\x06status\x18\x01 \x01(\x0e2%.quicktab.api.PutStateResponse.StatusR\x06status\x12\x1a\n" +
	"\brevision\x18\x02 \x01(\x03R\brevision\x12#\n" +
	"\rerror_message\x18\x03 \x01(\tR\ferrorMessage\"?\n" +
	"\x06Status\x12\v\n" +
	"\aSUCCESS\x10\x00\x12\t\n" +
	"\x05STALE\x10\x01\x12\x12\n" +
	"\x0eQUOTA_EXCEEDED\x10\x02\x12\t\n" +
	"\x05ERROR\x10\x03\"\xd1\x02\n" +
	"\bQuickTab\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\x12\x12\n" +
	"\x04left\x18\x03 \x01(\x05R\x04left\x12\x10\n" +
	"\x03top\x18\x04 \x01(\x05R\x03top\x12\x14\n" +
	"\x05width\x18\x05 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x06 \x01(\x05R\x06height\x12\x1c\n" +
	"\tminimized\x18\a \x01(\bR\tminimized\x12\x17\n" +
	"\az_index\x18\b \x01(\x05R\x06zIndex\x12(\n" +
	"\x10owner_context_id\x18\t \x01(\tR\x0eownerContextId\x12,\n" +
	"\x12owner_namespace_id\x18\n" +
	" \x01(\tR\x10ownerNamespaceId\x12\x1a\n" +
	"\brevision\x18\v \x01(\x03R\brevision\x12$\n" +
	"\x0elast_writer_id\x18\f \x01(\tR\flastWriterId\"\xf2\x01\n" +
	"\bSnapshot\x12@\n" +
	"\bentities\x18\x01 \x03(\v2$.quicktab.api.Snapshot.EntitiesEntryR\bentities\x12\x1a\n" +
	"\brevision\x18\x02 \x01(\x03R\brevision\x12\x17\n" +
	"\asave_id\x18\x03 \x01(\tR\x06saveId\x12\x1a\n" +
	"\bchecksum\x18\x04 \x01(\tR\bchecksum\x1aS\n" +
	"\rEntitiesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12,\n" +
	"\x05value\x18\x02 \x01(\v2\x16.quicktab.api.QuickTabR\x05value:\x028\x012\x9c\x02\n" +
	"\fQuickTabSync\x124\n" +
	"\x04Sync\x12\x13.quicktab.api.Frame\x1a\x13.quicktab.api.Frame(\x010\x01\x12@\n" +
	"\x05Probe\x12\x1a.quicktab.api.ProbeRequest\x1a\x1b.quicktab.api.ProbeResponse\x12I\n" +
	"\bGetState\x12\x1d.quicktab.api.GetStateRequest\x1a\x1e.quicktab.api.GetStateResponse\x12I\n" +
	"\bPutState\x12\x1d.quicktab.api.PutStateRequest\x1a\x1e.quicktab.api.PutStateResponseB\x1bZ\x19quicktab/internal/gen/apib\x06proto3"

var (
	file_quicktab_proto_rawDescOnce sync.Once
	file_quicktab_proto_rawDescData []byte
)

func file_quicktab_proto_rawDescGZIP() []byte {
	file_quicktab_proto_rawDescOnce.Do(func() {
		file_quicktab_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_quicktab_proto_rawDesc), len(file_quicktab_proto_rawDesc)))
	})
	return file_quicktab_proto_rawDescData
}

var file_quicktab_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_quicktab_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_quicktab_proto_goTypes = []any{
	(PutStateResponse_Status)(0), // 0: quicktab.api.PutStateResponse.Status
	(*Frame)(nil),                // 1: quicktab.api.Frame
	(*Hello)(nil),                // 2: quicktab.api.Hello
	(*HelloAck)(nil),             // 3: quicktab.api.HelloAck
	(*Heartbeat)(nil),            // 4: quicktab.api.Heartbeat
	(*HeartbeatAck)(nil),         // 5: quicktab.api.HeartbeatAck
	(*OperationRequest)(nil),     // 6: quicktab.api.OperationRequest
	(*OperationResult)(nil),      // 7: quicktab.api.OperationResult
	(*StateChanged)(nil),         // 8: quicktab.api.StateChanged
	(*ProbeRequest)(nil),         // 9: quicktab.api.ProbeRequest
	(*ProbeResponse)(nil),        // 10: quicktab.api.ProbeResponse
	(*GetStateRequest)(nil),      // 11: quicktab.api.GetStateRequest
	(*GetStateResponse)(nil),     // 12: quicktab.api.GetStateResponse
	(*PutStateRequest)(nil),      // 13: quicktab.api.PutStateRequest
	(*PutStateResponse)(nil),     // 14: quicktab.api.PutStateResponse
	(*QuickTab)(nil),             // 15: quicktab.api.QuickTab
	(*Snapshot)(nil),             // 16: quicktab.api.Snapshot
	nil,                          // 17: quicktab.api.Snapshot.EntitiesEntry
}
var file_quicktab_proto_depIdxs = []int32{
	2,  // 0: quicktab.api.Frame.hello:type_name -> quicktab.api.Hello
	3,  // 1: quicktab.api.Frame.hello_ack:type_name -> quicktab.api.HelloAck
	4,  // 2: quicktab.api.Frame.heartbeat:type_name -> quicktab.api.Heartbeat
	5,  // 3: quicktab.api.Frame.heartbeat_ack:type_name -> quicktab.api.HeartbeatAck
	6,  // 4: quicktab.api.Frame.operation:type_name -> quicktab.api.OperationRequest
	7,  // 5: quicktab.api.Frame.operation_result:type_name -> quicktab.api.OperationResult
	8,  // 6: quicktab.api.Frame.state_changed:type_name -> quicktab.api.StateChanged
	16, // 7: quicktab.api.StateChanged.snapshot:type_name -> quicktab.api.Snapshot
	16, // 8: quicktab.api.GetStateResponse.snapshot:type_name -> quicktab.api.Snapshot
	16, // 9: quicktab.api.PutStateRequest.snapshot:type_name -> quicktab.api.Snapshot
	0,  // 10: quicktab.api.PutStateResponse.status:type_name -> quicktab.api.PutStateResponse.Status
	17, // 11: quicktab.api.Snapshot.entities:type_name -> quicktab.api.Snapshot.EntitiesEntry
	15, // 12: quicktab.api.Snapshot.EntitiesEntry.value:type_name -> quicktab.api.QuickTab
	1,  // 13: quicktab.api.QuickTabSync.Sync:input_type -> quicktab.api.Frame
	9,  // 14: quicktab.api.QuickTabSync.Probe:input_type -> quicktab.api.ProbeRequest
	11, // 15: quicktab.api.QuickTabSync.GetState:input_type -> quicktab.api.GetStateRequest
	13, // 16: quicktab.api.QuickTabSync.PutState:input_type -> quicktab.api.PutStateRequest
	1,  // 17: quicktab.api.QuickTabSync.Sync:output_type -> quicktab.api.Frame
	10, // 18: quicktab.api.QuickTabSync.Probe:output_type -> quicktab.api.ProbeResponse
	12, // 19: quicktab.api.QuickTabSync.GetState:output_type -> quicktab.api.GetStateResponse
	14, // 20: quicktab.api.QuickTabSync.PutState:output_type -> quicktab.api.PutStateResponse
	17, // [17:21] is the sub-list for method output_type
	13, // [13:17] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_quicktab_proto_init() }
func file_quicktab_proto_init() {
	if File_quicktab_proto != nil {
		return
	}
	file_quicktab_proto_msgTypes[0].OneofWrappers = []any{
		(*Frame_Hello)(nil),
		(*Frame_HelloAck)(nil),
		(*Frame_Heartbeat)(nil),
		(*Frame_HeartbeatAck)(nil),
		(*Frame_Operation)(nil),
		(*Frame_OperationResult)(nil),
		(*Frame_StateChanged)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_quicktab_proto_rawDesc), len(file_quicktab_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_quicktab_proto_goTypes,
		DependencyIndexes: file_quicktab_proto_depIdxs,
		EnumInfos:         file_quicktab_proto_enumTypes,
		MessageInfos:      file_quicktab_proto_msgTypes,
	}.Build()
	File_quicktab_proto = out.File
	file_quicktab_proto_goTypes = nil
	file_quicktab_proto_depIdxs = nil
}
