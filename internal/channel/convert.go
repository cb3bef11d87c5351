package channel

import (
	"fmt"
	"time"

	"quicktab/internal/entity"
	quicktabpb "quicktab/internal/gen/api"
	"quicktab/internal/ownership"
)

// toProto converts a native frame to its wire form.
func toProto(f Frame) (*quicktabpb.Frame, error) {
	switch fr := f.(type) {
	case Hello:
		return &quicktabpb.Frame{Body: &quicktabpb.Frame_Hello{Hello: &quicktabpb.Hello{
			ContextId:   fr.ContextID,
			NamespaceId: fr.NamespaceID,
			ContextKind: string(fr.Kind),
		}}}, nil
	case HelloAck:
		return &quicktabpb.Frame{Body: &quicktabpb.Frame_HelloAck{HelloAck: &quicktabpb.HelloAck{
			CoordinatorId: fr.CoordinatorID,
		}}}, nil
	case Heartbeat:
		return &quicktabpb.Frame{Body: &quicktabpb.Frame_Heartbeat{Heartbeat: &quicktabpb.Heartbeat{
			Seq:          fr.Seq,
			SentAtUnixMs: fr.SentAt.UnixMilli(),
		}}}, nil
	case HeartbeatAck:
		return &quicktabpb.Frame{Body: &quicktabpb.Frame_HeartbeatAck{HeartbeatAck: &quicktabpb.HeartbeatAck{
			Seq: fr.Seq,
		}}}, nil
	case OperationRequest:
		return &quicktabpb.Frame{Body: &quicktabpb.Frame_Operation{Operation: &quicktabpb.OperationRequest{
			RequestId: fr.RequestID,
			Op:        string(fr.Op),
			EntityId:  fr.EntityID,
			Url:       fr.URL,
			Left:      int32(fr.Left),
			Top:       int32(fr.Top),
			Width:     int32(fr.Width),
			Height:    int32(fr.Height),
		}}}, nil
	case OperationResult:
		return &quicktabpb.Frame{Body: &quicktabpb.Frame_OperationResult{OperationResult: &quicktabpb.OperationResult{
			RequestId:    fr.RequestID,
			Ok:           fr.OK,
			Revision:     fr.Revision,
			ErrorKind:    fr.ErrorKind,
			ErrorMessage: fr.ErrorMessage,
		}}}, nil
	case StateChanged:
		return &quicktabpb.Frame{Body: &quicktabpb.Frame_StateChanged{StateChanged: &quicktabpb.StateChanged{
			NamespaceKey: fr.NamespaceKey,
			Snapshot:     snapshotToProto(fr.Snapshot),
		}}}, nil
	default:
		return nil, fmt.Errorf("%w: no wire form for %T", ErrInvalidFrame, f)
	}
}

// fromProto converts a wire frame to its native form and validates it.
func fromProto(pb *quicktabpb.Frame) (Frame, error) {
	if pb == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrInvalidFrame)
	}
	var f Frame
	switch body := pb.Body.(type) {
	case *quicktabpb.Frame_Hello:
		f = Hello{
			ContextID:   body.Hello.GetContextId(),
			NamespaceID: body.Hello.GetNamespaceId(),
			Kind:        ownership.Kind(body.Hello.GetContextKind()),
		}
	case *quicktabpb.Frame_HelloAck:
		f = HelloAck{CoordinatorID: body.HelloAck.GetCoordinatorId()}
	case *quicktabpb.Frame_Heartbeat:
		f = Heartbeat{
			Seq:    body.Heartbeat.GetSeq(),
			SentAt: time.UnixMilli(body.Heartbeat.GetSentAtUnixMs()),
		}
	case *quicktabpb.Frame_HeartbeatAck:
		f = HeartbeatAck{Seq: body.HeartbeatAck.GetSeq()}
	case *quicktabpb.Frame_Operation:
		op := body.Operation
		f = OperationRequest{
			RequestID: op.GetRequestId(),
			Op:        entity.Op(op.GetOp()),
			EntityID:  op.GetEntityId(),
			URL:       op.GetUrl(),
			Left:      int(op.GetLeft()),
			Top:       int(op.GetTop()),
			Width:     int(op.GetWidth()),
			Height:    int(op.GetHeight()),
		}
	case *quicktabpb.Frame_OperationResult:
		res := body.OperationResult
		f = OperationResult{
			RequestID:    res.GetRequestId(),
			OK:           res.GetOk(),
			Revision:     res.GetRevision(),
			ErrorKind:    res.GetErrorKind(),
			ErrorMessage: res.GetErrorMessage(),
		}
	case *quicktabpb.Frame_StateChanged:
		f = StateChanged{
			NamespaceKey: body.StateChanged.GetNamespaceKey(),
			Snapshot:     snapshotFromProto(body.StateChanged.GetSnapshot()),
		}
	default:
		return nil, fmt.Errorf("%w: unrecognized wire frame %T", ErrInvalidFrame, pb.Body)
	}
	if err := Validate(f); err != nil {
		return nil, err
	}
	return f, nil
}

func quickTabToProto(q *entity.QuickTab) *quicktabpb.QuickTab {
	if q == nil {
		return nil
	}
	return &quicktabpb.QuickTab{
		Id:               q.ID,
		Url:              q.URL,
		Left:             int32(q.Position.Left),
		Top:              int32(q.Position.Top),
		Width:            int32(q.Size.Width),
		Height:           int32(q.Size.Height),
		Minimized:        q.Minimized,
		ZIndex:           int32(q.ZIndex),
		OwnerContextId:   q.OwnerContextID,
		OwnerNamespaceId: q.OwnerNamespaceID,
		Revision:         q.Revision,
		LastWriterId:     q.LastWriterID,
	}
}

func quickTabFromProto(pb *quicktabpb.QuickTab) *entity.QuickTab {
	if pb == nil {
		return nil
	}
	return &entity.QuickTab{
		ID:               pb.GetId(),
		URL:              pb.GetUrl(),
		Position:         entity.Position{Left: int(pb.GetLeft()), Top: int(pb.GetTop())},
		Size:             entity.Size{Width: int(pb.GetWidth()), Height: int(pb.GetHeight())},
		Minimized:        pb.GetMinimized(),
		ZIndex:           int(pb.GetZIndex()),
		OwnerContextID:   pb.GetOwnerContextId(),
		OwnerNamespaceID: pb.GetOwnerNamespaceId(),
		Revision:         pb.GetRevision(),
		LastWriterID:     pb.GetLastWriterId(),
	}
}

func snapshotToProto(s *entity.Snapshot) *quicktabpb.Snapshot {
	if s == nil {
		return nil
	}
	pb := &quicktabpb.Snapshot{
		Entities: make(map[string]*quicktabpb.QuickTab, len(s.Entities)),
		Revision: s.Revision,
		SaveId:   s.SaveID,
		Checksum: s.Checksum,
	}
	for id, q := range s.Entities {
		pb.Entities[id] = quickTabToProto(q)
	}
	return pb
}

func snapshotFromProto(pb *quicktabpb.Snapshot) *entity.Snapshot {
	if pb == nil {
		return nil
	}
	s := &entity.Snapshot{
		Entities: make(map[string]*entity.QuickTab, len(pb.GetEntities())),
		Revision: pb.GetRevision(),
		SaveID:   pb.GetSaveId(),
		Checksum: pb.GetChecksum(),
	}
	for id, q := range pb.GetEntities() {
		s.Entities[id] = quickTabFromProto(q)
	}
	return s
}
