package engine

import (
	"context"
	"errors"

	"quicktab/internal/channel"
	"quicktab/internal/entity"
	"quicktab/internal/ownership"
	"quicktab/internal/store"
	"quicktab/internal/writer"
)

// Stable error kinds for operation results crossing the channel.
const (
	errKindStale     = "stale_write"
	errKindQuota     = "quota_exceeded"
	errKindOwnership = "ownership_denied"
	errKindTimeout   = "timeout"
	errKindInvalid   = "invalid"
	errKindInternal  = "internal"
)

// HandleRemote runs one relayed operation under the remote requester's
// identity and shapes the definitive result for the wire. It is the
// coordinator engine's channel.OperationHandler.
func (e *Engine) HandleRemote(ctx context.Context, from ownership.Identity, req channel.OperationRequest) channel.OperationResult {
	op := OpRequest{
		Op:       req.Op,
		EntityID: req.EntityID,
		URL:      req.URL,
	}
	switch req.Op {
	case entity.OpCreate:
		op.Position = &entity.Position{Left: req.Left, Top: req.Top}
		if req.Width > 0 && req.Height > 0 {
			op.Size = &entity.Size{Width: req.Width, Height: req.Height}
		}
	case entity.OpMove:
		op.Position = &entity.Position{Left: req.Left, Top: req.Top}
	case entity.OpResize:
		op.Size = &entity.Size{Width: req.Width, Height: req.Height}
	}

	res := <-e.ApplyAs(ctx, from, op)
	if res.OK() {
		return channel.OperationResult{
			RequestID: req.RequestID,
			OK:        true,
			Revision:  res.Revision,
		}
	}
	return channel.OperationResult{
		RequestID:    req.RequestID,
		ErrorKind:    errKind(res.Err),
		ErrorMessage: res.Err.Error(),
	}
}

// errKind maps an operation failure to its stable wire identifier.
func errKind(err error) string {
	switch {
	case errors.Is(err, ownership.ErrDenied):
		return errKindOwnership
	case errors.Is(err, store.ErrQuotaExceeded):
		return errKindQuota
	case errors.Is(err, store.ErrStaleWrite), errors.Is(err, writer.ErrRetriesExhausted):
		return errKindStale
	case errors.Is(err, writer.ErrTimeout):
		return errKindTimeout
	case errors.Is(err, ErrUnknownOp), errors.Is(err, channel.ErrInvalidFrame):
		return errKindInvalid
	default:
		return errKindInternal
	}
}
