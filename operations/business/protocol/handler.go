package protocol

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/operations/business/payload"
	"encore.app/operations/idempotency"
	"encore.app/operations/model"
)

const (
	OperationApproveProtocol              = "approve_protocol"
	OperationGenerateConsolidatedProtocol = "generate_consolidated_protocol"
)

type ApproveProtocolPayload struct {
	ProtocolID int64  `json:"protocol_id" validate:"required,gt=0"`
	Comment    string `json:"comment" validate:"omitempty,max=1000"`
}

type ApproveProtocolResult struct {
	Success  bool           `json:"success"`
	Protocol model.Protocol `json:"protocol"`
}

type approveProtocolHandler struct {
	business Business
}

// NewApproveProtocolHandler exposes ApproveProtocol as the approve_protocol operation.
func NewApproveProtocolHandler(business Business) idempotency.Handler {
	return &approveProtocolHandler{business: business}
}

func (h *approveProtocolHandler) OperationType() string {
	return OperationApproveProtocol
}

func (h *approveProtocolHandler) Execute(ctx context.Context, raw json.RawMessage, ownerID string) (any, error) {
	var p ApproveProtocolPayload
	if err := payload.Decode(raw, &p); err != nil {
		return nil, err
	}

	approved, err := h.business.ApproveProtocol(ctx, p.ProtocolID, ownerID, strings.TrimSpace(p.Comment))
	if err != nil {
		return nil, err
	}

	return ApproveProtocolResult{Success: true, Protocol: *approved}, nil
}

// ConsolidationStarter launches the background job that finalizes a consolidated protocol.
type ConsolidationStarter interface {
	StartConsolidation(ctx context.Context, consolidated *model.ConsolidatedProtocol) error
}

type GenerateConsolidatedProtocolPayload struct {
	Title       string  `json:"title" validate:"required,max=200"`
	ProtocolIDs []int64 `json:"protocol_ids" validate:"required,min=1,max=100,unique,dive,gt=0"`
}

type GenerateConsolidatedProtocolResult struct {
	Success              bool                       `json:"success"`
	ConsolidatedProtocol model.ConsolidatedProtocol `json:"consolidated_protocol"`
}

type generateConsolidatedProtocolHandler struct {
	business Business
	starter  ConsolidationStarter
	newID    func() uuid.UUID
}

// NewGenerateConsolidatedProtocolHandler exposes consolidation as the
// generate_consolidated_protocol operation.
func NewGenerateConsolidatedProtocolHandler(business Business, starter ConsolidationStarter) idempotency.Handler {
	return &generateConsolidatedProtocolHandler{
		business: business,
		starter:  starter,
		newID:    uuid.New,
	}
}

func (h *generateConsolidatedProtocolHandler) OperationType() string {
	return OperationGenerateConsolidatedProtocol
}

func (h *generateConsolidatedProtocolHandler) Execute(ctx context.Context, raw json.RawMessage, ownerID string) (any, error) {
	var p GenerateConsolidatedProtocolPayload
	if err := payload.Decode(raw, &p); err != nil {
		return nil, err
	}

	id := h.newID()
	created, err := h.business.CreateConsolidatedProtocol(ctx, &model.ConsolidatedProtocol{
		ID:             id,
		OwnerID:        ownerID,
		Title:          strings.TrimSpace(p.Title),
		IdempotencyKey: idempotency.KeyFromContext(ctx),
		WorkflowID:     ConsolidationWorkflowID(id),
	}, p.ProtocolIDs)
	if err != nil {
		return nil, err
	}

	if err := h.starter.StartConsolidation(ctx, created); err != nil {
		rlog.Error("failed to start consolidation", "consolidated_protocol_id", created.ID, "workflow_id", created.WorkflowID, "error", err)
		// Release the protocols so a new request can consolidate them.
		if _, markErr := h.business.MarkConsolidationFailed(context.WithoutCancel(ctx), created.ID, "consolidation could not be started"); markErr != nil {
			rlog.Error("failed to mark consolidation as failed", "consolidated_protocol_id", created.ID, "error", markErr)
		}
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start consolidation"}
	}

	return GenerateConsolidatedProtocolResult{Success: true, ConsolidatedProtocol: *created}, nil
}
