package protocol

import (
	"context"

	"github.com/google/uuid"

	"encore.app/operations/model"
	"encore.app/operations/repository/protocols"
)

type Business interface {
	ApproveProtocol(ctx context.Context, protocolID int64, approvedBy, comment string) (*model.Protocol, error)

	// CreateConsolidatedProtocol links every listed protocol to a new consolidated
	// protocol, or none of them.
	CreateConsolidatedProtocol(ctx context.Context, consolidated *model.ConsolidatedProtocol, protocolIDs []int64) (*model.ConsolidatedProtocol, error)
	FinalizeConsolidatedProtocol(ctx context.Context, id uuid.UUID) (*model.ConsolidatedProtocol, error)
	MarkConsolidationFailed(ctx context.Context, id uuid.UUID, reason string) (*model.ConsolidatedProtocol, error)
}

type business struct {
	protocolRepo protocols.Querier
}

// NewProtocolBusiness creates the business layer for protocols and their consolidation
func NewProtocolBusiness(protocolRepo protocols.Querier) Business {
	return &business{protocolRepo: protocolRepo}
}
