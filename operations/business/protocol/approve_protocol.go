package protocol

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/operations/model"
	"encore.app/operations/repository/protocols"
)

// ApproveProtocol moves a submitted protocol to approved, recording the approver.
func (b *business) ApproveProtocol(ctx context.Context, protocolID int64, approvedBy, comment string) (*model.Protocol, error) {
	dbProtocol, err := b.protocolRepo.ApproveProtocol(ctx, protocols.ApproveProtocolParams{
		ID:              protocolID,
		ApprovedBy:      pgtype.Text{String: approvedBy, Valid: true},
		ApprovalComment: pgtype.Text{String: comment, Valid: comment != ""},
	})
	if err == nil {
		return convertDBProtocolToModel(dbProtocol), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		rlog.Error("failed to approve protocol", "protocol_id", protocolID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to approve protocol"}
	}

	current, err := b.protocolRepo.GetProtocol(ctx, protocolID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "protocol not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get protocol"}
	}

	if model.ProtocolStatus(current.Status) == model.ProtocolStatusApproved {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "protocol is already approved"}
	}
	return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "protocol must be submitted to be approved"}
}

func convertDBProtocolToModel(dbProtocol protocols.Protocol) *model.Protocol {
	protocol := &model.Protocol{
		ID:          dbProtocol.ID,
		Title:       dbProtocol.Title,
		AmountCents: dbProtocol.AmountCents,
		Status:      model.ProtocolStatus(dbProtocol.Status),
		CreatedAt:   dbProtocol.CreatedAt.Time,
		UpdatedAt:   dbProtocol.UpdatedAt.Time,
	}

	if dbProtocol.ApprovedBy.Valid {
		protocol.ApprovedBy = &dbProtocol.ApprovedBy.String
	}

	if dbProtocol.ApprovalComment.Valid {
		protocol.ApprovalComment = &dbProtocol.ApprovalComment.String
	}

	if dbProtocol.ApprovedAt.Valid {
		protocol.ApprovedAt = &dbProtocol.ApprovedAt.Time
	}

	if dbProtocol.ConsolidatedProtocolID.Valid {
		id := uuid.UUID(dbProtocol.ConsolidatedProtocolID.Bytes)
		protocol.ConsolidatedProtocolID = &id
	}

	return protocol
}
