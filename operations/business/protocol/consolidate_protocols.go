package protocol

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/operations/model"
	"encore.app/operations/repository/protocols"
)

// ConsolidationWorkflowID is the workflow id that finalizes a consolidated protocol.
func ConsolidationWorkflowID(id uuid.UUID) string {
	return fmt.Sprintf("consolidated-protocol-%s", id)
}

func (b *business) CreateConsolidatedProtocol(ctx context.Context, consolidated *model.ConsolidatedProtocol, protocolIDs []int64) (*model.ConsolidatedProtocol, error) {
	dbConsolidated, err := b.protocolRepo.CreateConsolidatedProtocol(ctx, protocols.CreateConsolidatedProtocolParams{
		ProtocolIds:    protocolIDs,
		ID:             pgtype.UUID{Bytes: consolidated.ID, Valid: true},
		OwnerID:        consolidated.OwnerID,
		Title:          consolidated.Title,
		IdempotencyKey: consolidated.IdempotencyKey,
		WorkflowID:     consolidated.WorkflowID,
	})
	if err != nil {
		// The insert is guarded by a count of eligible protocols; no row means at least one was not eligible.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{
				Code:    errs.FailedPrecondition,
				Message: "all protocols must exist, be approved and not yet consolidated",
			}
		}
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "consolidated protocol is duplicated"}
		}
		rlog.Error("failed to create consolidated protocol", "consolidated_protocol_id", consolidated.ID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create consolidated protocol"}
	}

	return convertDBConsolidatedProtocolToModel(dbConsolidated), nil
}

// FinalizeConsolidatedProtocol totals the linked protocols and marks the
// consolidated protocol ready. Finalizing a ready protocol returns it unchanged.
func (b *business) FinalizeConsolidatedProtocol(ctx context.Context, id uuid.UUID) (*model.ConsolidatedProtocol, error) {
	dbConsolidated, err := b.protocolRepo.FinalizeConsolidatedProtocol(ctx, pgtype.UUID{Bytes: id, Valid: true})
	if err == nil {
		return convertDBConsolidatedProtocolToModel(dbConsolidated), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to finalize consolidated protocol"}
	}
	return b.settledConsolidatedProtocol(ctx, id, model.ConsolidatedProtocolStatusReady)
}

// MarkConsolidationFailed records why consolidation failed and releases the linked
// protocols. Marking a failed protocol again returns it unchanged.
func (b *business) MarkConsolidationFailed(ctx context.Context, id uuid.UUID, reason string) (*model.ConsolidatedProtocol, error) {
	dbConsolidated, err := b.protocolRepo.MarkConsolidatedProtocolFailed(ctx, protocols.MarkConsolidatedProtocolFailedParams{
		ID:            pgtype.UUID{Bytes: id, Valid: true},
		FailureReason: pgtype.Text{String: reason, Valid: true},
	})
	if err == nil {
		return convertDBConsolidatedProtocolToModel(dbConsolidated), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to mark consolidation as failed"}
	}
	return b.settledConsolidatedProtocol(ctx, id, model.ConsolidatedProtocolStatusFailed)
}

// settledConsolidatedProtocol resolves a transition that matched no generating row:
// it succeeds only when the protocol already reached want.
func (b *business) settledConsolidatedProtocol(ctx context.Context, id uuid.UUID, want model.ConsolidatedProtocolStatus) (*model.ConsolidatedProtocol, error) {
	current, err := b.protocolRepo.GetConsolidatedProtocol(ctx, pgtype.UUID{Bytes: id, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "consolidated protocol not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get consolidated protocol"}
	}

	if model.ConsolidatedProtocolStatus(current.Status) == want {
		return convertDBConsolidatedProtocolToModel(current), nil
	}
	return nil, &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: fmt.Sprintf("consolidated protocol is already %s", current.Status),
	}
}

func convertDBConsolidatedProtocolToModel(dbConsolidated protocols.ConsolidatedProtocol) *model.ConsolidatedProtocol {
	consolidated := &model.ConsolidatedProtocol{
		ID:               uuid.UUID(dbConsolidated.ID.Bytes),
		OwnerID:          dbConsolidated.OwnerID,
		Title:            dbConsolidated.Title,
		Status:           model.ConsolidatedProtocolStatus(dbConsolidated.Status),
		ProtocolCount:    dbConsolidated.ProtocolCount,
		TotalAmountCents: dbConsolidated.TotalAmountCents,
		IdempotencyKey:   dbConsolidated.IdempotencyKey,
		WorkflowID:       dbConsolidated.WorkflowID,
		CreatedAt:        dbConsolidated.CreatedAt.Time,
		UpdatedAt:        dbConsolidated.UpdatedAt.Time,
	}

	if dbConsolidated.FailureReason.Valid {
		consolidated.FailureReason = &dbConsolidated.FailureReason.String
	}

	if dbConsolidated.FinalizedAt.Valid {
		consolidated.FinalizedAt = &dbConsolidated.FinalizedAt.Time
	}

	return consolidated
}
