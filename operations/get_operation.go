package operations

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/operations/idempotency"
	"encore.app/operations/model"
)

type OperationResponse struct {
	IdempotencyKey string               `json:"idempotency_key"`
	OperationType  string               `json:"operation_type"`
	Status         model.RecordStatus   `json:"status"`
	Result         json.RawMessage      `json:"result,omitempty"`
	Failure        *model.FailureDetail `json:"failure,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	CompletedAt    *time.Time           `json:"completed_at,omitempty"`
	ExpiresAt      *time.Time           `json:"expires_at,omitempty"`
}

// GetOperation reports the state of one of the caller's idempotency keys.
//
//encore:api auth path=/v1/operations/:key method=GET
func (s *Service) GetOperation(ctx context.Context, key string) (*OperationResponse, error) {
	ownerID, ok := s.currentUser()
	if !ok {
		return nil, &errs.Error{Code: errs.Unauthenticated, Message: "authentication required"}
	}

	record, err := s.records.Find(ctx, key)
	if err != nil {
		if errors.Is(err, idempotency.ErrRecordNotFound) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "operation not found"}
		}
		rlog.Error("failed to get operation", "error", err, "key", key)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get operation"}
	}

	// Keys are global; other owners' records are indistinguishable from missing ones.
	if record.OwnerID != ownerID {
		return nil, &errs.Error{Code: errs.NotFound, Message: "operation not found"}
	}

	return &OperationResponse{
		IdempotencyKey: record.Key,
		OperationType:  record.OperationType,
		Status:         record.Status,
		Result:         record.Result,
		Failure:        record.FailureDetail,
		CreatedAt:      record.CreatedAt,
		CompletedAt:    record.CompletedAt,
		ExpiresAt:      record.ExpiresAt,
	}, nil
}
