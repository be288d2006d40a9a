package operations

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type ListStaleOperationsRequest struct {
	OlderThanMinutes int `query:"older_than_minutes" validate:"required,gt=0"`
	Limit            int `query:"limit" validate:"omitempty,gt=0,max=1000"`
}

type StaleOperation struct {
	IdempotencyKey string    `json:"idempotency_key"`
	OwnerID        string    `json:"owner_id"`
	OperationType  string    `json:"operation_type"`
	CreatedAt      time.Time `json:"created_at"`
	AgeSeconds     int64     `json:"age_seconds"`
}

type ListStaleOperationsResponse struct {
	Operations []StaleOperation `json:"operations"`
	OlderThan  time.Time        `json:"older_than"`
}

// ListStaleOperations reports keys stuck in processing for operator review.
// Stuck keys are never reclaimed automatically; retries keep receiving in-flight errors.
//
//encore:api private path=/internal/operations/stale method=GET
func (s *Service) ListStaleOperations(ctx context.Context, req *ListStaleOperationsRequest) (*ListStaleOperationsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 100
	}

	now := time.Now()
	olderThan := now.Add(-time.Duration(req.OlderThanMinutes) * time.Minute)

	stale, err := s.maintainer.ListStale(ctx, olderThan, int32(req.Limit))
	if err != nil {
		rlog.Error("failed to list stale operations", "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list stale operations"}
	}

	response := &ListStaleOperationsResponse{
		Operations: make([]StaleOperation, len(stale)),
		OlderThan:  olderThan,
	}
	for i, record := range stale {
		response.Operations[i] = StaleOperation{
			IdempotencyKey: record.Key,
			OwnerID:        record.OwnerID,
			OperationType:  record.OperationType,
			CreatedAt:      record.CreatedAt,
			AgeSeconds:     int64(now.Sub(record.CreatedAt).Seconds()),
		}
	}

	if len(stale) > 0 {
		rlog.Warn("stale operations found", "count", len(stale), "older_than", olderThan)
	}
	return response, nil
}

// Validate implements validation for ListStaleOperationsRequest using go-playground/validator
func (r *ListStaleOperationsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
