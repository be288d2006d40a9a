package operations

import (
	"context"
	"encoding/json"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/operations/idempotency"
)

type ExecuteOperationRequest struct {
	IdempotencyKey string `header:"Idempotency-Key" json:"-"`

	OperationType string          `json:"operation_type" validate:"required,max=64"`
	Payload       json.RawMessage `json:"payload" validate:"required"`
}

type ExecuteOperationResponse struct {
	Replayed bool `header:"Idempotent-Replayed" json:"-"`

	OperationType  string          `json:"operation_type"`
	IdempotencyKey string          `json:"idempotency_key"`
	Cached         bool            `json:"cached"`
	Result         json.RawMessage `json:"result"`
}

// ExecuteOperation runs an operation at most once per idempotency key. Retries with the
// same key and payload receive the original outcome.
//
//encore:api auth path=/v1/operations method=POST tag:idempotency
func (s *Service) ExecuteOperation(ctx context.Context, req *ExecuteOperationRequest) (*ExecuteOperationResponse, error) {
	ownerID, ok := s.currentUser()
	if !ok {
		return nil, &errs.Error{Code: errs.Unauthenticated, Message: "authentication required"}
	}

	result, err := s.dispatcher.Dispatch(ctx, idempotency.Request{
		Key:           req.IdempotencyKey,
		OwnerID:       ownerID,
		OperationType: req.OperationType,
		Payload:       req.Payload,
	})
	if err != nil {
		rlog.Info("operation not executed", "key", req.IdempotencyKey, "operation_type", req.OperationType, "reason", idempotency.ReasonOf(err), "error", err)
		return nil, err
	}

	return &ExecuteOperationResponse{
		Replayed:       result.Cached,
		OperationType:  result.OperationType,
		IdempotencyKey: result.Key,
		Cached:         result.Cached,
		Result:         result.Body,
	}, nil
}

// Validate implements validation for ExecuteOperationRequest using go-playground/validator
func (r *ExecuteOperationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return idempotency.MalformedRequest(err.Error())
	}
	if strings.TrimSpace(r.OperationType) != r.OperationType {
		return idempotency.MalformedRequest("operation_type must not contain surrounding whitespace")
	}
	if !idempotency.IsObject(r.Payload) {
		return idempotency.MalformedRequest("payload must be a JSON object")
	}
	return nil
}
