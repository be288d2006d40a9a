package idempotency

import (
	"errors"
	"fmt"

	"encore.dev/beta/errs"

	"encore.app/operations/model"
)

// Reason classifies dispatch errors so callers can tell them apart from
// ordinary validation errors carrying the same status code.
type Reason string

const (
	ReasonMalformedRequest     Reason = "malformed_request"
	ReasonUnsupportedOperation Reason = "unsupported_operation"
	ReasonKeyReuseMismatch     Reason = "key_reuse_mismatch"
	ReasonOperationInFlight    Reason = "operation_in_flight"
	ReasonOperationFailed      Reason = "operation_failed"
	ReasonHandlerError         Reason = "handler_error"
)

// DispatchErrorDetails is attached to every error produced by the dispatcher.
type DispatchErrorDetails struct {
	Reason         Reason `json:"reason"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

func (DispatchErrorDetails) ErrDetails() {}

// ReasonOf extracts the dispatch reason from err, or "" if err did not come from dispatch.
func ReasonOf(err error) Reason {
	var e *errs.Error
	if !errors.As(err, &e) {
		return ""
	}
	if details, ok := e.Details.(DispatchErrorDetails); ok {
		return details.Reason
	}
	return ""
}

// MalformedRequest rejects a request before any record is read or written.
func MalformedRequest(message string) *errs.Error {
	return &errs.Error{
		Code:    errs.InvalidArgument,
		Message: message,
		Details: DispatchErrorDetails{Reason: ReasonMalformedRequest},
	}
}

func unsupportedOperation(key, operationType string) *errs.Error {
	return &errs.Error{
		Code:    errs.InvalidArgument,
		Message: fmt.Sprintf("unsupported operation type %q", operationType),
		Details: DispatchErrorDetails{Reason: ReasonUnsupportedOperation, IdempotencyKey: key},
	}
}

func keyReuseMismatch(key string) *errs.Error {
	return &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: "idempotency key conflict: key was already used for a different request",
		Details: DispatchErrorDetails{Reason: ReasonKeyReuseMismatch, IdempotencyKey: key},
	}
}

func operationInFlight(key string) *errs.Error {
	return &errs.Error{
		Code:    errs.Aborted,
		Message: "request is already being processed, retry later with the same payload",
		Details: DispatchErrorDetails{Reason: ReasonOperationInFlight, IdempotencyKey: key},
	}
}

// replayFailure re-surfaces a stored failure with its original code and message.
func replayFailure(key string, detail model.FailureDetail) *errs.Error {
	return &errs.Error{
		Code:    codeFromString(detail.Code),
		Message: detail.Message,
		Details: DispatchErrorDetails{Reason: ReasonOperationFailed, IdempotencyKey: key},
		Meta:    errs.Metadata{"replayed": true},
	}
}

// handlerFailure surfaces a fresh handler failure in the same shape it will be replayed in.
func handlerFailure(key string, detail model.FailureDetail) *errs.Error {
	return &errs.Error{
		Code:    codeFromString(detail.Code),
		Message: detail.Message,
		Details: DispatchErrorDetails{Reason: ReasonHandlerError, IdempotencyKey: key},
		Meta:    errs.Metadata{"replayed": false},
	}
}

// failureDetailOf converts a handler error into its stored form. Errors that are
// not *errs.Error are stored as internal errors without their text.
func failureDetailOf(err error) model.FailureDetail {
	var e *errs.Error
	if errors.As(err, &e) {
		code := e.Code
		if code == errs.OK || code == errs.Unknown {
			code = errs.Internal
		}
		return model.FailureDetail{Code: code.String(), Message: e.Message}
	}
	return model.FailureDetail{Code: errs.Internal.String(), Message: "operation failed"}
}

func codeFromString(s string) errs.ErrCode {
	for code := errs.OK; code <= errs.Unauthenticated; code++ {
		if code.String() == s {
			return code
		}
	}
	return errs.Internal
}

func internalError(message string) *errs.Error {
	return &errs.Error{Code: errs.Internal, Message: message}
}
