package idempotency

import (
	"strings"
	"unicode"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
)

var (
	IDEMPOTENCY_HEADER = "Idempotency-Key"
)

// maxKeyLength bounds the Idempotency-Key header, in bytes.
const maxKeyLength = 255

// IdempotencyMiddleware rejects requests without a usable idempotency key before the endpoint runs.
//
//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		rlog.Info("rejected request without a valid idempotency key", "path", req.Data().Path, "error", err.Message)
		return middleware.Response{Err: err}
	}

	rlog.Debug("idempotency key accepted", "key", idempotencyKey)
	return next(req)
}

// extractIdempotencyKey extracts and validates the idempotency key from headers
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = headers.Get(IDEMPOTENCY_HEADER)
	}

	if strings.TrimSpace(idempotencyKey) == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "Idempotency-Key header is required"}
	}

	if len(idempotencyKey) > maxKeyLength {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "Idempotency-Key header must be at most 255 bytes"}
	}

	if strings.IndexFunc(idempotencyKey, unicode.IsControl) >= 0 {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "Idempotency-Key header must not contain control characters"}
	}

	return idempotencyKey, nil
}
