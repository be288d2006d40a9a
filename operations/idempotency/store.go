package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"encore.app/operations/model"
)

var (
	// ErrRecordNotFound is returned when no live record exists for a key.
	ErrRecordNotFound = errors.New("idempotency record not found")
	// ErrKeyAlreadyExists is returned by CreateProcessing when another caller owns the key.
	ErrKeyAlreadyExists = errors.New("idempotency key already exists")
	// ErrRecordFinalized is returned by Complete and Fail when the record is already terminal.
	ErrRecordFinalized = errors.New("idempotency record already finalized")
	// ErrClaimLost is returned by Complete and Fail when the key expired and was
	// claimed again by a newer request.
	ErrClaimLost = errors.New("idempotency record claimed by a newer request")
)

// Store is durable, key-addressed storage of idempotency records.
//
// CreateProcessing must be atomic with respect to key uniqueness: when two callers
// race on the same key exactly one succeeds and the other gets ErrKeyAlreadyExists.
// Expired records are invisible to Find and may be replaced by CreateProcessing.
// Complete and Fail only finish the record their Claim created.
type Store interface {
	Find(ctx context.Context, key string) (*model.IdempotencyRecord, error)
	CreateProcessing(ctx context.Context, params CreateParams) (*model.IdempotencyRecord, error)
	Complete(ctx context.Context, claim Claim, result json.RawMessage) (*model.IdempotencyRecord, error)
	Fail(ctx context.Context, claim Claim, detail model.FailureDetail) (*model.IdempotencyRecord, error)
}

// Maintainer covers the operator side of a Store: TTL purging and stale reporting.
type Maintainer interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
	ListStale(ctx context.Context, createdBefore time.Time, limit int32) ([]*model.IdempotencyRecord, error)
}

type CreateParams struct {
	Key           string
	OwnerID       string
	OperationType string
	Fingerprint   string
	ExpiresAt     *time.Time
}

// Claim identifies the processing record one CreateProcessing call produced.
type Claim struct {
	Key         string
	Fingerprint string
	CreatedAt   time.Time
}

func ClaimOf(record *model.IdempotencyRecord) Claim {
	return Claim{
		Key:         record.Key,
		Fingerprint: record.RequestFingerprint,
		CreatedAt:   record.CreatedAt,
	}
}

// Owns reports whether record is the one this claim created.
func (c Claim) Owns(record *model.IdempotencyRecord) bool {
	return record.Key == c.Key &&
		record.RequestFingerprint == c.Fingerprint &&
		record.CreatedAt.Equal(c.CreatedAt)
}
