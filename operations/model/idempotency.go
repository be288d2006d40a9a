package model

import (
	"encoding/json"
	"time"
)

type RecordStatus string

const (
	RecordStatusProcessing RecordStatus = "processing"
	RecordStatusCompleted  RecordStatus = "completed"
	RecordStatusFailed     RecordStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s RecordStatus) IsTerminal() bool {
	return s == RecordStatusCompleted || s == RecordStatusFailed
}

// CanTransitionTo reports whether a record in status s may move to next.
// Only processing -> completed and processing -> failed are valid.
func (s RecordStatus) CanTransitionTo(next RecordStatus) bool {
	return s == RecordStatusProcessing && next.IsTerminal()
}

// IdempotencyRecord is the durable outcome of one logical operation attempt.
type IdempotencyRecord struct {
	Key                string          `json:"key"`
	OwnerID            string          `json:"owner_id"`
	OperationType      string          `json:"operation_type"`
	RequestFingerprint string          `json:"request_fingerprint"`
	Status             RecordStatus    `json:"status"`
	Result             json.RawMessage `json:"result,omitempty"`
	FailureDetail      *FailureDetail  `json:"failure_detail,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	ExpiresAt          *time.Time      `json:"expires_at,omitempty"`
}

// Expired reports whether the record is past its TTL at now.
func (r *IdempotencyRecord) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && !r.ExpiresAt.After(now)
}

// FailureDetail is the stored form of a handler failure, replayed verbatim.
type FailureDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RecordCacheKey represents the cache key structure
type RecordCacheKey struct {
	Key string
}
