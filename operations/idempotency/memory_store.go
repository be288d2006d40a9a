package idempotency

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"encore.app/operations/model"
)

// MemoryStore is an in-process Store. It is safe for concurrent use and suits
// tests and single-instance deployments; records do not survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*model.IdempotencyRecord
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store. A nil clock defaults to time.Now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		records: make(map[string]*model.IdempotencyRecord),
		now:     now,
	}
}

func (s *MemoryStore) Find(ctx context.Context, key string) (*model.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.liveLocked(key)
	if !ok {
		return nil, ErrRecordNotFound
	}
	return cloneRecord(record), nil
}

// CreateProcessing inserts a processing record unless a live record holds the key.
func (s *MemoryStore) CreateProcessing(ctx context.Context, params CreateParams) (*model.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.liveLocked(params.Key); ok {
		return nil, ErrKeyAlreadyExists
	}

	record := &model.IdempotencyRecord{
		Key:                params.Key,
		OwnerID:            params.OwnerID,
		OperationType:      params.OperationType,
		RequestFingerprint: params.Fingerprint,
		Status:             model.RecordStatusProcessing,
		CreatedAt:          s.now(),
	}
	if params.ExpiresAt != nil {
		expiresAt := *params.ExpiresAt
		record.ExpiresAt = &expiresAt
	}
	s.records[params.Key] = record

	return cloneRecord(record), nil
}

func (s *MemoryStore) Complete(ctx context.Context, claim Claim, result json.RawMessage) (*model.IdempotencyRecord, error) {
	return s.finish(claim, model.RecordStatusCompleted, func(record *model.IdempotencyRecord) {
		record.Result = append(json.RawMessage(nil), result...)
	})
}

func (s *MemoryStore) Fail(ctx context.Context, claim Claim, detail model.FailureDetail) (*model.IdempotencyRecord, error) {
	return s.finish(claim, model.RecordStatusFailed, func(record *model.IdempotencyRecord) {
		record.FailureDetail = &detail
	})
}

func (s *MemoryStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int64
	for key, record := range s.records {
		if record.Expired(now) {
			delete(s.records, key)
			purged++
		}
	}
	return purged, nil
}

func (s *MemoryStore) ListStale(ctx context.Context, createdBefore time.Time, limit int32) ([]*model.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stale := make([]*model.IdempotencyRecord, 0)
	for _, record := range s.records {
		if record.Status != model.RecordStatusProcessing || record.Expired(now) {
			continue
		}
		if record.CreatedAt.Before(createdBefore) {
			stale = append(stale, cloneRecord(record))
		}
	}

	sort.Slice(stale, func(i, j int) bool {
		return stale[i].CreatedAt.Before(stale[j].CreatedAt)
	})
	if limit > 0 && len(stale) > int(limit) {
		stale = stale[:limit]
	}
	return stale, nil
}

func (s *MemoryStore) finish(claim Claim, status model.RecordStatus, apply func(*model.IdempotencyRecord)) (*model.IdempotencyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[claim.Key]
	if !ok {
		return nil, ErrRecordNotFound
	}
	if !claim.Owns(record) {
		return nil, ErrClaimLost
	}
	if !record.Status.CanTransitionTo(status) {
		return nil, ErrRecordFinalized
	}

	completedAt := s.now()
	record.Status = status
	record.CompletedAt = &completedAt
	apply(record)

	return cloneRecord(record), nil
}

// liveLocked returns the record for key if it exists and has not expired.
// Must be called with the lock held.
func (s *MemoryStore) liveLocked(key string) (*model.IdempotencyRecord, bool) {
	record, ok := s.records[key]
	if !ok {
		return nil, false
	}
	if record.Expired(s.now()) {
		delete(s.records, key)
		return nil, false
	}
	return record, true
}

func cloneRecord(record *model.IdempotencyRecord) *model.IdempotencyRecord {
	clone := *record
	if record.Result != nil {
		clone.Result = append(json.RawMessage(nil), record.Result...)
	}
	if record.FailureDetail != nil {
		detail := *record.FailureDetail
		clone.FailureDetail = &detail
	}
	if record.CompletedAt != nil {
		completedAt := *record.CompletedAt
		clone.CompletedAt = &completedAt
	}
	if record.ExpiresAt != nil {
		expiresAt := *record.ExpiresAt
		clone.ExpiresAt = &expiresAt
	}
	return &clone
}

var _ Store = (*MemoryStore)(nil)
var _ Maintainer = (*MemoryStore)(nil)
