package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"encore.dev/rlog"

	"encore.app/operations/idempotency"
	"encore.app/operations/model"
)

// CachedStore serves terminal records from a cache in front of a primary Store.
// Only terminal records are cached: they never change, so a hit is always
// identical to what the primary would return. Writes always go to the primary.
type CachedStore struct {
	primary idempotency.Store
	cache   RecordCache
	now     func() time.Time
}

func NewCachedStore(primary idempotency.Store, recordCache RecordCache) *CachedStore {
	return &CachedStore{
		primary: primary,
		cache:   recordCache,
		now:     time.Now,
	}
}

var _ idempotency.Store = (*CachedStore)(nil)

func (s *CachedStore) Find(ctx context.Context, key string) (*model.IdempotencyRecord, error) {
	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil && cached.Status.IsTerminal() && !cached.Expired(s.now()):
		return cached, nil
	case err != nil && !errors.Is(err, errCacheMiss):
		rlog.Warn("record cache lookup failed, falling back to primary", "key", key, "error", err)
	}

	record, err := s.primary.Find(ctx, key)
	if err != nil {
		return nil, err
	}
	s.fill(record)
	return record, nil
}

func (s *CachedStore) CreateProcessing(ctx context.Context, params idempotency.CreateParams) (*model.IdempotencyRecord, error) {
	return s.primary.CreateProcessing(ctx, params)
}

func (s *CachedStore) Complete(ctx context.Context, claim idempotency.Claim, result json.RawMessage) (*model.IdempotencyRecord, error) {
	record, err := s.primary.Complete(ctx, claim, result)
	if err != nil {
		return nil, err
	}
	s.fill(record)
	return record, nil
}

func (s *CachedStore) Fail(ctx context.Context, claim idempotency.Claim, detail model.FailureDetail) (*model.IdempotencyRecord, error) {
	record, err := s.primary.Fail(ctx, claim, detail)
	if err != nil {
		return nil, err
	}
	s.fill(record)
	return record, nil
}

func (s *CachedStore) fill(record *model.IdempotencyRecord) {
	if !record.Status.IsTerminal() {
		return
	}
	snapshot := *record
	fillAsync(record.Key, func(ctx context.Context) error {
		return s.cache.Put(ctx, &snapshot)
	})
}
