package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/operations/idempotency"
	"encore.app/operations/mocks/idempotency/record_store"
	"encore.app/operations/model"
)

type fakeRecordCache struct {
	mu      sync.Mutex
	records map[string]model.IdempotencyRecord
	getErr  error
	puts    int
}

func newFakeRecordCache() *fakeRecordCache {
	return &fakeRecordCache{records: make(map[string]model.IdempotencyRecord)}
}

func (c *fakeRecordCache) Get(ctx context.Context, key string) (*model.IdempotencyRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	record, ok := c.records[key]
	if !ok {
		return nil, errCacheMiss
	}
	return &record, nil
}

func (c *fakeRecordCache) Put(ctx context.Context, record *model.IdempotencyRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	c.records[record.Key] = *record
	return nil
}

func fillSynchronously(t *testing.T) {
	t.Helper()
	original := fillAsync
	fillAsync = func(key string, put func(ctx context.Context) error) {
		_ = put(context.Background())
	}
	t.Cleanup(func() { fillAsync = original })
}

func completedRecord(key string) *model.IdempotencyRecord {
	completedAt := testNow
	return &model.IdempotencyRecord{
		Key:                key,
		OwnerID:            "user-1",
		OperationType:      "create_expense",
		RequestFingerprint: "fp-1",
		Status:             model.RecordStatusCompleted,
		Result:             json.RawMessage(`{"success":true}`),
		CreatedAt:          testNow,
		CompletedAt:        &completedAt,
	}
}

func TestCachedStore_CacheHitSkipsPrimary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: any primary call fails the test.
	primary := record_store.NewMockStore(ctrl)
	recordCache := newFakeRecordCache()
	recordCache.records["k"] = *completedRecord("k")

	store := NewCachedStore(primary, recordCache)
	record, err := store.Find(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, model.RecordStatusCompleted, record.Status)
	assert.JSONEq(t, `{"success":true}`, string(record.Result))
}

func TestCachedStore_Find(t *testing.T) {
	expired := completedRecord("k")
	past := time.Now().Add(-time.Minute)
	expired.ExpiresAt = &past

	processing := completedRecord("k")
	processing.Status = model.RecordStatusProcessing
	processing.Result = nil
	processing.CompletedAt = nil

	testCases := []struct {
		name          string
		cached        *model.IdempotencyRecord
		cacheErr      error
		primaryRecord *model.IdempotencyRecord
		primaryErr    error
		expectedError error
		expectFill    bool
	}{
		{
			name:          "miss_reads_primary_and_fills",
			primaryRecord: completedRecord("k"),
			expectFill:    true,
		},
		{
			name:          "cache_error_falls_back_to_primary",
			cacheErr:      errors.New("redis: connection refused"),
			primaryRecord: completedRecord("k"),
			expectFill:    true,
		},
		{
			name:          "expired_cache_entry_is_ignored",
			cached:        expired,
			primaryErr:    idempotency.ErrRecordNotFound,
			expectedError: idempotency.ErrRecordNotFound,
		},
		{
			name:          "processing_record_is_not_cached",
			primaryRecord: processing,
		},
		{
			name:          "primary_miss",
			primaryErr:    idempotency.ErrRecordNotFound,
			expectedError: idempotency.ErrRecordNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fillSynchronously(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			primary := record_store.NewMockStore(ctrl)
			recordCache := newFakeRecordCache()
			recordCache.getErr = tc.cacheErr
			if tc.cached != nil {
				recordCache.records["k"] = *tc.cached
			}

			primary.EXPECT().Find(gomock.Any(), "k").Return(tc.primaryRecord, tc.primaryErr)

			store := NewCachedStore(primary, recordCache)
			record, err := store.Find(context.Background(), "k")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, record)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.primaryRecord, record)
			}
			if tc.expectFill {
				assert.Equal(t, 1, recordCache.puts)
			} else {
				assert.Equal(t, 0, recordCache.puts)
			}
		})
	}
}

func TestCachedStore_WritesGoToPrimary(t *testing.T) {
	fillSynchronously(t)
	ctx := context.Background()
	primary := idempotency.NewMemoryStore(nil)
	recordCache := newFakeRecordCache()
	store := NewCachedStore(primary, recordCache)

	created, err := store.CreateProcessing(ctx, idempotency.CreateParams{
		Key:           "k",
		OwnerID:       "user-1",
		OperationType: "create_expense",
		Fingerprint:   "fp-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, recordCache.puts)

	_, err = store.Complete(ctx, idempotency.ClaimOf(created), json.RawMessage(`{"id":1}`))
	require.NoError(t, err)
	assert.Equal(t, 1, recordCache.puts)
	assert.Equal(t, model.RecordStatusCompleted, recordCache.records["k"].Status)

	_, err = store.Complete(ctx, idempotency.ClaimOf(created), json.RawMessage(`{"id":2}`))
	assert.ErrorIs(t, err, idempotency.ErrRecordFinalized)
	assert.Equal(t, 1, recordCache.puts)
	assert.JSONEq(t, `{"id":1}`, string(recordCache.records["k"].Result))

	created, err = store.CreateProcessing(ctx, idempotency.CreateParams{Key: "f", OwnerID: "user-1", OperationType: "create_expense", Fingerprint: "fp-2"})
	require.NoError(t, err)
	_, err = store.Fail(ctx, idempotency.ClaimOf(created), model.FailureDetail{Code: "not_found", Message: "payment not found"})
	require.NoError(t, err)
	assert.Equal(t, model.RecordStatusFailed, recordCache.records["f"].Status)
}

func TestCachedStore_LostClaimIsNotCached(t *testing.T) {
	fillSynchronously(t)
	recordCache := newFakeRecordCache()
	store := NewCachedStore(idempotency.NewMemoryStore(nil), recordCache)

	_, err := store.Complete(context.Background(), idempotency.Claim{Key: "k", Fingerprint: "fp-1"}, json.RawMessage(`{"id":1}`))
	assert.ErrorIs(t, err, idempotency.ErrRecordNotFound)
	assert.Equal(t, 0, recordCache.puts)
}

func TestCachedStore_DispatcherReplaysFromCache(t *testing.T) {
	fillSynchronously(t)
	recordCache := newFakeRecordCache()
	store := NewCachedStore(idempotency.NewMemoryStore(nil), recordCache)

	calls := 0
	registry, err := idempotency.NewRegistry(idempotency.HandlerFunc("create_expense",
		func(ctx context.Context, payload json.RawMessage, ownerID string) (any, error) {
			calls++
			return map[string]any{"success": true}, nil
		}))
	require.NoError(t, err)
	dispatcher := idempotency.NewDispatcher(store, registry)

	req := idempotency.Request{
		Key:           "pay-req-42",
		OwnerID:       "user-1",
		OperationType: "create_expense",
		Payload:       json.RawMessage(`{"amount":150.00,"description":"travel"}`),
	}
	first, err := dispatcher.Dispatch(context.Background(), req)
	require.NoError(t, err)
	second, err := dispatcher.Dispatch(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.JSONEq(t, string(first.Body), string(second.Body))
	assert.Equal(t, 1, calls)
	assert.Contains(t, recordCache.records, "pay-req-42")
}

func TestFillInBackground(t *testing.T) {
	done := make(chan bool, 1)
	fillInBackground("pay-req-42", func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		done <- hasDeadline
		return errors.New("cache unavailable")
	})

	select {
	case hasDeadline := <-done:
		assert.True(t, hasDeadline)
	case <-time.After(time.Second):
		t.Fatal("cache fill did not run")
	}
}
