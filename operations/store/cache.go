package store

import (
	"context"
	"errors"
	"time"

	"encore.dev/storage/cache"

	"encore.app/operations/model"
)

// RecordCluster is the cache cluster for terminal idempotency records
var RecordCluster = cache.NewCluster("idempotency-records", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// RecordKeyspace holds terminal records by key. Entries never outlive the record's own TTL.
var RecordKeyspace = cache.NewStructKeyspace[model.RecordCacheKey, model.IdempotencyRecord](
	RecordCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)

var errCacheMiss = errors.New("record cache miss")

// RecordCache is a best-effort secondary copy of terminal records.
type RecordCache interface {
	Get(ctx context.Context, key string) (*model.IdempotencyRecord, error)
	Put(ctx context.Context, record *model.IdempotencyRecord) error
}

type encoreRecordCache struct {
	keyspace *cache.StructKeyspace[model.RecordCacheKey, model.IdempotencyRecord]
	now      func() time.Time
}

// NewEncoreRecordCache returns a RecordCache backed by RecordKeyspace.
func NewEncoreRecordCache() RecordCache {
	return &encoreRecordCache{keyspace: RecordKeyspace, now: time.Now}
}

func (c *encoreRecordCache) Get(ctx context.Context, key string) (*model.IdempotencyRecord, error) {
	record, err := c.keyspace.Get(ctx, model.RecordCacheKey{Key: key})
	if err != nil {
		if errors.Is(err, cache.Miss) {
			return nil, errCacheMiss
		}
		return nil, err
	}
	return &record, nil
}

func (c *encoreRecordCache) Put(ctx context.Context, record *model.IdempotencyRecord) error {
	keyspace := c.keyspace
	if record.ExpiresAt != nil {
		ttl := record.ExpiresAt.Sub(c.now())
		if ttl <= 0 {
			return nil
		}
		keyspace = keyspace.With(cache.ExpireIn(ttl))
	}
	return keyspace.Set(ctx, model.RecordCacheKey{Key: record.Key}, *record)
}
