package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/operations/idempotency"
	"encore.app/operations/model"
	"encore.app/operations/repository/records"
)

// PostgresStore persists idempotency records in the idempotency_records table.
// Key uniqueness is enforced by the primary key; expired rows are replaced in
// the same statement that claims the key.
type PostgresStore struct {
	recordRepo records.Querier
	now        func() time.Time
}

func NewPostgresStore(recordRepo records.Querier) *PostgresStore {
	return &PostgresStore{
		recordRepo: recordRepo,
		now:        time.Now,
	}
}

var (
	_ idempotency.Store      = (*PostgresStore)(nil)
	_ idempotency.Maintainer = (*PostgresStore)(nil)
)

func (s *PostgresStore) Find(ctx context.Context, key string) (*model.IdempotencyRecord, error) {
	dbRecord, err := s.recordRepo.GetLiveRecord(ctx, records.GetLiveRecordParams{
		Key: key,
		Now: timestamptz(s.now()),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, idempotency.ErrRecordNotFound
		}
		return nil, fmt.Errorf("get idempotency record %q: %w", key, err)
	}
	return convertDBRecordToModel(dbRecord)
}

func (s *PostgresStore) CreateProcessing(ctx context.Context, params idempotency.CreateParams) (*model.IdempotencyRecord, error) {
	dbRecord, err := s.recordRepo.CreateProcessingRecord(ctx, records.CreateProcessingRecordParams{
		Key:                params.Key,
		OwnerID:            params.OwnerID,
		OperationType:      params.OperationType,
		RequestFingerprint: params.Fingerprint,
		// created_at identifies the claim, so keep it at the column's precision.
		CreatedAt: timestamptz(s.now().Truncate(time.Microsecond)),
		ExpiresAt:          nullableTimestamptz(params.ExpiresAt),
	})
	if err != nil {
		// The upsert only returns a row when it inserted or replaced an expired record.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, idempotency.ErrKeyAlreadyExists
		}
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, idempotency.ErrKeyAlreadyExists
		}
		return nil, fmt.Errorf("create idempotency record %q: %w", params.Key, err)
	}
	return convertDBRecordToModel(dbRecord)
}

func (s *PostgresStore) Complete(ctx context.Context, claim idempotency.Claim, result json.RawMessage) (*model.IdempotencyRecord, error) {
	dbRecord, err := s.recordRepo.CompleteRecord(ctx, records.CompleteRecordParams{
		Key:                claim.Key,
		Result:             result,
		CompletedAt:        timestamptz(s.now()),
		RequestFingerprint: claim.Fingerprint,
		CreatedAt:          timestamptz(claim.CreatedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.classifyMissedUpdate(ctx, claim)
		}
		return nil, fmt.Errorf("complete idempotency record %q: %w", claim.Key, err)
	}
	return convertDBRecordToModel(dbRecord)
}

func (s *PostgresStore) Fail(ctx context.Context, claim idempotency.Claim, detail model.FailureDetail) (*model.IdempotencyRecord, error) {
	failureDetail, err := json.Marshal(detail)
	if err != nil {
		return nil, fmt.Errorf("marshal failure detail: %w", err)
	}

	dbRecord, err := s.recordRepo.FailRecord(ctx, records.FailRecordParams{
		Key:                claim.Key,
		FailureDetail:      failureDetail,
		CompletedAt:        timestamptz(s.now()),
		RequestFingerprint: claim.Fingerprint,
		CreatedAt:          timestamptz(claim.CreatedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.classifyMissedUpdate(ctx, claim)
		}
		return nil, fmt.Errorf("fail idempotency record %q: %w", claim.Key, err)
	}
	return convertDBRecordToModel(dbRecord)
}

// classifyMissedUpdate explains why a conditional update matched no row: the
// record is gone, was reclaimed by a newer request, or is already terminal.
func (s *PostgresStore) classifyMissedUpdate(ctx context.Context, claim idempotency.Claim) error {
	record, err := s.Find(ctx, claim.Key)
	switch {
	case err == nil && !claim.Owns(record):
		return idempotency.ErrClaimLost
	case err == nil:
		return idempotency.ErrRecordFinalized
	case errors.Is(err, idempotency.ErrRecordNotFound):
		return idempotency.ErrRecordNotFound
	default:
		return err
	}
}

func (s *PostgresStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	purged, err := s.recordRepo.DeleteExpiredRecords(ctx, timestamptz(now))
	if err != nil {
		return 0, fmt.Errorf("delete expired idempotency records: %w", err)
	}
	return purged, nil
}

func (s *PostgresStore) ListStale(ctx context.Context, createdBefore time.Time, limit int32) ([]*model.IdempotencyRecord, error) {
	if limit <= 0 {
		limit = math.MaxInt32
	}
	dbRecords, err := s.recordRepo.ListStaleRecords(ctx, records.ListStaleRecordsParams{
		CreatedAt: timestamptz(createdBefore),
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list stale idempotency records: %w", err)
	}

	result := make([]*model.IdempotencyRecord, 0, len(dbRecords))
	for _, dbRecord := range dbRecords {
		record, err := convertDBRecordToModel(dbRecord)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, nil
}

// convertDBRecordToModel converts a database record to a domain model record
func convertDBRecordToModel(dbRecord records.IdempotencyRecord) (*model.IdempotencyRecord, error) {
	record := &model.IdempotencyRecord{
		Key:                dbRecord.Key,
		OwnerID:            dbRecord.OwnerID,
		OperationType:      dbRecord.OperationType,
		RequestFingerprint: dbRecord.RequestFingerprint,
		Status:             model.RecordStatus(dbRecord.Status),
		CreatedAt:          dbRecord.CreatedAt.Time,
	}

	if len(dbRecord.Result) > 0 {
		record.Result = json.RawMessage(dbRecord.Result)
	}

	if len(dbRecord.FailureDetail) > 0 {
		var detail model.FailureDetail
		if err := json.Unmarshal(dbRecord.FailureDetail, &detail); err != nil {
			return nil, fmt.Errorf("decode failure detail of %q: %w", dbRecord.Key, err)
		}
		record.FailureDetail = &detail
	}

	if dbRecord.CompletedAt.Valid {
		record.CompletedAt = &dbRecord.CompletedAt.Time
	}

	if dbRecord.ExpiresAt.Valid {
		record.ExpiresAt = &dbRecord.ExpiresAt.Time
	}

	return record, nil
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func nullableTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return timestamptz(*t)
}
