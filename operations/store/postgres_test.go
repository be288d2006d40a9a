package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/operations/idempotency"
	"encore.app/operations/mocks/repository/record_repo"
	"encore.app/operations/model"
	"encore.app/operations/repository/records"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPostgresStore(repo records.Querier) *PostgresStore {
	s := NewPostgresStore(repo)
	s.now = func() time.Time { return testNow }
	return s
}

func processingRow(key string) records.IdempotencyRecord {
	return records.IdempotencyRecord{
		Key:                key,
		OwnerID:            "user-1",
		OperationType:      "create_expense",
		RequestFingerprint: "fp-1",
		Status:             string(model.RecordStatusProcessing),
		CreatedAt:          pgtype.Timestamptz{Time: testNow, Valid: true},
		ExpiresAt:          pgtype.Timestamptz{Time: testNow.Add(24 * time.Hour), Valid: true},
	}
}

func TestPostgresStore_Find(t *testing.T) {
	completed := processingRow("pay-req-42")
	completed.Status = string(model.RecordStatusCompleted)
	completed.Result = []byte(`{"success":true}`)
	completed.CompletedAt = pgtype.Timestamptz{Time: testNow.Add(time.Second), Valid: true}

	failed := processingRow("pay-req-43")
	failed.Status = string(model.RecordStatusFailed)
	failed.FailureDetail = []byte(`{"code":"not_found","message":"payment not found"}`)
	failed.CompletedAt = pgtype.Timestamptz{Time: testNow.Add(time.Second), Valid: true}

	corrupt := processingRow("pay-req-44")
	corrupt.Status = string(model.RecordStatusFailed)
	corrupt.FailureDetail = []byte(`{"code":`)

	testCases := []struct {
		name           string
		key            string
		mockReturn     records.IdempotencyRecord
		mockError      error
		expectedError  error
		expectedString string
		check          func(t *testing.T, record *model.IdempotencyRecord)
	}{
		{
			name:       "completed_record",
			key:        "pay-req-42",
			mockReturn: completed,
			check: func(t *testing.T, record *model.IdempotencyRecord) {
				assert.Equal(t, model.RecordStatusCompleted, record.Status)
				assert.JSONEq(t, `{"success":true}`, string(record.Result))
				assert.Nil(t, record.FailureDetail)
				require.NotNil(t, record.CompletedAt)
				require.NotNil(t, record.ExpiresAt)
				assert.Equal(t, testNow.Add(24*time.Hour), *record.ExpiresAt)
			},
		},
		{
			name:       "failed_record",
			key:        "pay-req-43",
			mockReturn: failed,
			check: func(t *testing.T, record *model.IdempotencyRecord) {
				assert.Equal(t, model.RecordStatusFailed, record.Status)
				assert.Nil(t, record.Result)
				require.NotNil(t, record.FailureDetail)
				assert.Equal(t, model.FailureDetail{Code: "not_found", Message: "payment not found"}, *record.FailureDetail)
			},
		},
		{
			name:          "not_found",
			key:           "missing",
			mockError:     pgx.ErrNoRows,
			expectedError: idempotency.ErrRecordNotFound,
		},
		{
			name:           "database_error",
			key:            "pay-req-42",
			mockError:      errors.New("connection refused"),
			expectedString: "connection refused",
		},
		{
			name:           "corrupt_failure_detail",
			key:            "pay-req-44",
			mockReturn:     corrupt,
			expectedString: "decode failure detail",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRecordRepo := record_repo.NewMockQuerier(ctrl)
			store := newTestPostgresStore(mockRecordRepo)

			mockRecordRepo.EXPECT().
				GetLiveRecord(gomock.Any(), records.GetLiveRecordParams{
					Key: tc.key,
					Now: pgtype.Timestamptz{Time: testNow, Valid: true},
				}).
				Return(tc.mockReturn, tc.mockError)

			record, err := store.Find(context.Background(), tc.key)

			switch {
			case tc.expectedError != nil:
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, record)
			case tc.expectedString != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedString)
				assert.Nil(t, record)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.key, record.Key)
				tc.check(t, record)
			}
		})
	}
}

func TestPostgresStore_CreateProcessing(t *testing.T) {
	expiresAt := testNow.Add(24 * time.Hour)

	testCases := []struct {
		name          string
		expiresAt     *time.Time
		mockError     error
		expectedError error
		expectSuccess bool
	}{
		{
			name:          "created_with_ttl",
			expiresAt:     &expiresAt,
			expectSuccess: true,
		},
		{
			name:          "created_without_ttl",
			expectSuccess: true,
		},
		{
			name:          "live_record_holds_key",
			expiresAt:     &expiresAt,
			mockError:     pgx.ErrNoRows,
			expectedError: idempotency.ErrKeyAlreadyExists,
		},
		{
			name:          "unique_violation",
			expiresAt:     &expiresAt,
			mockError:     &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectedError: idempotency.ErrKeyAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRecordRepo := record_repo.NewMockQuerier(ctrl)
			store := newTestPostgresStore(mockRecordRepo)

			expectedExpiry := pgtype.Timestamptz{Valid: false}
			if tc.expiresAt != nil {
				expectedExpiry = pgtype.Timestamptz{Time: *tc.expiresAt, Valid: true}
			}
			row := processingRow("k")
			row.ExpiresAt = expectedExpiry

			mockRecordRepo.EXPECT().
				CreateProcessingRecord(gomock.Any(), records.CreateProcessingRecordParams{
					Key:                "k",
					OwnerID:            "user-1",
					OperationType:      "create_expense",
					RequestFingerprint: "fp-1",
					CreatedAt:          pgtype.Timestamptz{Time: testNow, Valid: true},
					ExpiresAt:          expectedExpiry,
				}).
				Return(row, tc.mockError)

			record, err := store.CreateProcessing(context.Background(), idempotency.CreateParams{
				Key:           "k",
				OwnerID:       "user-1",
				OperationType: "create_expense",
				Fingerprint:   "fp-1",
				ExpiresAt:     tc.expiresAt,
			})

			if tc.expectSuccess {
				require.NoError(t, err)
				assert.Equal(t, model.RecordStatusProcessing, record.Status)
				assert.Equal(t, tc.expiresAt == nil, record.ExpiresAt == nil)
			} else {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, record)
			}
		})
	}
}

func TestPostgresStore_CreateProcessing_DatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := record_repo.NewMockQuerier(ctrl)
	store := newTestPostgresStore(mockRecordRepo)

	mockRecordRepo.EXPECT().
		CreateProcessingRecord(gomock.Any(), gomock.Any()).
		Return(records.IdempotencyRecord{}, errors.New("connection refused"))

	_, err := store.CreateProcessing(context.Background(), idempotency.CreateParams{Key: "k"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, idempotency.ErrKeyAlreadyExists)
	assert.Contains(t, err.Error(), "connection refused")
}

var testClaim = idempotency.Claim{Key: "k", Fingerprint: "fp-1", CreatedAt: testNow}

func TestPostgresStore_Complete(t *testing.T) {
	completed := processingRow("k")
	completed.Status = string(model.RecordStatusCompleted)
	completed.Result = []byte(`{"id":1}`)
	completed.CompletedAt = pgtype.Timestamptz{Time: testNow, Valid: true}

	reclaimed := processingRow("k")
	reclaimed.RequestFingerprint = "fp-2"
	reclaimed.CreatedAt = pgtype.Timestamptz{Time: testNow.Add(2 * time.Hour), Valid: true}

	testCases := []struct {
		name           string
		mockError      error
		expectLookup   bool
		lookupRow      records.IdempotencyRecord
		lookupError    error
		expectedError  error
		expectedString string
	}{
		{
			name: "processing_record_completed",
		},
		{
			name:          "already_terminal",
			mockError:     pgx.ErrNoRows,
			expectLookup:  true,
			lookupRow:     completed,
			expectedError: idempotency.ErrRecordFinalized,
		},
		{
			name:          "key_reclaimed_by_newer_request",
			mockError:     pgx.ErrNoRows,
			expectLookup:  true,
			lookupRow:     reclaimed,
			expectedError: idempotency.ErrClaimLost,
		},
		{
			name:          "missing_record",
			mockError:     pgx.ErrNoRows,
			expectLookup:  true,
			lookupError:   pgx.ErrNoRows,
			expectedError: idempotency.ErrRecordNotFound,
		},
		{
			name:           "database_error",
			mockError:      errors.New("connection refused"),
			expectedString: "complete idempotency record",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRecordRepo := record_repo.NewMockQuerier(ctrl)
			store := newTestPostgresStore(mockRecordRepo)

			mockRecordRepo.EXPECT().
				CompleteRecord(gomock.Any(), records.CompleteRecordParams{
					Key:                "k",
					Result:             []byte(`{"id":1}`),
					CompletedAt:        pgtype.Timestamptz{Time: testNow, Valid: true},
					RequestFingerprint: "fp-1",
					CreatedAt:          pgtype.Timestamptz{Time: testNow, Valid: true},
				}).
				Return(completed, tc.mockError)

			if tc.expectLookup {
				mockRecordRepo.EXPECT().
					GetLiveRecord(gomock.Any(), gomock.Any()).
					Return(tc.lookupRow, tc.lookupError)
			}

			record, err := store.Complete(context.Background(), testClaim, json.RawMessage(`{"id":1}`))

			switch {
			case tc.expectedError != nil:
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, record)
			case tc.expectedString != "":
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedString)
			default:
				require.NoError(t, err)
				assert.Equal(t, model.RecordStatusCompleted, record.Status)
				assert.JSONEq(t, `{"id":1}`, string(record.Result))
			}
		})
	}
}

func TestPostgresStore_Fail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := record_repo.NewMockQuerier(ctrl)
	store := newTestPostgresStore(mockRecordRepo)

	failed := processingRow("k")
	failed.Status = string(model.RecordStatusFailed)
	failed.FailureDetail = []byte(`{"code":"failed_precondition","message":"payment already paid"}`)
	failed.CompletedAt = pgtype.Timestamptz{Time: testNow, Valid: true}

	mockRecordRepo.EXPECT().
		FailRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, arg records.FailRecordParams) (records.IdempotencyRecord, error) {
			assert.Equal(t, "k", arg.Key)
			assert.Equal(t, "fp-1", arg.RequestFingerprint)
			assert.Equal(t, pgtype.Timestamptz{Time: testNow, Valid: true}, arg.CreatedAt)
			assert.JSONEq(t, `{"code":"failed_precondition","message":"payment already paid"}`, string(arg.FailureDetail))
			return failed, nil
		})

	record, err := store.Fail(context.Background(), testClaim, model.FailureDetail{Code: "failed_precondition", Message: "payment already paid"})
	require.NoError(t, err)
	assert.Equal(t, model.RecordStatusFailed, record.Status)
	assert.Equal(t, "payment already paid", record.FailureDetail.Message)
}

func TestPostgresStore_FailAfterKeyReclaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := record_repo.NewMockQuerier(ctrl)
	store := newTestPostgresStore(mockRecordRepo)

	reclaimed := processingRow("k")
	reclaimed.RequestFingerprint = "fp-2"
	reclaimed.CreatedAt = pgtype.Timestamptz{Time: testNow.Add(2 * time.Hour), Valid: true}

	mockRecordRepo.EXPECT().
		FailRecord(gomock.Any(), gomock.Any()).
		Return(records.IdempotencyRecord{}, pgx.ErrNoRows)
	mockRecordRepo.EXPECT().
		GetLiveRecord(gomock.Any(), gomock.Any()).
		Return(reclaimed, nil)

	record, err := store.Fail(context.Background(), testClaim, model.FailureDetail{Code: "internal", Message: "operation failed"})
	assert.ErrorIs(t, err, idempotency.ErrClaimLost)
	assert.Nil(t, record)
}

func TestPostgresStore_PurgeExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := record_repo.NewMockQuerier(ctrl)
	store := newTestPostgresStore(mockRecordRepo)

	mockRecordRepo.EXPECT().
		DeleteExpiredRecords(gomock.Any(), pgtype.Timestamptz{Time: testNow, Valid: true}).
		Return(int64(7), nil)

	purged, err := store.PurgeExpired(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(7), purged)

	mockRecordRepo.EXPECT().
		DeleteExpiredRecords(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("connection refused"))

	_, err = store.PurgeExpired(context.Background(), testNow)
	assert.ErrorContains(t, err, "delete expired idempotency records")
}

func TestPostgresStore_ListStale(t *testing.T) {
	testCases := []struct {
		name          string
		limit         int32
		expectedLimit int32
	}{
		{name: "explicit_limit", limit: 10, expectedLimit: 10},
		{name: "unbounded", limit: 0, expectedLimit: 2147483647},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRecordRepo := record_repo.NewMockQuerier(ctrl)
			store := newTestPostgresStore(mockRecordRepo)

			before := testNow.Add(-15 * time.Minute)
			mockRecordRepo.EXPECT().
				ListStaleRecords(gomock.Any(), records.ListStaleRecordsParams{
					CreatedAt: pgtype.Timestamptz{Time: before, Valid: true},
					Limit:     tc.expectedLimit,
				}).
				Return([]records.IdempotencyRecord{processingRow("a"), processingRow("b")}, nil)

			stale, err := store.ListStale(context.Background(), before, tc.limit)
			require.NoError(t, err)
			require.Len(t, stale, 2)
			assert.Equal(t, "a", stale[0].Key)
			assert.Equal(t, model.RecordStatusProcessing, stale[1].Status)
		})
	}
}
