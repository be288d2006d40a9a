package operations

import (
	"context"
	"errors"
	"testing"
	"time"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/operations/mocks/idempotency/record_store"
	"encore.app/operations/model"
)

func TestListStaleOperations(t *testing.T) {
	stuckSince := time.Now().Add(-2 * time.Hour)

	testCases := []struct {
		name          string
		request       *ListStaleOperationsRequest
		expectedLimit int32
		mockReturn    []*model.IdempotencyRecord
		mockError     error
		expectedCount int
		expectedError string
	}{
		{
			name:          "default_limit",
			request:       &ListStaleOperationsRequest{OlderThanMinutes: 30},
			expectedLimit: 100,
			mockReturn: []*model.IdempotencyRecord{
				{Key: "k1", OwnerID: "user-1", OperationType: "create_expense", Status: model.RecordStatusProcessing, CreatedAt: stuckSince},
				{Key: "k2", OwnerID: "user-2", OperationType: "approve_protocol", Status: model.RecordStatusProcessing, CreatedAt: stuckSince},
			},
			expectedCount: 2,
		},
		{
			name:          "explicit_limit",
			request:       &ListStaleOperationsRequest{OlderThanMinutes: 30, Limit: 1},
			expectedLimit: 1,
			mockReturn: []*model.IdempotencyRecord{
				{Key: "k1", OwnerID: "user-1", OperationType: "create_expense", Status: model.RecordStatusProcessing, CreatedAt: stuckSince},
			},
			expectedCount: 1,
		},
		{
			name:          "nothing_stale",
			request:       &ListStaleOperationsRequest{OlderThanMinutes: 30},
			expectedLimit: 100,
			expectedCount: 0,
		},
		{
			name:          "store_error",
			request:       &ListStaleOperationsRequest{OlderThanMinutes: 30},
			expectedLimit: 100,
			mockError:     errors.New("connection reset"),
			expectedError: "failed to list stale operations",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockMaintainer := record_store.NewMockMaintainer(ctrl)
			s := &Service{maintainer: mockMaintainer}

			before := time.Now()
			mockMaintainer.EXPECT().
				ListStale(gomock.Any(), gomock.Any(), tc.expectedLimit).
				DoAndReturn(func(_ context.Context, createdBefore time.Time, _ int32) ([]*model.IdempotencyRecord, error) {
					assert.WithinDuration(t, before.Add(-30*time.Minute), createdBefore, time.Minute)
					return tc.mockReturn, tc.mockError
				}).
				Times(1)

			response, err := s.ListStaleOperations(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Nil(t, response)
				require.Error(t, err)
				assert.Equal(t, errs.Internal, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Len(t, response.Operations, tc.expectedCount)
			for i, op := range response.Operations {
				assert.Equal(t, tc.mockReturn[i].Key, op.IdempotencyKey)
				assert.GreaterOrEqual(t, op.AgeSeconds, int64(2*60*60-1))
			}
		})
	}
}

func TestListStaleOperationsRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *ListStaleOperationsRequest
		expectedError string
	}{
		{name: "valid", request: &ListStaleOperationsRequest{OlderThanMinutes: 15, Limit: 50}},
		{name: "missing_older_than", request: &ListStaleOperationsRequest{}, expectedError: "OlderThanMinutes"},
		{name: "negative_older_than", request: &ListStaleOperationsRequest{OlderThanMinutes: -5}, expectedError: "OlderThanMinutes"},
		{name: "limit_too_large", request: &ListStaleOperationsRequest{OlderThanMinutes: 15, Limit: 5000}, expectedError: "Limit"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errs.InvalidArgument, errs.Code(err))
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}
