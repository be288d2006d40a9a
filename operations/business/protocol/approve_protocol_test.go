package protocol

import (
	"context"
	"errors"
	"testing"
	"time"

	"encore.dev/beta/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/operations/mocks/repository/protocol_repo"
	"encore.app/operations/model"
	"encore.app/operations/repository/protocols"
)

func TestApproveProtocol(t *testing.T) {
	approvedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	approvedRow := protocols.Protocol{
		ID:              3,
		Title:           "Quarterly audit",
		AmountCents:     25000,
		Status:          string(model.ProtocolStatusApproved),
		ApprovedBy:      pgtype.Text{String: "user-1", Valid: true},
		ApprovalComment: pgtype.Text{String: "looks good", Valid: true},
		ApprovedAt:      pgtype.Timestamptz{Time: approvedAt, Valid: true},
	}

	testCases := []struct {
		name             string
		comment          string
		mockApproveError error
		expectGet        bool
		mockGetReturn    protocols.Protocol
		mockGetError     error
		expectedCode     errs.ErrCode
		expectedError    string
		expectSuccess    bool
	}{
		{
			name:          "submitted_protocol_approved",
			comment:       "looks good",
			expectSuccess: true,
		},
		{
			name:             "protocol_not_found",
			mockApproveError: pgx.ErrNoRows,
			expectGet:        true,
			mockGetError:     pgx.ErrNoRows,
			expectedCode:     errs.NotFound,
			expectedError:    "protocol not found",
		},
		{
			name:             "already_approved",
			mockApproveError: pgx.ErrNoRows,
			expectGet:        true,
			mockGetReturn:    approvedRow,
			expectedCode:     errs.FailedPrecondition,
			expectedError:    "protocol is already approved",
		},
		{
			name:             "draft_protocol",
			mockApproveError: pgx.ErrNoRows,
			expectGet:        true,
			mockGetReturn:    protocols.Protocol{ID: 3, Status: string(model.ProtocolStatusDraft)},
			expectedCode:     errs.FailedPrecondition,
			expectedError:    "protocol must be submitted to be approved",
		},
		{
			name:             "get_fails",
			mockApproveError: pgx.ErrNoRows,
			expectGet:        true,
			mockGetError:     errors.New("connection reset"),
			expectedCode:     errs.Internal,
			expectedError:    "failed to get protocol",
		},
		{
			name:             "update_fails",
			mockApproveError: errors.New("connection reset"),
			expectedCode:     errs.Internal,
			expectedError:    "failed to approve protocol",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := protocol_repo.NewMockQuerier(ctrl)

			mockRepo.EXPECT().
				ApproveProtocol(gomock.Any(), protocols.ApproveProtocolParams{
					ID:              3,
					ApprovedBy:      pgtype.Text{String: "user-1", Valid: true},
					ApprovalComment: pgtype.Text{String: tc.comment, Valid: tc.comment != ""},
				}).
				Return(approvedRow, tc.mockApproveError)
			if tc.expectGet {
				mockRepo.EXPECT().GetProtocol(gomock.Any(), int64(3)).Return(tc.mockGetReturn, tc.mockGetError)
			}

			b := NewProtocolBusiness(mockRepo)
			protocol, err := b.ApproveProtocol(context.Background(), 3, "user-1", tc.comment)

			if !tc.expectSuccess {
				assert.Error(t, err)
				assert.Nil(t, protocol)
				assert.Equal(t, tc.expectedCode, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.ProtocolStatusApproved, protocol.Status)
			require.NotNil(t, protocol.ApprovedBy)
			assert.Equal(t, "user-1", *protocol.ApprovedBy)
			require.NotNil(t, protocol.ApprovedAt)
			assert.Equal(t, approvedAt, *protocol.ApprovedAt)
			assert.Nil(t, protocol.ConsolidatedProtocolID)
		})
	}
}
