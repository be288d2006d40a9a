package operations

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"

	"encore.app/operations/model"
	"encore.app/operations/workflow"
)

func TestConsolidationStarter(t *testing.T) {
	consolidatedID := uuid.MustParse("8f14e45f-ceea-467f-a0e6-1b2c3d4e5f60")
	consolidated := &model.ConsolidatedProtocol{
		ID:         consolidatedID,
		WorkflowID: "consolidated-protocol-8f14e45f-ceea-467f-a0e6-1b2c3d4e5f60",
	}

	testCases := []struct {
		name              string
		mockTemporalError error
		expectedError     string
	}{
		{
			name: "workflow_started",
		},
		{
			name:              "workflow_already_started",
			mockTemporalError: serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""),
		},
		{
			name:              "temporal_unavailable",
			mockTemporalError: errors.New("temporal unavailable"),
			expectedError:     "execute workflow consolidated-protocol-8f14e45f-ceea-467f-a0e6-1b2c3d4e5f60",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			starter := &consolidationStarter{temporal: mockTemporal, taskQueue: "operations"}

			mockTemporal.On("ExecuteWorkflow",
				mock.Anything, // context
				mock.MatchedBy(func(options client.StartWorkflowOptions) bool {
					return options.ID == consolidated.WorkflowID && options.TaskQueue == "operations"
				}),
				mock.Anything, // workflow function
				workflow.ConsolidateProtocolsWorkflowParams{ConsolidatedProtocolID: consolidatedID},
			).Return(nil, tc.mockTemporalError)

			err := starter.StartConsolidation(context.Background(), consolidated)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchedulePurge(t *testing.T) {
	testCases := []struct {
		name              string
		mockTemporalError error
		expectError       bool
	}{
		{name: "scheduled"},
		{name: "already_scheduled", mockTemporalError: serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", "")},
		{name: "temporal_unavailable", mockTemporalError: errors.New("temporal unavailable"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			s := &Service{temporal: mockTemporal}

			mockTemporal.On("ExecuteWorkflow",
				mock.Anything, // context
				mock.MatchedBy(func(options client.StartWorkflowOptions) bool {
					return options.ID == workflow.PurgeExpiredRecordsWorkflowID && options.CronSchedule != ""
				}),
				mock.Anything, // workflow function
			).Return(nil, tc.mockTemporalError)

			err := s.schedulePurge(context.Background())
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
