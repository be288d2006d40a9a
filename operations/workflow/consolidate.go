package workflow

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const finalizeFailedReason = "failed to finalize consolidated protocol"

// ConsolidateProtocolsWorkflowParams contains parameters for starting the consolidation workflow
type ConsolidateProtocolsWorkflowParams struct {
	ConsolidatedProtocolID uuid.UUID `json:"consolidated_protocol_id"`
}

// ConsolidateProtocols finalizes a generating consolidated protocol, marking it failed
// and releasing its protocols when finalization cannot complete.
func ConsolidateProtocols(ctx workflow.Context, params ConsolidateProtocolsWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting consolidate protocols workflow", "consolidatedProtocolID", params.ConsolidatedProtocolID)

	err := finalizeConsolidatedProtocol(ctx, params.ConsolidatedProtocolID)
	if err == nil {
		logger.Info("Consolidate protocols workflow completed", "consolidatedProtocolID", params.ConsolidatedProtocolID)
		return nil
	}

	logger.Error("Failed to finalize consolidated protocol", "consolidatedProtocolID", params.ConsolidatedProtocolID, "error", err)
	if markErr := markConsolidationFailed(ctx, params.ConsolidatedProtocolID, finalizeFailedReason); markErr != nil {
		logger.Error("Failed to mark consolidation as failed", "consolidatedProtocolID", params.ConsolidatedProtocolID, "error", markErr)
		return markErr
	}
	return err
}

// finalizeConsolidatedProtocol executes the FinalizeConsolidatedProtocol activity
func finalizeConsolidatedProtocol(ctx workflow.Context, id uuid.UUID) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    5,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, FinalizeConsolidatedProtocolActivity, id).Get(ctx, nil)
}

// markConsolidationFailed executes the MarkConsolidationFailed activity
func markConsolidationFailed(ctx workflow.Context, id uuid.UUID, reason string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    10,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, MarkConsolidationFailedActivity, id, reason).Get(ctx, nil)
}
