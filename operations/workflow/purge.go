package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// PurgeExpiredRecordsWorkflowID is fixed so only one purge schedule exists per namespace.
const PurgeExpiredRecordsWorkflowID = "purge-expired-idempotency-records"

// PurgeExpiredRecords deletes expired idempotency records. It runs on a cron schedule
// and uses the workflow clock as the cutoff so replays are deterministic.
func PurgeExpiredRecords(ctx workflow.Context) (int64, error) {
	logger := workflow.GetLogger(ctx)
	cutoff := workflow.Now(ctx)
	logger.Info("Starting purge expired records workflow", "cutoff", cutoff)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var purged int64
	if err := workflow.ExecuteActivity(activityCtx, PurgeExpiredRecordsActivity, cutoff).Get(ctx, &purged); err != nil {
		logger.Error("Failed to purge expired records", "error", err)
		return 0, err
	}

	logger.Info("Purge expired records workflow completed", "purged", purged)
	return purged, nil
}
