package workflow

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/operations/business/protocol"
	"encore.app/operations/idempotency"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	ProtocolBusiness protocol.Business
	Maintainer       idempotency.Maintainer
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(protocolBusiness protocol.Business, maintainer idempotency.Maintainer) {
	activityDeps = &ActivityDependencies{
		ProtocolBusiness: protocolBusiness,
		Maintainer:       maintainer,
	}
}

// FinalizeConsolidatedProtocolActivity totals the linked protocols and marks the consolidated protocol ready
func FinalizeConsolidatedProtocolActivity(ctx context.Context, consolidatedProtocolID uuid.UUID) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing finalize consolidated protocol activity", "consolidatedProtocolID", consolidatedProtocolID)

	if activityDeps == nil || activityDeps.ProtocolBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	consolidated, err := activityDeps.ProtocolBusiness.FinalizeConsolidatedProtocol(ctx, consolidatedProtocolID)
	if err != nil {
		logger.Error("Failed to finalize consolidated protocol", "consolidatedProtocolID", consolidatedProtocolID, "error", err)
		return retryableUnlessSettled(err, "CONSOLIDATION_FINALIZE_FAILED")
	}

	logger.Info("Successfully finalized consolidated protocol", "consolidatedProtocolID", consolidatedProtocolID, "totalAmountCents", consolidated.TotalAmountCents)
	return nil
}

// MarkConsolidationFailedActivity records a failed consolidation and releases its protocols
func MarkConsolidationFailedActivity(ctx context.Context, consolidatedProtocolID uuid.UUID, reason string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing mark consolidation failed activity", "consolidatedProtocolID", consolidatedProtocolID, "reason", reason)

	if activityDeps == nil || activityDeps.ProtocolBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if _, err := activityDeps.ProtocolBusiness.MarkConsolidationFailed(ctx, consolidatedProtocolID, reason); err != nil {
		logger.Error("Failed to mark consolidation as failed", "consolidatedProtocolID", consolidatedProtocolID, "error", err)
		return retryableUnlessSettled(err, "CONSOLIDATION_MARK_FAILED_FAILED")
	}

	logger.Info("Successfully marked consolidation as failed", "consolidatedProtocolID", consolidatedProtocolID)
	return nil
}

// PurgeExpiredRecordsActivity deletes idempotency records that expired at or before cutoff
func PurgeExpiredRecordsActivity(ctx context.Context, cutoff time.Time) (int64, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing purge expired records activity", "cutoff", cutoff)

	if activityDeps == nil || activityDeps.Maintainer == nil {
		logger.Error("Activity dependencies not set")
		return 0, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	purged, err := activityDeps.Maintainer.PurgeExpired(ctx, cutoff)
	if err != nil {
		logger.Error("Failed to purge expired records", "cutoff", cutoff, "error", err)
		return 0, err
	}

	logger.Info("Successfully purged expired records", "purged", purged)
	return purged, nil
}

// retryableUnlessSettled stops retries when the protocol is missing or already in another terminal state.
func retryableUnlessSettled(err error, errType string) error {
	switch errs.Code(err) {
	case errs.NotFound, errs.FailedPrecondition:
		return temporal.NewNonRetryableApplicationError(err.Error(), errType, err)
	}
	return err
}
