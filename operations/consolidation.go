package operations

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/operations/model"
	"encore.app/operations/workflow"
)

// consolidationStarter starts the Temporal workflow that finalizes a consolidated protocol.
type consolidationStarter struct {
	temporal  client.Client
	taskQueue string
}

func (s *consolidationStarter) StartConsolidation(ctx context.Context, consolidated *model.ConsolidatedProtocol) error {
	options := client.StartWorkflowOptions{
		ID:        consolidated.WorkflowID,
		TaskQueue: s.taskQueue,
	}

	params := workflow.ConsolidateProtocolsWorkflowParams{
		ConsolidatedProtocolID: consolidated.ID,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ConsolidateProtocols, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "consolidated_protocol_id", consolidated.ID, "workflow_id", options.ID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", options.ID, err)
	}
	return nil
}
