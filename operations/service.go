package operations

import (
	"context"
	"fmt"

	"encore.dev/beta/auth"
	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"

	"encore.app/operations/business/expense"
	"encore.app/operations/business/payment"
	"encore.app/operations/business/protocol"
	"encore.app/operations/idempotency"
	"encore.app/operations/repository"
	"encore.app/operations/store"
	"encore.app/operations/telemetry"
	"encore.app/operations/workflow"
)

var operationsDB = sqldb.NewDatabase("operations", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	dispatcher *idempotency.Dispatcher
	records    idempotency.Store
	maintainer idempotency.Maintainer
	temporal   client.Client
	worker     worker.Worker
	metrics    *telemetry.Recorder
	userID     func() (auth.UID, bool)
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(operationsDB)

	rlog.Info("Initializing repository")
	repo := repository.NewRepository(pgxdb)

	postgresStore := store.NewPostgresStore(repo.Records)
	records := store.NewCachedStore(postgresStore, store.NewEncoreRecordCache())

	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHostPort(),
		Namespace: cfg.TemporalNamespace(),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	protocolBusiness := protocol.NewProtocolBusiness(repo.Protocols)
	registry, err := idempotency.NewRegistry(
		expense.NewCreateExpenseHandler(expense.NewExpenseBusiness(repo.Expenses)),
		payment.NewMarkPaymentPaidHandler(payment.NewPaymentBusiness(repo.Payments)),
		protocol.NewApproveProtocolHandler(protocolBusiness),
		protocol.NewGenerateConsolidatedProtocolHandler(protocolBusiness, &consolidationStarter{
			temporal:  temporalClient,
			taskQueue: cfg.TaskQueue(),
		}),
	)
	if err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("register operation handlers: %w", err)
	}
	rlog.Info("Registered operation handlers", "operation_types", registry.OperationTypes())

	metrics := telemetry.NewRecorder()
	dispatcher := idempotency.NewDispatcher(records, registry,
		idempotency.WithRecordTTL(recordTTL()),
		idempotency.WithHandlerTimeout(handlerTimeout()),
		idempotency.WithObserver(metrics),
	)

	workflow.SetActivityDependencies(protocolBusiness, postgresStore)
	w := worker.New(temporalClient, cfg.TaskQueue(), worker.Options{})
	w.RegisterWorkflow(workflow.ConsolidateProtocols)
	w.RegisterWorkflow(workflow.PurgeExpiredRecords)
	w.RegisterActivity(workflow.FinalizeConsolidatedProtocolActivity)
	w.RegisterActivity(workflow.MarkConsolidationFailedActivity)
	w.RegisterActivity(workflow.PurgeExpiredRecordsActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	s := &Service{
		dispatcher: dispatcher,
		records:    records,
		maintainer: postgresStore,
		temporal:   temporalClient,
		worker:     w,
		metrics:    metrics,
		userID:     auth.UserID,
	}

	if err := s.schedulePurge(context.Background()); err != nil {
		rlog.Error("failed to schedule expired record purge", "error", err)
	}

	return s, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}

// schedulePurge starts the cron workflow that deletes expired records.
// Records without a TTL are never purged, so no schedule is started for them.
func (s *Service) schedulePurge(ctx context.Context) error {
	if recordTTL() <= 0 {
		rlog.Info("record TTL disabled, skipping purge schedule")
		return nil
	}

	options := client.StartWorkflowOptions{
		ID:           workflow.PurgeExpiredRecordsWorkflowID,
		TaskQueue:    cfg.TaskQueue(),
		CronSchedule: cfg.PurgeSchedule(),
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.PurgeExpiredRecords)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("purge workflow already scheduled", "workflow_id", options.ID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", options.ID, err)
	}
	rlog.Info("scheduled expired record purge", "workflow_id", options.ID, "schedule", options.CronSchedule)
	return nil
}

// currentUser returns the authenticated caller, who owns every record they create.
func (s *Service) currentUser() (string, bool) {
	uid, ok := s.userID()
	if !ok || uid == "" {
		return "", false
	}
	return string(uid), true
}
