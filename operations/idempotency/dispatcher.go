package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"encore.dev/rlog"

	"encore.app/operations/model"
)

// Outcome labels how a dispatch ended, for observation.
type Outcome string

const (
	OutcomeExecuted        Outcome = "executed"
	OutcomeReplayed        Outcome = "replayed"
	OutcomeFailed          Outcome = "failed"
	OutcomeReplayedFailure Outcome = "replayed_failure"
	OutcomeInFlight        Outcome = "in_flight"
	OutcomeKeyMismatch     Outcome = "key_mismatch"
	OutcomeUnsupported     Outcome = "unsupported"
)

// Observer receives dispatch events. Implementations must be safe for concurrent use.
type Observer interface {
	ObserveDispatch(operationType string, outcome Outcome)
	ObserveHandler(operationType string, elapsed time.Duration)
}

type Request struct {
	Key           string
	OwnerID       string
	OperationType string
	Payload       json.RawMessage
}

// Result is the response body of an operation, either freshly produced or replayed.
type Result struct {
	Key           string
	OperationType string
	Body          json.RawMessage
	Cached        bool
}

// defaultCreateAttempts bounds the find/create loop when the key keeps changing hands.
const defaultCreateAttempts = 3

// Dispatcher runs operations so that each idempotency key executes its handler at most once.
type Dispatcher struct {
	store          Store
	registry       *Registry
	ttl            time.Duration
	handlerTimeout time.Duration
	createAttempts int
	observer       Observer
	now            func() time.Time
}

type Option func(*Dispatcher)

// WithRecordTTL sets how long records live before their key becomes reusable.
// Zero keeps records forever.
func WithRecordTTL(ttl time.Duration) Option {
	return func(d *Dispatcher) { d.ttl = ttl }
}

// WithHandlerTimeout bounds each handler invocation. Zero means no timeout.
func WithHandlerTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) { d.handlerTimeout = timeout }
}

func WithObserver(observer Observer) Option {
	return func(d *Dispatcher) {
		if observer != nil {
			d.observer = observer
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func NewDispatcher(store Store, registry *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:          store,
		registry:       registry,
		createAttempts: defaultCreateAttempts,
		observer:       noopObserver{},
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch executes req.OperationType once per req.Key and replays the stored
// outcome for every later request carrying the same key and payload.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	fingerprint, err := Fingerprint(req.Payload)
	if err != nil {
		return nil, MalformedRequest("payload must be a single valid JSON value")
	}
	if !IsObject(req.Payload) {
		return nil, MalformedRequest("payload must be a JSON object")
	}

	for attempt := 0; attempt < d.createAttempts; attempt++ {
		record, err := d.store.Find(ctx, req.Key)
		if err == nil {
			return d.resolveExisting(req, fingerprint, record)
		}
		if !errors.Is(err, ErrRecordNotFound) {
			rlog.Error("failed to look up idempotency record", "key", req.Key, "error", err)
			return nil, internalError("failed to check idempotency")
		}

		if _, ok := d.registry.Lookup(req.OperationType); !ok {
			d.observer.ObserveDispatch(req.OperationType, OutcomeUnsupported)
			return nil, unsupportedOperation(req.Key, req.OperationType)
		}

		record, err = d.store.CreateProcessing(ctx, CreateParams{
			Key:           req.Key,
			OwnerID:       req.OwnerID,
			OperationType: req.OperationType,
			Fingerprint:   fingerprint,
			ExpiresAt:     d.expiresAt(),
		})
		if errors.Is(err, ErrKeyAlreadyExists) {
			rlog.Info("lost idempotency key creation race, re-reading record", "key", req.Key, "attempt", attempt+1)
			continue
		}
		if err != nil {
			rlog.Error("failed to mark request as processing", "key", req.Key, "error", err)
			return nil, internalError("failed to mark request as processing")
		}

		return d.execute(ctx, req, record)
	}

	rlog.Warn("idempotency key did not settle", "key", req.Key, "attempts", d.createAttempts)
	d.observer.ObserveDispatch(req.OperationType, OutcomeInFlight)
	return nil, operationInFlight(req.Key)
}

// resolveExisting applies the state machine to a record that already holds the key.
func (d *Dispatcher) resolveExisting(req Request, fingerprint string, record *model.IdempotencyRecord) (*Result, error) {
	if record.RequestFingerprint != fingerprint ||
		record.OperationType != req.OperationType ||
		record.OwnerID != req.OwnerID {
		rlog.Warn("idempotency key reused for a different request", "key", req.Key, "operation_type", req.OperationType)
		d.observer.ObserveDispatch(req.OperationType, OutcomeKeyMismatch)
		return nil, keyReuseMismatch(req.Key)
	}

	switch record.Status {
	case model.RecordStatusProcessing:
		rlog.Info("concurrent request detected", "key", req.Key)
		d.observer.ObserveDispatch(req.OperationType, OutcomeInFlight)
		return nil, operationInFlight(req.Key)

	case model.RecordStatusCompleted:
		rlog.Info("returning cached response", "key", req.Key)
		d.observer.ObserveDispatch(req.OperationType, OutcomeReplayed)
		return &Result{
			Key:           req.Key,
			OperationType: req.OperationType,
			Body:          record.Result,
			Cached:        true,
		}, nil

	case model.RecordStatusFailed:
		detail := model.FailureDetail{Code: "internal", Message: "operation failed"}
		if record.FailureDetail != nil {
			detail = *record.FailureDetail
		}
		rlog.Info("replaying recorded failure", "key", req.Key, "code", detail.Code)
		d.observer.ObserveDispatch(req.OperationType, OutcomeReplayedFailure)
		return nil, replayFailure(req.Key, detail)

	default:
		rlog.Error("unknown idempotency record status", "key", req.Key, "status", record.Status)
		return nil, internalError("unknown idempotency record status")
	}
}

// execute runs the handler for a record this call just created and persists the outcome.
func (d *Dispatcher) execute(ctx context.Context, req Request, record *model.IdempotencyRecord) (*Result, error) {
	value, err := d.invoke(ctx, req)

	// The outcome must be recorded even if the caller went away mid-execution.
	persistCtx := context.WithoutCancel(ctx)

	var body json.RawMessage
	if err == nil {
		body, err = json.Marshal(value)
		if err != nil {
			rlog.Error("failed to marshal operation result", "key", req.Key, "error", err)
			err = internalError("failed to encode operation result")
		}
	}

	claim := ClaimOf(record)
	if err != nil {
		detail := failureDetailOf(err)
		if _, failErr := d.store.Fail(persistCtx, claim, detail); failErr != nil {
			rlog.Error("failed to record operation failure", "key", req.Key, "error", failErr)
		}
		rlog.Info("operation failed", "key", req.Key, "operation_type", req.OperationType, "code", detail.Code, "error", err)
		d.observer.ObserveDispatch(req.OperationType, OutcomeFailed)
		return nil, handlerFailure(req.Key, detail)
	}

	_, completeErr := d.store.Complete(persistCtx, claim, body)
	switch {
	case errors.Is(completeErr, ErrClaimLost):
		rlog.Warn("idempotency key expired and was reclaimed before the operation finished", "key", req.Key)
	case completeErr != nil:
		// The side effect already happened; the caller still gets its result.
		rlog.Error("failed to cache successful response", "key", req.Key, "error", completeErr)
	}

	rlog.Debug("request completed and response cached", "key", req.Key, "created_at", record.CreatedAt)
	d.observer.ObserveDispatch(req.OperationType, OutcomeExecuted)
	return &Result{
		Key:           req.Key,
		OperationType: req.OperationType,
		Body:          body,
		Cached:        false,
	}, nil
}

// invoke calls the handler, converting a panic into an error so the record never stays processing.
func (d *Dispatcher) invoke(ctx context.Context, req Request) (value any, err error) {
	handlerCtx := WithKey(ctx, req.Key)
	if d.handlerTimeout > 0 {
		var cancel context.CancelFunc
		handlerCtx, cancel = context.WithTimeout(handlerCtx, d.handlerTimeout)
		defer cancel()
	}

	start := d.now()
	defer func() {
		d.observer.ObserveHandler(req.OperationType, d.now().Sub(start))
		if r := recover(); r != nil {
			rlog.Error("operation handler panicked", "key", req.Key, "operation_type", req.OperationType, "panic", fmt.Sprint(r))
			value, err = nil, internalError("operation handler panicked")
		}
	}()

	return d.registry.Execute(handlerCtx, req.OperationType, req.Payload, req.OwnerID)
}

func (d *Dispatcher) expiresAt() *time.Time {
	if d.ttl <= 0 {
		return nil
	}
	expiresAt := d.now().Add(d.ttl)
	return &expiresAt
}

func (r Request) validate() error {
	switch {
	case strings.TrimSpace(r.Key) == "":
		return MalformedRequest("idempotency key is required")
	case strings.TrimSpace(r.OwnerID) == "":
		return MalformedRequest("owner is required")
	case strings.TrimSpace(r.OperationType) == "":
		return MalformedRequest("operation_type is required")
	case len(r.Payload) == 0:
		return MalformedRequest("payload is required")
	}
	return nil
}

type noopObserver struct{}

func (noopObserver) ObserveDispatch(string, Outcome)       {}
func (noopObserver) ObserveHandler(string, time.Duration) {}
