package idempotency

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Handler performs the business side effect for one operation type.
// The Dispatcher invokes a handler at most once per idempotency key.
type Handler interface {
	OperationType() string
	Execute(ctx context.Context, payload json.RawMessage, ownerID string) (any, error)
}

// ExecuteFunc is the signature of Handler.Execute.
type ExecuteFunc func(ctx context.Context, payload json.RawMessage, ownerID string) (any, error)

type funcHandler struct {
	operationType string
	execute       ExecuteFunc
}

// HandlerFunc adapts a plain function to a Handler.
func HandlerFunc(operationType string, execute ExecuteFunc) Handler {
	return &funcHandler{operationType: operationType, execute: execute}
}

func (h *funcHandler) OperationType() string { return h.operationType }

func (h *funcHandler) Execute(ctx context.Context, payload json.RawMessage, ownerID string) (any, error) {
	return h.execute(ctx, payload, ownerID)
}

// Registry maps operation types to handlers. It is populated at startup and
// read-only afterwards; Register is not safe to call concurrently with Execute.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds a registry from the given handlers.
func NewRegistry(handlers ...Handler) (*Registry, error) {
	r := &Registry{handlers: make(map[string]Handler, len(handlers))}
	for _, h := range handlers {
		if err := r.Register(h); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a handler. Operation types must be non-empty and unique.
func (r *Registry) Register(h Handler) error {
	if h == nil {
		return fmt.Errorf("register handler: handler is nil")
	}
	operationType := strings.TrimSpace(h.OperationType())
	if operationType == "" {
		return fmt.Errorf("register handler: operation type is empty")
	}
	if _, exists := r.handlers[operationType]; exists {
		return fmt.Errorf("register handler: operation type %q already registered", operationType)
	}
	r.handlers[operationType] = h
	return nil
}

func (r *Registry) Lookup(operationType string) (Handler, bool) {
	h, ok := r.handlers[operationType]
	return h, ok
}

// Execute runs the handler registered for operationType.
func (r *Registry) Execute(ctx context.Context, operationType string, payload json.RawMessage, ownerID string) (any, error) {
	h, ok := r.Lookup(operationType)
	if !ok {
		return nil, unsupportedOperation(KeyFromContext(ctx), operationType)
	}
	return h.Execute(ctx, payload, ownerID)
}

// OperationTypes lists the registered operation types in sorted order.
func (r *Registry) OperationTypes() []string {
	types := make([]string, 0, len(r.handlers))
	for operationType := range r.handlers {
		types = append(types, operationType)
	}
	sort.Strings(types)
	return types
}
