package model

import (
	"time"

	"github.com/google/uuid"
)

type Protocol struct {
	ID                     int64          `json:"id"`
	Title                  string         `json:"title"`
	AmountCents            int64          `json:"amount_cents"`
	Status                 ProtocolStatus `json:"status"`
	ApprovedBy             *string        `json:"approved_by,omitempty"`
	ApprovedAt             *time.Time     `json:"approved_at,omitempty"`
	ApprovalComment        *string        `json:"approval_comment,omitempty"`
	ConsolidatedProtocolID *uuid.UUID     `json:"consolidated_protocol_id,omitempty"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

type ProtocolStatus string

const (
	ProtocolStatusDraft     ProtocolStatus = "draft"
	ProtocolStatusSubmitted ProtocolStatus = "submitted"
	ProtocolStatusApproved  ProtocolStatus = "approved"
	ProtocolStatusRejected  ProtocolStatus = "rejected"
)

type ConsolidatedProtocol struct {
	ID               uuid.UUID                  `json:"id"`
	OwnerID          string                     `json:"owner_id"`
	Title            string                     `json:"title"`
	Status           ConsolidatedProtocolStatus `json:"status"`
	ProtocolCount    int32                      `json:"protocol_count"`
	TotalAmountCents int64                      `json:"total_amount_cents"`
	IdempotencyKey   string                     `json:"idempotency_key"`
	FailureReason    *string                    `json:"failure_reason,omitempty"`
	WorkflowID       string                     `json:"workflow_id"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
	FinalizedAt      *time.Time                 `json:"finalized_at,omitempty"`
}

type ConsolidatedProtocolStatus string

const (
	ConsolidatedProtocolStatusGenerating ConsolidatedProtocolStatus = "generating"
	ConsolidatedProtocolStatusReady      ConsolidatedProtocolStatus = "ready"
	ConsolidatedProtocolStatusFailed     ConsolidatedProtocolStatus = "failed"
)
