package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction classifies a protocol operation in the audit trail.
type AuditAction string

const (
	AuditActionInvoiceIssue AuditAction = "INVOICE_ISSUE"
	AuditActionCardPair     AuditAction = "CARD_PAIR"
	AuditActionWithdraw     AuditAction = "WITHDRAW"
)

// AuditEntry is one append-only audit record. Entries are written
// fire-and-forget; losing one never fails the request that produced it.
type AuditEntry struct {
	ID        uuid.UUID
	Action    AuditAction
	Resource  string
	IPAddress string
	RequestID string
	Details   string // JSON blob
	CreatedAt time.Time
}
