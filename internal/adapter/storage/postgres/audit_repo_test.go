package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"lnurl-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry() *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:        uuid.New(),
		Action:    domain.AuditActionInvoiceIssue,
		Resource:  "alice",
		IPAddress: "203.0.113.7",
		RequestID: uuid.New().String(),
		Details:   `{"amount_msat":21000}`,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	entry := newTestEntry()

	mock.ExpectExec("INSERT INTO audit_entries").
		WithArgs(entry.ID, string(entry.Action), entry.Resource,
			entry.IPAddress, entry.RequestID, entry.Details, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	entry := newTestEntry()

	mock.ExpectExec("INSERT INTO audit_entries").
		WithArgs(entry.ID, string(entry.Action), entry.Resource,
			entry.IPAddress, entry.RequestID, entry.Details, entry.CreatedAt).
		WillReturnError(errors.New("connection reset"))

	err = repo.Create(context.Background(), entry)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insert audit entry")
}
