package repositories

import (
	"context"

	"loandesk/internal/core/domain"
)

// LoanRepository defines loan data access.
// Absent rows are reported as nil results, never as errors; a non-nil
// error always means a storage fault.
type LoanRepository interface {
	ListAll(ctx context.Context) ([]*domain.Loan, error)
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	Insert(ctx context.Context, applicantName string, requestedAmount float64) (*domain.Loan, error)
	ApplyPartialUpdate(ctx context.Context, id string, input domain.UpdateLoanInput) (*domain.Loan, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CredentialStore defines read-only credential lookup.
// The store is seeded at process start and never mutated afterwards.
type CredentialStore interface {
	GetByUsername(username string) (*domain.Credential, bool)
}
