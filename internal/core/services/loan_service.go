package services

import (
	"context"

	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/core/domain"
)

// LoanService handles loan business logic
type LoanService struct {
	loanRepo repositories.LoanRepository
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo repositories.LoanRepository) *LoanService {
	return &LoanService{loanRepo: loanRepo}
}

// GetAllLoans returns all loans ordered by applicant name
func (s *LoanService) GetAllLoans(ctx context.Context) ([]*domain.Loan, error) {
	return s.loanRepo.ListAll(ctx)
}

// GetLoanByID returns a loan by id; nil when the loan does not exist
func (s *LoanService) GetLoanByID(ctx context.Context, id string) (*domain.Loan, error) {
	return s.loanRepo.GetByID(ctx, id)
}

// CreateLoan creates a new loan. The handler has already validated the
// inputs; the created loan is always PENDING with server-side id and
// timestamps.
func (s *LoanService) CreateLoan(ctx context.Context, applicantName string, requestedAmount float64) (*domain.Loan, error) {
	return s.loanRepo.Insert(ctx, applicantName, requestedAmount)
}

// UpdateLoan applies a partial update. Returns nil when no field was
// provided or the target id does not exist.
func (s *LoanService) UpdateLoan(ctx context.Context, id string, input domain.UpdateLoanInput) (*domain.Loan, error) {
	if input.IsEmpty() {
		return nil, nil
	}

	existing, err := s.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	return s.loanRepo.ApplyPartialUpdate(ctx, id, input)
}

// RejectLoan forces the loan status to REJECTED. Returns nil when the
// target id does not exist.
func (s *LoanService) RejectLoan(ctx context.Context, id string) (*domain.Loan, error) {
	status := domain.StatusRejected
	return s.UpdateLoan(ctx, id, domain.UpdateLoanInput{Status: &status})
}

// DeleteLoan removes a loan; reports whether a row was actually removed
func (s *LoanService) DeleteLoan(ctx context.Context, id string) (bool, error) {
	return s.loanRepo.Delete(ctx, id)
}
