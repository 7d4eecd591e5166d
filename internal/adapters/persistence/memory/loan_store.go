// Package memory implements in-memory stores for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/core/domain"

	"github.com/google/uuid"
)

// LoanStore implements an in-memory loan repository
type LoanStore struct {
	mu    sync.Mutex
	loans []*domain.Loan
}

// NewLoanStore creates a new in-memory loan store
func NewLoanStore() *LoanStore {
	return &LoanStore{}
}

var _ repositories.LoanRepository = (*LoanStore)(nil)

// ListAll lists all loans ordered by applicant name
func (s *LoanStore) ListAll(ctx context.Context) ([]*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans := make([]*domain.Loan, 0, len(s.loans))
	for _, loan := range s.loans {
		clone := *loan
		loans = append(loans, &clone)
	}
	sort.Slice(loans, func(i, j int) bool {
		return loans[i].ApplicantName < loans[j].ApplicantName
	})
	return loans, nil
}

// GetByID gets a loan by ID; returns nil without error when absent
func (s *LoanStore) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, loan := range s.loans {
		if loan.ID == id {
			clone := *loan
			return &clone, nil
		}
	}
	return nil, nil
}

// Insert stores a new pending loan
func (s *LoanStore) Insert(ctx context.Context, applicantName string, requestedAmount float64) (*domain.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	loan := &domain.Loan{
		ID:              uuid.NewString(),
		ApplicantName:   applicantName,
		RequestedAmount: requestedAmount,
		Status:          domain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.loans = append(s.loans, loan)

	clone := *loan
	return &clone, nil
}

// ApplyPartialUpdate updates only the provided fields and refreshes UpdatedAt
func (s *LoanStore) ApplyPartialUpdate(ctx context.Context, id string, input domain.UpdateLoanInput) (*domain.Loan, error) {
	if input.IsEmpty() {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, loan := range s.loans {
		if loan.ID != id {
			continue
		}
		if input.ApplicantName != nil {
			loan.ApplicantName = *input.ApplicantName
		}
		if input.RequestedAmount != nil {
			loan.RequestedAmount = *input.RequestedAmount
		}
		if input.Status != nil {
			loan.Status = *input.Status
		}
		loan.UpdatedAt = time.Now()

		clone := *loan
		return &clone, nil
	}
	return nil, nil
}

// Delete removes a loan; reports whether a row was actually removed
func (s *LoanStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, loan := range s.loans {
		if loan.ID == id {
			s.loans = append(s.loans[:i], s.loans[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
