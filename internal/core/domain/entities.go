package domain

import "time"

// LoanStatus represents the lifecycle state of a loan
type LoanStatus string

const (
	StatusPending  LoanStatus = "PENDING"
	StatusApproved LoanStatus = "APPROVED"
	StatusRejected LoanStatus = "REJECTED"
)

// IsValid reports whether s is one of the three known statuses
func (s LoanStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Loan represents a loan record in the domain layer
type Loan struct {
	ID              string     `json:"id"`
	ApplicantName   string     `json:"applicantName"`
	RequestedAmount float64    `json:"requestedAmount"`
	Status          LoanStatus `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// UpdateLoanInput carries the optional fields of a partial update.
// A nil pointer means the field was not provided.
type UpdateLoanInput struct {
	ApplicantName   *string
	RequestedAmount *float64
	Status          *LoanStatus
}

// IsEmpty reports whether no field was provided at all
func (in UpdateLoanInput) IsEmpty() bool {
	return in.ApplicantName == nil && in.RequestedAmount == nil && in.Status == nil
}

// Credential represents a login identity seeded at process start.
// Credentials are read-only at runtime and never persisted.
type Credential struct {
	ID           string
	Username     string
	PasswordHash string
}
