package models

import (
	"time"

	"loandesk/internal/core/domain"

	"gorm.io/gorm"
)

// Loan represents the loans table
type Loan struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	ApplicantName   string    `gorm:"size:255;not null" json:"applicantName"`
	RequestedAmount float64   `gorm:"not null" json:"requestedAmount"`
	Status          string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Loan) TableName() string {
	return "loans"
}

// ToDomain converts the persistence model to a domain loan
func (l *Loan) ToDomain() *domain.Loan {
	return &domain.Loan{
		ID:              l.ID,
		ApplicantName:   l.ApplicantName,
		RequestedAmount: l.RequestedAmount,
		Status:          domain.LoanStatus(l.Status),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Loan{},
	)
}
