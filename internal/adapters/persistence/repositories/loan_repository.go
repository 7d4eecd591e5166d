package repositories

import (
	"context"
	"errors"
	"time"

	"loandesk/internal/adapters/persistence/models"
	"loandesk/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLoanRepository handles loan data access backed by MySQL
type GormLoanRepository struct {
	db *gorm.DB
}

// NewGormLoanRepository creates a new loan repository
func NewGormLoanRepository(db *gorm.DB) *GormLoanRepository {
	return &GormLoanRepository{db: db}
}

var _ LoanRepository = (*GormLoanRepository)(nil)

// ListAll lists all loans ordered by applicant name
func (r *GormLoanRepository) ListAll(ctx context.Context) ([]*domain.Loan, error) {
	var rows []*models.Loan
	err := r.db.WithContext(ctx).
		Order("applicant_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	loans := make([]*domain.Loan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, row.ToDomain())
	}
	return loans, nil
}

// GetByID gets a loan by ID; returns nil without error when no row matches
func (r *GormLoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	var row models.Loan
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Insert stores a new pending loan and returns the persisted row
func (r *GormLoanRepository) Insert(ctx context.Context, applicantName string, requestedAmount float64) (*domain.Loan, error) {
	now := time.Now()
	row := models.Loan{
		ID:              uuid.NewString(),
		ApplicantName:   applicantName,
		RequestedAmount: requestedAmount,
		Status:          string(domain.StatusPending),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

// ApplyPartialUpdate updates only the provided fields and refreshes updated_at.
// Returns nil without error when no field is provided or the id is unknown.
func (r *GormLoanRepository) ApplyPartialUpdate(ctx context.Context, id string, input domain.UpdateLoanInput) (*domain.Loan, error) {
	if input.IsEmpty() {
		return nil, nil
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if input.ApplicantName != nil {
		updates["applicant_name"] = *input.ApplicantName
	}
	if input.RequestedAmount != nil {
		updates["requested_amount"] = *input.RequestedAmount
	}
	if input.Status != nil {
		updates["status"] = string(*input.Status)
	}

	result := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.GetByID(ctx, id)
}

// Delete removes a loan row; reports whether a row was actually removed
func (r *GormLoanRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Loan{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
