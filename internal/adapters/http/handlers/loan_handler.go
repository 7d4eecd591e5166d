package handlers

import (
	"loandesk/internal/core/domain"
	"loandesk/internal/core/services"
	"loandesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MinimumRequestedAmount is the smallest amount accepted at creation
const MinimumRequestedAmount = 1

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// CreateLoanRequest represents create loan request body
type CreateLoanRequest struct {
	ApplicantName   string  `json:"applicantName"`
	RequestedAmount float64 `json:"requestedAmount"`
}

// UpdateLoanRequest represents update loan request body.
// Empty and omitted fields are treated alike, so a zero
// requestedAmount counts as "not provided".
type UpdateLoanRequest struct {
	ApplicantName   string  `json:"applicantName"`
	RequestedAmount float64 `json:"requestedAmount"`
	Status          string  `json:"status"`
}

// List lists all loans
// @Summary List loans
// @Description List all loans ordered by applicant name
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	loans, err := h.loanService.GetAllLoans(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve loans")
	}

	if len(loans) == 0 {
		return response.OK(c, MsgLoansNotFound, nil)
	}

	return response.OK(c, MsgLoansRetrieved, loans)
}

// GetByID gets a single loan
// @Summary Get loan by ID
// @Description Get a single loan by its id
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /loans/{id} [get]
func (h *LoanHandler) GetByID(c *fiber.Ctx) error {
	loan, err := h.loanService.GetLoanByID(c.Context(), c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve loan")
	}

	if loan == nil {
		return response.OK(c, MsgLoanNotFound, nil)
	}

	return response.OK(c, MsgLoanRetrieved, loan)
}

// Create creates a new loan
// @Summary Create loan
// @Description Create a new loan application
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateLoanRequest true "Loan data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /loans [post]
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var req CreateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, MsgInvalidPayload)
	}

	if req.ApplicantName == "" || req.RequestedAmount < MinimumRequestedAmount {
		return response.BadRequest(c, MsgInvalidPayload)
	}

	loan, err := h.loanService.CreateLoan(c.Context(), req.ApplicantName, req.RequestedAmount)
	if err != nil {
		return response.InternalServerError(c, "Failed to create loan")
	}

	return response.Created(c, MsgLoanCreated, loan)
}

// Update applies a partial update to a loan
// @Summary Update loan
// @Description Update the provided fields of a loan
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Param body body UpdateLoanRequest true "Fields to update"
// @Success 202 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /loans/{id} [put]
func (h *LoanHandler) Update(c *fiber.Ctx) error {
	var req UpdateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, MsgInvalidPayload)
	}

	if req.ApplicantName == "" && req.RequestedAmount == 0 && req.Status == "" {
		return response.BadRequest(c, MsgInvalidPayload)
	}

	input := domain.UpdateLoanInput{}
	if req.ApplicantName != "" {
		input.ApplicantName = &req.ApplicantName
	}
	if req.RequestedAmount != 0 {
		input.RequestedAmount = &req.RequestedAmount
	}
	if req.Status != "" {
		status := domain.LoanStatus(req.Status)
		if !status.IsValid() {
			return response.BadRequest(c, MsgInvalidPayload)
		}
		input.Status = &status
	}

	loan, err := h.loanService.UpdateLoan(c.Context(), c.Params("id"), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to update loan")
	}
	if loan == nil {
		return response.InternalServerError(c, MsgLoanNotUpdated)
	}

	return response.Accepted(c, MsgLoanUpdated, loan)
}

// Reject forces a loan into REJECTED status
// @Summary Reject loan
// @Description Set the loan status to REJECTED
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 202 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /loans/{id}/reject [patch]
func (h *LoanHandler) Reject(c *fiber.Ctx) error {
	loan, err := h.loanService.RejectLoan(c.Context(), c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to reject loan")
	}
	if loan == nil {
		return response.InternalServerError(c, MsgLoanNotRejected)
	}

	return response.Accepted(c, MsgLoanRejected, loan)
}

// Delete removes a loan
// @Summary Delete loan
// @Description Remove a loan permanently
// @Tags Loans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Loan ID"
// @Success 202 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /loans/{id} [delete]
func (h *LoanHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, err := h.loanService.GetLoanByID(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve loan")
	}
	if existing == nil {
		return response.InternalServerError(c, MsgLoanNotFound)
	}

	removed, err := h.loanService.DeleteLoan(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Failed to delete loan")
	}
	if !removed {
		return response.InternalServerError(c, MsgLoanNotRemoved)
	}

	return response.Accepted(c, MsgLoanRemoved, nil)
}
