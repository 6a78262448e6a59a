// file: internals/features/school/dto/finance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"madrasahku_backend/internals/features/school/model"
)

/* =========================
   Fees (SPP)
========================= */

type CreateFeeRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Month     string    `json:"month" validate:"required,len=7"` // YYYY-MM
	Amount    float64   `json:"amount" validate:"required,gt=0"`
}

func (r CreateFeeRequest) ToModel(madrasahID uuid.UUID) model.Fee {
	return model.Fee{
		MadrasahID: madrasahID,
		StudentID:  r.StudentID,
		Month:      r.Month,
		Amount:     r.Amount,
		Status:     "unpaid",
	}
}

type PayFeeRequest struct {
	FeeID uuid.UUID `json:"fee_id" validate:"required"`
}

/* =========================
   Income / Expense
========================= */

type CreateIncomeRequest struct {
	Date     time.Time `json:"date" validate:"required"`
	Category string    `json:"category" validate:"required,max=50"`
	Amount   float64   `json:"amount" validate:"required,gt=0"`
	Notes    *string   `json:"notes,omitempty"`
}

func (r CreateIncomeRequest) ToModel(madrasahID uuid.UUID) model.Income {
	return model.Income{
		MadrasahID: madrasahID,
		Date:       r.Date,
		Category:   r.Category,
		Amount:     r.Amount,
		Notes:      r.Notes,
	}
}

type CreateExpenseRequest struct {
	Date     time.Time `json:"date" validate:"required"`
	Category string    `json:"category" validate:"required,max=50"`
	Amount   float64   `json:"amount" validate:"required,gt=0"`
	Notes    *string   `json:"notes,omitempty"`
}

func (r CreateExpenseRequest) ToModel(madrasahID uuid.UUID) model.Expense {
	return model.Expense{
		MadrasahID: madrasahID,
		Date:       r.Date,
		Category:   r.Category,
		Amount:     r.Amount,
		Notes:      r.Notes,
	}
}

/* =========================
   Payroll
========================= */

type PaySalaryRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	Month     string    `json:"month" validate:"required,len=7"`
	Amount    float64   `json:"amount" validate:"required,gt=0"`
}

type CreateLoanRequest struct {
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Description *string   `json:"description,omitempty"`
}

type RepayLoanRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
