// file: internals/features/school/model/payroll_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Salary: pembayaran gaji guru per bulan
type Salary struct {
	ID         uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID uuid.UUID  `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	TeacherID  uuid.UUID  `json:"teacher_id" gorm:"type:uuid;not null;index" validate:"required"`
	Month      string     `json:"month" gorm:"type:varchar(7);not null" validate:"required"` // format YYYY-MM
	Amount     float64    `json:"amount" gorm:"type:numeric(14,2);not null" validate:"required,gt=0"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Salary) TableName() string { return "salaries" }

// Loan: pinjaman guru/staf, dicicil dari gaji
type Loan struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID  uuid.UUID `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	TeacherID   uuid.UUID `json:"teacher_id" gorm:"type:uuid;not null;index" validate:"required"`
	Amount      float64   `json:"amount" gorm:"type:numeric(14,2);not null" validate:"required,gt=0"`
	AmountPaid  float64   `json:"amount_paid" gorm:"type:numeric(14,2);not null;default:0"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	Status      string    `json:"status" gorm:"type:varchar(10);not null;default:'active'" validate:"omitempty,oneof=active settled"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Loan) TableName() string { return "loans" }
