// file: internals/features/school/model/finance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Fee: tagihan/pembayaran SPP per siswa
type Fee struct {
	ID         uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID uuid.UUID  `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	StudentID  uuid.UUID  `json:"student_id" gorm:"type:uuid;not null;index" validate:"required"`
	Month      string     `json:"month" gorm:"type:varchar(7);not null" validate:"required"` // format YYYY-MM
	Amount     float64    `json:"amount" gorm:"type:numeric(14,2);not null" validate:"required,gt=0"`
	Status     string     `json:"status" gorm:"type:varchar(10);not null;default:'unpaid'" validate:"omitempty,oneof=unpaid paid"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	PaidBy     *uuid.UUID `json:"paid_by,omitempty" gorm:"type:uuid"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Fee) TableName() string { return "fees" }

// Income: pemasukan non-SPP (donasi, infaq, dll)
type Income struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID uuid.UUID `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	Date       time.Time `json:"date" gorm:"type:date;not null" validate:"required"`
	Category   string    `json:"category" gorm:"size:50;not null" validate:"required"`
	Amount     float64   `json:"amount" gorm:"type:numeric(14,2);not null" validate:"required,gt=0"`
	Notes      *string   `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Income) TableName() string { return "income" }

// Expense: pengeluaran operasional
type Expense struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID uuid.UUID `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	Date       time.Time `json:"date" gorm:"type:date;not null" validate:"required"`
	Category   string    `json:"category" gorm:"size:50;not null" validate:"required"`
	Amount     float64   `json:"amount" gorm:"type:numeric(14,2);not null" validate:"required,gt=0"`
	Notes      *string   `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Expense) TableName() string { return "expense" }
