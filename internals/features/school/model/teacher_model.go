// file: internals/features/school/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Teacher struct {
	ID         uuid.UUID      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID uuid.UUID      `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	Name       string         `json:"name" gorm:"size:100;not null" validate:"required,min=2,max=100"`
	Phone      *string        `json:"phone,omitempty" gorm:"size:30"`
	Email      *string        `json:"email,omitempty" gorm:"size:255" validate:"omitempty,email"`
	Subjects   pq.StringArray `json:"subjects" gorm:"type:text[]"`
	BaseSalary *float64       `json:"base_salary,omitempty" gorm:"type:numeric(14,2)"`
	JoinedAt   *time.Time     `json:"joined_at,omitempty" gorm:"type:date"`
	IsActive   bool           `json:"is_active" gorm:"not null;default:true"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Teacher) TableName() string { return "teachers" }
