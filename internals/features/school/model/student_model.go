// file: internals/features/school/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID uuid.UUID `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	Name       string    `json:"name" gorm:"size:100;not null" validate:"required,min=2,max=100"`
	Gender     string    `json:"gender" gorm:"type:varchar(10);not null" validate:"required,oneof=male female"`
	BirthDate  *time.Time `json:"birth_date,omitempty" gorm:"type:date"`
	ParentName *string   `json:"parent_name,omitempty" gorm:"size:100"`
	ParentPhone *string  `json:"parent_phone,omitempty" gorm:"size:30"`
	Address    *string   `json:"address,omitempty" gorm:"type:text"`
	ClassID    *uuid.UUID `json:"class_id,omitempty" gorm:"type:uuid;index"`
	IsActive   bool      `json:"is_active" gorm:"not null;default:true"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Student) TableName() string { return "students" }
