// file: internals/features/school/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID         uuid.UUID  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID uuid.UUID  `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	StudentID  uuid.UUID  `json:"student_id" gorm:"type:uuid;not null;index" validate:"required"`
	ClassID    *uuid.UUID `json:"class_id,omitempty" gorm:"type:uuid;index"`
	Date       time.Time  `json:"date" gorm:"type:date;not null;index" validate:"required"`
	Status     string     `json:"status" gorm:"type:varchar(10);not null" validate:"required,oneof=present absent late excused sick"`
	MarkedBy   *uuid.UUID `json:"marked_by,omitempty" gorm:"type:uuid"`
	Notes      *string    `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string { return "attendance" }
