// file: internals/features/school/model/learning_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// LearningReport: laporan perkembangan hafalan/bacaan santri
type LearningReport struct {
	ID         uuid.UUID      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	MadrasahID uuid.UUID      `json:"madrasah_id" gorm:"column:madrasah_id;type:uuid;not null;index" validate:"required"`
	StudentID  uuid.UUID      `json:"student_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeacherID  *uuid.UUID     `json:"teacher_id,omitempty" gorm:"type:uuid;index"`
	Date       time.Time      `json:"date" gorm:"type:date;not null" validate:"required"`
	Surahs     pq.StringArray `json:"surahs" gorm:"type:text[]"`
	Grade      *string        `json:"grade,omitempty" gorm:"size:10"`
	Notes      *string        `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE"`
	Teacher *Teacher `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID;constraint:OnDelete:SET NULL"`
}

func (LearningReport) TableName() string { return "learning_reports" }
