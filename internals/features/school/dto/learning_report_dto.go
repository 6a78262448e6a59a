// file: internals/features/school/dto/learning_report_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"madrasahku_backend/internals/features/school/model"
)

type CreateLearningReportRequest struct {
	StudentID uuid.UUID  `json:"student_id" validate:"required"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
	Date      time.Time  `json:"date" validate:"required"`
	Surahs    []string   `json:"surahs,omitempty"`
	Grade     *string    `json:"grade,omitempty" validate:"omitempty,max=10"`
	Notes     *string    `json:"notes,omitempty"`
}

func (r CreateLearningReportRequest) ToModel(madrasahID uuid.UUID) model.LearningReport {
	return model.LearningReport{
		MadrasahID: madrasahID,
		StudentID:  r.StudentID,
		TeacherID:  r.TeacherID,
		Date:       r.Date,
		Surahs:     pq.StringArray(r.Surahs),
		Grade:      r.Grade,
		Notes:      r.Notes,
	}
}
