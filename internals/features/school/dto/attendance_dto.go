// file: internals/features/school/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type MarkAttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=present absent late excused sick"`
	Notes     *string   `json:"notes,omitempty"`
}

// MarkAttendanceRequest: absensi satu kelas sekali submit
type MarkAttendanceRequest struct {
	ClassID *uuid.UUID            `json:"class_id,omitempty"`
	Date    time.Time             `json:"date" validate:"required"`
	Entries []MarkAttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}
