// file: internals/features/school/dto/class_dto.go
package dto

import (
	"github.com/google/uuid"

	"madrasahku_backend/internals/features/school/model"
)

type CreateClassRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Level *string `json:"level,omitempty" validate:"omitempty,max=50"`
	Room  *string `json:"room,omitempty" validate:"omitempty,max=50"`
}

func (r CreateClassRequest) ToModel(madrasahID uuid.UUID) model.Class {
	return model.Class{
		MadrasahID: madrasahID,
		Name:       r.Name,
		Level:      r.Level,
		Room:       r.Room,
	}
}

type UpdateClassRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Level *string `json:"level,omitempty" validate:"omitempty,max=50"`
	Room  *string `json:"room,omitempty" validate:"omitempty,max=50"`
}

func (r UpdateClassRequest) Apply(m *model.Class) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Level != nil {
		m.Level = r.Level
	}
	if r.Room != nil {
		m.Room = r.Room
	}
}

type AssignClassTeacherRequest struct {
	TeacherID  uuid.UUID `json:"teacher_id" validate:"required"`
	IsHomeroom bool      `json:"is_homeroom"`
}
