// file: internals/features/school/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"madrasahku_backend/internals/features/school/model"
)

type CreateStudentRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=100"`
	Gender      string     `json:"gender" validate:"required,oneof=male female"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	ParentName  *string    `json:"parent_name,omitempty" validate:"omitempty,max=100"`
	ParentPhone *string    `json:"parent_phone,omitempty" validate:"omitempty,max=30"`
	Address     *string    `json:"address,omitempty"`
	ClassID     *uuid.UUID `json:"class_id,omitempty"`
}

func (r CreateStudentRequest) ToModel(madrasahID uuid.UUID) model.Student {
	return model.Student{
		MadrasahID:  madrasahID,
		Name:        r.Name,
		Gender:      r.Gender,
		BirthDate:   r.BirthDate,
		ParentName:  r.ParentName,
		ParentPhone: r.ParentPhone,
		Address:     r.Address,
		ClassID:     r.ClassID,
		IsActive:    true,
	}
}

type UpdateStudentRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Gender      *string    `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	ParentName  *string    `json:"parent_name,omitempty" validate:"omitempty,max=100"`
	ParentPhone *string    `json:"parent_phone,omitempty" validate:"omitempty,max=30"`
	Address     *string    `json:"address,omitempty"`
	ClassID     *uuid.UUID `json:"class_id,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (r UpdateStudentRequest) Apply(m *model.Student) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Gender != nil {
		m.Gender = *r.Gender
	}
	if r.BirthDate != nil {
		m.BirthDate = r.BirthDate
	}
	if r.ParentName != nil {
		m.ParentName = r.ParentName
	}
	if r.ParentPhone != nil {
		m.ParentPhone = r.ParentPhone
	}
	if r.Address != nil {
		m.Address = r.Address
	}
	if r.ClassID != nil {
		m.ClassID = r.ClassID
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
