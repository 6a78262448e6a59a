// file: internals/features/school/dto/teacher_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"madrasahku_backend/internals/features/school/model"
)

type CreateTeacherRequest struct {
	Name       string     `json:"name" validate:"required,min=2,max=100"`
	Phone      *string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email      *string    `json:"email,omitempty" validate:"omitempty,email"`
	Subjects   []string   `json:"subjects,omitempty"`
	BaseSalary *float64   `json:"base_salary,omitempty" validate:"omitempty,gte=0"`
	JoinedAt   *time.Time `json:"joined_at,omitempty"`
}

func (r CreateTeacherRequest) ToModel(madrasahID uuid.UUID) model.Teacher {
	return model.Teacher{
		MadrasahID: madrasahID,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Subjects:   pq.StringArray(r.Subjects),
		BaseSalary: r.BaseSalary,
		JoinedAt:   r.JoinedAt,
		IsActive:   true,
	}
}

type UpdateTeacherRequest struct {
	Name       *string    `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone      *string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email      *string    `json:"email,omitempty" validate:"omitempty,email"`
	Subjects   []string   `json:"subjects,omitempty"`
	BaseSalary *float64   `json:"base_salary,omitempty" validate:"omitempty,gte=0"`
	JoinedAt   *time.Time `json:"joined_at,omitempty"`
	IsActive   *bool      `json:"is_active,omitempty"`
}

func (r UpdateTeacherRequest) Apply(m *model.Teacher) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.Email != nil {
		m.Email = r.Email
	}
	if r.Subjects != nil {
		m.Subjects = pq.StringArray(r.Subjects)
	}
	if r.BaseSalary != nil {
		m.BaseSalary = r.BaseSalary
	}
	if r.JoinedAt != nil {
		m.JoinedAt = r.JoinedAt
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}
