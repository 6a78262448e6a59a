// file: internals/features/madrasahs/dto/madrasah_dto.go
package dto

import (
	"madrasahku_backend/internals/features/madrasahs/model"
)

type CreateMadrasahRequest struct {
	Name    string  `json:"name" validate:"required,min=3,max=150"`
	Code    string  `json:"code" validate:"required,min=3,max=30,alphanum"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	BaseURL *string `json:"base_url,omitempty" validate:"omitempty,url"`
}

type UpdateMadrasahRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=3,max=150"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	BaseURL *string `json:"base_url,omitempty" validate:"omitempty,url"`
}

func (r CreateMadrasahRequest) ToModel() model.MadrasahModel {
	return model.MadrasahModel{
		Name:    r.Name,
		Code:    r.Code,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		BaseURL: r.BaseURL,
	}
}

func (r UpdateMadrasahRequest) Apply(m *model.MadrasahModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Address != nil {
		m.Address = r.Address
	}
	if r.Phone != nil {
		m.Phone = r.Phone
	}
	if r.Email != nil {
		m.Email = r.Email
	}
	if r.BaseURL != nil {
		m.BaseURL = r.BaseURL
	}
}
