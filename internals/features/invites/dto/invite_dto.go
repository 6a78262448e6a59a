// file: internals/features/invites/dto/invite_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"madrasahku_backend/internals/features/invites/model"
)

type CreateInviteRequest struct {
	Role string `json:"role" validate:"required,oneof=teacher manager parent user"`
}

type AcceptInviteRequest struct {
	Token    string  `json:"token" validate:"required,min=16,max=64"`
	FullName string  `json:"full_name" validate:"required,min=2,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type InviteDTO struct {
	ID         uuid.UUID `json:"id"`
	MadrasahID uuid.UUID `json:"madrasah_id"`
	Token      string    `json:"token"`
	Link       string    `json:"link,omitempty"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	UsedCount  int       `json:"used_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToInviteDTO(m model.InviteModel, link string) InviteDTO {
	return InviteDTO{
		ID:         m.ID,
		MadrasahID: m.MadrasahID,
		Token:      m.Token,
		Link:       link,
		Role:       m.Role,
		IsActive:   m.IsActive,
		UsedCount:  m.UsedCount,
		CreatedAt:  m.CreatedAt,
	}
}
