// file: internals/features/users/user/dto/user_role_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"madrasahku_backend/internals/features/users/user/model"
)

type AssignRoleRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"required,oneof=admin teacher manager parent user"`
}

type UserRoleDTO struct {
	UserRoleID uuid.UUID `json:"user_role_id"`
	UserID     uuid.UUID `json:"user_id"`
	MadrasahID uuid.UUID `json:"madrasah_id"`
	Role       string    `json:"role"`
	AssignedAt time.Time `json:"assigned_at"`
}

func ToUserRoleDTO(m model.UserRoleModel) UserRoleDTO {
	return UserRoleDTO{
		UserRoleID: m.UserRoleID,
		UserID:     m.UserID,
		MadrasahID: m.MadrasahID,
		Role:       m.Role,
		AssignedAt: m.AssignedAt,
	}
}
