// file: internals/features/users/user/model/user_role_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleModel: sumber otoritatif role per (user, madrasah).
type UserRoleModel struct {
	UserRoleID uuid.UUID  `gorm:"column:user_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_role_id"`
	UserID     uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_user_roles_user_madrasah" json:"user_id"`
	MadrasahID uuid.UUID  `gorm:"column:madrasah_id;type:uuid;not null;uniqueIndex:uq_user_roles_user_madrasah" json:"madrasah_id"`
	Role       string     `gorm:"column:role;type:varchar(20);not null" json:"role"`
	AssignedAt time.Time  `gorm:"column:assigned_at;autoCreateTime" json:"assigned_at"`
	AssignedBy *uuid.UUID `gorm:"column:assigned_by;type:uuid" json:"assigned_by,omitempty"`
}

func (UserRoleModel) TableName() string { return "user_roles" }
