// file: internals/features/invites/model/invite_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// InviteModel: link undangan bergabung ke madrasah dengan role tertentu.
// Token tidak kedaluwarsa; admin menonaktifkan lewat is_active.
type InviteModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MadrasahID uuid.UUID `gorm:"column:madrasah_id;type:uuid;not null;index" json:"madrasah_id"`
	Token      string    `gorm:"column:token;size:64;not null;unique" json:"token"`
	Role       string    `gorm:"column:role;type:varchar(20);not null" json:"role"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	UsedCount  int       `gorm:"column:used_count;not null;default:0" json:"used_count"`
	CreatedBy  *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (InviteModel) TableName() string { return "invites" }
