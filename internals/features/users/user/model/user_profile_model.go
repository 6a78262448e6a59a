package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserProfileModel: satu baris per keanggotaan user di satu madrasah.
// Kolom role di sini hanya cache tampilan — otorisasi selalu membaca
// user_roles (lihat internals/features/authz/resolver.go).
type UserProfileModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	MadrasahID uuid.UUID `gorm:"column:madrasah_id;type:uuid;not null;index" json:"madrasah_id"`
	FullName   string    `gorm:"column:full_name;size:100;not null" json:"full_name"`
	Role       string    `gorm:"column:role;type:varchar(20);not null;default:'user'" json:"role"`
	Phone      *string   `gorm:"column:phone;size:30" json:"phone,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }
