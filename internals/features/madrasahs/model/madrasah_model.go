// file: internals/features/madrasahs/model/madrasah_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MadrasahModel adalah record tenant. Semua tabel bisnis menggantung ke
// id ini lewat kolom madrasah_id.
type MadrasahModel struct {
	ID      uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name    string    `gorm:"column:name;size:150;not null" json:"name" validate:"required,min=3,max=150"`
	Code    string    `gorm:"column:code;size:30;not null;unique" json:"code" validate:"required,min=3,max=30"`
	LogoURL *string   `gorm:"column:logo_url;type:text" json:"logo_url,omitempty"`
	Address *string   `gorm:"column:address;type:text" json:"address,omitempty"`
	Phone   *string   `gorm:"column:phone;size:30" json:"phone,omitempty"`
	Email   *string   `gorm:"column:email;size:255" json:"email,omitempty" validate:"omitempty,email"`

	// Base URL publik madrasah; dipakai menyusun link undangan
	BaseURL *string `gorm:"column:base_url;type:text" json:"base_url,omitempty" validate:"omitempty,url"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MadrasahModel) TableName() string { return "madrasah" }
