package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklist menyimpan access token yang sudah di-logout sampai kedaluwarsa
type TokenBlacklist struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Token     string    `gorm:"type:text;not null;index" json:"token"`
	ExpiredAt time.Time `gorm:"not null" json:"expired_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
