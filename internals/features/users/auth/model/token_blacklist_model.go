package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist menampung access token yang sudah di-logout
// sampai lewat masa expiry-nya (dibersihkan scheduler).
type TokenBlacklist struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Token     string         `gorm:"column:token;type:text;not null;index" json:"token"`
	ExpiredAt time.Time      `gorm:"column:expired_at;type:timestamptz;not null" json:"expired_at"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
