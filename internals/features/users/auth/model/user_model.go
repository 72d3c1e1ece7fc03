package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   UserModel: map ke tabel users (student/teacher/admin)
   ======================================================= */

type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`

	UserName  string `json:"user_name" gorm:"type:varchar(100);not null;column:user_name"`
	UserEmail string `json:"user_email" gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email;column:user_email"`

	// simpan HASH bcrypt, jangan pernah keluar di JSON
	UserPassword string `json:"-" gorm:"type:text;not null;column:user_password"`

	UserRole     string `json:"user_role" gorm:"type:varchar(20);not null;default:'student';column:user_role"` // student|teacher|admin
	UserIsActive bool   `json:"user_is_active" gorm:"type:boolean;not null;default:true;column:user_is_active"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string {
	return "users"
}
