// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	m "kampusku_backend/internals/features/users/auth/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"required,oneof=student teacher"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =======================================================
   Response DTOs
   ======================================================= */

type UserResponse struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func NewUserResponse(u *m.UserModel) UserResponse {
	return UserResponse{
		UserID:   u.UserID.String(),
		UserName: u.UserName,
		Email:    u.UserEmail,
		Role:     u.UserRole,
		IsActive: u.UserIsActive,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
