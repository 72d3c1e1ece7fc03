// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	d "kampusku_backend/internals/features/users/auth/dto"
	m "kampusku_backend/internals/features/users/auth/model"
	svc "kampusku_backend/internals/features/users/auth/service"
	helper "kampusku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}

/* =========================
   Register
   ========================= */

// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req d.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Auth.Register] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := m.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: string(hash),
		UserRole:     req.Role,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[Auth.Register] DB.Create error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", d.NewUserResponse(&user))
}

/* =========================
   Login
   ========================= */

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req d.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user m.UserModel
	err := ctl.DB.WithContext(c.Context()).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Printf("[Auth.Login] DB error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, refresh, err := svc.IssueTokenPair(ctl.DB, c, &user)
	if err != nil {
		log.Printf("[Auth.Login] IssueTokenPair error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	svc.SetRefreshCookie(c, refresh, time.Now().UTC())

	return helper.JsonOK(c, "Login berhasil", d.LoginResponse{
		AccessToken: access,
		User:        d.NewUserResponse(&user),
	})
}

/* =========================
   Refresh
   ========================= */

// POST /api/auth/refresh-token
func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	userID, err := svc.ParseRefreshToken(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// Pastikan hash refresh ada & masih aktif di DB (per-user store, bukan variabel global)
	rt, err := svc.FindRefreshTokenByHashActive(ctl.DB, svc.ComputeRefreshHash(raw))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if rt.UserID != userID {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: revoke token lama, terbitkan pasangan baru
	if err := svc.RevokeRefreshTokenByID(ctl.DB, rt.ID); err != nil {
		log.Printf("[Auth.Refresh] revoke old token failed: %v", err)
	}
	access, refresh, err := svc.IssueTokenPair(ctl.DB, c, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token baru")
	}
	svc.SetRefreshCookie(c, refresh, time.Now().UTC())

	return helper.JsonOK(c, "Token diperbarui", fiber.Map{
		"access_token": access,
	})
}

/* =========================
   Logout
   ========================= */

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	// 1) Blacklist access token sampai expiry-nya
	if raw := helper.GetRawAccessToken(c); raw != "" {
		expiredAt := time.Now().Add(svc.AccessTTL)
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		}); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
		bl := m.TokenBlacklist{Token: raw, ExpiredAt: expiredAt}
		if err := ctl.DB.WithContext(c.Context()).Create(&bl).Error; err != nil {
			log.Printf("[Auth.Logout] blacklist insert error: %v", err)
		}
	}

	// 2) Revoke refresh token di store
	if raw := helper.GetRefreshTokenFromCookie(c); raw != "" {
		if rt, err := svc.FindRefreshTokenByHashActive(ctl.DB, svc.ComputeRefreshHash(raw)); err == nil {
			_ = svc.RevokeRefreshTokenByID(ctl.DB, rt.ID)
		}
	}
	svc.ClearRefreshCookie(c)

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* =========================
   Me
   ========================= */

// GET /api/u/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	var user m.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", d.NewUserResponse(&user))
}
