// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/sha256"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	authModel "kampusku_backend/internals/features/users/auth/model"
)

const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   Claims builder & signing
   ========================== */

func buildAccessClaims(u *authModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       u.UserID.String(),
		"user_id":   u.UserID.String(),
		"user_name": u.UserName,
		"role":      u.UserRole,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	}
}

// IssueTokenPair membuat access + refresh JWT dan menyimpan HASH refresh di DB.
func IssueTokenPair(db *gorm.DB, c *fiber.Ctx, u *authModel.UserModel) (access string, refresh string, err error) {
	if configs.JWTSecret == "" || configs.JWTRefreshSecret == "" {
		return "", "", errors.New("JWT secret belum diset")
	}
	now := nowUTC()

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.UserID, now)).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", "", err
	}

	row := authModel.RefreshToken{
		UserID:    u.UserID,
		TokenHash: ComputeRefreshHash(refresh),
		ExpiresAt: now.Add(RefreshTTL),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}
	if err := db.Create(&row).Error; err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ComputeRefreshHash: SHA-256 dari raw token (yang disimpan di DB)
func ComputeRefreshHash(raw string) []byte {
	h := sha256.Sum256([]byte(raw))
	return h[:]
}

/* ==========================
   Refresh-token store
   ========================== */

// FindRefreshTokenByHashActive cari refresh token yang aktif
// (belum di-revoke, belum expired)
func FindRefreshTokenByHashActive(db *gorm.DB, hash []byte) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", hash).
		Limit(1).
		Find(&rt).Error; err != nil {
		return nil, err
	}
	if rt.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &rt, nil
}

// RevokeRefreshTokenByID revoke satu baris (logout / rotasi)
func RevokeRefreshTokenByID(db *gorm.DB, id uuid.UUID) error {
	now := nowUTC()
	res := db.Model(&authModel.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RevokeAllRefreshTokens revoke semua sesi milik user (revocation eksplisit)
func RevokeAllRefreshTokens(db *gorm.DB, userID uuid.UUID) error {
	return db.Model(&authModel.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", nowUTC()).Error
}

// ParseRefreshToken validasi JWT refresh dan kembalikan user id (sub)
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	return id, nil
}

/* ==========================
   Cookies
   ========================== */

func SetRefreshCookie(c *fiber.Ctx, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(RefreshTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
}

func ClearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
