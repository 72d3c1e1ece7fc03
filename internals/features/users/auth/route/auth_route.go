// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/users/auth/controller"
	middleware "kampusku_backend/internals/middlewares"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint publik + endpoint sesi (perlu token valid).
func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	authCtrl := controller.NewAuthController(db, v)

	public := app.Group("/api/auth")
	public.Post("/register", middleware.RegisterRateLimiter(), authCtrl.Register) // ➕ daftar student/teacher
	public.Post("/login", middleware.LoginRateLimiter(), authCtrl.Login)          // 🔑 login + refresh cookie
	public.Post("/refresh-token", authCtrl.RefreshToken)                          // ♻️ rotasi refresh token

	private := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	private.Post("/logout", authCtrl.Logout) // 🚪 blacklist access + revoke refresh
	private.Get("/me", authCtrl.Me)          // 👤 profil dari token
}

// UserAdminRoutes: daftar user per role untuk teacher/admin.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	userCtrl := controller.NewUserController(db, v)

	admin.Get("/teachers", userCtrl.ListTeachers) // 📄 semua teacher aktif
	admin.Get("/students", userCtrl.ListStudents) // 📄 semua student aktif
}
