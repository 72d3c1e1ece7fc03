// file: internals/features/academics/sessions/route/session_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/sessions/controller"
)

func SessionAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewSessionController(db, v)

	admin.Post("/sessions", ctl.CreateSession)
	admin.Post("/enrollments", ctl.EnrollStudent)
	admin.Get("/enrollments/:session_id", ctl.ListEnrollments)
}

func SessionUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewSessionController(db, v)

	// "/current" sebelum listing supaya tidak ketangkap :semester_id
	user.Get("/sessions/:semester_id/current", ctl.GetCurrentSession)
	user.Get("/sessions/:semester_id", ctl.ListSessions)
}
