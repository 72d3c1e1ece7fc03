// file: internals/features/attendance/route/attendance_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/attendance/controller"
)

func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAttendanceController(db, v)

	admin.Post("/class-attendances/start", ctl.StartClassAttendance)      // ▶️ buka pertemuan hari ini (idempoten)
	admin.Get("/class-attendances/:id/requests", ctl.ListRequests)        // 📄 semua request per pertemuan
	admin.Patch("/attendances/:id/status", ctl.UpdateAttendanceStatus)    // ✅/❌ keputusan teacher
}

func AttendanceUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAttendanceController(db, v)

	user.Post("/attendances", ctl.CreateAttendance) // ✋ student request hadir
}
