// file: internals/features/schedules/route/schedule_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/schedules/controller"
)

func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	scheduleCtrl := controller.NewScheduleController(db, v)
	availabilityCtrl := controller.NewAvailabilityController(db, v)

	admin.Post("/schedules", scheduleCtrl.Create)        // ➕ batch, satu transaksi
	admin.Delete("/schedules/:id", scheduleCtrl.Delete)  // 🗑 cascade schedule_teachers

	admin.Post("/teachers/available", availabilityCtrl.AvailableTeachers) // 🔍 teacher bebas bentrok
	admin.Post("/rooms/available", availabilityCtrl.AvailableRooms)       // 🔍 room bebas bentrok
}

func ScheduleUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	scheduleCtrl := controller.NewScheduleController(db, v)
	timetableCtrl := controller.NewTimetableController(db, v)

	user.Get("/schedules/session/:session_id", scheduleCtrl.ListBySession) // 📄 per session, grouped per hari

	user.Get("/timetable/teacher/:teacher_id/today", timetableCtrl.TeacherToday)
	user.Get("/timetable/teacher/:teacher_id/week", timetableCtrl.TeacherWeek)
	user.Get("/timetable/student/:student_id/today", timetableCtrl.StudentToday)
}
