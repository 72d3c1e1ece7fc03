// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	constants "kampusku_backend/internals/constants"
	hierarchyRoute "kampusku_backend/internals/features/academics/hierarchy/route"
	sessionRoute "kampusku_backend/internals/features/academics/sessions/route"
	subjectRoute "kampusku_backend/internals/features/academics/subjects/route"
	attendanceRoute "kampusku_backend/internals/features/attendance/route"
	roomRoute "kampusku_backend/internals/features/campus/rooms/route"
	scheduleRoute "kampusku_backend/internals/features/schedules/route"
	authRoute "kampusku_backend/internals/features/users/auth/route"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	// ===================== AUTH (public + sesi) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, v)

	// ===================== USER (semua role, login wajib) =====================
	log.Println("[INFO] Setting up USER group (/api/u)...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	hierarchyRoute.HierarchyUserRoutes(user, db, v)
	subjectRoute.SubjectUserRoutes(user, db, v)
	sessionRoute.SessionUserRoutes(user, db, v)
	roomRoute.RoomUserRoutes(user, db, v)
	scheduleRoute.ScheduleUserRoutes(user, db, v)
	attendanceRoute.AttendanceUserRoutes(user, db, v)

	// ===================== ADMIN (teacher & admin) =====================
	log.Println("[INFO] Setting up ADMIN group (/api/a)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("fitur ini"), constants.TeacherAndAbove),
	)

	authRoute.UserAdminRoutes(admin, db, v)
	hierarchyRoute.HierarchyAdminRoutes(admin, db, v)
	subjectRoute.SubjectAdminRoutes(admin, db, v)
	sessionRoute.SessionAdminRoutes(admin, db, v)
	roomRoute.RoomAdminRoutes(admin, db, v)
	scheduleRoute.ScheduleAdminRoutes(admin, db, v)
	attendanceRoute.AttendanceAdminRoutes(admin, db, v)
}
