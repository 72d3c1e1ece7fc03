// file: internals/features/academics/hierarchy/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/hierarchy/controller"
)

// Semua mutasi hierarchy di bawah /api/a (teacher/admin).
func HierarchyAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewHierarchyController(db, v)

	admin.Post("/departments", ctl.CreateDepartment)
	admin.Delete("/departments/:id", ctl.DeleteDepartment)

	admin.Post("/levels", ctl.CreateLevel)
	admin.Delete("/levels/:id", ctl.DeleteLevel)

	admin.Post("/programs", ctl.CreateProgram)
	admin.Delete("/programs/:id", ctl.DeleteProgram)

	admin.Post("/courses", ctl.CreateCourse)
	admin.Delete("/courses/:id", ctl.DeleteCourse)

	admin.Post("/semesters", ctl.CreateSemester)
	admin.Delete("/semesters/:id", ctl.DeleteSemester)

	admin.Post("/syllabuses", ctl.CreateSyllabus)
	admin.Delete("/syllabuses/:id", ctl.DeleteSyllabus)
}
