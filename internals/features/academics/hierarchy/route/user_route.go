// file: internals/features/academics/hierarchy/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/hierarchy/controller"
)

// Drill-down hierarchy untuk semua user login: listing anak per parent
// (nested path) + detail per entity.
func HierarchyUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewHierarchyController(db, v)

	user.Get("/departments", ctl.ListDepartments)
	user.Get("/departments/:id", ctl.GetDepartment)
	user.Get("/departments/:department_id/levels", ctl.ListLevels)

	user.Get("/levels/:id", ctl.GetLevel)
	user.Get("/levels/:level_id/programs", ctl.ListPrograms)

	user.Get("/programs/:id", ctl.GetProgram)
	user.Get("/programs/:program_id/courses", ctl.ListCourses)

	user.Get("/courses/:id", ctl.GetCourse)
	user.Get("/courses/:course_id/semesters", ctl.ListSemesters)

	user.Get("/semesters/:id", ctl.GetSemester)
	user.Get("/semesters/:semester_id/syllabuses", ctl.ListSyllabuses)

	user.Get("/syllabuses/:id", ctl.GetSyllabus)
}
