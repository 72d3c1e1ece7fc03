// file: internals/features/academics/subjects/route/subject_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/subjects/controller"
)

func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewSubjectController(db, v)

	admin.Post("/categories", ctl.CreateCategory)
	admin.Post("/subjects", ctl.CreateSubject)
	admin.Delete("/subjects/:id", ctl.DeleteSubject)
}

func SubjectUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewSubjectController(db, v)

	user.Get("/categories", ctl.ListCategories)
	user.Get("/subjects/:syllabus_id", ctl.ListSubjects)
}
