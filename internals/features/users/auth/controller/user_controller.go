// file: internals/features/users/auth/controller/user_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	d "kampusku_backend/internals/features/users/auth/dto"
	m "kampusku_backend/internals/features/users/auth/model"
	helper "kampusku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

func (ctl *UserController) listByRole(c *fiber.Ctx, role string) error {
	p := helper.ResolvePaging(c, 50, 200)

	var total int64
	base := ctl.DB.WithContext(c.Context()).
		Model(&m.UserModel{}).
		Where("user_role = ? AND user_is_active = TRUE", role)
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var rows []m.UserModel
	if err := base.
		Order("user_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	out := make([]d.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.NewUserResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromOffset(total, p.Offset, p.Limit)
	return helper.JsonList(c, "", out, &pg)
}

// GET /api/a/teachers
func (ctl *UserController) ListTeachers(c *fiber.Ctx) error {
	return ctl.listByRole(c, constants.RoleTeacher)
}

// GET /api/a/students
func (ctl *UserController) ListStudents(c *fiber.Ctx) error {
	return ctl.listByRole(c, constants.RoleStudent)
}
