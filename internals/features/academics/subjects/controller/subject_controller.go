// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	hierModel "kampusku_backend/internals/features/academics/hierarchy/model"
	d "kampusku_backend/internals/features/academics/subjects/dto"
	m "kampusku_backend/internals/features/academics/subjects/model"
	helper "kampusku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}

/* =========================
   Category
   ========================= */

// POST /api/a/categories
func (ctl *SubjectController) CreateCategory(c *fiber.Ctx) error {
	var req d.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	row := m.CategoryModel{CategoryName: strings.TrimSpace(req.CategoryName)}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Category sudah ada")
		}
		log.Printf("[Subject.CreateCategory] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat category")
	}
	return helper.JsonCreated(c, "Category dibuat", row)
}

// GET /api/u/categories
func (ctl *SubjectController) ListCategories(c *fiber.Ctx) error {
	var rows []m.CategoryModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("category_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

/* =========================
   Subject
   ========================= */

// POST /api/a/subjects
func (ctl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	syllabusID, _ := uuid.Parse(req.SubjectSyllabusID)
	var n int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&hierModel.SyllabusModel{}).
		Where("syllabus_id = ?", syllabusID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if n == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Syllabus tidak ditemukan")
	}

	var categoryID *uuid.UUID
	if req.SubjectCategoryID != nil && strings.TrimSpace(*req.SubjectCategoryID) != "" {
		id, err := uuid.Parse(*req.SubjectCategoryID)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "subject_category_id invalid")
		}
		var cn int64
		if err := ctl.DB.WithContext(c.Context()).
			Model(&m.CategoryModel{}).
			Where("category_id = ?", id).
			Count(&cn).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		if cn == 0 {
			return helper.JsonError(c, http.StatusNotFound, "Category tidak ditemukan")
		}
		categoryID = &id
	}

	row := m.SubjectModel{
		SubjectName:       strings.TrimSpace(req.SubjectName),
		SubjectCode:       strings.ToUpper(strings.TrimSpace(req.SubjectCode)),
		SubjectSyllabusID: syllabusID,
		SubjectCategoryID: categoryID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Subject dengan kode ini sudah ada di syllabus")
		}
		log.Printf("[Subject.CreateSubject] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat subject")
	}
	return helper.JsonCreated(c, "Subject dibuat", row)
}

// GET /api/u/subjects/:syllabus_id
func (ctl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	syllabusID, err := parseUUIDParam(c, "syllabus_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []m.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("subject_syllabus_id = ?", syllabusID).
		Order("subject_code ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

// DELETE /api/a/subjects/:id
func (ctl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("subject_id = ?", id).
		Delete(&m.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Subject tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Subject dihapus", fiber.Map{"subject_id": id})
}
