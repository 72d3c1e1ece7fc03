// file: internals/features/academics/hierarchy/controller/hierarchy_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "kampusku_backend/internals/features/academics/hierarchy/dto"
	m "kampusku_backend/internals/features/academics/hierarchy/model"
	helper "kampusku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type HierarchyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHierarchyController(db *gorm.DB, v *validator.Validate) *HierarchyController {
	return &HierarchyController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// isDuplicateKey: cek pelanggaran unique Postgres (SQLSTATE 23505)
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}

// parentExists: pre-check referensi parent sebelum insert
func (ctl *HierarchyController) parentExists(c *fiber.Ctx, model any, column string, id uuid.UUID) (bool, error) {
	var n int64
	err := ctl.DB.WithContext(c.Context()).
		Model(model).
		Where(column+" = ?", id).
		Count(&n).Error
	return n > 0, err
}

// getByID: lookup detail satu entity hierarki via :id
func (ctl *HierarchyController) getByID(c *fiber.Ctx, dest any, column, label string) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).
		Where(column+" = ?", id).
		First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, label+" tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", dest)
}

/* =========================
   Department
   ========================= */

// POST /api/a/departments
func (ctl *HierarchyController) CreateDepartment(c *fiber.Ctx) error {
	var req d.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	row := m.DepartmentModel{DepartmentName: strings.TrimSpace(req.DepartmentName)}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Department sudah ada")
		}
		log.Printf("[Hierarchy.CreateDepartment] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat department")
	}
	return helper.JsonCreated(c, "Department dibuat", row)
}

// GET /api/u/departments
func (ctl *HierarchyController) ListDepartments(c *fiber.Ctx) error {
	var rows []m.DepartmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("department_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/u/departments/:id
func (ctl *HierarchyController) GetDepartment(c *fiber.Ctx) error {
	var row m.DepartmentModel
	return ctl.getByID(c, &row, "department_id", "Department")
}

// DELETE /api/a/departments/:id
func (ctl *HierarchyController) DeleteDepartment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("department_id = ?", id).
		Delete(&m.DepartmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Department tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Department dihapus", fiber.Map{"department_id": id})
}

/* =========================
   Level
   ========================= */

// POST /api/a/levels
func (ctl *HierarchyController) CreateLevel(c *fiber.Ctx) error {
	var req d.CreateLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	depID, _ := uuid.Parse(req.LevelDepartmentID)
	ok, err := ctl.parentExists(c, &m.DepartmentModel{}, "department_id", depID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if !ok {
		return helper.JsonError(c, http.StatusNotFound, "Department tidak ditemukan")
	}

	row := m.LevelModel{
		LevelName:         strings.TrimSpace(req.LevelName),
		LevelDepartmentID: depID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Level sudah ada di department ini")
		}
		log.Printf("[Hierarchy.CreateLevel] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat level")
	}
	return helper.JsonCreated(c, "Level dibuat", row)
}

// GET /api/u/departments/:department_id/levels
func (ctl *HierarchyController) ListLevels(c *fiber.Ctx) error {
	depID, err := parseUUIDParam(c, "department_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []m.LevelModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("level_department_id = ?", depID).
		Order("level_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/u/levels/:id
func (ctl *HierarchyController) GetLevel(c *fiber.Ctx) error {
	var row m.LevelModel
	return ctl.getByID(c, &row, "level_id", "Level")
}

// DELETE /api/a/levels/:id
func (ctl *HierarchyController) DeleteLevel(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("level_id = ?", id).
		Delete(&m.LevelModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Level tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Level dihapus", fiber.Map{"level_id": id})
}

/* =========================
   Program
   ========================= */

// POST /api/a/programs
func (ctl *HierarchyController) CreateProgram(c *fiber.Ctx) error {
	var req d.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	levelID, _ := uuid.Parse(req.ProgramLevelID)
	ok, err := ctl.parentExists(c, &m.LevelModel{}, "level_id", levelID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if !ok {
		return helper.JsonError(c, http.StatusNotFound, "Level tidak ditemukan")
	}

	row := m.ProgramModel{
		ProgramName:    strings.TrimSpace(req.ProgramName),
		ProgramLevelID: levelID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Program sudah ada di level ini")
		}
		log.Printf("[Hierarchy.CreateProgram] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat program")
	}
	return helper.JsonCreated(c, "Program dibuat", row)
}

// GET /api/u/levels/:level_id/programs
func (ctl *HierarchyController) ListPrograms(c *fiber.Ctx) error {
	levelID, err := parseUUIDParam(c, "level_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []m.ProgramModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("program_level_id = ?", levelID).
		Order("program_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/u/programs/:id
func (ctl *HierarchyController) GetProgram(c *fiber.Ctx) error {
	var row m.ProgramModel
	return ctl.getByID(c, &row, "program_id", "Program")
}

// DELETE /api/a/programs/:id
func (ctl *HierarchyController) DeleteProgram(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("program_id = ?", id).
		Delete(&m.ProgramModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Program tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Program dihapus", fiber.Map{"program_id": id})
}

/* =========================
   Course
   ========================= */

// POST /api/a/courses
func (ctl *HierarchyController) CreateCourse(c *fiber.Ctx) error {
	var req d.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	programID, _ := uuid.Parse(req.CourseProgramID)
	ok, err := ctl.parentExists(c, &m.ProgramModel{}, "program_id", programID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if !ok {
		return helper.JsonError(c, http.StatusNotFound, "Program tidak ditemukan")
	}

	row := m.CourseModel{
		CourseName:      strings.TrimSpace(req.CourseName),
		CourseProgramID: programID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Course sudah ada di program ini")
		}
		log.Printf("[Hierarchy.CreateCourse] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat course")
	}
	return helper.JsonCreated(c, "Course dibuat", row)
}

// GET /api/u/programs/:program_id/courses
func (ctl *HierarchyController) ListCourses(c *fiber.Ctx) error {
	programID, err := parseUUIDParam(c, "program_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []m.CourseModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("course_program_id = ?", programID).
		Order("course_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/u/courses/:id
func (ctl *HierarchyController) GetCourse(c *fiber.Ctx) error {
	var row m.CourseModel
	return ctl.getByID(c, &row, "course_id", "Course")
}

// DELETE /api/a/courses/:id
func (ctl *HierarchyController) DeleteCourse(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("course_id = ?", id).
		Delete(&m.CourseModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Course tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Course dihapus", fiber.Map{"course_id": id})
}

/* =========================
   Semester
   ========================= */

// POST /api/a/semesters
func (ctl *HierarchyController) CreateSemester(c *fiber.Ctx) error {
	var req d.CreateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	courseID, _ := uuid.Parse(req.SemesterCourseID)
	ok, err := ctl.parentExists(c, &m.CourseModel{}, "course_id", courseID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if !ok {
		return helper.JsonError(c, http.StatusNotFound, "Course tidak ditemukan")
	}

	row := m.SemesterModel{
		SemesterName:     strings.TrimSpace(req.SemesterName),
		SemesterCourseID: courseID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Semester sudah ada di course ini")
		}
		log.Printf("[Hierarchy.CreateSemester] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat semester")
	}
	return helper.JsonCreated(c, "Semester dibuat", row)
}

// GET /api/u/courses/:course_id/semesters
func (ctl *HierarchyController) ListSemesters(c *fiber.Ctx) error {
	courseID, err := parseUUIDParam(c, "course_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []m.SemesterModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("semester_course_id = ?", courseID).
		Order("semester_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/u/semesters/:id
func (ctl *HierarchyController) GetSemester(c *fiber.Ctx) error {
	var row m.SemesterModel
	return ctl.getByID(c, &row, "semester_id", "Semester")
}

// DELETE /api/a/semesters/:id
func (ctl *HierarchyController) DeleteSemester(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("semester_id = ?", id).
		Delete(&m.SemesterModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Semester tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Semester dihapus", fiber.Map{"semester_id": id})
}

/* =========================
   Syllabus
   ========================= */

// POST /api/a/syllabuses
func (ctl *HierarchyController) CreateSyllabus(c *fiber.Ctx) error {
	var req d.CreateSyllabusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	semesterID, _ := uuid.Parse(req.SyllabusSemesterID)
	ok, err := ctl.parentExists(c, &m.SemesterModel{}, "semester_id", semesterID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if !ok {
		return helper.JsonError(c, http.StatusNotFound, "Semester tidak ditemukan")
	}

	row := m.SyllabusModel{
		SyllabusName:       strings.TrimSpace(req.SyllabusName),
		SyllabusSemesterID: semesterID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Syllabus sudah ada di semester ini")
		}
		log.Printf("[Hierarchy.CreateSyllabus] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat syllabus")
	}
	return helper.JsonCreated(c, "Syllabus dibuat", row)
}

// GET /api/u/semesters/:semester_id/syllabuses
func (ctl *HierarchyController) ListSyllabuses(c *fiber.Ctx) error {
	semesterID, err := parseUUIDParam(c, "semester_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []m.SyllabusModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("syllabus_semester_id = ?", semesterID).
		Order("syllabus_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/u/syllabuses/:id
func (ctl *HierarchyController) GetSyllabus(c *fiber.Ctx) error {
	var row m.SyllabusModel
	return ctl.getByID(c, &row, "syllabus_id", "Syllabus")
}

// DELETE /api/a/syllabuses/:id
func (ctl *HierarchyController) DeleteSyllabus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("syllabus_id = ?", id).
		Delete(&m.SyllabusModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Syllabus tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Syllabus dihapus", fiber.Map{"syllabus_id": id})
}
