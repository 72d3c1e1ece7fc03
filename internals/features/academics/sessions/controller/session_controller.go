// file: internals/features/academics/sessions/controller/session_controller.go
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

	hierModel "kampusku_backend/internals/features/academics/hierarchy/model"
	d "kampusku_backend/internals/features/academics/sessions/dto"
	m "kampusku_backend/internals/features/academics/sessions/model"
	svc "kampusku_backend/internals/features/academics/sessions/service"
	userModel "kampusku_backend/internals/features/users/auth/model"
	helper "kampusku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB, v *validator.Validate) *SessionController {
	return &SessionController{DB: db, Validate: v}
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
   Session
   ========================= */

// POST /api/a/sessions
func (ctl *SessionController) CreateSession(c *fiber.Ctx) error {
	var req d.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	year, err := d.ParseAcademicYear(req.SessionAcademicYear)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	syllabusID, _ := uuid.Parse(req.SessionSyllabusID)
	semesterID, _ := uuid.Parse(req.SessionSemesterID)

	// Syllabus harus ada DAN milik semester yang sama
	var syllabus hierModel.SyllabusModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("syllabus_id = ?", syllabusID).
		First(&syllabus).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Syllabus tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if syllabus.SyllabusSemesterID != semesterID {
		return helper.JsonError(c, http.StatusBadRequest, "Syllabus bukan milik semester ini")
	}

	row := m.SessionModel{
		SessionAcademicYear: year,
		SessionSyllabusID:   syllabusID,
		SessionSemesterID:   semesterID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Session tahun akademik ini sudah ada untuk semester tsb")
		}
		log.Printf("[Session.Create] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat session")
	}
	return helper.JsonCreated(c, "Session dibuat", row)
}

// GET /api/u/sessions/:semester_id
func (ctl *SessionController) ListSessions(c *fiber.Ctx) error {
	semesterID, err := parseUUIDParam(c, "semester_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []m.SessionModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("session_semester_id = ?", semesterID).
		Order("session_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/u/sessions/:semester_id/current
func (ctl *SessionController) GetCurrentSession(c *fiber.Ctx) error {
	semesterID, err := parseUUIDParam(c, "semester_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	row, err := svc.CurrentSessionForSemester(ctl.DB.WithContext(c.Context()), semesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Belum ada session untuk semester ini")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", row)
}

/* =========================
   Enrollment
   ========================= */

// POST /api/a/enrollments
func (ctl *SessionController) EnrollStudent(c *fiber.Ctx) error {
	var req d.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	studentID, _ := uuid.Parse(req.EnrollmentStudentID)
	sessionID, _ := uuid.Parse(req.EnrollmentSessionID)

	var n int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_role = 'student' AND user_is_active = TRUE", studentID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if n == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Student tidak ditemukan")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&m.SessionModel{}).
		Where("session_id = ?", sessionID).
		Count(&n).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if n == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
	}

	row := m.StudentEnrollmentModel{
		EnrollmentStudentID: studentID,
		EnrollmentSessionID: sessionID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Student sudah terdaftar di session ini")
		}
		log.Printf("[Session.Enroll] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mendaftarkan student")
	}
	return helper.JsonCreated(c, "Student terdaftar", row)
}

// GET /api/a/enrollments/:session_id
func (ctl *SessionController) ListEnrollments(c *fiber.Ctx) error {
	sessionID, err := parseUUIDParam(c, "session_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []m.StudentEnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("enrollment_session_id = ?", sessionID).
		Order("enrollment_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}
