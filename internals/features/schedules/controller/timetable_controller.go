// file: internals/features/schedules/controller/timetable_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sessionSvc "kampusku_backend/internals/features/academics/sessions/service"
	svc "kampusku_backend/internals/features/schedules/service"
	userModel "kampusku_backend/internals/features/users/auth/model"
	helper "kampusku_backend/internals/helpers"
)

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimetableController(db *gorm.DB, v *validator.Validate) *TimetableController {
	return &TimetableController{DB: db, Validate: v}
}

func (ctl *TimetableController) mustUserWithRole(c *fiber.Ctx, id uuid.UUID, role string) (*userModel.UserModel, error) {
	var u userModel.UserModel
	err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ? AND user_role = ?", id, role).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GET /api/u/timetable/teacher/:teacher_id/today
func (ctl *TimetableController) TeacherToday(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "teacher_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if _, err := ctl.mustUserWithRole(c, teacherID, "teacher"); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	now := time.Now()
	rows, err := svc.TeacherClassesOnDay(ctl.DB.WithContext(c.Context()), teacherID, svc.TodayDayName(now), now)
	if err != nil {
		log.Printf("[Timetable.TeacherToday] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"day":       svc.TodayDayName(now),
		"date":      now.Format("2006-01-02"),
		"schedules": rows,
	})
}

// GET /api/u/timetable/teacher/:teacher_id/week
func (ctl *TimetableController) TeacherWeek(c *fiber.Ctx) error {
	teacherID, err := parseUUIDParam(c, "teacher_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if _, err := ctl.mustUserWithRole(c, teacherID, "teacher"); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	rows, err := svc.TeacherWeekSchedules(ctl.DB.WithContext(c.Context()), teacherID)
	if err != nil {
		log.Printf("[Timetable.TeacherWeek] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", svc.GroupByDay(rows))
}

// GET /api/u/timetable/student/:student_id/today?session_id=
// session_id opsional; default = session dari enrollment terbaru student.
func (ctl *TimetableController) StudentToday(c *fiber.Ctx) error {
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if _, err := ctl.mustUserWithRole(c, studentID, "student"); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	db := ctl.DB.WithContext(c.Context())

	var sessionID uuid.UUID
	if raw := strings.TrimSpace(c.Query("session_id")); raw != "" {
		sessionID, err = uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "session_id tidak valid")
		}
	} else {
		sessionID, err = sessionSvc.LatestSessionForStudent(db, studentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, http.StatusNotFound, "Student belum punya enrollment")
			}
			return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}

	now := time.Now()
	rows, err := svc.StudentClassesOnDay(db, studentID, sessionID, svc.TodayDayName(now), now)
	if err != nil {
		log.Printf("[Timetable.StudentToday] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"day":        svc.TodayDayName(now),
		"date":       now.Format("2006-01-02"),
		"session_id": sessionID,
		"schedules":  rows,
	})
}
