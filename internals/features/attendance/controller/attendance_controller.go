// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "kampusku_backend/internals/features/attendance/dto"
	m "kampusku_backend/internals/features/attendance/model"
	attendanceSvc "kampusku_backend/internals/features/attendance/service"
	scheduleModel "kampusku_backend/internals/features/schedules/model"
	scheduleSvc "kampusku_backend/internals/features/schedules/service"
	userModel "kampusku_backend/internals/features/users/auth/model"
	helper "kampusku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
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
   Start pertemuan (teacher)
   ========================= */

// POST /api/a/class-attendances/start
// Idempoten per (schedule, session, tanggal): start kedua di hari
// yang sama mengembalikan pertemuan yang SUDAH ada dengan 200,
// bukan error dan bukan baris baru.
func (ctl *AttendanceController) StartClassAttendance(c *fiber.Ctx) error {
	var req d.StartClassAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	teacherID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "Unauthorized")
	}

	scheduleID, _ := uuid.Parse(req.ScheduleID)
	db := ctl.DB.WithContext(c.Context())

	var schedule scheduleModel.ScheduleModel
	if err := db.Where("schedule_id = ?", scheduleID).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Schedule tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// Hanya teacher yang terdaftar di schedule ini (admin bebas)
	if helper.GetRoleFromLocals(c) != "admin" {
		var cnt int64
		if err := db.Model(&scheduleModel.ScheduleTeacherModel{}).
			Where("schedule_teacher_schedule_id = ? AND schedule_teacher_teacher_id = ?", scheduleID, teacherID).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		if cnt == 0 {
			return helper.JsonError(c, http.StatusForbidden, "Anda bukan teacher schedule ini")
		}
	}

	now := time.Now()
	if schedule.ScheduleDay != scheduleSvc.TodayDayName(now) {
		return helper.JsonError(c, http.StatusBadRequest,
			fmt.Sprintf("Schedule ini untuk hari %s, bukan hari ini", schedule.ScheduleDay))
	}
	today := now.Format("2006-01-02")

	row := attendanceSvc.NewDailyMeeting(schedule, teacherID, now, req.Meta)
	if err := db.Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			// Race dua teacher start bersamaan → index yang memutuskan,
			// keduanya dapat pertemuan yang sama
			var existing m.ClassAttendanceModel
			if err := db.Where(
				"class_attendance_schedule_id = ? AND class_attendance_session_id = ? AND class_attendance_date = ?",
				scheduleID, schedule.ScheduleSessionID, today,
			).First(&existing).Error; err != nil {
				return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
			}
			return helper.JsonOK(c, "Pertemuan hari ini sudah dimulai", existing)
		}
		log.Printf("[Attendance.StartClassAttendance] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memulai pertemuan")
	}
	return helper.JsonCreated(c, "Pertemuan dimulai", row)
}

/* =========================
   Request kehadiran (student)
   ========================= */

// POST /api/u/attendances
func (ctl *AttendanceController) CreateAttendance(c *fiber.Ctx) error {
	var req d.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	studentID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "Unauthorized")
	}

	classAttendanceID, _ := uuid.Parse(req.ClassAttendanceID)
	db := ctl.DB.WithContext(c.Context())

	var meeting m.ClassAttendanceModel
	if err := db.Where("class_attendance_id = ?", classAttendanceID).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Pertemuan tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if meeting.ClassAttendanceDate != time.Now().Format("2006-01-02") {
		return helper.JsonError(c, http.StatusBadRequest, "Pertemuan ini bukan untuk hari ini")
	}

	row := attendanceSvc.NewRequest(meeting, studentID, req.Note)
	if err := db.Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Anda sudah request kehadiran untuk pertemuan ini")
		}
		log.Printf("[Attendance.CreateAttendance] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat request kehadiran")
	}
	return helper.JsonCreated(c, "Request kehadiran dikirim", row)
}

/* =========================
   Keputusan (teacher)
   ========================= */

// PATCH /api/a/attendances/:id/status
// Hanya status & accepted_by yang berubah; note milik student tidak disentuh.
func (ctl *AttendanceController) UpdateAttendanceStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req d.UpdateAttendanceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	db := ctl.DB.WithContext(c.Context())

	// teacher_id dari body divalidasi beneran teacher
	teacherID, _ := uuid.Parse(req.TeacherID)
	var teacherCnt int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_role = 'teacher' AND user_is_active = TRUE", teacherID).
		Count(&teacherCnt).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if teacherCnt == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Teacher tidak ditemukan")
	}

	var row m.AttendanceModel
	if err := db.Where("attendance_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Request kehadiran tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	if !attendanceSvc.CanTransition(row.AttendanceStatus, req.Status) {
		return helper.JsonError(c, http.StatusConflict,
			fmt.Sprintf("Status %s tidak bisa diubah ke %s", row.AttendanceStatus, req.Status))
	}

	if err := db.Model(&m.AttendanceModel{}).
		Where("attendance_id = ?", id).
		Updates(attendanceSvc.DecisionColumns(req.Status, teacherID)).Error; err != nil {
		log.Printf("[Attendance.UpdateAttendanceStatus] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memperbarui status")
	}

	row.AttendanceStatus = req.Status
	row.AttendanceAcceptedBy = &teacherID
	return helper.JsonUpdated(c, "Status kehadiran diperbarui", row)
}

/* =========================
   Daftar request per pertemuan
   ========================= */

type attendanceRequestRow struct {
	AttendanceID         uuid.UUID  `json:"attendance_id" gorm:"column:attendance_id"`
	StudentID            uuid.UUID  `json:"student_id" gorm:"column:student_id"`
	StudentName          string     `json:"student_name" gorm:"column:student_name"`
	AttendanceStatus     string     `json:"attendance_status" gorm:"column:attendance_status"`
	AttendanceNote       *string    `json:"attendance_note,omitempty" gorm:"column:attendance_note"`
	AttendanceAcceptedBy *uuid.UUID `json:"attendance_accepted_by,omitempty" gorm:"column:attendance_accepted_by"`
	AttendanceCreatedAt  time.Time  `json:"attendance_created_at" gorm:"column:attendance_created_at"`
}

// GET /api/a/class-attendances/:id/requests
func (ctl *AttendanceController) ListRequests(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.Context())

	var cnt int64
	if err := db.Model(&m.ClassAttendanceModel{}).
		Where("class_attendance_id = ?", id).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if cnt == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Pertemuan tidak ditemukan")
	}

	var rows []attendanceRequestRow
	if err := db.Raw(`
		SELECT
			a.attendance_id,
			a.attendance_student_id AS student_id,
			u.user_name AS student_name,
			a.attendance_status,
			a.attendance_note,
			a.attendance_accepted_by,
			a.attendance_created_at
		FROM attendances a
		JOIN users u ON u.user_id = a.attendance_student_id
		WHERE a.attendance_class_attendance_id = ?
		ORDER BY a.attendance_created_at ASC`, id).
		Scan(&rows).Error; err != nil {
		log.Printf("[Attendance.ListRequests] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if rows == nil {
		rows = []attendanceRequestRow{}
	}
	return helper.JsonOK(c, "", rows)
}
