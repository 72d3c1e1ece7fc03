// file: internals/features/schedules/controller/schedule_controller.go
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

	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	roomModel "kampusku_backend/internals/features/campus/rooms/model"
	d "kampusku_backend/internals/features/schedules/dto"
	m "kampusku_backend/internals/features/schedules/model"
	svc "kampusku_backend/internals/features/schedules/service"
	userModel "kampusku_backend/internals/features/users/auth/model"
	helper "kampusku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v}
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
   Create (batch, satu transaksi)
   ========================= */

// POST /api/a/schedules
// Semua slot di body ditulis all-or-nothing: satu slot invalid
// (hari/jam salah, teacher bukan teacher, room tidak ada) →
// tidak ada satu baris pun yang masuk.
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req d.CreateSchedulesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	sessionID, _ := uuid.Parse(req.SessionID)
	subjectID, _ := uuid.Parse(req.SubjectID)

	db := ctl.DB.WithContext(c.Context())

	var session sessionModel.SessionModel
	if err := db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	var subject subjectModel.SubjectModel
	if err := db.Where("subject_id = ?", subjectID).First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// Validasi & normalisasi slot SEBELUM buka transaksi
	prepared := make([]svc.ScheduleSlot, 0, len(req.Schedule))
	for i, slot := range req.Schedule {
		day, err := svc.NormalizeDay(slot.Day)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, fmt.Sprintf("schedule[%d]: %v", i, err))
		}
		if _, _, err := svc.ParseWindow(slot.StartTime, slot.EndTime); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, fmt.Sprintf("schedule[%d]: %v", i, err))
		}

		ps := svc.ScheduleSlot{Day: day, StartTime: slot.StartTime, EndTime: slot.EndTime}
		if slot.RoomID != nil {
			roomID, _ := uuid.Parse(*slot.RoomID)
			var cnt int64
			if err := db.Model(&roomModel.RoomModel{}).Where("room_id = ?", roomID).Count(&cnt).Error; err != nil {
				return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
			}
			if cnt == 0 {
				return helper.JsonError(c, http.StatusNotFound, fmt.Sprintf("schedule[%d]: room tidak ditemukan", i))
			}
			ps.RoomID = &roomID
		}
		for _, tid := range slot.TeacherIDs {
			teacherID, _ := uuid.Parse(tid)
			var cnt int64
			if err := db.Model(&userModel.UserModel{}).
				Where("user_id = ? AND user_role = 'teacher' AND user_is_active = TRUE", teacherID).
				Count(&cnt).Error; err != nil {
				return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
			}
			if cnt == 0 {
				return helper.JsonError(c, http.StatusNotFound, fmt.Sprintf("schedule[%d]: teacher %s tidak ditemukan", i, tid))
			}
			ps.TeacherIDs = append(ps.TeacherIDs, teacherID)
		}
		prepared = append(prepared, ps)
	}

	created, links := svc.BuildScheduleBatch(sessionID, subjectID, prepared)
	txErr := db.Transaction(func(tx *gorm.DB) error {
		for i := range created {
			if err := tx.Create(&created[i]).Error; err != nil {
				return err
			}
		}
		for i := range links {
			if err := tx.Create(&links[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if isDuplicateKey(txErr) {
			return helper.JsonError(c, http.StatusConflict, "Teacher duplikat pada slot yang sama")
		}
		log.Printf("[Schedule.Create] TX error: %v", txErr)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat schedule")
	}
	return helper.JsonCreated(c, fmt.Sprintf("%d schedule dibuat", len(created)), created)
}

/* =========================
   List per session (grouped)
   ========================= */

// GET /api/u/schedules/session/:session_id
func (ctl *ScheduleController) ListBySession(c *fiber.Ctx) error {
	sessionID, err := parseUUIDParam(c, "session_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	db := ctl.DB.WithContext(c.Context())
	var cnt int64
	if err := db.Model(&sessionModel.SessionModel{}).Where("session_id = ?", sessionID).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if cnt == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
	}

	rows, err := svc.SessionSchedules(db, sessionID)
	if err != nil {
		log.Printf("[Schedule.ListBySession] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", svc.GroupByDay(rows))
}

/* =========================
   Delete (cascade join table)
   ========================= */

// DELETE /api/a/schedules/:id
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_teacher_schedule_id = ?", id).
			Delete(&m.ScheduleTeacherModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("schedule_id = ?", id).Delete(&m.ScheduleModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Schedule tidak ditemukan")
		}
		log.Printf("[Schedule.Delete] TX error: %v", txErr)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menghapus schedule")
	}
	return helper.JsonDeleted(c, "Schedule dihapus", fiber.Map{"schedule_id": id})
}
