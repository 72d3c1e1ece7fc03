// file: internals/features/schedules/dto/schedule_dto.go
package dto

/* =========================
   Request
   ========================= */

// Satu slot di batch create. Hari & jam divalidasi lagi di service
// (day kanonik, HH:MM strict, end > start) setelah lolos tag dasar.
type ScheduleSlotRequest struct {
	Day       string   `json:"day" validate:"required"`
	StartTime string   `json:"start_time" validate:"required,len=5"`
	EndTime   string   `json:"end_time" validate:"required,len=5"`
	RoomID    *string  `json:"room_id,omitempty" validate:"omitempty,uuid"`
	TeacherIDs []string `json:"teacher_ids" validate:"required,min=1,dive,uuid"`
}

// Batch create: semua slot untuk satu pasangan session+subject,
// ditulis dalam SATU transaksi (all-or-nothing).
type CreateSchedulesRequest struct {
	SessionID string                `json:"session_id" validate:"required,uuid"`
	SubjectID string                `json:"subject_id" validate:"required,uuid"`
	Schedule  []ScheduleSlotRequest `json:"schedule" validate:"required,min=1,dive"`
}

type AvailableTeachersRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required,len=5"`
	EndTime   string `json:"end_time" validate:"required,len=5"`
}

type AvailableRoomsRequest struct {
	BuildingID string `json:"building_id" validate:"required,uuid"`
	Day        string `json:"day" validate:"required"`
	StartTime  string `json:"start_time" validate:"required,len=5"`
	EndTime    string `json:"end_time" validate:"required,len=5"`
}
