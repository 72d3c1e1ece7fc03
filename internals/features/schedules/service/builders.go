// file: internals/features/schedules/service/builders.go
package service

import (
	"github.com/google/uuid"

	m "kampusku_backend/internals/features/schedules/model"
)

// ScheduleSlot: satu slot yang sudah lolos validasi (hari kanonik,
// jendela jam valid, room & teacher sudah dicek ada).
type ScheduleSlot struct {
	Day        string
	StartTime  string
	EndTime    string
	RoomID     *uuid.UUID
	TeacherIDs []uuid.UUID
}

// BuildScheduleBatch membangun seluruh row batch SEBELUM insert:
// satu ScheduleModel per slot, dan link teacher hanya ke schedule
// dari slot-nya sendiri (tidak pernah menyilang antar slot).
// ID di-assign di sini supaya link bisa dirakit tanpa menunggu DB.
func BuildScheduleBatch(sessionID, subjectID uuid.UUID, slots []ScheduleSlot) ([]m.ScheduleModel, []m.ScheduleTeacherModel) {
	rows := make([]m.ScheduleModel, 0, len(slots))
	links := make([]m.ScheduleTeacherModel, 0)

	for _, slot := range slots {
		row := m.ScheduleModel{
			ScheduleID:        uuid.New(),
			ScheduleSessionID: sessionID,
			ScheduleSubjectID: subjectID,
			ScheduleRoomID:    slot.RoomID,
			ScheduleDay:       slot.Day,
			ScheduleStartTime: slot.StartTime,
			ScheduleEndTime:   slot.EndTime,
		}
		rows = append(rows, row)

		for _, teacherID := range slot.TeacherIDs {
			links = append(links, m.ScheduleTeacherModel{
				ScheduleTeacherScheduleID: row.ScheduleID,
				ScheduleTeacherTeacherID:  teacherID,
			})
		}
	}
	return rows, links
}
