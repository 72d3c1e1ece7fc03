// file: internals/features/attendance/service/builders.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "kampusku_backend/internals/features/attendance/model"
	scheduleModel "kampusku_backend/internals/features/schedules/model"
)

// NewDailyMeeting membangun row pertemuan dari schedule-nya:
// session & subject DISALIN dari schedule, tanggal dari jam server.
// Kunci idempotensinya (schedule, session, date) jadi sama untuk
// siapa pun yang menekan start di hari yang sama.
func NewDailyMeeting(schedule scheduleModel.ScheduleModel, openedBy uuid.UUID, date time.Time, meta datatypes.JSON) m.ClassAttendanceModel {
	return m.ClassAttendanceModel{
		ClassAttendanceScheduleID: schedule.ScheduleID,
		ClassAttendanceSessionID:  schedule.ScheduleSessionID,
		ClassAttendanceSubjectID:  schedule.ScheduleSubjectID,
		ClassAttendanceDate:       date.Format("2006-01-02"),
		ClassAttendanceOpenedBy:   openedBy,
		ClassAttendanceMeta:       meta,
	}
}

// NewRequest membangun request kehadiran pending; referensi
// session/subject/schedule/tanggal disalin dari pertemuan dan
// setelah itu tidak pernah disentuh lagi.
func NewRequest(meeting m.ClassAttendanceModel, studentID uuid.UUID, note *string) m.AttendanceModel {
	return m.AttendanceModel{
		AttendanceClassAttendanceID: meeting.ClassAttendanceID,
		AttendanceStudentID:         studentID,
		AttendanceSessionID:         meeting.ClassAttendanceSessionID,
		AttendanceSubjectID:         meeting.ClassAttendanceSubjectID,
		AttendanceScheduleID:        meeting.ClassAttendanceScheduleID,
		AttendanceClassDate:         meeting.ClassAttendanceDate,
		AttendanceStatus:            m.AttendanceStatusPending,
		AttendanceNote:              note,
	}
}

// DecisionColumns: satu-satunya UPDATE yang boleh menyentuh attendance.
// Hanya status & accepted_by; kolom lain immutable setelah insert.
func DecisionColumns(status string, teacherID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"attendance_status":      status,
		"attendance_accepted_by": teacherID,
	}
}
