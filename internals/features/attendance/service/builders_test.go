// file: internals/features/attendance/service/builders_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	m "kampusku_backend/internals/features/attendance/model"
	scheduleModel "kampusku_backend/internals/features/schedules/model"
)

func TestNewDailyMeeting(t *testing.T) {
	schedule := scheduleModel.ScheduleModel{
		ScheduleID:        uuid.New(),
		ScheduleSessionID: uuid.New(),
		ScheduleSubjectID: uuid.New(),
		ScheduleDay:       "Monday",
		ScheduleStartTime: "08:00",
		ScheduleEndTime:   "09:40",
	}
	opener := uuid.New()
	date := time.Date(2026, 8, 31, 8, 15, 0, 0, time.UTC)

	row := NewDailyMeeting(schedule, opener, date, datatypes.JSON(`{"topic":"bab 1"}`))

	// referensi disalin dari schedule, tanggal dinormalisasi per hari
	assert.Equal(t, schedule.ScheduleID, row.ClassAttendanceScheduleID)
	assert.Equal(t, schedule.ScheduleSessionID, row.ClassAttendanceSessionID)
	assert.Equal(t, schedule.ScheduleSubjectID, row.ClassAttendanceSubjectID)
	assert.Equal(t, "2026-08-31", row.ClassAttendanceDate)
	assert.Equal(t, opener, row.ClassAttendanceOpenedBy)
}

func TestNewDailyMeetingRepeatStartSameKey(t *testing.T) {
	schedule := scheduleModel.ScheduleModel{
		ScheduleID:        uuid.New(),
		ScheduleSessionID: uuid.New(),
		ScheduleSubjectID: uuid.New(),
	}
	morning := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	afternoon := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)

	first := NewDailyMeeting(schedule, uuid.New(), morning, nil)
	second := NewDailyMeeting(schedule, uuid.New(), afternoon, nil)

	// start ulang di hari yang sama (teacher lain, jam lain) menghasilkan
	// tuple unik (schedule, session, date) yang identik: index yang menjaga
	// supaya cuma satu pertemuan yang hidup
	assert.Equal(t, first.ClassAttendanceScheduleID, second.ClassAttendanceScheduleID)
	assert.Equal(t, first.ClassAttendanceSessionID, second.ClassAttendanceSessionID)
	assert.Equal(t, first.ClassAttendanceDate, second.ClassAttendanceDate)

	nextDay := NewDailyMeeting(schedule, uuid.New(), morning.AddDate(0, 0, 1), nil)
	assert.NotEqual(t, first.ClassAttendanceDate, nextDay.ClassAttendanceDate)
}

func TestNewRequest(t *testing.T) {
	meeting := m.ClassAttendanceModel{
		ClassAttendanceID:         uuid.New(),
		ClassAttendanceScheduleID: uuid.New(),
		ClassAttendanceSessionID:  uuid.New(),
		ClassAttendanceSubjectID:  uuid.New(),
		ClassAttendanceDate:       "2026-08-31",
	}
	studentID := uuid.New()
	note := "izin telat 5 menit"

	row := NewRequest(meeting, studentID, &note)

	assert.Equal(t, meeting.ClassAttendanceID, row.AttendanceClassAttendanceID)
	assert.Equal(t, studentID, row.AttendanceStudentID)
	assert.Equal(t, meeting.ClassAttendanceSessionID, row.AttendanceSessionID)
	assert.Equal(t, meeting.ClassAttendanceSubjectID, row.AttendanceSubjectID)
	assert.Equal(t, meeting.ClassAttendanceScheduleID, row.AttendanceScheduleID)
	assert.Equal(t, meeting.ClassAttendanceDate, row.AttendanceClassDate)
	assert.Equal(t, m.AttendanceStatusPending, row.AttendanceStatus)
	require.NotNil(t, row.AttendanceNote)
	assert.Equal(t, note, *row.AttendanceNote)
	assert.Nil(t, row.AttendanceAcceptedBy)
}

func TestDecisionColumnsOnlyStatusAndAcceptedBy(t *testing.T) {
	teacherID := uuid.New()
	cols := DecisionColumns(m.AttendanceStatusAccepted, teacherID)

	// keputusan tidak boleh menyentuh kolom lain: bukan note, bukan
	// referensi session/subject/schedule, bukan student
	require.Len(t, cols, 2)
	assert.Equal(t, m.AttendanceStatusAccepted, cols["attendance_status"])
	assert.Equal(t, teacherID, cols["attendance_accepted_by"])
}
