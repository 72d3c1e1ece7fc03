// file: internals/features/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   ClassAttendanceModel: satu "pertemuan" yang dibuka teacher
   untuk schedule+session pada tanggal tertentu.
   Unique (schedule, session, date): start ulang di hari yang sama
   TIDAK membuat pertemuan kedua (idempoten, dijaga index).
   ======================================================= */

type ClassAttendanceModel struct {
	ClassAttendanceID uuid.UUID `json:"class_attendance_id" gorm:"type:uuid;primaryKey;column:class_attendance_id;default:gen_random_uuid()"`

	ClassAttendanceScheduleID uuid.UUID `json:"class_attendance_schedule_id" gorm:"type:uuid;not null;uniqueIndex:uq_class_attendances_daily;column:class_attendance_schedule_id"`
	ClassAttendanceSessionID  uuid.UUID `json:"class_attendance_session_id" gorm:"type:uuid;not null;uniqueIndex:uq_class_attendances_daily;index;column:class_attendance_session_id"`
	ClassAttendanceSubjectID  uuid.UUID `json:"class_attendance_subject_id" gorm:"type:uuid;not null;index;column:class_attendance_subject_id"`
	ClassAttendanceDate       string    `json:"class_attendance_date" gorm:"type:date;not null;uniqueIndex:uq_class_attendances_daily;column:class_attendance_date"` // YYYY-MM-DD

	ClassAttendanceOpenedBy uuid.UUID `json:"class_attendance_opened_by" gorm:"type:uuid;not null;column:class_attendance_opened_by"`

	// materi/topik/catatan bebas per pertemuan
	ClassAttendanceMeta datatypes.JSON `json:"class_attendance_meta,omitempty" gorm:"type:jsonb;column:class_attendance_meta"`

	ClassAttendanceCreatedAt time.Time `json:"class_attendance_created_at" gorm:"column:class_attendance_created_at;not null;autoCreateTime"`
}

func (ClassAttendanceModel) TableName() string { return "class_attendances" }

/* =======================================================
   AttendanceModel: request kehadiran dari student untuk
   satu pertemuan. Unique (student, class_attendance):
   request kedua ditolak 409 oleh index, bukan oleh race-prone
   read-then-write.
   ======================================================= */

const (
	AttendanceStatusPending  = "pending"
	AttendanceStatusAccepted = "accepted"
	AttendanceStatusRejected = "rejected"
)

type AttendanceModel struct {
	AttendanceID uuid.UUID `json:"attendance_id" gorm:"type:uuid;primaryKey;column:attendance_id;default:gen_random_uuid()"`

	AttendanceClassAttendanceID uuid.UUID `json:"attendance_class_attendance_id" gorm:"type:uuid;not null;uniqueIndex:uq_attendances_once_per_student;index;column:attendance_class_attendance_id"`
	AttendanceStudentID         uuid.UUID `json:"attendance_student_id" gorm:"type:uuid;not null;uniqueIndex:uq_attendances_once_per_student;column:attendance_student_id"`

	// Disalin dari pertemuan saat insert; setelah itu tidak pernah berubah
	// (keputusan teacher hanya menyentuh status & accepted_by)
	AttendanceSessionID  uuid.UUID `json:"attendance_session_id" gorm:"type:uuid;not null;index;column:attendance_session_id"`
	AttendanceSubjectID  uuid.UUID `json:"attendance_subject_id" gorm:"type:uuid;not null;column:attendance_subject_id"`
	AttendanceScheduleID uuid.UUID `json:"attendance_schedule_id" gorm:"type:uuid;not null;column:attendance_schedule_id"`
	AttendanceClassDate  string    `json:"attendance_class_date" gorm:"type:date;not null;column:attendance_class_date"` // YYYY-MM-DD

	AttendanceStatus string  `json:"attendance_status" gorm:"type:varchar(10);not null;default:'pending';column:attendance_status"`
	AttendanceNote   *string `json:"attendance_note,omitempty" gorm:"type:text;column:attendance_note"`

	// teacher yang memutuskan; nil selama pending
	AttendanceAcceptedBy *uuid.UUID `json:"attendance_accepted_by,omitempty" gorm:"type:uuid;column:attendance_accepted_by"`

	AttendanceCreatedAt time.Time `json:"attendance_created_at" gorm:"column:attendance_created_at;not null;autoCreateTime"`
	AttendanceUpdatedAt time.Time `json:"attendance_updated_at" gorm:"column:attendance_updated_at;not null;autoUpdateTime"`
}

func (AttendanceModel) TableName() string { return "attendances" }
