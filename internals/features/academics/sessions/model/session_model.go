// file: internals/features/academics/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   SessionModel: satu siklus penyelenggaraan syllabus
   semester pada tahun akademik tertentu.
   "Current" session semester = baris paling baru dibuat
   (kontrak recency, lihat resolver di service).
   ======================================================= */

type SessionModel struct {
	SessionID uuid.UUID `json:"session_id" gorm:"type:uuid;primaryKey;column:session_id;default:gen_random_uuid()"`

	SessionAcademicYear string    `json:"session_academic_year" gorm:"type:varchar(9);not null;uniqueIndex:uq_sessions_year_semester;column:session_academic_year"` // "YYYY-YYYY"
	SessionSyllabusID   uuid.UUID `json:"session_syllabus_id" gorm:"type:uuid;not null;index;column:session_syllabus_id"`
	SessionSemesterID   uuid.UUID `json:"session_semester_id" gorm:"type:uuid;not null;uniqueIndex:uq_sessions_year_semester;index;column:session_semester_id"`

	SessionCreatedAt time.Time `json:"session_created_at" gorm:"column:session_created_at;not null;autoCreateTime"`
	SessionUpdatedAt time.Time `json:"session_updated_at" gorm:"column:session_updated_at;not null;autoUpdateTime"`
}

func (SessionModel) TableName() string { return "sessions" }

/* =======================================================
   StudentEnrollmentModel: keanggotaan student di session.
   Session default student = enrollment paling baru.
   ======================================================= */

type StudentEnrollmentModel struct {
	EnrollmentID        uuid.UUID `json:"enrollment_id" gorm:"type:uuid;primaryKey;column:enrollment_id;default:gen_random_uuid()"`
	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_session;index;column:enrollment_student_id"`
	EnrollmentSessionID uuid.UUID `json:"enrollment_session_id" gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_session;index;column:enrollment_session_id"`

	EnrollmentCreatedAt time.Time `json:"enrollment_created_at" gorm:"column:enrollment_created_at;not null;autoCreateTime"`
}

func (StudentEnrollmentModel) TableName() string { return "student_enrollments" }
