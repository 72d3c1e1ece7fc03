// file: internals/features/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   ScheduleModel: satu slot kelas mingguan berulang
   (hari + jendela waktu + subject + session).
   Jam disimpan string "HH:MM" zero-padded 24 jam;
   aman dibandingkan leksikografis.
   ======================================================= */

type ScheduleModel struct {
	ScheduleID uuid.UUID `json:"schedule_id" gorm:"type:uuid;primaryKey;column:schedule_id;default:gen_random_uuid()"`

	ScheduleSessionID uuid.UUID  `json:"schedule_session_id" gorm:"type:uuid;not null;index;column:schedule_session_id"`
	ScheduleSubjectID uuid.UUID  `json:"schedule_subject_id" gorm:"type:uuid;not null;index;column:schedule_subject_id"`
	ScheduleRoomID    *uuid.UUID `json:"schedule_room_id,omitempty" gorm:"type:uuid;column:schedule_room_id"`

	ScheduleDay       string `json:"schedule_day" gorm:"type:varchar(10);not null;index;column:schedule_day"` // Monday..Sunday
	ScheduleStartTime string `json:"schedule_start_time" gorm:"type:varchar(5);not null;column:schedule_start_time"`
	ScheduleEndTime   string `json:"schedule_end_time" gorm:"type:varchar(5);not null;column:schedule_end_time"`

	ScheduleCreatedAt time.Time `json:"schedule_created_at" gorm:"column:schedule_created_at;not null;autoCreateTime"`
	ScheduleUpdatedAt time.Time `json:"schedule_updated_at" gorm:"column:schedule_updated_at;not null;autoUpdateTime"`
}

func (ScheduleModel) TableName() string { return "schedules" }

/* =======================================================
   ScheduleTeacherModel: join many-to-many schedule↔teacher.
   Dibuat bersama schedule-nya; ikut terhapus saat schedule
   dihapus (cascade di controller, satu transaksi).
   ======================================================= */

type ScheduleTeacherModel struct {
	ScheduleTeacherID uuid.UUID `json:"schedule_teacher_id" gorm:"type:uuid;primaryKey;column:schedule_teacher_id;default:gen_random_uuid()"`

	ScheduleTeacherScheduleID uuid.UUID `json:"schedule_teacher_schedule_id" gorm:"type:uuid;not null;uniqueIndex:uq_schedule_teachers_pair;index;column:schedule_teacher_schedule_id"`
	ScheduleTeacherTeacherID  uuid.UUID `json:"schedule_teacher_teacher_id" gorm:"type:uuid;not null;uniqueIndex:uq_schedule_teachers_pair;index;column:schedule_teacher_teacher_id"`

	ScheduleTeacherCreatedAt time.Time `json:"schedule_teacher_created_at" gorm:"column:schedule_teacher_created_at;not null;autoCreateTime"`
}

func (ScheduleTeacherModel) TableName() string { return "schedule_teachers" }
