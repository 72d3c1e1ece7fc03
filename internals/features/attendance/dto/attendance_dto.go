// file: internals/features/attendance/dto/attendance_dto.go
package dto

import "gorm.io/datatypes"

type StartClassAttendanceRequest struct {
	ScheduleID string         `json:"schedule_id" validate:"required,uuid"`
	Meta       datatypes.JSON `json:"meta,omitempty"`
}

type CreateAttendanceRequest struct {
	ClassAttendanceID string  `json:"class_attendance_id" validate:"required,uuid"`
	Note              *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type UpdateAttendanceStatusRequest struct {
	Status    string `json:"status" validate:"required,oneof=accepted rejected"`
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
}
