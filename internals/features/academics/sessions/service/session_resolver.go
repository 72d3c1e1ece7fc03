// file: internals/features/academics/sessions/service/session_resolver.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "kampusku_backend/internals/features/academics/sessions/model"
)

// CurrentSessionForSemester mengembalikan session paling baru dibuat
// untuk sebuah semester. Kontrak recency (bukan flag "active" eksplisit);
// kalau nanti ada flag aktif, cukup ganti resolver ini.
func CurrentSessionForSemester(db *gorm.DB, semesterID uuid.UUID) (*m.SessionModel, error) {
	var row m.SessionModel
	if err := db.
		Where("session_semester_id = ?", semesterID).
		Order("session_created_at DESC").
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// LatestSessionForStudent mengembalikan session dari enrollment
// paling baru milik student (default ketika session tidak dikirim eksplisit).
func LatestSessionForStudent(db *gorm.DB, studentID uuid.UUID) (uuid.UUID, error) {
	var enr m.StudentEnrollmentModel
	if err := db.
		Where("enrollment_student_id = ?", studentID).
		Order("enrollment_created_at DESC").
		First(&enr).Error; err != nil {
		return uuid.Nil, err
	}
	return enr.EnrollmentSessionID, nil
}
