// file: internals/features/academics/sessions/dto/session_dto.go
package dto

import (
	"fmt"
	"strconv"
	"strings"
)

type CreateSessionRequest struct {
	SessionAcademicYear string `json:"session_academic_year" validate:"required,len=9"` // "YYYY-YYYY"
	SessionSyllabusID   string `json:"session_syllabus_id"   validate:"required,uuid4"`
	SessionSemesterID   string `json:"session_semester_id"   validate:"required,uuid4"`
}

type EnrollStudentRequest struct {
	EnrollmentStudentID string `json:"enrollment_student_id" validate:"required,uuid4"`
	EnrollmentSessionID string `json:"enrollment_session_id" validate:"required,uuid4"`
}

// ParseAcademicYear memvalidasi format "YYYY-YYYY" (tahun kedua = tahun pertama + 1).
func ParseAcademicYear(s string) (string, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 4 {
		return "", fmt.Errorf("invalid academic year format (want YYYY-YYYY)")
	}
	first, err1 := strconv.Atoi(parts[0])
	second, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return "", fmt.Errorf("invalid academic year format (want YYYY-YYYY)")
	}
	if second != first+1 {
		return "", fmt.Errorf("academic year must span consecutive years")
	}
	return s, nil
}
