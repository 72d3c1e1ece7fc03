// file: internals/features/attendance/service/workflow.go
package service

import (
	m "kampusku_backend/internals/features/attendance/model"
)

// Transisi status yang sah. Keputusan final: accepted/rejected
// tidak bisa diubah lagi lewat endpoint ini.
var allowedTransitions = map[string][]string{
	m.AttendanceStatusPending: {m.AttendanceStatusAccepted, m.AttendanceStatusRejected},
}

func ValidStatus(s string) bool {
	switch s {
	case m.AttendanceStatusPending, m.AttendanceStatusAccepted, m.AttendanceStatusRejected:
		return true
	}
	return false
}

func CanTransition(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}
