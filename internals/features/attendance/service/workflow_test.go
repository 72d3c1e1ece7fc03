// file: internals/features/attendance/service/workflow_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "kampusku_backend/internals/features/attendance/model"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(m.AttendanceStatusPending, m.AttendanceStatusAccepted))
	assert.True(t, CanTransition(m.AttendanceStatusPending, m.AttendanceStatusRejected))

	// keputusan final tidak bisa diubah
	assert.False(t, CanTransition(m.AttendanceStatusAccepted, m.AttendanceStatusRejected))
	assert.False(t, CanTransition(m.AttendanceStatusRejected, m.AttendanceStatusAccepted))
	assert.False(t, CanTransition(m.AttendanceStatusAccepted, m.AttendanceStatusPending))
	assert.False(t, CanTransition(m.AttendanceStatusRejected, m.AttendanceStatusPending))

	// no-op & status asing
	assert.False(t, CanTransition(m.AttendanceStatusPending, m.AttendanceStatusPending))
	assert.False(t, CanTransition("unknown", m.AttendanceStatusAccepted))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(m.AttendanceStatusPending))
	assert.True(t, ValidStatus(m.AttendanceStatusAccepted))
	assert.True(t, ValidStatus(m.AttendanceStatusRejected))
	assert.False(t, ValidStatus("approved"))
	assert.False(t, ValidStatus(""))
}
