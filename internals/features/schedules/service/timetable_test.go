// file: internals/features/schedules/service/timetable_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDay(t *testing.T) {
	rows := []TimetableRow{
		{Day: "Wednesday", StartTime: "13:00", EndTime: "14:40", SubjectName: "Kalkulus"},
		{Day: "Monday", StartTime: "10:00", EndTime: "11:40", SubjectName: "Fisika"},
		{Day: "Monday", StartTime: "08:00", EndTime: "09:40", SubjectName: "Kimia"},
		{Day: "Wednesday", StartTime: "07:30", EndTime: "09:10", SubjectName: "Biologi"},
	}

	groups := GroupByDay(rows)
	require.Len(t, groups, 2)

	// urut hari: Monday dulu, baru Wednesday; hari kosong tidak muncul
	assert.Equal(t, "Monday", groups[0].Day)
	assert.Equal(t, "Wednesday", groups[1].Day)

	// dalam hari: urut jam mulai
	require.Len(t, groups[0].Schedules, 2)
	assert.Equal(t, "Kimia", groups[0].Schedules[0].SubjectName)
	assert.Equal(t, "Fisika", groups[0].Schedules[1].SubjectName)

	require.Len(t, groups[1].Schedules, 2)
	assert.Equal(t, "Biologi", groups[1].Schedules[0].SubjectName)
	assert.Equal(t, "Kalkulus", groups[1].Schedules[1].SubjectName)
}

func TestGroupByDayEmpty(t *testing.T) {
	groups := GroupByDay(nil)
	assert.Empty(t, groups)
	assert.NotNil(t, groups)
}

func TestGroupByDaySundayLast(t *testing.T) {
	rows := []TimetableRow{
		{Day: "Sunday", StartTime: "08:00"},
		{Day: "Saturday", StartTime: "08:00"},
		{Day: "Monday", StartTime: "08:00"},
	}
	groups := GroupByDay(rows)
	require.Len(t, groups, 3)
	assert.Equal(t, "Monday", groups[0].Day)
	assert.Equal(t, "Saturday", groups[1].Day)
	assert.Equal(t, "Sunday", groups[2].Day)
}
