// file: internals/features/schedules/service/builders_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScheduleBatch(t *testing.T) {
	sessionID := uuid.New()
	subjectID := uuid.New()
	roomID := uuid.New()
	t1, t2, t3 := uuid.New(), uuid.New(), uuid.New()

	slots := []ScheduleSlot{
		{Day: "Monday", StartTime: "08:00", EndTime: "09:40", RoomID: &roomID, TeacherIDs: []uuid.UUID{t1, t2}},
		{Day: "Wednesday", StartTime: "10:00", EndTime: "11:40", TeacherIDs: []uuid.UUID{t3}},
		{Day: "Friday", StartTime: "13:00", EndTime: "14:40", TeacherIDs: []uuid.UUID{t1}},
	}

	rows, links := BuildScheduleBatch(sessionID, subjectID, slots)

	// satu row per slot, satu link per teacher per slot
	require.Len(t, rows, len(slots))
	require.Len(t, links, 4)

	for i, row := range rows {
		assert.NotEqual(t, uuid.Nil, row.ScheduleID)
		assert.Equal(t, sessionID, row.ScheduleSessionID)
		assert.Equal(t, subjectID, row.ScheduleSubjectID)
		assert.Equal(t, slots[i].Day, row.ScheduleDay)
		assert.Equal(t, slots[i].StartTime, row.ScheduleStartTime)
		assert.Equal(t, slots[i].EndTime, row.ScheduleEndTime)
	}
	assert.Equal(t, &roomID, rows[0].ScheduleRoomID)
	assert.Nil(t, rows[1].ScheduleRoomID)

	// link hanya menunjuk schedule dari slot-nya sendiri, tidak menyilang
	linksBySchedule := map[uuid.UUID][]uuid.UUID{}
	for _, l := range links {
		linksBySchedule[l.ScheduleTeacherScheduleID] = append(linksBySchedule[l.ScheduleTeacherScheduleID], l.ScheduleTeacherTeacherID)
	}
	assert.ElementsMatch(t, []uuid.UUID{t1, t2}, linksBySchedule[rows[0].ScheduleID])
	assert.ElementsMatch(t, []uuid.UUID{t3}, linksBySchedule[rows[1].ScheduleID])
	assert.ElementsMatch(t, []uuid.UUID{t1}, linksBySchedule[rows[2].ScheduleID])
}

func TestBuildScheduleBatchEmpty(t *testing.T) {
	rows, links := BuildScheduleBatch(uuid.New(), uuid.New(), nil)
	assert.Empty(t, rows)
	assert.Empty(t, links)
}
