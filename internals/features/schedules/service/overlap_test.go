// file: internals/features/schedules/service/overlap_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	mustMin := func(s string) int {
		v, err := ParseClock(s)
		require.NoError(t, err)
		return v
	}

	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"partial overlap", "10:00", "11:00", "10:30", "11:30", true},
		{"identical windows", "10:00", "11:00", "10:00", "11:00", true},
		{"b contains a", "10:00", "11:00", "09:00", "12:00", true},
		{"a contains b", "08:00", "12:00", "09:00", "10:00", true},
		{"touching endpoints no overlap", "10:00", "11:00", "11:00", "12:00", false},
		{"touching endpoints reversed", "11:00", "12:00", "10:00", "11:00", false},
		{"fully disjoint", "08:00", "09:00", "13:00", "14:00", false},
		{"one minute overlap", "10:00", "11:01", "11:00", "12:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(mustMin(tt.aStart), mustMin(tt.aEnd), mustMin(tt.bStart), mustMin(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// simetris: urutan argumen tidak boleh mengubah hasil
			rev := Overlaps(mustMin(tt.bStart), mustMin(tt.bEnd), mustMin(tt.aStart), mustMin(tt.aEnd))
			assert.Equal(t, got, rev)
		})
	}
}

func TestParseClock(t *testing.T) {
	v, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, v)

	v, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, v)

	for _, bad := range []string{"9:30", "09.30", "0930", "24:00", "12:60", "ab:cd", "", "09:30:00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "input %q harus ditolak", bad)
	}
}

func TestParseWindow(t *testing.T) {
	start, end, err := ParseWindow("08:00", "09:40")
	require.NoError(t, err)
	assert.Equal(t, 480, start)
	assert.Equal(t, 580, end)

	_, _, err = ParseWindow("10:00", "10:00")
	assert.Error(t, err)

	_, _, err = ParseWindow("10:00", "09:00")
	assert.Error(t, err)
}

func TestNormalizeDay(t *testing.T) {
	for _, in := range []string{"monday", "MONDAY", "Monday", " monday "} {
		day, err := NormalizeDay(in)
		require.NoError(t, err)
		assert.Equal(t, "Monday", day)
	}

	_, err := NormalizeDay("Funday")
	assert.Error(t, err)
	_, err = NormalizeDay("")
	assert.Error(t, err)
}

func TestWeekdayIndexOf(t *testing.T) {
	assert.Equal(t, 1, WeekdayIndexOf("Monday"))
	assert.Equal(t, 7, WeekdayIndexOf("Sunday"))
	assert.Equal(t, 0, WeekdayIndexOf("Someday"))

	// TodayDayName harus selalu menghasilkan hari yang dikenal
	assert.NotZero(t, WeekdayIndexOf(TodayDayName(time.Now())))
}
