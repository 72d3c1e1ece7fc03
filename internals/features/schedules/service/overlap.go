// file: internals/features/schedules/service/overlap.go
package service

import (
	"fmt"
	"strings"
	"time"
)

/* =======================================================
   Kalkulator interval half-open [start,end) dalam menit.
   Jam wajib "HH:MM" zero-padded 24 jam; format lain ditolak,
   jangan sampai salah banding diam-diam.
   ======================================================= */

var weekdayIndex = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
	"Sunday":    7,
}

// NormalizeDay menerima nama hari (case-insensitive) dan
// mengembalikan bentuk kanonik "Monday".."Sunday".
func NormalizeDay(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", fmt.Errorf("day is required")
	}
	canonical := strings.ToUpper(t[:1]) + strings.ToLower(t[1:])
	if _, ok := weekdayIndex[canonical]; !ok {
		return "", fmt.Errorf("invalid day %q (want Monday..Sunday)", s)
	}
	return canonical, nil
}

// WeekdayIndexOf: Monday=1 .. Sunday=7 (0 kalau tidak dikenal).
func WeekdayIndexOf(day string) int {
	return weekdayIndex[day]
}

// TodayDayName: nama hari lokal untuk "kelas hari ini".
func TodayDayName(now time.Time) string {
	return now.Weekday().String()
}

// ParseClock: "HH:MM" strict → menit sejak 00:00.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q (want HH:MM, zero-padded 24h)", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid time %q (want HH:MM, zero-padded 24h)", s)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q (hour 00-23, minute 00-59)", s)
	}
	return h*60 + m, nil
}

// ParseWindow memvalidasi pasangan jam dan invariant end > start.
func ParseWindow(start, end string) (startMin, endMin int, err error) {
	startMin, err = ParseClock(start)
	if err != nil {
		return 0, 0, err
	}
	endMin, err = ParseClock(end)
	if err != nil {
		return 0, 0, err
	}
	if endMin <= startMin {
		return 0, 0, fmt.Errorf("end_time must be after start_time")
	}
	return startMin, endMin, nil
}

// Overlaps: dua interval half-open bentrok iff aStart < bEnd && bStart < aEnd.
// Simetris; endpoint yang cuma bersentuhan TIDAK bentrok.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
