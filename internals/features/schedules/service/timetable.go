// file: internals/features/schedules/service/timetable.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Aggregation engine: rekonstruksi timetable denormalized
   via join berantai Schedule → Subject → Category,
   Session → Semester → Course → Program → Level → Department,
   plus Room/Building dan Teacher (via join table).

   Relasi opsional (category, room) pakai LEFT JOIN + COALESCE
   'Unknown'; referensi putus TIDAK menggagalkan agregasi.
   ======================================================= */

type TimetableRow struct {
	ScheduleID uuid.UUID `json:"schedule_id" gorm:"column:schedule_id"`

	Day       string `json:"day" gorm:"column:day"`
	StartTime string `json:"start_time" gorm:"column:start_time"`
	EndTime   string `json:"end_time" gorm:"column:end_time"`

	SubjectID    uuid.UUID `json:"subject_id" gorm:"column:subject_id"`
	SubjectName  string    `json:"subject_name" gorm:"column:subject_name"`
	SubjectCode  string    `json:"subject_code" gorm:"column:subject_code"`
	CategoryName string    `json:"category_name" gorm:"column:category_name"`

	SessionID      uuid.UUID `json:"session_id" gorm:"column:session_id"`
	AcademicYear   string    `json:"academic_year" gorm:"column:academic_year"`
	SemesterName   string    `json:"semester_name" gorm:"column:semester_name"`
	CourseName     string    `json:"course_name" gorm:"column:course_name"`
	ProgramName    string    `json:"program_name" gorm:"column:program_name"`
	LevelName      string    `json:"level_name" gorm:"column:level_name"`
	DepartmentName string    `json:"department_name" gorm:"column:department_name"`

	RoomName     *string `json:"room_name,omitempty" gorm:"column:room_name"`
	BuildingName *string `json:"building_name,omitempty" gorm:"column:building_name"`

	// null kalau kelas hari ini belum dimulai
	ClassAttendanceID *uuid.UUID `json:"class_attendance_id,omitempty" gorm:"column:class_attendance_id"`

	// status attendance milik student yang sedang bertanya (student view saja)
	MyAttendanceStatus *string `json:"my_attendance_status,omitempty" gorm:"column:my_attendance_status"`

	TeacherNames []string `json:"teacher_names" gorm:"-"`
}

type DayGroup struct {
	Day       string         `json:"day"`
	Schedules []TimetableRow `json:"schedules"`
}

const timetableJoinChain = `
FROM schedules s
JOIN subjects sub ON sub.subject_id = s.schedule_subject_id
LEFT JOIN categories cat ON cat.category_id = sub.subject_category_id
JOIN sessions sess ON sess.session_id = s.schedule_session_id
JOIN semesters sem ON sem.semester_id = sess.session_semester_id
JOIN courses co ON co.course_id = sem.semester_course_id
JOIN programs pr ON pr.program_id = co.course_program_id
JOIN levels lv ON lv.level_id = pr.program_level_id
JOIN departments dep ON dep.department_id = lv.level_department_id
LEFT JOIN rooms r ON r.room_id = s.schedule_room_id
`

const timetableSelect = `
SELECT
	s.schedule_id,
	s.schedule_day AS day,
	s.schedule_start_time AS start_time,
	s.schedule_end_time AS end_time,
	sub.subject_id,
	sub.subject_name,
	sub.subject_code,
	COALESCE(cat.category_name, 'Unknown') AS category_name,
	sess.session_id,
	sess.session_academic_year AS academic_year,
	sem.semester_name,
	co.course_name,
	pr.program_name,
	lv.level_name,
	dep.department_name,
	r.room_name,
	r.room_building_name AS building_name
`

// attachTeacherNames: enumerasi teacher per schedule via join table
// (query kedua, bukan string_agg; mapping di Go).
func attachTeacherNames(db *gorm.DB, rows []TimetableRow) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ScheduleID)
	}

	type pair struct {
		ScheduleID uuid.UUID `gorm:"column:schedule_id"`
		UserName   string    `gorm:"column:user_name"`
	}
	var pairs []pair
	if err := db.Raw(`
		SELECT st.schedule_teacher_schedule_id AS schedule_id, u.user_name
		FROM schedule_teachers st
		JOIN users u ON u.user_id = st.schedule_teacher_teacher_id
		WHERE st.schedule_teacher_schedule_id IN ?
		ORDER BY u.user_name ASC`, ids).
		Scan(&pairs).Error; err != nil {
		return err
	}

	byID := make(map[uuid.UUID][]string, len(rows))
	for _, p := range pairs {
		byID[p.ScheduleID] = append(byID[p.ScheduleID], p.UserName)
	}
	for i := range rows {
		names := byID[rows[i].ScheduleID]
		if names == nil {
			names = []string{}
		}
		rows[i].TeacherNames = names
	}
	return nil
}

// SessionSchedules: seluruh schedule milik satu session (seminggu penuh),
// belum dikelompokkan; konsumen memanggil GroupByDay.
func SessionSchedules(db *gorm.DB, sessionID uuid.UUID) ([]TimetableRow, error) {
	var rows []TimetableRow
	if err := db.Raw(timetableSelect+
		timetableJoinChain+`
WHERE s.schedule_session_id = ?
ORDER BY s.schedule_start_time ASC`, sessionID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if err := attachTeacherNames(db, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// TeacherClassesOnDay: "kelas hari ini" untuk seorang teacher,
// termasuk id ClassAttendance yang sudah dimulai hari ini (null kalau belum).
func TeacherClassesOnDay(db *gorm.DB, teacherID uuid.UUID, day string, date time.Time) ([]TimetableRow, error) {
	var rows []TimetableRow
	if err := db.Raw(timetableSelect+`,
	ca.class_attendance_id
`+timetableJoinChain+`
JOIN schedule_teachers st ON st.schedule_teacher_schedule_id = s.schedule_id
LEFT JOIN class_attendances ca
	ON ca.class_attendance_schedule_id = s.schedule_id
	AND ca.class_attendance_session_id = s.schedule_session_id
	AND ca.class_attendance_date = ?
WHERE st.schedule_teacher_teacher_id = ? AND s.schedule_day = ?
ORDER BY s.schedule_start_time ASC`,
		date.Format("2006-01-02"), teacherID, day).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if err := attachTeacherNames(db, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// TeacherWeekSchedules: seluruh minggu (tanpa flag attendance),
// belum dikelompokkan per hari.
func TeacherWeekSchedules(db *gorm.DB, teacherID uuid.UUID) ([]TimetableRow, error) {
	var rows []TimetableRow
	if err := db.Raw(timetableSelect+
		timetableJoinChain+`
JOIN schedule_teachers st ON st.schedule_teacher_schedule_id = s.schedule_id
WHERE st.schedule_teacher_teacher_id = ?
ORDER BY s.schedule_start_time ASC`, teacherID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if err := attachTeacherNames(db, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// StudentClassesOnDay: kelas hari ini untuk student pada session tertentu,
// plus status attendance milik student kalau sudah request.
func StudentClassesOnDay(db *gorm.DB, studentID, sessionID uuid.UUID, day string, date time.Time) ([]TimetableRow, error) {
	var rows []TimetableRow
	if err := db.Raw(timetableSelect+`,
	ca.class_attendance_id,
	att.attendance_status AS my_attendance_status
`+timetableJoinChain+`
LEFT JOIN class_attendances ca
	ON ca.class_attendance_schedule_id = s.schedule_id
	AND ca.class_attendance_session_id = s.schedule_session_id
	AND ca.class_attendance_date = ?
LEFT JOIN attendances att
	ON att.attendance_class_attendance_id = ca.class_attendance_id
	AND att.attendance_student_id = ?
WHERE s.schedule_session_id = ? AND s.schedule_day = ?
ORDER BY s.schedule_start_time ASC`,
		date.Format("2006-01-02"), studentID, sessionID, day).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if err := attachTeacherNames(db, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GroupByDay mengelompokkan rows jadi {day, schedules} urut hari lalu jam.
// Hari tanpa schedule TIDAK muncul sebagai grup kosong (kontrak konsumen).
func GroupByDay(rows []TimetableRow) []DayGroup {
	byDay := map[string][]TimetableRow{}
	for _, r := range rows {
		byDay[r.Day] = append(byDay[r.Day], r)
	}

	out := make([]DayGroup, 0, len(byDay))
	for day, list := range byDay {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].StartTime < list[j].StartTime
		})
		out = append(out, DayGroup{Day: day, Schedules: list})
	}
	sort.Slice(out, func(i, j int) bool {
		return WeekdayIndexOf(out[i].Day) < WeekdayIndexOf(out[j].Day)
	})
	return out
}
