// file: internals/features/schedules/service/availability.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "kampusku_backend/internals/features/campus/rooms/model"
	m "kampusku_backend/internals/features/schedules/model"
	userModel "kampusku_backend/internals/features/users/auth/model"
)

// Option: pasangan {id, label} generik untuk dropdown ketersediaan.
type Option struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

// conflictingScheduleIDs: schedules di hari tsb (pre-filter SQL per hari,
// bukan full scan) yang jendelanya bentrok dengan [startMin,endMin).
func conflictingScheduleIDs(db *gorm.DB, day string, startMin, endMin int, scopeRoomBuilding *uuid.UUID) ([]uuid.UUID, error) {
	q := db.Model(&m.ScheduleModel{}).Where("schedule_day = ?", day)
	if scopeRoomBuilding != nil {
		// Batasi ke schedule yang terikat room di building tsb
		q = q.Where("schedule_room_id IN (SELECT room_id FROM rooms WHERE room_building_id = ?)", *scopeRoomBuilding)
	}

	var rows []m.ScheduleModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		bStart, err := ParseClock(rows[i].ScheduleStartTime)
		if err != nil {
			continue // baris korup tidak boleh menggagalkan seluruh query
		}
		bEnd, err := ParseClock(rows[i].ScheduleEndTime)
		if err != nil {
			continue
		}
		if Overlaps(startMin, endMin, bStart, bEnd) {
			out = append(out, rows[i].ScheduleID)
		}
	}
	return out, nil
}

// AvailableTeachers: semua teacher aktif yang TIDAK punya schedule
// bentrok di hari/jendela tsb. Nol schedule di hari itu → semua available.
func AvailableTeachers(db *gorm.DB, day string, startMin, endMin int) ([]Option, error) {
	conflictIDs, err := conflictingScheduleIDs(db, day, startMin, endMin, nil)
	if err != nil {
		return nil, err
	}

	q := db.Model(&userModel.UserModel{}).
		Select("user_id AS id", "user_name AS label").
		Where("user_role = 'teacher' AND user_is_active = TRUE")
	if len(conflictIDs) > 0 {
		q = q.Where(
			"user_id NOT IN (SELECT schedule_teacher_teacher_id FROM schedule_teachers WHERE schedule_teacher_schedule_id IN ?)",
			conflictIDs,
		)
	}

	var out []Option
	if err := q.Order("user_name ASC").Scan(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []Option{} // list kosong tetap hasil valid, bukan error
	}
	return out, nil
}

// AvailableRooms: rooms di building yang tidak terikat schedule bentrok.
func AvailableRooms(db *gorm.DB, buildingID uuid.UUID, day string, startMin, endMin int) ([]Option, error) {
	conflictIDs, err := conflictingScheduleIDs(db, day, startMin, endMin, &buildingID)
	if err != nil {
		return nil, err
	}

	q := db.Model(&roomModel.RoomModel{}).
		Select("room_id AS id", "room_name AS label").
		Where("room_building_id = ?", buildingID)
	if len(conflictIDs) > 0 {
		q = q.Where(
			"room_id NOT IN (SELECT schedule_room_id FROM schedules WHERE schedule_id IN ? AND schedule_room_id IS NOT NULL)",
			conflictIDs,
		)
	}

	var out []Option
	if err := q.Order("room_name ASC").Scan(&out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []Option{}
	}
	return out, nil
}
