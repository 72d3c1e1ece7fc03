// file: internals/features/campus/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   BuildingModel: gedung kampus
   ======================================================= */

type BuildingModel struct {
	BuildingID   uuid.UUID `json:"building_id" gorm:"type:uuid;primaryKey;column:building_id;default:gen_random_uuid()"`
	BuildingName string    `json:"building_name" gorm:"type:varchar(150);not null;uniqueIndex:uq_buildings_name;column:building_name"`

	BuildingCreatedAt time.Time `json:"building_created_at" gorm:"column:building_created_at;not null;autoCreateTime"`
	BuildingUpdatedAt time.Time `json:"building_updated_at" gorm:"column:building_updated_at;not null;autoUpdateTime"`
}

func (BuildingModel) TableName() string { return "buildings" }

/* =======================================================
   RoomModel: ruang kelas dalam gedung.
   room_building_name denormalized (read optimization);
   disinkronkan eksplisit saat gedung di-rename.
   ======================================================= */

type RoomModel struct {
	RoomID uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey;column:room_id;default:gen_random_uuid()"`

	RoomName       string    `json:"room_name" gorm:"type:varchar(100);not null;uniqueIndex:uq_rooms_name_building;column:room_name"`
	RoomBuildingID uuid.UUID `json:"room_building_id" gorm:"type:uuid;not null;uniqueIndex:uq_rooms_name_building;index;column:room_building_id"`

	RoomBuildingName string `json:"room_building_name" gorm:"type:varchar(150);not null;column:room_building_name"`

	RoomCreatedAt time.Time `json:"room_created_at" gorm:"column:room_created_at;not null;autoCreateTime"`
	RoomUpdatedAt time.Time `json:"room_updated_at" gorm:"column:room_updated_at;not null;autoUpdateTime"`
}

func (RoomModel) TableName() string { return "rooms" }
