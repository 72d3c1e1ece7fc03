// file: internals/features/campus/rooms/dto/room_dto.go
package dto

type CreateBuildingRequest struct {
	BuildingName string `json:"building_name" validate:"required,min=2,max=150"`
}

type RenameBuildingRequest struct {
	BuildingName string `json:"building_name" validate:"required,min=2,max=150"`
}

type CreateRoomRequest struct {
	RoomName       string `json:"room_name"        validate:"required,min=1,max=100"`
	RoomBuildingID string `json:"room_building_id" validate:"required,uuid4"`
}
