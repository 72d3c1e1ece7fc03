// file: internals/features/campus/rooms/route/room_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/campus/rooms/controller"
)

func RoomAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewRoomController(db, v)

	admin.Post("/buildings", ctl.CreateBuilding)
	admin.Patch("/buildings/:id", ctl.RenameBuilding) // rename + propagasi nama ke rooms
	admin.Post("/rooms", ctl.CreateRoom)
	admin.Delete("/rooms/:id", ctl.DeleteRoom)
}

func RoomUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewRoomController(db, v)

	user.Get("/buildings", ctl.ListBuildings)
	user.Get("/rooms/:building_id", ctl.ListRooms)
}
