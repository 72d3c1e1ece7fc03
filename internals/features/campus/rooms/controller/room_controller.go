// file: internals/features/campus/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "kampusku_backend/internals/features/campus/rooms/dto"
	m "kampusku_backend/internals/features/campus/rooms/model"
	helper "kampusku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// Deteksi unique violation Postgres (kode "23505")
// tanpa import pgx/pgconn biar portable: cek substring
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}

/* =========================
   Building
   ========================= */

// POST /api/a/buildings
func (ctl *RoomController) CreateBuilding(c *fiber.Ctx) error {
	var req d.CreateBuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	row := m.BuildingModel{BuildingName: strings.TrimSpace(req.BuildingName)}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Building sudah ada")
		}
		log.Printf("[Room.CreateBuilding] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat building")
	}
	return helper.JsonCreated(c, "Building dibuat", row)
}

// GET /api/u/buildings
func (ctl *RoomController) ListBuildings(c *fiber.Ctx) error {
	var rows []m.BuildingModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("building_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

// PATCH /api/a/buildings/:id
// Rename building + propagasi room_building_name (satu transaksi,
// bukan sinkronisasi ad hoc).
func (ctl *RoomController) RenameBuilding(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var req d.RenameBuildingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	newName := strings.TrimSpace(req.BuildingName)

	txErr := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&m.BuildingModel{}).
			Where("building_id = ?", id).
			Update("building_name", newName)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// Propagasi nama denormalized ke rooms
		if err := tx.Model(&m.RoomModel{}).
			Where("room_building_id = ?", id).
			Update("room_building_name", newName).Error; err != nil {
			return err
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Building tidak ditemukan")
		}
		if isDuplicateKey(txErr) {
			return helper.JsonError(c, http.StatusConflict, "Nama building sudah dipakai")
		}
		log.Printf("[Room.RenameBuilding] TX error: %v", txErr)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal rename building")
	}
	return helper.JsonUpdated(c, "Building di-rename", fiber.Map{
		"building_id":   id,
		"building_name": newName,
	})
}

/* =========================
   Room
   ========================= */

// POST /api/a/rooms
func (ctl *RoomController) CreateRoom(c *fiber.Ctx) error {
	var req d.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	buildingID, _ := uuid.Parse(req.RoomBuildingID)
	var building m.BuildingModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("building_id = ?", buildingID).
		First(&building).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Building tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	row := m.RoomModel{
		RoomName:         strings.TrimSpace(req.RoomName),
		RoomBuildingID:   buildingID,
		RoomBuildingName: building.BuildingName,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, http.StatusConflict, "Room dengan nama ini sudah ada di building tsb")
		}
		log.Printf("[Room.CreateRoom] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat room")
	}
	return helper.JsonCreated(c, "Room dibuat", row)
}

// GET /api/u/rooms/:building_id
func (ctl *RoomController) ListRooms(c *fiber.Ctx) error {
	buildingID, err := parseUUIDParam(c, "building_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	var rows []m.RoomModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("room_building_id = ?", buildingID).
		Order("room_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", rows)
}

// DELETE /api/a/rooms/:id
func (ctl *RoomController) DeleteRoom(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("room_id = ?", id).
		Delete(&m.RoomModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Room tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Room dihapus", fiber.Map{"room_id": id})
}
