// file: internals/features/schedules/controller/availability_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "kampusku_backend/internals/features/campus/rooms/model"
	d "kampusku_backend/internals/features/schedules/dto"
	svc "kampusku_backend/internals/features/schedules/service"
	helper "kampusku_backend/internals/helpers"
)

type AvailabilityController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAvailabilityController(db *gorm.DB, v *validator.Validate) *AvailabilityController {
	return &AvailabilityController{DB: db, Validate: v}
}

// POST /api/a/teachers/available
func (ctl *AvailabilityController) AvailableTeachers(c *fiber.Ctx) error {
	var req d.AvailableTeachersRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	day, err := svc.NormalizeDay(req.Day)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	startMin, endMin, err := svc.ParseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	out, err := svc.AvailableTeachers(ctl.DB.WithContext(c.Context()), day, startMin, endMin)
	if err != nil {
		log.Printf("[Availability.AvailableTeachers] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", out)
}

// POST /api/a/rooms/available
func (ctl *AvailabilityController) AvailableRooms(c *fiber.Ctx) error {
	var req d.AvailableRoomsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	day, err := svc.NormalizeDay(req.Day)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	startMin, endMin, err := svc.ParseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	buildingID, _ := uuid.Parse(req.BuildingID)
	db := ctl.DB.WithContext(c.Context())

	var building roomModel.BuildingModel
	if err := db.Where("building_id = ?", buildingID).First(&building).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Building tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}

	out, err := svc.AvailableRooms(db, buildingID, day, startMin, endMin)
	if err != nil {
		log.Printf("[Availability.AvailableRooms] DB error: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "", out)
}
