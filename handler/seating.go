package handler

import (
	"errors"
	"fmt"
	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// unitsChanged re-checks the type counts after a unit mutation and notifies
// connected screens.
func unitsChanged(unit *model.SeatingUnit) {
	helper.ReconcileAfterMutation()
	helper.PublishSeating(database.DB, constants.EVENT_SEATING_UPDATED, unit)
}

func GetSeatingTypes(c *fiber.Ctx) error {
	types := []model.SeatingType{}
	if err := database.DB.Order("name ASC").Find(&types).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, types)
}

func CreateSeatingType(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateSeatingType").(model.SeatingTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	st, err := helper.CreateSeatingType(database.DB, input)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, st)
}

func EditSeatingType(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditSeatingType").(model.EditSeatingTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	st, err := helper.EditSeatingType(database.DB, inputId(c), input)
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, st)
}

func DeleteSeatingType(c *fiber.Ctx) error {
	id := inputId(c)
	if err := helper.DeleteSeatingType(database.DB, id); err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, id)
}

func ReconcileSeatingTypes(c *fiber.Ctx) error {
	corrected, err := helper.ReconcileSeatingTypeCounts(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": constants.RECONCILE_DONE,
		"data":    fiber.Map{"corrected": corrected},
	})
}

func GetSeatingUnits(c *fiber.Ctx) error {
	filter, ok := c.Locals("filterSeatingUnit").(model.FilterSeatingUnit)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	overview, err := helper.GetSeatingOverview(database.DB, filter)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, overview)
}

// GetPublicSeating lists the units a guest can still pick.
func GetPublicSeating(c *fiber.Ctx) error {
	overview, err := helper.GetSeatingOverview(database.DB, model.FilterSeatingUnit{Status: constants.SEAT_AVAILABLE})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	grouped := map[string][]model.SeatingUnit{}
	for _, u := range overview.Units {
		u.Waiter = nil
		grouped[u.Type] = append(grouped[u.Type], u)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, grouped)
}

func GetPublicSeatingById(c *fiber.Ctx) error {
	var unit model.SeatingUnit
	if err := database.DB.First(&unit, inputId(c)).Error; err != nil {
		return respondError(c, err, constants.SEAT_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, unit)
}

func CreateSeatingUnit(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateSeatingUnit").(model.CreateSeatingUnitInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	unit, err := helper.CreateSeatingUnit(database.DB, input)
	if err != nil {
		return respondError(c, err, "")
	}
	unitsChanged(unit)
	return utils.SuccessResponse(c, fiber.StatusCreated, unit)
}

func BatchCreateSeatingUnits(c *fiber.Ctx) error {
	input, ok := c.Locals("inputBatchSeatingUnit").(model.BatchSeatingUnitInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	units, err := helper.BatchCreateSeatingUnits(database.DB, input)
	if err != nil {
		return respondError(c, err, "")
	}
	unitsChanged(nil)
	return utils.SuccessResponse(c, fiber.StatusCreated, units)
}

func EditSeatingUnit(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditSeatingUnit").(model.EditSeatingUnitInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	unit, err := helper.EditSeatingUnit(database.DB, inputId(c), input)
	if err != nil {
		return respondError(c, err, "")
	}
	unitsChanged(unit)
	return utils.SuccessResponse(c, fiber.StatusOK, unit)
}

func DeleteSeatingUnit(c *fiber.Ctx) error {
	id := inputId(c)
	if err := helper.DeleteSeatingUnit(database.DB, id); err != nil {
		return respondError(c, err, "")
	}
	unitsChanged(nil)
	return utils.SuccessResponse(c, fiber.StatusOK, id)
}

func SetSeatingUnitStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSeatingStatus").(model.SeatingStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	unit, err := helper.SetSeatingStatus(database.DB, inputId(c), input.Status)
	if err != nil {
		return respondError(c, err, "")
	}
	helper.PublishSeating(database.DB, constants.EVENT_SEATING_UPDATED, unit)
	return utils.SuccessResponse(c, fiber.StatusOK, unit)
}

func AssignSeatingWaiter(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAssignWaiter").(model.AssignWaiterInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	unit, err := helper.AssignWaiter(database.DB, inputId(c), input.WaiterId)
	if err != nil {
		return respondError(c, err, "")
	}
	helper.PublishSeating(database.DB, constants.EVENT_SEATING_UPDATED, unit)
	return utils.SuccessResponse(c, fiber.StatusOK, unit)
}

func ResetSeatingUnits(c *fiber.Ctx) error {
	changed, err := helper.ResetSeating(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	helper.PublishSeating(database.DB, constants.EVENT_SEATING_RESET, nil)
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": constants.SEATING_RESET_DONE,
		"data":    fiber.Map{"changed": changed},
	})
}

// GetSeatingUnitQR returns the PNG printed on the table; scanning it opens
// the public menu with the unit preselected.
func GetSeatingUnitQR(c *fiber.Ctx) error {
	var unit model.SeatingUnit
	if err := database.DB.First(&unit, inputId(c)).Error; err != nil {
		return respondError(c, err, constants.SEAT_NOT_FOUND)
	}
	url := fmt.Sprintf("%s?seat=%d", config.String("PUBLIC_MENU_URL", "http://localhost:3000/menu"), unit.ID)
	png, err := utils.GenerateQRCode(url, 512)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=\"%s-%d.png\"", unit.Type, unit.Number))
	return c.Send(png)
}
