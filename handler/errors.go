package handler

import (
	"errors"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type errorMapping struct {
	target  error
	status  int
	message string
	key     string
}

var errorMappings = []errorMapping{
	{helper.ErrCartEmpty, fiber.StatusBadRequest, constants.CART_EMPTY, "items"},
	{helper.ErrOrderTypeInvalid, fiber.StatusBadRequest, constants.ERROR_INPUT, "orderType"},
	{helper.ErrSeatRequired, fiber.StatusBadRequest, constants.SEAT_REQUIRED, "seatingUnitId"},
	{helper.ErrDeliveryInfoRequired, fiber.StatusBadRequest, constants.DELIVERY_INFO_REQUIRED, "address"},
	{helper.ErrItemNotFound, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, "items"},
	{helper.ErrItemUnavailable, fiber.StatusConflict, constants.ITEM_NOT_AVAILABLE, "items"},
	{helper.ErrInsufficientServings, fiber.StatusConflict, constants.NOT_ENOUGH_SERVINGS, "items"},
	{helper.ErrSeatNotFound, fiber.StatusNotFound, constants.SEAT_NOT_FOUND, "seatingUnitId"},
	{helper.ErrSeatUnavailable, fiber.StatusConflict, constants.SEAT_NOT_AVAILABLE, "seatingUnitId"},
	{helper.ErrSeatInUse, fiber.StatusConflict, constants.SEAT_IN_USE, ""},
	{helper.ErrDuplicateSeating, fiber.StatusConflict, constants.SEAT_EXISTS, "number"},
	{helper.ErrBatchRangeInvalid, fiber.StatusBadRequest, constants.SEAT_RANGE_INVALID, "to"},
	{helper.ErrBatchRangeTooLarge, fiber.StatusBadRequest, constants.SEAT_RANGE_TOO_LARGE, "to"},
	{helper.ErrSeatingTypeNotFound, fiber.StatusNotFound, constants.SEATING_TYPE_NOT_FOUND, "type"},
	{helper.ErrSeatingTypeExists, fiber.StatusConflict, constants.SEATING_TYPE_EXISTS, "name"},
	{helper.ErrSeatingTypeInUse, fiber.StatusConflict, constants.SEATING_TYPE_IN_USE, ""},
	{helper.ErrWaiterNotFound, fiber.StatusBadRequest, constants.WAITER_NOT_FOUND, "waiterId"},
	{helper.ErrOrderNotFound, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, ""},
	{helper.ErrOrderPaid, fiber.StatusConflict, constants.ORDER_ALREADY_PAID, ""},
	{helper.ErrStatusInvalid, fiber.StatusBadRequest, constants.ORDER_STATUS_INVALID, "status"},
	{helper.ErrStatusBackward, fiber.StatusConflict, constants.ORDER_STATUS_BACKWARD, "status"},
	{helper.ErrStatusConflict, fiber.StatusConflict, constants.ORDER_STATUS_CONFLICT, "status"},
	{helper.ErrNotPermitted, fiber.StatusForbidden, constants.NOT_PERMISSION, ""},
	{helper.ErrCategoryExists, fiber.StatusConflict, constants.CATEGORY_EXISTS, "name"},
	{helper.ErrCategoryInUse, fiber.StatusConflict, constants.CATEGORY_IN_USE, ""},
	{helper.ErrResetTokenInvalid, fiber.StatusBadRequest, constants.RESET_TOKEN_INVALID, "token"},
	{helper.ErrPeriodInvalid, fiber.StatusBadRequest, constants.PERIOD_INVALID, "period"},
}

// respondError turns a helper error into the matching response. Unknown
// errors are logged and answered with 500.
func respondError(c *fiber.Ctx, err error, notFound string) error {
	var rangeErr *helper.RangeConflictError
	if errors.As(err, &rangeErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":   "error",
			"message":  constants.SEAT_RANGE_CONFLICT,
			"errors":   err.Error(),
			"keyError": "from",
			"numbers":  rangeErr.Numbers,
		})
	}
	var servingsErr *helper.ServingsError
	if errors.As(err, &servingsErr) {
		for _, m := range errorMappings {
			if errors.Is(err, m.target) {
				return c.Status(m.status).JSON(fiber.Map{
					"status":   "error",
					"message":  m.message,
					"errors":   err.Error(),
					"keyError": m.key,
					"item": fiber.Map{
						"id":        servingsErr.ItemId,
						"name":      servingsErr.Name,
						"requested": servingsErr.Requested,
						"remaining": servingsErr.Remaining,
					},
				})
			}
		}
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return utils.ErrorResponseHaveKey(c, m.status, m.message, err, m.key)
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != "" {
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFound, err)
	}
	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func inputId(c *fiber.Ctx) uint {
	id, _ := c.Locals("inputId").(int)
	return uint(id)
}
