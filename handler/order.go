package handler

import (
	"errors"
	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func orderOptions() helper.PlaceOrderOptions {
	return helper.PlaceOrderOptions{
		DeliveryFee: int64(config.Int("DELIVERY_FEE", 15000)),
		GraceWindow: config.Minutes("SEAT_GRACE_MINUTES", 25),
	}
}

// PlaceOrder takes the client signature from the body or, when absent, from
// the X-Client-Signature header.
func PlaceOrder(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputPlaceOrder").(model.PlaceOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if input.ClientSignature == "" {
		input.ClientSignature = c.Get("X-Client-Signature")
	}

	result, err := helper.PlaceOrder(db, input, orderOptions())
	if err != nil {
		return respondError(c, err, "")
	}

	helper.PublishOrder(db, constants.EVENT_ORDER_CREATED, &result.Order)
	if result.Order.SeatingUnitId != nil && !result.ReusedSeat {
		var unit model.SeatingUnit
		if err := db.First(&unit, *result.Order.SeatingUnitId).Error; err == nil {
			helper.PublishSeating(db, constants.EVENT_SEATING_UPDATED, &unit)
		}
	}

	c.Set("X-Client-Signature", result.ClientSignature)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": constants.ORDER_CREATED,
		"data":    result,
	})
}

func LookupOrders(c *fiber.Ctx) error {
	input, ok := c.Locals("inputOrderLookup").(model.OrderLookupInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	orders, err := helper.LookupOrders(database.DB, input.Codes)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func GetPublicOrder(c *fiber.Ctx) error {
	order, err := helper.GetOrderByCode(database.DB, c.Params("code"))
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func GetOrderReceipt(c *fiber.Ctx) error {
	order, err := helper.GetOrderByCode(database.DB, c.Params("code"))
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	html, err := helper.RenderReceipt(*order)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func GetOrders(c *fiber.Ctx) error {
	filterInput, ok := c.Locals("filterOrder").(model.FilterOrder)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	condition := database.DB.Model(&model.Order{})
	if filterInput.Status != "" {
		status, err := helper.NormalizeStatus(filterInput.Status)
		if err != nil {
			return respondError(c, err, "")
		}
		condition = condition.Where("status = ?", status)
	}
	if filterInput.OrderType != "" {
		condition = condition.Where("order_type = ?", filterInput.OrderType)
	}
	if filterInput.IsPaid != nil {
		condition = condition.Where("is_paid = ?", *filterInput.IsPaid)
	}
	if filterInput.From != "" {
		from, err := utils.ParseDay(filterInput.From)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "from")
		}
		condition = condition.Where("created_at >= ?", from)
	}
	if filterInput.To != "" {
		to, err := utils.ParseDay(filterInput.To)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "to")
		}
		condition = condition.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	orders := []model.Order{}
	if err := condition.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetOrderById(c *fiber.Ctx) error {
	var order model.Order
	if err := database.DB.Preload("Items").First(&order, inputId(c)).Error; err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func advance(c *fiber.Ctx, status string) error {
	db := database.DB
	order, released, err := helper.AdvanceOrder(db, helper.CurrentSession(c), inputId(c), status)
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	helper.PublishOrder(db, constants.EVENT_ORDER_STATUS, order)
	if released != nil {
		helper.PublishSeating(db, constants.EVENT_SEATING_UPDATED, released)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("inputOrderStatus").(model.OrderStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	return advance(c, input.Status)
}

func PayOrder(c *fiber.Ctx) error {
	return advance(c, constants.ORDER_PAID)
}

func UpdateOrderNotes(c *fiber.Ctx) error {
	input, ok := c.Locals("inputOrderNotes").(model.OrderNotesInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	order, err := helper.UpdateOrderNotes(database.DB, inputId(c), input.Notes)
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	helper.PublishOrder(database.DB, constants.EVENT_ORDER_STATUS, order)
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func DeleteOrder(c *fiber.Ctx) error {
	db := database.DB
	order, released, err := helper.DeleteOrder(db, inputId(c))
	if err != nil {
		return respondError(c, err, constants.ORDER_NOT_FOUND)
	}
	helper.PublishOrder(db, constants.EVENT_ORDER_DELETED, order)
	if released != nil {
		helper.PublishSeating(db, constants.EVENT_SEATING_UPDATED, released)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order.ID)
}

func GetKitchenBoard(c *fiber.Ctx) error {
	var waiterId *uint
	if v := c.Query("waiterId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err, "waiterId")
		}
		waiterId = utils.Ptr(uint(id))
	}
	board, err := helper.KitchenBoard(database.DB, waiterId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, board)
}

// GetWaiterBoard defaults waiters to their own orders and everyone else to
// the whole floor.
func GetWaiterBoard(c *fiber.Ctx) error {
	session := helper.CurrentSession(c)
	scope := c.Query("scope")
	if scope == "" {
		scope = helper.ScopeAll
		if session.IsWaiter() {
			scope = helper.ScopeMine
		}
	}
	board, err := helper.WaiterBoard(database.DB, session, scope)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, board)
}

func ArchiveOrders(c *fiber.Ctx) error {
	result, err := helper.ArchiveAndRecompute(database.DB, time.Now(), config.Int("ARCHIVE_AFTER_DAYS", 30))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if result.Archived > 0 {
		helper.ReconcileAfterMutation()
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": constants.ARCHIVE_DONE,
		"data":    result,
	})
}
