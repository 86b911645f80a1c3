package validate

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func PlaceOrder() fiber.Handler {
	return body("inputPlaceOrder", func(input *model.PlaceOrderInput) *fieldError {
		if len(input.Items) == 0 {
			return invalid(constants.CART_EMPTY, "items")
		}
		switch input.OrderType {
		case constants.ORDER_TYPE_TABLE:
			if input.SeatingUnitId == nil || *input.SeatingUnitId == 0 {
				return invalid(constants.SEAT_REQUIRED, "seatingUnitId")
			}
		case constants.ORDER_TYPE_DELIVERY:
			if strings.TrimSpace(input.Address) == "" || strings.TrimSpace(input.PhoneNumber) == "" {
				return invalid(constants.DELIVERY_INFO_REQUIRED, "address")
			}
		}
		return nil
	})
}

func OrderStatus() fiber.Handler {
	return body("inputOrderStatus", func(input *model.OrderStatusInput) *fieldError {
		status := strings.ToLower(utils.Normalize(input.Status, constants.ORDER_STATUS_ALIASES))
		if !utils.IsValidValueOfConstant(status, constants.ORDER_STATUS) {
			return invalid(constants.ORDER_STATUS_INVALID, "status")
		}
		input.Status = status
		return nil
	})
}

func OrderNotes() fiber.Handler {
	return body[model.OrderNotesInput]("inputOrderNotes", nil)
}

func OrderLookup() fiber.Handler {
	return body[model.OrderLookupInput]("inputOrderLookup", nil)
}

func FilterOrder() fiber.Handler {
	return query[model.FilterOrder]("filterOrder")
}

func FilterOrderHistory() fiber.Handler {
	return query[model.FilterOrderHistory]("filterOrderHistory")
}
