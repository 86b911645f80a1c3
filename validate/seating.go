package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateSeatingType() fiber.Handler {
	return body[model.SeatingTypeInput]("inputCreateSeatingType", nil)
}

func EditSeatingType() fiber.Handler {
	return body[model.EditSeatingTypeInput]("inputEditSeatingType", nil)
}

func CreateSeatingUnit() fiber.Handler {
	return body[model.CreateSeatingUnitInput]("inputCreateSeatingUnit", nil)
}

func BatchSeatingUnit() fiber.Handler {
	return body[model.BatchSeatingUnitInput]("inputBatchSeatingUnit", nil)
}

func EditSeatingUnit() fiber.Handler {
	return body[model.EditSeatingUnitInput]("inputEditSeatingUnit", nil)
}

func SeatingStatus() fiber.Handler {
	return body[model.SeatingStatusInput]("inputSeatingStatus", nil)
}

func AssignWaiter() fiber.Handler {
	return body[model.AssignWaiterInput]("inputAssignWaiter", nil)
}

func FilterSeatingUnit() fiber.Handler {
	return query[model.FilterSeatingUnit]("filterSeatingUnit")
}
