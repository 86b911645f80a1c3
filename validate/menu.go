package validate

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func Category() fiber.Handler {
	return body[model.CategoryInput]("inputCategory", nil)
}

func CreateMenuItem() fiber.Handler {
	return body("inputCreateMenuItem", func(input *model.CreateMenuItemInput) *fieldError {
		if input.NeedsContainer && input.ContainerPrice == 0 {
			return invalid(constants.ERROR_INPUT, "containerPrice")
		}
		return nil
	})
}

func EditMenuItem() fiber.Handler {
	return body[model.EditMenuItemInput]("inputEditMenuItem", nil)
}

func Servings() fiber.Handler {
	return body("inputServings", func(input *model.ServingsInput) *fieldError {
		if input.RemainingServings != nil && *input.RemainingServings > input.ServesCount {
			return invalid(constants.SERVINGS_INVALID, "remainingServings")
		}
		return nil
	})
}

func Availability() fiber.Handler {
	return body[model.AvailabilityInput]("inputAvailability", nil)
}

func FilterMenuItem() fiber.Handler {
	return query[model.FilterMenuItem]("filterMenuItem")
}

func Delete() fiber.Handler {
	return body[model.ArrayId]("deleteIds", nil)
}
