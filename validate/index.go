package validate

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/utils"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldError rejects one input field after struct validation passed.
type fieldError struct {
	message string
	key     string
	err     error
}

func invalid(message, key string) *fieldError {
	return &fieldError{message: message, key: key, err: errors.New(key + " invalid")}
}

// body parses and validates the JSON body into T, runs check and stores the
// result in Locals under key.
func body[T any](key string, check func(input *T) *fieldError) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if check != nil {
			if fe := check(&input); fe != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, fe.message, fe.err, fe.key)
			}
		}

		c.Locals(key, input)
		return c.Next()
	}
}

// query parses query parameters into T and stores it in Locals under key.
func query[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var filter T
		if err := c.QueryParser(&filter); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		c.Locals(key, filter)
		return c.Next()
	}
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", valueKey)

		return c.Next()
	}
}
