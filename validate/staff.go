package validate

import (
	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return body("inputLogin", func(input *model.LoginInput) *fieldError {
		input.Email = strings.ToLower(strings.TrimSpace(input.Email))
		return nil
	})
}

func ForgotPassword() fiber.Handler {
	return body[model.ForgotPasswordInput]("inputForgotPassword", nil)
}

func ResetPassword() fiber.Handler {
	return body[model.ResetPasswordInput]("inputResetPassword", nil)
}

func CreateStaff() fiber.Handler {
	return body("inputCreateStaff", func(input *model.CreateStaffInput) *fieldError {
		input.Email = strings.ToLower(strings.TrimSpace(input.Email))
		role := helper.NormalizeRole(input.Role)
		if role == "" {
			return invalid(constants.ROLE_NOT_EXISTS, "role")
		}
		input.Role = role
		return nil
	})
}

func EditStaff() fiber.Handler {
	return body("inputEditStaff", func(input *model.EditStaffInput) *fieldError {
		if input.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*input.Email))
			input.Email = &email
		}
		if input.Role != nil {
			role := helper.NormalizeRole(*input.Role)
			if role == "" {
				return invalid(constants.ROLE_NOT_EXISTS, "role")
			}
			input.Role = &role
		}
		return nil
	})
}

func FilterStaff() fiber.Handler {
	return query[model.FilterStaff]("filterStaff")
}
