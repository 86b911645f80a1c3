package middleware

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func tokenFromRequest(c *fiber.Ctx) string {
	token := c.Cookies("access_token")

	if token == "" {
		// check header Authorization: Bearer xxx
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if token == "" {
		// browsers cannot set headers on a websocket upgrade
		token = c.Query("token")
	}
	return token
}

// Protected resolves the caller's token into a *model.Session stored in
// Locals("session").
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		session, err := helper.LoadSession(database.DB, token)
		if err != nil {
			if errors.Is(err, helper.ErrStaffInactive) {
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, err)
			}
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		c.Locals("session", session)
		return c.Next()
	}
}

// RequireRole lets through sessions whose role is one of roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := helper.CurrentSession(c)
		if session == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no session"))
		}
		if !utils.IsValidValueOfConstant(session.Role, roles) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("role not permitted"))
		}
		return c.Next()
	}
}
