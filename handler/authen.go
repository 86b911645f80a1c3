package handler

import (
	"errors"
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func setAuthCookies(c *fiber.Ctx, tokens model.TokenData) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(60 * time.Minute),
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
	})
}

func accountView(staff *model.Staff) fiber.Map {
	session := model.Session{StaffId: staff.ID, Name: staff.Name, Email: staff.Email, Role: staff.Role}
	return fiber.Map{
		"id":     staff.ID,
		"name":   staff.Name,
		"email":  staff.Email,
		"role":   staff.Role,
		"screen": session.Screen(),
	}
}

func Login(c *fiber.Ctx) error {
	loginInput, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	staff, err := helper.GetStaffByEmail(database.DB, loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if staff == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusUnauthorized, constants.INVALID_EMAIL, errors.New("email not exists"), "email")
	}
	if !helper.CheckPasswordHash(loginInput.Password, staff.Password) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match"), "password")
	}
	if !staff.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokens, err := helper.GenerateTokens(staff)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	setAuthCookies(c, tokens)

	return c.JSON(fiber.Map{
		"message": "login success",
		"account": accountView(staff),
		"tokens":  tokens,
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refresh := c.Cookies("refresh_token")
	if refresh == "" {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		_ = c.BodyParser(&req)
		refresh = req.RefreshToken
	}
	if refresh == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no refresh token"))
	}

	staffId, err := helper.StaffIdFromToken(refresh, "refresh")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}
	var staff model.Staff
	if err := database.DB.First(&staff, staffId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}
	if !staff.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokens, err := helper.GenerateTokens(&staff)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	setAuthCookies(c, tokens)
	return utils.SuccessResponse(c, fiber.StatusOK, tokens)
}

func Logout(c *fiber.Ctx) error {
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
		})
	}
	return c.JSON(fiber.Map{"message": "logout success"})
}

func Me(c *fiber.Ctx) error {
	session := helper.CurrentSession(c)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"staffId": session.StaffId,
		"name":    session.Name,
		"email":   session.Email,
		"role":    session.Role,
		"screen":  session.Screen(),
	})
}

// ForgotPassword always answers the same way so emails cannot be probed.
func ForgotPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputForgotPassword").(model.ForgotPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	token, err := helper.CreatePasswordResetToken(database.DB, input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if token != "" {
		go func(to, token string) {
			if err := helper.SendPasswordResetEmail(to, token); err != nil {
				log.Printf("Password reset mail not sent: %v", err)
			}
		}(input.Email, token)
	}

	return c.JSON(fiber.Map{"message": constants.RESET_LINK_SENT})
}

func ResetPassword(c *fiber.Ctx) error {
	input, ok := c.Locals("inputResetPassword").(model.ResetPasswordInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if err := helper.ResetPassword(database.DB, input.Token, input.NewPassword); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(fiber.Map{"message": constants.PASSWORD_CHANGED})
}
