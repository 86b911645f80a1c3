package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetStaffs(c *fiber.Ctx) error {
	filterInput, ok := c.Locals("filterStaff").(model.FilterStaff)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	db := database.DB

	condition := db.Model(&model.Staff{})
	if filterInput.SearchKey != "" {
		key := "%" + strings.ToLower(filterInput.SearchKey) + "%"
		condition = condition.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", key, key)
	}
	if filterInput.Role != "" {
		condition = condition.Where("role = ?", helper.NormalizeRole(filterInput.Role))
	}
	if filterInput.Active != nil {
		condition = condition.Where("active = ?", *filterInput.Active)
	}
	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	staffs := model.Staffs{}
	if err := condition.Order("id ASC").Find(&staffs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	response := &model.ResponseCustom{
		Rows:       staffs,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetStaffById(c *fiber.Ctx) error {
	var staff model.Staff
	if err := database.DB.First(&staff, inputId(c)).Error; err != nil {
		return respondError(c, err, constants.STAFF_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, staff)
}

func GetWaiters(c *fiber.Ctx) error {
	waiters, err := helper.ListWaiters(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, waiters)
}

func CreateStaff(c *fiber.Ctx) error {
	db := database.DB
	staffInput, ok := c.Locals("inputCreateStaff").(model.CreateStaffInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	exists, err := helper.CheckEmailStaff(db, staffInput.Email, nil)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err, "email")
	}
	if exists {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("email exists"), "email")
	}

	newStaff := new(model.Staff)
	copier.Copy(newStaff, &staffInput)
	newStaff.Active = staffInput.Active == nil || *staffInput.Active

	hash, err := helper.HashPassword(staffInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newStaff.Password = hash

	if err := db.Create(newStaff).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, newStaff)
}

func EditStaff(c *fiber.Ctx) error {
	db := database.DB
	staffInput, ok := c.Locals("inputEditStaff").(model.EditStaffInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	id := inputId(c)

	var staff model.Staff
	if err := db.First(&staff, id).Error; err != nil {
		return respondError(c, err, constants.STAFF_NOT_FOUND)
	}

	if staffInput.Email != nil {
		exists, err := helper.CheckEmailStaff(db, *staffInput.Email, &id)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if exists {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("email exists"), "email")
		}
	}

	session := helper.CurrentSession(c)
	if session.StaffId == id && ((staffInput.Active != nil && !*staffInput.Active) ||
		(staffInput.Role != nil && *staffInput.Role != staff.Role)) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NOT_PERMISSION, errors.New("cannot demote or deactivate self"))
	}

	password := staffInput.Password
	staffInput.Password = nil
	copier.CopyWithOption(&staff, &staffInput, copier.Option{IgnoreEmpty: true})
	if staffInput.Active != nil {
		staff.Active = *staffInput.Active
	}
	if password != nil {
		hash, err := helper.HashPassword(*password)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		staff.Password = hash
	}

	if err := db.Save(&staff).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, staff)
}

func DeleteStaff(c *fiber.Ctx) error {
	db := database.DB
	id := inputId(c)
	if helper.CurrentSession(c).StaffId == id {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CAN_NOT_DELETE_SELF, errors.New("cannot delete self"))
	}

	var staff model.Staff
	if err := db.First(&staff, id).Error; err != nil {
		return respondError(c, err, constants.STAFF_NOT_FOUND)
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.SeatingUnit{}).Where("waiter_id = ?", id).Update("waiter_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("staff_id = ?", id).Delete(&model.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&staff).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, staff.ID)
}
