package handler

import (
	"context"
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetPublicMenu(c *fiber.Ctx) error {
	var categoryId *uint
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		categoryId = utils.Ptr(uint(id))
	}
	menu, err := helper.PublicMenu(database.DB, categoryId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, menu)
}

func GetCategories(c *fiber.Ctx) error {
	categories := []model.Category{}
	if err := database.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCategory").(model.CategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	category, err := helper.SaveCategory(database.DB, 0, input)
	if err != nil {
		return respondError(c, err, constants.CATEGORY_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func EditCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCategory").(model.CategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	category, err := helper.SaveCategory(database.DB, inputId(c), input)
	if err != nil {
		return respondError(c, err, constants.CATEGORY_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func DeleteCategory(c *fiber.Ctx) error {
	id := inputId(c)
	if err := helper.DeleteCategory(database.DB, id); err != nil {
		return respondError(c, err, constants.CATEGORY_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, id)
}

func GetMenuItems(c *fiber.Ctx) error {
	filterInput, ok := c.Locals("filterMenuItem").(model.FilterMenuItem)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	condition := database.DB.Model(&model.MenuItem{})
	if filterInput.CategoryId != nil {
		condition = condition.Where("category_id = ?", *filterInput.CategoryId)
	}
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.IsAvailable != nil {
		condition = condition.Where("is_available = ?", *filterInput.IsAvailable)
	}
	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var items []model.MenuItem
	if err := condition.Order("category_id ASC, name ASC").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	views := make([]model.MenuItemView, 0, len(items))
	for _, it := range items {
		views = append(views, model.NewMenuItemView(it))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       views,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetMenuItemById(c *fiber.Ctx) error {
	var item model.MenuItem
	if err := database.DB.First(&item, inputId(c)).Error; err != nil {
		return respondError(c, err, constants.MENU_ITEM_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewMenuItemView(item))
}

func categoryExists(db *gorm.DB, id uint) bool {
	var count int64
	db.Model(&model.Category{}).Where("id = ?", id).Count(&count)
	return count > 0
}

func CreateMenuItem(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputCreateMenuItem").(model.CreateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	if !categoryExists(db, input.CategoryId) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.CATEGORY_NOT_FOUND, errors.New("category not exists"), "categoryId")
	}

	item := new(model.MenuItem)
	copier.Copy(item, &input)
	item.IsAvailable = input.IsAvailable == nil || *input.IsAvailable
	item.RemainingServings = input.ServesCount
	item.ImagePublicId = helper.ExtractPublicID(input.ImageUrl)

	if err := db.Create(item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, model.NewMenuItemView(*item))
}

func EditMenuItem(c *fiber.Ctx) error {
	db := database.DB
	input, ok := c.Locals("inputEditMenuItem").(model.EditMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var item model.MenuItem
	if err := db.First(&item, inputId(c)).Error; err != nil {
		return respondError(c, err, constants.MENU_ITEM_NOT_FOUND)
	}
	if input.CategoryId != nil && !categoryExists(db, *input.CategoryId) {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.CATEGORY_NOT_FOUND, errors.New("category not exists"), "categoryId")
	}

	oldPublicId := item.ImagePublicId
	copier.CopyWithOption(&item, &input, copier.Option{IgnoreEmpty: true})
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.NeedsContainer != nil {
		item.NeedsContainer = *input.NeedsContainer
	}
	if input.ImageUrl != nil {
		item.ImagePublicId = helper.ExtractPublicID(*input.ImageUrl)
	}

	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if oldPublicId != "" && oldPublicId != item.ImagePublicId {
		go helper.DestroyImage(context.Background(), oldPublicId)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewMenuItemView(item))
}

func SetMenuItemAvailability(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAvailability").(model.AvailabilityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	var item model.MenuItem
	if err := database.DB.First(&item, inputId(c)).Error; err != nil {
		return respondError(c, err, constants.MENU_ITEM_NOT_FOUND)
	}
	if err := database.DB.Model(&item).Update("is_available", input.IsAvailable).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	item.IsAvailable = input.IsAvailable
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewMenuItemView(item))
}

func SetMenuItemServings(c *fiber.Ctx) error {
	input, ok := c.Locals("inputServings").(model.ServingsInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	item, err := helper.Restock(database.DB, inputId(c), input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, err, constants.MENU_ITEM_NOT_FOUND)
		}
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.SERVINGS_INVALID, err, "remainingServings")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewMenuItemView(*item))
}

func UploadMenuItemImage(c *fiber.Ctx) error {
	db := database.DB
	var item model.MenuItem
	if err := db.First(&item, inputId(c)).Error; err != nil {
		return respondError(c, err, constants.MENU_ITEM_NOT_FOUND)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "image")
	}
	f, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.IMAGE_UPLOAD_FAILED, err)
	}
	defer f.Close()

	url, publicId, err := helper.UploadMenuImage(c.Context(), item.ID, f)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.IMAGE_UPLOAD_FAILED, err)
	}

	oldPublicId := item.ImagePublicId
	if err := db.Model(&item).Updates(map[string]any{"image_url": url, "image_public_id": publicId}).Error; err != nil {
		helper.DestroyImage(context.Background(), publicId)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if oldPublicId != "" {
		go helper.DestroyImage(context.Background(), oldPublicId)
	}
	item.ImageUrl = url
	item.ImagePublicId = publicId
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewMenuItemView(item))
}

func DeleteMenuItem(c *fiber.Ctx) error {
	id := inputId(c)
	var item model.MenuItem
	if err := database.DB.First(&item, id).Error; err != nil {
		return respondError(c, err, constants.MENU_ITEM_NOT_FOUND)
	}
	if err := database.DB.Delete(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	go helper.DestroyImage(context.Background(), item.ImagePublicId)
	return utils.SuccessResponse(c, fiber.StatusOK, id)
}

func DeleteMenuItems(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	var items []model.MenuItem
	if err := database.DB.Where("id IN ?", input.IDs).Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Where("id IN ?", input.IDs).Delete(&model.MenuItem{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	for _, it := range items {
		go helper.DestroyImage(context.Background(), it.ImagePublicId)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, input.IDs)
}
