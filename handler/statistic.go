package handler

import (
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

func GetStatistics(c *fiber.Ctx) error {
	report, err := helper.LoadStatistics(database.DB, c.Query("period", helper.PeriodToday), time.Now())
	if err != nil {
		return respondError(c, err, "")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, report)
}

func sendWorkbook(c *fiber.Ctx, file *xlsx.File, name string) error {
	data, err := utils.WorkbookBytes(file)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EXPORT_FAILED, err)
	}
	c.Set(fiber.HeaderContentType, utils.XLSXContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"%s\"", name))
	return c.Send(data)
}

func ExportStatistics(c *fiber.Ctx) error {
	now := time.Now()
	report, err := helper.LoadStatistics(database.DB, c.Query("period", helper.PeriodToday), now)
	if err != nil {
		return respondError(c, err, "")
	}
	file, err := utils.BuildStatisticsWorkbook(*report)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EXPORT_FAILED, err)
	}
	return sendWorkbook(c, file, fmt.Sprintf("statistika-%s-%s.xlsx", report.Current.Window.Period, now.Format("2006-01-02")))
}

func historyQuery(filter model.FilterOrderHistory) (*gorm.DB, error) {
	condition := database.DB.Model(&model.OrderHistory{})
	if filter.From != "" {
		from, err := utils.ParseDay(filter.From)
		if err != nil {
			return nil, err
		}
		condition = condition.Where("order_created_at >= ?", from)
	}
	if filter.To != "" {
		to, err := utils.ParseDay(filter.To)
		if err != nil {
			return nil, err
		}
		condition = condition.Where("order_created_at < ?", to.AddDate(0, 0, 1))
	}
	return condition, nil
}

func GetOrderHistory(c *fiber.Ctx) error {
	filter, _ := c.Locals("filterOrderHistory").(model.FilterOrderHistory)
	condition, err := historyQuery(filter)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "from")
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filter.Limit, filter.Page)

	rows := []model.OrderHistory{}
	if err := condition.Order("archived_at DESC").Find(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       rows,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func ExportOrderHistory(c *fiber.Ctx) error {
	filter, _ := c.Locals("filterOrderHistory").(model.FilterOrderHistory)
	condition, err := historyQuery(filter)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err, "from")
	}
	var rows []model.OrderHistory
	if err := condition.Order("archived_at DESC").Find(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	file, err := utils.BuildHistoryWorkbook(rows)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EXPORT_FAILED, err)
	}
	return sendWorkbook(c, file, fmt.Sprintf("arxiv-%s.xlsx", time.Now().Format("2006-01-02")))
}
