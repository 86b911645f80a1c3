package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strings"

	"gorm.io/gorm"
)

func CheckEmailStaff(db *gorm.DB, email string, id *uint) (bool, error) {
	var count int64
	query := db.Model(&model.Staff{}).Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email))
	if id != nil {
		query = query.Where("id <> ?", *id)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NormalizeRole accepts legacy role names and returns the canonical role,
// or "" when the role is unknown.
func NormalizeRole(role string) string {
	r := strings.ToUpper(utils.Normalize(role, constants.ROLE_ALIASES))
	if !utils.IsValidValueOfConstant(r, constants.ROLE) {
		return ""
	}
	return r
}

func ListWaiters(db *gorm.DB) ([]model.Staff, error) {
	waiters := []model.Staff{}
	err := db.Where("role = ? AND active = ?", constants.ROLE_WAITER, true).Order("name asc").Find(&waiters).Error
	return waiters, err
}
