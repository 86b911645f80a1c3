package helper

import (
	"errors"
	"fmt"
	"restaurant_manager/model"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func GenerateUniqueCategorySlug(tx *gorm.DB, name string, excludeId uint) (string, error) {
	base := slug.Make(name)
	if base == "" {
		base = "category"
	}
	result := base
	i := 1

	for {
		var count int64
		query := tx.Model(&model.Category{}).Where("slug = ?", result)
		if excludeId != 0 {
			query = query.Where("id <> ?", excludeId)
		}
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result, nil
}

func CheckCategoryName(tx *gorm.DB, name string, excludeId uint) (bool, error) {
	var count int64
	query := tx.Model(&model.Category{}).Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name))
	if excludeId != 0 {
		query = query.Where("id <> ?", excludeId)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func SaveCategory(db *gorm.DB, id uint, input model.CategoryInput) (*model.Category, error) {
	var category model.Category
	err := db.Transaction(func(tx *gorm.DB) error {
		if id != 0 {
			if err := tx.First(&category, id).Error; err != nil {
				return err
			}
		}
		exists, err := CheckCategoryName(tx, input.Name, id)
		if err != nil {
			return err
		}
		if exists {
			return ErrCategoryExists
		}
		category.Name = strings.TrimSpace(input.Name)
		category.Slug, err = GenerateUniqueCategorySlug(tx, category.Name, id)
		if err != nil {
			return err
		}
		return tx.Save(&category).Error
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func DeleteCategory(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var category model.Category
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		var items int64
		if err := tx.Model(&model.MenuItem{}).Where("category_id = ?", id).Count(&items).Error; err != nil {
			return err
		}
		if items > 0 {
			return ErrCategoryInUse
		}
		return tx.Delete(&category).Error
	})
}

// Restock resets the servings counter. Remaining defaults to the full
// count and may never exceed it.
func Restock(db *gorm.DB, id uint, input model.ServingsInput) (*model.MenuItem, error) {
	remaining := input.ServesCount
	if input.RemainingServings != nil {
		remaining = *input.RemainingServings
	}
	if remaining < 0 || remaining > input.ServesCount {
		return nil, errors.New("remaining servings must be between 0 and servesCount")
	}
	var item model.MenuItem
	if err := db.First(&item, id).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&item).Updates(map[string]any{
		"serves_count":       input.ServesCount,
		"remaining_servings": remaining,
	}).Error; err != nil {
		return nil, err
	}
	item.ServesCount = input.ServesCount
	item.RemainingServings = remaining
	return &item, nil
}

// PublicMenu returns categories with their available items, each flagged
// soldOut when its servings ran out.
func PublicMenu(db *gorm.DB, categoryId *uint) ([]model.MenuCategoryView, error) {
	var categories []model.Category
	query := db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Where("is_available = ?", true).Order("name asc")
	}).Order("name asc")
	if categoryId != nil {
		query = query.Where("id = ?", *categoryId)
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	result := make([]model.MenuCategoryView, 0, len(categories))
	for _, c := range categories {
		views := make([]model.MenuItemView, 0, len(c.Items))
		for _, it := range c.Items {
			views = append(views, model.NewMenuItemView(it))
		}
		result = append(result, model.MenuCategoryView{Id: c.ID, Name: c.Name, Slug: c.Slug, Items: views})
	}
	return result, nil
}
