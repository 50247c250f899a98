package service

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryChanges are the fields to change on a category. Nil fields are
// left as they are.
type CategoryChanges struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
}

// Categories returns the active categories of the user ordered by name.
func Categories(db *gorm.DB, userID uint) ([]models.Category, error) {
	var categories []models.Category
	err := db.
		Where("user_id = ? AND is_active", userID).
		Order("name ASC").
		Find(&categories).Error

	return categories, err
}

// Category returns an active category of the user.
func Category(db *gorm.DB, userID, id uint) (models.Category, error) {
	var category models.Category
	err := db.
		Where("id = ? AND user_id = ? AND is_active", id, userID).
		First(&category).Error

	return category, err
}

// nameTaken checks if another active category of the user has the name.
func nameTaken(tx *gorm.DB, userID uint, name string, exclude uint) error {
	var count int64
	err := tx.Model(&models.Category{}).
		Where("user_id = ? AND name = ? AND is_active AND id != ?", userID, name, exclude).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return models.ErrCategoryNameNotUnique
	}

	return nil
}

// CreateCategory creates a category for the user.
func CreateCategory(db *gorm.DB, userID uint, category models.Category) (models.Category, error) {
	category.ID = 0
	category.UserID = userID
	category.Name = strings.TrimSpace(category.Name)
	category.IsActive = true

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := nameTaken(tx, userID, category.Name, 0); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(&category).Error
	})
	if err != nil {
		logFailure(userID, err, "creating category failed")
		return models.Category{}, err
	}

	log.Info().Uint("user", userID).Uint("category", category.ID).Msg("category created")
	return category, nil
}

// UpdateCategory applies the changes to an active category of the user.
func UpdateCategory(db *gorm.DB, userID, id uint, changes CategoryChanges) (models.Category, error) {
	var category models.Category

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		category, err = Category(tx, userID, id)
		if err != nil {
			return err
		}

		if changes.Name != nil {
			name := strings.TrimSpace(*changes.Name)
			if name != category.Name {
				if err := nameTaken(tx, userID, name, category.ID); err != nil {
					return err
				}
			}
			category.Name = name
		}

		if changes.Description != nil {
			category.Description = *changes.Description
		}

		if changes.Color != nil {
			category.Color = *changes.Color
		}

		if changes.Icon != nil {
			category.Icon = *changes.Icon
		}

		return tx.Omit(clause.Associations).Save(&category).Error
	})
	if err != nil {
		logFailure(userID, err, "updating category failed")
		return models.Category{}, err
	}

	return category, nil
}

// DeleteCategory soft deletes an active category of the user.
//
// Categories that are referenced by expenses cannot be deleted.
func DeleteCategory(db *gorm.DB, userID, id uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		category, err := Category(tx, userID, id)
		if err != nil {
			return err
		}

		count, err := category.CountExpenses(tx)
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrCategoryHasExpenses
		}

		return tx.Model(&category).Update("is_active", false).Error
	})
	if err != nil {
		logFailure(userID, err, "deleting category failed")
		return err
	}

	log.Info().Uint("user", userID).Uint("category", id).Msg("category deleted")
	return nil
}

// activeCategory returns the category for an expense of the user.
func activeCategory(tx *gorm.DB, userID, id uint) (models.Category, error) {
	var categories []models.Category
	err := tx.
		Where("id = ? AND user_id = ? AND is_active", id, userID).
		Limit(1).
		Find(&categories).Error
	if err != nil {
		return models.Category{}, err
	}

	if len(categories) == 0 {
		return models.Category{}, ErrCategoryUnavailable
	}

	return categories[0], nil
}
