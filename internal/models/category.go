package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultCategoryColor = "#6c757d"
	DefaultCategoryIcon  = "📁"
)

// Category groups expenses of a user.
//
// Categories are soft deleted by setting IsActive to false. Names are unique
// per user among the active categories only, a deleted category's name can
// be reused.
type Category struct {
	DefaultModel
	UserID      uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_categories_user_name,where:is_active"`
	User        User   `json:"-"`
	Name        string `json:"name" gorm:"size:50;not null;uniqueIndex:idx_categories_user_name,where:is_active"`
	Description string `json:"description" gorm:"size:200"`
	Color       string `json:"color" gorm:"size:7;not null"`
	Icon        string `json:"icon" gorm:"size:50;not null"`
	IsActive    bool   `json:"is_active" gorm:"not null;default:true"`
}

// CategoryStats are the aggregated figures of the expenses in a category.
type CategoryStats struct {
	ExpenseCount int64           `json:"expense_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// BeforeSave trims whitespace and sets defaults for presentation fields.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}

	return nil
}

// Stats returns the number of expenses in the category and their sum.
func (c Category) Stats(db *gorm.DB) (CategoryStats, error) {
	var expenses []Expense
	err := db.
		Select("amount").
		Where("category_id = ? AND user_id = ?", c.ID, c.UserID).
		Find(&expenses).Error
	if err != nil {
		return CategoryStats{}, err
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return CategoryStats{
		ExpenseCount: int64(len(expenses)),
		TotalAmount:  total,
	}, nil
}

// CountExpenses returns the number of expenses referencing the category.
func (c Category) CountExpenses(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Expense{}).Where("category_id = ?", c.ID).Count(&count).Error
	return count, err
}
