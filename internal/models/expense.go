package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/types"
	"gorm.io/gorm"
)

// Expense is a single amount of money spent by a user.
//
// Expenses are hard deleted.
type Expense struct {
	DefaultModel
	UserID      uint            `json:"user_id" gorm:"not null;index:idx_expenses_user_date,priority:1;index:idx_expenses_user_category,priority:1"`
	User        User            `json:"-"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index:idx_expenses_user_category,priority:2"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(10,2);not null"`
	Description string          `json:"description" gorm:"size:200;not null"`
	Date        types.Date      `json:"date" gorm:"not null;index:idx_expenses_user_date,priority:2"`
	Notes       string          `json:"notes"`
	ReceiptURL  string          `json:"receipt_url" gorm:"size:500"`
	Tags        types.Tags      `json:"tags"`
	IsRecurring bool            `json:"is_recurring" gorm:"not null;default:false"`
}

// BeforeSave trims whitespace and rounds the amount to cents.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	e.Amount = e.Amount.Round(2)
	e.Description = strings.TrimSpace(e.Description)
	e.Notes = strings.TrimSpace(e.Notes)
	e.ReceiptURL = strings.TrimSpace(e.ReceiptURL)
	e.Tags = types.NewTags(e.Tags...)

	return nil
}
