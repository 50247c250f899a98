package service

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/query"
	"github.com/spendwise/backend/internal/summary"
	"github.com/spendwise/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExpenseChanges are the fields to change on an expense. Nil fields are
// left as they are.
type ExpenseChanges struct {
	Amount      *decimal.Decimal
	Description *string
	Date        *types.Date
	CategoryID  *uint
	Notes       *string
	ReceiptURL  *string
	Tags        *types.Tags
	IsRecurring *bool
}

// Expense returns an expense of the user with its category.
func Expense(db *gorm.DB, userID, id uint) (models.Expense, error) {
	var expense models.Expense
	err := db.
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error

	return expense, err
}

// Expenses returns the page of expenses matching the filter together with
// the pagination metadata.
func Expenses(db *gorm.DB, filter query.ExpenseFilter, page query.Page) ([]models.Expense, query.Pagination, error) {
	var total int64
	err := filter.Where(db.Model(&models.Expense{})).Count(&total).Error
	if err != nil {
		return nil, query.Pagination{}, err
	}

	expenses := make([]models.Expense, 0)
	err = page.Apply(filter.Apply(db.Model(&models.Expense{}))).
		Preload("Category").
		Find(&expenses).Error
	if err != nil {
		return nil, query.Pagination{}, err
	}

	return expenses, page.Pagination(total), nil
}

// CategoryExpenses returns a page of the expenses in an active category of
// the user, newest first.
func CategoryExpenses(db *gorm.DB, userID, categoryID uint, page query.Page) ([]models.Expense, query.Pagination, error) {
	if _, err := activeCategory(db, userID, categoryID); err != nil {
		return nil, query.Pagination{}, err
	}

	return Expenses(db, query.ExpenseFilter{
		UserID:     userID,
		CategoryID: categoryID,
		SortBy:     "date",
		SortOrder:  query.SortDesc,
	}, page)
}

// ExpenseSummary returns the statistics for all expenses matching the filter.
// Sorting in the filter is ignored.
func ExpenseSummary(db *gorm.DB, filter query.ExpenseFilter) (summary.Summary, error) {
	var items []summary.Item
	err := filter.Where(db.Model(&models.Expense{})).
		Select("expenses.amount AS amount, expenses.date AS date, COALESCE(categories.name, '') AS category").
		Scan(&items).Error
	if err != nil {
		return summary.Summary{}, err
	}

	return summary.Summarize(items), nil
}

// CreateExpense creates an expense for the user in one of the user's
// active categories.
func CreateExpense(db *gorm.DB, userID uint, expense models.Expense) (models.Expense, error) {
	expense.ID = 0
	expense.UserID = userID

	err := db.Transaction(func(tx *gorm.DB) error {
		category, err := activeCategory(tx, userID, expense.CategoryID)
		if err != nil {
			return err
		}

		err = tx.Omit(clause.Associations).Create(&expense).Error
		if err != nil {
			return err
		}

		expense.Category = category
		return nil
	})
	if err != nil {
		logFailure(userID, err, "creating expense failed")
		return models.Expense{}, err
	}

	log.Info().Uint("user", userID).Uint("expense", expense.ID).Str("amount", expense.Amount.StringFixed(2)).Msg("expense created")
	return expense, nil
}

// UpdateExpense applies the changes to an expense of the user.
func UpdateExpense(db *gorm.DB, userID, id uint, changes ExpenseChanges) (models.Expense, error) {
	var expense models.Expense

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		expense, err = Expense(tx, userID, id)
		if err != nil {
			return err
		}

		if changes.CategoryID != nil {
			category, err := activeCategory(tx, userID, *changes.CategoryID)
			if err != nil {
				return err
			}
			expense.CategoryID = category.ID
			expense.Category = category
		}

		if changes.Amount != nil {
			expense.Amount = *changes.Amount
		}

		if changes.Description != nil {
			expense.Description = *changes.Description
		}

		if changes.Date != nil {
			expense.Date = *changes.Date
		}

		if changes.Notes != nil {
			expense.Notes = *changes.Notes
		}

		if changes.ReceiptURL != nil {
			expense.ReceiptURL = *changes.ReceiptURL
		}

		if changes.Tags != nil {
			expense.Tags = *changes.Tags
		}

		if changes.IsRecurring != nil {
			expense.IsRecurring = *changes.IsRecurring
		}

		return tx.Omit(clause.Associations).Save(&expense).Error
	})
	if err != nil {
		logFailure(userID, err, "updating expense failed")
		return models.Expense{}, err
	}

	return expense, nil
}

// DeleteExpense deletes an expense of the user.
func DeleteExpense(db *gorm.DB, userID, id uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var expense models.Expense
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error
		if err != nil {
			return err
		}

		return tx.Delete(&expense).Error
	})
	if err != nil {
		logFailure(userID, err, "deleting expense failed")
		return err
	}

	log.Info().Uint("user", userID).Uint("expense", id).Msg("expense deleted")
	return nil
}
