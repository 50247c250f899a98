package v1

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
)

// URIID is the ID of a resource in the path.
type URIID struct {
	ID uint `uri:"id" binding:"required,min=1" example:"42"` // ID of the resource
}

// Message is a response body that only contains a message.
type Message struct {
	Message string `json:"message" example:"Category deleted successfully"`
}

// User is the API representation of a user.
type User struct {
	models.User
	FullName string `json:"full_name" example:"Ada Lovelace"` // First and last name
}

func newUser(u models.User) User {
	return User{
		User:     u,
		FullName: u.FullName(),
	}
}

// Category is the API representation of a category.
type Category struct {
	models.Category
	*models.CategoryStats // Only set when statistics were requested
}

// Expense is the API representation of an expense.
type Expense struct {
	models.Expense
	FormattedAmount string `json:"formatted_amount" example:"$12.50"` // Amount with currency symbol
}

func (co Controller) newExpense(e models.Expense) Expense {
	return Expense{
		Expense:         e,
		FormattedAmount: co.currencySymbol() + e.Amount.StringFixed(2),
	}
}

func (co Controller) newExpenses(expenses []models.Expense) []Expense {
	data := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, co.newExpense(e))
	}

	return data
}

// RegisterPayload is the body for registrations.
type RegisterPayload struct {
	Email     string `json:"email" binding:"required,max=120,mailformat" example:"ada@example.com"`
	Username  string `json:"username" binding:"required,notblank,min=3,max=80" example:"ada"`
	Password  string `json:"password" binding:"required,password" example:"Secret123"`
	FirstName string `json:"first_name" binding:"required,notblank,max=50" example:"Ada"`
	LastName  string `json:"last_name" binding:"required,notblank,max=50" example:"Lovelace"`
}

// LoginPayload is the body for logins.
type LoginPayload struct {
	Email    string `json:"email" binding:"required,mailformat" example:"ada@example.com"`
	Password string `json:"password" binding:"required" example:"Secret123"`
}

// CategoryCreate is the body to create a category.
type CategoryCreate struct {
	Name        string `json:"name" binding:"required,notblank,max=50" example:"Food & Dining"`
	Description string `json:"description" binding:"max=200" example:"Restaurants and groceries"`
	Color       string `json:"color" binding:"omitempty,hexcolor6" example:"#FF6B6B"` // Defaults to #6c757d
	Icon        string `json:"icon" binding:"max=50" example:"🍽️"`                    // Defaults to 📁
}

func (p CategoryCreate) model() models.Category {
	return models.Category{
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		Icon:        p.Icon,
	}
}

// CategoryUpdate is the body to update a category. Only fields that are
// present are changed.
type CategoryUpdate struct {
	Name        *string `json:"name" binding:"omitnil,notblank,max=50" example:"Groceries"`
	Description *string `json:"description" binding:"omitnil,max=200"`
	Color       *string `json:"color" binding:"omitnil,hexcolor6" example:"#4ECDC4"`
	Icon        *string `json:"icon" binding:"omitnil,max=50"`
}

// ExpenseCreate is the body to create an expense.
type ExpenseCreate struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required,money" swaggertype:"number" example:"12.5"`
	Description string           `json:"description" binding:"required,notblank,max=200" example:"Lunch"`
	Date        *types.Date      `json:"date" binding:"required" swaggertype:"string" format:"date" example:"2025-01-15"`
	CategoryID  uint             `json:"category_id" binding:"required,min=1" example:"3"`
	Notes       string           `json:"notes" binding:"max=1000" example:"with Grace"`
	ReceiptURL  string           `json:"receipt_url" binding:"max=500" example:"https://example.com/receipts/17.pdf"`
	Tags        []string         `json:"tags" binding:"max=20,dive,notblank,max=50,excludesall=0x2C" example:"food,lunch"`
	IsRecurring bool             `json:"is_recurring" example:"false"`
}

func (p ExpenseCreate) model() models.Expense {
	return models.Expense{
		Amount:      *p.Amount,
		Description: p.Description,
		Date:        *p.Date,
		CategoryID:  p.CategoryID,
		Notes:       p.Notes,
		ReceiptURL:  p.ReceiptURL,
		Tags:        types.NewTags(p.Tags...),
		IsRecurring: p.IsRecurring,
	}
}

// ExpenseUpdate is the body to update an expense. Only fields that are
// present are changed.
type ExpenseUpdate struct {
	Amount      *decimal.Decimal `json:"amount" binding:"omitnil,money" swaggertype:"number" example:"14.9"`
	Description *string          `json:"description" binding:"omitnil,notblank,max=200"`
	Date        *types.Date      `json:"date" swaggertype:"string" format:"date" example:"2025-01-16"`
	CategoryID  *uint            `json:"category_id" binding:"omitnil,min=1"`
	Notes       *string          `json:"notes" binding:"omitnil,max=1000"`
	ReceiptURL  *string          `json:"receipt_url" binding:"omitnil,max=500"`
	Tags        *[]string        `json:"tags" binding:"omitnil,max=20,dive,notblank,max=50,excludesall=0x2C"`
	IsRecurring *bool            `json:"is_recurring"`
}
