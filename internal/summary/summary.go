// Package summary computes descriptive statistics over a set of expenses.
//
// All arithmetic is done with fixed-point decimals. Amounts are only turned
// into JSON numbers when the Summary is serialized.
package summary

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise/backend/internal/types"
)

// Uncategorized is the breakdown key for expenses without a category.
const Uncategorized = "Uncategorized"

var hundred = decimal.NewFromInt(100)

// Item is the part of an expense the summary needs.
type Item struct {
	Amount   decimal.Decimal
	Date     types.Date
	Category string // Name of the category, empty if it could not be resolved
}

// CategoryTotal is the breakdown for one category.
type CategoryTotal struct {
	Count      int64           `json:"count" example:"4"`
	Total      decimal.Decimal `json:"total" example:"52.5"`
	Percentage decimal.Decimal `json:"percentage" example:"37.5"` // Share of the total amount, rounded to two places
}

// DateRange is the span of the expense dates.
type DateRange struct {
	Start types.Date `json:"start" swaggertype:"string" format:"date" example:"2025-01-03"`
	End   types.Date `json:"end" swaggertype:"string" format:"date" example:"2025-02-27"`
}

// Summary holds the statistics for a set of expenses.
type Summary struct {
	TotalAmount   decimal.Decimal            `json:"total_amount" example:"140"`
	TotalCount    int64                      `json:"total_count" example:"11"`
	AverageAmount decimal.Decimal            `json:"average_amount" example:"12.73"` // Rounded to two places
	Categories    map[string]*CategoryTotal  `json:"categories"`                     // Keyed by category name
	MonthlyTotals map[string]decimal.Decimal `json:"monthly_totals"`                 // Keyed by YYYY-MM
	DateRange     *DateRange                 `json:"date_range"`                     // null for an empty set
}

// Summarize computes the Summary of the items.
func Summarize(items []Item) Summary {
	s := Summary{
		TotalAmount:   decimal.Zero,
		AverageAmount: decimal.Zero,
		Categories:    make(map[string]*CategoryTotal),
		MonthlyTotals: make(map[string]decimal.Decimal),
	}

	if len(items) == 0 {
		return s
	}

	start, end := items[0].Date, items[0].Date
	for _, item := range items {
		s.TotalAmount = s.TotalAmount.Add(item.Amount)
		s.TotalCount++

		name := item.Category
		if name == "" {
			name = Uncategorized
		}

		c, ok := s.Categories[name]
		if !ok {
			c = &CategoryTotal{Total: decimal.Zero, Percentage: decimal.Zero}
			s.Categories[name] = c
		}
		c.Count++
		c.Total = c.Total.Add(item.Amount)

		month := item.Date.Month().String()
		s.MonthlyTotals[month] = s.MonthlyTotals[month].Add(item.Amount)

		if item.Date.Before(start) {
			start = item.Date
		}
		if item.Date.After(end) {
			end = item.Date
		}
	}

	s.AverageAmount = s.TotalAmount.Div(decimal.NewFromInt(s.TotalCount)).Round(2)
	s.DateRange = &DateRange{Start: start, End: end}

	if s.TotalAmount.IsPositive() {
		for _, c := range s.Categories {
			c.Percentage = c.Total.Mul(hundred).Div(s.TotalAmount).Round(2)
		}
	}

	return s
}
