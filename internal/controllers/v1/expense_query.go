package v1

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spendwise/backend/internal/query"
	"github.com/spendwise/backend/internal/types"
	"github.com/spendwise/backend/internal/validate"
)

const maxSearchLength = 100

// ExpenseQuery are the query parameters for expense lists.
//
// All parameters are bound as strings and parsed afterwards so that
// every invalid parameter can be reported.
type ExpenseQuery struct {
	Page       string `form:"page"`
	PerPage    string `form:"per_page"`
	CategoryID string `form:"category_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Search     string `form:"search"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
}

// page returns the requested page. Out of range values are clamped.
func (q ExpenseQuery) page(errs validate.FieldErrors) query.Page {
	number := parseInt(errs, "page", q.Page, 1)
	perPage := parseInt(errs, "per_page", q.PerPage, query.DefaultPerPage)

	return query.NewPage(number, perPage)
}

// filter returns the filter for the expenses of the user.
func (q ExpenseQuery) filter(userID uint, errs validate.FieldErrors) query.ExpenseFilter {
	f := query.ExpenseFilter{
		UserID:    userID,
		Search:    strings.TrimSpace(q.Search),
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}

	if q.CategoryID != "" {
		id, err := strconv.ParseUint(q.CategoryID, 10, 0)
		if err != nil || id == 0 {
			errs["category_id"] = "category_id must be a positive integer"
		}
		f.CategoryID = uint(id)
	}

	f.StartDate = parseDate(errs, "start_date", q.StartDate)
	f.EndDate = parseDate(errs, "end_date", q.EndDate)

	if utf8.RuneCountInString(f.Search) > maxSearchLength {
		errs["search"] = "search cannot be longer than 100 characters"
	}

	return f
}

func parseInt(errs validate.FieldErrors, field, value string, fallback int) int {
	if value == "" {
		return fallback
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		errs[field] = field + " must be an integer"
		return fallback
	}

	return i
}

func parseDate(errs validate.FieldErrors, field, value string) *types.Date {
	if value == "" {
		return nil
	}

	d, err := types.ParseDate(value)
	if err != nil {
		errs[field] = field + " must be a date in YYYY-MM-DD format"
		return nil
	}

	return &d
}
