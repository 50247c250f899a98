// Package query composes the database queries for expense lists from
// client supplied filter, sort and page parameters.
package query

import (
	"strings"

	"github.com/spendwise/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortFields are the fields expenses can be sorted by.
var SortFields = []string{"date", "amount", "description", "created_at"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ExpenseFilter selects and orders the expenses of one user.
//
// Zero values of the optional fields do not filter.
type ExpenseFilter struct {
	UserID     uint
	CategoryID uint
	StartDate  *types.Date
	EndDate    *types.Date
	Search     string
	SortBy     string
	SortOrder  string
}

// Sort returns the column to sort by and the direction. Unknown fields
// fall back to date, unknown directions to descending.
func (f ExpenseFilter) Sort() (field string, desc bool) {
	field = f.SortBy
	if !slices.Contains(SortFields, field) {
		field = "date"
	}

	return field, !strings.EqualFold(f.SortOrder, SortAsc)
}

// Where restricts the query to the expenses matching the filter.
//
// The categories table is joined so that the search can match on
// category names.
func (f ExpenseFilter) Where(db *gorm.DB) *gorm.DB {
	q := db.
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ?", f.UserID)

	if f.CategoryID != 0 {
		q = q.Where("expenses.category_id = ?", f.CategoryID)
	}

	if f.StartDate != nil {
		q = q.Where("expenses.date >= ?", *f.StartDate)
	}

	if f.EndDate != nil {
		q = q.Where("expenses.date <= ?", *f.EndDate)
	}

	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + likeEscaper.Replace(search) + "%"
		group := db.Session(&gorm.Session{NewDB: true})
		q = q.Where(
			group.Where(`expenses.description LIKE ? ESCAPE '\'`, like).
				Or(`expenses.notes LIKE ? ESCAPE '\'`, like).
				Or(`categories.name LIKE ? ESCAPE '\'`, like),
		)
	}

	return q
}

// Order sorts the query by a single column.
func (f ExpenseFilter) Order(db *gorm.DB) *gorm.DB {
	field, desc := f.Sort()

	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	return db.Order("expenses." + field + " " + direction)
}

// Apply filters and sorts the query.
func (f ExpenseFilter) Apply(db *gorm.DB) *gorm.DB {
	return f.Order(f.Where(db))
}
