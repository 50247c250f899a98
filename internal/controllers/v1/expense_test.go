package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/types"
	"github.com/spendwise/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	user := suite.createTestUser("grace")
	category := suite.createTestCategory(user.ID, "Food")

	r := suite.request(user.ID, http.MethodPost, "http://example.com/expenses", fmt.Sprintf(`{
		"amount": 12.5,
		"description": "Lunch",
		"date": "2025-01-15",
		"category_id": %d,
		"notes": "with Linus",
		"tags": ["food", "lunch"]
	}`, category.ID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExpenseWriteResponse
	test.DecodeResponse(suite.T(), &r, &response)

	e := response.Expense
	suite.Assert().Equal("Expense created successfully", response.Message)
	suite.Assert().True(decimal.RequireFromString("12.50").Equal(e.Amount), "amount is %s", e.Amount)
	suite.Assert().Equal("$12.50", e.FormattedAmount)
	suite.Assert().Equal("Lunch", e.Description)
	suite.Assert().Equal(types.NewDate(2025, time.January, 15), e.Date)
	suite.Assert().Equal("with Linus", e.Notes)
	suite.Assert().Equal(types.Tags{"food", "lunch"}, e.Tags)
	suite.Assert().False(e.IsRecurring)
	suite.Assert().Equal(user.ID, e.UserID)
	suite.Assert().Equal(category.ID, e.CategoryID)
	suite.Assert().Equal("Food", e.Category.Name)
	suite.Assert().Contains(r.Body.String(), `"date":"2025-01-15"`)
	suite.Assert().Contains(r.Body.String(), `"amount":12.5`)

	suite.Assert().Equal(fmt.Sprintf("http://example.com/expenses/%d", e.ID), r.Header().Get("Location"))
}

func (suite *TestSuiteStandard) TestCreateExpenseForeignCategory() {
	grace := suite.createTestUser("grace")
	linus := suite.createTestUser("linus")
	category := suite.createTestCategory(linus.ID, "Food")

	deleted := suite.createTestCategory(grace.ID, "Old")
	r := suite.request(grace.ID, http.MethodDelete, fmt.Sprintf("http://example.com/categories/%d", deleted.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	for _, id := range []uint{category.ID, deleted.ID, 4711} {
		suite.T().Run(fmt.Sprint(id), func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/expenses", fmt.Sprintf(`{"amount": 3, "description": "Coffee", "date": "2025-01-15", "category_id": %d}`, id), test.AuthHeader(t, grace.ID))
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
			assert.Equal(t, "category not found or access denied", test.DecodeError(t, &r).Message)
		})
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	user := suite.createTestUser("grace")
	category := suite.createTestCategory(user.ID, "Food")

	body := func(field string) string {
		return fmt.Sprintf(`{"amount": 10, "description": "Lunch", "date": "2025-01-15", "category_id": %d, %s}`, category.ID, field)
	}

	tests := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{"Zero amount", fmt.Sprintf(`{"amount": 0, "description": "Lunch", "date": "2025-01-15", "category_id": %d}`, category.ID), "amount", "amount must be between 0.01 and 99999999.99 with at most two decimal places"},
		{"Negative amount", fmt.Sprintf(`{"amount": -5, "description": "Lunch", "date": "2025-01-15", "category_id": %d}`, category.ID), "amount", "amount must be between 0.01 and 99999999.99 with at most two decimal places"},
		{"Three decimals", fmt.Sprintf(`{"amount": 1.005, "description": "Lunch", "date": "2025-01-15", "category_id": %d}`, category.ID), "amount", "amount must be between 0.01 and 99999999.99 with at most two decimal places"},
		{"Too large", fmt.Sprintf(`{"amount": 100000000, "description": "Lunch", "date": "2025-01-15", "category_id": %d}`, category.ID), "amount", "amount must be between 0.01 and 99999999.99 with at most two decimal places"},
		{"Missing amount", fmt.Sprintf(`{"description": "Lunch", "date": "2025-01-15", "category_id": %d}`, category.ID), "amount", "amount is required"},
		{"Missing date", fmt.Sprintf(`{"amount": 10, "description": "Lunch", "category_id": %d}`, category.ID), "date", "date is required"},
		{"Missing category", `{"amount": 10, "description": "Lunch", "date": "2025-01-15"}`, "category_id", "category_id is required"},
		{"Blank description", fmt.Sprintf(`{"amount": 10, "description": "  ", "date": "2025-01-15", "category_id": %d}`, category.ID), "description", "description is required"},
		{"Long notes", body(fmt.Sprintf(`"notes": "%01001d"`, 0)), "notes", "notes cannot be longer than 1000 characters"},
		{"Tag with comma", body(`"tags": ["food,lunch"]`), "tags[0]", "tags[0] must not contain commas"},
		{"Empty tag", body(`"tags": ["food", " "]`), "tags[1]", "tags[1] is required"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/expenses", tt.body, test.AuthHeader(t, user.ID))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			e := test.DecodeError(t, &r)
			assert.Equal(t, "validation failed", e.Message)
			assert.Equal(t, tt.msg, e.Details[tt.field], "Details: %v", e.Details)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalidDate() {
	user := suite.createTestUser("grace")
	category := suite.createTestCategory(user.ID, "Food")

	for _, date := range []string{"15.01.2025", "2025-02-30", "2025-01-15T12:00:00Z"} {
		suite.T().Run(date, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/expenses", fmt.Sprintf(`{"amount": 10, "description": "Lunch", "date": %q, "category_id": %d}`, date, category.ID), test.AuthHeader(t, user.ID))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, &r).Message, types.ErrInvalidDate.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpense() {
	grace := suite.createTestUser("grace")
	linus := suite.createTestUser("linus")
	category := suite.createTestCategory(grace.ID, "Food")
	expense := suite.createTestExpense(grace.ID, models.Expense{CategoryID: category.ID, Tags: types.Tags{"food", "lunch"}})
	path := fmt.Sprintf("http://example.com/expenses/%d", expense.ID)

	r := suite.request(grace.ID, http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(expense.ID, response.Expense.ID)
	suite.Assert().Equal("Food", response.Expense.Category.Name)
	suite.Assert().Equal(types.Tags{"food", "lunch"}, response.Expense.Tags)

	// Reading is idempotent
	again := suite.request(grace.ID, http.MethodGet, path, nil)
	suite.Assert().Equal(r.Body.String(), again.Body.String())

	r = suite.request(linus.ID, http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no expense matching your query", test.DecodeError(suite.T(), &r).Message)

	r = suite.request(grace.ID, http.MethodGet, "http://example.com/expenses/lunch", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	grace := suite.createTestUser("grace")
	linus := suite.createTestUser("linus")
	food := suite.createTestCategory(grace.ID, "Food")
	transport := suite.createTestCategory(grace.ID, "Transport")
	books := suite.createTestCategory(linus.ID, "Books")

	suite.createTestExpense(grace.ID, models.Expense{CategoryID: food.ID, Description: "Lunch", Amount: decimal.RequireFromString("12.50"), Date: types.NewDate(2025, time.January, 15), Notes: "with Linus"})
	suite.createTestExpense(grace.ID, models.Expense{CategoryID: food.ID, Description: "Groceries", Amount: decimal.RequireFromString("40.00"), Date: types.NewDate(2025, time.January, 31)})
	suite.createTestExpense(grace.ID, models.Expense{CategoryID: transport.ID, Description: "Bus ticket", Amount: decimal.RequireFromString("2.80"), Date: types.NewDate(2025, time.February, 1)})
	suite.createTestExpense(grace.ID, models.Expense{CategoryID: transport.ID, Description: "100% refundable train", Amount: decimal.RequireFromString("100.00"), Date: types.NewDate(2024, time.December, 31)})
	suite.createTestExpense(linus.ID, models.Expense{CategoryID: books.ID, Description: "Lunch", Date: types.NewDate(2025, time.January, 15)})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"All, newest first", "", []string{"Bus ticket", "Groceries", "Lunch", "100% refundable train"}},
		{"Category", fmt.Sprintf("?category_id=%d", food.ID), []string{"Groceries", "Lunch"}},
		{"Date range", "?start_date=2025-01-01&end_date=2025-01-31", []string{"Groceries", "Lunch"}},
		{"Before range", "?end_date=2024-12-31", []string{"100% refundable train"}},
		{"Search description", "?search=LUNCH", []string{"Lunch"}},
		{"Search notes", "?search=linus", []string{"Lunch"}},
		{"Search category", "?search=transp", []string{"Bus ticket", "100% refundable train"}},
		{"Search wildcard is literal", "?search=0%25", []string{"100% refundable train"}},
		{"Amount ascending", "?sort_by=amount&sort_order=asc", []string{"Bus ticket", "Lunch", "Groceries", "100% refundable train"}},
		{"Unknown sort field", "?sort_by=password&sort_order=asc", []string{"100% refundable train", "Lunch", "Groceries", "Bus ticket"}},
		{"Combined", fmt.Sprintf("?category_id=%d&start_date=2025-01-20&search=groc", food.ID), []string{"Groceries"}},
		{"Nothing", "?search=caviar", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/expenses"+tt.query, nil, test.AuthHeader(t, grace.ID))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)

			descriptions := []string{}
			for _, e := range response.Items {
				descriptions = append(descriptions, e.Description)
				assert.Equal(t, grace.ID, e.UserID)
			}
			assert.Equal(t, tt.want, descriptions)
			assert.Equal(t, int64(len(tt.want)), response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesPagination() {
	user := suite.createTestUser("grace")
	category := suite.createTestCategory(user.ID, "Food")

	for day := 1; day <= 25; day++ {
		suite.createTestExpense(user.ID, models.Expense{
			CategoryID:  category.ID,
			Description: fmt.Sprintf("Day %d", day),
			Date:        types.NewDate(2025, time.March, day),
		})
	}

	tests := []struct {
		name    string
		query   string
		page    int
		perPage int
		items   int
		pages   int
		first   string
	}{
		{"Defaults", "", 1, 20, 20, 2, "Day 25"},
		{"Second page", "?page=2", 2, 20, 5, 2, "Day 5"},
		{"Small pages", "?page=3&per_page=10", 3, 10, 5, 3, "Day 5"},
		{"Page zero is the first page", "?page=0&per_page=10", 1, 10, 10, 3, "Day 25"},
		{"Page size is capped", "?per_page=1000", 1, 100, 25, 1, "Day 25"},
		{"Page size is at least 1", "?per_page=0", 1, 1, 1, 25, "Day 25"},
		{"Beyond the last page", "?page=9", 9, 20, 0, 2, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/expenses"+tt.query, nil, test.AuthHeader(t, user.ID))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)

			p := response.Pagination
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.perPage, p.PerPage)
			assert.Equal(t, int64(25), p.Total)
			assert.Equal(t, tt.pages, p.Pages)
			assert.Len(t, response.Items, tt.items)
			if tt.first != "" {
				assert.Equal(t, tt.first, response.Items[0].Description)
			}
		})
	}

	r := suite.request(user.ID, http.MethodGet, "http://example.com/expenses?page=2&per_page=10", nil)
	p := suite.decodeExpenses(&r).Pagination
	suite.Assert().True(p.HasPrev)
	suite.Assert().True(p.HasNext)
	suite.Require().NotNil(p.PrevNum)
	suite.Require().NotNil(p.NextNum)
	suite.Assert().Equal(1, *p.PrevNum)
	suite.Assert().Equal(3, *p.NextNum)
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidQuery() {
	user := suite.createTestUser("grace")
	long := fmt.Sprintf("%0101d", 0)

	tests := []struct {
		name  string
		query string
		field string
		msg   string
	}{
		{"Page", "?page=first", "page", "page must be an integer"},
		{"Per page", "?per_page=1.5", "per_page", "per_page must be an integer"},
		{"Category", "?category_id=food", "category_id", "category_id must be a positive integer"},
		{"Start date", "?start_date=01/01/2025", "start_date", "start_date must be a date in YYYY-MM-DD format"},
		{"End date", "?end_date=2025-13-01", "end_date", "end_date must be a date in YYYY-MM-DD format"},
		{"Search", "?search=" + long, "search", "search cannot be longer than 100 characters"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/expenses"+tt.query, nil, test.AuthHeader(t, user.ID))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			e := test.DecodeError(t, &r)
			assert.Equal(t, "validation failed", e.Message)
			assert.Equal(t, tt.msg, e.Details[tt.field])
		})
	}

	// All problems are reported at once
	r := suite.request(user.ID, http.MethodGet, "http://example.com/expenses?page=x&start_date=y", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Len(test.DecodeError(suite.T(), &r).Details, 2)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	user := suite.createTestUser("grace")
	food := suite.createTestCategory(user.ID, "Food")
	transport := suite.createTestCategory(user.ID, "Transport")
	expense := suite.createTestExpense(user.ID, models.Expense{
		CategoryID:  food.ID,
		Description: "Lunch",
		Notes:       "with Linus",
		Tags:        types.Tags{"food"},
	})
	path := fmt.Sprintf("http://example.com/expenses/%d", expense.ID)

	r := suite.request(user.ID, http.MethodPut, path, fmt.Sprintf(`{"amount": 14.9, "category_id": %d, "tags": ["work", "lunch"]}`, transport.ID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseWriteResponse
	test.DecodeResponse(suite.T(), &r, &response)

	e := response.Expense
	suite.Assert().Equal("Expense updated successfully", response.Message)
	suite.Assert().Equal("$14.90", e.FormattedAmount)
	suite.Assert().Equal(transport.ID, e.CategoryID)
	suite.Assert().Equal("Transport", e.Category.Name)
	suite.Assert().Equal(types.Tags{"work", "lunch"}, e.Tags)
	suite.Assert().Equal("Lunch", e.Description, "Description must not change if it is not sent")
	suite.Assert().Equal("with Linus", e.Notes, "Notes must not change if they are not sent")
	suite.Assert().Equal(expense.Date, e.Date)

	// Explicit empty values clear the field
	r = suite.request(user.ID, http.MethodPut, path, `{"notes": "", "tags": [], "is_recurring": true}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	response = v1.ExpenseWriteResponse{}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("", response.Expense.Notes)
	suite.Assert().Empty(response.Expense.Tags)
	suite.Assert().True(response.Expense.IsRecurring)
	suite.Assert().Contains(r.Body.String(), `"tags":[]`)

	// The stored state matches the response
	r = suite.request(user.ID, http.MethodGet, path, nil)
	var stored v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &stored)
	suite.Assert().Equal(response.Expense.Amount.String(), stored.Expense.Amount.String())
	suite.Assert().Equal(transport.ID, stored.Expense.CategoryID)
	suite.Assert().True(stored.Expense.IsRecurring)
}

func (suite *TestSuiteStandard) TestUpdateExpenseFailures() {
	grace := suite.createTestUser("grace")
	linus := suite.createTestUser("linus")
	food := suite.createTestCategory(grace.ID, "Food")
	books := suite.createTestCategory(linus.ID, "Books")
	expense := suite.createTestExpense(grace.ID, models.Expense{CategoryID: food.ID})

	tests := []struct {
		name   string
		userID uint
		body   string
		status int
	}{
		{"Other user", linus.ID, `{"description": "Mine now"}`, http.StatusNotFound},
		{"Foreign category", grace.ID, fmt.Sprintf(`{"category_id": %d}`, books.ID), http.StatusNotFound},
		{"Zero amount", grace.ID, `{"amount": 0}`, http.StatusBadRequest},
		{"Blank description", grace.ID, `{"description": ""}`, http.StatusBadRequest},
		{"Bad date", grace.ID, `{"date": "yesterday"}`, http.StatusBadRequest},
		{"Null body", grace.ID, `null`, http.StatusOK},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/expenses/%d", expense.ID), tt.body, test.AuthHeader(t, tt.userID))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := suite.request(grace.ID, http.MethodGet, fmt.Sprintf("http://example.com/expenses/%d", expense.ID), nil)
	var stored v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &stored)
	suite.Assert().Equal("Test expense", stored.Expense.Description)
	suite.Assert().Equal(food.ID, stored.Expense.CategoryID)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	grace := suite.createTestUser("grace")
	linus := suite.createTestUser("linus")
	category := suite.createTestCategory(grace.ID, "Food")
	expense := suite.createTestExpense(grace.ID, models.Expense{CategoryID: category.ID})
	path := fmt.Sprintf("http://example.com/expenses/%d", expense.ID)

	r := suite.request(linus.ID, http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(grace.ID, http.MethodDelete, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Message
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Expense deleted successfully", response.Message)

	r = suite.request(grace.ID, http.MethodGet, path, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Expenses are hard deleted
	var count int64
	suite.Require().Nil(models.DB.Unscoped().Model(&models.Expense{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestGetCategoryExpenses() {
	grace := suite.createTestUser("grace")
	linus := suite.createTestUser("linus")
	food := suite.createTestCategory(grace.ID, "Food")
	transport := suite.createTestCategory(grace.ID, "Transport")

	suite.createTestExpense(grace.ID, models.Expense{CategoryID: food.ID, Description: "Lunch", Date: types.NewDate(2025, time.January, 15)})
	suite.createTestExpense(grace.ID, models.Expense{CategoryID: food.ID, Description: "Groceries", Date: types.NewDate(2025, time.January, 31)})
	suite.createTestExpense(grace.ID, models.Expense{CategoryID: transport.ID, Description: "Bus ticket"})

	r := suite.request(grace.ID, http.MethodGet, fmt.Sprintf("http://example.com/expenses/categories/%d?per_page=1", food.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	response := suite.decodeExpenses(&r)
	suite.Require().Len(response.Items, 1)
	suite.Assert().Equal("Groceries", response.Items[0].Description)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
	suite.Assert().Equal(2, response.Pagination.Pages)

	r = suite.request(linus.ID, http.MethodGet, fmt.Sprintf("http://example.com/expenses/categories/%d", food.ID), nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = suite.request(grace.ID, http.MethodGet, "http://example.com/expenses/categories/food", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetExpenseSummary() {
	grace := suite.createTestUser("grace")
	linus := suite.createTestUser("linus")
	food := suite.createTestCategory(grace.ID, "Food")
	transport := suite.createTestCategory(grace.ID, "Transport")
	books := suite.createTestCategory(linus.ID, "Books")

	suite.createTestExpense(grace.ID, models.Expense{CategoryID: food.ID, Amount: decimal.RequireFromString("12.50"), Date: types.NewDate(2025, time.January, 15)})
	suite.createTestExpense(grace.ID, models.Expense{CategoryID: food.ID, Amount: decimal.RequireFromString("40.00"), Date: types.NewDate(2025, time.January, 31)})
	suite.createTestExpense(grace.ID, models.Expense{CategoryID: transport.ID, Amount: decimal.RequireFromString("2.80"), Date: types.NewDate(2025, time.February, 1)})
	suite.createTestExpense(linus.ID, models.Expense{CategoryID: books.ID, Amount: decimal.RequireFromString("99.00")})

	r := suite.request(grace.ID, http.MethodGet, "http://example.com/expenses/summary", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{
		"summary": {
			"total_amount": 55.3,
			"total_count": 3,
			"average_amount": 18.43,
			"categories": {
				"Food": {"count": 2, "total": 52.5, "percentage": 94.94},
				"Transport": {"count": 1, "total": 2.8, "percentage": 5.06}
			},
			"monthly_totals": {"2025-01": 52.5, "2025-02": 2.8},
			"date_range": {"start": "2025-01-15", "end": "2025-02-01"}
		}
	}`, r.Body.String())

	r = suite.request(grace.ID, http.MethodGet, "http://example.com/expenses/summary?start_date=2025-02-01", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), `"total_count":1`)

	r = suite.request(grace.ID, http.MethodGet, "http://example.com/expenses/summary?search=caviar", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq(`{
		"summary": {
			"total_amount": 0,
			"total_count": 0,
			"average_amount": 0,
			"categories": {},
			"monthly_totals": {},
			"date_range": null
		}
	}`, r.Body.String())

	r = suite.request(grace.ID, http.MethodGet, "http://example.com/expenses/summary?end_date=soon", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
