package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/query"
	"github.com/spendwise/backend/internal/service"
	"github.com/spendwise/backend/internal/summary"
	"github.com/spendwise/backend/internal/types"
	"github.com/spendwise/backend/internal/validate"
)

// ExpenseResponse contains a single expense.
type ExpenseResponse struct {
	Expense Expense `json:"expense"`
}

// ExpenseWriteResponse is returned when an expense was created or changed.
type ExpenseWriteResponse struct {
	Message string  `json:"message" example:"Expense created successfully"`
	Expense Expense `json:"expense"`
}

// ExpenseListResponse contains a page of expenses.
type ExpenseListResponse struct {
	Items      []Expense        `json:"items"`
	Pagination query.Pagination `json:"pagination"`
}

// SummaryResponse contains the statistics for a set of expenses.
type SummaryResponse struct {
	Summary summary.Summary `json:"summary"`
}

// @Summary		Create expense
// @Description	Creates a new expense in one of the categories of the authenticated user
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	ExpenseWriteResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			expense	body		ExpenseCreate	true	"Expense"
// @Router			/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var payload ExpenseCreate
	if err := httputil.BindData(c, &payload); err != nil {
		abort(c, err)
		return
	}

	expense, err := service.CreateExpense(models.DB, auth.UserID(c), payload.model())
	if err != nil {
		abort(c, err)
		return
	}

	location(c, "expenses", expense.ID)
	c.JSON(http.StatusCreated, ExpenseWriteResponse{
		Message: "Expense created successfully",
		Expense: co.newExpense(expense),
	})
}

// @Summary		Get expenses
// @Description	Returns a filtered, sorted page of the expenses of the authenticated user
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			page		query		int		false	"Page number, starting at 1"
// @Param			per_page	query		int		false	"Expenses per page, at most 100. Defaults to 20."
// @Param			category_id	query		int		false	"Filter by category ID"
// @Param			start_date	query		string	false	"Only expenses on or after this date (YYYY-MM-DD)"
// @Param			end_date	query		string	false	"Only expenses on or before this date (YYYY-MM-DD)"
// @Param			search		query		string	false	"Search in description, notes and category name"
// @Param			sort_by		query		string	false	"Sort field"	Enums(date, amount, description, created_at)
// @Param			sort_order	query		string	false	"Sort direction"	Enums(asc, desc)
// @Router			/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var q ExpenseQuery

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&q)

	errs := validate.FieldErrors{}
	filter := q.filter(auth.UserID(c), errs)
	page := q.page(errs)
	if len(errs) > 0 {
		abort(c, errs)
		return
	}

	expenses, pagination, err := service.Expenses(models.DB, filter, page)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Items:      co.newExpenses(expenses),
		Pagination: pagination,
	})
}

// @Summary		Get expense summary
// @Description	Returns statistics for the expenses of the authenticated user matching the filter
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	SummaryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			category_id	query		int		false	"Filter by category ID"
// @Param			start_date	query		string	false	"Only expenses on or after this date (YYYY-MM-DD)"
// @Param			end_date	query		string	false	"Only expenses on or before this date (YYYY-MM-DD)"
// @Param			search		query		string	false	"Search in description, notes and category name"
// @Router			/expenses/summary [get]
func (co Controller) GetExpenseSummary(c *gin.Context) {
	var q ExpenseQuery
	_ = c.ShouldBindQuery(&q)

	errs := validate.FieldErrors{}
	filter := q.filter(auth.UserID(c), errs)
	if len(errs) > 0 {
		abort(c, errs)
		return
	}

	s, err := service.ExpenseSummary(models.DB, filter)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Summary: s})
}

// @Summary		Get expenses of category
// @Description	Returns a page of the expenses in a category of the authenticated user, newest first
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			path		int	true	"ID of the category"
// @Param			page		query		int	false	"Page number, starting at 1"
// @Param			per_page	query		int	false	"Expenses per page, at most 100. Defaults to 20."
// @Router			/expenses/categories/{id} [get]
func (co Controller) GetCategoryExpenses(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, errInvalidID)
		return
	}

	var q ExpenseQuery
	_ = c.ShouldBindQuery(&q)

	errs := validate.FieldErrors{}
	page := q.page(errs)
	if len(errs) > 0 {
		abort(c, errs)
		return
	}

	expenses, pagination, err := service.CategoryExpenses(models.DB, auth.UserID(c), uri.ID, page)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Items:      co.newExpenses(expenses),
		Pagination: pagination,
	})
}

// @Summary		Get expense
// @Description	Returns an expense of the authenticated user
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		int	true	"ID of the expense"
// @Router			/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, errInvalidID)
		return
	}

	expense, err := service.Expense(models.DB, auth.UserID(c), uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Expense: co.newExpense(expense)})
}

// @Summary		Update expense
// @Description	Updates an expense of the authenticated user. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	ExpenseWriteResponse
// @Failure		400		{object}	httperror.Error
// @Failure		401		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		int				true	"ID of the expense"
// @Param			expense	body		ExpenseUpdate	true	"Expense"
// @Router			/expenses/{id} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, errInvalidID)
		return
	}

	var payload ExpenseUpdate
	if err := httputil.BindData(c, &payload); err != nil {
		abort(c, err)
		return
	}

	changes := service.ExpenseChanges{
		Amount:      payload.Amount,
		Description: payload.Description,
		Date:        payload.Date,
		CategoryID:  payload.CategoryID,
		Notes:       payload.Notes,
		ReceiptURL:  payload.ReceiptURL,
		IsRecurring: payload.IsRecurring,
	}

	if payload.Tags != nil {
		tags := types.NewTags(*payload.Tags...)
		changes.Tags = &tags
	}

	expense, err := service.UpdateExpense(models.DB, auth.UserID(c), uri.ID, changes)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseWriteResponse{
		Message: "Expense updated successfully",
		Expense: co.newExpense(expense),
	})
}

// @Summary		Delete expense
// @Description	Deletes an expense of the authenticated user
// @Tags			Expenses
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	Message
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		int	true	"ID of the expense"
// @Router			/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, errInvalidID)
		return
	}

	if err := service.DeleteExpense(models.DB, auth.UserID(c), uri.ID); err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, Message{Message: "Expense deleted successfully"})
}
