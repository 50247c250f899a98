// Package v1 implements the HTTP handlers of the API.
package v1

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"golang.org/x/text/currency"
)

// Controller holds the dependencies of the handlers.
type Controller struct {
	Tokens   *auth.TokenManager
	Currency currency.Unit // Currency used for formatted amounts
}

// requireAccess only lets requests with a valid access token pass.
func (co Controller) requireAccess() gin.HandlerFunc {
	return auth.RequireToken(co.Tokens, auth.KindAccess)
}

// currencySymbol returns the narrow symbol of the currency, e.g. "$" for USD.
func (co Controller) currencySymbol() string {
	return fmt.Sprint(currency.NarrowSymbol(co.Currency))
}

// location sets the Location header to the URL of a created resource.
func location(c *gin.Context, collection string, id uint) {
	base := strings.TrimSuffix(c.GetString(string(models.DBContextURL)), "/")
	c.Header("Location", fmt.Sprintf("%s/%s/%d", base, collection, id))
}

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)

	r.OPTIONS("/refresh", httputil.OptionsPost)
	r.POST("/refresh", auth.RequireToken(co.Tokens, auth.KindRefresh), co.Refresh)

	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", co.requireAccess(), co.Me)

	r.OPTIONS("/logout", httputil.OptionsPost)
	r.POST("/logout", co.requireAccess(), co.Logout)
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.requireAccess(), co.GetCategories)
		r.POST("", co.requireAccess(), co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", co.requireAccess(), co.GetCategory)
		r.PUT("/:id", co.requireAccess(), co.UpdateCategory)
		r.DELETE("/:id", co.requireAccess(), co.DeleteCategory)
	}
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.requireAccess(), co.GetExpenses)
		r.POST("", co.requireAccess(), co.CreateExpense)
	}

	{
		r.OPTIONS("/summary", httputil.OptionsGet)
		r.GET("/summary", co.requireAccess(), co.GetExpenseSummary)

		r.OPTIONS("/categories/:id", httputil.OptionsGet)
		r.GET("/categories/:id", co.requireAccess(), co.GetCategoryExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", co.requireAccess(), co.GetExpense)
		r.PUT("/:id", co.requireAccess(), co.UpdateExpense)
		r.DELETE("/:id", co.requireAccess(), co.DeleteExpense)
	}
}
