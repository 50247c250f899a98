package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/service"
	"github.com/spendwise/backend/internal/validate"
)

// CategoryResponse contains a single category.
type CategoryResponse struct {
	Category Category `json:"category"`
}

// CategoryWriteResponse is returned when a category was created or changed.
type CategoryWriteResponse struct {
	Message  string   `json:"message" example:"Category created successfully"`
	Category Category `json:"category"`
}

// CategoryListResponse contains a list of categories.
type CategoryListResponse struct {
	Categories []Category `json:"categories"`
	Total      int        `json:"total" example:"8"` // Number of categories
}

// CategoryQuery are the query parameters of the category list.
type CategoryQuery struct {
	IncludeStats string `form:"include_stats"`
}

// newCategory returns the API representation of a category, with statistics
// if requested.
func newCategory(category models.Category, withStats bool) (Category, error) {
	data := Category{Category: category}
	if !withStats {
		return data, nil
	}

	stats, err := category.Stats(models.DB)
	if err != nil {
		return Category{}, err
	}
	data.CategoryStats = &stats

	return data, nil
}

// @Summary		Create category
// @Description	Creates a new category for the authenticated user
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201			{object}	CategoryWriteResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		409			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			category	body		CategoryCreate	true	"Category"
// @Router			/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var payload CategoryCreate
	if err := httputil.BindData(c, &payload); err != nil {
		abort(c, err)
		return
	}

	category, err := service.CreateCategory(models.DB, auth.UserID(c), payload.model())
	if err != nil {
		abort(c, err)
		return
	}

	data, err := newCategory(category, true)
	if err != nil {
		abort(c, err)
		return
	}

	location(c, "categories", category.ID)
	c.JSON(http.StatusCreated, CategoryWriteResponse{
		Message:  "Category created successfully",
		Category: data,
	})
}

// @Summary		Get categories
// @Description	Returns the active categories of the authenticated user, ordered by name
// @Tags			Categories
// @Produce		json
// @Security		BearerAuth
// @Success		200				{object}	CategoryListResponse
// @Failure		400				{object}	httperror.Error
// @Failure		401				{object}	httperror.Error
// @Failure		500				{object}	httperror.Error
// @Param			include_stats	query		bool	false	"Include expense count and total amount"
// @Router			/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var q CategoryQuery

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&q)

	withStats := false
	if q.IncludeStats != "" {
		var err error
		withStats, err = strconv.ParseBool(q.IncludeStats)
		if err != nil {
			abort(c, validate.FieldErrors{"include_stats": "include_stats must be true or false"})
			return
		}
	}

	categories, err := service.Categories(models.DB, auth.UserID(c))
	if err != nil {
		abort(c, err)
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		apiResource, err := newCategory(category, withStats)
		if err != nil {
			abort(c, err)
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Categories: data,
		Total:      len(data),
	})
}

// @Summary		Get category
// @Description	Returns a category of the authenticated user with its statistics
// @Tags			Categories
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		int	true	"ID of the category"
// @Router			/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, errInvalidID)
		return
	}

	category, err := service.Category(models.DB, auth.UserID(c), uri.ID)
	if err != nil {
		abort(c, err)
		return
	}

	data, err := newCategory(category, true)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Category: data})
}

// @Summary		Update category
// @Description	Updates a category of the authenticated user. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200			{object}	CategoryWriteResponse
// @Failure		400			{object}	httperror.Error
// @Failure		401			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		409			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			path		int				true	"ID of the category"
// @Param			category	body		CategoryUpdate	true	"Category"
// @Router			/categories/{id} [put]
func (co Controller) UpdateCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, errInvalidID)
		return
	}

	var payload CategoryUpdate
	if err := httputil.BindData(c, &payload); err != nil {
		abort(c, err)
		return
	}

	category, err := service.UpdateCategory(models.DB, auth.UserID(c), uri.ID, service.CategoryChanges{
		Name:        payload.Name,
		Description: payload.Description,
		Color:       payload.Color,
		Icon:        payload.Icon,
	})
	if err != nil {
		abort(c, err)
		return
	}

	data, err := newCategory(category, true)
	if err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryWriteResponse{
		Message:  "Category updated successfully",
		Category: data,
	})
}

// @Summary		Delete category
// @Description	Deletes a category of the authenticated user. Categories with expenses cannot be deleted.
// @Tags			Categories
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	Message
// @Failure		400	{object}	httperror.Error
// @Failure		401	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		409	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		int	true	"ID of the category"
// @Router			/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abort(c, errInvalidID)
		return
	}

	if err := service.DeleteCategory(models.DB, auth.UserID(c), uri.ID); err != nil {
		abort(c, err)
		return
	}

	c.JSON(http.StatusOK, Message{Message: "Category deleted successfully"})
}
