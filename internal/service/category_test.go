package service_test

import (
	"time"

	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/service"
	"github.com/spendwise/backend/internal/types"
)

func ptr[T any](v T) *T {
	return &v
}

func (suite *TestSuiteStandard) TestCategoryNamesUniquePerUser() {
	ada := suite.createTestUser("ada")
	grace := suite.createTestUser("grace")

	suite.createTestCategory(ada.ID, "Food")
	suite.createTestCategory(grace.ID, "Food")

	_, err := service.CreateCategory(models.DB, ada.ID, models.Category{Name: "Food"})
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	_, err = service.CreateCategory(models.DB, ada.ID, models.Category{Name: " Food "})
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique, "names are trimmed before the check")

	_, err = service.CreateCategory(models.DB, ada.ID, models.Category{Name: "food"})
	suite.Assert().Nil(err, "names are case sensitive")
}

func (suite *TestSuiteStandard) TestCategoriesOrderedByName() {
	user := suite.createTestUser("ada")
	suite.createTestCategory(user.ID, "Travel")
	suite.createTestCategory(user.ID, "Food")
	deleted := suite.createTestCategory(user.ID, "Bills")
	suite.createTestCategory(suite.createTestUser("grace").ID, "Cinema")

	suite.Require().Nil(service.DeleteCategory(models.DB, user.ID, deleted.ID))

	categories, err := service.Categories(models.DB, user.ID)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 2)
	suite.Assert().Equal("Food", categories[0].Name)
	suite.Assert().Equal("Travel", categories[1].Name)
}

func (suite *TestSuiteStandard) TestCategoryOwnership() {
	ada := suite.createTestUser("ada")
	grace := suite.createTestUser("grace")
	category := suite.createTestCategory(ada.ID, "Food")

	_, err := service.Category(models.DB, grace.ID, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	_, err = service.UpdateCategory(models.DB, grace.ID, category.ID, service.CategoryChanges{Name: ptr("Mine")})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	err = service.DeleteCategory(models.DB, grace.ID, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	user := suite.createTestUser("ada")
	category := suite.createTestCategory(user.ID, "Food")
	suite.createTestCategory(user.ID, "Travel")

	updated, err := service.UpdateCategory(models.DB, user.ID, category.ID, service.CategoryChanges{
		Color: ptr("#FF5733"),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal("Food", updated.Name, "fields that are not set must not change")
	suite.Assert().Equal("#FF5733", updated.Color)
	suite.Assert().Equal(models.DefaultCategoryIcon, updated.Icon)

	// Keeping the own name is not a conflict
	_, err = service.UpdateCategory(models.DB, user.ID, category.ID, service.CategoryChanges{Name: ptr("Food")})
	suite.Assert().Nil(err)

	_, err = service.UpdateCategory(models.DB, user.ID, category.ID, service.CategoryChanges{Name: ptr("Travel")})
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	stored, err := service.Category(models.DB, user.ID, category.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Food", stored.Name, "a failed update must not be persisted")
}

func (suite *TestSuiteStandard) TestDeleteCategoryWithExpenses() {
	user := suite.createTestUser("ada")
	category := suite.createTestCategory(user.ID, "Food")
	expense := suite.createTestExpense(user.ID, category.ID, "12.50", types.NewDate(2025, time.January, 15))

	err := service.DeleteCategory(models.DB, user.ID, category.ID)
	suite.Assert().ErrorIs(err, service.ErrCategoryHasExpenses)

	suite.Require().Nil(service.DeleteExpense(models.DB, user.ID, expense.ID))
	suite.Require().Nil(service.DeleteCategory(models.DB, user.ID, category.ID))

	_, err = service.Category(models.DB, user.ID, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// The row is kept
	var stored models.Category
	suite.Require().Nil(models.DB.First(&stored, category.ID).Error)
	suite.Assert().False(stored.IsActive)

	// The name can be reused
	suite.createTestCategory(user.ID, "Food")
}
