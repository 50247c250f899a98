package service

import (
	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/models"
	"gorm.io/gorm"
)

// Credentials of the demo user.
const (
	DemoEmail    = "demo@example.com"
	DemoUsername = "demo"
	DemoPassword = "Demo1234"
)

// DefaultCategories are created for the demo user.
var DefaultCategories = []models.Category{
	{Name: "Food & Dining", Icon: "🍽️", Color: "#ff6b6b"},
	{Name: "Transportation", Icon: "🚗", Color: "#4ecdc4"},
	{Name: "Entertainment", Icon: "🎬", Color: "#45b7d1"},
	{Name: "Shopping", Icon: "🛍️", Color: "#f9ca24"},
	{Name: "Bills & Utilities", Icon: "💡", Color: "#f0932b"},
	{Name: "Health & Medical", Icon: "🏥", Color: "#eb4d4b"},
	{Name: "Education", Icon: "📚", Color: "#6c5ce7"},
	{Name: "Travel", Icon: "✈️", Color: "#a29bfe"},
}

// SeedDemo creates the demo user and its default categories.
//
// It does nothing if a user with the demo email already exists and
// created reports whether the user was created.
func SeedDemo(db *gorm.DB) (user models.User, created bool, err error) {
	var existing []models.User
	err = db.Where("email = ?", DemoEmail).Limit(1).Find(&existing).Error
	if err != nil {
		return models.User{}, false, err
	}

	if len(existing) > 0 {
		log.Debug().Uint("user", existing[0].ID).Msg("demo user exists, not seeding")
		return existing[0], false, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		user, err = Register(tx, Registration{
			Email:     DemoEmail,
			Username:  DemoUsername,
			Password:  DemoPassword,
			FirstName: "Demo",
			LastName:  "User",
		})
		if err != nil {
			return err
		}

		for _, category := range DefaultCategories {
			if _, err := CreateCategory(tx, user.ID, category); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return models.User{}, false, err
	}

	log.Info().Uint("user", user.ID).Int("categories", len(DefaultCategories)).Msg("demo data seeded")
	return user, true, nil
}
