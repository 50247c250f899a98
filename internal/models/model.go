package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Monetary values are JSON numbers on the wire
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultModel is the base model for all models.
type DefaultModel struct {
	ID uint `json:"id" gorm:"primaryKey" example:"42"` // ID of the resource
	Timestamps
}

// Timestamps contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" example:"2025-01-15T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updated_at" example:"2025-01-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)

	return nil
}
