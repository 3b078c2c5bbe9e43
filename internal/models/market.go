package models

import "gorm.io/gorm"

// Vegetable is a crop listed on the marketplace with its going rate.
// Names are unique; lookups are case-insensitive against this column.
type Vegetable struct {
	gorm.Model
	Name       string  `gorm:"uniqueIndex;not null" json:"name"`
	PricePerKg float64 `gorm:"not null" json:"price_per_kg"`
}

// SalesRecord is a single completed sale. Only the sum of Amount is ever
// consumed by the chatbot.
type SalesRecord struct {
	gorm.Model
	Amount float64 `gorm:"not null" json:"amount"`
	Note   string  `json:"note,omitempty"`
}
