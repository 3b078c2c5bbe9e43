package repository

import "github.com/farmchainx/chatbot-api/internal/models"

// MarketRepo is the read-mostly interface over vegetable prices and sales
// records that the chatbot consults.
type MarketRepo interface {
	// ResolveVegetableName matches a word against the vegetable list using
	// case-insensitive equality and returns the canonical stored name.
	ResolveVegetableName(name string) (string, bool, error)
	// GetVegetablePrice returns the recorded price for a canonical name.
	GetVegetablePrice(name string) (float64, bool, error)
	// TotalSales sums all recorded sale amounts. A zero total and an empty
	// table are indistinguishable to callers.
	TotalSales() (float64, error)
	ListVegetables() ([]models.Vegetable, error)
	CreateSalesRecord(record *models.SalesRecord) error
}
