package db

import (
	"github.com/farmchainx/chatbot-api/internal/logger"
	"github.com/farmchainx/chatbot-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedMarketData inserts a starter vegetable price list when the table is
// empty so a fresh deployment can answer price questions immediately.
// Existing rows are never touched.
func SeedMarketData(database *gorm.DB) error {
	var count int64
	if err := database.Model(&models.Vegetable{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	vegetables := []models.Vegetable{
		{Name: "tomato", PricePerKg: 40},
		{Name: "potato", PricePerKg: 25},
		{Name: "onion", PricePerKg: 35},
		{Name: "carrot", PricePerKg: 50},
		{Name: "cabbage", PricePerKg: 30},
		{Name: "spinach", PricePerKg: 20},
	}
	if err := database.Create(&vegetables).Error; err != nil {
		return err
	}

	logger.Get().Info("seeded vegetable price list", zap.Int("count", len(vegetables)))
	return nil
}
