package repository

import (
	"errors"

	"github.com/farmchainx/chatbot-api/internal/logger"
	"github.com/farmchainx/chatbot-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MarketRepository is a repository for interacting with the vegetable price
// list and sales records.
type MarketRepository struct {
	DB *gorm.DB
}

// NewMarketRepository creates a new MarketRepository.
func NewMarketRepository(db *gorm.DB) *MarketRepository {
	return &MarketRepository{DB: db}
}

// ResolveVegetableName matches a word against the vegetable list with
// case-insensitive equality. Substring and fuzzy matches are deliberately
// not attempted.
func (r *MarketRepository) ResolveVegetableName(name string) (string, bool, error) {
	var vegetable models.Vegetable
	err := r.DB.Where("LOWER(name) = LOWER(?)", name).First(&vegetable).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		logger.Get().Error("failed to resolve vegetable name", zap.String("name", name), zap.Error(err))
		return "", false, err
	}
	return vegetable.Name, true, nil
}

// GetVegetablePrice returns the recorded price for a canonical vegetable name.
func (r *MarketRepository) GetVegetablePrice(name string) (float64, bool, error) {
	var vegetable models.Vegetable
	err := r.DB.Where("name = ?", name).First(&vegetable).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		logger.Get().Error("failed to get vegetable price", zap.String("name", name), zap.Error(err))
		return 0, false, err
	}
	return vegetable.PricePerKg, true, nil
}

// TotalSales sums all recorded sale amounts. An empty table yields zero.
func (r *MarketRepository) TotalSales() (float64, error) {
	var total float64
	err := r.DB.Model(&models.SalesRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		logger.Get().Error("failed to sum sales records", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// ListVegetables returns the full vegetable price list ordered by name.
func (r *MarketRepository) ListVegetables() ([]models.Vegetable, error) {
	var vegetables []models.Vegetable
	if err := r.DB.Order("name asc").Find(&vegetables).Error; err != nil {
		logger.Get().Error("failed to list vegetables", zap.Error(err))
		return nil, err
	}
	return vegetables, nil
}

// CreateSalesRecord records a completed sale.
func (r *MarketRepository) CreateSalesRecord(record *models.SalesRecord) error {
	if err := r.DB.Create(record).Error; err != nil {
		logger.Get().Error("failed to create sales record", zap.Float64("amount", record.Amount), zap.Error(err))
		return err
	}
	return nil
}
