package service

import (
	"github.com/farmchainx/chatbot-api/internal/config"
	"github.com/farmchainx/chatbot-api/internal/models"
	"github.com/farmchainx/chatbot-api/internal/repository"
)

// MarketService exposes the marketplace dataset the chatbot answers from.
type MarketService struct {
	Cfg  *config.Config
	Repo repository.MarketRepo
}

// NewMarketService creates a new MarketService.
func NewMarketService(cfg *config.Config, repo repository.MarketRepo) *MarketService {
	return &MarketService{
		Cfg:  cfg,
		Repo: repo,
	}
}

// ListVegetables returns the current vegetable price list.
func (s *MarketService) ListVegetables() ([]models.Vegetable, error) {
	return s.Repo.ListVegetables()
}

// TotalSales returns the sum of all recorded sale amounts.
func (s *MarketService) TotalSales() (float64, error) {
	return s.Repo.TotalSales()
}

// RecordSale stores a completed sale so it counts toward the total.
func (s *MarketService) RecordSale(amount float64, note string) (*models.SalesRecord, error) {
	if amount <= 0 {
		return nil, ErrInvalidSaleAmount
	}

	record := &models.SalesRecord{Amount: amount, Note: note}
	if err := s.Repo.CreateSalesRecord(record); err != nil {
		return nil, err
	}
	return record, nil
}
