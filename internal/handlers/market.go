package handlers

import (
	"errors"
	"net/http"

	"github.com/farmchainx/chatbot-api/internal/logger"
	"github.com/farmchainx/chatbot-api/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MarketHandler handles marketplace data requests.
type MarketHandler struct {
	Service *service.MarketService
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketService *service.MarketService) *MarketHandler {
	return &MarketHandler{Service: marketService}
}

// ListVegetables handles GET /v1/vegetables
func (h *MarketHandler) ListVegetables(c *gin.Context) {
	vegetables, err := h.Service.ListVegetables()
	if err != nil {
		logger.Get().Error("failed to list vegetables", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vegetables"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vegetables": vegetables})
}

// GetTotalSales handles GET /v1/sales/total
func (h *MarketHandler) GetTotalSales(c *gin.Context) {
	total, err := h.Service.TotalSales()
	if err != nil {
		logger.Get().Error("failed to get total sales", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get total sales"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}

// recordSaleRequest is the inbound body for POST /v1/sales.
type recordSaleRequest struct {
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
}

// RecordSale handles POST /v1/sales
func (h *MarketHandler) RecordSale(c *gin.Context) {
	var req recordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	record, err := h.Service.RecordSale(req.Amount, req.Note)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSaleAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Sale amount must be positive"})
			return
		}
		logger.Get().Error("failed to record sale", zap.Float64("amount", req.Amount), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record sale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale": record})
}
