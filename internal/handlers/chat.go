package handlers

import (
	"errors"
	"net/http"

	"github.com/farmchainx/chatbot-api/internal/logger"
	"github.com/farmchainx/chatbot-api/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler handles question-answering requests.
type ChatHandler struct {
	Service *service.AssistantService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(assistantService *service.AssistantService) *ChatHandler {
	return &ChatHandler{Service: assistantService}
}

// chatRequest is the inbound body for POST /v1/chat.
type chatRequest struct {
	Question string `json:"question"`
}

// Chat handles POST /v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	answer, err := h.Service.Answer(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		logger.Get().Error("failed to answer question", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to answer question"})
		return
	}

	c.JSON(http.StatusOK, answer)
}
