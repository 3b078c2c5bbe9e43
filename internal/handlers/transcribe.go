package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/farmchainx/chatbot-api/internal/logger"
	"github.com/farmchainx/chatbot-api/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TranscribeHandler handles audio transcription requests.
type TranscribeHandler struct {
	Service *service.TranscriptionService
}

// NewTranscribeHandler creates a new TranscribeHandler.
func NewTranscribeHandler(transcriptionService *service.TranscriptionService) *TranscribeHandler {
	return &TranscribeHandler{Service: transcriptionService}
}

// Transcribe handles POST /v1/transcribe
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file is required"})
		return
	}
	defer file.Close()

	// Validate file size (max 25MB, the transcription API's own cap)
	const maxSize = 25 << 20
	if header.Size > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio exceeds maximum size of 25MB"})
		return
	}

	audioBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audio"})
		return
	}

	transcript, err := h.Service.Transcribe(c.Request.Context(), audioBytes, header.Filename)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedAudioFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported audio format. Allowed: webm, wav, mp3, m4a"})
			return
		}
		logger.Get().Error("failed to transcribe audio", zap.String("filename", header.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transcribe audio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcript": transcript})
}
