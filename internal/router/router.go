package router

import (
	"strings"

	"github.com/farmchainx/chatbot-api/internal/ai"
	"github.com/farmchainx/chatbot-api/internal/config"
	"github.com/farmchainx/chatbot-api/internal/handlers"
	"github.com/farmchainx/chatbot-api/internal/logger"
	"github.com/farmchainx/chatbot-api/internal/repository"
	"github.com/farmchainx/chatbot-api/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config, database *gorm.DB) *gin.Engine {
	// Create default Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())

	// Ping route for testing
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Market data setup
	marketRepo := repository.NewMarketRepository(database)
	marketService := service.NewMarketService(cfg, marketRepo)
	marketHandler := handlers.NewMarketHandler(marketService)

	// AI provider setup
	chatProvider := newChatProvider(cfg)
	speechProvider := ai.NewWhisperProvider(cfg.EnvVars.GroqAPIKey, cfg.EnvVars.GroqBaseURL)
	synthProvider := ai.NewTTSProvider(cfg.EnvVars.OpenAIAPIKey)

	// Chatbot setup
	persona := strings.TrimSpace(cfg.Prompts.Assistant.Persona)
	intentRouter := service.NewIntentRouter(marketRepo, chatProvider, persona)
	assistantService := service.NewAssistantService(cfg, intentRouter, synthProvider)
	chatHandler := handlers.NewChatHandler(assistantService)

	// Transcription setup
	transcriptionService := service.NewTranscriptionService(cfg, speechProvider)
	transcribeHandler := handlers.NewTranscribeHandler(transcriptionService)

	api := r.Group("/v1")
	{
		// Answer a question with text and synthesized voice
		api.POST("/chat", chatHandler.Chat)
		// Transcribe an uploaded audio file to text
		api.POST("/transcribe", transcribeHandler.Transcribe)

		// Marketplace data routes

		// List the vegetable price list
		api.GET("/vegetables", marketHandler.ListVegetables)
		// Get the total of recorded sales
		api.GET("/sales/total", marketHandler.GetTotalSales)
		// Record a completed sale
		api.POST("/sales", marketHandler.RecordSale)
	}

	return r
}

// newChatProvider picks the chat backend from config. Groq is the default;
// Claude is opted into with CHAT_PROVIDER=anthropic.
func newChatProvider(cfg *config.Config) ai.ChatProvider {
	if cfg.EnvVars.ChatProvider == "anthropic" && cfg.EnvVars.AnthropicAPIKey != "" {
		return ai.NewAnthropicProvider(cfg.EnvVars.AnthropicAPIKey)
	}
	return ai.NewGroqProvider(cfg.EnvVars.GroqAPIKey, cfg.EnvVars.GroqBaseURL)
}
