package testutil

import (
	"context"

	"github.com/farmchainx/chatbot-api/internal/config"
	"github.com/farmchainx/chatbot-api/internal/models"
)

// TestConfig creates a config with in-memory prompts, bypassing the YAML
// file that production loads.
func TestConfig() *config.Config {
	return &config.Config{
		EnvVars: config.EnvVars{
			Port:         "8080",
			ChatProvider: "groq",
		},
		Prompts: &config.Prompts{
			Assistant: config.AssistantPrompts{
				Persona: "You are FarmChainX Chatbot, a friendly farming assistant 😊.",
			},
			Moderation: config.ModerationPrompts{
				Declined: "🙏 Let's keep it friendly! Ask me anything about farming.",
			},
		},
	}
}

// TestMarketRepo creates a MockMarketRepo seeded with a small price list
// and no sales records.
func TestMarketRepo() *MockMarketRepo {
	repo := NewMockMarketRepo()
	repo.Vegetables["tomato"] = 40
	repo.Vegetables["potato"] = 25
	repo.Vegetables["onion"] = 35
	return repo
}

// TestSalesRecords returns sale rows summing to 1500.
func TestSalesRecords() []models.SalesRecord {
	return []models.SalesRecord{
		{Amount: 500, Note: "tomato crate"},
		{Amount: 750, Note: "onion sacks"},
		{Amount: 250, Note: "misc"},
	}
}

// EchoChatProvider returns a chat mock that answers every question with the
// given completion.
func EchoChatProvider(completion string) *MockChatProvider {
	return &MockChatProvider{
		CompleteFunc: func(ctx context.Context, systemPrompt string, question string) (string, error) {
			return completion, nil
		},
	}
}

// StaticSynthProvider returns a synthesis mock that renders any text as the
// given audio bytes.
func StaticSynthProvider(audio []byte) *MockSynthesisProvider {
	return &MockSynthesisProvider{
		SynthesizeSpeechFunc: func(ctx context.Context, text string) ([]byte, error) {
			return audio, nil
		},
	}
}
