package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/farmchainx/chatbot-api/internal/logger"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// GroqProvider implements ChatProvider against Groq's OpenAI-compatible
// chat completion endpoint.
type GroqProvider struct {
	client *openai.Client
	model  string
}

// NewGroqProvider creates a chat provider backed by Groq's hosted
// llama-3.3-70b-versatile model.
func NewGroqProvider(apiKey, baseURL string) *GroqProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &GroqProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  "llama-3.3-70b-versatile",
	}
}

// Complete sends the persona and question as a single-turn chat completion
// and returns the top choice verbatim.
func (p *GroqProvider) Complete(ctx context.Context, systemPrompt string, question string) (string, error) {
	const maxRetries = 3
	var lastErr error

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	}

	for i := 0; i < maxRetries; i++ {
		resp, err := p.client.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
				return "", errors.New("chat API returned an empty completion")
			}
			return resp.Choices[0].Message.Content, nil
		}

		lastErr = err
		shouldRetry, waitTime := classifyOpenAIError(err)
		if !shouldRetry {
			return "", fmt.Errorf("chat API error: %w", err)
		}

		logger.Get().Warn("chat API error, retrying",
			zap.Error(err),
			zap.Int("attempt", i+1),
		)

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(waitTime * time.Duration(i+1)):
			}
		}
	}

	return "", fmt.Errorf("chat API: exhausted %d retries: %w", maxRetries, lastErr)
}

// classifyOpenAIError determines whether an OpenAI-compatible API error is
// retryable.
func classifyOpenAIError(err error) (shouldRetry bool, waitTime time.Duration) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 429:
			return true, 2 * time.Second
		case 500, 502, 503:
			return true, 2 * time.Second
		default:
			return false, 0
		}
	}
	return false, 0
}
