package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/farmchainx/chatbot-api/internal/logger"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// WhisperProvider implements SpeechProvider using Groq's hosted Whisper.
type WhisperProvider struct {
	client *openai.Client
	model  string
}

// NewWhisperProvider creates a new Whisper speech-to-text provider against
// an OpenAI-compatible endpoint.
func NewWhisperProvider(apiKey, baseURL string) *WhisperProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &WhisperProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  "whisper-large-v3-turbo",
	}
}

// TranscribeAudio transcribes audio data to text using Whisper.
func (p *WhisperProvider) TranscribeAudio(ctx context.Context, audioData []byte, filename string) (string, error) {
	if len(audioData) == 0 {
		return "", errors.New("audio data is empty")
	}

	const maxRetries = 3
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:    p.model,
			Reader:   bytes.NewReader(audioData),
			FilePath: filename,
		})
		if err == nil {
			if resp.Text == "" {
				return "", errors.New("Whisper returned empty transcription")
			}
			return resp.Text, nil
		}

		lastErr = err
		shouldRetry, waitTime := classifyOpenAIError(err)
		if !shouldRetry {
			return "", fmt.Errorf("Whisper API error: %w", err)
		}

		logger.Get().Warn("Whisper API error, retrying",
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

	return "", fmt.Errorf("Whisper API: exhausted %d retries: %w", maxRetries, lastErr)
}
