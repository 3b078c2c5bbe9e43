package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/farmchainx/chatbot-api/internal/logger"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// TTSProvider implements SynthesisProvider using the OpenAI speech API.
// Output is mp3 so the result can be embedded as a data URI.
type TTSProvider struct {
	client *openai.Client
}

// NewTTSProvider creates a new text-to-speech provider.
func NewTTSProvider(apiKey string) *TTSProvider {
	return &TTSProvider{client: openai.NewClient(apiKey)}
}

// SynthesizeSpeech converts text to mp3-encoded audio bytes.
func (p *TTSProvider) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("synthesis text is empty")
	}

	const maxRetries = 3
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		resp, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
			Model:          openai.TTSModel1,
			Input:          text,
			Voice:          openai.VoiceAlloy,
			ResponseFormat: openai.SpeechResponseFormatMp3,
		})
		if err == nil {
			defer resp.Close()
			audio, readErr := io.ReadAll(resp)
			if readErr != nil {
				return nil, fmt.Errorf("failed to read synthesized audio: %w", readErr)
			}
			if len(audio) == 0 {
				return nil, errors.New("speech API returned empty audio")
			}
			return audio, nil
		}

		lastErr = err
		shouldRetry, waitTime := classifyOpenAIError(err)
		if !shouldRetry {
			return nil, fmt.Errorf("speech API error: %w", err)
		}

		logger.Get().Warn("speech API error, retrying",
			zap.Error(err),
			zap.Int("attempt", i+1),
		)

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(waitTime * time.Duration(i+1)):
			}
		}
	}

	return nil, fmt.Errorf("speech API: exhausted %d retries: %w", maxRetries, lastErr)
}
