package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	goaway "github.com/TwiN/go-away"
	"github.com/farmchainx/chatbot-api/internal/ai"
	"github.com/farmchainx/chatbot-api/internal/config"
)

// Answer is the combined response for a single question: the answer text
// and the same text rendered as speech, embeddable directly in JSON.
type Answer struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// AssistantService orchestrates the full question pipeline: routing,
// answer composition, and speech synthesis.
type AssistantService struct {
	Cfg    *config.Config
	Router *IntentRouter
	Synth  ai.SynthesisProvider
}

// NewAssistantService creates a new AssistantService.
func NewAssistantService(cfg *config.Config, router *IntentRouter, synth ai.SynthesisProvider) *AssistantService {
	return &AssistantService{
		Cfg:    cfg,
		Router: router,
		Synth:  synth,
	}
}

// Answer produces exactly one Answer per question. Profane questions get a
// fixed polite refusal instead of a language-model call; the refusal is
// synthesized like any other answer.
func (s *AssistantService) Answer(ctx context.Context, question string) (*Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuestion
	}

	var text string
	if goaway.IsProfane(question) {
		text = strings.TrimSpace(s.Cfg.Prompts.Moderation.Declined)
	} else {
		routed, err := s.Router.Route(ctx, question)
		if err != nil {
			return nil, err
		}
		text = routed
	}

	audio, err := s.Synth.SynthesizeSpeech(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}

	return &Answer{
		Text:  text,
		Voice: "data:audio/mp3;base64," + base64.StdEncoding.EncodeToString(audio),
	}, nil
}
