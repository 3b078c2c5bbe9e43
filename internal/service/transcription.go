package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/farmchainx/chatbot-api/internal/ai"
	"github.com/farmchainx/chatbot-api/internal/config"
)

// allowedAudioExtensions is the set of accepted audio container extensions.
var allowedAudioExtensions = map[string]bool{
	".webm": true,
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
}

// TranscriptionService converts uploaded audio into a transcript. It is a
// standalone ingress: callers feed the transcript back as a chat question.
type TranscriptionService struct {
	Cfg    *config.Config
	Speech ai.SpeechProvider
}

// NewTranscriptionService creates a new TranscriptionService.
func NewTranscriptionService(cfg *config.Config, speech ai.SpeechProvider) *TranscriptionService {
	return &TranscriptionService{
		Cfg:    cfg,
		Speech: speech,
	}
}

// Transcribe checks the file extension against the whitelist before any
// transcription call, then delegates to the speech provider.
func (s *TranscriptionService) Transcribe(ctx context.Context, audioData []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedAudioExtensions[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAudioFormat, ext)
	}

	return s.Speech.TranscribeAudio(ctx, audioData, filename)
}
