package service

import (
	"context"
	"errors"
	"testing"

	"github.com/farmchainx/chatbot-api/internal/testutil"
)

func TestTranscribe_AllowedExtensions(t *testing.T) {
	speech := &testutil.MockSpeechProvider{
		TranscribeAudioFunc: func(ctx context.Context, audioData []byte, filename string) (string, error) {
			return "what is the price of tomato", nil
		},
	}
	svc := NewTranscriptionService(testutil.TestConfig(), speech)

	for _, filename := range []string{"q.webm", "q.wav", "q.mp3", "q.m4a", "Q.WAV"} {
		transcript, err := svc.Transcribe(context.Background(), []byte("audio"), filename)
		if err != nil {
			t.Errorf("Transcribe(%q) error: %v", filename, err)
			continue
		}
		if transcript != "what is the price of tomato" {
			t.Errorf("Transcribe(%q) = %q", filename, transcript)
		}
	}
}

func TestTranscribe_RejectsWithoutCallingProvider(t *testing.T) {
	speech := &testutil.MockSpeechProvider{
		TranscribeAudioFunc: func(ctx context.Context, audioData []byte, filename string) (string, error) {
			t.Errorf("provider should not be called for %q", filename)
			return "", nil
		},
	}
	svc := NewTranscriptionService(testutil.TestConfig(), speech)

	for _, filename := range []string{"q.ogg", "q.flac", "q.txt", "noextension"} {
		_, err := svc.Transcribe(context.Background(), []byte("audio"), filename)
		if !errors.Is(err, ErrUnsupportedAudioFormat) {
			t.Errorf("Transcribe(%q) error = %v, want ErrUnsupportedAudioFormat", filename, err)
		}
	}
}

func TestTranscribe_ProviderFailurePropagates(t *testing.T) {
	speech := &testutil.MockSpeechProvider{
		TranscribeAudioFunc: func(ctx context.Context, audioData []byte, filename string) (string, error) {
			return "", errors.New("network error")
		},
	}
	svc := NewTranscriptionService(testutil.TestConfig(), speech)

	if _, err := svc.Transcribe(context.Background(), []byte("audio"), "q.wav"); err == nil {
		t.Error("expected provider failure to propagate")
	}
}
