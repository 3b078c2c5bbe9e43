package ai

import "context"

// ChatProvider answers open-domain farming questions with a single text
// completion. The system prompt carries the fixed assistant persona.
type ChatProvider interface {
	Complete(ctx context.Context, systemPrompt string, question string) (string, error)
}

// SpeechProvider handles speech-to-text. The filename hints the container
// format to the transcription API.
type SpeechProvider interface {
	TranscribeAudio(ctx context.Context, audioData []byte, filename string) (string, error)
}

// SynthesisProvider handles text-to-speech and returns encoded audio bytes.
type SynthesisProvider interface {
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}
