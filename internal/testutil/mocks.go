package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/farmchainx/chatbot-api/internal/ai"
	"github.com/farmchainx/chatbot-api/internal/models"
	"github.com/farmchainx/chatbot-api/internal/repository"
)

// --- MockMarketRepo ---

// MockMarketRepo is an in-memory implementation of repository.MarketRepo.
// Vegetables maps canonical names to prices; entries in PricelessVegetables
// resolve by name but have no price on record. ForcedErr, when set, is
// returned by every method.
type MockMarketRepo struct {
	mu                  sync.Mutex
	Vegetables          map[string]float64
	PricelessVegetables map[string]bool
	Sales               []models.SalesRecord
	ForcedErr           error
}

// NewMockMarketRepo creates an empty MockMarketRepo.
func NewMockMarketRepo() *MockMarketRepo {
	return &MockMarketRepo{
		Vegetables:          make(map[string]float64),
		PricelessVegetables: make(map[string]bool),
	}
}

func (m *MockMarketRepo) ResolveVegetableName(name string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedErr != nil {
		return "", false, m.ForcedErr
	}
	for canonical := range m.Vegetables {
		if strings.EqualFold(canonical, name) {
			return canonical, true, nil
		}
	}
	for canonical := range m.PricelessVegetables {
		if strings.EqualFold(canonical, name) {
			return canonical, true, nil
		}
	}
	return "", false, nil
}

func (m *MockMarketRepo) GetVegetablePrice(name string) (float64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedErr != nil {
		return 0, false, m.ForcedErr
	}
	price, ok := m.Vegetables[name]
	return price, ok, nil
}

func (m *MockMarketRepo) TotalSales() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedErr != nil {
		return 0, m.ForcedErr
	}
	var total float64
	for _, rec := range m.Sales {
		total += rec.Amount
	}
	return total, nil
}

func (m *MockMarketRepo) ListVegetables() ([]models.Vegetable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedErr != nil {
		return nil, m.ForcedErr
	}
	vegetables := make([]models.Vegetable, 0, len(m.Vegetables))
	for name, price := range m.Vegetables {
		vegetables = append(vegetables, models.Vegetable{Name: name, PricePerKg: price})
	}
	return vegetables, nil
}

func (m *MockMarketRepo) CreateSalesRecord(record *models.SalesRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedErr != nil {
		return m.ForcedErr
	}
	record.ID = uint(len(m.Sales) + 1)
	m.Sales = append(m.Sales, *record)
	return nil
}

// --- MockChatProvider ---

// MockChatProvider is a mock implementation of ai.ChatProvider.
type MockChatProvider struct {
	CompleteFunc func(ctx context.Context, systemPrompt string, question string) (string, error)
}

func (m *MockChatProvider) Complete(ctx context.Context, systemPrompt string, question string) (string, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, systemPrompt, question)
	}
	return "", fmt.Errorf("Complete not configured")
}

// --- MockSpeechProvider ---

// MockSpeechProvider is a mock implementation of ai.SpeechProvider.
type MockSpeechProvider struct {
	TranscribeAudioFunc func(ctx context.Context, audioData []byte, filename string) (string, error)
}

func (m *MockSpeechProvider) TranscribeAudio(ctx context.Context, audioData []byte, filename string) (string, error) {
	if m.TranscribeAudioFunc != nil {
		return m.TranscribeAudioFunc(ctx, audioData, filename)
	}
	return "", fmt.Errorf("TranscribeAudio not configured")
}

// --- MockSynthesisProvider ---

// MockSynthesisProvider is a mock implementation of ai.SynthesisProvider.
type MockSynthesisProvider struct {
	SynthesizeSpeechFunc func(ctx context.Context, text string) ([]byte, error)
}

func (m *MockSynthesisProvider) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	if m.SynthesizeSpeechFunc != nil {
		return m.SynthesizeSpeechFunc(ctx, text)
	}
	return nil, fmt.Errorf("SynthesizeSpeech not configured")
}

// Compile-time interface checks.
var _ repository.MarketRepo = (*MockMarketRepo)(nil)
var _ ai.ChatProvider = (*MockChatProvider)(nil)
var _ ai.SpeechProvider = (*MockSpeechProvider)(nil)
var _ ai.SynthesisProvider = (*MockSynthesisProvider)(nil)
