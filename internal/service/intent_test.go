package service

import (
	"context"
	"errors"
	"testing"

	"github.com/farmchainx/chatbot-api/internal/testutil"
)

func newTestRouter(repo *testutil.MockMarketRepo, chat *testutil.MockChatProvider) *IntentRouter {
	if chat == nil {
		chat = &testutil.MockChatProvider{}
	}
	return NewIntentRouter(repo, chat, "You are FarmChainX Chatbot.")
}

func TestClassify_NoKeywordIsOpenDomain(t *testing.T) {
	router := newTestRouter(testutil.TestMarketRepo(), nil)

	questions := []string{
		"hello there",
		"how do I grow tomato seedlings",
		"what fertilizer works best for onions",
	}
	for _, q := range questions {
		intent, err := router.Classify(q)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", q, err)
		}
		if intent.Type != IntentOpenDomain {
			t.Errorf("Classify(%q).Type = %v, want IntentOpenDomain", q, intent.Type)
		}
	}
}

func TestClassify_PriceQuery_CaseInsensitive(t *testing.T) {
	router := newTestRouter(testutil.TestMarketRepo(), nil)

	for _, q := range []string{
		"what is the price of tomato",
		"what is the price of Tomato",
		"what is the PRICE of TOMATO",
	} {
		intent, err := router.Classify(q)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", q, err)
		}
		if intent.Type != IntentPriceQuery {
			t.Fatalf("Classify(%q).Type = %v, want IntentPriceQuery", q, intent.Type)
		}
		if intent.Vegetable != "tomato" {
			t.Errorf("Classify(%q).Vegetable = %q, want 'tomato'", q, intent.Vegetable)
		}
	}
}

func TestClassify_FirstVegetableTokenWins(t *testing.T) {
	router := newTestRouter(testutil.TestMarketRepo(), nil)

	intent, err := router.Classify("price of tomato and potato")
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if intent.Vegetable != "tomato" {
		t.Errorf("Vegetable = %q, want 'tomato'", intent.Vegetable)
	}

	intent, err = router.Classify("price of potato and tomato")
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if intent.Vegetable != "potato" {
		t.Errorf("Vegetable = %q, want 'potato'", intent.Vegetable)
	}
}

func TestClassify_SalesQuery(t *testing.T) {
	router := newTestRouter(testutil.TestMarketRepo(), nil)

	for _, q := range []string{
		"what are my total sales",
		"show me the sales so far",
	} {
		intent, err := router.Classify(q)
		if err != nil {
			t.Fatalf("Classify(%q) error: %v", q, err)
		}
		if intent.Type != IntentSalesQuery {
			t.Errorf("Classify(%q).Type = %v, want IntentSalesQuery", q, intent.Type)
		}
	}
}

func TestClassify_KeywordWithoutVegetableOrSales(t *testing.T) {
	router := newTestRouter(testutil.TestMarketRepo(), nil)

	intent, err := router.Classify("how can I sell faster at the market")
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if intent.Type != IntentOpenDomain {
		t.Errorf("Type = %v, want IntentOpenDomain", intent.Type)
	}
}

func TestRoute_PriceAnswerFormatting(t *testing.T) {
	repo := testutil.TestMarketRepo()
	router := newTestRouter(repo, nil)

	text, err := router.Route(context.Background(), "what is the price of tomato")
	if err != nil {
		t.Fatalf("Route error: %v", err)
	}
	want := "🥦 The current price of tomato is ₹40 per kg."
	if text != want {
		t.Errorf("Route = %q, want %q", text, want)
	}
}

func TestRoute_DecimalPriceKeepsFraction(t *testing.T) {
	repo := testutil.NewMockMarketRepo()
	repo.Vegetables["carrot"] = 42.5
	router := newTestRouter(repo, nil)

	text, err := router.Route(context.Background(), "carrot price please")
	if err != nil {
		t.Fatalf("Route error: %v", err)
	}
	want := "🥦 The current price of carrot is ₹42.5 per kg."
	if text != want {
		t.Errorf("Route = %q, want %q", text, want)
	}
}

func TestRoute_MissingPriceFallsBackToAssistant(t *testing.T) {
	repo := testutil.NewMockMarketRepo()
	repo.PricelessVegetables["pumpkin"] = true
	chat := testutil.EchoChatProvider("Pumpkins vary by season 🎃")
	router := newTestRouter(repo, chat)

	text, err := router.Route(context.Background(), "price of pumpkin")
	if err != nil {
		t.Fatalf("Route error: %v", err)
	}
	if text != "Pumpkins vary by season 🎃" {
		t.Errorf("Route = %q, want the assistant's completion", text)
	}
}

func TestRoute_SalesTotal(t *testing.T) {
	repo := testutil.TestMarketRepo()
	repo.Sales = testutil.TestSalesRecords()
	router := newTestRouter(repo, nil)

	text, err := router.Route(context.Background(), "what are my total sales")
	if err != nil {
		t.Fatalf("Route error: %v", err)
	}
	want := "💰 Total sales so far: ₹1500."
	if text != want {
		t.Errorf("Route = %q, want %q", text, want)
	}
}

func TestRoute_SalesWithNoRecordsNeverCallsAssistant(t *testing.T) {
	repo := testutil.TestMarketRepo()
	chat := &testutil.MockChatProvider{
		CompleteFunc: func(ctx context.Context, systemPrompt string, question string) (string, error) {
			t.Error("assistant should not be called for an empty sales table")
			return "", nil
		},
	}
	router := newTestRouter(repo, chat)

	text, err := router.Route(context.Background(), "total sales")
	if err != nil {
		t.Fatalf("Route error: %v", err)
	}
	want := "📉 Hmm, there's no sales data recorded yet."
	if text != want {
		t.Errorf("Route = %q, want %q", text, want)
	}
}

func TestRoute_OpenDomainReturnsCompletionVerbatim(t *testing.T) {
	completion := "🌱 Water your seedlings in the morning!"
	router := newTestRouter(testutil.TestMarketRepo(), testutil.EchoChatProvider(completion))

	text, err := router.Route(context.Background(), "when should I water seedlings")
	if err != nil {
		t.Fatalf("Route error: %v", err)
	}
	if text != completion {
		t.Errorf("Route = %q, want %q", text, completion)
	}
}

func TestRoute_RepoFailurePropagates(t *testing.T) {
	repo := testutil.TestMarketRepo()
	repo.ForcedErr = errors.New("connection refused")
	router := newTestRouter(repo, nil)

	if _, err := router.Route(context.Background(), "price of tomato"); err == nil {
		t.Error("expected repository failure to propagate")
	}
}
