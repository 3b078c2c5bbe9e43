package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/farmchainx/chatbot-api/internal/ai"
	"github.com/farmchainx/chatbot-api/internal/repository"
)

// IntentType is the classified category of a question.
type IntentType int

const (
	// IntentOpenDomain routes the question to the language model.
	IntentOpenDomain IntentType = iota
	// IntentPriceQuery asks for the price of a known vegetable.
	IntentPriceQuery
	// IntentSalesQuery asks for the total recorded sales.
	IntentSalesQuery
)

// Intent is the classification result for a single question. Vegetable is
// the canonical stored name and is only set for price queries.
type Intent struct {
	Type      IntentType
	Vegetable string
}

// domainKeywords gate the structured-data paths. Matching is by substring
// containment in the lower-cased question, so "prices" matches "price".
var domainKeywords = []string{"price", "cost", "rate", "sales", "earning", "sell"}

// wordPattern extracts alphabetic word tokens for vegetable matching.
var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

const (
	priceAnswerTemplate = "🥦 The current price of %s is ₹%s per kg."
	salesAnswerTemplate = "💰 Total sales so far: ₹%s."
	noSalesDataAnswer   = "📉 Hmm, there's no sales data recorded yet."
)

// IntentRouter classifies questions and dispatches them to the market data
// or the language model.
type IntentRouter struct {
	Repo    repository.MarketRepo
	Chat    ai.ChatProvider
	Persona string
}

// NewIntentRouter creates a new IntentRouter.
func NewIntentRouter(repo repository.MarketRepo, chat ai.ChatProvider, persona string) *IntentRouter {
	return &IntentRouter{
		Repo:    repo,
		Chat:    chat,
		Persona: persona,
	}
}

// Classify decides which category a question falls into. Tokens are scanned
// in question order and the first one that resolves to a known vegetable
// wins; a question with no vegetable but a "sales" mention is a sales query.
func (r *IntentRouter) Classify(question string) (Intent, error) {
	q := strings.ToLower(strings.TrimSpace(question))

	if !containsDomainKeyword(q) {
		return Intent{Type: IntentOpenDomain}, nil
	}

	for _, token := range wordPattern.FindAllString(q, -1) {
		canonical, found, err := r.Repo.ResolveVegetableName(token)
		if err != nil {
			return Intent{}, fmt.Errorf("resolve vegetable name: %w", err)
		}
		if found {
			return Intent{Type: IntentPriceQuery, Vegetable: canonical}, nil
		}
	}

	if strings.Contains(q, "sales") {
		return Intent{Type: IntentSalesQuery}, nil
	}

	return Intent{Type: IntentOpenDomain}, nil
}

// Route classifies the question and produces the answer text. A resolved
// vegetable with no price on record falls back to the language model; a
// missing sales total does not, it yields the fixed no-data message.
func (r *IntentRouter) Route(ctx context.Context, question string) (string, error) {
	intent, err := r.Classify(question)
	if err != nil {
		return "", err
	}

	switch intent.Type {
	case IntentPriceQuery:
		price, found, err := r.Repo.GetVegetablePrice(intent.Vegetable)
		if err != nil {
			return "", fmt.Errorf("get vegetable price: %w", err)
		}
		if !found {
			return r.askAssistant(ctx, question)
		}
		return fmt.Sprintf(priceAnswerTemplate, intent.Vegetable, formatAmount(price)), nil

	case IntentSalesQuery:
		total, err := r.Repo.TotalSales()
		if err != nil {
			return "", fmt.Errorf("total sales: %w", err)
		}
		if total <= 0 {
			return noSalesDataAnswer, nil
		}
		return fmt.Sprintf(salesAnswerTemplate, formatAmount(total)), nil

	default:
		return r.askAssistant(ctx, question)
	}
}

// askAssistant sends the question, with the fixed persona, to the language
// model and returns its completion verbatim.
func (r *IntentRouter) askAssistant(ctx context.Context, question string) (string, error) {
	return r.Chat.Complete(ctx, r.Persona, question)
}

func containsDomainKeyword(q string) bool {
	for _, keyword := range domainKeywords {
		if strings.Contains(q, keyword) {
			return true
		}
	}
	return false
}

// formatAmount renders an amount without trailing zeros, so 40.0 prints as
// "40" and 42.5 as "42.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
