package chatbot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini answers chat messages through the Google Gemini API. The catalog
// categories are baked into the system prompt at construction.
type Gemini struct {
	apiKey     string
	categories []string
}

// NewGemini builds a Gemini responder. An empty API key is allowed; Respond
// will fail fast and the caller falls back to the local responder.
func NewGemini(apiKey string, categories []string) *Gemini {
	return &Gemini{apiKey: apiKey, categories: categories}
}

// Respond calls the Gemini API with the inventory system prompt prepended to
// the user message.
func (g *Gemini) Respond(ctx context.Context, message string) (Reply, error) {
	if g.apiKey == "" {
		return Reply{}, errors.New("gemini api key not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return Reply{}, fmt.Errorf("creating gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(500)

	resp, err := model.GenerateContent(ctx, genai.Text(g.systemPrompt()+"\n\nUser: "+message))
	if err != nil {
		return Reply{}, fmt.Errorf("generating content: %w", err)
	}

	answer := extractText(resp)
	if answer == "" {
		return Reply{}, errors.New("empty response from gemini")
	}

	return Reply{Text: answer, Source: SourceGemini}, nil
}

func (g *Gemini) systemPrompt() string {
	categories := "General"
	if len(g.categories) > 0 {
		categories = strings.Join(g.categories, ", ")
	}
	return fmt.Sprintf(`You are an expert AI assistant for the Smart Inventory Management System.
You help with:
- Inventory management and stock optimization
- Seasonal trends and demand forecasting
- Product pricing strategies
- Category insights: %s
- Best practices for retail management

Available product categories: %s

Provide concise, actionable advice. Be professional but friendly. Keep responses to 2-3 sentences unless asked for more details.`, categories, categories)
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
