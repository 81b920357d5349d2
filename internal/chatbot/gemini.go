package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"
	geminiTimeout  = 30 * time.Second
)

// GeminiResponder completes prompts against the Gemini API. Calls are
// single-attempt; any failure wraps ErrUpstreamUnavailable and is
// surfaced to the caller rather than falling back to the rule responder.
type GeminiResponder struct {
	apiKey string
	client *http.Client
}

// NewGeminiResponder creates a new Gemini responder
func NewGeminiResponder(apiKey string) *GeminiResponder {
	return &GeminiResponder{
		apiKey: apiKey,
		client: &http.Client{Timeout: geminiTimeout},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Respond sends the message and data snapshot as a single prompt and
// returns the completion verbatim.
func (g *GeminiResponder) Respond(ctx context.Context, message string, data Context) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(message, data)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	url := fmt.Sprintf("%s?key=%s", geminiEndpoint, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: completion service returned status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrUpstreamUnavailable)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(message string, data Context) string {
	lowStock, _ := json.Marshal(data.LowStockItems)
	orders, _ := json.Marshal(data.Orders)
	usages, _ := json.Marshal(data.Usages)

	return fmt.Sprintf(`You are a helpful AI assistant for a Production Cost & Inventory Management System. You answer BOTH business data questions AND general questions on any topic.

Business Data:
- Total Orders: %d
- Profit Orders: %d, Loss Orders: %d
- Low Stock Items: %d
- Unread Alerts: %d
- Low Stock: %s
- Recent Orders: %s
- Actual Usage: %s

User Message: %s

Answer helpfully. Use the business data when relevant. For general questions (greetings, general knowledge, etc.), respond naturally. Be friendly and concise.`,
		data.TotalOrders, data.ProfitOrders, data.LossOrders,
		len(data.LowStockItems), data.UnreadAlerts,
		lowStock, orders, usages, message)
}
