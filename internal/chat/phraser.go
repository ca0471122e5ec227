package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Phraser turns structured facts into a reply
type Phraser interface {
	Phrase(ctx context.Context, facts Facts) (string, error)
}

// TemplatePhraser formats facts without any external call
type TemplatePhraser struct{}

func (TemplatePhraser) Phrase(_ context.Context, facts Facts) (string, error) {
	return templateText(facts), nil
}

func templateText(facts Facts) string {
	if len(facts.Lots) == 0 {
		return fmt.Sprintf("I couldn't find any open lots with a known location near %s.", facts.Location)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Closest lots to %s:", facts.Location)
	for i, lot := range facts.Lots {
		fmt.Fprintf(&b, "\n%d. %s - %d m, about %d min walk", i+1, lot.Name, lot.DistanceMeters, lot.WalkingMinutes)
		if lot.Capacity > 0 {
			fmt.Fprintf(&b, " (%d/%d spaces free)", lot.Available, lot.Capacity)
		}
	}
	return b.String()
}

const persona = `You help university students find parking. Rephrase the JSON facts you are
given as a short, friendly reply. Only use the lots, distances and walking times in the facts.
Never invent lots. Keep it under 80 words.`

// OpenAIPhraser asks a chat model to phrase the facts
type OpenAIPhraser struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIPhraser creates a phraser using client. An empty model falls back
// to GPT-4o mini.
func NewOpenAIPhraser(client *openai.Client, model string) *OpenAIPhraser {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIPhraser{client: client, model: model, timeout: 10 * time.Second}
}

func (p *OpenAIPhraser) Phrase(ctx context.Context, facts Facts) (string, error) {
	payload, err := json.Marshal(facts)
	if err != nil {
		return "", fmt.Errorf("encoding facts: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: persona},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
		MaxTokens:   200,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("chat completion returned empty text")
	}
	return text, nil
}
