package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var (
	ErrNotConfigured = errors.New("llm: service not configured")
	ErrEmptyReply    = errors.New("llm: empty reply")
)

// Message is one chat turn as the UI sends it. Role is "user" or "assistant".
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GeminiClient answers chat conversations with a Gemini model.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.New("NewGeminiClient(): failed to create client: " + err.Error())
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Complete sends the conversation with the given system instruction and
// returns the model's reply. The last message must be from the user.
func (g *GeminiClient) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("Complete(): no messages")
	}
	last := messages[len(messages)-1]
	if last.Role != "user" {
		return "", errors.New("Complete(): last message must be from the user")
	}

	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	cs := model.StartChat()
	cs.History = ToHistory(messages[:len(messages)-1])

	resp, err := cs.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", err
	}
	return ResponseText(resp)
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// ToHistory converts UI turns to Gemini contents. System turns are dropped;
// the system instruction is set separately.
func ToHistory(messages []Message) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		var role string
		switch m.Role {
		case "user":
			role = "user"
		case "assistant", "model":
			role = "model"
		default:
			continue
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}
	return history
}

// ResponseText joins the text parts of the first candidate.
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyReply
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyReply
	}
	return b.String(), nil
}
