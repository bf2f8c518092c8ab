package tutor

import (
	"context"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/priyansh/neetdost/internal/llm"
)

// Config controls the behavior of the Responder.
type Config struct {
	// MaxTokens is the token budget for one answer.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.4,
	}
}

// Responder answers student questions with web-search grounding.
type Responder struct {
	provider llm.Provider
	config   Config
}

// New creates a Responder with the given provider and config.
func New(provider llm.Provider, cfg Config) *Responder {
	return &Responder{provider: provider, config: cfg}
}

// Ask submits the conversation history plus the new question and returns
// the answer with deduplicated citations. image, when non-empty, holds
// raw image bytes; the MIME type is detected from the bytes themselves.
// All failures surface as *ServiceError.
func (r *Responder) Ask(ctx context.Context, history []ChatMessage, question string, image []byte) (*Response, error) {
	ctx = llm.WithPurpose(ctx, "tutor")

	messages := mapHistory(filterGreeting(history))

	turn := llm.Message{Role: llm.RoleUser, Content: question}
	if len(image) > 0 {
		turn.Image = &llm.ImageData{
			MIMEType: mimetype.Detect(image).String(),
			Data:     image,
		}
	}
	messages = append(messages, turn)

	req := llm.Request{
		System:      systemInstruction,
		Messages:    messages,
		Search:      true,
		MaxTokens:   r.config.MaxTokens,
		Temperature: r.config.Temperature,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ServiceError{Err: err}
	}

	return &Response{
		Text:    strings.TrimSpace(string(resp.Content)),
		Sources: dedupeSources(resp.Sources),
	}, nil
}
