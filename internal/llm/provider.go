package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
// Implementations must be safe for concurrent use; the client handle is
// immutable after construction.
type Provider interface {
	// Generate sends a prompt to the LLM and returns the response.
	// The request's Schema field, when set, instructs the provider to return
	// JSON conforming to that schema. The request's Search field, when set,
	// asks the provider to ground the answer with web search; providers
	// without a grounding mechanism answer from model knowledge and return
	// no Sources.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system instruction. Sets the LLM's persona and the
	// answer format it should follow.
	System string

	// Messages is the conversation history, oldest first. For single-turn
	// generation this contains one user message. Any message may carry an
	// inline image.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism
	// and the response Content is the validated JSON.
	Schema *Schema

	// Search enables web-search grounding. Only the Gemini provider
	// supports it; grounded responses carry citation Sources.
	Search bool

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single turn in the conversation.
type Message struct {
	Role    Role
	Content string

	// Image is an optional inline image attached to this turn.
	// Sent as a second content part after the text.
	Image *ImageData
}

// ImageData is an inline image payload.
type ImageData struct {
	// MIMEType is the detected content type, e.g. "image/png".
	MIMEType string
	Data     []byte
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (schema name for OpenAI, cache key for
	// validation). Kebab-case, e.g. "practice-questions".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Source is a web citation attached to a grounded response.
type Source struct {
	URI   string
	Title string
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON. Otherwise it is the raw text.
	Content json.RawMessage

	// Sources lists web citations for grounded responses, in the order the
	// provider reported them. Chunks missing a URI or title are already
	// dropped; duplicates are not — callers dedupe.
	Sources []Source

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
