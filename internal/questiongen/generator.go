package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/priyansh/neetdost/internal/llm"
)

// Generator produces NEET practice questions.
type Generator interface {
	// Generate produces the batch of questions described by params.
	// Failures are reported as *ServiceError or *MalformedOutputError;
	// both carry a user-safe message and keep the cause in the chain.
	Generate(ctx context.Context, params Params) ([]Question, error)
}

// LLMGenerator implements Generator using an injected LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate builds the prompt and schema, submits one request, and parses
// and validates the returned batch.
func (g *LLMGenerator) Generate(ctx context.Context, params Params) ([]Question, error) {
	if params.Count <= 0 {
		return nil, fmt.Errorf("question count must be positive, got %d", params.Count)
	}

	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(params)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ServiceError{Err: err}
	}

	var questions []Question
	if err := json.Unmarshal(resp.Content, &questions); err != nil {
		return nil, &MalformedOutputError{Err: fmt.Errorf("parse response: %w", err)}
	}
	if len(questions) == 0 {
		return nil, &MalformedOutputError{Err: fmt.Errorf("empty question list")}
	}

	// An invalid record fails the whole batch rather than being dropped,
	// so callers always get exactly what they asked for or an error.
	for i := range questions {
		questions[i].Type = QuestionType
		questions[i].Source = QuestionSource
		if err := validateQuestion(questions[i]); err != nil {
			return nil, &MalformedOutputError{Err: fmt.Errorf("question %d: %w", i, err)}
		}
	}

	return questions, nil
}
