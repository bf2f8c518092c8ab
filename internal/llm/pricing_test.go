package llm

import (
	"math"
	"testing"
)

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.3, OutputPerMTok: 2.5}

	tests := []struct {
		name    string
		in, out int
		wantUSD float64
	}{
		{"one million each", 1_000_000, 1_000_000, 2.8},
		{"typical request", 2_000, 4_000, 0.0106},
		{"zero tokens", 0, 0, 0},
	}
	for _, tt := range tests {
		got := c.Cost(tt.in, tt.out)
		if math.Abs(got-tt.wantUSD) > 1e-9 {
			t.Errorf("%s: Cost(%d, %d) = %v, want %v", tt.name, tt.in, tt.out, got, tt.wantUSD)
		}
	}
}

func TestLookupCost(t *testing.T) {
	for _, id := range []string{
		"gemini-2.5-flash",
		"claude-haiku-4-5-20251001",
		"gpt-4o-mini",
		"google/gemini-2.5-flash", // OpenRouter route
	} {
		if LookupCost(id) == nil {
			t.Errorf("expected pricing for %q", id)
		}
	}

	if c := LookupCost("mock"); c != nil {
		t.Errorf("expected nil pricing for unknown model, got %+v", c)
	}
}

func TestLookupCost_DefaultModelsArePriced(t *testing.T) {
	// Every friendly-name default must resolve to a priced model ID, so the
	// request log can always show a cost for out-of-the-box configs.
	cfg := DefaultConfig()
	for _, model := range []string{
		resolveModel(cfg.Gemini.Model, geminiModels),
		resolveModel(cfg.Anthropic.Model, anthropicModels),
		resolveModel(cfg.OpenAI.Model, openaiModels),
		cfg.OpenRouter.Model,
	} {
		if LookupCost(model) == nil {
			t.Errorf("default model %q has no pricing entry", model)
		}
	}
}
