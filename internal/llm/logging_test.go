package llm

import (
	"strings"
	"testing"
)

func TestSerializeRequest(t *testing.T) {
	req := Request{
		System: "be helpful",
		Messages: []Message{
			{Role: RoleUser, Content: "what is osmosis?"},
			{Role: RoleAssistant, Content: "movement of water"},
		},
		Search: true,
	}

	out := serializeRequest(req)

	for _, want := range []string{
		"[system]\nbe helpful",
		"[user]\nwhat is osmosis?",
		"[assistant]\nmovement of water",
		"[search: enabled]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in serialized request:\n%s", want, out)
		}
	}
}

func TestSerializeRequest_ElidesImageBytes(t *testing.T) {
	req := Request{
		Messages: []Message{
			{
				Role:    RoleUser,
				Content: "solve",
				Image:   &ImageData{MIMEType: "image/jpeg", Data: make([]byte, 2048)},
			},
		},
	}

	out := serializeRequest(req)

	if !strings.Contains(out, "[image: image/jpeg, 2048 bytes]") {
		t.Errorf("expected image placeholder, got:\n%s", out)
	}
	// The raw bytes must never land in the log.
	if len(out) > 500 {
		t.Errorf("serialized request suspiciously large (%d bytes), image bytes not elided?", len(out))
	}
}

func TestSerializeRequest_IncludesSchema(t *testing.T) {
	req := Request{
		Messages: []Message{{Role: RoleUser, Content: "go"}},
		Schema: &Schema{
			Name:       "practice-questions",
			Definition: map[string]any{"type": "array"},
		},
	}

	out := serializeRequest(req)

	if !strings.Contains(out, "[schema: practice-questions]") {
		t.Errorf("missing schema header:\n%s", out)
	}
	if !strings.Contains(out, `"type":"array"`) {
		t.Errorf("missing schema body:\n%s", out)
	}
}
