package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// stalledProvider blocks until the context is done.
type stalledProvider struct{}

func (stalledProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stalledProvider) ModelID() string { return "stalled" }

func TestTimeout_DeadlineBoundsGenerate(t *testing.T) {
	p := WithTimeout(stalledProvider{}, 5*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("deadline not enforced, took %s", elapsed)
	}
}

func TestTimeout_PassesThroughSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestTimeout_CoversRetries(t *testing.T) {
	// The first attempt rate-limits with a RetryAfter longer than the
	// deadline, so the retry loop must give up waiting.
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 50 * time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithTimeout(WithRetry(mock, retryConfig()), 10*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected deadline to cut retries short, got %d calls", mock.CallCount())
	}
}

func TestTimeout_ModelIDDelegates(t *testing.T) {
	p := WithTimeout(NewMockProvider(), time.Second)
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
