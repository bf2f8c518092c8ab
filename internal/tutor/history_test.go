package tutor

import (
	"testing"

	"github.com/priyansh/neetdost/internal/llm"
)

func TestFilterGreeting_DropsLeadingGreeting(t *testing.T) {
	history := []ChatMessage{
		{Sender: SenderBot, Text: Greeting},
		{Sender: SenderUser, Text: "What is osmosis?"},
		{Sender: SenderBot, Text: "Osmosis is..."},
	}

	got := filterGreeting(history)

	if len(got) != 2 {
		t.Fatalf("expected 2 turns after filtering, got %d", len(got))
	}
	if got[0].Text != "What is osmosis?" || got[1].Text != "Osmosis is..." {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestFilterGreeting_GreetingOnlyHistory(t *testing.T) {
	history := []ChatMessage{{Sender: SenderBot, Text: Greeting}}

	if got := filterGreeting(history); len(got) != 0 {
		t.Fatalf("expected empty history, got %+v", got)
	}
}

func TestFilterGreeting_KeepsNonGreetingBotTurn(t *testing.T) {
	history := []ChatMessage{
		{Sender: SenderBot, Text: "Let's continue from yesterday."},
		{Sender: SenderUser, Text: "ok"},
	}

	if got := filterGreeting(history); len(got) != 2 {
		t.Fatalf("non-greeting bot turn must be kept, got %+v", got)
	}
}

func TestFilterGreeting_GreetingLaterInHistoryKept(t *testing.T) {
	history := []ChatMessage{
		{Sender: SenderUser, Text: "hello"},
		{Sender: SenderBot, Text: Greeting},
	}

	if got := filterGreeting(history); len(got) != 2 {
		t.Fatalf("only a leading greeting is dropped, got %+v", got)
	}
}

func TestFilterGreeting_Empty(t *testing.T) {
	if got := filterGreeting(nil); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestMapHistory_Roles(t *testing.T) {
	history := []ChatMessage{
		{Sender: SenderUser, Text: "q1"},
		{Sender: SenderBot, Text: "a1"},
		{Sender: SenderUser, Text: "q2"},
	}

	msgs := mapHistory(history)

	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	wantRoles := []llm.Role{llm.RoleUser, llm.RoleAssistant, llm.RoleUser}
	for i, msg := range msgs {
		if msg.Role != wantRoles[i] {
			t.Errorf("message %d: expected role %s, got %s", i, wantRoles[i], msg.Role)
		}
		if msg.Image != nil {
			t.Errorf("message %d: history images must not be forwarded", i)
		}
	}
}
