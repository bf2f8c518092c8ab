package tutor

import "github.com/priyansh/neetdost/internal/llm"

// filterGreeting drops the canned greeting when it is the first bot turn,
// keeping everything else in original order. The greeting carries no
// information and would only pollute model context.
func filterGreeting(history []ChatMessage) []ChatMessage {
	if len(history) > 0 && history[0].Sender == SenderBot && history[0].Text == Greeting {
		return history[1:]
	}
	return history
}

// mapHistory converts chat turns to provider messages. Each turn carries
// its text as a single part; the provider adapter maps RoleAssistant to
// its wire role ("model" for Gemini).
func mapHistory(history []ChatMessage) []llm.Message {
	out := make([]llm.Message, len(history))
	for i, m := range history {
		role := llm.RoleUser
		if m.Sender == SenderBot {
			role = llm.RoleAssistant
		}
		out[i] = llm.Message{Role: role, Content: m.Text}
	}
	return out
}
