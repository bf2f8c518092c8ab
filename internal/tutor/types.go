package tutor

import "github.com/priyansh/neetdost/internal/llm"

// Greeting is the canned opening message the UI shows before any real
// conversation happens. When it is the first bot turn in the supplied
// history it is stripped before building model context.
const Greeting = "Hi! I am NEET-Dost, your AI tutor. Ask me any doubt from Physics, Chemistry, or Biology!"

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one turn of the conversation. History is owned and
// persisted by the caller; this package only reads it.
type ChatMessage struct {
	Sender Sender
	Text   string

	// Image holds raw bytes of an image attached to this turn, if any.
	// Historical images are not resent to the model; only the current
	// question's image is attached to the outgoing request.
	Image []byte
}

// Response is one tutor answer.
type Response struct {
	// Text is the free-form markdown answer.
	Text string

	// Sources lists web citations, deduplicated by URI with the
	// last-seen title kept, in order of first appearance.
	Sources []llm.Source
}
