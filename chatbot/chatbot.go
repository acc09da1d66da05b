// Package chatbot provides the text-generation capability behind the chat
// endpoint: a remote Gemini implementation and a deterministic keyword
// fallback, both tagging replies with their source for persistence.
package chatbot

import "context"

// Reply sources persisted alongside each conversation.
const (
	SourceGemini   = "google-gemini"
	SourceFallback = "fallback"
)

// Reply is a generated answer tagged with the implementation that produced it.
type Reply struct {
	Text   string
	Source string
}

// Responder generates a reply to a user message.
type Responder interface {
	Respond(ctx context.Context, message string) (Reply, error)
}
