// Package llm abstracts the chat-completion backends used for natural
// language task capture.
package llm

import "context"

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is implemented by each chat backend.
type Client interface {
	// Chat sends the conversation and returns the raw assistant reply.
	Chat(ctx context.Context, messages []Message) (string, error)

	// ChatJSON sends the conversation and decodes the reply as JSON into
	// result, tolerating markdown fences around the payload.
	ChatJSON(ctx context.Context, messages []Message, result any) error
}

// System and User build messages for the two roles capture uses.
func System(content string) Message { return Message{Role: "system", Content: content} }
func User(content string) Message   { return Message{Role: "user", Content: content} }
