// Package llm is the gateway to the hosted text-completion service.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when the service answers without any text.
var ErrEmptyCompletion = errors.New("empty completion")

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Client issues one synchronous completion request per call. Implementations
// do not retry or stream.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}

// Complete sends prompt as a single user message and returns the completion
// text verbatim.
func Complete(ctx context.Context, c Client, prompt string) (string, error) {
	resp, err := c.Generate(ctx, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		return "", err
	}
	if resp.Content == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Content, nil
}
