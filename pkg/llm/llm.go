package llm

import (
	"context"
	"time"
)

// ChatModel is the narrow port the parser and evaluator use to reach an LLM.
// Concrete providers live in sub-packages.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// WithTimeout bounds every call of next by d. A zero d returns next unchanged.
func WithTimeout(next ChatModel, d time.Duration) ChatModel {
	if d <= 0 {
		return next
	}
	return timeoutModel{next: next, d: d}
}

type timeoutModel struct {
	next ChatModel
	d    time.Duration
}

func (m timeoutModel) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.d)
	defer cancel()
	return m.next.Ask(ctx, systemPrompt, userPrompt)
}
