package provider

import (
	"context"

	"github.com/tmc/langchaingo/llms"

	"github.com/AliZeynalov/decision-arena/internal/models"
)

// Invoker issues a single chat-completion request against one model.
// The fallback dispatcher retries across models; an Invoker never retries.
//
//go:generate mockgen -source=invoke.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	Invoke(ctx context.Context, messages []models.Message, model string, temperature float64, maxTokens int) (string, error)
}

// backendInvoker is the production Invoker backed by the shared client handle.
type backendInvoker struct{}

// NewInvoker returns the production single-call invoker.
func NewInvoker() Invoker {
	return backendInvoker{}
}

// Invoke sends one synchronous request and returns the first completion's
// text. Any transport, auth, rate-limit, or malformed-response failure comes
// back as a *BackendCallError wrapping the cause.
func (backendInvoker) Invoke(ctx context.Context, messages []models.Message, model string, temperature float64, maxTokens int) (string, error) {
	handle, err := GetClient()
	if err != nil {
		return "", err
	}

	resp, err := handle.llm.GenerateContent(ctx, toContent(messages),
		llms.WithModel(model),
		llms.WithTemperature(temperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", &BackendCallError{Model: model, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &BackendCallError{Model: model, Err: errEmptyCompletion}
	}

	return resp.Choices[0].Content, nil
}

// toContent converts arena messages to the backend message format, preserving
// order.
func toContent(messages []models.Message) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == models.RoleSystem {
			role = llms.ChatMessageTypeSystem
		}
		out = append(out, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(m.Content)},
		})
	}
	return out
}
