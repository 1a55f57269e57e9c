package provider

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AliZeynalov/decision-arena/internal/models"
)

// Client dispatches completion requests across an ordered list of candidate
// models: the default first, then each fallback, stopping at the first
// success. No backoff, no jitter, no parallel racing — a plain linear scan.
type Client struct {
	invoker      Invoker
	defaultModel string
	fallbacks    []string
}

// NewClient builds a dispatcher over the production invoker.
func NewClient(defaultModel string, fallbacks []string) *Client {
	return NewClientWithInvoker(NewInvoker(), defaultModel, fallbacks)
}

// NewClientWithInvoker builds a dispatcher over a caller-supplied invoker.
// Tests use this to substitute a mock.
func NewClientWithInvoker(inv Invoker, defaultModel string, fallbacks []string) *Client {
	return &Client{
		invoker:      inv,
		defaultModel: defaultModel,
		fallbacks:    fallbacks,
	}
}

// Candidates returns the ordered model list: default first, duplicates
// dropped.
func (c *Client) Candidates() []string {
	out := make([]string, 0, len(c.fallbacks)+1)
	seen := make(map[string]struct{}, len(c.fallbacks)+1)

	out = append(out, c.defaultModel)
	seen[c.defaultModel] = struct{}{}

	for _, m := range c.fallbacks {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// RobustInvoke tries each candidate model in order until one succeeds.
// Elapsed time in the result is measured from the start of the whole
// dispatch, so it includes time spent on failed earlier attempts. When every
// candidate fails the returned *AllAttemptsFailedError carries only the last
// failure. A *ConfigurationError aborts the scan immediately: a missing
// credential cannot be fixed by switching models.
func (c *Client) RobustInvoke(ctx context.Context, messages []models.Message, temperature float64, maxTokens int) (models.CallResult, error) {
	start := time.Now()
	candidates := c.Candidates()

	var lastErr error
	for i, model := range candidates {
		text, err := c.invoker.Invoke(ctx, messages, model, temperature, maxTokens)
		if err == nil {
			result := models.CallResult{
				Text:    text,
				Model:   model,
				Latency: time.Since(start),
			}
			log.WithFields(log.Fields{
				"model":      model,
				"attempt":    i + 1,
				"latency_ms": result.Latency.Milliseconds(),
				"event":      "dispatch_success",
			}).Info("Dispatch served")
			return result, nil
		}

		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			return models.CallResult{}, err
		}

		lastErr = err
		log.WithFields(log.Fields{
			"model":   model,
			"attempt": i + 1,
			"error":   err.Error(),
			"event":   "dispatch_attempt_failed",
		}).Warn("Model attempt failed, trying next candidate")
	}

	return models.CallResult{}, &AllAttemptsFailedError{
		Attempts: len(candidates),
		Err:      lastErr,
	}
}
