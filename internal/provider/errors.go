package provider

import (
	"errors"
	"fmt"
)

// errEmptyCompletion marks a well-formed response that carried no choices.
var errEmptyCompletion = errors.New("completion response contained no choices")

// ConfigurationError means the client credential is missing or unusable.
// It is fatal: the dispatcher never retries it against another model.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing %s. Set it as an environment variable and restart the app", e.Missing)
}

// BackendCallError wraps a single failed model invocation (network, auth,
// rate limit, malformed response). Recovered by the dispatcher via fallback.
type BackendCallError struct {
	Model string
	Err   error
}

func (e *BackendCallError) Error() string {
	return fmt.Sprintf("model %s call failed: %v", e.Model, e.Err)
}

func (e *BackendCallError) Unwrap() error { return e.Err }

// AllAttemptsFailedError means every candidate model failed. Only the last
// observed failure is retained; earlier ones are discarded.
type AllAttemptsFailedError struct {
	Attempts int
	Err      error
}

func (e *AllAttemptsFailedError) Error() string {
	return fmt.Sprintf("all %d model attempts failed. Last error: %v", e.Attempts, e.Err)
}

func (e *AllAttemptsFailedError) Unwrap() error { return e.Err }
