package provider

import (
	"os"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms/openai"
)

// Groq serves the OpenAI chat-completions wire format; GROQ_BASE_URL can
// point at a substitute (e.g. cmd/mock-provider) for local testing.
const defaultBaseURL = "https://api.groq.com/openai/v1"

// Handle is the process-wide client handle to the completion backend.
type Handle struct {
	llm *openai.LLM
}

var (
	clientMu sync.Mutex
	client   *Handle
)

// GetClient returns the shared client handle, constructing it on first use.
// The credential is read from GROQ_API_KEY once; every later call returns the
// identical cached handle. A missing or blank credential yields a
// *ConfigurationError and no network activity.
func GetClient() (*Handle, error) {
	clientMu.Lock()
	defer clientMu.Unlock()

	if client != nil {
		return client, nil
	}

	apiKey := strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	if apiKey == "" {
		return nil, &ConfigurationError{Missing: "GROQ_API_KEY"}
	}

	baseURL := strings.TrimSpace(os.Getenv("GROQ_BASE_URL"))
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(baseURL),
	)
	if err != nil {
		return nil, &ConfigurationError{Missing: "usable GROQ client: " + err.Error()}
	}

	client = &Handle{llm: llm}

	log.WithFields(log.Fields{
		"base_url": baseURL,
		"event":    "client_initialized",
	}).Info("Completion client initialized")

	return client, nil
}

// Reset discards the cached handle. The next GetClient call re-reads the
// environment. Intended for tests; production code never resets.
func Reset() {
	clientMu.Lock()
	defer clientMu.Unlock()
	client = nil
}
