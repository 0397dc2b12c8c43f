package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/jonathan/screening-assistant/internal/config"
)

const groqEndpoint = "https://api.groq.com/openai/v1/chat/completions"

// GroqClient implements Client against Groq's OpenAI-compatible API.
type GroqClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewGroqClient creates a Groq client. An empty model falls back to the
// configured default.
func NewGroqClient(apiKey, model string) *GroqClient {
	if model == "" {
		model = config.DefaultGroqModel
	}
	return &GroqClient{
		apiKey:   apiKey,
		model:    model,
		endpoint: groqEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *GroqClient) Name() string { return ProviderGroq }

// Complete sends the prompt as a single user message.
func (c *GroqClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	return chatCompletion(ctx, c.httpClient, c.endpoint, c.apiKey, nil, c.model, prompt, opts)
}
