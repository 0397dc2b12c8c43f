package llm

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/screening-assistant/internal/config"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterClient implements Client by iterating free-tier models until one
// returns usable content. Free models fail or stall often, so each attempt
// gets its own short deadline.
type OpenRouterClient struct {
	apiKey       string
	models       []string
	endpoint     string
	modelTimeout time.Duration
	httpClient   *http.Client
}

// NewOpenRouterClient creates an OpenRouter client. Empty models fall back
// to the configured free-tier list.
func NewOpenRouterClient(apiKey string, models []string) *OpenRouterClient {
	if len(models) == 0 {
		models = config.DefaultOpenRouterModels
	}
	return &OpenRouterClient{
		apiKey:       apiKey,
		models:       models,
		endpoint:     openRouterEndpoint,
		modelTimeout: 2 * time.Second,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *OpenRouterClient) Name() string { return ProviderOpenRouter }

// Complete tries each configured model in order and returns the first
// non-empty reply.
func (c *OpenRouterClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	headers := map[string]string{
		"HTTP-Referer": "https://talentscout.example.com",
		"X-Title":      config.AppTitle,
	}

	var lastErr error
	for _, model := range c.models {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		attemptCtx := ctx
		var cancel context.CancelFunc
		if c.modelTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, c.modelTimeout)
		}
		content, err := chatCompletion(attemptCtx, c.httpClient, c.endpoint, c.apiKey, headers, model, prompt, opts)
		if cancel != nil {
			cancel()
		}
		if err != nil {
			log.Printf("OpenRouter model %s failed: %v", model, err)
			lastErr = err
			continue
		}
		return content, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no models configured")
	}
	return "", fmt.Errorf("all OpenRouter models failed: %w", lastErr)
}
