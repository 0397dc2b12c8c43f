package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/screening-assistant/internal/config"
)

// fallbackResponses keep the interview moving when every provider is down,
// keyed by the use case of the call.
var fallbackResponses = map[string]string{
	"greeting":            "Hello! I'm here to help you with your application. Could you please tell me your name?",
	"name":                "Thank you for sharing your name. Could you please provide your email address and phone number?",
	"contact_info":        "Great! Now could you tell me how many years of experience you have in the industry?",
	"experience":          "Thank you. What type of position are you looking for?",
	"position":            "Could you tell me your current location?",
	"location":            "What technologies and programming languages are you proficient in?",
	"tech_stack":          "Thank you for sharing your technical background. I'll now ask you some technical questions.",
	"technical_questions": "Thank you for your answer. Here's the next question.",
	"farewell":            "Thank you for completing the interview. We'll review your responses and get back to you soon.",
	"general":             "I apologize, but I'm having trouble connecting to my knowledge base. Could you please try again in a moment?",
}

// Fallback returns the canned line for a use case, defaulting to the
// general apology for unknown cases.
func Fallback(useCase string) string {
	if resp, ok := fallbackResponses[useCase]; ok {
		return resp
	}
	return fallbackResponses["general"]
}

// Router tries each configured client in order and serves canned responses
// when none succeed.
type Router struct {
	clients []Client
	timeout time.Duration
}

// NewRouter builds the provider chain from configuration: Groq, then
// OpenRouter, then Gemini. Providers without an API key are skipped, so an
// empty configuration yields a router that only serves canned responses.
func NewRouter(ctx context.Context, cfg *config.Config) *Router {
	r := &Router{timeout: cfg.LLMTimeout()}
	if cfg.GroqAPIKey != "" {
		r.clients = append(r.clients, NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel))
	}
	if cfg.OpenRouterAPIKey != "" {
		r.clients = append(r.clients, NewOpenRouterClient(cfg.OpenRouterAPIKey, cfg.OpenRouterModels))
	}
	if cfg.GeminiAPIKey != "" {
		gemini, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, "")
		if err != nil {
			log.Printf("Gemini client unavailable: %v", err)
		} else {
			r.clients = append(r.clients, gemini)
		}
	}
	return r
}

// NewRouterWithClients wires an explicit provider chain.
func NewRouterWithClients(timeout time.Duration, clients ...Client) *Router {
	return &Router{clients: clients, timeout: timeout}
}

// HasProviders reports whether at least one real backend is configured.
func (r *Router) HasProviders() bool {
	return len(r.clients) > 0
}

// Complete asks each provider in turn and returns the first reply. It
// errors only when every provider fails.
func (r *Router) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	var lastErr error
	for _, client := range r.clients {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		callCtx := ctx
		var cancel context.CancelFunc
		if r.timeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, r.timeout)
		}
		content, err := client.Complete(callCtx, prompt, opts)
		if cancel != nil {
			cancel()
		}
		if err != nil {
			log.Printf("Provider %s failed: %v", client.Name(), err)
			lastErr = err
			continue
		}
		return content, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no providers configured")
	}
	return "", lastErr
}

// GetResponse is Complete with canned fallbacks: it always has something to
// say. The use case picks the fallback line.
func (r *Router) GetResponse(ctx context.Context, prompt, useCase string, opts Options) string {
	content, err := r.Complete(ctx, prompt, opts)
	if err != nil {
		log.Printf("Falling back to canned %s response: %v", useCase, err)
		return Fallback(useCase)
	}
	return content
}
