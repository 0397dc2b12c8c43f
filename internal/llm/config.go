// Package llm provides the provider chain used to generate interview
// replies: Groq first, then OpenRouter's free-tier models, then Gemini,
// with canned responses when every provider is down.
package llm

// Provider names, in the order the router tries them.
const (
	ProviderGroq       = "groq"
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// Options tune a single completion call.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// DefaultOptions returns the conversational defaults.
func DefaultOptions() Options {
	return Options{Temperature: 0.7, MaxTokens: 500}
}

// QuestionOptions returns the settings for question generation, which runs
// hotter and longer than chat replies.
func QuestionOptions() Options {
	return Options{Temperature: 0.8, MaxTokens: 1000}
}
