package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt(TechStackSchema(), "I mostly use golang and k8s")

	assert.Contains(t, prompt, "expert technical recruiter")
	assert.Contains(t, prompt, `"technologies": ["string"] (required)`)
	assert.Contains(t, prompt, "Return ONLY valid JSON")
	assert.Contains(t, prompt, "I mostly use golang and k8s")
}

func TestParseTechList(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected []string
	}{
		{
			name:     "object shape",
			response: `{"technologies": ["Go", "Redis", "PostgreSQL"]}`,
			expected: []string{"Go", "Redis", "PostgreSQL"},
		},
		{
			name:     "fenced object",
			response: "```json\n{\"technologies\": [\"Python\", \"Django\"]}\n```",
			expected: []string{"Python", "Django"},
		},
		{
			name:     "bare array",
			response: `["Vue.js", ".NET"]`,
			expected: []string{"Vue.js", ".NET"},
		},
		{
			name:     "comma separated text",
			response: "Go, Redis, AWS Lambda",
			expected: []string{"Go", "Redis", "AWS Lambda"},
		},
		{
			name:     "sentence fragments dropped",
			response: "Which ones do you mean? Go, Redis",
			expected: []string{"Redis"},
		},
		{
			name:     "empty response",
			response: "",
			expected: nil,
		},
		{
			name:     "empty technologies array",
			response: `{"technologies": []}`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTechList(tt.response))
		})
	}
}

func TestExtractTechStack(t *testing.T) {
	client := &fakeClient{name: "fake", reply: `{"technologies": ["golang", "k8s"]}`}
	router := NewRouterWithClients(time.Second, client)

	techs := router.ExtractTechStack(context.Background(), "I use golang and k8s daily")
	require.Equal(t, []string{"golang", "k8s"}, techs)
	assert.Equal(t, 1, client.calls)
}

func TestExtractTechStackAllProvidersDown(t *testing.T) {
	client := &fakeClient{name: "fake", err: errors.New("boom")}
	router := NewRouterWithClients(time.Second, client)

	assert.Nil(t, router.ExtractTechStack(context.Background(), "Python and Java"))
}
