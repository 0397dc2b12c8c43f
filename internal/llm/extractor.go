package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "TechStack")
	Description string        // Preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", ["string"], {"key": "value"}
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// TechStackSchema returns the extraction schema for candidate technology
// mentions.
func TechStackSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "TechStack",
		Description: `You are an expert technical recruiter. Your task is to identify the technologies mentioned in a candidate's chat message.
Include programming languages, frameworks, databases, cloud services, and developer tools.
EXCLUDE: soft skills, job titles, company names, and spoken languages.`,
		Fields: []SchemaField{
			{
				Name:        "technologies",
				Type:        `["string"]`,
				Description: "Technology names exactly as the candidate wrote them",
				Required:    true,
			},
		},
	}
}

// ExtractTechStack asks the provider chain to pull technology names out of
// a message. Callers filter the result through the tech vocabulary; this
// returns nil when every provider fails.
func (r *Router) ExtractTechStack(ctx context.Context, message string) []string {
	prompt := BuildExtractionPrompt(TechStackSchema(), message)
	response, err := r.Complete(ctx, prompt, DefaultOptions())
	if err != nil {
		log.Printf("Tech stack extraction failed: %v", err)
		return nil
	}
	return ParseTechList(response)
}

// ParseTechList reads technology names out of an extraction response. It
// accepts the requested object shape, a bare JSON array, or comma-separated
// text from models that ignore the format; full sentences are discarded.
func ParseTechList(response string) []string {
	cleaned := cleanJSONBlock(response)

	if gjson.Valid(cleaned) {
		root := gjson.Parse(cleaned)
		arr := root
		if root.IsObject() {
			arr = root.Get("technologies")
		}
		if arr.IsArray() {
			var techs []string
			for _, item := range arr.Array() {
				if s := strings.TrimSpace(item.String()); s != "" {
					techs = append(techs, s)
				}
			}
			return techs
		}
	}

	var techs []string
	for _, part := range strings.Split(cleaned, ",") {
		part = strings.TrimSpace(part)
		// Technology names are short; sentence-like fragments are noise.
		if part == "" || len(part) > 40 || len(strings.Fields(part)) > 4 ||
			strings.ContainsAny(part, "?!\n") {
			continue
		}
		techs = append(techs, part)
	}
	return techs
}
