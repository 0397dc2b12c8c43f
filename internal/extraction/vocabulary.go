package extraction

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// techCategories groups the recognized technologies by the screening
// questionnaire's coverage areas.
var techCategories = map[string][]string{
	"programming_languages": {"Python", "JavaScript", "Java", "C#", "C++", "Go", "Ruby", "PHP", "Swift", "Kotlin"},
	"frameworks":            {"React", "Angular", "Vue.js", "Django", "Flask", "Spring", "ASP.NET", "Laravel", "Ruby on Rails"},
	"databases":             {"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Redis", "Oracle", "SQL Server", "DynamoDB"},
	"cloud_services":        {"AWS", "Azure", "Google Cloud", "Firebase", "Heroku", "Netlify"},
	"tools":                 {"Docker", "Kubernetes", "Git", "Jenkins", "Travis CI", "Jira", "Confluence"},
}

// techAliases maps common shorthand spellings to their canonical vocabulary
// entry.
var techAliases = map[string]string{
	"golang":    "Go",
	"go lang":   "Go",
	"js":        "JavaScript",
	"k8s":       "Kubernetes",
	"postgres":  "PostgreSQL",
	"mongo":     "MongoDB",
	"react.js":  "React",
	"reactjs":   "React",
	"vue":       "Vue.js",
	"vuejs":     "Vue.js",
	"rails":     "Ruby on Rails",
	"dotnet":    "ASP.NET",
	".net":      "ASP.NET",
	"gcp":       "Google Cloud",
	"travis":    "Travis CI",
	"sqlserver": "SQL Server",
	"mssql":     "SQL Server",
}

// Vocabulary matches known technology names and their aliases inside free
// text.
type Vocabulary struct {
	entries map[string]string // lowercased name or alias -> canonical name
}

// DefaultVocabulary builds a Vocabulary from techCategories and techAliases.
func DefaultVocabulary() *Vocabulary {
	v := &Vocabulary{entries: make(map[string]string)}
	for _, names := range techCategories {
		for _, name := range names {
			v.entries[strings.ToLower(name)] = name
		}
	}
	for alias, canonical := range techAliases {
		v.entries[alias] = canonical
	}
	return v
}

// Canonical resolves a single technology name or alias to its vocabulary
// entry.
func (v *Vocabulary) Canonical(name string) (string, bool) {
	c, ok := v.entries[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Match returns every vocabulary technology mentioned in the text, in order
// of first appearance, without duplicates.
func (v *Vocabulary) Match(text string) []string {
	lower := strings.ToLower(text)
	first := make(map[string]int)
	for key, canonical := range v.entries {
		idx := wordIndex(lower, key)
		if idx < 0 {
			continue
		}
		if prev, ok := first[canonical]; !ok || idx < prev {
			first[canonical] = idx
		}
	}

	matches := make([]string, 0, len(first))
	for canonical := range first {
		matches = append(matches, canonical)
	}
	sort.Slice(matches, func(i, j int) bool {
		if first[matches[i]] != first[matches[j]] {
			return first[matches[i]] < first[matches[j]]
		}
		return matches[i] < matches[j]
	})
	return matches
}

var defaultVocabulary = DefaultVocabulary()

// ExtractTechStack matches technologies in the message against the default
// vocabulary.
func ExtractTechStack(message string) []string {
	return defaultVocabulary.Match(message)
}

// wordIndex returns the byte offset of the first whole-word occurrence of
// key in text, or -1. Both arguments must already be lowercased. Names like
// "c++" and ".net" break regexp \b boundaries, so boundaries are checked by
// hand instead.
func wordIndex(text, key string) int {
	if key == "" {
		return -1
	}
	for start := 0; start+len(key) <= len(text); {
		i := strings.Index(text[start:], key)
		if i < 0 {
			return -1
		}
		i += start
		if boundaryBefore(text, i) && boundaryAfter(text, i+len(key)) {
			return i
		}
		start = i + 1
	}
	return -1
}

// A dot glued between two word runes joins them into one token, so "js"
// never matches inside "vue.js". A sentence-ending dot still terminates a
// word, so "python." matches "python".
func boundaryBefore(text string, i int) bool {
	if i <= 0 {
		return true
	}
	r, size := utf8.DecodeLastRuneInString(text[:i])
	if r == '.' {
		return !wordRuneBefore(text, i-size)
	}
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, size := utf8.DecodeRuneInString(text[i:])
	if r == '.' {
		return !wordRuneAfter(text, i+size)
	}
	return !isWordRune(r)
}

func wordRuneBefore(text string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return isWordRune(r)
}

func wordRuneAfter(text string, i int) bool {
	if i >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return isWordRune(r)
}

// isWordRune reports runes that can continue a technology token, so "c"
// never matches inside "c++" and "go" never matches inside "django".
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#'
}
