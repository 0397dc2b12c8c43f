package language

import (
	"strings"
	"unicode"
)

// Confidence thresholds applied by the conversation manager.
const (
	// SwitchThreshold is the confidence at which the session language
	// switches automatically.
	SwitchThreshold = 0.7
	// SuggestThreshold is the confidence at which a switch is suggested
	// but not applied.
	SuggestThreshold = 0.5
)

// Detection is the result of analyzing one message.
type Detection struct {
	Code       string
	Confidence float64
}

// Detect scores a message against every supported language's keyword list
// and returns the best match with a confidence in [0,1]. Confidence combines
// three factors: how dominant the best language's score is over all matches,
// how many distinct keywords matched, and how much text there was to judge.
// Short or keyword-free messages yield low confidence rather than an error,
// so detection can never block the interview.
func Detect(text string) Detection {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Detection{Code: DefaultCode, Confidence: 0}
	}

	lower := strings.ToLower(trimmed)
	tokens := tokenize(lower)

	var (
		bestCode   string
		bestScore  int
		bestUnique int
		totalScore int
	)
	// Iterate in supported order so ties resolve deterministically.
	for _, lang := range supported {
		score, unique := scoreLanguage(lower, tokens, keywords[lang.Code])
		totalScore += score
		if score > bestScore {
			bestCode = lang.Code
			bestScore = score
			bestUnique = unique
		}
	}

	if bestScore == 0 {
		return Detection{Code: DefaultCode, Confidence: 0}
	}

	dominance := float64(bestScore) / float64(totalScore)
	strength := float64(bestUnique) / 3
	if strength > 1 {
		strength = 1
	}
	length := float64(wordCount(trimmed)) / 5
	if length > 1 {
		length = 1
	}

	return Detection{Code: bestCode, Confidence: dominance * strength * length}
}

// scoreLanguage counts keyword occurrences in the message. Keywords in
// scripts without word separators (CJK) and multi-word phrases are matched
// as substrings; everything else must match a whole token.
func scoreLanguage(lower string, tokens []string, words []string) (score, unique int) {
	for _, kw := range words {
		var n int
		if strings.ContainsRune(kw, ' ') || containsCJK(kw) {
			n = strings.Count(lower, kw)
		} else {
			for _, tok := range tokens {
				if tok == kw {
					n++
				}
			}
		}
		if n > 0 {
			unique++
			score += n
		}
	}
	return score, unique
}

// tokenize splits on whitespace and strips surrounding punctuation, keeping
// internal apostrophes and hyphens ("s'il", "après-midi") intact.
func tokenize(lower string) []string {
	fields := strings.Fields(lower)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// wordCount counts whitespace-separated words. CJK text carries no spaces,
// so there each letter counts as a word instead.
func wordCount(s string) int {
	fields := strings.Fields(s)
	if len(fields) > 1 || !containsCJK(s) {
		return len(fields)
	}
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

func containsCJK(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) ||
			unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}
