// Package extraction pulls structured candidate fields out of free-form chat
// messages using regex and vocabulary matching, without an LLM round trip.
package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Bounds applied to extracted values before they are stored.
const (
	MinNameLength      = 2
	MaxNameLength      = 50
	MaxNameWords       = 4
	MinPhoneDigits     = 7
	MaxPhoneDigits     = 15
	MaxExperienceYears = 50
	MaxPositionWords   = 5
	MinLocationLength  = 2
	MaxLocationLength  = 100
)

// nameIntroPatterns match explicit self-introductions in English, Spanish,
// and French. Checked in order before the short-message fallback.
var nameIntroPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmy name is\s+(.+)`),
	regexp.MustCompile(`(?i)\bi am\s+(.+)`),
	regexp.MustCompile(`(?i)\bi'm\s+(.+)`),
	regexp.MustCompile(`(?i)\bme llamo\s+(.+)`),
	regexp.MustCompile(`(?i)\bmi nombre es\s+(.+)`),
	regexp.MustCompile(`(?i)\bsoy\s+(.+)`),
	regexp.MustCompile(`(?i)\bje m'appelle\s+(.+)`),
	regexp.MustCompile(`(?i)\bje suis\s+(.+)`),
	regexp.MustCompile(`(?i)\bmon nom est\s+(.+)`),
}

// nameTerminators cut an introduction capture at the first clause boundary,
// so "my name is Jane Smith and I..." yields just the name. Periods are not
// terminators because initials like "J. Smith" are valid.
var nameTerminators = regexp.MustCompile(`(?i)\s+(?:and|y|et)\s+|[,!?;:]`)

// ExtractName finds a candidate name in the message. An empty result with a
// nil error means no name was recognized; a ValidationError means an
// introduction was found but the captured name failed validation.
func ExtractName(message string) (string, error) {
	message = strings.TrimSpace(message)
	for _, re := range nameIntroPatterns {
		m := re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		candidate := cleanNameCapture(m[1])
		if candidate == "" {
			continue
		}
		if err := ValidateName(candidate); err != nil {
			return "", err
		}
		return candidate, nil
	}

	// Fallback: a short message where every word is capitalized is treated
	// as the name itself, e.g. a bare "Jane Smith" reply.
	words := strings.Fields(message)
	if len(words) == 0 || len(words) > MaxNameWords {
		return "", nil
	}
	for _, w := range words {
		if !startsUpper(w) {
			return "", nil
		}
	}
	candidate := strings.TrimRight(message, ". ")
	if err := ValidateName(candidate); err != nil {
		return "", nil
	}
	return candidate, nil
}

// ValidateName checks length, word count, and the allowed character set for
// a candidate name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	invalid := &ValidationError{Field: "name", Value: name, Hint: "Jane Smith"}
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return invalid
	}
	words := strings.Fields(name)
	if len(words) == 0 || len(words) > MaxNameWords {
		return invalid
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !strings.ContainsRune("'-. ", r) {
			return invalid
		}
	}
	return nil
}

func cleanNameCapture(capture string) string {
	if loc := nameTerminators.FindStringIndex(capture); loc != nil {
		capture = capture[:loc[0]]
	}
	return strings.TrimRight(strings.TrimSpace(capture), ".")
}

// startsUpper accepts words beginning with an uppercase letter, and caseless
// scripts like Devanagari where the upper/lower distinction does not exist.
func startsUpper(word string) bool {
	for _, r := range word {
		if unicode.IsUpper(r) {
			return true
		}
		return unicode.IsLetter(r) && !unicode.IsLower(r)
	}
	return false
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	emailExact   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// ExtractEmail returns the first email address in the message. A message
// that contains an @ but no parseable address yields a ValidationError so
// the caller can show the expected format.
func ExtractEmail(message string) (string, error) {
	if m := emailPattern.FindString(message); m != "" {
		return m, nil
	}
	if strings.Contains(message, "@") {
		return "", &ValidationError{Field: "email", Value: strings.TrimSpace(message), Hint: "name@example.com"}
	}
	return "", nil
}

// ValidateEmail checks that the whole string is a single email address.
func ValidateEmail(email string) error {
	if emailExact.MatchString(strings.TrimSpace(email)) {
		return nil
	}
	return &ValidationError{Field: "email", Value: email, Hint: "name@example.com"}
}

// phonePattern finds digit runs with common separators. The run must start
// and end on a digit so trailing sentence punctuation is excluded.
var phonePattern = regexp.MustCompile(`\+?\(?\d[\d\-.\s()]{3,}\d`)

// ExtractPhone returns the first phone number in the message. Email
// addresses are stripped first so digits in a local part are not mistaken
// for a number.
func ExtractPhone(message string) (string, error) {
	scrubbed := emailPattern.ReplaceAllString(message, " ")
	m := phonePattern.FindString(scrubbed)
	if m == "" {
		return "", nil
	}
	phone := strings.TrimSpace(m)
	if err := ValidatePhone(phone); err != nil {
		return "", err
	}
	return phone, nil
}

// ValidatePhone checks the digit count of a phone number, ignoring
// formatting characters.
func ValidatePhone(phone string) error {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < MinPhoneDigits || digits > MaxPhoneDigits {
		return &ValidationError{Field: "phone", Value: phone, Hint: "+1-555-123-4567"}
	}
	return nil
}

var (
	// yearsWordPattern matches "5 years", "5.5 yrs", "10+ years", and the
	// common Spanish, French, German, and Italian year words.
	yearsWordPattern  = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*\+?\s*(?:years?|yrs?|años?|anos?|ans?|jahren?|jahr|anni|anno)\b`)
	yearsPlusPattern  = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*\+`)
	bareNumberPattern = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)
)

// ExtractYears finds the years of experience in the message. Decimal values
// and a bare numeric reply are accepted. A nil result with a nil error means
// nothing numeric was found.
func ExtractYears(message string) (*float64, error) {
	message = strings.TrimSpace(message)
	var raw string
	if m := yearsWordPattern.FindStringSubmatch(message); m != nil {
		raw = m[1]
	} else if m := yearsPlusPattern.FindStringSubmatch(message); m != nil {
		raw = m[1]
	} else if bareNumberPattern.MatchString(message) {
		raw = message
	}
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return nil, nil
	}
	if value < 0 || value > MaxExperienceYears {
		return nil, &ValidationError{Field: "years of experience", Value: raw, Hint: "5"}
	}
	return &value, nil
}

// knownRoles is scanned before falling back to the raw message, so common
// titles come back in canonical casing.
var knownRoles = []string{
	"Software Engineer",
	"Software Developer",
	"Backend Developer",
	"Backend Engineer",
	"Frontend Developer",
	"Frontend Engineer",
	"Full Stack Developer",
	"Full Stack Engineer",
	"Mobile Developer",
	"Web Developer",
	"DevOps Engineer",
	"Site Reliability Engineer",
	"Data Scientist",
	"Data Engineer",
	"Data Analyst",
	"Machine Learning Engineer",
	"QA Engineer",
	"Test Engineer",
	"Security Engineer",
	"Cloud Engineer",
	"Cloud Architect",
	"Solutions Architect",
	"Product Manager",
	"Project Manager",
	"Engineering Manager",
	"Tech Lead",
	"UI/UX Designer",
}

// ExtractPosition finds the desired position in the message. Known role
// titles win over free text; free text is accepted only when short enough to
// plausibly be a title on its own.
func ExtractPosition(message string) (string, error) {
	lower := strings.ToLower(message)
	for _, role := range knownRoles {
		if strings.Contains(lower, strings.ToLower(role)) {
			return role, nil
		}
	}
	candidate := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(message), ".!"))
	if candidate == "" {
		return "", nil
	}
	if !containsLetter(candidate) || len(strings.Fields(candidate)) > MaxPositionWords {
		return "", &ValidationError{Field: "position", Value: candidate, Hint: "Backend Developer"}
	}
	return candidate, nil
}

// cityAliases normalizes well known hiring hubs to a single display form.
var cityAliases = map[string]string{
	"bangalore":     "Bangalore, Karnataka, India",
	"bengaluru":     "Bangalore, Karnataka, India",
	"hyderabad":     "Hyderabad, Telangana, India",
	"mumbai":        "Mumbai, Maharashtra, India",
	"pune":          "Pune, Maharashtra, India",
	"delhi":         "New Delhi, Delhi, India",
	"new delhi":     "New Delhi, Delhi, India",
	"chennai":       "Chennai, Tamil Nadu, India",
	"san francisco": "San Francisco, California, USA",
	"new york":      "New York, New York, USA",
	"nyc":           "New York, New York, USA",
	"seattle":       "Seattle, Washington, USA",
	"austin":        "Austin, Texas, USA",
	"london":        "London, England, UK",
	"berlin":        "Berlin, Germany",
	"paris":         "Paris, France",
	"toronto":       "Toronto, Ontario, Canada",
	"sydney":        "Sydney, New South Wales, Australia",
	"singapore":     "Singapore",
	"dubai":         "Dubai, UAE",
}

// locationPrefixPattern strips lead-ins like "I live in" before the
// free-text fallback.
var locationPrefixPattern = regexp.MustCompile(`(?i)\b(?:i live in|i am based in|i'm based in|based in|located in|currently in|i am in|i'm in|vivo en|j'habite à|j'habite a)\s+`)

// ExtractLocation finds the candidate's location. Known cities are
// normalized through cityAliases; anything else is kept as free text after
// basic sanity checks.
func ExtractLocation(message string) (string, error) {
	lower := strings.ToLower(message)
	for alias, canonical := range cityAliases {
		if wordIndex(lower, alias) >= 0 {
			return canonical, nil
		}
	}

	candidate := strings.TrimSpace(message)
	if loc := locationPrefixPattern.FindStringIndex(candidate); loc != nil {
		candidate = strings.TrimSpace(candidate[loc[1]:])
	}
	candidate = strings.TrimRight(candidate, ".!")
	if candidate == "" {
		return "", nil
	}
	if !containsLetter(candidate) || len(candidate) < MinLocationLength || len(candidate) > MaxLocationLength {
		return "", &ValidationError{Field: "location", Value: candidate, Hint: "Austin, Texas"}
	}
	return candidate, nil
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
