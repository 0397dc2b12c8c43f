package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_Languages(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		expectedCode string
		minConf      float64
		maxConf      float64
	}{
		{
			name:         "clear english",
			text:         "Hello, my name is John and I have experience in programming",
			expectedCode: "en",
			minConf:      SwitchThreshold,
			maxConf:      1,
		},
		{
			name:         "clear spanish",
			text:         "¡Hola! Me llamo Carlos y tengo experiencia en programación",
			expectedCode: "es",
			minConf:      SwitchThreshold,
			maxConf:      1,
		},
		{
			name:         "clear french",
			text:         "Bonjour, merci pour votre aide. Je cherche un poste de candidat en recrutement",
			expectedCode: "fr",
			minConf:      SwitchThreshold,
			maxConf:      1,
		},
		{
			name:         "clear hindi",
			text:         "नमस्ते, मेरा नाम राज है और मुझे पांच साल का अनुभव है",
			expectedCode: "hi",
			minConf:      SwitchThreshold,
			maxConf:      1,
		},
		{
			name:         "clear arabic",
			text:         "مرحبا، أنا مهندس برمجيات ولدي خبرة خمس سنوات",
			expectedCode: "ar",
			minConf:      SwitchThreshold,
			maxConf:      1,
		},
		{
			name:         "chinese without spaces",
			text:         "你好，我想申请这个职位，我有五年编程经验",
			expectedCode: "zh",
			minConf:      SwitchThreshold,
			maxConf:      1,
		},
		{
			name:         "short french greeting stays below suggestion",
			text:         "Bonjour, je m'appelle Marie",
			expectedCode: "fr",
			minConf:      0,
			maxConf:      SuggestThreshold,
		},
		{
			name:         "short english courtesy stays below suggestion",
			text:         "thank you",
			expectedCode: "en",
			minConf:      0,
			maxConf:      SuggestThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := Detect(tt.text)
			assert.Equal(t, tt.expectedCode, det.Code)
			assert.GreaterOrEqual(t, det.Confidence, tt.minConf)
			assert.LessOrEqual(t, det.Confidence, tt.maxConf)
		})
	}
}

func TestDetect_RussianMidConfidence(t *testing.T) {
	// Two distinct keyword hits put this between the suggestion and the
	// automatic switch.
	det := Detect("Привет, меня зовут Иван, у меня есть опыт работы")
	assert.Equal(t, "ru", det.Code)
	assert.GreaterOrEqual(t, det.Confidence, SuggestThreshold)
	assert.Less(t, det.Confidence, SwitchThreshold)
}

func TestDetect_EmptyAndNeutral(t *testing.T) {
	det := Detect("")
	assert.Equal(t, DefaultCode, det.Code)
	assert.Zero(t, det.Confidence)

	det = Detect("   ")
	assert.Equal(t, DefaultCode, det.Code)
	assert.Zero(t, det.Confidence)

	// Digits and unknown words match nothing
	det = Detect("12345 zzzz qqqq")
	assert.Equal(t, DefaultCode, det.Code)
	assert.Zero(t, det.Confidence)
}

func TestDetect_TieBreaksTowardEarlierLanguage(t *testing.T) {
	// "por favor" scores identically for Spanish and Portuguese; the
	// supported-list order decides.
	det := Detect("por favor")
	assert.Equal(t, "es", det.Code)
	assert.Less(t, det.Confidence, SuggestThreshold)
}

func TestDetect_NeverExceedsOne(t *testing.T) {
	det := Detect("hello hi hey good morning afternoon evening name email phone experience years position location tech stack")
	assert.Equal(t, "en", det.Code)
	assert.LessOrEqual(t, det.Confidence, 1.0)
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("¡hola! je m'appelle marie, après-midi.")
	assert.Equal(t, []string{"hola", "je", "m'appelle", "marie", "après-midi"}, tokens)
}
