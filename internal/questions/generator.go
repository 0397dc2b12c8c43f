// Package questions builds technical interview questions from
// per-difficulty templates. It backs the interview when no LLM provider is
// reachable, and tops up when a provider returns fewer questions than
// needed.
package questions

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/jonathan/screening-assistant/internal/config"
)

// Difficulty selects a question template set based on experience.
type Difficulty string

const (
	DifficultyEntry        Difficulty = "entry-level"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DifficultyFor maps years of experience to a question difficulty.
func DifficultyFor(yearsExperience float64) Difficulty {
	switch {
	case yearsExperience < 2:
		return DifficultyEntry
	case yearsExperience < 5:
		return DifficultyIntermediate
	default:
		return DifficultyAdvanced
	}
}

// NumQuestions returns how many questions to ask for a stack of the given
// size, clamped to the configured range.
func NumQuestions(stackSize int) int {
	n := stackSize
	if n < config.MinTechnicalQuestions {
		n = config.MinTechnicalQuestions
	}
	if n > config.MaxTechnicalQuestions {
		n = config.MaxTechnicalQuestions
	}
	return n
}

// generalQuestions are asked when the candidate's stack is unknown.
var generalQuestions = []string{
	"Can you describe your experience with programming languages?",
	"What software development methodologies are you familiar with?",
	"How do you approach debugging complex technical issues?",
	"Describe a challenging technical project you worked on recently.",
	"How do you stay updated with industry trends and new technologies?",
	"What tools do you use for version control and why?",
	"How do you ensure code quality and maintainability?",
	"Describe your experience with testing and QA processes.",
	"How do you approach technical documentation?",
	"What's your process for learning a new technology quickly?",
}

// questionTemplates holds one template set per difficulty. Each template
// takes the technology name as its single argument.
var questionTemplates = map[Difficulty][]string{
	DifficultyEntry: {
		"What are the basic features of %s?",
		"Can you explain the main use cases for %s?",
		"What are some advantages of using %s compared to alternatives?",
		"How would you set up a simple project using %s?",
		"What resources did you use to learn %s?",
		"Can you describe a simple project you built using %s?",
	},
	DifficultyIntermediate: {
		"What are some best practices when working with %s?",
		"How would you optimize performance in a %s application?",
		"Can you explain the architecture of a %s application you've built?",
		"What are some common pitfalls to avoid when using %s?",
		"How do you handle error management in %s?",
		"How would you implement testing for a %s application?",
	},
	DifficultyAdvanced: {
		"Can you describe a complex technical challenge you solved using %s?",
		"How would you architect a scalable system using %s?",
		"What are the internals of %s and how does it work under the hood?",
		"How have you extended or customized %s for specific requirements?",
		"Can you discuss the tradeoffs involved in different %s implementation strategies?",
		"How would you debug a complex issue in a %s application?",
	},
}

func templatesFor(d Difficulty) []string {
	if t, ok := questionTemplates[d]; ok {
		return t
	}
	return questionTemplates[DifficultyIntermediate]
}

// Generator produces template-based questions. A small cache lets callers
// pre-load questions per technology and difficulty; cached questions are
// consumed before templates are used.
type Generator struct {
	mu    sync.Mutex
	cache map[string][]string
	rng   *rand.Rand
}

// NewGenerator returns a Generator seeded from the clock.
func NewGenerator() *Generator {
	return &Generator{
		cache: make(map[string][]string),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate builds questions for the stack at the difficulty implied by the
// candidate's experience. An empty stack falls back to general questions.
// The result always has at least the configured minimum count.
func (g *Generator) Generate(techStack []string, yearsExperience float64) []string {
	if len(techStack) == 0 {
		return g.General(config.MinTechnicalQuestions)
	}
	return g.ForStack(techStack, DifficultyFor(yearsExperience), NumQuestions(len(techStack)))
}

// General returns up to n general questions in random order.
func (g *Generator) General(n int) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n > len(generalQuestions) {
		n = len(generalQuestions)
	}
	qs := make([]string, 0, n)
	for _, i := range g.rng.Perm(len(generalQuestions))[:n] {
		qs = append(qs, generalQuestions[i])
	}
	return qs
}

// ForStack builds num questions by cycling through the technologies,
// drawing from the cache first and then from the difficulty's templates.
// Repeated visits to the same technology use distinct templates.
func (g *Generator) ForStack(stack []string, difficulty Difficulty, num int) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	techs := make([]string, len(stack))
	copy(techs, stack)
	g.rng.Shuffle(len(techs), func(i, j int) { techs[i], techs[j] = techs[j], techs[i] })
	if len(techs) > num {
		techs = techs[:num]
	}

	templates := templatesFor(difficulty)
	pending := make(map[string][]int)
	questions := make([]string, 0, num)
	for i := 0; len(questions) < num && i < num*2; i++ {
		tech := techs[i%len(techs)]
		key := cacheKey(tech, difficulty)
		if cached := g.cache[key]; len(cached) > 0 {
			questions = append(questions, cached[0])
			g.cache[key] = cached[1:]
			continue
		}
		perm, ok := pending[tech]
		if !ok {
			perm = g.rng.Perm(len(templates))
		}
		if len(perm) == 0 {
			continue
		}
		questions = append(questions, fmt.Sprintf(templates[perm[0]], tech))
		pending[tech] = perm[1:]
	}
	return questions
}

// Cache stores pre-generated questions for a technology and difficulty.
func (g *Generator) Cache(tech string, difficulty Difficulty, qs []string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cache[cacheKey(tech, difficulty)] = qs
}

func cacheKey(tech string, difficulty Difficulty) string {
	return tech + "_" + string(difficulty)
}
