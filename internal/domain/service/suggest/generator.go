package suggest

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"passmeter/pkg/randx"
)

const (
	targetLength       = 12
	defaultMaxAttempts = 1000

	caseProbability       = 0.7
	substituteProbability = 0.7
	symbolProbability     = 0.5

	twoDigitMin   = 10
	twoDigitRange = 90

	fallbackSuffix = "!#"
)

var ErrSuggestionsExhausted = errors.New("suggestion attempts exhausted")

// fallbackSeeds are cycled through when the caller has not typed anything.
var fallbackSeeds = []string{"mypassword", "secure", "access"} //nolint:gochecknoglobals

type Generator struct {
	random      randx.Randomizer
	maxAttempts int
}

type Option func(*Generator)

func WithRandomizer(random randx.Randomizer) Option {
	return func(g *Generator) {
		g.random = random
	}
}

// WithMaxAttempts bounds the retries spent on one suggestion slot.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		random:      randx.NewRandomizer(),
		maxAttempts: defaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns count distinct suggestions derived from base. None of
// them equals base, and each is at least 12 characters long with a digit and
// a symbol. Output is random across calls.
func (g *Generator) Generate(base string, count int) ([]string, error) {
	suggestions := make([]string, 0, max(count, 0))
	seen := make(map[string]struct{}, max(count, 0))

	for len(suggestions) < count {
		suggestion, err := g.nextSuggestion(base, len(suggestions), seen)
		if err != nil {
			return nil, fmt.Errorf("g.nextSuggestion: %w", err)
		}

		seen[suggestion] = struct{}{}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}

func (g *Generator) nextSuggestion(base string, slot int, seen map[string]struct{}) (string, error) {
	seed := seedFor(base, slot)

	for range g.maxAttempts {
		candidate := g.candidate(seed)

		if _, ok := seen[candidate]; ok || candidate == base {
			continue
		}

		return candidate, nil
	}

	return "", fmt.Errorf("slot %d after %d attempts: %w", slot, g.maxAttempts, ErrSuggestionsExhausted)
}

func seedFor(base string, slot int) string {
	if base != "" {
		return base
	}

	return fallbackSeeds[slot%len(fallbackSeeds)]
}

// candidate applies the transformations in a fixed order: padding, case,
// substitution, symbol insertion, then the digit and symbol guarantees.
func (g *Generator) candidate(seed string) string {
	p := g.pad(seed)

	if g.random.Float64() < caseProbability {
		p = g.randomizeCase(p)
	}

	if g.random.Float64() < substituteProbability {
		p = g.substitute(p)
	}

	if g.random.Float64() < symbolProbability {
		p = g.insertSymbol(p)
	}

	if !hasDigit(p) {
		p += strconv.Itoa(twoDigitMin + g.random.IntN(twoDigitRange))
	}

	if !hasSymbol(p) {
		p += fallbackSuffix
	}

	return g.pad(p)
}

func (g *Generator) pad(s string) string {
	if n := utf8.RuneCountInString(s); n < targetLength {
		return s + g.randomChars(targetLength-n)
	}

	return s
}
