package strength

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"passmeter/internal/domain/entity"
)

const (
	targetLength  = 12
	lengthPoints  = 40.0
	classPoints   = 10
	uniquePoints  = 10
	commonPenalty = 30
	runPenalty    = 10
	runLimit      = 4

	minScore = 0
	maxScore = 100
)

// defaultWeakWords is matched against the lowercased input both as an exact
// value and as a substring, so "admin" flags "myadmin2024" as well.
var defaultWeakWords = []string{ //nolint:gochecknoglobals
	"password",
	"123456",
	"qwerty",
	"letmein",
	"admin",
	"welcome",
	"iloveyou",
	"monkey",
	"dragon",
	"football",
}

var defaultEvaluator = NewEvaluator() //nolint:gochecknoglobals

type Evaluator struct {
	weakWords []string
}

type Option func(*Evaluator)

// WithWeakWords replaces the weak-word list. Words are lowercased and empty
// entries are dropped, an empty word would match every input.
func WithWeakWords(words ...string) Option {
	return func(e *Evaluator) {
		e.weakWords = normalizeWords(words)
	}
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		weakWords: normalizeWords(defaultWeakWords),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate scores password with the default weak-word list.
func Evaluate(password string) entity.Assessment {
	return defaultEvaluator.Evaluate(password)
}

// WeakWords returns a copy of the list the evaluator matches against.
func (e *Evaluator) WeakWords() []string {
	return append([]string(nil), e.weakWords...)
}

// Evaluate is pure: the result depends on password only.
func (e *Evaluator) Evaluate(password string) entity.Assessment {
	runes := []rune(password)
	length := len(runes)
	classes := detectClasses(runes)
	uniqueChars := len(lo.Uniq(runes))

	score := lengthScore(length)
	score += float64(classes.count() * classPoints)

	// Empty input gets no uniqueness bonus: 0 >= min(12, 0) would otherwise
	// award 10 points to nothing.
	if length > 0 && uniqueChars >= min(targetLength, length) {
		score += uniquePoints
	}

	isCommon := e.isCommon(password)
	if isCommon {
		score -= commonPenalty
	}

	if hasRun(runes, runLimit) {
		score -= runPenalty
	}

	return entity.Assessment{
		Score:       int(math.Round(clamp(score, minScore, maxScore))),
		Length:      length,
		HasLower:    classes.lower,
		HasUpper:    classes.upper,
		HasNumber:   classes.number,
		HasSymbol:   classes.symbol,
		UniqueChars: uniqueChars,
		IsCommon:    isCommon,
		EntropyBits: entropyBits(length, classes),
	}
}

func (e *Evaluator) isCommon(password string) bool {
	lower := strings.ToLower(password)

	return lo.SomeBy(e.weakWords, func(word string) bool {
		return lower == word || strings.Contains(lower, word)
	})
}

func lengthScore(length int) float64 {
	if length >= targetLength {
		return lengthPoints
	}

	return float64(length) / targetLength * lengthPoints
}

// hasRun reports whether some rune repeats at least limit times in a row.
func hasRun(runes []rune, limit int) bool {
	run := 0

	for i, r := range runes {
		if i > 0 && runes[i-1] == r {
			run++
		} else {
			run = 1
		}

		if run >= limit {
			return true
		}
	}

	return false
}

func clamp(v, low, high float64) float64 {
	return math.Max(low, math.Min(high, v))
}

func normalizeWords(words []string) []string {
	return lo.FilterMap(words, func(word string, _ int) (string, bool) {
		word = strings.ToLower(word)
		return word, word != ""
	})
}
