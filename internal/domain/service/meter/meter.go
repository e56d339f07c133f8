package meter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/zeebo/xxh3"

	"passmeter/internal/domain"
	"passmeter/internal/domain/entity"
	"passmeter/internal/domain/service/strength"
	"passmeter/pkg/contextx"
	"passmeter/pkg/errcodes"
)

const (
	defaultSuggestionThreshold = 60
	defaultSuggestionCount     = 3
	defaultCacheTTL            = 30 * time.Second
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Evaluator interface {
	Evaluate(password string) entity.Assessment
}

type Generator interface {
	Generate(base string, count int) ([]string, error)
}

type ReferenceEstimator interface {
	Estimate(password string) *entity.Reference
}

// Service answers the questions a password form asks on every keystroke.
// It is safe for concurrent use.
type Service struct {
	evaluator           Evaluator
	generator           Generator
	reference           ReferenceEstimator
	metrics             *Metrics
	reports             *cache.Cache
	suggestionThreshold int
	suggestionCount     int
}

func NewService(
	evaluator Evaluator,
	generator Generator,
) *Service {
	return &Service{
		evaluator:           evaluator,
		generator:           generator,
		reports:             cache.New(defaultCacheTTL, 2*defaultCacheTTL),
		suggestionThreshold: defaultSuggestionThreshold,
		suggestionCount:     defaultSuggestionCount,
	}
}

// WithSuggestionThreshold sets the score below which Check attaches
// suggestions.
func (s *Service) WithSuggestionThreshold(score int) *Service {
	s.suggestionThreshold = score
	return s
}

func (s *Service) WithSuggestionCount(count int) *Service {
	s.suggestionCount = count
	return s
}

// WithCacheTTL sets how long a report stays cached. Zero or less disables
// the cache.
func (s *Service) WithCacheTTL(ttl time.Duration) *Service {
	if ttl <= 0 {
		s.reports = nil
		return s
	}

	s.reports = cache.New(ttl, 2*ttl)

	return s
}

func (s *Service) WithReference(reference ReferenceEstimator) *Service {
	s.reference = reference
	return s
}

func (s *Service) WithMetrics(metrics *Metrics) *Service {
	s.metrics = metrics
	return s
}

// Check builds the full report for password. The deterministic part is
// cached; suggestions are drawn fresh on every call.
func (s *Service) Check(ctx context.Context, password string) (entity.Report, error) {
	report, hit := s.report(password)

	s.metrics.observeCheck(report.Score, hit)

	if report.Score < s.suggestionThreshold {
		suggestions, err := s.suggest(password, s.suggestionCount)
		if err != nil {
			return entity.Report{}, fmt.Errorf("s.suggest: %w", err)
		}

		report.Suggestions = suggestions
	}

	logger(ctx).Debug(
		"password checked",
		slog.Int("score", report.Score),
		slog.Int("length", report.Length),
		slog.Bool("cache-hit", hit),
		slog.Int("suggestions", len(report.Suggestions)),
	)

	return report, nil
}

// CrackTime labels the brute-force time for an entropy value.
func (s *Service) CrackTime(bits float64) string {
	return strength.TimeToCrackBits(bits)
}

func (s *Service) Suggest(ctx context.Context, base string, count int) ([]string, error) {
	suggestions, err := s.suggest(base, count)
	if err != nil {
		return nil, fmt.Errorf("s.suggest: %w", err)
	}

	logger(ctx).Debug("suggestions generated", slog.Int("count", len(suggestions)))

	return suggestions, nil
}

// GeneratePassword returns one strong password seeded from the fallback
// seeds.
func (s *Service) GeneratePassword(ctx context.Context) (string, error) {
	suggestions, err := s.Suggest(ctx, "", 1)
	if err != nil {
		return "", fmt.Errorf("s.Suggest: %w", err)
	}

	return suggestions[0], nil
}

func (s *Service) report(password string) (entity.Report, bool) {
	key := cacheKey(password)

	if s.reports != nil {
		if cached, ok := s.reports.Get(key); ok {
			if report, ok := cached.(entity.Report); ok {
				return report, true
			}
		}
	}

	assessment := s.evaluator.Evaluate(password)

	report := entity.Report{
		Assessment: assessment,
		CrackTime:  strength.TimeToCrackBits(float64(assessment.EntropyBits)),
	}

	if s.reference != nil {
		report.Reference = s.reference.Estimate(password)
	}

	if s.reports != nil {
		s.reports.SetDefault(key, report)
	}

	return report, false
}

func (s *Service) suggest(base string, count int) ([]string, error) {
	suggestions, err := s.generator.Generate(base, count)
	if err != nil {
		s.metrics.observeExhausted()

		return nil, domain.WrapError(err, errcodes.SuggestionsExhausted, "could not generate distinct suggestions")
	}

	s.metrics.observeSuggestions(len(suggestions))

	return suggestions, nil
}

// cacheKey keeps plain passwords out of the cache index.
func cacheKey(password string) string {
	h := xxh3.HashString128(password)
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}
