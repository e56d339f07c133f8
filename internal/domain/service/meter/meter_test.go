package meter_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"passmeter/internal/domain"
	"passmeter/internal/domain/entity"
	"passmeter/internal/domain/service/meter"
	"passmeter/internal/domain/service/strength"
	"passmeter/internal/domain/service/suggest"
	"passmeter/pkg/errcodes"
	"passmeter/pkg/tests"
)

type evaluatorMock struct {
	calls        atomic.Int32
	EvaluateFunc func(password string) entity.Assessment
}

func (m *evaluatorMock) Evaluate(password string) entity.Assessment {
	m.calls.Add(1)
	return m.EvaluateFunc(password)
}

type generatorMock struct {
	GenerateFunc func(base string, count int) ([]string, error)
}

func (m *generatorMock) Generate(base string, count int) ([]string, error) {
	return m.GenerateFunc(base, count)
}

type referenceMock struct{}

func (referenceMock) Estimate(password string) *entity.Reference {
	return &entity.Reference{Score: 2, Entropy: float64(len(password)), CrackTime: "3 hours"}
}

func fixedGenerator(t *testing.T, expectedBase string) *generatorMock {
	t.Helper()

	return &generatorMock{
		GenerateFunc: func(base string, count int) ([]string, error) {
			require.Equal(t, expectedBase, base)

			out := make([]string, count)
			for i := range out {
				out[i] = "Suggested#" + string(rune('0'+i)) + "xx"
			}

			return out, nil
		},
	}
}

func TestServiceCheck(t *testing.T) {
	testCases := []struct {
		name                string
		password            string
		score               int
		expectedSuggestions []string
	}{
		{
			name:                "Weak password gets suggestions",
			password:            "abc",
			score:               30,
			expectedSuggestions: []string{"Suggested#0xx", "Suggested#1xx", "Suggested#2xx"},
		},
		{
			name:                "Threshold is exclusive",
			password:            "Abcdefgh",
			score:               60,
			expectedSuggestions: nil,
		},
		{
			name:                "Strong password gets none",
			password:            "Tr0ub4dor&3XYZ",
			score:               90,
			expectedSuggestions: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			evaluator := &evaluatorMock{
				EvaluateFunc: func(string) entity.Assessment {
					return entity.Assessment{Score: tc.score, EntropyBits: 40, Length: len(tc.password)}
				},
			}

			svc := meter.NewService(evaluator, fixedGenerator(t, tc.password)).
				WithReference(referenceMock{})

			report, err := svc.Check(context.Background(), tc.password)
			rq.NoError(err)

			rq.Equal(tc.score, report.Score)
			rq.Equal("35 years", report.CrackTime)
			rq.Equal(tc.expectedSuggestions, report.Suggestions)
			rq.Equal(&entity.Reference{Score: 2, Entropy: float64(len(tc.password)), CrackTime: "3 hours"}, report.Reference)
		})
	}
}

func TestServiceCheckCachesReport(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	evaluator := &evaluatorMock{
		EvaluateFunc: strength.Evaluate,
	}

	generated := 0
	generator := &generatorMock{
		GenerateFunc: func(_ string, count int) ([]string, error) {
			generated++

			out := make([]string, count)
			for i := range out {
				out[i] = "Fresh#" + string(rune('a'+generated)) + string(rune('a'+i)) + "1234"
			}

			return out, nil
		},
	}

	registry := prometheus.NewRegistry()

	svc := meter.NewService(evaluator, generator).
		WithMetrics(meter.NewMetrics(registry))

	first, err := svc.Check(ctx, "password")
	rq.NoError(err)

	second, err := svc.Check(ctx, "password")
	rq.NoError(err)

	rq.Equal(int32(1), evaluator.calls.Load())
	rq.Equal(first.Assessment, second.Assessment)
	rq.NotEqual(first.Suggestions, second.Suggestions)
	rq.Nil(first.Reference)

	_, err = svc.Check(ctx, "Password")
	rq.NoError(err)
	rq.Equal(int32(2), evaluator.calls.Load())

	rq.Equal(map[string]float64{
		"passmeter_checks_total{cache=hit}":     1,
		"passmeter_checks_total{cache=miss}":    2,
		"passmeter_suggestions_total":           9,
		"passmeter_score_count":                 3,
		"passmeter_suggestions_exhausted_total": 0,
	}, gatherCounters(t, registry))
}

func TestServiceCheckWithoutCache(t *testing.T) {
	rq := require.New(t)

	evaluator := &evaluatorMock{EvaluateFunc: strength.Evaluate}

	svc := meter.NewService(evaluator, suggest.NewGenerator()).
		WithCacheTTL(0)

	for range 3 {
		_, err := svc.Check(context.Background(), "Tr0ub4dor&3XYZ")
		rq.NoError(err)
	}

	rq.Equal(int32(3), evaluator.calls.Load())
}

func TestServiceCheckCacheExpires(t *testing.T) {
	rq := require.New(t)

	evaluator := &evaluatorMock{EvaluateFunc: strength.Evaluate}

	svc := meter.NewService(evaluator, suggest.NewGenerator()).
		WithCacheTTL(50 * time.Millisecond)

	_, err := svc.Check(context.Background(), "Tr0ub4dor&3XYZ")
	rq.NoError(err)

	time.Sleep(100 * time.Millisecond)

	_, err = svc.Check(context.Background(), "Tr0ub4dor&3XYZ")
	rq.NoError(err)

	rq.Equal(int32(2), evaluator.calls.Load())
}

func TestServiceSuggestExhausted(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()

	generator := suggest.NewGenerator(
		suggest.WithRandomizer(tests.NewConstantRandomizer(0.9)),
		suggest.WithMaxAttempts(2),
	)

	svc := meter.NewService(strength.NewEvaluator(), generator).
		WithMetrics(meter.NewMetrics(registry))

	_, err := svc.Suggest(context.Background(), "Abcdefghij1!", 1)
	rq.ErrorIs(err, suggest.ErrSuggestionsExhausted)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.SuggestionsExhausted, code)

	_, err = svc.Check(context.Background(), "Abcdefghij1!")
	rq.NoError(err, "score is above the threshold, no suggestions needed")

	svc.WithSuggestionThreshold(101)

	_, err = svc.Check(context.Background(), "Abcdefghij1!")
	rq.ErrorIs(err, suggest.ErrSuggestionsExhausted)

	rq.Equal(2.0, gatherCounters(t, registry)["passmeter_suggestions_exhausted_total"])
}

func TestServiceGeneratePassword(t *testing.T) {
	rq := require.New(t)

	svc := meter.NewService(strength.NewEvaluator(), suggest.NewGenerator())

	password, err := svc.GeneratePassword(context.Background())
	rq.NoError(err)
	rq.GreaterOrEqual(len(password), 12)

	suggestions, err := svc.Suggest(context.Background(), "hello", 5)
	rq.NoError(err)
	rq.Len(suggestions, 5)

	rq.Equal("Centuries", svc.CrackTime(200))
	rq.Equal("Instant", svc.CrackTime(0))
}

func TestServiceWithSuggestionCount(t *testing.T) {
	rq := require.New(t)

	svc := meter.NewService(strength.NewEvaluator(), suggest.NewGenerator()).
		WithSuggestionCount(5)

	report, err := svc.Check(context.Background(), "")
	rq.NoError(err)
	rq.Equal(0, report.Score)
	rq.Len(report.Suggestions, 5)
}

func TestServiceGeneratorError(t *testing.T) {
	rq := require.New(t)

	boom := errors.New("boom")

	svc := meter.NewService(strength.NewEvaluator(), &generatorMock{
		GenerateFunc: func(string, int) ([]string, error) { return nil, boom },
	})

	_, err := svc.GeneratePassword(context.Background())
	rq.ErrorIs(err, boom)
	rq.True(domain.IsAppError(err))
}

// gatherCounters flattens counters and histogram sample counts into
// name{label=value} keys.
func gatherCounters(t *testing.T, registry *prometheus.Registry) map[string]float64 {
	t.Helper()

	families, err := registry.Gather()
	require.NoError(t, err)

	out := map[string]float64{}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			key := family.GetName()

			for _, label := range metric.GetLabel() {
				key += "{" + label.GetName() + "=" + label.GetValue() + "}"
			}

			switch {
			case metric.GetCounter() != nil:
				out[key] = metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				out[key+"_count"] = float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	return out
}
