package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"passmeter/internal/config"
	"passmeter/internal/domain/service/meter"
	"passmeter/internal/domain/service/strength"
	"passmeter/internal/domain/service/suggest"
	"passmeter/internal/infrastructure/zxcvbn"
	"passmeter/internal/server"
	"passmeter/pkg/application/modules"
	"passmeter/pkg/contextx"
	"passmeter/pkg/logx"
	"passmeter/pkg/metrics"
	"passmeter/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const selfCheckPassword = "Tr0ub4dor&3XYZ"

var errSelfCheck = errors.New("evaluator self-check failed")

// Run serves the API, probe and metrics listeners until ctx is done.
func Run(ctx context.Context, cfg config.Config) error {
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	registry := metrics.NewRegistry()
	evaluator := newEvaluator(cfg.Meter)
	meterService := newMeterService(cfg.Meter, evaluator).
		WithMetrics(meter.NewMetrics(registry))

	router := server.NewRouter(
		server.NewServer(server.NewMeterServer(meterService)),
		server.RouterOptions{
			LogFieldMaxLen: cfg.HTTP.LogFieldMaxLen,
			APIToken:       cfg.HTTP.APIToken,
		},
	)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		Name:            "api",
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, modules.NewServer(ctx, cfg.HTTP.ListenAddress, router, cfg.HTTP.ReadHeaderTimeout))

	modules.ProbeServer{
		Name:            cfg.App.Name,
		Version:         cfg.App.Version,
		ListenAddress:   cfg.Probe.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		Readiness:       []probe.Check{selfCheck(evaluator)},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress:   cfg.Metrics.ListenAddress,
		Gatherer:        registry,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g)

	logger(ctx).Info("application started")

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	logger(ctx).Info("application stopped")

	return nil
}

// NewMeterService builds the meter service from configuration. The CLI
// uses it for local evaluation too.
func NewMeterService(cfg config.Meter) *meter.Service {
	return newMeterService(cfg, newEvaluator(cfg))
}

func newEvaluator(cfg config.Meter) *strength.Evaluator {
	var opts []strength.Option
	if len(cfg.WeakWords) > 0 {
		opts = append(opts, strength.WithWeakWords(cfg.WeakWords...))
	}

	return strength.NewEvaluator(opts...)
}

func newMeterService(cfg config.Meter, evaluator meter.Evaluator) *meter.Service {
	var generatorOpts []suggest.Option
	if cfg.MaxAttempts > 0 {
		generatorOpts = append(generatorOpts, suggest.WithMaxAttempts(cfg.MaxAttempts))
	}

	svc := meter.NewService(
		evaluator,
		suggest.NewGenerator(generatorOpts...),
	).
		WithSuggestionThreshold(cfg.SuggestionThreshold).
		WithSuggestionCount(cfg.SuggestionCount).
		WithCacheTTL(cfg.CacheTTL)

	if cfg.ReferenceEnabled {
		svc.WithReference(zxcvbn.NewEstimator("passmeter"))
	}

	return svc
}

// selfCheck runs the evaluator directly so readiness traffic stays out of
// the service metrics and cache.
func selfCheck(evaluator meter.Evaluator) probe.Check {
	return func(context.Context) error {
		assessment := evaluator.Evaluate(selfCheckPassword)
		crackTime := strength.TimeToCrackBits(float64(assessment.EntropyBits))

		if assessment.Score < 0 || assessment.Score > 100 || crackTime == "" {
			return fmt.Errorf("%w: score %d, crack time %q", errSelfCheck, assessment.Score, crackTime)
		}

		return nil
	}
}
