package main

import (
	"context"
	"fmt"

	"passmeter/internal/domain/service/meter"
	"passmeter/internal/domain/service/strength"
	"passmeter/internal/domain/service/suggest"
	"passmeter/internal/infrastructure/zxcvbn"
	"passmeter/internal/server"
	"passmeter/pkg/meterclient"
	"passmeter/pkg/randx"
	"passmeter/pkg/rest"
)

// backend is satisfied by both the in-process service and the HTTP client,
// so every command prints the same wire types.
type backend interface {
	Evaluate(ctx context.Context, password string) (rest.EvaluateResponse, error)
	CrackTime(ctx context.Context, bits float64) (rest.CrackTimeResponse, error)
	Suggest(ctx context.Context, base string, count int) ([]string, error)
	Generate(ctx context.Context) (string, error)
}

var _ backend = (*meterclient.Client)(nil)

type localBackend struct {
	svc *meter.Service
}

type localOptions struct {
	seed      uint64
	seeded    bool
	reference bool
}

func newLocalBackend(opts localOptions) localBackend {
	random := randx.NewRandomizer()
	if opts.seeded {
		random = randx.NewSeededRandomizer(opts.seed)
	}

	svc := meter.NewService(
		strength.NewEvaluator(),
		suggest.NewGenerator(suggest.WithRandomizer(random)),
	).
		WithCacheTTL(0)

	if opts.reference {
		svc.WithReference(zxcvbn.NewEstimator("passcheck"))
	}

	return localBackend{svc: svc}
}

func (b localBackend) Evaluate(ctx context.Context, password string) (rest.EvaluateResponse, error) {
	report, err := b.svc.Check(ctx, password)
	if err != nil {
		return rest.EvaluateResponse{}, fmt.Errorf("svc.Check: %w", err)
	}

	return server.NewEvaluateResponse(report), nil
}

func (b localBackend) CrackTime(_ context.Context, bits float64) (rest.CrackTimeResponse, error) {
	return rest.CrackTimeResponse{
		Bits:      bits,
		CrackTime: b.svc.CrackTime(bits),
	}, nil
}

func (b localBackend) Suggest(ctx context.Context, base string, count int) ([]string, error) {
	suggestions, err := b.svc.Suggest(ctx, base, count)
	if err != nil {
		return nil, fmt.Errorf("svc.Suggest: %w", err)
	}

	return suggestions, nil
}

func (b localBackend) Generate(ctx context.Context) (string, error) {
	password, err := b.svc.GeneratePassword(ctx)
	if err != nil {
		return "", fmt.Errorf("svc.GeneratePassword: %w", err)
	}

	return password, nil
}
