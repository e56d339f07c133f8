package server

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"unicode/utf8"

	"git.appkode.ru/pub/go/failure"

	"passmeter/internal/domain/entity"
	"passmeter/pkg/errcodes"
	"passmeter/pkg/httpx/reply"
	"passmeter/pkg/httpx/req"
	"passmeter/pkg/rest"
)

// maxInputLength bounds passwords and suggestion bases, in runes.
const maxInputLength = 256

type meterService interface {
	Check(ctx context.Context, password string) (entity.Report, error)
	CrackTime(bits float64) string
	Suggest(ctx context.Context, base string, count int) ([]string, error)
	GeneratePassword(ctx context.Context) (string, error)
}

type MeterServer struct {
	meterService meterService
}

func NewMeterServer(meterService meterService) MeterServer {
	return MeterServer{
		meterService: meterService,
	}
}

func (s MeterServer) postV1Evaluate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.EvaluateRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if utf8.RuneCountInString(request.Password) > maxInputLength {
		return failure.NewInvalidArgumentError(
			"password too long",
			failure.WithCode(errcodes.InvalidPassword),
			failure.WithDescription(fmt.Sprintf("password must be at most %d characters", maxInputLength)),
		)
	}

	report, err := s.meterService.Check(ctx, request.Password)
	if err != nil {
		return fmt.Errorf("meterService.Check: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, NewEvaluateResponse(report))

	return nil
}

func (s MeterServer) getV1CrackTime(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	bits, err := parseBits(r.URL.Query().Get("bits"))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("parseBits: %w", err),
			failure.WithCode(errcodes.InvalidEntropyBits),
			failure.WithDescription("bits must be a finite number"),
		)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CrackTimeResponse{
		Bits:      bits,
		CrackTime: s.meterService.CrackTime(bits),
	})

	return nil
}

func (s MeterServer) postV1Suggestions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SuggestionsRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if utf8.RuneCountInString(request.Base) > maxInputLength {
		return failure.NewInvalidArgumentError(
			"base too long",
			failure.WithCode(errcodes.InvalidSuggestionBase),
			failure.WithDescription(fmt.Sprintf("base must be at most %d characters", maxInputLength)),
		)
	}

	suggestions, err := s.meterService.Suggest(ctx, request.Base, request.Count)
	if err != nil {
		return fmt.Errorf("meterService.Suggest: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.SuggestionsResponse{
		Suggestions: suggestions,
	})

	return nil
}

func (s MeterServer) postV1Generate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	password, err := s.meterService.GeneratePassword(ctx)
	if err != nil {
		return fmt.Errorf("meterService.GeneratePassword: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.GenerateResponse{
		Password: password,
	})

	return nil
}

func parseBits(raw string) (float64, error) {
	bits, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	if math.IsNaN(bits) || math.IsInf(bits, 0) {
		return 0, fmt.Errorf("bits %q is not finite", raw)
	}

	return bits, nil
}
