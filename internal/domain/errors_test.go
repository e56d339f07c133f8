package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"passmeter/internal/domain"
	"passmeter/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("boom")

	err := fmt.Errorf("meter.Suggest: %w",
		domain.WrapError(cause, errcodes.SuggestionsExhausted, "no distinct suggestion"))

	rq.True(domain.IsAppError(err))
	rq.ErrorIs(err, cause)
	rq.EqualError(err, "meter.Suggest: no distinct suggestion: boom")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.SuggestionsExhausted, code)

	var appErr *domain.AppError
	rq.ErrorAs(err, &appErr)
	rq.Equal(errcodes.SuggestionsExhausted, appErr.ErrorCode())
	rq.Equal("no distinct suggestion", appErr.ErrorMessage())

	plain := domain.NewError(errcodes.InvalidPassword, "too long")
	rq.EqualError(plain, "too long")
	rq.NoError(plain.Unwrap())

	_, ok = domain.GetCode(cause)
	rq.False(ok)
	rq.False(domain.IsAppError(cause))
}
