package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"passmeter/pkg/logx"
	"passmeter/pkg/middlewarex"
)

type RouterOptions struct {
	LogFieldMaxLen int
	APIToken       string
}

// NewRouter mounts the API behind the standard middleware chain. Request
// and response dumps are masked before they reach the log.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, opts.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, opts.LogFieldMaxLen),
		middlewarex.BearerAuth(opts.APIToken),
	)

	s.RegisterRoutes(r)

	return r
}
