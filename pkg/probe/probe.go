package probe

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"passmeter/pkg/contextx"
	"passmeter/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Check reports whether a dependency is ready to serve traffic.
type Check func(context.Context) error

type state struct {
	Options

	Error string `json:"error,omitempty"`
}

type handler struct {
	options   Options
	readiness []Check
}

// NewHandler serves /healthz, which answers as long as the process runs,
// and /ready, which also runs every readiness check.
func NewHandler(options Options, readiness ...Check) http.Handler {
	h := handler{
		options:   options,
		readiness: readiness,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.handlerHealthz)
	mux.HandleFunc("GET /ready", h.handlerReady)

	return mux
}

func (h handler) handlerHealthz(w http.ResponseWriter, r *http.Request) {
	h.write(r.Context(), w, http.StatusOK, state{Options: h.options})
}

func (h handler) handlerReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	for i, check := range h.readiness {
		if err := check(ctx); err != nil {
			logger(ctx).Warn("readiness check failed", logx.Error(err))

			h.write(ctx, w, http.StatusServiceUnavailable, state{
				Options: h.options,
				Error:   fmt.Sprintf("check %d: %s", i, err),
			})

			return
		}
	}

	h.write(ctx, w, http.StatusOK, state{Options: h.options})
}

func (h handler) write(ctx context.Context, w http.ResponseWriter, statusCode int, body state) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}
