package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"passmeter/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/evaluate", handler(s.postV1Evaluate))
		r.Get("/crack-time", handler(s.getV1CrackTime))
		r.Post("/suggestions", handler(s.postV1Suggestions))
		r.Post("/generate", handler(s.postV1Generate))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
