package web

import (
	"github.com/go-chi/chi/v5"
)

func (s *Server) setupRoutes() {
	h := NewHandler(s.config, s.rec)

	s.router.Get("/api/v1/health", HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/palette", h.Palette)
		r.Get("/tones/{tone}/products", h.Products)
		r.Get("/tones/{tone}/swatch.png", h.ToneSwatch)
		r.Post("/analyze", h.Analyze)
	})
}
