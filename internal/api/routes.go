package api

import (
	"github.com/go-chi/chi/v5"
)

func NewRouter(cfg ServerConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware(cfg.Logger))
	r.Use(LoggingMiddleware(cfg.Logger))

	r.Get("/health", healthHandler(cfg))
	r.Get("/clip", clipPageHandler(cfg))
	r.Get("/api/derive", deriveHandler(cfg))
	r.Get("/api/share", shareHandler(cfg))

	r.Group(func(r chi.Router) {
		r.Use(SessionMiddleware(cfg.Sessions, cfg.Logger))

		r.Get("/", builderPageHandler(cfg))
		r.Post("/form", updateFormPageHandler(cfg))
		r.Post("/clips", addClipPageHandler(cfg))
		r.Post("/clips/{id}/remove", removeClipPageHandler(cfg))
		r.Get("/clips/export.edl", exportEDLHandler(cfg))

		r.Get("/api/form", getFormHandler(cfg))
		r.Put("/api/form", putFormHandler(cfg))
		r.Get("/api/clips", listClipsHandler(cfg))
		r.Post("/api/clips", addClipHandler(cfg))
		r.Get("/api/clips/{id}", getClipHandler(cfg))
		r.Delete("/api/clips/{id}", deleteClipHandler(cfg))
	})

	return r
}
