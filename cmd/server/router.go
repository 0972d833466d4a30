package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmfreire/zapdispatch/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/campaigns", h.ListCampaigns)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Post("/start", h.StartCampaign)
			r.Post("/pause", h.PauseCampaign)
			r.Post("/resume", h.ResumeCampaign)
			r.Get("/dispatches", h.CampaignDispatches)
			r.Post("/contacts", h.ImportContacts)
		})

		r.Route("/warmup", func(r chi.Router) {
			r.Post("/start", h.StartWarmup)
			r.Post("/stop", h.StopWarmup)
			r.Get("/schedule", h.WarmupSchedule)
			r.Get("/{instance}/status", h.WarmupStatus)
		})

		r.Get("/instances/{instance}/throttle", h.ThrottleStats)
		r.Post("/instances/{instance}/throttle/reset", h.ResetThrottle)
	})

	return r
}
