package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func Router(h *Handler, lg zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(lg))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondData(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/time-slots", func(r chi.Router) {
			r.Get("/", h.Slots.List)
			r.Get("/available", h.Slots.ListAvailable)
			r.Post("/", h.Slots.Create)
			r.Post("/generate", h.Slots.Generate)
			r.Get("/{id}", h.Slots.Get)
			r.Put("/{id}", h.Slots.Update)
			r.Delete("/{id}", h.Slots.Delete)
			r.Patch("/{id}/increment-orders", h.Slots.IncrementOrders)
		})

		r.Route("/operating-hours", func(r chi.Router) {
			r.Get("/", h.Hours.List)
			r.Post("/", h.Hours.Create)
			r.Put("/{id}", h.Hours.Update)
			r.Delete("/{id}", h.Hours.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.Orders.List)
			r.Post("/", h.Orders.Create)
			r.Get("/{id}", h.Orders.Get)
			r.Patch("/{id}/status", h.Orders.UpdateStatus)
		})

		r.Route("/cart/{customerID}", func(r chi.Router) {
			r.Get("/", h.Carts.Get)
			r.Post("/items", h.Carts.SetItem)
			r.Delete("/", h.Carts.Clear)
		})
	})

	return r
}

func requestLogger(lg zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			lg.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("http_request")
		})
	}
}
