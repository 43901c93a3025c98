package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the health check response
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// default: ok
	Status string `json:"status"`
}

// BannerResponse represents the service banner returned at the root path
// swagger:model BannerResponse
type BannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Health check
// @Tags general
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}
}

// NewBannerHandler returns the service banner handler for the root path.
// @Summary Service banner
// @Tags general
// @Produce json
// @Success 200 {object} handlers.BannerResponse "Service information"
// @Router / [get]
func NewBannerHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BannerResponse{
			Message: "MapMyWorld API",
			Version: version,
			Docs:    "/swagger/index.html",
		})
	}
}
