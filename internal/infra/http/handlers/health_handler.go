package handlers

import (
	"net/http"
	"time"

	"github.com/xavierca1/whatsapp-relay/internal/config"
)

const Version = "1.0.0"

type HealthHandler struct {
	Config    *config.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		Config:    cfg,
		StartTime: time.Now(),
	}
}

// Root (GET /) é o probe simples que o front usa
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": h.Config.ServiceName + " is running",
	})
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// Credenciais default: sem elas o front precisa mandar phoneNumberId/accessToken
	if h.Config.HasDefaultCredentials() {
		deps["whatsapp_credentials"] = "configured"
	} else {
		deps["whatsapp_credentials"] = "not configured"
	}
	deps["whatsapp_api"] = h.Config.GraphAPIURL

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       "healthy",
		Version:      Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
