package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"pharmazen/internal/model"

	"github.com/rs/zerolog"
)

const healthCheckTimeout = 2 * time.Second

// SuccessResponse wraps successful payloads.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// StatusResponse is returned by the banner and health endpoints.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// headers already sent
		return
	}
}

// writeSuccess writes data inside the success envelope.
func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: data})
}

// writeError writes an error envelope with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, err error, logger zerolog.Logger) {
	event := logger.Error()
	if status < http.StatusInternalServerError {
		event = logger.Warn()
	}
	event.Err(err).Str("error_message", message).Int("status", status).Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{Success: false, Error: message})
}

// Root handles GET / with a liveness banner.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "PharmaZen API is running"})
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness together with catalog store reachability.
type HealthHandler struct {
	store  Pinger
	logger zerolog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store Pinger, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger.With().Str("handler", "health").Logger(),
	}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "catalog store unavailable", err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Success: true, Message: "healthy"})
}

// NotFound handles requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, model.ErrorResponse{Success: false, Error: "Route not found"})
}

// MethodNotAllowed handles known routes requested with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{Success: false, Error: "method not allowed"})
}
