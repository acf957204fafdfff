package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/services"
)

// AlertMarker defines the interface that the service must implement.
type AlertMarker interface {
	MarkRead(ctx context.Context, alertID uuid.UUID) error
}

// AlertReadResponse represents a successfully acknowledged alert
// swagger:model AlertReadResponse
type AlertReadResponse struct {
	Message string `json:"message"`
}

// NewAlertReadHandler returns an HTTP handler acknowledging an alert.
// @Summary Mark an alert read
// @Description Flags one expiry alert as read so it leaves the dashboard.
// @Tags alerts
// @Produce json
// @Param alertID path string true "Alert ID"
// @Success 200 {object} handlers.AlertReadResponse
// @Failure 404 {object} handlers.ErrorResponse "Alert not found"
// @Router /alerts/{alertID}/read [post]
// @Security Bearer
func NewAlertReadHandler(svc AlertMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alertID, err := uuid.Parse(chi.URLParam(r, "alertID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid alert id"})
			return
		}

		if err := svc.MarkRead(r.Context(), alertID); err != nil {
			switch err {
			case services.ErrAlertNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Alert not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AlertReadResponse{Message: "Alert marked read"})
	}
}

// RegisterAlertReadHandler registers the route for acknowledging an alert.
func RegisterAlertReadHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/alerts/{alertID}/read", h)
}
