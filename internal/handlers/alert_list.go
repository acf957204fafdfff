package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// AlertLister defines the interface that the service must implement.
type AlertLister interface {
	ListUnread(ctx context.Context) ([]models.SnackAlertDB, error)
}

// AlertView is an expiry alert as rendered on the dashboard
// swagger:model AlertView
type AlertView struct {
	AlertID    string `json:"alert_id"`
	SnackID    string `json:"snack_id"`
	ExpireDate string `json:"expire_date"`
	DaysLeft   int    `json:"days_left"`
}

// AlertListResponse represents the unread alert listing
// swagger:model AlertListResponse
type AlertListResponse struct {
	Alerts []AlertView `json:"alerts"`
}

// NewAlertListHandler returns an HTTP handler listing unread expiry alerts.
// @Summary List unread expiry alerts
// @Description Returns unread alerts, soonest expiry first.
// @Tags alerts
// @Produce json
// @Success 200 {object} handlers.AlertListResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /alerts [get]
// @Security Bearer
func NewAlertListHandler(svc AlertLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts, err := svc.ListUnread(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		views := make([]AlertView, 0, len(alerts))
		for _, a := range alerts {
			views = append(views, AlertView{
				AlertID:    a.AlertID.String(),
				SnackID:    a.SnackID.String(),
				ExpireDate: a.ExpireDate.Format(models.DateLayout),
				DaysLeft:   a.DaysLeft,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AlertListResponse{Alerts: views})
	}
}

// RegisterAlertListHandler registers the route for listing alerts.
func RegisterAlertListHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/alerts", h)
}
