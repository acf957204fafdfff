package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// RequestLister defines the interface that the service must implement.
type RequestLister interface {
	List(ctx context.Context) ([]models.SnackRequestRow, error)
}

// RequestView is a snack request as rendered on the request page
// swagger:model RequestView
type RequestView struct {
	RequestID     string  `json:"request_id"`
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	Reason        *string `json:"reason,omitempty"`
	URL           *string `json:"url,omitempty"`
	Status        string  `json:"status"`
	RequesterName string  `json:"requester_name"`
}

// RequestListResponse represents the request listing
// swagger:model RequestListResponse
type RequestListResponse struct {
	Requests []RequestView `json:"requests"`
}

// NewRequestListHandler returns an HTTP handler listing snack requests.
// @Summary List snack requests
// @Description Returns every request with its requester's name, newest first.
// @Tags requests
// @Produce json
// @Success 200 {object} handlers.RequestListResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /requests [get]
// @Security Bearer
func NewRequestListHandler(svc RequestLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		views := make([]RequestView, 0, len(rows))
		for _, row := range rows {
			views = append(views, RequestView{
				RequestID:     row.RequestID.String(),
				Name:          row.Name,
				Quantity:      row.Quantity,
				Reason:        row.Reason,
				URL:           row.URL,
				Status:        row.Status,
				RequesterName: row.RequesterName,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RequestListResponse{Requests: views})
	}
}

// RegisterRequestListHandler registers the route for listing requests.
func RegisterRequestListHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/requests", h)
}
