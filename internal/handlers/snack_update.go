package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/services"
)

// SnackEditor defines the interface that the service must implement.
type SnackEditor interface {
	Edit(ctx context.Context, actorID, snackID uuid.UUID, name string, quantity int, expireDate *time.Time) error
}

// SnackUpdateRequest represents the JSON body for editing a snack
// swagger:model SnackUpdateRequest
type SnackUpdateRequest struct {
	// Snack name, unique across the inventory
	// required: true
	Name string `json:"name"`

	// New quantity, never negative
	// required: true
	Quantity int `json:"quantity"`

	// Optional expiry date in YYYY-MM-DD, empty clears it
	ExpireDate string `json:"expire_date,omitempty"`
}

// SnackUpdateResponse represents a successful snack edit
// swagger:model SnackUpdateResponse
type SnackUpdateResponse struct {
	Message string `json:"message"`
}

// NewSnackUpdateHandler returns an HTTP handler editing a snack.
// @Summary Edit a snack
// @Description Rewrites a snack's name, quantity and expiry date. Admin only.
// @Tags snacks
// @Accept json
// @Produce json
// @Param snackID path string true "Snack ID"
// @Param snackUpdateRequest body handlers.SnackUpdateRequest true "New snack values"
// @Success 200 {object} handlers.SnackUpdateResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / name already taken"
// @Failure 404 {object} handlers.ErrorResponse "Snack not found"
// @Router /snacks/{snackID} [put]
// @Security Bearer
func NewSnackUpdateHandler(svc SnackEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		snackID, err := uuid.Parse(chi.URLParam(r, "snackID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid snack id"})
			return
		}

		var req SnackUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Quantity < 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request"})
			return
		}

		expireDate, err := parseExpireDate(req.ExpireDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid expire_date, want YYYY-MM-DD"})
			return
		}

		if err := svc.Edit(r.Context(), claims.UserID, snackID, req.Name, req.Quantity, expireDate); err != nil {
			switch err {
			case services.ErrSnackNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Snack not found"})
			case services.ErrSnackAlreadyExists:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Snack name already taken"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SnackUpdateResponse{Message: "Snack updated"})
	}
}

// RegisterSnackUpdateHandler registers the route for editing a snack.
func RegisterSnackUpdateHandler(r chi.Router, h http.HandlerFunc) {
	r.Put("/snacks/{snackID}", h)
}
