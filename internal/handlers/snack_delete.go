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

// SnackDeleter defines the interface that the service must implement.
type SnackDeleter interface {
	Delete(ctx context.Context, actorID, snackID uuid.UUID) error
}

// SnackDeleteResponse represents a successful snack removal
// swagger:model SnackDeleteResponse
type SnackDeleteResponse struct {
	Message string `json:"message"`
}

// NewSnackDeleteHandler returns an HTTP handler removing a snack.
// @Summary Delete a snack
// @Description Removes a snack from the inventory. Its history rows survive. Admin only.
// @Tags snacks
// @Produce json
// @Param snackID path string true "Snack ID"
// @Success 200 {object} handlers.SnackDeleteResponse
// @Failure 404 {object} handlers.ErrorResponse "Snack not found"
// @Router /snacks/{snackID} [delete]
// @Security Bearer
func NewSnackDeleteHandler(svc SnackDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), claims.UserID, snackID); err != nil {
			switch err {
			case services.ErrSnackNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Snack not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SnackDeleteResponse{Message: "Snack deleted"})
	}
}

// RegisterSnackDeleteHandler registers the route for removing a snack.
func RegisterSnackDeleteHandler(r chi.Router, h http.HandlerFunc) {
	r.Delete("/snacks/{snackID}", h)
}
