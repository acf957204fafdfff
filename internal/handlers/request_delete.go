package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
	"github.com/snackops/snackledger/internal/services"
)

// RequestDeleter defines the interface that the service must implement.
type RequestDeleter interface {
	Delete(ctx context.Context, requestID, actorID uuid.UUID, admin bool) error
}

// RequestDeleteResponse represents a successful request removal
// swagger:model RequestDeleteResponse
type RequestDeleteResponse struct {
	Message string `json:"message"`
}

// NewRequestDeleteHandler returns an HTTP handler removing a snack request.
// @Summary Delete a snack request
// @Description Removes a request. Admins may delete any request, requesters only their own.
// @Tags requests
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} handlers.RequestDeleteResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the request owner"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Router /requests/{requestID} [delete]
// @Security Bearer
func NewRequestDeleteHandler(svc RequestDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request id"})
			return
		}

		admin := claims.Role == models.RoleAdmin
		if err := svc.Delete(r.Context(), requestID, claims.UserID, admin); err != nil {
			switch err {
			case services.ErrRequestNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Request not found"})
			case services.ErrNotRequestOwner:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Not the request owner"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RequestDeleteResponse{Message: "Request deleted"})
	}
}

// RegisterRequestDeleteHandler registers the route for removing a request.
func RegisterRequestDeleteHandler(r chi.Router, h http.HandlerFunc) {
	r.Delete("/requests/{requestID}", h)
}
