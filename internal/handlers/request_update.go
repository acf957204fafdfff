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

// RequestUpdater defines the interface that the service must implement.
type RequestUpdater interface {
	Update(ctx context.Context, actorID, requestID uuid.UUID, name string, quantity int, reason, url *string) error
}

// RequestUpdateResponse represents a successful request edit
// swagger:model RequestUpdateResponse
type RequestUpdateResponse struct {
	Message string `json:"message"`
}

// NewRequestUpdateHandler returns an HTTP handler editing a snack request.
// @Summary Edit a snack request
// @Description Rewrites a request's fields and resets it to pending. Only the requester may edit.
// @Tags requests
// @Accept json
// @Produce json
// @Param requestID path string true "Request ID"
// @Param requestUpdateRequest body handlers.RequestCreateRequest true "New request values"
// @Success 200 {object} handlers.RequestUpdateResponse
// @Failure 403 {object} handlers.ErrorResponse "Not the request owner"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Router /requests/{requestID} [put]
// @Security Bearer
func NewRequestUpdateHandler(svc RequestUpdater) http.HandlerFunc {
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

		var req RequestCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Quantity <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request"})
			return
		}

		if err := svc.Update(r.Context(), claims.UserID, requestID, req.Name, req.Quantity, req.Reason, req.URL); err != nil {
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
		json.NewEncoder(w).Encode(RequestUpdateResponse{Message: "Request updated"})
	}
}

// RegisterRequestUpdateHandler registers the route for editing a request.
func RegisterRequestUpdateHandler(r chi.Router, h http.HandlerFunc) {
	r.Put("/requests/{requestID}", h)
}
