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

// RequestRejecter defines the interface that the service must implement.
type RequestRejecter interface {
	Reject(ctx context.Context, requestID, actorID uuid.UUID) error
}

// NewRequestRejectHandler returns an HTTP handler rejecting a request.
// @Summary Reject a snack request
// @Description Rejects a pending request. No stock is touched. Admin only.
// @Tags requests
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} handlers.RequestReviewResponse
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Failure 409 {object} handlers.ErrorResponse "Request already resolved"
// @Router /requests/{requestID}/reject [post]
// @Security Bearer
func NewRequestRejectHandler(svc RequestRejecter) http.HandlerFunc {
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

		if err := svc.Reject(r.Context(), requestID, claims.UserID); err != nil {
			switch err {
			case services.ErrRequestNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Request not found"})
			case services.ErrRequestNotPending:
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Request already resolved"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RequestReviewResponse{Message: "Request rejected"})
	}
}

// RegisterRequestRejectHandler registers the route for rejecting a request.
func RegisterRequestRejectHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/requests/{requestID}/reject", h)
}
