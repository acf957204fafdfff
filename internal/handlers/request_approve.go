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

// RequestApprover defines the interface that the service must implement.
type RequestApprover interface {
	Approve(ctx context.Context, requestID, actorID uuid.UUID) error
}

// RequestReviewResponse represents a resolved request
// swagger:model RequestReviewResponse
type RequestReviewResponse struct {
	Message string `json:"message"`
}

// NewRequestApproveHandler returns an HTTP handler approving a request.
// @Summary Approve a snack request
// @Description Approves a pending request and stocks the requested snack. Admin only.
// @Tags requests
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} handlers.RequestReviewResponse
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Failure 409 {object} handlers.ErrorResponse "Request already resolved"
// @Router /requests/{requestID}/approve [post]
// @Security Bearer
func NewRequestApproveHandler(svc RequestApprover) http.HandlerFunc {
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

		if err := svc.Approve(r.Context(), requestID, claims.UserID); err != nil {
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
		json.NewEncoder(w).Encode(RequestReviewResponse{Message: "Request approved"})
	}
}

// RegisterRequestApproveHandler registers the route for approving a request.
func RegisterRequestApproveHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/requests/{requestID}/approve", h)
}
