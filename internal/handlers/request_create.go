package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/snackops/snackledger/internal/logger"
)

// RequestCreator defines the interface that the service must implement.
type RequestCreator interface {
	Create(ctx context.Context, actorID uuid.UUID, name string, quantity int, reason, url *string) (uuid.UUID, error)
}

// RequestCreateRequest represents the JSON body for filing a snack request
// swagger:model RequestCreateRequest
type RequestCreateRequest struct {
	// Requested snack name
	// required: true
	// default: Cola
	Name string `json:"name"`

	// Requested amount, positive
	// required: true
	// default: 5
	Quantity int `json:"quantity"`

	// Optional free-form reason
	Reason *string `json:"reason,omitempty"`

	// Optional product link
	URL *string `json:"url,omitempty"`
}

// RequestCreateResponse represents a successfully filed request
// swagger:model RequestCreateResponse
type RequestCreateResponse struct {
	RequestID string `json:"request_id"`
	Message   string `json:"message"`
}

// NewRequestCreateHandler returns an HTTP handler filing a snack request.
// @Summary File a snack request
// @Description Creates a pending request for a snack to be stocked.
// @Tags requests
// @Accept json
// @Produce json
// @Param requestCreateRequest body handlers.RequestCreateRequest true "Request to file"
// @Success 201 {object} handlers.RequestCreateResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /requests [post]
// @Security Bearer
func NewRequestCreateHandler(svc RequestCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req RequestCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Quantity <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request"})
			return
		}

		requestID, err := svc.Create(r.Context(), claims.UserID, req.Name, req.Quantity, req.Reason, req.URL)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RequestCreateResponse{
			RequestID: requestID.String(),
			Message:   "Request filed",
		})
	}
}

// RegisterRequestCreateHandler registers the route for filing a request.
func RegisterRequestCreateHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/requests", h)
}
