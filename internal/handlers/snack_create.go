package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
	"github.com/snackops/snackledger/internal/services"
)

// SnackCreator defines the interface that the service must implement.
type SnackCreator interface {
	Create(ctx context.Context, actorID uuid.UUID, name string, quantity int, expireDate *time.Time) (uuid.UUID, error)
}

// SnackCreateRequest represents the JSON body for stocking a new snack
// swagger:model SnackCreateRequest
type SnackCreateRequest struct {
	// Snack name, unique across the inventory
	// required: true
	// default: Chips
	Name string `json:"name"`

	// Initial quantity, never negative
	// required: true
	// default: 3
	Quantity int `json:"quantity"`

	// Optional expiry date in YYYY-MM-DD
	ExpireDate string `json:"expire_date,omitempty"`
}

// SnackCreateResponse represents a successful snack creation
// swagger:model SnackCreateResponse
type SnackCreateResponse struct {
	SnackID string `json:"snack_id"`
	Message string `json:"message"`
}

// parseExpireDate parses an optional YYYY-MM-DD field.
func parseExpireDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(models.DateLayout, value, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// NewSnackCreateHandler returns an HTTP handler stocking a brand-new snack.
// @Summary Stock a new snack
// @Description Creates a snack with an initial quantity and an optional expiry date. Admin only.
// @Tags snacks
// @Accept json
// @Produce json
// @Param snackCreateRequest body handlers.SnackCreateRequest true "Snack to stock"
// @Success 201 {object} handlers.SnackCreateResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / name already taken"
// @Router /snacks [post]
// @Security Bearer
func NewSnackCreateHandler(svc SnackCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req SnackCreateRequest
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

		snackID, err := svc.Create(r.Context(), claims.UserID, req.Name, req.Quantity, expireDate)
		if err != nil {
			switch err {
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
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SnackCreateResponse{
			SnackID: snackID.String(),
			Message: "Snack stocked",
		})
	}
}

// RegisterSnackCreateHandler registers the route for stocking a snack.
func RegisterSnackCreateHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/snacks", h)
}
