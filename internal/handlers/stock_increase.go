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

// StockIncreaser defines the interface that the service must implement.
type StockIncreaser interface {
	Increase(ctx context.Context, snackID, actorID uuid.UUID) (int, error)
}

// StockResponse represents the quantity after a stock adjustment
// swagger:model StockResponse
type StockResponse struct {
	// New quantity after the adjustment
	Quantity int `json:"quantity"`
}

// NewStockIncreaseHandler returns an HTTP handler adding one unit of stock.
// @Summary Increase stock
// @Description Adds one unit to a snack's stock and returns the new quantity.
// @Tags stock
// @Produce json
// @Param snackID path string true "Snack ID"
// @Success 200 {object} handlers.StockResponse
// @Failure 404 {object} handlers.ErrorResponse "Snack not found"
// @Router /snacks/{snackID}/increase [post]
// @Security Bearer
func NewStockIncreaseHandler(svc StockIncreaser) http.HandlerFunc {
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

		quantity, err := svc.Increase(r.Context(), snackID, claims.UserID)
		if err != nil {
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
		json.NewEncoder(w).Encode(StockResponse{Quantity: quantity})
	}
}

// RegisterStockIncreaseHandler registers the route for increasing stock.
func RegisterStockIncreaseHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/snacks/{snackID}/increase", h)
}
