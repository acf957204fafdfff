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

// StockDecreaser defines the interface that the service must implement.
type StockDecreaser interface {
	Decrease(ctx context.Context, snackID, actorID uuid.UUID) (int, error)
}

// NewStockDecreaseHandler returns an HTTP handler taking one unit of stock.
// @Summary Decrease stock
// @Description Removes one unit from a snack's stock and returns the new quantity. Fails when the snack is already empty.
// @Tags stock
// @Produce json
// @Param snackID path string true "Snack ID"
// @Success 200 {object} handlers.StockResponse
// @Failure 404 {object} handlers.ErrorResponse "Snack not found"
// @Failure 409 {object} handlers.ErrorResponse "Insufficient stock"
// @Router /snacks/{snackID}/decrease [post]
// @Security Bearer
func NewStockDecreaseHandler(svc StockDecreaser) http.HandlerFunc {
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

		quantity, err := svc.Decrease(r.Context(), snackID, claims.UserID)
		if err != nil {
			switch err {
			case services.ErrSnackNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Snack not found"})
			case services.ErrInsufficientStock:
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Insufficient stock"})
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

// RegisterStockDecreaseHandler registers the route for decreasing stock.
func RegisterStockDecreaseHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/snacks/{snackID}/decrease", h)
}
