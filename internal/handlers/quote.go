package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/services"
)

// DailyQuoter defines the interface that the service must implement.
type DailyQuoter interface {
	DailyQuote(ctx context.Context) (text, source string, err error)
}

// QuoteResponse represents the dashboard's daily quote
// swagger:model QuoteResponse
type QuoteResponse struct {
	Text string `json:"text"`
	// Where the quote came from: cache or random
	Source string `json:"source"`
}

// NewQuoteHandler returns an HTTP handler serving the daily quote.
// @Summary Daily quote
// @Description Returns the quote of the day; the same quote is served until midnight.
// @Tags quote
// @Produce json
// @Success 200 {object} handlers.QuoteResponse
// @Failure 404 {object} handlers.ErrorResponse "No quotes available"
// @Router /quote [get]
// @Security Bearer
func NewQuoteHandler(svc DailyQuoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, source, err := svc.DailyQuote(r.Context())
		if err != nil {
			switch err {
			case services.ErrNoQuotes:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "No quotes available"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(QuoteResponse{Text: text, Source: source})
	}
}

// RegisterQuoteHandler registers the route for the daily quote.
func RegisterQuoteHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/quote", h)
}
