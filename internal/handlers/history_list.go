package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// HistoryLister defines the interface that the storage layer must implement.
type HistoryLister interface {
	List(ctx context.Context, from, to *time.Time) ([]models.SnackHistoryRow, error)
}

// HistoryView is an audit entry as rendered on the history page
// swagger:model HistoryView
type HistoryView struct {
	HistoryID string `json:"history_id"`
	// Snack name, null when the snack was deleted or the action concerned a request
	SnackName *string `json:"snack_name"`
	// Actor's username
	Username  *string `json:"username"`
	Action    string  `json:"action"`
	Quantity  *int    `json:"quantity,omitempty"`
	Memo      *string `json:"memo,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// HistoryListResponse represents the audit trail listing
// swagger:model HistoryListResponse
type HistoryListResponse struct {
	History []HistoryView `json:"history"`
}

// NewHistoryListHandler returns an HTTP handler listing the audit trail.
// @Summary List stock history
// @Description Returns audit entries newest first, optionally bounded by from/to dates (YYYY-MM-DD, inclusive).
// @Tags history
// @Produce json
// @Param from query string false "Start date YYYY-MM-DD"
// @Param to query string false "End date YYYY-MM-DD"
// @Success 200 {object} handlers.HistoryListResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid date filter"
// @Router /history [get]
// @Security Bearer
func NewHistoryListHandler(svc HistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var from, to *time.Time

		if v := r.URL.Query().Get("from"); v != "" {
			t, err := time.ParseInLocation(models.DateLayout, v, time.Local)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid from date, want YYYY-MM-DD"})
				return
			}
			from = &t
		}
		if v := r.URL.Query().Get("to"); v != "" {
			t, err := time.ParseInLocation(models.DateLayout, v, time.Local)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid to date, want YYYY-MM-DD"})
				return
			}
			// The filter is a date, the column a timestamp: stretch the
			// bound to the end of that day to keep it inclusive.
			end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
			to = &end
		}

		rows, err := svc.List(r.Context(), from, to)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		views := make([]HistoryView, 0, len(rows))
		for _, row := range rows {
			views = append(views, HistoryView{
				HistoryID: row.HistoryID.String(),
				SnackName: row.SnackName,
				Username:  row.Username,
				Action:    row.Action,
				Quantity:  row.Quantity,
				Memo:      row.Memo,
				CreatedAt: row.CreatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HistoryListResponse{History: views})
	}
}

// RegisterHistoryListHandler registers the route for the audit trail.
func RegisterHistoryListHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/history", h)
}
