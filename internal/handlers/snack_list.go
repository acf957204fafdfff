package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/snackops/snackledger/internal/logger"
	"github.com/snackops/snackledger/internal/models"
)

// SnackLister defines the interface that the service must implement.
type SnackLister interface {
	List(ctx context.Context) ([]models.SnackDB, error)
}

// SnackView is a snack as rendered on the inventory page
// swagger:model SnackView
type SnackView struct {
	SnackID  string `json:"snack_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	// Expiry date in YYYY-MM-DD, empty when unset
	ExpireDate string `json:"expire_date,omitempty"`
}

func newSnackView(s models.SnackDB) SnackView {
	view := SnackView{
		SnackID:  s.SnackID.String(),
		Name:     s.Name,
		Quantity: s.Quantity,
	}
	if s.ExpireDate != nil {
		view.ExpireDate = s.ExpireDate.Format(models.DateLayout)
	}
	return view
}

// SnackListResponse represents the inventory listing
// swagger:model SnackListResponse
type SnackListResponse struct {
	Snacks []SnackView `json:"snacks"`
}

// NewSnackListHandler returns an HTTP handler listing all stocked snacks.
// @Summary List snacks
// @Description Returns every stocked snack, newest first.
// @Tags snacks
// @Produce json
// @Success 200 {object} handlers.SnackListResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /snacks [get]
// @Security Bearer
func NewSnackListHandler(svc SnackLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snacks, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		views := make([]SnackView, 0, len(snacks))
		for _, s := range snacks {
			views = append(views, newSnackView(s))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SnackListResponse{Snacks: views})
	}
}

// RegisterSnackListHandler registers the route for listing snacks.
func RegisterSnackListHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/snacks", h)
}
