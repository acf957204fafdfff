package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/snackops/snackledger/internal/jwt"
	"github.com/snackops/snackledger/internal/middlewares"
	"github.com/snackops/snackledger/internal/models"
	"github.com/snackops/snackledger/internal/services"
)

// newAuthedRequest builds a request routed through chi with the given URL
// param and authenticated claims already in context.
func newAuthedRequest(method, target, paramKey, paramValue string, claims *jwt.Claims) *http.Request {
	req := httptest.NewRequest(method, target, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(paramKey, paramValue)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)

	if claims != nil {
		ctx = middlewares.ContextWithClaims(ctx, claims)
	}
	return req.WithContext(ctx)
}

func TestStockDecreaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snackID := uuid.New()
	claims := &jwt.Claims{UserID: uuid.New(), Username: "alice", Role: models.RoleMember}

	tests := []struct {
		name         string
		snackParam   string
		claims       *jwt.Claims
		mockSetup    func(m *MockStockDecreaser)
		expectedCode int
	}{
		{
			name:       "success",
			snackParam: snackID.String(),
			claims:     claims,
			mockSetup: func(m *MockStockDecreaser) {
				m.EXPECT().Decrease(gomock.Any(), snackID, claims.UserID).Return(2, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:       "insufficient stock",
			snackParam: snackID.String(),
			claims:     claims,
			mockSetup: func(m *MockStockDecreaser) {
				m.EXPECT().Decrease(gomock.Any(), snackID, claims.UserID).Return(0, services.ErrInsufficientStock)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:       "snack not found",
			snackParam: snackID.String(),
			claims:     claims,
			mockSetup: func(m *MockStockDecreaser) {
				m.EXPECT().Decrease(gomock.Any(), snackID, claims.UserID).Return(0, services.ErrSnackNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid snack id",
			snackParam:   "not-a-uuid",
			claims:       claims,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no claims",
			snackParam:   snackID.String(),
			claims:       nil,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "internal server error",
			snackParam: snackID.String(),
			claims:     claims,
			mockSetup: func(m *MockStockDecreaser) {
				m.EXPECT().Decrease(gomock.Any(), snackID, claims.UserID).Return(0, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockStockDecreaser(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewStockDecreaseHandler(mockSvc)

			req := newAuthedRequest(http.MethodPost, "/snacks/"+tt.snackParam+"/decrease", "snackID", tt.snackParam, tt.claims)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestStockIncreaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snackID := uuid.New()
	claims := &jwt.Claims{UserID: uuid.New(), Username: "alice", Role: models.RoleMember}

	mockSvc := NewMockStockIncreaser(ctrl)
	mockSvc.EXPECT().Increase(gomock.Any(), snackID, claims.UserID).Return(6, nil)

	handler := NewStockIncreaseHandler(mockSvc)

	req := newAuthedRequest(http.MethodPost, "/snacks/"+snackID.String()+"/increase", "snackID", snackID.String(), claims)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"quantity": 6}`, rr.Body.String())
}
