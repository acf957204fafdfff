package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/snackops/snackledger/internal/services"
)

func TestQuoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockDailyQuoter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			mockSetup: func(m *MockDailyQuoter) {
				m.EXPECT().DailyQuote(gomock.Any()).Return("stay hungry", "cache", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"text": "stay hungry", "source": "cache"}`,
		},
		{
			name: "no quotes",
			mockSetup: func(m *MockDailyQuoter) {
				m.EXPECT().DailyQuote(gomock.Any()).Return("", "", services.ErrNoQuotes)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error": "No quotes available"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDailyQuoter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewQuoteHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/quote", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
