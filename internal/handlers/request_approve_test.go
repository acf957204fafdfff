package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/snackops/snackledger/internal/jwt"
	"github.com/snackops/snackledger/internal/models"
	"github.com/snackops/snackledger/internal/services"
)

func TestRequestApproveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	claims := &jwt.Claims{UserID: uuid.New(), Username: "boss", Role: models.RoleAdmin}

	tests := []struct {
		name         string
		mockSetup    func(m *MockRequestApprover)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockRequestApprover) {
				m.EXPECT().Approve(gomock.Any(), requestID, claims.UserID).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			mockSetup: func(m *MockRequestApprover) {
				m.EXPECT().Approve(gomock.Any(), requestID, claims.UserID).Return(services.ErrRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "already resolved",
			mockSetup: func(m *MockRequestApprover) {
				m.EXPECT().Approve(gomock.Any(), requestID, claims.UserID).Return(services.ErrRequestNotPending)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRequestApprover(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewRequestApproveHandler(mockSvc)

			req := newAuthedRequest(http.MethodPost, "/requests/"+requestID.String()+"/approve", "requestID", requestID.String(), claims)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRequestRejectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	claims := &jwt.Claims{UserID: uuid.New(), Username: "boss", Role: models.RoleAdmin}

	mockSvc := NewMockRequestRejecter(ctrl)
	mockSvc.EXPECT().Reject(gomock.Any(), requestID, claims.UserID).Return(nil)

	handler := NewRequestRejectHandler(mockSvc)

	req := newAuthedRequest(http.MethodPost, "/requests/"+requestID.String()+"/reject", "requestID", requestID.String(), claims)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message": "Request rejected"}`, rr.Body.String())
}
