package coins

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fitpass/gymcoin/internal/dto"
	"github.com/fitpass/gymcoin/internal/service/coinservice"
	"github.com/fitpass/gymcoin/internal/service/redemptionservice"
	"github.com/fitpass/gymcoin/pkg/auth"
)

func NewMock(t *testing.T) (*CoinsHandler, *MockService, *MockScanService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	scanService := NewMockScanService(ctrl)
	handler := New(service, scanService)
	defer ctrl.Finish()
	return handler, service, scanService
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPurchaseHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful purchase",
			body: `{"coins":10,"amount":49.99,"payment_ref":"79927398713"}`,
			prepareMock: func() {
				service.EXPECT().
					Credit(gomock.Any(), 1, 10, 49.99, "79927398713").
					Return(&coinservice.PurchaseResult{Balance: 12}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"coins":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Invalid payment reference",
			body:          `{"coins":10,"amount":49.99,"payment_ref":"12345"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid payment reference",
		},
		{
			name: "Invalid amounts",
			body: `{"coins":0,"amount":49.99,"payment_ref":"79927398713"}`,
			prepareMock: func() {
				service.EXPECT().
					Credit(gomock.Any(), 1, 0, 49.99, "79927398713").
					Return(nil, coinservice.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Member not found",
			body: `{"coins":10,"amount":49.99,"payment_ref":"79927398713"}`,
			prepareMock: func() {
				service.EXPECT().
					Credit(gomock.Any(), 1, 10, 49.99, "79927398713").
					Return(nil, coinservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"coins":10,"amount":49.99,"payment_ref":"79927398713"}`,
			prepareMock: func() {
				service.EXPECT().
					Credit(gomock.Any(), 1, 10, 49.99, "79927398713").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/coins/purchase", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Purchase(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUseHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.RedemptionResponseDTO
	}{
		{
			name: "Successful redemption",
			body: `{"gym_id":7}`,
			prepareMock: func() {
				service.EXPECT().
					DebitForVisit(gomock.Any(), 1, 7).
					Return(&coinservice.RedemptionResult{MemberID: 1, MemberName: "Ann", GymID: 7, Balance: 4}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.RedemptionResponseDTO{MemberID: 1, MemberName: "Ann", GymID: 7, Balance: 4},
		},
		{
			name:         "Invalid request body",
			body:         `{"gym_id":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance",
			body: `{"gym_id":7}`,
			prepareMock: func() {
				service.EXPECT().DebitForVisit(gomock.Any(), 1, 7).Return(nil, coinservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Already redeemed today",
			body: `{"gym_id":7}`,
			prepareMock: func() {
				service.EXPECT().DebitForVisit(gomock.Any(), 1, 7).Return(nil, coinservice.ErrAlreadyRedeemedToday)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Gym not found",
			body: `{"gym_id":7}`,
			prepareMock: func() {
				service.EXPECT().DebitForVisit(gomock.Any(), 1, 7).Return(nil, coinservice.ErrGymNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			body: `{"gym_id":7}`,
			prepareMock: func() {
				service.EXPECT().DebitForVisit(gomock.Any(), 1, 7).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/coins/use", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Use(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.RedemptionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestScanHandler(t *testing.T) {
	handler, _, scanService := NewMock(t)
	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.ScanResponseDTO
	}{
		{
			name: "Granted scan",
			body: `{"qr":"token"}`,
			prepareMock: func() {
				scanService.EXPECT().
					Scan(gomock.Any(), "token", 2).
					Return(&redemptionservice.ScanResult{Granted: true, MemberName: "Ann", Balance: 4})
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ScanResponseDTO{Granted: true, MemberName: "Ann", Balance: 4},
		},
		{
			name: "Gym id in the body is ignored in favor of the session",
			body: `{"qr":"token","gym_id":999}`,
			prepareMock: func() {
				scanService.EXPECT().
					Scan(gomock.Any(), "token", 2).
					Return(&redemptionservice.ScanResult{Granted: true, MemberName: "Ann", Balance: 4})
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ScanResponseDTO{Granted: true, MemberName: "Ann", Balance: 4},
		},
		{
			name: "Denied scan is still a 200",
			body: `{"qr":"token"}`,
			prepareMock: func() {
				scanService.EXPECT().
					Scan(gomock.Any(), "token", 2).
					Return(&redemptionservice.ScanResult{Reason: "already redeemed at this gym today"})
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ScanResponseDTO{Granted: false, Reason: "already redeemed at this gym today"},
		},
		{
			name:         "Invalid request body",
			body:         `{"qr":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/coins/scan", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 2))
			w := httptest.NewRecorder()

			handler.Scan(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ScanResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestScanHandlerReportsZeroBalance(t *testing.T) {
	handler, _, scanService := NewMock(t)

	scanService.EXPECT().
		Scan(gomock.Any(), "token", 2).
		Return(&redemptionservice.ScanResult{Granted: true, MemberName: "Ann", Balance: 0})

	r := httptest.NewRequest(http.MethodPost, "/api/coins/scan", bytes.NewBufferString(`{"qr":"token"}`))
	r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 2))
	w := httptest.NewRecorder()

	handler.Scan(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"balance":0`)
}

func TestMemberHistoryHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Successful retrieval",
			userID: "1",
			prepareMock: func() {
				service.EXPECT().MemberHistory(gomock.Any(), 1).Return(&coinservice.MemberHistory{Balance: 4}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid member id",
			userID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Member not found",
			userID: "99",
			prepareMock: func() {
				service.EXPECT().MemberHistory(gomock.Any(), 99).Return(nil, coinservice.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Internal server error",
			userID: "1",
			prepareMock: func() {
				service.EXPECT().MemberHistory(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/coins/user/"+tt.userID, nil)
			r = withURLParam(r, "userID", tt.userID)
			w := httptest.NewRecorder()

			handler.MemberHistory(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGymHistoryHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	tests := []struct {
		name         string
		gymID        string
		prepareMock  func()
		expectedCode int
		expectedBody dto.GymHistoryResponseDTO
	}{
		{
			name:  "Successful retrieval",
			gymID: "7",
			prepareMock: func() {
				service.EXPECT().GymHistory(gomock.Any(), 7).Return(&coinservice.GymHistory{
					Balance:       12,
					MonthlyTotals: map[string]int{"2026-08": 12},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.GymHistoryResponseDTO{
				Balance:       12,
				Transactions:  []dto.TransactionDTO{},
				MonthlyTotals: map[string]int{"2026-08": 12},
			},
		},
		{
			name:         "Invalid gym id",
			gymID:        "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Gym not found",
			gymID: "99",
			prepareMock: func() {
				service.EXPECT().GymHistory(gomock.Any(), 99).Return(nil, coinservice.ErrGymNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/coins/gym/"+tt.gymID, nil)
			r = withURLParam(r, "gymID", tt.gymID)
			w := httptest.NewRecorder()

			handler.GymHistory(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.GymHistoryResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody.Balance, body.Balance)
				assert.Equal(t, tt.expectedBody.MonthlyTotals, body.MonthlyTotals)
			}
		})
	}
}
