package adminservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fitpass/gymcoin/internal/domain"
	"github.com/fitpass/gymcoin/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockGymRepo, *MockPayoutRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	memberRepo := NewMockMemberRepo(ctrl)
	gymRepo := NewMockGymRepo(ctrl)
	payoutRepo := NewMockPayoutRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(memberRepo, gymRepo, payoutRepo, txManager)
	defer ctrl.Finish()
	return service, memberRepo, gymRepo, payoutRepo, txManager
}

func runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestGetSystemTotals(t *testing.T) {
	service, memberRepo, gymRepo, _, _ := NewMock(t)
	tests := []struct {
		name           string
		prepareMock    func()
		expectedTotals *SystemTotals
		expectedError  error
	}{
		{
			name: "Totals computed across members and gyms",
			prepareMock: func() {
				memberRepo.EXPECT().SumMemberBalances(gomock.Any()).Return(120, nil)
				gymRepo.EXPECT().SumBalances(gomock.Any()).Return(45, nil)
				gymRepo.EXPECT().List(gomock.Any()).Return([]domain.Gym{
					{ID: 1, Name: "Iron Temple", CoinBalance: 30},
					{ID: 2, Name: "Flex Yard", CoinBalance: 15},
				}, nil)
			},
			expectedTotals: &SystemTotals{
				TotalCoinsCirculating: 120,
				TotalCoinsHeldByGyms:  45,
				PerGym: []GymBreakdown{
					{GymID: 1, Name: "Iron Temple", Balance: 30},
					{GymID: 2, Name: "Flex Yard", Balance: 15},
				},
			},
		},
		{
			name: "Error summing member balances",
			prepareMock: func() {
				memberRepo.EXPECT().SumMemberBalances(gomock.Any()).Return(0, errors.New("db error"))
				gymRepo.EXPECT().SumBalances(gomock.Any()).Return(0, nil).AnyTimes()
				gymRepo.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			totals, err := service.GetSystemTotals(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTotals, totals)
			}
		})
	}
}

func TestSimulatePayout(t *testing.T) {
	service, _, gymRepo, payoutRepo, txManager := NewMock(t)
	tests := []struct {
		name           string
		gymID          int
		cashAmount     float64
		coinsToClear   int
		prepareMock    func()
		expectedResult *PayoutResult
		expectedError  error
	}{
		{
			name:         "Full payout",
			gymID:        7,
			cashAmount:   25.0,
			coinsToClear: 10,
			prepareMock: func() {
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Gym{ID: 7, CoinBalance: 30}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				gymRepo.EXPECT().ClearCoins(gomock.Any(), 7, 10).Return(30, 20, nil)
				payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Payout{}, nil)
			},
			expectedResult: &PayoutResult{
				Payout:     domain.Payout{GymID: 7, CashAmount: 25.0, CoinsCleared: 10},
				NewBalance: 20,
			},
		},
		{
			name:         "Clearing more coins than the gym holds is floored",
			gymID:        7,
			cashAmount:   25.0,
			coinsToClear: 50,
			prepareMock: func() {
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Gym{ID: 7, CoinBalance: 30}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				gymRepo.EXPECT().ClearCoins(gomock.Any(), 7, 50).Return(30, 0, nil)
				payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Payout{}, nil)
			},
			expectedResult: &PayoutResult{
				Payout:     domain.Payout{GymID: 7, CashAmount: 25.0, CoinsCleared: 30},
				NewBalance: 0,
			},
		},
		{
			name:         "Cleared amount follows the balance the decrement saw",
			gymID:        7,
			cashAmount:   25.0,
			coinsToClear: 50,
			prepareMock: func() {
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Gym{ID: 7, CoinBalance: 30}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				gymRepo.EXPECT().ClearCoins(gomock.Any(), 7, 50).Return(20, 0, nil)
				payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Payout{}, nil)
			},
			expectedResult: &PayoutResult{
				Payout:     domain.Payout{GymID: 7, CashAmount: 25.0, CoinsCleared: 20},
				NewBalance: 0,
			},
		},
		{
			name:          "Non-positive coin count",
			gymID:         7,
			cashAmount:    10.0,
			coinsToClear:  0,
			expectedError: ErrValidation,
		},
		{
			name:          "Negative cash amount",
			gymID:         7,
			cashAmount:    -5.0,
			coinsToClear:  10,
			expectedError: ErrValidation,
		},
		{
			name:         "Gym not found",
			gymID:        99,
			cashAmount:   10.0,
			coinsToClear: 5,
			prepareMock: func() {
				gymRepo.EXPECT().FindByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrGymNotFound,
		},
		{
			name:         "Error recording payout",
			gymID:        7,
			cashAmount:   10.0,
			coinsToClear: 5,
			prepareMock: func() {
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Gym{ID: 7, CoinBalance: 30}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				gymRepo.EXPECT().ClearCoins(gomock.Any(), 7, 5).Return(30, 25, nil)
				payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.SimulatePayout(context.Background(), tt.gymID, tt.cashAmount, tt.coinsToClear)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestGetPayouts(t *testing.T) {
	service, _, _, payoutRepo, _ := NewMock(t)
	tests := []struct {
		name            string
		prepareMock     func()
		expectedPayouts []domain.Payout
		expectedError   error
	}{
		{
			name: "Retrieve payouts successfully",
			prepareMock: func() {
				payoutRepo.EXPECT().ListByGym(gomock.Any(), 7).Return([]domain.Payout{
					{ID: 1, GymID: 7, CashAmount: 25.0, CoinsCleared: 10},
				}, nil)
			},
			expectedPayouts: []domain.Payout{
				{ID: 1, GymID: 7, CashAmount: 25.0, CoinsCleared: 10},
			},
		},
		{
			name: "Error retrieving payouts",
			prepareMock: func() {
				payoutRepo.EXPECT().ListByGym(gomock.Any(), 7).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			payouts, err := service.GetPayouts(context.Background(), 7)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPayouts, payouts)
			}
		})
	}
}
