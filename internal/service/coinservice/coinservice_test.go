package coinservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fitpass/gymcoin/internal/domain"
	"github.com/fitpass/gymcoin/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockGymRepo, *MockTransactionRepo, *MockPurchaseRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	memberRepo := NewMockMemberRepo(ctrl)
	gymRepo := NewMockGymRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	purchaseRepo := NewMockPurchaseRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(memberRepo, gymRepo, transactionRepo, purchaseRepo, txManager)
	defer ctrl.Finish()
	return service, memberRepo, gymRepo, transactionRepo, purchaseRepo, txManager
}

func runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestCredit(t *testing.T) {
	service, memberRepo, _, transactionRepo, purchaseRepo, txManager := NewMock(t)
	tests := []struct {
		name            string
		coins           int
		cashAmount      float64
		prepareMock     func()
		expectedBalance int
		expectedError   error
	}{
		{
			name:       "Successful purchase credit",
			coins:      10,
			cashAmount: 49.99,
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Name: "Ann", Role: domain.RoleMember, CoinBalance: 2}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				purchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.CoinPurchase{}, nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.CoinTransaction{}, nil)
				memberRepo.EXPECT().AddCoins(gomock.Any(), 1, 10).Return(12, nil)
			},
			expectedBalance: 12,
			expectedError:   nil,
		},
		{
			name:          "Non-positive coin count",
			coins:         0,
			cashAmount:    10.0,
			prepareMock:   nil,
			expectedError: ErrValidation,
		},
		{
			name:          "Negative cash amount",
			coins:         5,
			cashAmount:    -1.0,
			prepareMock:   nil,
			expectedError: ErrValidation,
		},
		{
			name:       "Member not found",
			coins:      10,
			cashAmount: 49.99,
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
		{
			name:       "Error creating purchase record",
			coins:      10,
			cashAmount: 49.99,
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				purchaseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.Credit(context.Background(), 1, tt.coins, tt.cashAmount, "79927398713")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, result.Balance)
				assert.Equal(t, tt.coins, result.Purchase.Coins)
			}
		})
	}
}

func TestDebitForVisit(t *testing.T) {
	service, memberRepo, gymRepo, transactionRepo, _, txManager := NewMock(t)
	member := &domain.User{ID: 1, Name: "Ann", Role: domain.RoleMember, CoinBalance: 3}
	gym := &domain.Gym{ID: 7, Name: "Iron Temple"}
	tests := []struct {
		name           string
		prepareMock    func()
		expectedResult *RedemptionResult
		expectedError  error
	}{
		{
			name: "Successful redemption",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(member, nil)
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(gym, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				transactionRepo.EXPECT().HasUsageSince(gomock.Any(), 1, 7, gomock.Any()).Return(false, nil)
				memberRepo.EXPECT().SpendCoin(gomock.Any(), 1).Return(2, true, nil)
				gymRepo.EXPECT().Credit(gomock.Any(), 7, 1).Return(5, nil)
				gymRepo.EXPECT().AddMonthlyTotal(gomock.Any(), 7, gomock.Any(), 1).Return(nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.CoinTransaction{}, nil)
			},
			expectedResult: &RedemptionResult{MemberID: 1, MemberName: "Ann", GymID: 7, Balance: 2},
		},
		{
			name: "Member not found",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
		{
			name: "Gym not found",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(member, nil)
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrGymNotFound,
		},
		{
			name: "Already redeemed at this gym today",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(member, nil)
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(gym, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				transactionRepo.EXPECT().HasUsageSince(gomock.Any(), 1, 7, gomock.Any()).Return(true, nil)
			},
			expectedError: ErrAlreadyRedeemedToday,
		},
		{
			name: "Insufficient balance",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Name: "Ann", CoinBalance: 0}, nil)
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(gym, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				transactionRepo.EXPECT().HasUsageSince(gomock.Any(), 1, 7, gomock.Any()).Return(false, nil)
				memberRepo.EXPECT().SpendCoin(gomock.Any(), 1).Return(0, false, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name: "Error crediting gym",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(member, nil)
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(gym, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				transactionRepo.EXPECT().HasUsageSince(gomock.Any(), 1, 7, gomock.Any()).Return(false, nil)
				memberRepo.EXPECT().SpendCoin(gomock.Any(), 1).Return(2, true, nil)
				gymRepo.EXPECT().Credit(gomock.Any(), 7, 1).Return(0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.DebitForVisit(context.Background(), 1, 7)
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

func TestDebitForVisitSameDayDifferentGyms(t *testing.T) {
	service, memberRepo, gymRepo, transactionRepo, _, txManager := NewMock(t)
	member := &domain.User{ID: 1, Name: "Ann", CoinBalance: 2}

	for i, gymID := range []int{7, 8} {
		memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(member, nil)
		gymRepo.EXPECT().FindByID(gomock.Any(), gymID).Return(&domain.Gym{ID: gymID}, nil)
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		transactionRepo.EXPECT().HasUsageSince(gomock.Any(), 1, gymID, gomock.Any()).Return(false, nil)
		memberRepo.EXPECT().SpendCoin(gomock.Any(), 1).Return(1-i, true, nil)
		gymRepo.EXPECT().Credit(gomock.Any(), gymID, 1).Return(1, nil)
		gymRepo.EXPECT().AddMonthlyTotal(gomock.Any(), gymID, gomock.Any(), 1).Return(nil)
		transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.CoinTransaction{}, nil)
	}

	first, err := service.DebitForVisit(context.Background(), 1, 7)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Balance)

	second, err := service.DebitForVisit(context.Background(), 1, 8)
	assert.NoError(t, err)
	assert.Equal(t, 0, second.Balance)
}

func TestDebitForVisitWithGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberRepo := NewMockMemberRepo(ctrl)
	gymRepo := NewMockGymRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	purchaseRepo := NewMockPurchaseRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	guard := NewMockRedemptionGuard(ctrl)
	service := New(memberRepo, gymRepo, transactionRepo, purchaseRepo, txManager).WithGuard(guard)

	member := &domain.User{ID: 1, Name: "Ann", CoinBalance: 2}
	gym := &domain.Gym{ID: 7}

	t.Run("Guard short-circuits a repeat", func(t *testing.T) {
		memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(member, nil)
		gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(gym, nil)
		guard.EXPECT().SeenToday(gomock.Any(), 1, 7, gomock.Any()).Return(true, nil)

		_, err := service.DebitForVisit(context.Background(), 1, 7)
		assert.ErrorIs(t, err, ErrAlreadyRedeemedToday)
	})

	t.Run("Guard failure falls back to storage", func(t *testing.T) {
		memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(member, nil)
		gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(gym, nil)
		guard.EXPECT().SeenToday(gomock.Any(), 1, 7, gomock.Any()).Return(false, errors.New("redis down"))
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		transactionRepo.EXPECT().HasUsageSince(gomock.Any(), 1, 7, gomock.Any()).Return(false, nil)
		memberRepo.EXPECT().SpendCoin(gomock.Any(), 1).Return(1, true, nil)
		gymRepo.EXPECT().Credit(gomock.Any(), 7, 1).Return(1, nil)
		gymRepo.EXPECT().AddMonthlyTotal(gomock.Any(), 7, gomock.Any(), 1).Return(nil)
		transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.CoinTransaction{}, nil)
		guard.EXPECT().Mark(gomock.Any(), 1, 7, gomock.Any(), gomock.Any()).Return(nil)

		result, err := service.DebitForVisit(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Balance)
	})
}

func TestMemberHistory(t *testing.T) {
	service, memberRepo, _, transactionRepo, purchaseRepo, _ := NewMock(t)
	now := time.Now()
	tests := []struct {
		name            string
		prepareMock     func()
		expectedHistory *MemberHistory
		expectedError   error
	}{
		{
			name: "Retrieve history successfully",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, CoinBalance: 4}, nil)
				purchaseRepo.EXPECT().ListByMember(gomock.Any(), 1).Return([]domain.CoinPurchase{
					{MemberID: 1, Coins: 10, CashAmount: 49.99, CreatedAt: now},
				}, nil)
				transactionRepo.EXPECT().ListByMember(gomock.Any(), 1).Return([]domain.CoinTransaction{
					{MemberID: 1, Type: domain.TransactionPurchase, Coins: 10, CreatedAt: now},
				}, nil)
			},
			expectedHistory: &MemberHistory{
				Balance:      4,
				Purchases:    []domain.CoinPurchase{{MemberID: 1, Coins: 10, CashAmount: 49.99, CreatedAt: now}},
				Transactions: []domain.CoinTransaction{{MemberID: 1, Type: domain.TransactionPurchase, Coins: 10, CreatedAt: now}},
			},
		},
		{
			name: "Member not found",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrMemberNotFound,
		},
		{
			name: "Error fetching purchases",
			prepareMock: func() {
				memberRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				purchaseRepo.EXPECT().ListByMember(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			history, err := service.MemberHistory(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedHistory, history)
			}
		})
	}
}

func TestGymHistory(t *testing.T) {
	service, _, gymRepo, transactionRepo, _, _ := NewMock(t)
	tests := []struct {
		name            string
		prepareMock     func()
		expectedHistory *GymHistory
		expectedError   error
	}{
		{
			name: "Retrieve history successfully",
			prepareMock: func() {
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Gym{ID: 7, CoinBalance: 12}, nil)
				transactionRepo.EXPECT().ListByGym(gomock.Any(), 7).Return([]domain.CoinTransaction{}, nil)
				gymRepo.EXPECT().GetMonthlyTotals(gomock.Any(), 7).Return([]domain.GymMonthlyTotal{
					{GymID: 7, Month: "2026-08", Coins: 12},
				}, nil)
			},
			expectedHistory: &GymHistory{
				Balance:       12,
				Transactions:  []domain.CoinTransaction{},
				MonthlyTotals: map[string]int{"2026-08": 12},
			},
		},
		{
			name: "Gym not found",
			prepareMock: func() {
				gymRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
			},
			expectedError: ErrGymNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			history, err := service.GymHistory(context.Background(), 7)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedHistory, history)
			}
		})
	}
}

func TestUntilNextUTCMidnight(t *testing.T) {
	now := time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Hour, untilNextUTCMidnight(now))
}
