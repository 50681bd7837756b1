package coinservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/fitpass/gymcoin/internal/domain"
	"github.com/fitpass/gymcoin/internal/events"
	"github.com/fitpass/gymcoin/internal/metrics"
	"github.com/fitpass/gymcoin/internal/pg"
)

//go:generate mockgen -source=coinservice.go -destination=coinservice_mock.go -package=coinservice

type MemberRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	AddCoins(ctx context.Context, userID int, coins int) (int, error)
	SpendCoin(ctx context.Context, userID int) (int, bool, error)
}

type GymRepo interface {
	FindByID(ctx context.Context, gymID int) (*domain.Gym, error)
	Credit(ctx context.Context, gymID int, coins int) (int, error)
	AddMonthlyTotal(ctx context.Context, gymID int, month string, coins int) error
	GetMonthlyTotals(ctx context.Context, gymID int) ([]domain.GymMonthlyTotal, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.CoinTransaction) (*domain.CoinTransaction, error)
	ListByMember(ctx context.Context, memberID int) ([]domain.CoinTransaction, error)
	ListByGym(ctx context.Context, gymID int) ([]domain.CoinTransaction, error)
	HasUsageSince(ctx context.Context, memberID, gymID int, since time.Time) (bool, error)
}

type PurchaseRepo interface {
	Create(ctx context.Context, purchase *domain.CoinPurchase) (*domain.CoinPurchase, error)
	ListByMember(ctx context.Context, memberID int) ([]domain.CoinPurchase, error)
}

// RedemptionGuard is an optional fast path for the once-per-day rule.
// Postgres stays the authority; the guard only short-circuits repeats.
type RedemptionGuard interface {
	SeenToday(ctx context.Context, memberID, gymID int, day string) (bool, error)
	Mark(ctx context.Context, memberID, gymID int, day string, ttl time.Duration) error
}

// EventPublisher receives ledger events after a successful commit.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

var (
	ErrValidation           = errors.New("invalid purchase parameters")
	ErrMemberNotFound       = errors.New("member not found")
	ErrGymNotFound          = errors.New("gym not found")
	ErrInsufficientBalance  = errors.New("insufficient coin balance")
	ErrAlreadyRedeemedToday = errors.New("already redeemed at this gym today")
)

type PurchaseResult struct {
	Balance  int
	Purchase domain.CoinPurchase
}

type RedemptionResult struct {
	MemberID   int
	MemberName string
	GymID      int
	Balance    int
}

type MemberHistory struct {
	Balance      int
	Purchases    []domain.CoinPurchase
	Transactions []domain.CoinTransaction
}

type GymHistory struct {
	Balance       int
	Transactions  []domain.CoinTransaction
	MonthlyTotals map[string]int
}

type Service struct {
	memberRepo      MemberRepo
	gymRepo         GymRepo
	transactionRepo TransactionRepo
	purchaseRepo    PurchaseRepo
	txManager       pg.TXManager
	guard           RedemptionGuard
	publisher       EventPublisher
}

func New(memberRepo MemberRepo, gymRepo GymRepo, transactionRepo TransactionRepo, purchaseRepo PurchaseRepo, txManager pg.TXManager) *Service {
	return &Service{
		memberRepo:      memberRepo,
		gymRepo:         gymRepo,
		transactionRepo: transactionRepo,
		purchaseRepo:    purchaseRepo,
		txManager:       txManager,
	}
}

// WithGuard attaches the optional Redis fast path for the daily rule.
func (s *Service) WithGuard(guard RedemptionGuard) *Service {
	s.guard = guard
	return s
}

// WithPublisher attaches the optional ledger event stream.
func (s *Service) WithPublisher(publisher EventPublisher) *Service {
	s.publisher = publisher
	return s
}

// Credit grants purchased coins to a member: one purchase record, one
// purchase transaction and the balance increment, committed together.
func (s *Service) Credit(ctx context.Context, memberID, coins int, cashAmount float64, paymentRef string) (*PurchaseResult, error) {
	if coins <= 0 || cashAmount < 0 {
		return nil, ErrValidation
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get member", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	var result PurchaseResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		purchase := &domain.CoinPurchase{
			MemberID:   memberID,
			Coins:      coins,
			CashAmount: cashAmount,
			PaymentRef: paymentRef,
		}
		if _, err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}

		txn := &domain.CoinTransaction{
			MemberID: memberID,
			Type:     domain.TransactionPurchase,
			Coins:    coins,
			Status:   domain.StatusCompleted,
		}
		if _, err := s.transactionRepo.Create(ctx, txn); err != nil {
			return err
		}

		balance, err := s.memberRepo.AddCoins(ctx, memberID, coins)
		if err != nil {
			return err
		}
		result = PurchaseResult{Balance: balance, Purchase: *purchase}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to credit member", zap.Int("memberID", memberID), zap.Error(err))
		return nil, err
	}

	metrics.PurchasesTotal.Inc()
	s.publish(ctx, events.Event{
		Type:       events.TypePurchase,
		MemberID:   memberID,
		Coins:      coins,
		OccurredAt: time.Now().UTC(),
	})
	return &result, nil
}

// DebitForVisit moves one coin from a member to a gym. The member balance is
// debited with a single conditional update so it can never go negative, and
// the once-per-day-per-gym rule is checked inside the same transaction.
func (s *Service) DebitForVisit(ctx context.Context, memberID, gymID int) (*RedemptionResult, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get member", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	gym, err := s.gymRepo.FindByID(ctx, gymID)
	if err != nil {
		zap.L().Error("failed to get gym", zap.Error(err))
		return nil, err
	}
	if gym == nil {
		return nil, ErrGymNotFound
	}

	now := time.Now().UTC()
	dayStart := now.Truncate(24 * time.Hour)
	day := now.Format("2006-01-02")

	if s.guard != nil {
		seen, err := s.guard.SeenToday(ctx, memberID, gymID, day)
		if err != nil {
			zap.L().Warn("redemption guard unavailable, falling back to storage", zap.Error(err))
		} else if seen {
			metrics.RedemptionsTotal.WithLabelValues("denied").Inc()
			return nil, ErrAlreadyRedeemedToday
		}
	}

	var result RedemptionResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		used, err := s.transactionRepo.HasUsageSince(ctx, memberID, gymID, dayStart)
		if err != nil {
			return err
		}
		if used {
			return ErrAlreadyRedeemedToday
		}

		balance, ok, err := s.memberRepo.SpendCoin(ctx, memberID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientBalance
		}

		if _, err := s.gymRepo.Credit(ctx, gymID, 1); err != nil {
			return err
		}
		if err := s.gymRepo.AddMonthlyTotal(ctx, gymID, now.Format("2006-01"), 1); err != nil {
			return err
		}

		txn := &domain.CoinTransaction{
			MemberID: memberID,
			GymID:    &gymID,
			Type:     domain.TransactionUsage,
			Coins:    1,
			Status:   domain.StatusCompleted,
		}
		if _, err := s.transactionRepo.Create(ctx, txn); err != nil {
			return err
		}

		result = RedemptionResult{
			MemberID:   memberID,
			MemberName: member.Name,
			GymID:      gymID,
			Balance:    balance,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyRedeemedToday) || errors.Is(err, ErrInsufficientBalance) {
			metrics.RedemptionsTotal.WithLabelValues("denied").Inc()
		} else {
			zap.L().Error("failed to debit member for visit", zap.Int("memberID", memberID), zap.Int("gymID", gymID), zap.Error(err))
		}
		return nil, err
	}

	if s.guard != nil {
		if err := s.guard.Mark(ctx, memberID, gymID, day, untilNextUTCMidnight(now)); err != nil {
			zap.L().Warn("failed to mark redemption in guard", zap.Error(err))
		}
	}

	metrics.RedemptionsTotal.WithLabelValues("granted").Inc()
	s.publish(ctx, events.Event{
		Type:       events.TypeRedemption,
		MemberID:   memberID,
		GymID:      gymID,
		Coins:      1,
		OccurredAt: now,
	})
	return &result, nil
}

func (s *Service) MemberHistory(ctx context.Context, memberID int) (*MemberHistory, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get member", zap.Error(err))
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	purchases, err := s.purchaseRepo.ListByMember(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch purchases", zap.Error(err))
		return nil, err
	}
	transactions, err := s.transactionRepo.ListByMember(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}

	return &MemberHistory{
		Balance:      member.CoinBalance,
		Purchases:    purchases,
		Transactions: transactions,
	}, nil
}

func (s *Service) GymHistory(ctx context.Context, gymID int) (*GymHistory, error) {
	gym, err := s.gymRepo.FindByID(ctx, gymID)
	if err != nil {
		zap.L().Error("failed to get gym", zap.Error(err))
		return nil, err
	}
	if gym == nil {
		return nil, ErrGymNotFound
	}

	transactions, err := s.transactionRepo.ListByGym(ctx, gymID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	totals, err := s.gymRepo.GetMonthlyTotals(ctx, gymID)
	if err != nil {
		zap.L().Error("failed to fetch monthly totals", zap.Error(err))
		return nil, err
	}

	monthly := make(map[string]int, len(totals))
	for _, total := range totals {
		monthly[total.Month] = total.Coins
	}

	return &GymHistory{
		Balance:       gym.CoinBalance,
		Transactions:  transactions,
		MonthlyTotals: monthly,
	}, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		zap.L().Warn("failed to publish ledger event", zap.String("type", event.Type), zap.Error(err))
	}
}

func untilNextUTCMidnight(now time.Time) time.Duration {
	return now.Truncate(24 * time.Hour).Add(24 * time.Hour).Sub(now)
}
