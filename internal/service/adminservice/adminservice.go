package adminservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fitpass/gymcoin/internal/domain"
	"github.com/fitpass/gymcoin/internal/events"
	"github.com/fitpass/gymcoin/internal/metrics"
	"github.com/fitpass/gymcoin/internal/pg"
)

//go:generate mockgen -source=adminservice.go -destination=adminservice_mock.go -package=adminservice

type MemberRepo interface {
	SumMemberBalances(ctx context.Context) (int, error)
}

type GymRepo interface {
	FindByID(ctx context.Context, gymID int) (*domain.Gym, error)
	List(ctx context.Context) ([]domain.Gym, error)
	SumBalances(ctx context.Context) (int, error)
	ClearCoins(ctx context.Context, gymID int, coins int) (int, int, error)
}

type PayoutRepo interface {
	Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	ListByGym(ctx context.Context, gymID int) ([]domain.Payout, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

var (
	ErrValidation  = errors.New("invalid payout parameters")
	ErrGymNotFound = errors.New("gym not found")
)

type GymBreakdown struct {
	GymID   int
	Name    string
	Balance int
}

type SystemTotals struct {
	TotalCoinsCirculating int
	TotalCoinsHeldByGyms  int
	PerGym                []GymBreakdown
}

type PayoutResult struct {
	Payout     domain.Payout
	NewBalance int
}

type Service struct {
	memberRepo MemberRepo
	gymRepo    GymRepo
	payoutRepo PayoutRepo
	txManager  pg.TXManager
	publisher  EventPublisher
}

func New(memberRepo MemberRepo, gymRepo GymRepo, payoutRepo PayoutRepo, txManager pg.TXManager) *Service {
	return &Service{
		memberRepo: memberRepo,
		gymRepo:    gymRepo,
		payoutRepo: payoutRepo,
		txManager:  txManager,
	}
}

func (s *Service) WithPublisher(publisher EventPublisher) *Service {
	s.publisher = publisher
	return s
}

// GetSystemTotals recomputes circulating and gym-held coin sums on every
// call. The three reads are independent, so they run concurrently.
func (s *Service) GetSystemTotals(ctx context.Context) (*SystemTotals, error) {
	var (
		circulating int
		heldByGyms  int
		gyms        []domain.Gym
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		circulating, err = s.memberRepo.SumMemberBalances(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		heldByGyms, err = s.gymRepo.SumBalances(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		gyms, err = s.gymRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to compute system totals", zap.Error(err))
		return nil, err
	}

	breakdown := make([]GymBreakdown, len(gyms))
	for i, gym := range gyms {
		breakdown[i] = GymBreakdown{
			GymID:   gym.ID,
			Name:    gym.Name,
			Balance: gym.CoinBalance,
		}
	}

	return &SystemTotals{
		TotalCoinsCirculating: circulating,
		TotalCoinsHeldByGyms:  heldByGyms,
		PerGym:                breakdown,
	}, nil
}

// SimulatePayout clears up to coinsToClear from the gym balance (floored at
// zero) and records the cash conversion. No payment processor is called; the
// record is the boundary where a real one would plug in.
func (s *Service) SimulatePayout(ctx context.Context, gymID int, cashAmount float64, coinsToClear int) (*PayoutResult, error) {
	if coinsToClear <= 0 || cashAmount < 0 {
		return nil, ErrValidation
	}

	gym, err := s.gymRepo.FindByID(ctx, gymID)
	if err != nil {
		zap.L().Error("failed to get gym", zap.Error(err))
		return nil, err
	}
	if gym == nil {
		return nil, ErrGymNotFound
	}

	var result PayoutResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		prevBalance, newBalance, err := s.gymRepo.ClearCoins(ctx, gymID, coinsToClear)
		if err != nil {
			return err
		}

		// Recorded against the balances the decrement actually saw, so a
		// concurrent redemption between the existence check and the update
		// cannot skew the record.
		payout := &domain.Payout{
			GymID:        gymID,
			CashAmount:   cashAmount,
			CoinsCleared: prevBalance - newBalance,
		}
		if _, err := s.payoutRepo.Create(ctx, payout); err != nil {
			return err
		}
		result = PayoutResult{Payout: *payout, NewBalance: newBalance}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to record payout", zap.Int("gymID", gymID), zap.Error(err))
		return nil, err
	}

	metrics.PayoutsTotal.Inc()
	if s.publisher != nil {
		event := events.Event{
			Type:       events.TypePayout,
			GymID:      gymID,
			Coins:      result.Payout.CoinsCleared,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			zap.L().Warn("failed to publish payout event", zap.Error(err))
		}
	}
	return &result, nil
}

func (s *Service) GetPayouts(ctx context.Context, gymID int) ([]domain.Payout, error) {
	payouts, err := s.payoutRepo.ListByGym(ctx, gymID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}
