package redemptionservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/fitpass/gymcoin/internal/domain"
	"github.com/fitpass/gymcoin/internal/service/coinservice"
	"github.com/fitpass/gymcoin/internal/service/qrservice"
)

//go:generate mockgen -source=redemptionservice.go -destination=redemptionservice_mock.go -package=redemptionservice

type Verifier interface {
	Verify(raw string) (*qrservice.Identity, error)
}

type GymResolver interface {
	FindByOwner(ctx context.Context, ownerID int) (*domain.Gym, error)
}

type CoinService interface {
	DebitForVisit(ctx context.Context, memberID, gymID int) (*coinservice.RedemptionResult, error)
}

// ScanResult is the operator-facing outcome of a scan. A denial is a normal
// result, not an error: the operator reads the reason and asks for a fresh
// scan.
type ScanResult struct {
	Granted    bool
	MemberName string
	Balance    int
	Reason     string
}

type Service struct {
	verifier Verifier
	gyms     GymResolver
	coins    CoinService
}

func New(verifier Verifier, gyms GymResolver, coins CoinService) *Service {
	return &Service{
		verifier: verifier,
		gyms:     gyms,
		coins:    coins,
	}
}

// Scan verifies a raw scanned payload and redeems one coin for the acting
// gym. The gym is resolved from the authenticated operator, never from the
// scanned payload or the request. Every failure is folded into a denial;
// nothing is left half-applied because the debit itself is transactional.
func (s *Service) Scan(ctx context.Context, raw string, operatorID int) *ScanResult {
	identity, err := s.verifier.Verify(raw)
	if err != nil {
		return &ScanResult{Reason: "unrecognized code"}
	}
	if identity.Type != qrservice.TypeMember {
		return &ScanResult{Reason: "not a member code"}
	}

	gym, err := s.gyms.FindByOwner(ctx, operatorID)
	if err != nil {
		zap.L().Error("failed to resolve operator gym", zap.Error(err))
		return &ScanResult{Reason: "internal error, try again later"}
	}
	if gym == nil {
		return &ScanResult{Reason: "no gym registered for this account"}
	}

	result, err := s.coins.DebitForVisit(ctx, identity.ID, gym.ID)
	if err != nil {
		return &ScanResult{Reason: denialReason(err)}
	}

	return &ScanResult{
		Granted:    true,
		MemberName: result.MemberName,
		Balance:    result.Balance,
	}
}

func denialReason(err error) string {
	switch {
	case errors.Is(err, coinservice.ErrMemberNotFound):
		return "member not found"
	case errors.Is(err, coinservice.ErrGymNotFound):
		return "gym not found"
	case errors.Is(err, coinservice.ErrInsufficientBalance):
		return "no coins left on the member balance"
	case errors.Is(err, coinservice.ErrAlreadyRedeemedToday):
		return "already redeemed at this gym today"
	default:
		zap.L().Error("unexpected error during scan", zap.Error(err))
		return "internal error, try again later"
	}
}
