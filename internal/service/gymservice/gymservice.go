package gymservice

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/fitpass/gymcoin/internal/domain"
)

//go:generate mockgen -source=gymservice.go -destination=gymservice_mock.go -package=gymservice

type Repo interface {
	Create(ctx context.Context, gym *domain.Gym) (*domain.Gym, error)
	FindByID(ctx context.Context, gymID int) (*domain.Gym, error)
	List(ctx context.Context) ([]domain.Gym, error)
}

var (
	ErrEmptyName   = errors.New("gym name must not be empty")
	ErrGymNotFound = errors.New("gym not found")
)

type Service struct {
	gymRepo Repo
}

func New(gymRepo Repo) *Service {
	return &Service{
		gymRepo: gymRepo,
	}
}

func (s *Service) Create(ctx context.Context, ownerID int, name string) (*domain.Gym, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	gym, err := s.gymRepo.Create(ctx, &domain.Gym{OwnerID: ownerID, Name: name})
	if err != nil {
		zap.L().Error("failed to create gym", zap.Error(err))
		return nil, err
	}
	return gym, nil
}

func (s *Service) Get(ctx context.Context, gymID int) (*domain.Gym, error) {
	gym, err := s.gymRepo.FindByID(ctx, gymID)
	if err != nil {
		zap.L().Error("failed to get gym", zap.Error(err))
		return nil, err
	}
	if gym == nil {
		return nil, ErrGymNotFound
	}
	return gym, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Gym, error) {
	gyms, err := s.gymRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list gyms", zap.Error(err))
		return nil, err
	}
	return gyms, nil
}
