package payoutrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/fitpass/gymcoin/internal/domain"
	"github.com/fitpass/gymcoin/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
		INSERT INTO payouts (gym_id, cash_amount, coins_cleared)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, payout.GymID, payout.CashAmount, payout.CoinsCleared).Scan(&payout.ID, &payout.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

func (repo *Repository) ListByGym(ctx context.Context, gymID int) ([]domain.Payout, error) {
	query := `
		SELECT id, gym_id, cash_amount, coins_cleared, created_at
		FROM payouts
		WHERE gym_id = $1
		ORDER BY created_at DESC
	`
	rows, err := repo.db.Query(ctx, query, gymID)
	if err != nil {
		zap.L().Error("can't fetch payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var payout domain.Payout
		if err := rows.Scan(&payout.ID, &payout.GymID, &payout.CashAmount, &payout.CoinsCleared, &payout.CreatedAt); err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, payout)
	}
	return payouts, rows.Err()
}
