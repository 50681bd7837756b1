package gymrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

func (repo *Repository) Create(ctx context.Context, gym *domain.Gym) (*domain.Gym, error) {
	query := `
		INSERT INTO gyms (owner_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, gym.OwnerID, gym.Name).Scan(&gym.ID, &gym.CreatedAt)
	if err != nil {
		zap.L().Error("can't save gym", zap.Error(err))
		return nil, err
	}
	return gym, nil
}

func (repo *Repository) FindByID(ctx context.Context, gymID int) (*domain.Gym, error) {
	query := `
		SELECT id, owner_id, name, coin_balance, created_at
		FROM gyms
		WHERE id = $1
	`
	var gym domain.Gym
	err := repo.db.QueryRow(ctx, query, gymID).Scan(&gym.ID, &gym.OwnerID, &gym.Name, &gym.CoinBalance, &gym.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find gym", zap.Error(err))
		return nil, err
	}
	return &gym, nil
}

// FindByOwner resolves the gym operated by a user account. The scan flow
// uses it so the credited gym always belongs to the authenticated operator.
func (repo *Repository) FindByOwner(ctx context.Context, ownerID int) (*domain.Gym, error) {
	query := `
		SELECT id, owner_id, name, coin_balance, created_at
		FROM gyms
		WHERE owner_id = $1
		ORDER BY id
		LIMIT 1
	`
	var gym domain.Gym
	err := repo.db.QueryRow(ctx, query, ownerID).Scan(&gym.ID, &gym.OwnerID, &gym.Name, &gym.CoinBalance, &gym.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find gym by owner", zap.Error(err))
		return nil, err
	}
	return &gym, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.Gym, error) {
	query := `
		SELECT id, owner_id, name, coin_balance, created_at
		FROM gyms
		ORDER BY id
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list gyms", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var gyms []domain.Gym
	for rows.Next() {
		var gym domain.Gym
		if err := rows.Scan(&gym.ID, &gym.OwnerID, &gym.Name, &gym.CoinBalance, &gym.CreatedAt); err != nil {
			zap.L().Error("can't scan gym row", zap.Error(err))
			return nil, err
		}
		gyms = append(gyms, gym)
	}
	return gyms, rows.Err()
}

// Credit adds redeemed coins to a gym balance and returns the new balance.
func (repo *Repository) Credit(ctx context.Context, gymID int, coins int) (int, error) {
	query := `
		UPDATE gyms
		SET coin_balance = coin_balance + $2
		WHERE id = $1
		RETURNING coin_balance
	`
	var balance int
	err := repo.db.QueryRow(ctx, query, gymID, coins).Scan(&balance)
	if err != nil {
		zap.L().Error("can't credit gym balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (repo *Repository) AddMonthlyTotal(ctx context.Context, gymID int, month string, coins int) error {
	query := `
		INSERT INTO gym_monthly_totals (gym_id, month, coins)
		VALUES ($1, $2, $3)
		ON CONFLICT (gym_id, month) DO UPDATE SET coins = gym_monthly_totals.coins + EXCLUDED.coins
	`
	_, err := repo.db.Exec(ctx, query, gymID, month, coins)
	if err != nil {
		zap.L().Error("can't update gym monthly total", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) GetMonthlyTotals(ctx context.Context, gymID int) ([]domain.GymMonthlyTotal, error) {
	query := `
		SELECT gym_id, month, coins
		FROM gym_monthly_totals
		WHERE gym_id = $1
		ORDER BY month
	`
	rows, err := repo.db.Query(ctx, query, gymID)
	if err != nil {
		zap.L().Error("can't fetch gym monthly totals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var totals []domain.GymMonthlyTotal
	for rows.Next() {
		var total domain.GymMonthlyTotal
		if err := rows.Scan(&total.GymID, &total.Month, &total.Coins); err != nil {
			zap.L().Error("can't scan monthly total row", zap.Error(err))
			return nil, err
		}
		totals = append(totals, total)
	}
	return totals, rows.Err()
}

// ClearCoins removes up to coins from a gym balance, flooring at zero, and
// returns the balance before and after the decrement. Both come from the
// same locked row so the caller can record exactly how many coins went away.
func (repo *Repository) ClearCoins(ctx context.Context, gymID int, coins int) (int, int, error) {
	query := `
		UPDATE gyms
		SET coin_balance = GREATEST(gyms.coin_balance - $2, 0)
		FROM (SELECT id, coin_balance FROM gyms WHERE id = $1 FOR UPDATE) prev
		WHERE gyms.id = prev.id
		RETURNING prev.coin_balance, gyms.coin_balance
	`
	var prevBalance, balance int
	err := repo.db.QueryRow(ctx, query, gymID, coins).Scan(&prevBalance, &balance)
	if err != nil {
		zap.L().Error("can't clear gym coins", zap.Error(err))
		return 0, 0, err
	}
	return prevBalance, balance, nil
}

func (repo *Repository) SumBalances(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(SUM(coin_balance), 0) FROM gyms`
	var total int
	err := repo.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum gym balances", zap.Error(err))
		return 0, err
	}
	return total, nil
}
