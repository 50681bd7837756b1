package transactionrepo

import (
	"context"
	"time"

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

// Create appends a ledger row. Rows are never updated or deleted afterwards.
func (repo *Repository) Create(ctx context.Context, txn *domain.CoinTransaction) (*domain.CoinTransaction, error) {
	query := `
		INSERT INTO coin_transactions (member_id, gym_id, type, coins, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, txn.MemberID, txn.GymID, txn.Type, txn.Coins, txn.Status).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't append coin transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (repo *Repository) ListByMember(ctx context.Context, memberID int) ([]domain.CoinTransaction, error) {
	query := `
		SELECT id, member_id, gym_id, type, coins, status, created_at
		FROM coin_transactions
		WHERE member_id = $1
		ORDER BY created_at DESC
	`
	return repo.list(ctx, query, memberID)
}

func (repo *Repository) ListByGym(ctx context.Context, gymID int) ([]domain.CoinTransaction, error) {
	query := `
		SELECT id, member_id, gym_id, type, coins, status, created_at
		FROM coin_transactions
		WHERE gym_id = $1
		ORDER BY created_at DESC
	`
	return repo.list(ctx, query, gymID)
}

// HasUsageSince reports whether the member already redeemed at the gym at or
// after the given instant. Backs the once-per-day guard.
func (repo *Repository) HasUsageSince(ctx context.Context, memberID, gymID int, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM coin_transactions
			WHERE member_id = $1 AND gym_id = $2 AND type = $3 AND status = $4 AND created_at >= $5
		)
	`
	var exists bool
	err := repo.db.QueryRow(ctx, query, memberID, gymID, domain.TransactionUsage, domain.StatusCompleted, since).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check usage transactions", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (repo *Repository) list(ctx context.Context, query string, arg any) ([]domain.CoinTransaction, error) {
	rows, err := repo.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't fetch coin transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.CoinTransaction
	for rows.Next() {
		var txn domain.CoinTransaction
		if err := rows.Scan(&txn.ID, &txn.MemberID, &txn.GymID, &txn.Type, &txn.Coins, &txn.Status, &txn.CreatedAt); err != nil {
			zap.L().Error("can't scan coin transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}
