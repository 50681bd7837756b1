package purchaserepo

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

func (repo *Repository) Create(ctx context.Context, purchase *domain.CoinPurchase) (*domain.CoinPurchase, error) {
	query := `
		INSERT INTO coin_purchases (member_id, coins, cash_amount, payment_ref)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, purchase.MemberID, purchase.Coins, purchase.CashAmount, purchase.PaymentRef).Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		zap.L().Error("can't save coin purchase", zap.Error(err))
		return nil, err
	}
	return purchase, nil
}

func (repo *Repository) ListByMember(ctx context.Context, memberID int) ([]domain.CoinPurchase, error) {
	query := `
		SELECT id, member_id, coins, cash_amount, payment_ref, created_at
		FROM coin_purchases
		WHERE member_id = $1
		ORDER BY created_at DESC
	`
	rows, err := repo.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't fetch coin purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.CoinPurchase
	for rows.Next() {
		var purchase domain.CoinPurchase
		if err := rows.Scan(&purchase.ID, &purchase.MemberID, &purchase.Coins, &purchase.CashAmount, &purchase.PaymentRef, &purchase.CreatedAt); err != nil {
			zap.L().Error("can't scan coin purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	return purchases, rows.Err()
}
