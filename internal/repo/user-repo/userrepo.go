package userrepo

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, name, role, coin_balance
		FROM users
		WHERE login = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, login).Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Name, &user.Role, &user.CoinBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by login", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, name, role, coin_balance
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Name, &user.Role, &user.CoinBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Name, user.Role).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AddCoins credits a member balance and returns the new balance.
func (repo *Repository) AddCoins(ctx context.Context, userID int, coins int) (int, error) {
	query := `
		UPDATE users
		SET coin_balance = coin_balance + $2
		WHERE id = $1
		RETURNING coin_balance
	`
	var balance int
	err := repo.db.QueryRow(ctx, query, userID, coins).Scan(&balance)
	if err != nil {
		zap.L().Error("can't add coins to user balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// SpendCoin debits one coin in a single conditional statement, so the
// balance can never go below zero even under concurrent redemptions.
// ok is false when the balance was already zero.
func (repo *Repository) SpendCoin(ctx context.Context, userID int) (int, bool, error) {
	query := `
		UPDATE users
		SET coin_balance = coin_balance - 1
		WHERE id = $1 AND coin_balance >= 1
		RETURNING coin_balance
	`
	var balance int
	err := repo.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, false, nil
		}
		zap.L().Error("can't spend coin from user balance", zap.Error(err))
		return 0, false, err
	}
	return balance, true, nil
}

func (repo *Repository) SumMemberBalances(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(SUM(coin_balance), 0) FROM users WHERE role = $1`
	var total int
	err := repo.db.QueryRow(ctx, query, domain.RoleMember).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum member balances", zap.Error(err))
		return 0, err
	}
	return total, nil
}
