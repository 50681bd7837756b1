package domain

import "time"

const (
	RoleMember = "member"
	RoleGym    = "gym"
	RoleAdmin  = "admin"
)

const (
	TransactionPurchase = "purchase"
	TransactionUsage    = "usage"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	CoinBalance  int       `db:"coin_balance"`
	CreatedAt    time.Time `db:"created_at"`
}

type Gym struct {
	ID          int       `db:"id"`
	OwnerID     int       `db:"owner_id"`
	Name        string    `db:"name"`
	CoinBalance int       `db:"coin_balance"`
	CreatedAt   time.Time `db:"created_at"`
}

// CoinTransaction is an append-only ledger row. A usage row always carries a
// gym id, a purchase row never does; the schema enforces the same rule.
type CoinTransaction struct {
	ID        int       `db:"id"`
	MemberID  int       `db:"member_id"`
	GymID     *int      `db:"gym_id"`
	Type      string    `db:"type"`
	Coins     int       `db:"coins"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type CoinPurchase struct {
	ID         int       `db:"id"`
	MemberID   int       `db:"member_id"`
	Coins      int       `db:"coins"`
	CashAmount float64   `db:"cash_amount"`
	PaymentRef string    `db:"payment_ref"`
	CreatedAt  time.Time `db:"created_at"`
}

// GymMonthlyTotal counts coins redeemed at a gym during one month,
// keyed by "YYYY-MM".
type GymMonthlyTotal struct {
	GymID int    `db:"gym_id"`
	Month string `db:"month"`
	Coins int    `db:"coins"`
}

type Payout struct {
	ID           int       `db:"id"`
	GymID        int       `db:"gym_id"`
	CashAmount   float64   `db:"cash_amount"`
	CoinsCleared int       `db:"coins_cleared"`
	CreatedAt    time.Time `db:"created_at"`
}
