package repo

import (
	"github.com/fitpass/gymcoin/internal/pg"
	gymrepo "github.com/fitpass/gymcoin/internal/repo/gym-repo"
	payoutrepo "github.com/fitpass/gymcoin/internal/repo/payout-repo"
	purchaserepo "github.com/fitpass/gymcoin/internal/repo/purchase-repo"
	transactionrepo "github.com/fitpass/gymcoin/internal/repo/transaction-repo"
	userrepo "github.com/fitpass/gymcoin/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	GymRepo         *gymrepo.Repository
	TransactionRepo *transactionrepo.Repository
	PurchaseRepo    *purchaserepo.Repository
	PayoutRepo      *payoutrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		GymRepo:         gymrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		PurchaseRepo:    purchaserepo.New(conn),
		PayoutRepo:      payoutrepo.New(conn),
	}
}
