package repo

import (
	"testing"

	gymrepo "github.com/fitpass/gymcoin/internal/repo/gym-repo"
	payoutrepo "github.com/fitpass/gymcoin/internal/repo/payout-repo"
	purchaserepo "github.com/fitpass/gymcoin/internal/repo/purchase-repo"
	transactionrepo "github.com/fitpass/gymcoin/internal/repo/transaction-repo"
	userrepo "github.com/fitpass/gymcoin/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := New(mockDB)

	assert.NotNil(t, repos.UserRepo)
	assert.NotNil(t, repos.GymRepo)
	assert.NotNil(t, repos.TransactionRepo)
	assert.NotNil(t, repos.PurchaseRepo)
	assert.NotNil(t, repos.PayoutRepo)

	assert.IsType(t, &userrepo.Repository{}, repos.UserRepo)
	assert.IsType(t, &gymrepo.Repository{}, repos.GymRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repos.TransactionRepo)
	assert.IsType(t, &purchaserepo.Repository{}, repos.PurchaseRepo)
	assert.IsType(t, &payoutrepo.Repository{}, repos.PayoutRepo)

	if err := mockDB.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
