package service

import (
	"github.com/fitpass/gymcoin/internal/config"
	"github.com/fitpass/gymcoin/internal/handlers/admin"
	authhandlers "github.com/fitpass/gymcoin/internal/handlers/auth"
	"github.com/fitpass/gymcoin/internal/handlers/coins"
	"github.com/fitpass/gymcoin/internal/handlers/gyms"
	"github.com/fitpass/gymcoin/internal/handlers/qr"
	"github.com/fitpass/gymcoin/internal/pg"
	"github.com/fitpass/gymcoin/internal/repo"
	"github.com/fitpass/gymcoin/internal/service/adminservice"
	"github.com/fitpass/gymcoin/internal/service/authservice"
	"github.com/fitpass/gymcoin/internal/service/coinservice"
	"github.com/fitpass/gymcoin/internal/service/gymservice"
	"github.com/fitpass/gymcoin/internal/service/qrservice"
	"github.com/fitpass/gymcoin/internal/service/redemptionservice"
	pkgauth "github.com/fitpass/gymcoin/pkg/auth"
)

type Services struct {
	AuthService       authhandlers.Service
	CoinService       coins.Service
	RedemptionService coins.ScanService
	QRService         qr.Service
	AdminService      admin.Service
	GymService        gyms.Service
}

// Options carries the optional collaborators; nil fields disable them.
type Options struct {
	Guard     coinservice.RedemptionGuard
	Publisher coinservice.EventPublisher
}

func New(repos *repo.Repositories, txManager pg.TXManager, cfg *config.Config, jwtService pkgauth.JWTServiceInterface, opts Options) *Services {
	coinService := coinservice.New(repos.UserRepo, repos.GymRepo, repos.TransactionRepo, repos.PurchaseRepo, txManager)
	if opts.Guard != nil {
		coinService.WithGuard(opts.Guard)
	}
	if opts.Publisher != nil {
		coinService.WithPublisher(opts.Publisher)
	}

	qrService := qrservice.New(cfg.QRSecret, cfg.QRTTL)
	redemptionService := redemptionservice.New(qrService, repos.GymRepo, coinService)

	adminService := adminservice.New(repos.UserRepo, repos.GymRepo, repos.PayoutRepo, txManager)
	if opts.Publisher != nil {
		adminService.WithPublisher(opts.Publisher)
	}

	authService := authservice.New(repos.UserRepo, &pkgauth.HashService{}, jwtService)
	gymService := gymservice.New(repos.GymRepo)

	return &Services{
		AuthService:       authService,
		CoinService:       coinService,
		RedemptionService: redemptionService,
		QRService:         qrService,
		AdminService:      adminService,
		GymService:        gymService,
	}
}
