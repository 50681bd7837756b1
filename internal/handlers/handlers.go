package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fitpass/gymcoin/docs"
	"github.com/fitpass/gymcoin/internal/domain"
	adminhandlers "github.com/fitpass/gymcoin/internal/handlers/admin"
	authhandlers "github.com/fitpass/gymcoin/internal/handlers/auth"
	coinshandlers "github.com/fitpass/gymcoin/internal/handlers/coins"
	gymshandlers "github.com/fitpass/gymcoin/internal/handlers/gyms"
	qrhandlers "github.com/fitpass/gymcoin/internal/handlers/qr"
	"github.com/fitpass/gymcoin/internal/service"
	"github.com/fitpass/gymcoin/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CoinsHandler interface {
	Purchase(w http.ResponseWriter, r *http.Request)
	Use(w http.ResponseWriter, r *http.Request)
	Scan(w http.ResponseWriter, r *http.Request)
	MemberHistory(w http.ResponseWriter, r *http.Request)
	GymHistory(w http.ResponseWriter, r *http.Request)
}

type QRHandler interface {
	MemberQR(w http.ResponseWriter, r *http.Request)
	GymQR(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	Payout(w http.ResponseWriter, r *http.Request)
}

type GymsHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler  AuthHandler
	CoinsHandler CoinsHandler
	QRHandler    QRHandler
	AdminHandler AdminHandler
	GymsHandler  GymsHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:  authhandlers.New(s.AuthService),
		CoinsHandler: coinshandlers.New(s.CoinService, s.RedemptionService),
		QRHandler:    qrhandlers.New(s.QRService),
		AdminHandler: adminhandlers.New(s.AdminService),
		GymsHandler:  gymshandlers.New(s.GymService),
		jwtService:   jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Route("/gyms", func(r chi.Router) {
				r.Get("/", h.GymsHandler.List)
				r.Get("/{gymID}", h.GymsHandler.Get)
				r.With(auth.RequireRole(domain.RoleGym)).Post("/", h.GymsHandler.Create)
			})

			r.Route("/coins", func(r chi.Router) {
				r.Get("/qr/member/{memberID}", h.QRHandler.MemberQR)
				r.Get("/qr/gym/{gymID}", h.QRHandler.GymQR)
				r.Post("/purchase", h.CoinsHandler.Purchase)
				r.Post("/use", h.CoinsHandler.Use)
				r.With(auth.RequireRole(domain.RoleGym)).Post("/scan", h.CoinsHandler.Scan)
				r.Get("/user/{userID}", h.CoinsHandler.MemberHistory)
				r.Get("/gym/{gymID}", h.CoinsHandler.GymHistory)

				r.Route("/admin", func(r chi.Router) {
					r.Use(auth.RequireRole(domain.RoleAdmin))
					r.Get("/dashboard", h.AdminHandler.Dashboard)
					r.Post("/payout", h.AdminHandler.Payout)
				})
			})
		})
	})

	return r
}
