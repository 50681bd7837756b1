package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitpass/gymcoin/internal/dto"
	"github.com/fitpass/gymcoin/internal/service/adminservice"
	"github.com/fitpass/gymcoin/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=admin_mock.go -package=admin

type Service interface {
	GetSystemTotals(ctx context.Context) (*adminservice.SystemTotals, error)
	SimulatePayout(ctx context.Context, gymID int, cashAmount float64, coinsToClear int) (*adminservice.PayoutResult, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// Dashboard godoc
//
//	@Summary		System coin totals
//	@Description	Coins circulating on member balances, coins held by gyms and a per-gym breakdown. Recomputed on every call.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	totals, err := h.adminService.GetSystemTotals(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	perGym := make([]dto.GymBreakdownDTO, len(totals.PerGym))
	for i, gym := range totals.PerGym {
		perGym[i] = dto.GymBreakdownDTO{
			GymID:   gym.GymID,
			Name:    gym.Name,
			Balance: gym.Balance,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		TotalCoinsCirculating: totals.TotalCoinsCirculating,
		TotalCoinsHeldByGyms:  totals.TotalCoinsHeldByGyms,
		PerGym:                perGym,
	})
}

// Payout godoc
//
//	@Summary		Simulate a gym payout
//	@Description	Clear coins from a gym balance and record the cash conversion. No payment processor is called.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PayoutRequestDTO	true	"Payout payload"
//	@Success		200		{object}	dto.PayoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amounts"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Gym not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/admin/payout [post]
func (h *AdminHandler) Payout(w http.ResponseWriter, r *http.Request) {
	var req dto.PayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.adminService.SimulatePayout(r.Context(), req.GymID, req.Amount, req.Coins)
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, adminservice.ErrGymNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PayoutResponseDTO{
		GymID:        result.Payout.GymID,
		CashAmount:   result.Payout.CashAmount,
		CoinsCleared: result.Payout.CoinsCleared,
		NewBalance:   result.NewBalance,
		CreatedAt:    result.Payout.CreatedAt,
	})
}
