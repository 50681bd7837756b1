package coins

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fitpass/gymcoin/internal/domain"
	"github.com/fitpass/gymcoin/internal/dto"
	"github.com/fitpass/gymcoin/internal/service/coinservice"
	"github.com/fitpass/gymcoin/internal/service/redemptionservice"
	"github.com/fitpass/gymcoin/pkg/auth"
	"github.com/fitpass/gymcoin/pkg/utils"
	"github.com/fitpass/gymcoin/pkg/validate"
)

//go:generate mockgen -source=coins.go -destination=coins_mock.go -package=coins

type Service interface {
	Credit(ctx context.Context, memberID, coins int, cashAmount float64, paymentRef string) (*coinservice.PurchaseResult, error)
	DebitForVisit(ctx context.Context, memberID, gymID int) (*coinservice.RedemptionResult, error)
	MemberHistory(ctx context.Context, memberID int) (*coinservice.MemberHistory, error)
	GymHistory(ctx context.Context, gymID int) (*coinservice.GymHistory, error)
}

type ScanService interface {
	Scan(ctx context.Context, raw string, operatorID int) *redemptionservice.ScanResult
}

type CoinsHandler struct {
	coinService Service
	scanService ScanService
}

func New(coinService Service, scanService ScanService) *CoinsHandler {
	return &CoinsHandler{
		coinService: coinService,
		scanService: scanService,
	}
}

// Purchase godoc
//
//	@Summary		Buy a coin package
//	@Description	Credit purchased coins to the authenticated member and record the purchase.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amounts"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Member not found"
//	@Failure		422		{object}	utils.Response	"Invalid payment reference"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/purchase [post]
func (h *CoinsHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validate.IsLuhn(req.PaymentRef) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid payment reference")
		return
	}

	result, err := h.coinService.Credit(r.Context(), memberID, req.Coins, req.Amount, req.PaymentRef)
	if err != nil {
		switch {
		case errors.Is(err, coinservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, coinservice.ErrMemberNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{
		Balance:    result.Balance,
		Coins:      result.Purchase.Coins,
		Amount:     result.Purchase.CashAmount,
		PaymentRef: result.Purchase.PaymentRef,
		CreatedAt:  result.Purchase.CreatedAt,
	})
}

// Use godoc
//
//	@Summary		Redeem one coin at a gym
//	@Description	Debit one coin from the authenticated member and credit the gym, once per gym per UTC day.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UseRequestDTO	true	"Redemption payload"
//	@Success		200		{object}	dto.RedemptionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient coin balance"
//	@Failure		404		{object}	utils.Response	"Member or gym not found"
//	@Failure		409		{object}	utils.Response	"Already redeemed at this gym today"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/use [post]
func (h *CoinsHandler) Use(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.UseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.coinService.DebitForVisit(r.Context(), memberID, req.GymID)
	if err != nil {
		respondRedemptionError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.RedemptionResponseDTO{
		MemberID:   result.MemberID,
		MemberName: result.MemberName,
		GymID:      result.GymID,
		Balance:    result.Balance,
	})
}

// Scan godoc
//
//	@Summary		Redeem a scanned member code
//	@Description	Verify a scanned QR payload and redeem one coin for the gym operated by the authenticated account. A denial is a 200 response with granted=false.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ScanRequestDTO	true	"Scan payload"
//	@Success		200		{object}	dto.ScanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not a gym operator"
//	@Router			/api/coins/scan [post]
func (h *CoinsHandler) Scan(w http.ResponseWriter, r *http.Request) {
	operatorID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ScanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.scanService.Scan(r.Context(), req.QR, operatorID)
	utils.RespondWithJSON(w, http.StatusOK, dto.ScanResponseDTO{
		Granted:    result.Granted,
		MemberName: result.MemberName,
		Balance:    result.Balance,
		Reason:     result.Reason,
	})
}

// MemberHistory godoc
//
//	@Summary		Member coin history
//	@Description	Balance, purchase records and ledger transactions for one member.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	true	"Member ID"
//	@Success		200		{object}	dto.MemberHistoryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid member id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Member not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/user/{userID} [get]
func (h *CoinsHandler) MemberHistory(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	history, err := h.coinService.MemberHistory(r.Context(), memberID)
	if err != nil {
		if errors.Is(err, coinservice.ErrMemberNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	purchases := make([]dto.CoinPurchaseDTO, len(history.Purchases))
	for i, p := range history.Purchases {
		purchases[i] = dto.CoinPurchaseDTO{
			Coins:      p.Coins,
			Amount:     p.CashAmount,
			PaymentRef: p.PaymentRef,
			CreatedAt:  p.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.MemberHistoryResponseDTO{
		Balance:      history.Balance,
		Purchases:    purchases,
		Transactions: toTransactionDTOs(history.Transactions),
	})
}

// GymHistory godoc
//
//	@Summary		Gym coin history
//	@Description	Balance, redemption transactions and monthly totals for one gym.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gymID	path		int	true	"Gym ID"
//	@Success		200		{object}	dto.GymHistoryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid gym id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Gym not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/gym/{gymID} [get]
func (h *CoinsHandler) GymHistory(w http.ResponseWriter, r *http.Request) {
	gymID, err := strconv.Atoi(chi.URLParam(r, "gymID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid gym id")
		return
	}

	history, err := h.coinService.GymHistory(r.Context(), gymID)
	if err != nil {
		if errors.Is(err, coinservice.ErrGymNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.GymHistoryResponseDTO{
		Balance:       history.Balance,
		Transactions:  toTransactionDTOs(history.Transactions),
		MonthlyTotals: history.MonthlyTotals,
	})
}

func respondRedemptionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, coinservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, coinservice.ErrAlreadyRedeemedToday):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, coinservice.ErrMemberNotFound), errors.Is(err, coinservice.ErrGymNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toTransactionDTOs(txns []domain.CoinTransaction) []dto.TransactionDTO {
	out := make([]dto.TransactionDTO, len(txns))
	for i, txn := range txns {
		out[i] = dto.TransactionDTO{
			ID:        txn.ID,
			GymID:     txn.GymID,
			Type:      txn.Type,
			Coins:     txn.Coins,
			Status:    txn.Status,
			CreatedAt: txn.CreatedAt,
		}
	}
	return out
}
