package gyms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fitpass/gymcoin/internal/domain"
	"github.com/fitpass/gymcoin/internal/dto"
	"github.com/fitpass/gymcoin/internal/service/gymservice"
	"github.com/fitpass/gymcoin/pkg/auth"
	"github.com/fitpass/gymcoin/pkg/utils"
)

//go:generate mockgen -source=gyms.go -destination=gyms_mock.go -package=gyms

type Service interface {
	Create(ctx context.Context, ownerID int, name string) (*domain.Gym, error)
	Get(ctx context.Context, gymID int) (*domain.Gym, error)
	List(ctx context.Context) ([]domain.Gym, error)
}

type GymsHandler struct {
	gymService Service
}

func New(gymService Service) *GymsHandler {
	return &GymsHandler{
		gymService: gymService,
	}
}

// Create godoc
//
//	@Summary		Register a gym
//	@Description	Create a gym owned by the authenticated gym operator.
//	@Tags			Gyms
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateGymRequestDTO	true	"Gym payload"
//	@Success		200		{object}	dto.GymResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not a gym operator"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/gyms [post]
func (h *GymsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateGymRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	gym, err := h.gymService.Create(r.Context(), ownerID, req.Name)
	if err != nil {
		if errors.Is(err, gymservice.ErrEmptyName) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toGymDTO(gym))
}

// Get godoc
//
//	@Summary		Get one gym
//	@Tags			Gyms
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gymID	path		int	true	"Gym ID"
//	@Success		200		{object}	dto.GymResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid gym id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Gym not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/gyms/{gymID} [get]
func (h *GymsHandler) Get(w http.ResponseWriter, r *http.Request) {
	gymID, err := strconv.Atoi(chi.URLParam(r, "gymID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid gym id")
		return
	}

	gym, err := h.gymService.Get(r.Context(), gymID)
	if err != nil {
		if errors.Is(err, gymservice.ErrGymNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toGymDTO(gym))
}

// List godoc
//
//	@Summary		List gyms
//	@Tags			Gyms
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GymResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/gyms [get]
func (h *GymsHandler) List(w http.ResponseWriter, r *http.Request) {
	gyms, err := h.gymService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.GymResponseDTO, len(gyms))
	for i := range gyms {
		response[i] = toGymDTO(&gyms[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toGymDTO(gym *domain.Gym) dto.GymResponseDTO {
	return dto.GymResponseDTO{
		ID:        gym.ID,
		OwnerID:   gym.OwnerID,
		Name:      gym.Name,
		Balance:   gym.CoinBalance,
		CreatedAt: gym.CreatedAt,
	}
}
