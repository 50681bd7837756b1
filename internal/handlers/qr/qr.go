package qr

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fitpass/gymcoin/internal/dto"
	"github.com/fitpass/gymcoin/internal/service/qrservice"
	"github.com/fitpass/gymcoin/pkg/utils"
)

//go:generate mockgen -source=qr.go -destination=qr_mock.go -package=qr

type Service interface {
	IssueMember(memberID int) (*qrservice.Code, error)
	IssueGym(gymID int) (*qrservice.Code, error)
}

type QRHandler struct {
	qrService Service
}

func New(qrService Service) *QRHandler {
	return &QRHandler{
		qrService: qrService,
	}
}

// MemberQR godoc
//
//	@Summary		Member QR code
//	@Description	Issue a short-lived signed QR code identifying the member, rendered as a PNG data URI.
//	@Tags			QR
//	@Security		BearerAuth
//	@Produce		json
//	@Param			memberID	path		int	true	"Member ID"
//	@Success		200			{object}	dto.QRResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid member id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/qr/member/{memberID} [get]
func (h *QRHandler) MemberQR(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.Atoi(chi.URLParam(r, "memberID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	code, err := h.qrService.IssueMember(memberID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.QRResponseDTO{QRCode: code.Image})
}

// GymQR godoc
//
//	@Summary		Gym QR code
//	@Description	Issue a short-lived signed QR code identifying the gym, rendered as a PNG data URI.
//	@Tags			QR
//	@Security		BearerAuth
//	@Produce		json
//	@Param			gymID	path		int	true	"Gym ID"
//	@Success		200		{object}	dto.QRResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid gym id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/coins/qr/gym/{gymID} [get]
func (h *QRHandler) GymQR(w http.ResponseWriter, r *http.Request) {
	gymID, err := strconv.Atoi(chi.URLParam(r, "gymID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid gym id")
		return
	}

	code, err := h.qrService.IssueGym(gymID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.QRResponseDTO{QRCode: code.Image})
}
