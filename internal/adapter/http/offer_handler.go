package http

import (
	"net/http"

	mw "lendlink-backend/internal/adapter/middleware"
	"lendlink-backend/internal/usecase/offer"

	"github.com/labstack/echo/v4"
)

type OfferHandler struct{ uc *offer.Usecase }

func NewOfferHandler(uc *offer.Usecase) *OfferHandler { return &OfferHandler{uc: uc} }

type createOfferReq struct {
	Amount        float64 `json:"amount"          validate:"required,gt=0,dec2"`
	InterestRate  float64 `json:"interest_rate"   validate:"required,gt=0"`
	MaxTermMonths int     `json:"max_term_months" validate:"required,gt=0"`
}

func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req createOfferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), mw.Identity(c).UserID, offer.CreateOfferInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *OfferHandler) ListOwnOffers(c echo.Context) error {
	out, err := h.uc.ListOwn(c.Request().Context(), mw.Identity(c).UserID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OfferHandler) ListActiveOffers(c echo.Context) error {
	out, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
