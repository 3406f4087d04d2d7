package http

import (
	"net/http"

	mw "lendlink-backend/internal/adapter/middleware"
	appDomain "lendlink-backend/internal/domain/application"
	"lendlink-backend/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	OfferID       string  `json:"offer_id"       validate:"required,hex32"`
	NationalID    string  `json:"national_id"    validate:"required"`
	MonthlySalary float64 `json:"monthly_salary" validate:"required,gt=0,dec2"`
	Reason        string  `json:"reason"`
}

type setStatusReq struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

func (h *ApplicationHandler) CreateApplication(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), mw.Identity(c).UserID, application.CreateApplicationInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) ListOwnApplications(c echo.Context) error {
	out, err := h.uc.ListOwn(c.Request().Context(), mw.Identity(c).UserID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApplicationHandler) ListApplicationsForOffers(c echo.Context) error {
	out, err := h.uc.ListForLenderOffers(c.Request().Context(), mw.Identity(c).UserID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}

	var req setStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.SetStatus(c.Request().Context(), mw.Identity(c).UserID, applicationID, appDomain.Status(req.Status))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
