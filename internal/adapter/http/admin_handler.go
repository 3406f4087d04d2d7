package http

import (
	"net/http"

	mw "lendlink-backend/internal/adapter/middleware"
	userDomain "lendlink-backend/internal/domain/user"
	"lendlink-backend/internal/usecase/admin"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct{ uc *admin.Usecase }

func NewAdminHandler(uc *admin.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

type setRoleReq struct {
	Role string `json:"role" validate:"required,role"`
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) ListBorrowers(c echo.Context) error {
	out, err := h.uc.ListBorrowersWithDerivedData(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	targetID := c.Param("user_id")
	if targetID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
	}

	if err := h.uc.DeleteUser(c.Request().Context(), mw.Identity(c).UserID, targetID); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) SetUserRole(c echo.Context) error {
	targetID := c.Param("user_id")
	if targetID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
	}

	var req setRoleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	out, err := h.uc.SetUserRole(c.Request().Context(), targetID, userDomain.Role(req.Role))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) ListAllApplications(c echo.Context) error {
	out, err := h.uc.ListAllApplications(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) ListAllOffers(c echo.Context) error {
	out, err := h.uc.ListAllOffers(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) ListAllPayments(c echo.Context) error {
	out, err := h.uc.ListAllPayments(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
