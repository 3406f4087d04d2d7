package http

import (
	"errors"
	"net/http"

	appDomain "lendlink-backend/internal/domain/application"
	offerDomain "lendlink-backend/internal/domain/offer"
	paymentDomain "lendlink-backend/internal/domain/payment"
	userDomain "lendlink-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// writeDomainError maps business failures onto the error taxonomy:
// Validation(400), Forbidden(403), NotFound(404), Internal(500).
// Unauthorized is handled earlier, in the auth middleware.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, userDomain.ErrEmailTaken),
		errors.Is(err, userDomain.ErrInvalidCredentials),
		errors.Is(err, userDomain.ErrSelfDelete),
		errors.Is(err, appDomain.ErrBadStatus),
		errors.Is(err, appDomain.ErrOfferInactive):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, appDomain.ErrNotOfferOwner),
		errors.Is(err, appDomain.ErrNotOwner):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, offerDomain.ErrNotFound),
		errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, paymentDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	default:
		zap.L().Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
