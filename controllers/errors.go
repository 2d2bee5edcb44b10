package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/muhammadnuman-eng/shawarmabackend/pkg/resp"
	"github.com/muhammadnuman-eng/shawarmabackend/services"
)

// writeServiceError maps domain errors onto HTTP statuses. Promo
// rejections collapse into one generic message so callers cannot probe
// which constraint failed.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case services.IsPromoRejection(err):
		resp.BadRequest(c, services.PromoRejectedMessage)
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrAddressNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrOrderNotCancellable),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrOrderNumberTaken):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrTotalMismatch),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrProductUnavail),
		errors.Is(err, services.ErrRegistrationClosed),
		errors.Is(err, services.ErrEmailTaken):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
