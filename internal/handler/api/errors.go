package api

import (
	"net/http"

	"meeting-scheduler/internal/handler/httperr"
	"meeting-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const msgSlotUnavailable = "This time slot is no longer available"

// abortWithUseCaseError maps use case sentinels to HTTP statuses.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrLinkNotFound), errs.Is(err, errs.ErrLinkInactive):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Scheduling link not found", nil)
	case errs.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
	case errs.Is(err, errs.ErrInvalidTimezone):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid timezone", nil)
	case errs.Is(err, errs.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, msgSlotUnavailable, nil)
	case errs.Is(err, errs.ErrInvalidBooking):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid booking", err.Error())
	case errs.Is(err, errs.ErrInvalidCancelToken):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Invalid or expired cancellation link", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
