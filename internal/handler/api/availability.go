package api

import (
	"net/http"

	reqdto "meeting-scheduler/internal/handler/dto/request"
	resdto "meeting-scheduler/internal/handler/dto/response"
	"meeting-scheduler/internal/handler/httperr"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary List available slots
// @Description List bookable slots of a scheduling link for one date
// @Tags availability
// @Produce json
// @Param slug path string true "Link slug"
// @Param date query string true "Date (YYYY-MM-DD) in the link timezone"
// @Param timezone query string false "IANA timezone to render slots in"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/links/{slug}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	view, err := h.q.Slots(c.Request.Context(), c.Param("slug"), query.Date, query.Timezone)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Get booking
// @Description Booking confirmation rendered in the requester's timezone
// @Tags bookings
// @Produce json
// @Param slug path string true "Link slug"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/links/{slug}/bookings/{id} [get]
func (h *AvailabilityHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	view, err := h.q.Booking(c.Request.Context(), c.Param("slug"), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
