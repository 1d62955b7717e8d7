package availability

import (
	"github.com/gin-gonic/gin"

	"github.com/salonkit/booking-api/internal/model"
	"github.com/salonkit/booking-api/internal/service/booking"
	"github.com/salonkit/booking-api/pkg/httputil"
	"github.com/salonkit/booking-api/pkg/validator"
)

type Handler struct {
	service   *booking.Service
	validator *validator.Validator
}

func NewHandler(service *booking.Service, v *validator.Validator) *Handler {
	return &Handler{service: service, validator: v}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	av := r.Group("/availability")
	{
		av.POST("/slots", h.GetSlots)
		av.POST("/days", h.GetBookableDays)
	}
	r.POST("/bookings", h.BuildBooking)
}

// GetSlots returns the bookable start times of one date for the supplied
// salon configuration, service selection and existing bookings.
func (h *Handler) GetSlots(c *gin.Context) {
	var req model.SlotQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBadRequest(c, "invalid request body", err)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithBadRequest(c, err.Error(), err)
		return
	}

	slots, err := h.service.AvailableSlots(&req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"date":  req.Date,
		"slots": slots,
	})
}

// GetBookableDays returns the 42-cell month grid of selectable dates.
func (h *Handler) GetBookableDays(c *gin.Context) {
	var req model.BookableDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBadRequest(c, "invalid request body", err)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithBadRequest(c, err.Error(), err)
		return
	}

	days, err := h.service.BookableDays(&req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"pointer": req.Pointer,
		"days":    days,
	})
}

// BuildBooking validates a chosen slot against the snapshot and returns
// the assembled pending booking. Persisting it is the caller's concern.
func (h *Handler) BuildBooking(c *gin.Context) {
	var req model.BuildBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBadRequest(c, "invalid request body", err)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithBadRequest(c, err.Error(), err)
		return
	}

	bk, err := h.service.BuildBooking(&req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, bk)
}
