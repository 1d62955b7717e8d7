package calendar

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
	cal := r.Group("/calendar")
	{
		cal.POST("/daily", h.GetDailyView)
		cal.POST("/weekly", h.GetWeeklyView)
		cal.POST("/monthly", h.GetMonthlyView)
	}
}

func (h *Handler) GetDailyView(c *gin.Context) {
	req, ok := h.bindCalendarRequest(c)
	if !ok {
		return
	}

	view, err := h.service.DailyView(req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) GetWeeklyView(c *gin.Context) {
	req, ok := h.bindCalendarRequest(c)
	if !ok {
		return
	}

	view, err := h.service.WeeklyView(req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, view)
}

func (h *Handler) GetMonthlyView(c *gin.Context) {
	req, ok := h.bindCalendarRequest(c)
	if !ok {
		return
	}

	grid, err := h.service.MonthlyView(req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, grid)
}

func (h *Handler) bindCalendarRequest(c *gin.Context) (*model.CalendarRequest, bool) {
	var req model.CalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBadRequest(c, "invalid request body", err)
		return nil, false
	}
	if err := h.validator.Validate(&req); err != nil {
		httputil.RespondWithBadRequest(c, err.Error(), err)
		return nil, false
	}
	return &req, true
}
