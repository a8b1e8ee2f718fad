package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
	"github.com/edulink/edulink-backend/internal/validator"
)

type WeekDayHandler struct {
	weekDayService *service.WeekDayService
}

func NewWeekDayHandler(weekDayService *service.WeekDayService) *WeekDayHandler {
	return &WeekDayHandler{weekDayService: weekDayService}
}

// List godoc
// GET /api/v1/weekdays
func (h *WeekDayHandler) List(c *gin.Context) {
	days, err := h.weekDayService.List(c.Request.Context(), tenantID(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	if days == nil {
		days = []model.WeekDay{}
	}
	response.Success(c, http.StatusOK, "Week days retrieved successfully.", days)
}

// Create godoc
// POST /api/v1/weekdays
func (h *WeekDayHandler) Create(c *gin.Context) {
	var req model.CreateWeekDayRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	day, err := h.weekDayService.Create(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Week day created successfully.", day)
}

// Update godoc
// PUT /api/v1/weekdays/:id
func (h *WeekDayHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateWeekDayRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	day, err := h.weekDayService.Update(c.Request.Context(), tenantID(c), id, &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Week day updated successfully.", day)
}

// Delete godoc
// DELETE /api/v1/weekdays/:id
func (h *WeekDayHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.weekDayService.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Week day deleted successfully.", nil)
}

// ToggleActive godoc
// PATCH /api/v1/weekdays/:id/toggle
func (h *WeekDayHandler) ToggleActive(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	day, err := h.weekDayService.ToggleActive(c.Request.Context(), tenantID(c), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Week day status updated successfully.", day)
}

// Stats godoc
// GET /api/v1/weekdays/stats
func (h *WeekDayHandler) Stats(c *gin.Context) {
	stats, err := h.weekDayService.Stats(c.Request.Context(), tenantID(c))
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Week day statistics retrieved successfully.", stats)
}
