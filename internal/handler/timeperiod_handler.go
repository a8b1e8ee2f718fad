package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
	"github.com/edulink/edulink-backend/internal/validator"
)

type TimePeriodHandler struct {
	timePeriodService *service.TimePeriodService
}

func NewTimePeriodHandler(timePeriodService *service.TimePeriodService) *TimePeriodHandler {
	return &TimePeriodHandler{timePeriodService: timePeriodService}
}

// List godoc
// GET /api/v1/periods
func (h *TimePeriodHandler) List(c *gin.Context) {
	periods, err := h.timePeriodService.List(c.Request.Context(), tenantID(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	if periods == nil {
		periods = []model.TimePeriod{}
	}
	response.Success(c, http.StatusOK, "Time periods retrieved successfully.", periods)
}

// Create godoc
// POST /api/v1/periods
func (h *TimePeriodHandler) Create(c *gin.Context) {
	var req model.CreateTimePeriodRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	period, err := h.timePeriodService.Create(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Time period created successfully.", period)
}

// Update godoc
// PUT /api/v1/periods/:id
func (h *TimePeriodHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateTimePeriodRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	period, err := h.timePeriodService.Update(c.Request.Context(), tenantID(c), id, &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Time period updated successfully.", period)
}

// Delete godoc
// DELETE /api/v1/periods/:id
func (h *TimePeriodHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.timePeriodService.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Time period deleted successfully.", nil)
}

// Stats godoc
// GET /api/v1/periods/stats
func (h *TimePeriodHandler) Stats(c *gin.Context) {
	stats, err := h.timePeriodService.Stats(c.Request.Context(), tenantID(c))
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Time period statistics retrieved successfully.", stats)
}
