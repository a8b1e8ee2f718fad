package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
	"github.com/edulink/edulink-backend/internal/validator"
)

type MeetingHandler struct {
	meetingService *service.MeetingService
}

func NewMeetingHandler(meetingService *service.MeetingService) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService}
}

// List godoc
// GET /api/v1/meetings?status=
func (h *MeetingHandler) List(c *gin.Context) {
	meetings, err := h.meetingService.List(c.Request.Context(), tenantID(c), c.Query("status"))
	if err != nil {
		failFromService(c, err)
		return
	}

	if meetings == nil {
		meetings = []model.Meeting{}
	}
	response.Success(c, http.StatusOK, "Meetings retrieved successfully.", meetings)
}

// Get godoc
// GET /api/v1/meetings/:id
func (h *MeetingHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	meeting, err := h.meetingService.Get(c.Request.Context(), tenantID(c), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Meeting retrieved successfully.", meeting)
}

// Create godoc
// POST /api/v1/meetings
func (h *MeetingHandler) Create(c *gin.Context) {
	var req model.CreateMeetingRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	meeting, err := h.meetingService.Create(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Meeting scheduled successfully.", meeting)
}

// Update godoc
// PUT /api/v1/meetings/:id
func (h *MeetingHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateMeetingRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	meeting, err := h.meetingService.Update(c.Request.Context(), tenantID(c), id, &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Meeting updated successfully.", meeting)
}

// Delete godoc
// DELETE /api/v1/meetings/:id
func (h *MeetingHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.meetingService.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Meeting deleted successfully.", nil)
}
