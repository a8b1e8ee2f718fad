package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
	"github.com/edulink/edulink-backend/internal/validator"
)

type ClassroomHandler struct {
	classroomService *service.ClassroomService
}

func NewClassroomHandler(classroomService *service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{classroomService: classroomService}
}

// List godoc
// GET /api/v1/classrooms
func (h *ClassroomHandler) List(c *gin.Context) {
	rooms, err := h.classroomService.List(c.Request.Context(), tenantID(c))
	if err != nil {
		failFromService(c, err)
		return
	}

	if rooms == nil {
		rooms = []model.Classroom{}
	}
	response.Success(c, http.StatusOK, "Classrooms retrieved successfully.", rooms)
}

// Get godoc
// GET /api/v1/classrooms/:id
func (h *ClassroomHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	room, err := h.classroomService.Get(c.Request.Context(), tenantID(c), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Classroom retrieved successfully.", room)
}

// Create godoc
// POST /api/v1/classrooms
func (h *ClassroomHandler) Create(c *gin.Context) {
	var req model.CreateClassroomRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	room, err := h.classroomService.Create(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Classroom created successfully.", room)
}

// Update godoc
// PUT /api/v1/classrooms/:id
func (h *ClassroomHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateClassroomRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	room, err := h.classroomService.Update(c.Request.Context(), tenantID(c), id, &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Classroom updated successfully.", room)
}

// Delete godoc
// DELETE /api/v1/classrooms/:id
func (h *ClassroomHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.classroomService.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Classroom deleted successfully.", nil)
}

// ToggleAvailable godoc
// PATCH /api/v1/classrooms/:id/toggle
func (h *ClassroomHandler) ToggleAvailable(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	room, err := h.classroomService.ToggleAvailable(c.Request.Context(), tenantID(c), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Classroom availability updated successfully.", room)
}

// Stats godoc
// GET /api/v1/classrooms/stats
func (h *ClassroomHandler) Stats(c *gin.Context) {
	stats, err := h.classroomService.Stats(c.Request.Context(), tenantID(c))
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Classroom statistics retrieved successfully.", stats)
}
