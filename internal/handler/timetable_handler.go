package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
	"github.com/edulink/edulink-backend/internal/validator"
)

type TimetableHandler struct {
	timetableService *service.TimetableService
}

func NewTimetableHandler(timetableService *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableService: timetableService}
}

// Compose godoc
// POST /api/v1/timetables/compose
func (h *TimetableHandler) Compose(c *gin.Context) {
	var req model.ComposeTimetableRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	doc, created, err := h.timetableService.Compose(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		failFromService(c, err)
		return
	}

	status := http.StatusOK
	message := "Timetable updated successfully."
	if created {
		status = http.StatusCreated
		message = "Timetable created successfully."
	}
	response.Success(c, status, message, doc)
}

// GetByClass godoc
// GET /api/v1/timetables/class/:classId?academic_year=&term=
func (h *TimetableHandler) GetByClass(c *gin.Context) {
	classID, ok := paramID(c, "classId")
	if !ok {
		return
	}

	view, err := h.timetableService.GetByClass(c.Request.Context(), tenantID(c), classID,
		c.Query("academic_year"), c.Query("term"))
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Class timetable retrieved successfully.", view)
}

// GetByTeacher godoc
// GET /api/v1/timetables/teacher/:teacherId?academic_year=&term=
func (h *TimetableHandler) GetByTeacher(c *gin.Context) {
	teacherID, ok := paramID(c, "teacherId")
	if !ok {
		return
	}

	view, err := h.timetableService.GetByTeacher(c.Request.Context(), tenantID(c), teacherID,
		c.Query("academic_year"), c.Query("term"))
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Teacher timetable retrieved successfully.", view)
}

// List godoc
// GET /api/v1/timetables
func (h *TimetableHandler) List(c *gin.Context) {
	page, limit, offset := pagination(c)

	docs, total, err := h.timetableService.List(c.Request.Context(), tenantID(c), limit, offset)
	if err != nil {
		failFromService(c, err)
		return
	}

	if docs == nil {
		docs = []model.Timetable{}
	}
	response.SuccessList(c, http.StatusOK, "Timetables retrieved successfully.", docs,
		response.NewListMeta(len(docs), total, page, limit))
}

// Get godoc
// GET /api/v1/timetables/:id
func (h *TimetableHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	doc, err := h.timetableService.Get(c.Request.Context(), tenantID(c), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Timetable retrieved successfully.", doc)
}

// Delete godoc
// DELETE /api/v1/timetables/:id
func (h *TimetableHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.timetableService.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Timetable deleted successfully.", nil)
}

// ToggleActive godoc
// PATCH /api/v1/timetables/:id/toggle
func (h *TimetableHandler) ToggleActive(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	doc, err := h.timetableService.ToggleActive(c.Request.Context(), tenantID(c), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Timetable status updated successfully.", doc)
}

// AvailableResources godoc
// GET /api/v1/timetables/resources/available
func (h *TimetableHandler) AvailableResources(c *gin.Context) {
	resources, err := h.timetableService.AvailableResources(c.Request.Context(), tenantID(c))
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Available resources retrieved successfully.", resources)
}
