package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
	"github.com/edulink/edulink-backend/internal/validator"
)

type StudentHandler struct {
	studentService *service.StudentService
}

func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// List godoc
// GET /api/v1/students?search=&class_id=&page=&limit=
func (h *StudentHandler) List(c *gin.Context) {
	page, limit, offset := pagination(c)
	search := c.Query("search")

	var classID *int
	if raw := c.Query("class_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		classID = &id
	}

	students, total, err := h.studentService.List(c.Request.Context(), tenantID(c), search, classID, limit, offset)
	if err != nil {
		failFromService(c, err)
		return
	}

	if students == nil {
		students = []model.Student{}
	}
	response.SuccessList(c, http.StatusOK, "Students retrieved successfully.", students,
		response.NewListMeta(len(students), total, page, limit))
}

// Get godoc
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	student, err := h.studentService.Get(c.Request.Context(), tenantID(c), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Student retrieved successfully.", student)
}

// Create godoc
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Student created successfully.", student)
}

// Update godoc
// PUT /api/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateStudentRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), tenantID(c), id, &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Student updated successfully.", student)
}

// Delete godoc
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Student deleted successfully.", nil)
}
