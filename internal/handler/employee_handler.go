package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
	"github.com/edulink/edulink-backend/internal/validator"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// List godoc
// GET /api/v1/employees?search=&page=&limit=
func (h *EmployeeHandler) List(c *gin.Context) {
	page, limit, offset := pagination(c)
	search := c.Query("search")

	employees, total, err := h.employeeService.List(c.Request.Context(), tenantID(c), search, limit, offset)
	if err != nil {
		failFromService(c, err)
		return
	}

	if employees == nil {
		employees = []model.Employee{}
	}
	response.SuccessList(c, http.StatusOK, "Employees retrieved successfully.", employees,
		response.NewListMeta(len(employees), total, page, limit))
}

// Get godoc
// GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	employee, err := h.employeeService.Get(c.Request.Context(), tenantID(c), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employee retrieved successfully.", employee)
}

// Create godoc
// POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Employee created successfully.", employee)
}

// Update godoc
// PUT /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateEmployeeRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), tenantID(c), id, &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employee updated successfully.", employee)
}

// UploadPhoto godoc
// POST /api/v1/employees/:id/photo (multipart: file)
func (h *EmployeeHandler) UploadPhoto(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	defer file.Close()

	employee, err := h.employeeService.SetPhoto(c.Request.Context(), tenantID(c), id,
		file, fileHeader.Header.Get("Content-Type"), fileHeader.Size)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employee photo updated successfully.", employee)
}

// Delete godoc
// DELETE /api/v1/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employee deleted successfully.", nil)
}
