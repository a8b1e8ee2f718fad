package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
	"github.com/edulink/edulink-backend/internal/validator"
)

type ClassHandler struct {
	classService *service.ClassService
}

func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// List godoc
// GET /api/v1/classes
func (h *ClassHandler) List(c *gin.Context) {
	page, limit, offset := pagination(c)
	status := c.Query("status")

	classes, total, err := h.classService.List(c.Request.Context(), tenantID(c), status, limit, offset)
	if err != nil {
		failFromService(c, err)
		return
	}

	if classes == nil {
		classes = []model.Class{}
	}
	response.SuccessList(c, http.StatusOK, "Classes retrieved successfully.", classes,
		response.NewListMeta(len(classes), total, page, limit))
}

// Get godoc
// GET /api/v1/classes/:id
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	class, err := h.classService.Get(c.Request.Context(), tenantID(c), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Class retrieved successfully.", class)
}

// Create godoc
// POST /api/v1/classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req model.CreateClassRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	class, err := h.classService.Create(c.Request.Context(), tenantID(c), &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Class created successfully.", class)
}

// Update godoc
// PUT /api/v1/classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req model.UpdateClassRequest
	if errs := validator.Bind(c, &req); errs != nil {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, errs)
		return
	}

	class, err := h.classService.Update(c.Request.Context(), tenantID(c), id, &req)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Class updated successfully.", class)
}

// Delete godoc
// DELETE /api/v1/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.classService.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Class deleted successfully.", nil)
}

// AddMaterial godoc
// POST /api/v1/classes/:id/materials (multipart: title, file)
func (h *ClassHandler) AddMaterial(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	title := c.PostForm("title")
	if title == "" {
		response.FailWithErrors(c, http.StatusBadRequest, response.ErrValidation, []string{"title: title is required"})
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

	material, err := h.classService.AddMaterial(c.Request.Context(), tenantID(c), id, title,
		file, fileHeader.Header.Get("Content-Type"), fileHeader.Size)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Material uploaded successfully.", material)
}

// DeleteMaterial godoc
// DELETE /api/v1/classes/:id/materials/:materialId
func (h *ClassHandler) DeleteMaterial(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	materialID, ok := paramID(c, "materialId")
	if !ok {
		return
	}

	if err := h.classService.DeleteMaterial(c.Request.Context(), tenantID(c), id, materialID); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Material deleted successfully.", nil)
}
