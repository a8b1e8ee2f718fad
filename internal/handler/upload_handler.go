package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// List godoc
// GET /api/v1/uploads
func (h *UploadHandler) List(c *gin.Context) {
	page, limit, offset := pagination(c)

	uploads, total, err := h.uploadService.List(c.Request.Context(), tenantID(c), limit, offset)
	if err != nil {
		failFromService(c, err)
		return
	}

	if uploads == nil {
		uploads = []model.Upload{}
	}
	response.SuccessList(c, http.StatusOK, "Uploads retrieved successfully.", uploads,
		response.NewListMeta(len(uploads), total, page, limit))
}

// Upload godoc
// POST /api/v1/uploads (multipart: file, optional folder)
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}

	folder := c.DefaultPostForm("folder", "general")

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	defer file.Close()

	upload, err := h.uploadService.Upload(c.Request.Context(), tenantID(c),
		fileHeader.Filename, folder, file, fileHeader.Header.Get("Content-Type"), fileHeader.Size)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "File uploaded successfully.", upload)
}

// Delete godoc
// DELETE /api/v1/uploads/:id
func (h *UploadHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.uploadService.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Upload deleted successfully.", nil)
}
