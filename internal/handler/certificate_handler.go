package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/service"
)

type CertificateHandler struct {
	certificateService *service.CertificateService
}

func NewCertificateHandler(certificateService *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService}
}

// Student godoc
// GET /api/v1/certificates/students/:id
func (h *CertificateHandler) Student(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	// Render to memory first so failures can still answer with the
	// JSON envelope instead of a truncated PDF.
	var buf bytes.Buffer
	if err := h.certificateService.RenderStudent(c.Request.Context(), &buf, tenantID(c), id); err != nil {
		failFromService(c, err)
		return
	}

	filename := fmt.Sprintf("certificate-%d.pdf", id)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
