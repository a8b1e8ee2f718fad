package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/model"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Students godoc
// GET /api/v1/reports/students?class_id=&status=&format=
func (h *ReportHandler) Students(c *gin.Context) {
	var classID *int
	if raw := c.Query("class_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		classID = &id
	}
	status := c.Query("status")

	if format := c.Query("format"); format != "" {
		h.exportStudents(c, format, classID, status)
		return
	}

	rows, err := h.reportService.Students(c.Request.Context(), tenantID(c), classID, status)
	if err != nil {
		failFromService(c, err)
		return
	}
	if rows == nil {
		rows = []model.StudentReportRow{}
	}
	response.Success(c, http.StatusOK, "Student report retrieved successfully.", rows)
}

// Employees godoc
// GET /api/v1/reports/employees?department=&status=&format=
func (h *ReportHandler) Employees(c *gin.Context) {
	department := c.Query("department")
	status := c.Query("status")

	if format := c.Query("format"); format != "" {
		h.exportEmployees(c, format, department, status)
		return
	}

	rows, err := h.reportService.Employees(c.Request.Context(), tenantID(c), department, status)
	if err != nil {
		failFromService(c, err)
		return
	}
	if rows == nil {
		rows = []model.EmployeeReportRow{}
	}
	response.Success(c, http.StatusOK, "Employee report retrieved successfully.", rows)
}

func (h *ReportHandler) exportStudents(c *gin.Context, format string, classID *int, status string) {
	contentType, ok := exportHeaders(c, format, "students")
	if !ok {
		return
	}
	c.Header("Content-Type", contentType)
	if err := h.reportService.ExportStudents(c.Request.Context(), c.Writer, format, tenantID(c), classID, status); err != nil {
		failFromService(c, err)
	}
}

func (h *ReportHandler) exportEmployees(c *gin.Context, format, department, status string) {
	contentType, ok := exportHeaders(c, format, "employees")
	if !ok {
		return
	}
	c.Header("Content-Type", contentType)
	if err := h.reportService.ExportEmployees(c.Request.Context(), c.Writer, format, tenantID(c), department, status); err != nil {
		failFromService(c, err)
	}
}

// exportHeaders validates the format, sets the attachment disposition
// and returns the matching content type.
func exportHeaders(c *gin.Context, format, base string) (string, bool) {
	var contentType string
	switch format {
	case service.FormatCSV:
		contentType = "text/csv"
	case service.FormatXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		response.FailMessage(c, http.StatusBadRequest, fmt.Sprintf("unsupported export format %q", format))
		return "", false
	}

	filename := fmt.Sprintf("%s-report-%s.%s", base, time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return contentType, true
}
