// Package handler contains the Gin HTTP handlers. Handlers bind and
// validate input, delegate to services, and translate service errors
// into the response envelope; they hold no business logic.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edulink/edulink-backend/internal/media"
	"github.com/edulink/edulink-backend/internal/middleware"
	"github.com/edulink/edulink-backend/internal/repository"
	"github.com/edulink/edulink-backend/internal/response"
	"github.com/edulink/edulink-backend/internal/service"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// paramID parses the :id path parameter. Responds with 400 and returns
// false when it is not a positive integer.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// tenantID returns the admin scope for the authenticated request.
func tenantID(c *gin.Context) int {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return 0
	}
	return claims.TenantID
}

// pagination parses ?page and ?limit with defaults, returning limit and
// offset alongside the page number.
func pagination(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, (page - 1) * limit
}

// failFromService maps service-layer errors onto HTTP responses.
func failFromService(c *gin.Context, err error) {
	var conflict *service.ConflictError
	var badRef *service.BadReferenceError

	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.As(err, &conflict):
		response.FailMessage(c, http.StatusConflict, conflict.Error())
	case errors.As(err, &badRef):
		response.FailMessage(c, http.StatusBadRequest, badRef.Error())
	case errors.Is(err, service.ErrNonPositiveDuration):
		response.FailMessage(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, media.ErrUnsupportedFileType):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	case errors.Is(err, media.ErrFileTooLarge):
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
	case repository.IsUniqueViolation(err):
		// A concurrent writer slipped past the service-level check and
		// hit the unique index instead.
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case repository.IsForeignKeyViolation(err):
		response.Fail(c, http.StatusBadRequest, response.ErrBadReference)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
