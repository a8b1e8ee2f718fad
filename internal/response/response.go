package response

import "github.com/gin-gonic/gin"

// Envelope is the standardized API response body. Every endpoint,
// success or failure, returns this shape; list endpoints additionally
// fill the pagination fields.
type Envelope struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	Data        interface{} `json:"data,omitempty"`
	Errors      []string    `json:"errors,omitempty"`
	Count       *int        `json:"count,omitempty"`
	Total       *int        `json:"total,omitempty"`
	TotalPages  *int        `json:"totalPages,omitempty"`
	CurrentPage *int        `json:"currentPage,omitempty"`
}

// ListMeta carries pagination fields for list responses.
type ListMeta struct {
	Count       int
	Total       int
	TotalPages  int
	CurrentPage int
}

// NewListMeta derives pagination metadata from page parameters and totals.
func NewListMeta(pageLen, total, page, perPage int) *ListMeta {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return &ListMeta{
		Count:       pageLen,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

// Success sends a successful JSON response with the given status code and data.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessList sends a successful list response with pagination metadata.
func SuccessList(c *gin.Context, statusCode int, message string, data interface{}, meta *ListMeta) {
	env := Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}
	if meta != nil {
		env.Count = &meta.Count
		env.Total = &meta.Total
		env.TotalPages = &meta.TotalPages
		env.CurrentPage = &meta.CurrentPage
	}
	c.JSON(statusCode, env)
}

// Fail sends an error response using the code's canonical message.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Message: GetMessage(code),
	})
}

// FailMessage sends an error response with an explicit message, used when
// the canonical code message is too generic (e.g. naming an offending id).
func FailMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
	})
}

// FailWithErrors sends an error response listing individual failures,
// typically field-level validation messages.
func FailWithErrors(c *gin.Context, statusCode int, code ErrCode, errs []string) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Message: GetMessage(code),
		Errors:  errs,
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, Envelope{
		Success: false,
		Message: GetMessage(code),
	})
}
