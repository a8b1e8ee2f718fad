package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edulink/edulink-backend/internal/media"
	"github.com/edulink/edulink-backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestFailFromServiceStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"conflict", &service.ConflictError{Field: "name", Value: "Monday"}, http.StatusConflict},
		{"bad reference", &service.BadReferenceError{Kind: "day", ID: 9}, http.StatusBadRequest},
		{"non-positive duration", service.ErrNonPositiveDuration, http.StatusBadRequest},
		{"unsupported file", media.ErrUnsupportedFileType, http.StatusBadRequest},
		{"file too large", media.ErrFileTooLarge, http.StatusBadRequest},
		{"unique index race", &pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		c, w := testContext(t)
		failFromService(c, tc.err)
		if w.Code != tc.want {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.want, w.Code)
		}
	}
}

func TestFailFromServiceWrappedErrors(t *testing.T) {
	// Services wrap store errors with context; the mapping must see
	// through the wrapping.
	c, w := testContext(t)
	failFromService(c, fmt.Errorf("load class: %w", service.ErrNotFound))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped ErrNotFound, got %d", w.Code)
	}
}

func TestParamID(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"7", true},
		{"0", false},
		{"-3", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range cases {
		c, w := testContext(t)
		c.Params = gin.Params{{Key: "id", Value: tc.value}}

		id, ok := paramID(c, "id")
		if ok != tc.ok {
			t.Fatalf("paramID(%q): expected ok=%t, got %t", tc.value, tc.ok, ok)
		}
		if !tc.ok && w.Code != http.StatusBadRequest {
			t.Fatalf("paramID(%q): expected 400, got %d", tc.value, w.Code)
		}
		if tc.ok && id != 7 {
			t.Fatalf("paramID(%q): expected 7, got %d", tc.value, id)
		}
	}
}

func TestPagination(t *testing.T) {
	cases := []struct {
		query  string
		page   int
		limit  int
		offset int
	}{
		{"", 1, defaultPageSize, 0},
		{"?page=3&limit=10", 3, 10, 20},
		{"?page=0&limit=0", 1, defaultPageSize, 0},
		{"?limit=9999", 1, maxPageSize, 0},
	}
	for _, tc := range cases {
		c, _ := testContext(t)
		c.Request = httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)

		page, limit, offset := pagination(c)
		if page != tc.page || limit != tc.limit || offset != tc.offset {
			t.Fatalf("pagination(%q) = (%d, %d, %d), want (%d, %d, %d)",
				tc.query, page, limit, offset, tc.page, tc.limit, tc.offset)
		}
	}
}
