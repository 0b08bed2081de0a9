package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crown/backend/internal/domain/marketing"
	"github.com/crown/backend/internal/domain/shared"
	"github.com/crown/backend/internal/interfaces/http/dto"
	"github.com/crown/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func newTestContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*gin.Context)
		expectedID string
	}{
		{
			name:       "from context",
			setup:      func(c *gin.Context) { c.Set(middleware.RequestIDKey, "ctx-request-id") },
			expectedID: "ctx-request-id",
		},
		{
			name:       "from header when context empty",
			setup:      func(c *gin.Context) { c.Request.Header.Set(middleware.RequestIDHeader, "header-request-id") },
			expectedID: "header-request-id",
		},
		{
			name:       "empty when not set",
			setup:      func(c *gin.Context) {},
			expectedID: "",
		},
		{
			name: "context takes precedence over header",
			setup: func(c *gin.Context) {
				c.Set(middleware.RequestIDKey, "ctx-id")
				c.Request.Header.Set(middleware.RequestIDHeader, "header-id")
			},
			expectedID: "ctx-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, "")
			tt.setup(c)
			assert.Equal(t, tt.expectedID, getRequestID(c))
		})
	}
}

func TestBaseHandler_Success(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "")

	h.Success(c, map[string]string{"make": "Ferrari"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.Equal(t, map[string]any{"make": "Ferrari"}, resp.Data)
}

func TestBaseHandler_SuccessList(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "")

	h.SuccessList(c, []string{"c1", "c3"}, 2)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Total)
}

func TestBaseHandler_CreatedAndNoContent(t *testing.T) {
	h := &BaseHandler{}

	c, w := newTestContext(http.MethodPost, "")
	h.Created(c, map[string]string{"id": "c6"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decodeResponse(t, w).Success)

	c, w = newTestContext(http.MethodDelete, "")
	h.NoContent(c)
	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Empty(t, w.Body.String())
}

func TestBaseHandler_ErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		call   func(h *BaseHandler, c *gin.Context)
		status int
		code   string
	}{
		{"bad request", func(h *BaseHandler, c *gin.Context) { h.BadRequest(c, "bad") }, http.StatusBadRequest, dto.ErrCodeBadRequest},
		{"not found", func(h *BaseHandler, c *gin.Context) { h.NotFound(c, "missing") }, http.StatusNotFound, dto.ErrCodeNotFound},
		{"internal", func(h *BaseHandler, c *gin.Context) { h.InternalError(c, "boom") }, http.StatusInternalServerError, dto.ErrCodeInternal},
		{"code mapped to status", func(h *BaseHandler, c *gin.Context) {
			h.ErrorWithCode(c, dto.ErrCodeGenerationInProgress, "busy")
		}, http.StatusConflict, dto.ErrCodeGenerationInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			c, w := newTestContext(http.MethodGet, "")
			c.Set(middleware.RequestIDKey, "req-1")

			tt.call(h, c)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, "req-1", resp.Error.RequestID)
		})
	}
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{"wrapped not found", fmt.Errorf("load car: %w", shared.ErrNotFound), http.StatusNotFound, dto.ErrCodeNotFound},
		{"generation in progress", marketing.ErrGenerationInProgress, http.StatusConflict, dto.ErrCodeGenerationInProgress},
		{"invalid state", shared.ErrInvalidState, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			c, w := newTestContext(http.MethodGet, "")

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeResponse(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotContains(t, resp.Error.Message, "disk on fire")
		})
	}
}

func TestBaseHandler_HandleErrorNil(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodGet, "")

	h.HandleError(c, nil)

	assert.False(t, c.Writer.Written())
	assert.Empty(t, w.Body.String())
}

type bindTarget struct {
	Name  string `json:"name" binding:"required,max=10"`
	Count int    `json:"count" binding:"gte=0"`
}

func TestBaseHandler_BindJSON(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		ok     bool
		status int
		code   string
	}{
		{"valid", `{"name":"Spectre","count":1}`, true, http.StatusOK, ""},
		{"missing required", `{"count":1}`, false, http.StatusBadRequest, dto.ErrCodeValidation},
		{"out of range", `{"name":"Spectre","count":-1}`, false, http.StatusBadRequest, dto.ErrCodeValidation},
		{"malformed", `{"name":`, false, http.StatusBadRequest, dto.ErrCodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			c, w := newTestContext(http.MethodPost, tt.body)

			var target bindTarget
			ok := h.BindJSON(c, &target)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, "Spectre", target.Name)
				assert.False(t, c.Writer.Written())
				return
			}
			assert.Equal(t, tt.status, w.Code)
			resp := decodeResponse(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestBaseHandler_BindJSONFieldNames(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(http.MethodPost, `{"count":-3}`)

	var target bindTarget
	require.False(t, h.BindJSON(c, &target))

	resp := decodeResponse(t, w)
	fields := make([]string, 0, len(resp.Error.Details))
	for _, d := range resp.Error.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"name", "count"}, fields)
}
