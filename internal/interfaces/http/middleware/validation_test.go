package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crown/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listingForm struct {
	Make  string          `json:"make" binding:"required"`
	Price decimal.Decimal `json:"price" binding:"required,gt=0"`
	Year  int             `json:"year" binding:"omitempty,gte=1885"`
	Tags  []string        `json:"tags" binding:"max=2"`
	Kind  string          `json:"kind" binding:"omitempty,oneof=coupe sedan"`
}

func bindRouter() *gin.Engine {
	SetupValidator()
	router := gin.New()
	router.Use(RequestID())
	router.POST("/bind", func(c *gin.Context) {
		var form listingForm
		if err := c.ShouldBindJSON(&form); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(form.Price.String()))
	})
	return router
}

func postBind(t *testing.T, router *gin.Engine, body string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, "req-v")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestValidation_DecimalFields(t *testing.T) {
	router := bindRouter()

	t.Run("positive price passes", func(t *testing.T) {
		w, resp := postBind(t, router, `{"make":"Ferrari","price":1250000.50}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1250000.5", resp.Data)
	})

	t.Run("zero price fails gt", func(t *testing.T) {
		w, resp := postBind(t, router, `{"make":"Ferrari","price":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "price", resp.Error.Details[0].Field)
	})

	t.Run("negative price fails", func(t *testing.T) {
		w, _ := postBind(t, router, `{"make":"Ferrari","price":-5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFormatValidationErrors(t *testing.T) {
	router := bindRouter()

	w, resp := postBind(t, router, `{"price":10,"year":1700,"tags":["a","b","c"],"kind":"truck"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "req-v", resp.Error.RequestID)

	messages := map[string]string{}
	for _, d := range resp.Error.Details {
		messages[d.Field] = d.Message
	}
	assert.Equal(t, "This field is required", messages["make"])
	assert.Equal(t, "Must be greater than or equal to 1885", messages["year"])
	assert.Equal(t, "Must contain at most 2 items", messages["tags"])
	assert.Equal(t, "Must be one of: coupe sedan", messages["kind"])
}

func TestHandleValidationError_MalformedJSON(t *testing.T) {
	router := bindRouter()

	w, resp := postBind(t, router, `{"make":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}

func TestHandleValidationError_BodyTooLarge(t *testing.T) {
	SetupValidator()
	router := gin.New()
	router.Use(BodyLimit(16))
	router.POST("/bind", func(c *gin.Context) {
		var form listingForm
		if err := c.ShouldBindJSON(&form); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	// chunked body: no Content-Length, so the MaxBytesReader trips during decode
	req := httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(`{"make":"`+strings.Repeat("x", 64)+`"}`))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrCodePayloadTooLarge)
}
