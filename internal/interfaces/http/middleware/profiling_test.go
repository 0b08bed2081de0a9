package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func TestProfiling_ServesRequests(t *testing.T) {
	for _, cfg := range []ProfilingConfig{{Enabled: false}, DefaultProfilingConfig()} {
		router := gin.New()
		router.Use(Profiling(cfg))
		router.GET("/dashboard/stats", func(c *gin.Context) { c.Status(http.StatusOK) })
		router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

		for _, path := range []string{"/dashboard/stats", "/health"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	}
}

func TestProfiling_PreservesContext(t *testing.T) {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		ctx := c.Request.Context()
		c.Request = c.Request.WithContext(contextWith(ctx, "upstream"))
		c.Next()
	})
	router.Use(Profiling(DefaultProfilingConfig()))

	var got any
	router.GET("/inventory/cars/:id", func(c *gin.Context) {
		got = c.Request.Context().Value(ctxKey{})
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inventory/cars/c1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "upstream", got)
}

func TestProfilingLabels(t *testing.T) {
	router := gin.New()
	var labels []string
	router.GET("/network/sellers/:id/cars", func(c *gin.Context) {
		labels = profilingLabels(c)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/network/sellers/s1/cars", nil))

	assert.Equal(t, []string{
		ProfilingLabelMethod, "GET",
		ProfilingLabelRoute, "/network/sellers/:id/cars",
		ProfilingLabelResource, "network",
	}, labels)
}

func TestResourceFromRoute(t *testing.T) {
	tests := map[string]string{
		"/inventory/cars/:id": "inventory",
		"/api/v1/system/info": "system",
		"/health":             "health",
		"/:id":                "",
		"":                    "",
		"/api/v2":             "",
		"/version/notes":      "version",
	}
	for route, want := range tests {
		assert.Equal(t, want, resourceFromRoute(route), route)
	}
}

func TestIsVersionSegment(t *testing.T) {
	assert.True(t, isVersionSegment("v1"))
	assert.True(t, isVersionSegment("V12"))
	assert.False(t, isVersionSegment("v"))
	assert.False(t, isVersionSegment("vx"))
	assert.False(t, isVersionSegment("inventory"))
}

func contextWith(ctx context.Context, v string) context.Context {
	return context.WithValue(ctx, ctxKey{}, v)
}
