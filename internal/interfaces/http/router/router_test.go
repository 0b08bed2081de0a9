package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "v1", r.apiVersion)
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterUse_AppliesToAPIOnly(t *testing.T) {
	engine := gin.New()
	engine.GET("/outside", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("mark")) })

	r := NewRouter(engine).Use(func(c *gin.Context) {
		c.Set("mark", "api")
		c.Next()
	})
	group := NewDomainGroup("test", "/test")
	group.GET("/inside", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("mark")) })
	r.Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/test/inside", nil))
	assert.Equal(t, "api", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/outside", nil))
	assert.Empty(t, w.Body.String())
}

func TestDomainGroup_Methods(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("items", "/items")
	reply := func(body string) gin.HandlerFunc {
		return func(c *gin.Context) { c.String(http.StatusOK, body) }
	}
	group.GET("", reply("list")).
		POST("", reply("create")).
		PUT("/:id", reply("update")).
		DELETE("/:id", reply("delete"))
	group.RegisterRoutes(engine.Group("/api"))

	tests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/items", "list"},
		{http.MethodPost, "/api/items", "create"},
		{http.MethodPut, "/api/items/1", "update"},
		{http.MethodDelete, "/api/items/1", "delete"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, http.StatusOK, w.Code, tt.method)
		assert.Equal(t, tt.body, w.Body.String(), tt.method)
	}

	assert.Equal(t, "items", group.Name())
	assert.Equal(t, "/items", group.Prefix())
	assert.Equal(t, []string{"GET /items", "POST /items", "PUT /items/:id", "DELETE /items/:id"}, group.Routes())
}

func TestDomainGroup_NestedAndMiddleware(t *testing.T) {
	engine := gin.New()
	parent := NewDomainGroup("network", "/network")
	parent.Use(func(c *gin.Context) {
		c.Header("X-Group", "network")
		c.Next()
	})
	child := parent.Group("sellers", "/sellers")
	child.GET("/:id", func(c *gin.Context) { c.String(http.StatusOK, c.Param("id")) })
	parent.RegisterRoutes(engine.Group("/api/v1"))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/network/sellers/s1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s1", w.Body.String())
	assert.Equal(t, "network", w.Header().Get("X-Group"))
}
