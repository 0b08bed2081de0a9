package router

import (
	"github.com/crown/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP handlers of the brokerage API
type Handlers struct {
	Cars      *handler.CarHandler
	Sellers   *handler.SellerHandler
	Buyers    *handler.BuyerHandler
	Dashboard *handler.DashboardHandler
	Marketing *handler.MarketingHandler
	System    *handler.SystemHandler
}

// InventoryRoutes builds the /inventory group
func InventoryRoutes(h *handler.CarHandler) *DomainGroup {
	g := NewDomainGroup("inventory", "/inventory")
	g.GET("/cars", h.List)
	g.POST("/cars", h.Create)
	g.GET("/cars/:id", h.GetByID)
	g.PUT("/cars/:id", h.Update)
	g.DELETE("/cars/:id", h.Delete)
	g.POST("/cars/:id/sell", h.Sell)
	g.PUT("/cars/:id/description", h.UpdateDescription)
	g.POST("/cars/:id/generate-description", h.GenerateDescription)
	g.GET("/cars/:id/sale-candidates", h.SaleCandidates)
	return g
}

// NetworkRoutes builds the /network group for sellers and buyers
func NetworkRoutes(sellers *handler.SellerHandler, buyers *handler.BuyerHandler) *DomainGroup {
	g := NewDomainGroup("network", "/network")

	s := g.Group("sellers", "/sellers")
	s.GET("", sellers.List)
	s.POST("", sellers.Create)
	s.GET("/:id", sellers.GetByID)
	s.PUT("/:id", sellers.Update)
	s.DELETE("/:id", sellers.Delete)
	s.GET("/:id/cars", sellers.ListCars)

	b := g.Group("buyers", "/buyers")
	b.GET("", buyers.List)
	b.POST("", buyers.Create)
	b.GET("/:id", buyers.GetByID)
	b.PUT("/:id", buyers.Update)
	b.DELETE("/:id", buyers.Delete)
	return g
}

// Mount registers every brokerage group on r and the health probe on the
// engine root, then calls r.Setup.
func Mount(engine *gin.Engine, r *Router, h Handlers) {
	engine.GET("/health", h.System.Health)

	dashboard := NewDomainGroup("dashboard", "/dashboard")
	dashboard.GET("/stats", h.Dashboard.GetStats)

	marketing := NewDomainGroup("marketing", "/marketing")
	marketing.POST("/copy", h.Marketing.GenerateCopy)

	system := NewDomainGroup("system", "/system")
	system.GET("/info", h.System.GetSystemInfo)
	system.GET("/ping", h.System.Ping)

	r.Register(dashboard).
		Register(InventoryRoutes(h.Cars)).
		Register(NetworkRoutes(h.Sellers, h.Buyers)).
		Register(marketing).
		Register(system)
	r.Setup()
}
