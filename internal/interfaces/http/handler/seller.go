package handler

import (
	apppartner "github.com/crown/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// SellerHandler serves the seller side of the network
type SellerHandler struct {
	BaseHandler
	sellerService *apppartner.SellerService
}

// NewSellerHandler creates a new SellerHandler
func NewSellerHandler(sellerService *apppartner.SellerService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

// List godoc
// @ID           listNetworkSellers
// @Summary      List sellers
// @Tags         network
// @Produce      json
// @Success      200 {object} APIResponse[[]apppartner.SellerResponse]
// @Router       /network/sellers [get]
func (h *SellerHandler) List(c *gin.Context) {
	sellers, err := h.sellerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, sellers, len(sellers))
}

// GetByID godoc
// @ID           getNetworkSeller
// @Summary      Get a seller
// @Tags         network
// @Produce      json
// @Param        id path string true "Seller ID"
// @Success      200 {object} APIResponse[apppartner.SellerResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /network/sellers/{id} [get]
func (h *SellerHandler) GetByID(c *gin.Context) {
	seller, err := h.sellerService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, seller)
}

// Create godoc
// @ID           createNetworkSeller
// @Summary      Add a seller
// @Tags         network
// @Accept       json
// @Produce      json
// @Param        request body apppartner.CreateSellerRequest true "Seller"
// @Success      201 {object} APIResponse[apppartner.SellerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /network/sellers [post]
func (h *SellerHandler) Create(c *gin.Context) {
	var req apppartner.CreateSellerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	seller, err := h.sellerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, seller)
}

// Update godoc
// @ID           updateNetworkSeller
// @Summary      Update a seller
// @Description  Unknown ids are ignored with 204
// @Tags         network
// @Accept       json
// @Produce      json
// @Param        id      path string                         true "Seller ID"
// @Param        request body apppartner.UpdateSellerRequest true "Seller"
// @Success      200 {object} APIResponse[apppartner.SellerResponse]
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Router       /network/sellers/{id} [put]
func (h *SellerHandler) Update(c *gin.Context) {
	var req apppartner.UpdateSellerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	seller, err := h.sellerService.Update(c.Request.Context(), c.Param("id"), req)
	switch {
	case err != nil:
		h.HandleError(c, err)
	case seller == nil:
		h.NoContent(c)
	default:
		h.Success(c, seller)
	}
}

// Delete godoc
// @ID           deleteNetworkSeller
// @Summary      Remove a seller
// @Description  The seller's cars stay listed and show "Unknown" as seller
// @Tags         network
// @Param        id path string true "Seller ID"
// @Success      204
// @Router       /network/sellers/{id} [delete]
func (h *SellerHandler) Delete(c *gin.Context) {
	if _, err := h.sellerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListCars godoc
// @ID           listNetworkSellerCars
// @Summary      List a seller's cars
// @Tags         network
// @Produce      json
// @Param        id path string true "Seller ID"
// @Success      200 {object} APIResponse[[]apppartner.SellerCarResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /network/sellers/{id}/cars [get]
func (h *SellerHandler) ListCars(c *gin.Context) {
	cars, err := h.sellerService.ListCars(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, cars, len(cars))
}
