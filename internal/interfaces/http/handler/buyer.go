package handler

import (
	apppartner "github.com/crown/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// BuyerHandler serves the buyer side of the network
type BuyerHandler struct {
	BaseHandler
	buyerService *apppartner.BuyerService
}

// NewBuyerHandler creates a new BuyerHandler
func NewBuyerHandler(buyerService *apppartner.BuyerService) *BuyerHandler {
	return &BuyerHandler{buyerService: buyerService}
}

// List godoc
// @ID           listNetworkBuyers
// @Summary      List buyers
// @Tags         network
// @Produce      json
// @Success      200 {object} APIResponse[[]apppartner.BuyerResponse]
// @Router       /network/buyers [get]
func (h *BuyerHandler) List(c *gin.Context) {
	buyers, err := h.buyerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, buyers, len(buyers))
}

// GetByID godoc
// @ID           getNetworkBuyer
// @Summary      Get a buyer
// @Tags         network
// @Produce      json
// @Param        id path string true "Buyer ID"
// @Success      200 {object} APIResponse[apppartner.BuyerResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /network/buyers/{id} [get]
func (h *BuyerHandler) GetByID(c *gin.Context) {
	buyer, err := h.buyerService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, buyer)
}

// Create godoc
// @ID           createNetworkBuyer
// @Summary      Add a buyer
// @Tags         network
// @Accept       json
// @Produce      json
// @Param        request body apppartner.CreateBuyerRequest true "Buyer"
// @Success      201 {object} APIResponse[apppartner.BuyerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /network/buyers [post]
func (h *BuyerHandler) Create(c *gin.Context) {
	var req apppartner.CreateBuyerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	buyer, err := h.buyerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, buyer)
}

// Update godoc
// @ID           updateNetworkBuyer
// @Summary      Update a buyer
// @Description  Unknown ids are ignored with 204
// @Tags         network
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "Buyer ID"
// @Param        request body apppartner.UpdateBuyerRequest true "Buyer"
// @Success      200 {object} APIResponse[apppartner.BuyerResponse]
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Router       /network/buyers/{id} [put]
func (h *BuyerHandler) Update(c *gin.Context) {
	var req apppartner.UpdateBuyerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	buyer, err := h.buyerService.Update(c.Request.Context(), c.Param("id"), req)
	switch {
	case err != nil:
		h.HandleError(c, err)
	case buyer == nil:
		h.NoContent(c)
	default:
		h.Success(c, buyer)
	}
}

// Delete godoc
// @ID           deleteNetworkBuyer
// @Summary      Remove a buyer
// @Tags         network
// @Param        id path string true "Buyer ID"
// @Success      204
// @Router       /network/buyers/{id} [delete]
func (h *BuyerHandler) Delete(c *gin.Context) {
	if _, err := h.buyerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
