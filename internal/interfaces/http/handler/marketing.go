package handler

import (
	"github.com/crown/backend/internal/application/marketing"
	"github.com/gin-gonic/gin"
)

// MarketingHandler serves free-standing copy generation
type MarketingHandler struct {
	BaseHandler
	copyService *marketing.CopyService
}

// NewMarketingHandler creates a new MarketingHandler
func NewMarketingHandler(copyService *marketing.CopyService) *MarketingHandler {
	return &MarketingHandler{copyService: copyService}
}

// GenerateCopy godoc
// @ID           generateMarketingCopy
// @Summary      Generate marketing copy
// @Description  Write a short description for a make, model and year. Always answers 200; a missing key or a failed call yields fallback text.
// @Tags         marketing
// @Accept       json
// @Produce      json
// @Param        request body marketing.GenerateCopyRequest true "Vehicle"
// @Success      200 {object} APIResponse[marketing.CopyResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /marketing/copy [post]
func (h *MarketingHandler) GenerateCopy(c *gin.Context) {
	var req marketing.GenerateCopyRequest
	if !h.BindJSON(c, &req) {
		return
	}
	h.Success(c, h.copyService.Generate(c.Request.Context(), req))
}
