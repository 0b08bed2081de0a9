package handler

import (
	appfleet "github.com/crown/backend/internal/application/fleet"
	"github.com/crown/backend/internal/application/marketing"
	"github.com/gin-gonic/gin"
)

// CarHandler serves the inventory endpoints
type CarHandler struct {
	BaseHandler
	carService  *appfleet.CarService
	copyService *marketing.CopyService
}

// NewCarHandler creates a new CarHandler
func NewCarHandler(carService *appfleet.CarService, copyService *marketing.CopyService) *CarHandler {
	return &CarHandler{
		carService:  carService,
		copyService: copyService,
	}
}

// List godoc
// @ID           listInventoryCars
// @Summary      List cars
// @Description  List the inventory, optionally filtered by status, make, seller, buyer or free text
// @Tags         inventory
// @Produce      json
// @Param        status    query string false "Status" Enums(Available, Sold, Reserved)
// @Param        make      query string false "Exact make, case-insensitive"
// @Param        seller_id query string false "Seller ID"
// @Param        buyer_id  query string false "Buyer ID"
// @Param        search    query string false "Matches make or model"
// @Success      200 {object} APIResponse[[]appfleet.CarResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /inventory/cars [get]
func (h *CarHandler) List(c *gin.Context) {
	var filter appfleet.CarListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	cars, err := h.carService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, cars, len(cars))
}

// GetByID godoc
// @ID           getInventoryCar
// @Summary      Get a car
// @Description  Get a car with its seller and buyer names ("Unknown" when the partner is gone)
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Car ID"
// @Success      200 {object} APIResponse[appfleet.CarDetailResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /inventory/cars/{id} [get]
func (h *CarHandler) GetByID(c *gin.Context) {
	car, err := h.carService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, car)
}

// Create godoc
// @ID           createInventoryCar
// @Summary      List a new car
// @Description  Add a car to the inventory. The image defaults to a placeholder when omitted.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body appfleet.CreateCarRequest true "Car"
// @Success      201 {object} APIResponse[appfleet.CarResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /inventory/cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	var req appfleet.CreateCarRequest
	if !h.BindJSON(c, &req) {
		return
	}

	car, err := h.carService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, car)
}

// Update godoc
// @ID           updateInventoryCar
// @Summary      Update a car
// @Description  Replace the editable fields of a car. Unknown ids are ignored with 204.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id      path string                    true "Car ID"
// @Param        request body appfleet.UpdateCarRequest true "Car"
// @Success      200 {object} APIResponse[appfleet.CarResponse]
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Router       /inventory/cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	var req appfleet.UpdateCarRequest
	if !h.BindJSON(c, &req) {
		return
	}

	car, err := h.carService.Update(c.Request.Context(), c.Param("id"), req)
	h.respondMutation(c, car, err)
}

// Delete godoc
// @ID           deleteInventoryCar
// @Summary      Delete a car
// @Tags         inventory
// @Param        id path string true "Car ID"
// @Success      204
// @Router       /inventory/cars/{id} [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	if _, err := h.carService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Sell godoc
// @ID           sellInventoryCar
// @Summary      Sell a car
// @Description  Mark a car sold to a buyer, stamped with today's date. Unknown ids are ignored with 204.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id      path string                  true "Car ID"
// @Param        request body appfleet.SellCarRequest true "Buyer"
// @Success      200 {object} APIResponse[appfleet.CarResponse]
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Router       /inventory/cars/{id}/sell [post]
func (h *CarHandler) Sell(c *gin.Context) {
	var req appfleet.SellCarRequest
	if !h.BindJSON(c, &req) {
		return
	}

	car, err := h.carService.Sell(c.Request.Context(), c.Param("id"), req)
	h.respondMutation(c, car, err)
}

// UpdateDescription godoc
// @ID           updateInventoryCarDescription
// @Summary      Set a car's description
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id      path string                            true "Car ID"
// @Param        request body appfleet.UpdateDescriptionRequest true "Description"
// @Success      200 {object} APIResponse[appfleet.CarResponse]
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Router       /inventory/cars/{id}/description [put]
func (h *CarHandler) UpdateDescription(c *gin.Context) {
	var req appfleet.UpdateDescriptionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	car, err := h.carService.UpdateDescription(c.Request.Context(), c.Param("id"), req.Description)
	h.respondMutation(c, car, err)
}

// GenerateDescription godoc
// @ID           generateInventoryCarDescription
// @Summary      Generate a description
// @Description  Write marketing copy for the car and store it as its description. Falls back to fixed text when generation is unavailable.
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Car ID"
// @Success      200 {object} APIResponse[marketing.CarCopyResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse "A generation for this car is already running"
// @Router       /inventory/cars/{id}/generate-description [post]
func (h *CarHandler) GenerateDescription(c *gin.Context) {
	result, err := h.copyService.GenerateForCar(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// SaleCandidates godoc
// @ID           listInventoryCarSaleCandidates
// @Summary      List buyers for a car
// @Description  Every buyer, flagged by budget and make preference against this car
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Car ID"
// @Success      200 {object} APIResponse[[]appfleet.SaleCandidateResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /inventory/cars/{id}/sale-candidates [get]
func (h *CarHandler) SaleCandidates(c *gin.Context) {
	candidates, err := h.carService.SaleCandidates(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessList(c, candidates, len(candidates))
}

// respondMutation answers 204 when the service found nothing to change
func (h *CarHandler) respondMutation(c *gin.Context, car *appfleet.CarResponse, err error) {
	switch {
	case err != nil:
		h.HandleError(c, err)
	case car == nil:
		h.NoContent(c)
	default:
		h.Success(c, car)
	}
}
