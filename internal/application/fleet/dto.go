package fleet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/crown/backend/internal/domain/fleet"
)

// UnknownName is shown when a referenced seller or buyer no longer exists
const UnknownName = "Unknown"

// =============================================================================
// Requests
// =============================================================================

// CarListFilter narrows the inventory listing
type CarListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=Available Sold Reserved"`
	Make     string `form:"make" binding:"max=100"`
	SellerID string `form:"seller_id" binding:"max=100"`
	BuyerID  string `form:"buyer_id" binding:"max=100"`
	Search   string `form:"search" binding:"max=200"`
}

func (f CarListFilter) toDomain() fleet.CarFilter {
	return fleet.CarFilter{
		Status:   fleet.CarStatus(f.Status),
		Make:     f.Make,
		SellerID: f.SellerID,
		BuyerID:  f.BuyerID,
		Search:   f.Search,
	}
}

// CreateCarRequest lists a new car. ID is optional; one is generated when empty.
type CreateCarRequest struct {
	ID          string          `json:"id" binding:"max=100"`
	Make        string          `json:"make" binding:"required,max=100"`
	Model       string          `json:"model" binding:"required,max=100"`
	Year        int             `json:"year" binding:"omitempty,gte=1885,lte=2100"`
	Price       decimal.Decimal `json:"price" binding:"required,gt=0"`
	ImageURL    string          `json:"image_url" binding:"omitempty,url,max=2000"`
	Description string          `json:"description" binding:"max=2000"`
	SellerID    string          `json:"seller_id" binding:"required,max=100"`
}

// UpdateCarRequest replaces the editable fields of a listing.
// Status may move between Available and Reserved; sold cars keep their status.
// An omitted year keeps the stored one.
type UpdateCarRequest struct {
	Make        string          `json:"make" binding:"required,max=100"`
	Model       string          `json:"model" binding:"required,max=100"`
	Year        int             `json:"year" binding:"omitempty,gte=1885,lte=2100"`
	Price       decimal.Decimal `json:"price" binding:"required,gt=0"`
	ImageURL    string          `json:"image_url" binding:"omitempty,url,max=2000"`
	Description string          `json:"description" binding:"max=2000"`
	SellerID    string          `json:"seller_id" binding:"required,max=100"`
	Status      string          `json:"status" binding:"omitempty,oneof=Available Reserved"`
}

// SellCarRequest sells a car to a buyer
type SellCarRequest struct {
	BuyerID string `json:"buyer_id" binding:"required,max=100"`
}

// UpdateDescriptionRequest replaces a car's marketing description
type UpdateDescriptionRequest struct {
	Description string `json:"description" binding:"max=2000"`
}

// =============================================================================
// Responses
// =============================================================================

// CarResponse represents a car in API responses
type CarResponse struct {
	ID          string          `json:"id"`
	Make        string          `json:"make"`
	Model       string          `json:"model"`
	Year        int             `json:"year"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	SellerID    string          `json:"seller_id"`
	BuyerID     string          `json:"buyer_id,omitempty"`
	SoldDate    string          `json:"sold_date,omitempty"`
	Version     int             `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CarDetailResponse adds the display names of the car's partners
type CarDetailResponse struct {
	CarResponse
	SellerName string `json:"seller_name"`
	BuyerName  string `json:"buyer_name,omitempty"`
}

// SaleCandidateResponse is a buyer annotated against one car.
// The flags are informational; SellCar does not check them.
type SaleCandidateResponse struct {
	BuyerID     string          `json:"buyer_id"`
	Name        string          `json:"name"`
	Budget      decimal.Decimal `json:"budget"`
	CanAfford   bool            `json:"can_afford"`
	PrefersMake bool            `json:"prefers_make"`
	Preferences []string        `json:"preferences"`
}

// ToCarResponse converts a domain car to a response
func ToCarResponse(c *fleet.Car) CarResponse {
	return CarResponse{
		ID:          c.ID,
		Make:        c.Make,
		Model:       c.Model,
		Year:        c.Year,
		Title:       c.Title(),
		Price:       c.Price,
		Status:      c.Status.String(),
		ImageURL:    c.ImageURL,
		Description: c.Description,
		SellerID:    c.SellerID,
		BuyerID:     c.BuyerID,
		SoldDate:    c.SoldDateString(),
		Version:     c.GetVersion(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCarResponses converts a slice of domain cars
func ToCarResponses(cars []fleet.Car) []CarResponse {
	out := make([]CarResponse, len(cars))
	for i := range cars {
		out[i] = ToCarResponse(&cars[i])
	}
	return out
}
