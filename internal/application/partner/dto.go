package partner

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crown/backend/internal/domain/fleet"
	"github.com/crown/backend/internal/domain/partner"
)

// =============================================================================
// Seller DTOs
// =============================================================================

// CreateSellerRequest adds a seller. ID is optional.
type CreateSellerRequest struct {
	ID         string  `json:"id" binding:"max=100"`
	Name       string  `json:"name" binding:"required,max=200"`
	Contact    string  `json:"contact" binding:"max=200"`
	Reputation float64 `json:"reputation" binding:"omitempty,gte=0,lte=5"`
	Image      string  `json:"image" binding:"omitempty,url,max=2000"`
}

// UpdateSellerRequest replaces a seller's editable fields
type UpdateSellerRequest struct {
	Name       string  `json:"name" binding:"required,max=200"`
	Contact    string  `json:"contact" binding:"max=200"`
	Reputation float64 `json:"reputation" binding:"gte=0,lte=5"`
	Image      string  `json:"image" binding:"omitempty,url,max=2000"`
}

// SellerResponse represents a seller in API responses
type SellerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	Reputation float64   `json:"reputation"`
	Stars      int       `json:"stars"`
	Image      string    `json:"image"`
	Version    int       `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SellerCarResponse is a compact view of a car supplied by a seller
type SellerCarResponse struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Status   string          `json:"status"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
}

// ToSellerResponse converts a domain seller to a response
func ToSellerResponse(s *partner.Seller) SellerResponse {
	return SellerResponse{
		ID:         s.ID,
		Name:       s.Name,
		Contact:    s.Contact,
		Reputation: s.Reputation,
		Stars:      s.Stars(),
		Image:      s.Image,
		Version:    s.GetVersion(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func toSellerCarResponses(cars []fleet.Car) []SellerCarResponse {
	out := make([]SellerCarResponse, len(cars))
	for i := range cars {
		out[i] = SellerCarResponse{
			ID:       cars[i].ID,
			Title:    cars[i].Title(),
			Status:   cars[i].Status.String(),
			Price:    cars[i].Price,
			ImageURL: cars[i].ImageURL,
		}
	}
	return out
}

// =============================================================================
// Buyer DTOs
// =============================================================================

// CreateBuyerRequest adds a buyer. ID is optional.
type CreateBuyerRequest struct {
	ID          string          `json:"id" binding:"max=100"`
	Name        string          `json:"name" binding:"required,max=200"`
	Contact     string          `json:"contact" binding:"max=200"`
	Budget      decimal.Decimal `json:"budget" binding:"gte=0"`
	Preferences []string        `json:"preferences" binding:"max=20,dive,max=50"`
	Image       string          `json:"image" binding:"omitempty,url,max=2000"`
}

// UpdateBuyerRequest replaces a buyer's editable fields
type UpdateBuyerRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Contact     string          `json:"contact" binding:"max=200"`
	Budget      decimal.Decimal `json:"budget" binding:"gte=0"`
	Preferences []string        `json:"preferences" binding:"max=20,dive,max=50"`
	Image       string          `json:"image" binding:"omitempty,url,max=2000"`
}

// BuyerResponse represents a buyer in API responses
type BuyerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Contact     string          `json:"contact"`
	Budget      decimal.Decimal `json:"budget"`
	Preferences []string        `json:"preferences"`
	Image       string          `json:"image"`
	Version     int             `json:"version"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToBuyerResponse converts a domain buyer to a response
func ToBuyerResponse(b *partner.Buyer) BuyerResponse {
	return BuyerResponse{
		ID:          b.ID,
		Name:        b.Name,
		Contact:     b.Contact,
		Budget:      b.Budget,
		Preferences: b.Preferences,
		Image:       b.Image,
		Version:     b.GetVersion(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// splitTags trims tags and drops empty ones, keeping order
func splitTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
