package fleet

import (
	"context"
	"strings"
)

// CarFilter narrows a car listing. Zero values match everything.
type CarFilter struct {
	Status   CarStatus
	Make     string
	SellerID string
	BuyerID  string
	Search   string
}

// Matches reports whether the car satisfies the filter
func (f CarFilter) Matches(car *Car) bool {
	if f.Status != "" && car.Status != f.Status {
		return false
	}
	if f.Make != "" && !strings.EqualFold(car.Make, f.Make) {
		return false
	}
	if f.SellerID != "" && car.SellerID != f.SellerID {
		return false
	}
	if f.BuyerID != "" && car.BuyerID != f.BuyerID {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		haystack := strings.ToLower(car.Make + " " + car.Model + " " + car.Description)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

// CarRepository defines the interface for the car collection.
// Update and Remove report whether a record matched; a miss is not an error.
type CarRepository interface {
	// FindAll returns cars matching the filter in insertion order
	FindAll(ctx context.Context, filter CarFilter) ([]Car, error)

	// FindByID finds a car by its ID
	FindByID(ctx context.Context, id string) (*Car, error)

	// Add appends a car; id uniqueness is not checked
	Add(ctx context.Context, car *Car) error

	// Update replaces the car with the same ID
	Update(ctx context.Context, car *Car) (bool, error)

	// Remove deletes the car with the given ID
	Remove(ctx context.Context, id string) (bool, error)

	// Count returns the number of cars in the collection
	Count(ctx context.Context) (int, error)
}
