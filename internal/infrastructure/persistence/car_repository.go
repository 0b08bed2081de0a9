package persistence

import (
	"context"

	"github.com/crown/backend/internal/domain/fleet"
	"github.com/crown/backend/internal/domain/shared"
)

// MemoryCarRepository implements fleet.CarRepository in process memory
type MemoryCarRepository struct {
	store *memoryStore[fleet.Car]
}

// NewMemoryCarRepository creates an empty MemoryCarRepository
func NewMemoryCarRepository() *MemoryCarRepository {
	return &MemoryCarRepository{
		store: newMemoryStore(func(c *fleet.Car) string { return c.ID }, cloneCar),
	}
}

func cloneCar(c *fleet.Car) fleet.Car {
	out := *c
	out.ClearDomainEvents()
	if c.SoldDate != nil {
		d := *c.SoldDate
		out.SoldDate = &d
	}
	return out
}

// FindAll returns cars matching the filter in insertion order
func (r *MemoryCarRepository) FindAll(ctx context.Context, filter fleet.CarFilter) ([]fleet.Car, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.list(filter.Matches), nil
}

// FindByID finds a car by its ID
func (r *MemoryCarRepository) FindByID(ctx context.Context, id string) (*fleet.Car, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	car, ok := r.store.get(id)
	if !ok {
		return nil, shared.NotFound("car", id)
	}
	return &car, nil
}

// Add appends a car
func (r *MemoryCarRepository) Add(ctx context.Context, car *fleet.Car) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.add(car)
	return nil
}

// Update replaces the car with the same ID
func (r *MemoryCarRepository) Update(ctx context.Context, car *fleet.Car) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.store.replace(car), nil
}

// Remove deletes the car with the given ID
func (r *MemoryCarRepository) Remove(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.store.remove(id), nil
}

// Count returns the number of cars
func (r *MemoryCarRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.store.count(), nil
}

var _ fleet.CarRepository = (*MemoryCarRepository)(nil)
