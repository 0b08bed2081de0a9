package persistence

import (
	"context"

	"github.com/crown/backend/internal/domain/partner"
	"github.com/crown/backend/internal/domain/shared"
)

// MemorySellerRepository implements partner.SellerRepository in process memory
type MemorySellerRepository struct {
	store *memoryStore[partner.Seller]
}

// NewMemorySellerRepository creates an empty MemorySellerRepository
func NewMemorySellerRepository() *MemorySellerRepository {
	return &MemorySellerRepository{
		store: newMemoryStore(func(s *partner.Seller) string { return s.ID }, func(s *partner.Seller) partner.Seller {
			out := *s
			out.ClearDomainEvents()
			return out
		}),
	}
}

// FindAll returns all sellers
func (r *MemorySellerRepository) FindAll(ctx context.Context) ([]partner.Seller, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.list(nil), nil
}

// FindByID finds a seller by its ID
func (r *MemorySellerRepository) FindByID(ctx context.Context, id string) (*partner.Seller, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seller, ok := r.store.get(id)
	if !ok {
		return nil, shared.NotFound("seller", id)
	}
	return &seller, nil
}

// Add appends a seller
func (r *MemorySellerRepository) Add(ctx context.Context, seller *partner.Seller) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.add(seller)
	return nil
}

// Update replaces the seller with the same ID
func (r *MemorySellerRepository) Update(ctx context.Context, seller *partner.Seller) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.store.replace(seller), nil
}

// Remove deletes the seller with the given ID
func (r *MemorySellerRepository) Remove(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.store.remove(id), nil
}

// MemoryBuyerRepository implements partner.BuyerRepository in process memory
type MemoryBuyerRepository struct {
	store *memoryStore[partner.Buyer]
}

// NewMemoryBuyerRepository creates an empty MemoryBuyerRepository
func NewMemoryBuyerRepository() *MemoryBuyerRepository {
	return &MemoryBuyerRepository{
		store: newMemoryStore(func(b *partner.Buyer) string { return b.ID }, func(b *partner.Buyer) partner.Buyer {
			out := *b
			out.ClearDomainEvents()
			out.Preferences = append(make([]string, 0, len(b.Preferences)), b.Preferences...)
			return out
		}),
	}
}

// FindAll returns all buyers
func (r *MemoryBuyerRepository) FindAll(ctx context.Context) ([]partner.Buyer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.list(nil), nil
}

// FindByID finds a buyer by its ID
func (r *MemoryBuyerRepository) FindByID(ctx context.Context, id string) (*partner.Buyer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	buyer, ok := r.store.get(id)
	if !ok {
		return nil, shared.NotFound("buyer", id)
	}
	return &buyer, nil
}

// Add appends a buyer
func (r *MemoryBuyerRepository) Add(ctx context.Context, buyer *partner.Buyer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.add(buyer)
	return nil
}

// Update replaces the buyer with the same ID
func (r *MemoryBuyerRepository) Update(ctx context.Context, buyer *partner.Buyer) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.store.replace(buyer), nil
}

// Remove deletes the buyer with the given ID
func (r *MemoryBuyerRepository) Remove(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return r.store.remove(id), nil
}

var (
	_ partner.SellerRepository = (*MemorySellerRepository)(nil)
	_ partner.BuyerRepository  = (*MemoryBuyerRepository)(nil)
)
