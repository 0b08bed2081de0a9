package partner

import "context"

// SellerRepository defines the interface for the seller collection.
// Update and Remove report whether a record matched; a miss is not an error.
type SellerRepository interface {
	// FindAll returns all sellers in insertion order
	FindAll(ctx context.Context) ([]Seller, error)

	// FindByID finds a seller by its ID
	FindByID(ctx context.Context, id string) (*Seller, error)

	// Add appends a seller
	Add(ctx context.Context, seller *Seller) error

	// Update replaces the seller with the same ID
	Update(ctx context.Context, seller *Seller) (bool, error)

	// Remove deletes the seller with the given ID
	Remove(ctx context.Context, id string) (bool, error)
}

// BuyerRepository defines the interface for the buyer collection
type BuyerRepository interface {
	// FindAll returns all buyers in insertion order
	FindAll(ctx context.Context) ([]Buyer, error)

	// FindByID finds a buyer by its ID
	FindByID(ctx context.Context, id string) (*Buyer, error)

	// Add appends a buyer
	Add(ctx context.Context, buyer *Buyer) error

	// Update replaces the buyer with the same ID
	Update(ctx context.Context, buyer *Buyer) (bool, error)

	// Remove deletes the buyer with the given ID
	Remove(ctx context.Context, id string) (bool, error)
}
