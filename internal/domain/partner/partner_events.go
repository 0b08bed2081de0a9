package partner

import (
	"github.com/crown/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeSeller = "Seller"
	AggregateTypeBuyer  = "Buyer"
)

// Event type constants for the network
const (
	EventTypeSellerAdded   = "SellerAdded"
	EventTypeSellerUpdated = "SellerUpdated"
	EventTypeSellerRemoved = "SellerRemoved"
	EventTypeBuyerAdded    = "BuyerAdded"
	EventTypeBuyerUpdated  = "BuyerUpdated"
	EventTypeBuyerRemoved  = "BuyerRemoved"
)

// SellerAddedEvent is published when a seller joins the network
type SellerAddedEvent struct {
	shared.BaseDomainEvent
	SellerID   string  `json:"seller_id"`
	Name       string  `json:"name"`
	Reputation float64 `json:"reputation"`
}

// NewSellerAddedEvent creates a new SellerAddedEvent
func NewSellerAddedEvent(seller *Seller) *SellerAddedEvent {
	return &SellerAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSellerAdded, AggregateTypeSeller, seller.ID),
		SellerID:        seller.ID,
		Name:            seller.Name,
		Reputation:      seller.Reputation,
	}
}

// SellerUpdatedEvent is published when a seller is edited
type SellerUpdatedEvent struct {
	shared.BaseDomainEvent
	SellerID string `json:"seller_id"`
	Name     string `json:"name"`
}

// NewSellerUpdatedEvent creates a new SellerUpdatedEvent
func NewSellerUpdatedEvent(seller *Seller) *SellerUpdatedEvent {
	return &SellerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSellerUpdated, AggregateTypeSeller, seller.ID),
		SellerID:        seller.ID,
		Name:            seller.Name,
	}
}

// SellerRemovedEvent is published when a seller leaves the network.
// Cars that reference the seller keep the dangling id.
type SellerRemovedEvent struct {
	shared.BaseDomainEvent
	SellerID string `json:"seller_id"`
}

// NewSellerRemovedEvent creates a new SellerRemovedEvent
func NewSellerRemovedEvent(sellerID string) *SellerRemovedEvent {
	return &SellerRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSellerRemoved, AggregateTypeSeller, sellerID),
		SellerID:        sellerID,
	}
}

// BuyerAddedEvent is published when a buyer joins the network
type BuyerAddedEvent struct {
	shared.BaseDomainEvent
	BuyerID string          `json:"buyer_id"`
	Name    string          `json:"name"`
	Budget  decimal.Decimal `json:"budget"`
}

// NewBuyerAddedEvent creates a new BuyerAddedEvent
func NewBuyerAddedEvent(buyer *Buyer) *BuyerAddedEvent {
	return &BuyerAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBuyerAdded, AggregateTypeBuyer, buyer.ID),
		BuyerID:         buyer.ID,
		Name:            buyer.Name,
		Budget:          buyer.Budget,
	}
}

// BuyerUpdatedEvent is published when a buyer is edited
type BuyerUpdatedEvent struct {
	shared.BaseDomainEvent
	BuyerID string          `json:"buyer_id"`
	Name    string          `json:"name"`
	Budget  decimal.Decimal `json:"budget"`
}

// NewBuyerUpdatedEvent creates a new BuyerUpdatedEvent
func NewBuyerUpdatedEvent(buyer *Buyer) *BuyerUpdatedEvent {
	return &BuyerUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBuyerUpdated, AggregateTypeBuyer, buyer.ID),
		BuyerID:         buyer.ID,
		Name:            buyer.Name,
		Budget:          buyer.Budget,
	}
}

// BuyerRemovedEvent is published when a buyer leaves the network
type BuyerRemovedEvent struct {
	shared.BaseDomainEvent
	BuyerID string `json:"buyer_id"`
}

// NewBuyerRemovedEvent creates a new BuyerRemovedEvent
func NewBuyerRemovedEvent(buyerID string) *BuyerRemovedEvent {
	return &BuyerRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBuyerRemoved, AggregateTypeBuyer, buyerID),
		BuyerID:         buyerID,
	}
}
