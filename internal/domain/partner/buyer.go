package partner

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/crown/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BuyerIDPrefix prefixes generated buyer ids
const BuyerIDPrefix = "b-"

// Buyer is a client record: the destination of a car's sale
type Buyer struct {
	shared.BaseAggregateRoot
	Name        string
	Contact     string
	Budget      decimal.Decimal
	Preferences []string
	Image       string
}

// BuyerDetails holds the editable fields of a buyer
type BuyerDetails struct {
	Name        string
	Contact     string
	Budget      decimal.Decimal
	Preferences []string
	Image       string
}

// NewBuyer adds a buyer to the network
func NewBuyer(id string, details BuyerDetails) *Buyer {
	buyer := &Buyer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id, BuyerIDPrefix),
	}
	buyer.applyDetails(details)
	if buyer.Contact == "" {
		buyer.Contact = NoContact
	}
	if buyer.Image == "" {
		buyer.Image = fmt.Sprintf("https://source.unsplash.com/random/200x200/?rich,portrait,%s", url.QueryEscape(buyer.Name))
	}

	buyer.Record(NewBuyerAddedEvent(buyer))
	return buyer
}

// RestoreBuyer rebuilds a buyer from stored state without emitting events
func RestoreBuyer(id string, details BuyerDetails) *Buyer {
	buyer := &Buyer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id, BuyerIDPrefix),
	}
	buyer.applyDetails(details)
	return buyer
}

func (b *Buyer) applyDetails(details BuyerDetails) {
	b.Name = details.Name
	b.Contact = details.Contact
	b.Budget = details.Budget
	b.Image = details.Image
	// Preferences keep their order; the slice is copied so callers cannot alias it
	b.Preferences = append(make([]string, 0, len(details.Preferences)), details.Preferences...)
}

// Revise replaces the buyer's editable fields
func (b *Buyer) Revise(details BuyerDetails) {
	b.applyDetails(details)

	b.RecordChange(NewBuyerUpdatedEvent(b))
}

// CanAfford reports whether the price fits in the buyer's budget
func (b *Buyer) CanAfford(price decimal.Decimal) bool {
	return price.LessThanOrEqual(b.Budget)
}

// PrefersMake reports whether one of the buyer's tags names the make
func (b *Buyer) PrefersMake(carMake string) bool {
	for _, p := range b.Preferences {
		if strings.EqualFold(p, carMake) {
			return true
		}
	}
	return false
}
