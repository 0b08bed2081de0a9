package partner

import (
	"fmt"
	"math"
	"net/url"

	"github.com/crown/backend/internal/domain/shared"
)

// SellerIDPrefix prefixes generated seller ids
const SellerIDPrefix = "s-"

// DefaultReputation is given to sellers added without a rating
const DefaultReputation = 5.0

// NoContact stands in for a partner added without contact details
const NoContact = "No Contact"

// Seller is a supplier partner: the source a car is acquired from.
// Reputation is intended to sit between 1 and 5 but is not enforced.
type Seller struct {
	shared.BaseAggregateRoot
	Name       string
	Contact    string
	Reputation float64
	Image      string
}

// SellerDetails holds the editable fields of a seller
type SellerDetails struct {
	Name       string
	Contact    string
	Reputation float64
	Image      string
}

// NewSeller adds a seller to the network
func NewSeller(id string, details SellerDetails) *Seller {
	seller := &Seller{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id, SellerIDPrefix),
	}
	seller.applyDetails(details)
	if seller.Contact == "" {
		seller.Contact = NoContact
	}
	if seller.Reputation == 0 {
		seller.Reputation = DefaultReputation
	}
	if seller.Image == "" {
		seller.Image = fmt.Sprintf("https://source.unsplash.com/random/200x200/?portrait,business,%s", url.QueryEscape(seller.Name))
	}

	seller.Record(NewSellerAddedEvent(seller))
	return seller
}

// RestoreSeller rebuilds a seller from stored state without emitting events
func RestoreSeller(id string, details SellerDetails) *Seller {
	seller := &Seller{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id, SellerIDPrefix),
	}
	seller.applyDetails(details)
	return seller
}

func (s *Seller) applyDetails(details SellerDetails) {
	s.Name = details.Name
	s.Contact = details.Contact
	s.Reputation = details.Reputation
	s.Image = details.Image
}

// Revise replaces the seller's editable fields
func (s *Seller) Revise(details SellerDetails) {
	s.applyDetails(details)

	s.RecordChange(NewSellerUpdatedEvent(s))
}

// Stars returns the reputation rounded to whole stars
func (s *Seller) Stars() int {
	stars := int(math.Round(s.Reputation))
	if stars < 0 {
		return 0
	}
	return stars
}
