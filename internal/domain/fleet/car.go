package fleet

import (
	"fmt"
	"net/url"
	"time"

	"github.com/crown/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CarStatus represents where a car is in the brokerage lifecycle
type CarStatus string

const (
	CarStatusAvailable CarStatus = "Available"
	CarStatusSold      CarStatus = "Sold"
	CarStatusReserved  CarStatus = "Reserved"
)

// IsValid checks if the status is one of the known values
func (s CarStatus) IsValid() bool {
	switch s {
	case CarStatusAvailable, CarStatusSold, CarStatusReserved:
		return true
	}
	return false
}

// String returns the string representation
func (s CarStatus) String() string {
	return string(s)
}

// AllCarStatuses returns every status in display order
func AllCarStatuses() []CarStatus {
	return []CarStatus{CarStatusAvailable, CarStatusSold, CarStatusReserved}
}

// SoldDateLayout is the calendar-date format used for sale dates
const SoldDateLayout = "2006-01-02"

// Car is the aggregate root for a vehicle held in the brokerage inventory.
// BuyerID and SoldDate are only ever written by Sell and are never cleared.
type Car struct {
	shared.BaseAggregateRoot
	Make        string
	Model       string
	Year        int
	Price       decimal.Decimal
	Status      CarStatus
	ImageURL    string
	Description string
	SellerID    string
	BuyerID     string
	SoldDate    *time.Time
}

// CarDetails holds the editable fields of a listing
type CarDetails struct {
	Make        string
	Model       string
	Year        int
	Price       decimal.Decimal
	ImageURL    string
	Description string
	SellerID    string
	// Status is applied only when the car is not sold. Empty keeps the current status.
	Status CarStatus
}

// NewCar lists a new car as Available.
// Zero year and empty image URL fall back to the current year and a stock photo.
func NewCar(id string, details CarDetails) *Car {
	car := &Car{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id, ""),
		Status:            CarStatusAvailable,
	}
	car.applyDetails(details)
	if car.Year == 0 {
		car.Year = time.Now().Year()
	}
	if car.ImageURL == "" {
		car.ImageURL = DefaultImageURL(car.Make)
	}

	car.Record(NewCarListedEvent(car))
	return car
}

// RestoreCar rebuilds a car from stored state without emitting events.
// It is used for seed data and snapshots, where status and sale fields are already known.
func RestoreCar(id string, details CarDetails, status CarStatus, buyerID string, soldDate *time.Time) *Car {
	car := &Car{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id, ""),
		Status:            status,
		BuyerID:           buyerID,
		SoldDate:          soldDate,
	}
	car.applyDetails(details)
	return car
}

// DefaultImageURL returns the stock photo used when a listing has no image
func DefaultImageURL(carMake string) string {
	return fmt.Sprintf("https://source.unsplash.com/random/800x600/?luxury,car,%s", url.QueryEscape(carMake))
}

func (c *Car) applyDetails(details CarDetails) {
	c.Make = details.Make
	c.Model = details.Model
	c.Year = details.Year
	c.Price = details.Price
	c.ImageURL = details.ImageURL
	c.Description = details.Description
	c.SellerID = details.SellerID
}

// Revise replaces the editable fields of the listing.
// Sale fields are kept as they are, and a sold car stays sold.
func (c *Car) Revise(details CarDetails) {
	c.applyDetails(details)
	if details.Status != "" && details.Status != CarStatusSold && !c.IsSold() && details.Status.IsValid() {
		c.Status = details.Status
	}

	c.RecordChange(NewCarUpdatedEvent(c))
}

// Sell marks the car as sold to the buyer on the calendar date of at.
// The buyer is not checked against the network and repeat sales overwrite the buyer.
func (c *Car) Sell(buyerID string, at time.Time) {
	soldDate := DateOf(at)
	c.Status = CarStatusSold
	c.BuyerID = buyerID
	c.SoldDate = &soldDate

	c.RecordChange(NewCarSoldEvent(c))
}

// SetDescription replaces the marketing description
func (c *Car) SetDescription(description string) {
	c.Description = description

	c.RecordChange(NewCarDescriptionUpdatedEvent(c))
}

// IsSold returns true if the car has been sold
func (c *Car) IsSold() bool {
	return c.Status == CarStatusSold
}

// IsAvailable returns true if the car is on offer
func (c *Car) IsAvailable() bool {
	return c.Status == CarStatusAvailable
}

// SoldDateString returns the sale date as YYYY-MM-DD, or "" when unsold
func (c *Car) SoldDateString() string {
	if c.SoldDate == nil {
		return ""
	}
	return c.SoldDate.Format(SoldDateLayout)
}

// Title returns "year make model"
func (c *Car) Title() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
}

// DateOf truncates t to its UTC calendar date
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseSoldDate parses a YYYY-MM-DD date
func ParseSoldDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(SoldDateLayout, s)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sold date must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}
