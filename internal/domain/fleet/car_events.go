package fleet

import (
	"time"

	"github.com/crown/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AggregateTypeCar is the aggregate type for cars
const AggregateTypeCar = "Car"

// Event type constants for Car
const (
	EventTypeCarListed             = "CarListed"
	EventTypeCarUpdated            = "CarUpdated"
	EventTypeCarSold               = "CarSold"
	EventTypeCarDescriptionUpdated = "CarDescriptionUpdated"
	EventTypeCarDelisted           = "CarDelisted"
)

// CarListedEvent is published when a car is added to the inventory
type CarListedEvent struct {
	shared.BaseDomainEvent
	CarID    string          `json:"car_id"`
	Make     string          `json:"make"`
	Model    string          `json:"model"`
	Year     int             `json:"year"`
	Price    decimal.Decimal `json:"price"`
	SellerID string          `json:"seller_id"`
}

// NewCarListedEvent creates a new CarListedEvent
func NewCarListedEvent(car *Car) *CarListedEvent {
	return &CarListedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCarListed, AggregateTypeCar, car.ID),
		CarID:           car.ID,
		Make:            car.Make,
		Model:           car.Model,
		Year:            car.Year,
		Price:           car.Price,
		SellerID:        car.SellerID,
	}
}

// CarUpdatedEvent is published when a listing is edited
type CarUpdatedEvent struct {
	shared.BaseDomainEvent
	CarID  string          `json:"car_id"`
	Status CarStatus       `json:"status"`
	Price  decimal.Decimal `json:"price"`
}

// NewCarUpdatedEvent creates a new CarUpdatedEvent
func NewCarUpdatedEvent(car *Car) *CarUpdatedEvent {
	return &CarUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCarUpdated, AggregateTypeCar, car.ID),
		CarID:           car.ID,
		Status:          car.Status,
		Price:           car.Price,
	}
}

// CarSoldEvent is published when a car is sold to a buyer
type CarSoldEvent struct {
	shared.BaseDomainEvent
	CarID    string          `json:"car_id"`
	BuyerID  string          `json:"buyer_id"`
	SellerID string          `json:"seller_id"`
	Make     string          `json:"make"`
	Model    string          `json:"model"`
	Price    decimal.Decimal `json:"price"`
	SoldDate time.Time       `json:"sold_date"`
}

// NewCarSoldEvent creates a new CarSoldEvent
func NewCarSoldEvent(car *Car) *CarSoldEvent {
	event := &CarSoldEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCarSold, AggregateTypeCar, car.ID),
		CarID:           car.ID,
		BuyerID:         car.BuyerID,
		SellerID:        car.SellerID,
		Make:            car.Make,
		Model:           car.Model,
		Price:           car.Price,
	}
	if car.SoldDate != nil {
		event.SoldDate = *car.SoldDate
	}
	return event
}

// CarDescriptionUpdatedEvent is published when the marketing description changes
type CarDescriptionUpdatedEvent struct {
	shared.BaseDomainEvent
	CarID       string `json:"car_id"`
	Description string `json:"description"`
}

// NewCarDescriptionUpdatedEvent creates a new CarDescriptionUpdatedEvent
func NewCarDescriptionUpdatedEvent(car *Car) *CarDescriptionUpdatedEvent {
	return &CarDescriptionUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCarDescriptionUpdated, AggregateTypeCar, car.ID),
		CarID:           car.ID,
		Description:     car.Description,
	}
}

// CarDelistedEvent is published when a car is removed from the inventory
type CarDelistedEvent struct {
	shared.BaseDomainEvent
	CarID string `json:"car_id"`
}

// NewCarDelistedEvent creates a new CarDelistedEvent
func NewCarDelistedEvent(carID string) *CarDelistedEvent {
	return &CarDelistedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCarDelisted, AggregateTypeCar, carID),
		CarID:           carID,
	}
}
