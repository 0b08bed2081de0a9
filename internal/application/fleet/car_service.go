// Package fleet implements the inventory use cases: listing, editing,
// delisting and selling cars.
package fleet

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	appevent "github.com/crown/backend/internal/application/event"
	"github.com/crown/backend/internal/domain/fleet"
	"github.com/crown/backend/internal/domain/partner"
	"github.com/crown/backend/internal/domain/shared"
	"github.com/crown/backend/internal/infrastructure/telemetry"
)

// CarService handles inventory operations.
//
// Mutations addressed to an id that does not exist are silent no-ops: they
// return a nil response (or false) and a nil error. Reads report
// shared.ErrNotFound.
type CarService struct {
	carRepo    fleet.CarRepository
	sellerRepo partner.SellerRepository
	buyerRepo  partner.BuyerRepository
	publisher  shared.EventPublisher
	logger     *zap.Logger
	now        func() time.Time
}

// CarServiceOption configures a CarService
type CarServiceOption func(*CarService)

// WithEventPublisher publishes domain events after each mutation
func WithEventPublisher(p shared.EventPublisher) CarServiceOption {
	return func(s *CarService) { s.publisher = p }
}

// WithLogger sets the service logger
func WithLogger(l *zap.Logger) CarServiceOption {
	return func(s *CarService) { s.logger = l }
}

// WithClock overrides the clock used for sale dates
func WithClock(now func() time.Time) CarServiceOption {
	return func(s *CarService) { s.now = now }
}

// NewCarService creates a new CarService
func NewCarService(
	carRepo fleet.CarRepository,
	sellerRepo partner.SellerRepository,
	buyerRepo partner.BuyerRepository,
	opts ...CarServiceOption,
) *CarService {
	s := &CarService{
		carRepo:    carRepo,
		sellerRepo: sellerRepo,
		buyerRepo:  buyerRepo,
		logger:     zap.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the cars matching the filter in insertion order
func (s *CarService) List(ctx context.Context, filter CarListFilter) ([]CarResponse, error) {
	cars, err := s.carRepo.FindAll(ctx, filter.toDomain())
	if err != nil {
		return nil, err
	}
	return ToCarResponses(cars), nil
}

// GetByID returns one car with its seller and buyer names.
// A reference to a partner that no longer exists resolves to UnknownName.
func (s *CarService) GetByID(ctx context.Context, id string) (*CarDetailResponse, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &CarDetailResponse{
		CarResponse: ToCarResponse(car),
		SellerName:  UnknownName,
	}

	seller, err := s.sellerRepo.FindByID(ctx, car.SellerID)
	switch {
	case err == nil:
		detail.SellerName = seller.Name
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}

	if car.BuyerID != "" {
		detail.BuyerName = UnknownName
		buyer, err := s.buyerRepo.FindByID(ctx, car.BuyerID)
		switch {
		case err == nil:
			detail.BuyerName = buyer.Name
		case !errors.Is(err, shared.ErrNotFound):
			return nil, err
		}
	}

	return detail, nil
}

// Create lists a new car as Available
func (s *CarService) Create(ctx context.Context, req CreateCarRequest) (*CarResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "CarService", "Create")
	defer span.End()

	car := fleet.NewCar(req.ID, fleet.CarDetails{
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		SellerID:    req.SellerID,
	})
	telemetry.SetAttributes(span, telemetry.SpanAttrCarID, car.ID, telemetry.SpanAttrCarMake, car.Make)

	if err := s.carRepo.Add(ctx, car); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	appevent.PublishPending(ctx, s.publisher, car, s.logger)

	s.logger.Info("Car listed",
		zap.String("car_id", car.ID),
		zap.String("title", car.Title()),
		zap.String("seller_id", car.SellerID),
	)

	resp := ToCarResponse(car)
	return &resp, nil
}

// Update rebuilds the listing from the stored car and the request.
// Sale fields are carried over from the stored record.
func (s *CarService) Update(ctx context.Context, id string, req UpdateCarRequest) (*CarResponse, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	year := req.Year
	if year == 0 {
		year = car.Year
	}
	car.Revise(fleet.CarDetails{
		Make:        req.Make,
		Model:       req.Model,
		Year:        year,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		SellerID:    req.SellerID,
		Status:      fleet.CarStatus(req.Status),
	})
	if car.ImageURL == "" {
		car.ImageURL = fleet.DefaultImageURL(car.Make)
	}

	return s.apply(ctx, car)
}

// Delete removes a car. It reports whether a car was removed.
// Sellers and buyers that reference the car are left as they are.
func (s *CarService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.carRepo.Remove(ctx, id)
	if err != nil || !removed {
		return false, err
	}
	appevent.Publish(ctx, s.publisher, s.logger, fleet.NewCarDelistedEvent(id))
	s.logger.Info("Car delisted", zap.String("car_id", id))
	return true, nil
}

// Sell marks the car sold to the buyer on today's date.
// The buyer is not checked, and selling a sold car again overwrites buyer and date.
func (s *CarService) Sell(ctx context.Context, id string, req SellCarRequest) (*CarResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "CarService", "Sell",
		telemetry.WithAttribute(telemetry.SpanAttrCarID, id),
		telemetry.WithAttribute(telemetry.SpanAttrBuyerID, req.BuyerID),
	)
	defer span.End()

	car, err := s.carRepo.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		telemetry.AddEvent(span, "car_not_found")
		return nil, nil
	}
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	wasSold := car.IsSold()
	car.Sell(req.BuyerID, s.now())
	telemetry.SetAttributes(span,
		telemetry.SpanAttrCarMake, car.Make,
		telemetry.SpanAttrPrice, car.Price.String(),
	)

	resp, err := s.apply(ctx, car)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if resp != nil {
		fields := []zap.Field{
			zap.String("car_id", car.ID),
			zap.String("buyer_id", car.BuyerID),
			zap.String("price", car.Price.String()),
			zap.String("sold_date", car.SoldDateString()),
		}
		if wasSold {
			s.logger.Warn("Car sold again, previous sale overwritten", fields...)
		} else {
			s.logger.Info("Car sold", fields...)
		}
	}
	telemetry.SetOK(span)
	return resp, nil
}

// UpdateDescription replaces only the car's marketing description
func (s *CarService) UpdateDescription(ctx context.Context, id, description string) (*CarResponse, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	car.SetDescription(description)
	return s.apply(ctx, car)
}

// SaleCandidates lists every buyer with affordability and preference flags
// for the car. It is advisory only.
func (s *CarService) SaleCandidates(ctx context.Context, id string) ([]SaleCandidateResponse, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	buyers, err := s.buyerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SaleCandidateResponse, len(buyers))
	for i := range buyers {
		b := &buyers[i]
		out[i] = SaleCandidateResponse{
			BuyerID:     b.ID,
			Name:        b.Name,
			Budget:      b.Budget,
			CanAfford:   b.CanAfford(car.Price),
			PrefersMake: b.PrefersMake(car.Make),
			Preferences: b.Preferences,
		}
	}
	return out, nil
}

// apply stores a modified car and publishes its events.
// A car removed since it was read yields a nil response.
func (s *CarService) apply(ctx context.Context, car *fleet.Car) (*CarResponse, error) {
	replaced, err := s.carRepo.Update(ctx, car)
	if err != nil {
		return nil, err
	}
	if !replaced {
		car.ClearDomainEvents()
		return nil, nil
	}
	appevent.PublishPending(ctx, s.publisher, car, s.logger)

	resp := ToCarResponse(car)
	return &resp, nil
}
