// Package partner implements the network use cases for sellers and buyers.
package partner

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appevent "github.com/crown/backend/internal/application/event"
	"github.com/crown/backend/internal/domain/fleet"
	"github.com/crown/backend/internal/domain/partner"
	"github.com/crown/backend/internal/domain/shared"
)

// SellerService handles seller operations.
// Update and Delete on a missing id are silent no-ops.
type SellerService struct {
	sellerRepo partner.SellerRepository
	carRepo    fleet.CarRepository
	publisher  shared.EventPublisher
	logger     *zap.Logger
}

// NewSellerService creates a new SellerService. publisher may be nil.
func NewSellerService(sellerRepo partner.SellerRepository, carRepo fleet.CarRepository, publisher shared.EventPublisher, logger *zap.Logger) *SellerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SellerService{
		sellerRepo: sellerRepo,
		carRepo:    carRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// List returns every seller in insertion order
func (s *SellerService) List(ctx context.Context) ([]SellerResponse, error) {
	sellers, err := s.sellerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SellerResponse, len(sellers))
	for i := range sellers {
		out[i] = ToSellerResponse(&sellers[i])
	}
	return out, nil
}

// GetByID returns one seller
func (s *SellerService) GetByID(ctx context.Context, id string) (*SellerResponse, error) {
	seller, err := s.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSellerResponse(seller)
	return &resp, nil
}

// Create adds a seller to the network
func (s *SellerService) Create(ctx context.Context, req CreateSellerRequest) (*SellerResponse, error) {
	seller := partner.NewSeller(req.ID, partner.SellerDetails{
		Name:       req.Name,
		Contact:    req.Contact,
		Reputation: req.Reputation,
		Image:      req.Image,
	})
	if err := s.sellerRepo.Add(ctx, seller); err != nil {
		return nil, err
	}
	appevent.PublishPending(ctx, s.publisher, seller, s.logger)
	s.logger.Info("Seller added", zap.String("seller_id", seller.ID), zap.String("name", seller.Name))

	resp := ToSellerResponse(seller)
	return &resp, nil
}

// Update replaces a seller's editable fields
func (s *SellerService) Update(ctx context.Context, id string, req UpdateSellerRequest) (*SellerResponse, error) {
	seller, err := s.sellerRepo.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	image := req.Image
	if image == "" {
		image = seller.Image
	}
	seller.Revise(partner.SellerDetails{
		Name:       req.Name,
		Contact:    req.Contact,
		Reputation: req.Reputation,
		Image:      image,
	})

	replaced, err := s.sellerRepo.Update(ctx, seller)
	if err != nil || !replaced {
		return nil, err
	}
	appevent.PublishPending(ctx, s.publisher, seller, s.logger)

	resp := ToSellerResponse(seller)
	return &resp, nil
}

// Delete removes a seller. Cars that reference the seller are kept.
func (s *SellerService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.sellerRepo.Remove(ctx, id)
	if err != nil || !removed {
		return false, err
	}
	appevent.Publish(ctx, s.publisher, s.logger, partner.NewSellerRemovedEvent(id))
	s.logger.Info("Seller removed", zap.String("seller_id", id))
	return true, nil
}

// ListCars returns the cars supplied by a seller.
// The seller must exist; its cars may be in any status.
func (s *SellerService) ListCars(ctx context.Context, id string) ([]SellerCarResponse, error) {
	if _, err := s.sellerRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	cars, err := s.carRepo.FindAll(ctx, fleet.CarFilter{SellerID: id})
	if err != nil {
		return nil, err
	}
	return toSellerCarResponses(cars), nil
}
