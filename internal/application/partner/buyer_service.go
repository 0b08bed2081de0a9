package partner

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appevent "github.com/crown/backend/internal/application/event"
	"github.com/crown/backend/internal/domain/partner"
	"github.com/crown/backend/internal/domain/shared"
)

// BuyerService handles buyer operations.
// Update and Delete on a missing id are silent no-ops.
type BuyerService struct {
	buyerRepo partner.BuyerRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewBuyerService creates a new BuyerService. publisher may be nil.
func NewBuyerService(buyerRepo partner.BuyerRepository, publisher shared.EventPublisher, logger *zap.Logger) *BuyerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BuyerService{
		buyerRepo: buyerRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns every buyer in insertion order
func (s *BuyerService) List(ctx context.Context) ([]BuyerResponse, error) {
	buyers, err := s.buyerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BuyerResponse, len(buyers))
	for i := range buyers {
		out[i] = ToBuyerResponse(&buyers[i])
	}
	return out, nil
}

// GetByID returns one buyer
func (s *BuyerService) GetByID(ctx context.Context, id string) (*BuyerResponse, error) {
	buyer, err := s.buyerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToBuyerResponse(buyer)
	return &resp, nil
}

// Create adds a buyer to the network
func (s *BuyerService) Create(ctx context.Context, req CreateBuyerRequest) (*BuyerResponse, error) {
	buyer := partner.NewBuyer(req.ID, partner.BuyerDetails{
		Name:        req.Name,
		Contact:     req.Contact,
		Budget:      req.Budget,
		Preferences: splitTags(req.Preferences),
		Image:       req.Image,
	})
	if err := s.buyerRepo.Add(ctx, buyer); err != nil {
		return nil, err
	}
	appevent.PublishPending(ctx, s.publisher, buyer, s.logger)
	s.logger.Info("Buyer added", zap.String("buyer_id", buyer.ID), zap.String("name", buyer.Name))

	resp := ToBuyerResponse(buyer)
	return &resp, nil
}

// Update replaces a buyer's editable fields
func (s *BuyerService) Update(ctx context.Context, id string, req UpdateBuyerRequest) (*BuyerResponse, error) {
	buyer, err := s.buyerRepo.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	image := req.Image
	if image == "" {
		image = buyer.Image
	}
	buyer.Revise(partner.BuyerDetails{
		Name:        req.Name,
		Contact:     req.Contact,
		Budget:      req.Budget,
		Preferences: splitTags(req.Preferences),
		Image:       image,
	})

	replaced, err := s.buyerRepo.Update(ctx, buyer)
	if err != nil || !replaced {
		return nil, err
	}
	appevent.PublishPending(ctx, s.publisher, buyer, s.logger)

	resp := ToBuyerResponse(buyer)
	return &resp, nil
}

// Delete removes a buyer. Sold cars keep the buyer id.
func (s *BuyerService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.buyerRepo.Remove(ctx, id)
	if err != nil || !removed {
		return false, err
	}
	appevent.Publish(ctx, s.publisher, s.logger, partner.NewBuyerRemovedEvent(id))
	s.logger.Info("Buyer removed", zap.String("buyer_id", id))
	return true, nil
}
