package fleet

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/crown/backend/internal/domain/fleet"
	"github.com/crown/backend/internal/domain/partner"
	"github.com/crown/backend/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) FindAll(ctx context.Context, filter fleet.CarFilter) ([]fleet.Car, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.Car), args.Error(1)
}

func (m *MockCarRepository) FindByID(ctx context.Context, id string) (*fleet.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Car), args.Error(1)
}

func (m *MockCarRepository) Add(ctx context.Context, car *fleet.Car) error {
	return m.Called(ctx, car).Error(0)
}

func (m *MockCarRepository) Update(ctx context.Context, car *fleet.Car) (bool, error) {
	args := m.Called(ctx, car)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarRepository) Remove(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockSellerRepository struct {
	mock.Mock
}

func (m *MockSellerRepository) FindAll(ctx context.Context) ([]partner.Seller, error) {
	args := m.Called(ctx)
	return args.Get(0).([]partner.Seller), args.Error(1)
}

func (m *MockSellerRepository) FindByID(ctx context.Context, id string) (*partner.Seller, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Seller), args.Error(1)
}

func (m *MockSellerRepository) Add(ctx context.Context, seller *partner.Seller) error {
	return m.Called(ctx, seller).Error(0)
}

func (m *MockSellerRepository) Update(ctx context.Context, seller *partner.Seller) (bool, error) {
	args := m.Called(ctx, seller)
	return args.Bool(0), args.Error(1)
}

func (m *MockSellerRepository) Remove(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockBuyerRepository struct {
	mock.Mock
}

func (m *MockBuyerRepository) FindAll(ctx context.Context) ([]partner.Buyer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]partner.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) FindByID(ctx context.Context, id string) (*partner.Buyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) Add(ctx context.Context, buyer *partner.Buyer) error {
	return m.Called(ctx, buyer).Error(0)
}

func (m *MockBuyerRepository) Update(ctx context.Context, buyer *partner.Buyer) (bool, error) {
	args := m.Called(ctx, buyer)
	return args.Bool(0), args.Error(1)
}

func (m *MockBuyerRepository) Remove(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

var (
	_ fleet.CarRepository      = (*MockCarRepository)(nil)
	_ partner.SellerRepository = (*MockSellerRepository)(nil)
	_ partner.BuyerRepository  = (*MockBuyerRepository)(nil)
	_ shared.EventPublisher    = (*MockEventPublisher)(nil)
)
