package fleet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/crown/backend/internal/domain/fleet"
	"github.com/crown/backend/internal/domain/partner"
	"github.com/crown/backend/internal/domain/shared"
	"github.com/crown/backend/internal/infrastructure/persistence"
)

var fixedNow = time.Date(2024, 5, 17, 15, 42, 0, 0, time.UTC)

type serviceFixture struct {
	cars      *MockCarRepository
	sellers   *MockSellerRepository
	buyers    *MockBuyerRepository
	publisher *MockEventPublisher
	svc       *CarService
}

func newFixture() *serviceFixture {
	f := &serviceFixture{
		cars:      new(MockCarRepository),
		sellers:   new(MockSellerRepository),
		buyers:    new(MockBuyerRepository),
		publisher: new(MockEventPublisher),
	}
	f.svc = NewCarService(f.cars, f.sellers, f.buyers,
		WithEventPublisher(f.publisher),
		WithClock(func() time.Time { return fixedNow }),
	)
	return f
}

func storedCar(status fleet.CarStatus) *fleet.Car {
	return fleet.RestoreCar("c1", fleet.CarDetails{
		Make:     "Ferrari",
		Model:    "250 GTO",
		Year:     1962,
		Price:    decimal.NewFromInt(1250000),
		ImageURL: "https://example.com/gto.jpg",
		SellerID: "s1",
	}, status, "", nil)
}

func eventTypes(t *testing.T, want ...string) any {
	t.Helper()
	return mock.MatchedBy(func(events []shared.DomainEvent) bool {
		if len(events) != len(want) {
			return false
		}
		for i, e := range events {
			if e.EventType() != want[i] {
				return false
			}
		}
		return true
	})
}

func TestCarService_List(t *testing.T) {
	f := newFixture()
	cars := []fleet.Car{*storedCar(fleet.CarStatusAvailable)}
	f.cars.On("FindAll", mock.Anything, fleet.CarFilter{Status: fleet.CarStatusAvailable, Make: "ferrari"}).Return(cars, nil)

	got, err := f.svc.List(context.Background(), CarListFilter{Status: "Available", Make: "ferrari"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1962 Ferrari 250 GTO", got[0].Title)
	assert.Empty(t, got[0].SoldDate)
}

func TestCarService_GetByID_ResolvesNames(t *testing.T) {
	f := newFixture()
	car := storedCar(fleet.CarStatusAvailable)
	car.Sell("b1", fixedNow)
	car.ClearDomainEvents()

	f.cars.On("FindByID", mock.Anything, "c1").Return(car, nil)
	f.sellers.On("FindByID", mock.Anything, "s1").Return(partner.RestoreSeller("s1", partner.SellerDetails{Name: "Hans Gruber"}), nil)
	f.buyers.On("FindByID", mock.Anything, "b1").Return(partner.RestoreBuyer("b1", partner.BuyerDetails{Name: "Elon Tusk"}), nil)

	got, err := f.svc.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Hans Gruber", got.SellerName)
	assert.Equal(t, "Elon Tusk", got.BuyerName)
	assert.Equal(t, "2024-05-17", got.SoldDate)
}

func TestCarService_GetByID_DanglingReferences(t *testing.T) {
	f := newFixture()
	car := storedCar(fleet.CarStatusAvailable)
	car.Sell("b-gone", fixedNow)
	car.ClearDomainEvents()

	f.cars.On("FindByID", mock.Anything, "c1").Return(car, nil)
	f.sellers.On("FindByID", mock.Anything, "s1").Return(nil, shared.ErrNotFound)
	f.buyers.On("FindByID", mock.Anything, "b-gone").Return(nil, shared.ErrNotFound)

	got, err := f.svc.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, UnknownName, got.SellerName)
	assert.Equal(t, UnknownName, got.BuyerName)
}

func TestCarService_GetByID_UnsoldHasNoBuyerName(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "c1").Return(storedCar(fleet.CarStatusAvailable), nil)
	f.sellers.On("FindByID", mock.Anything, "s1").Return(nil, shared.ErrNotFound)

	got, err := f.svc.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, got.BuyerName)
	f.buyers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCarService_GetByID_NotFound(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "nope").Return(nil, shared.ErrNotFound)

	_, err := f.svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCarService_Create(t *testing.T) {
	f := newFixture()
	f.cars.On("Add", mock.Anything, mock.MatchedBy(func(c *fleet.Car) bool {
		return c.ID == "c9" && c.Status == fleet.CarStatusAvailable
	})).Return(nil)
	f.publisher.On("Publish", mock.Anything, eventTypes(t, fleet.EventTypeCarListed)).Return(nil).Once()

	got, err := f.svc.Create(context.Background(), CreateCarRequest{
		ID: "c9", Make: "Bugatti", Model: "Chiron", Year: 2021,
		Price: decimal.NewFromInt(3000000), SellerID: "s2",
	})
	require.NoError(t, err)
	assert.Equal(t, "Available", got.Status)
	assert.Contains(t, got.ImageURL, "Bugatti")
	f.publisher.AssertExpectations(t)
}

func TestCarService_Create_GeneratesID(t *testing.T) {
	f := newFixture()
	f.cars.On("Add", mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	got, err := f.svc.Create(context.Background(), CreateCarRequest{
		Make: "Bugatti", Model: "Chiron", Price: decimal.NewFromInt(1), SellerID: "s2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, time.Now().Year(), got.Year)
}

func TestCarService_Create_RepositoryError(t *testing.T) {
	f := newFixture()
	f.cars.On("Add", mock.Anything, mock.Anything).Return(context.Canceled)

	_, err := f.svc.Create(context.Background(), CreateCarRequest{Make: "A", Model: "B", Price: decimal.NewFromInt(1), SellerID: "s"})
	assert.ErrorIs(t, err, context.Canceled)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCarService_Update_KeepsSaleFields(t *testing.T) {
	f := newFixture()
	car := storedCar(fleet.CarStatusAvailable)
	car.Sell("b1", fixedNow)
	car.ClearDomainEvents()

	f.cars.On("FindByID", mock.Anything, "c1").Return(car, nil)
	f.cars.On("Update", mock.Anything, mock.Anything).Return(true, nil)
	f.publisher.On("Publish", mock.Anything, eventTypes(t, fleet.EventTypeCarUpdated)).Return(nil)

	got, err := f.svc.Update(context.Background(), "c1", UpdateCarRequest{
		Make: "Ferrari", Model: "250 GTO", Year: 1962, Price: decimal.NewFromInt(1300000),
		SellerID: "s1", Status: "Available",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sold", got.Status)
	assert.Equal(t, "b1", got.BuyerID)
	assert.Equal(t, "2024-05-17", got.SoldDate)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(1300000)))
	assert.Contains(t, got.ImageURL, "unsplash")
}

func TestCarService_Update_Reserve(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "c1").Return(storedCar(fleet.CarStatusAvailable), nil)
	f.cars.On("Update", mock.Anything, mock.Anything).Return(true, nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	got, err := f.svc.Update(context.Background(), "c1", UpdateCarRequest{
		Make: "Ferrari", Model: "250 GTO", Year: 1962, Price: decimal.NewFromInt(1), SellerID: "s1", Status: "Reserved",
	})
	require.NoError(t, err)
	assert.Equal(t, "Reserved", got.Status)
}

func TestCarService_Update_OmittedYearKeepsStored(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "c1").Return(storedCar(fleet.CarStatusAvailable), nil)
	f.cars.On("Update", mock.Anything, mock.MatchedBy(func(c *fleet.Car) bool {
		return c.Year == 1962 && c.Model == "250 GTO SWB"
	})).Return(true, nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	got, err := f.svc.Update(context.Background(), "c1", UpdateCarRequest{
		Make: "Ferrari", Model: "250 GTO SWB", Price: decimal.NewFromInt(1250000), SellerID: "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1962, got.Year)
	f.cars.AssertExpectations(t)
}

func TestCarService_Update_MissingIsNoop(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "nope").Return(nil, shared.ErrNotFound)

	got, err := f.svc.Update(context.Background(), "nope", UpdateCarRequest{Make: "x"})
	assert.NoError(t, err)
	assert.Nil(t, got)
	f.cars.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCarService_Update_VanishedBeforeWrite(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "c1").Return(storedCar(fleet.CarStatusAvailable), nil)
	f.cars.On("Update", mock.Anything, mock.Anything).Return(false, nil)

	got, err := f.svc.Update(context.Background(), "c1", UpdateCarRequest{Make: "x"})
	assert.NoError(t, err)
	assert.Nil(t, got)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCarService_Delete(t *testing.T) {
	f := newFixture()
	f.cars.On("Remove", mock.Anything, "c1").Return(true, nil)
	f.cars.On("Remove", mock.Anything, "nope").Return(false, nil)
	f.publisher.On("Publish", mock.Anything, eventTypes(t, fleet.EventTypeCarDelisted)).Return(nil).Once()

	removed, err := f.svc.Delete(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.svc.Delete(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, removed)

	f.publisher.AssertExpectations(t)
}

func TestCarService_Sell(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "c1").Return(storedCar(fleet.CarStatusAvailable), nil)
	f.cars.On("Update", mock.Anything, mock.MatchedBy(func(c *fleet.Car) bool {
		return c.IsSold() && c.BuyerID == "b2"
	})).Return(true, nil)
	f.publisher.On("Publish", mock.Anything, eventTypes(t, fleet.EventTypeCarSold)).Return(nil)

	got, err := f.svc.Sell(context.Background(), "c1", SellCarRequest{BuyerID: "b2"})
	require.NoError(t, err)
	assert.Equal(t, "Sold", got.Status)
	assert.Equal(t, "b2", got.BuyerID)
	assert.Equal(t, "2024-05-17", got.SoldDate)
}

func TestCarService_Sell_LocalClockRecordsUTCDate(t *testing.T) {
	f := newFixture()
	f.svc = NewCarService(f.cars, f.sellers, f.buyers,
		WithEventPublisher(f.publisher),
		WithClock(func() time.Time {
			return time.Date(2024, 5, 15, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
		}),
	)
	f.cars.On("FindByID", mock.Anything, "c1").Return(storedCar(fleet.CarStatusAvailable), nil)
	f.cars.On("Update", mock.Anything, mock.Anything).Return(true, nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	got, err := f.svc.Sell(context.Background(), "c1", SellCarRequest{BuyerID: "b2"})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-16", got.SoldDate)
}

func TestCarService_Sell_MissingCar(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "nope").Return(nil, shared.ErrNotFound)

	got, err := f.svc.Sell(context.Background(), "nope", SellCarRequest{BuyerID: "b2"})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCarService_Sell_RepositoryError(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "c1").Return(nil, errors.New("boom"))

	_, err := f.svc.Sell(context.Background(), "c1", SellCarRequest{BuyerID: "b2"})
	assert.EqualError(t, err, "boom")
}

func TestCarService_Sell_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "c1").Return(storedCar(fleet.CarStatusAvailable), nil)
	f.cars.On("Update", mock.Anything, mock.Anything).Return(true, nil)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down"))

	got, err := f.svc.Sell(context.Background(), "c1", SellCarRequest{BuyerID: "b2"})
	require.NoError(t, err)
	assert.Equal(t, "Sold", got.Status)
}

func TestCarService_UpdateDescription(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "c1").Return(storedCar(fleet.CarStatusAvailable), nil)
	f.cars.On("FindByID", mock.Anything, "nope").Return(nil, shared.ErrNotFound)
	f.cars.On("Update", mock.Anything, mock.Anything).Return(true, nil)
	f.publisher.On("Publish", mock.Anything, eventTypes(t, fleet.EventTypeCarDescriptionUpdated)).Return(nil)

	got, err := f.svc.UpdateDescription(context.Background(), "c1", "Pure elegance.")
	require.NoError(t, err)
	assert.Equal(t, "Pure elegance.", got.Description)

	got, err = f.svc.UpdateDescription(context.Background(), "nope", "x")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCarService_SaleCandidates(t *testing.T) {
	f := newFixture()
	f.cars.On("FindByID", mock.Anything, "c1").Return(storedCar(fleet.CarStatusAvailable), nil)
	f.buyers.On("FindAll", mock.Anything).Return([]partner.Buyer{
		*partner.RestoreBuyer("b1", partner.BuyerDetails{Name: "Rich", Budget: decimal.NewFromInt(2000000), Preferences: []string{"Ferrari"}}),
		*partner.RestoreBuyer("b2", partner.BuyerDetails{Name: "Modest", Budget: decimal.NewFromInt(100000)}),
	}, nil)

	got, err := f.svc.SaleCandidates(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].CanAfford)
	assert.True(t, got[0].PrefersMake)
	assert.False(t, got[1].CanAfford)
	assert.False(t, got[1].PrefersMake)
}

func TestCarService_WithMemoryRepositories(t *testing.T) {
	ctx := context.Background()
	cars := persistence.NewMemoryCarRepository()
	sellers := persistence.NewMemorySellerRepository()
	buyers := persistence.NewMemoryBuyerRepository()
	require.NoError(t, persistence.Seed(ctx, cars, sellers, buyers))

	svc := NewCarService(cars, sellers, buyers, WithClock(func() time.Time { return fixedNow }))

	before, err := svc.List(ctx, CarListFilter{})
	require.NoError(t, err)

	got, err := svc.Sell(ctx, "does-not-exist", SellCarRequest{BuyerID: "b1"})
	require.NoError(t, err)
	assert.Nil(t, got)

	after, err := svc.List(ctx, CarListFilter{})
	require.NoError(t, err)
	assert.Equal(t, before, after)

	available, err := svc.List(ctx, CarListFilter{Status: "Available"})
	require.NoError(t, err)
	require.NotEmpty(t, available)

	sold, err := svc.Sell(ctx, available[0].ID, SellCarRequest{BuyerID: "b1"})
	require.NoError(t, err)
	assert.Equal(t, "Sold", sold.Status)
	assert.Equal(t, "2024-05-17", sold.SoldDate)

	detail, err := svc.GetByID(ctx, available[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, UnknownName, detail.BuyerName)
}
