package search

import (
	"context"
	"testing"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) ListVisible(ctx context.Context, from time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, from)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func TestFlightService_Search_CacheHitSkipsRepository(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	service := &FlightService{repo: mockRepo, cache: mockCache, now: time.Now}

	ctx := context.Background()
	cached := sampleFlights()
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	out, err := service.Search(ctx, Filter{Passengers: 1})

	assert.NoError(t, err)
	assert.Len(t, out, 3)
	mockCache.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "ListVisible")
}

func TestFlightService_Search_CacheMissLoadsAndStores(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	service := &FlightService{repo: mockRepo, cache: mockCache, now: func() time.Time { return now }}

	ctx := context.Background()
	flights := sampleFlights()
	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockRepo.On("ListVisible", ctx, now).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	out, err := service.Search(ctx, Filter{DepartureCity: "Paris", Passengers: 1})

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_Search_CacheStoreFailureIsIgnored(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockFlightCache{}
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	service := &FlightService{repo: mockRepo, cache: mockCache, now: func() time.Time { return now }}

	ctx := context.Background()
	flights := sampleFlights()
	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockRepo.On("ListVisible", ctx, now).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(assert.AnError).Once()

	out, err := service.Search(ctx, Filter{Passengers: 1})

	assert.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestFlightService_GetByID(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := &FlightService{repo: mockRepo, now: time.Now}

	ctx := context.Background()
	flight := &domain.Flight{ID: 7, DepartureCity: "Nice", ArrivalCity: "Monaco"}
	mockRepo.On("GetByID", ctx, int64(7)).Return(flight, nil).Once()

	out, err := service.GetByID(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, flight, out)
	mockRepo.AssertExpectations(t)
}
