package search

import (
	"context"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, filter Filter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
	now   func() time.Time
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache) *FlightService {
	return &FlightService{repo: repo, cache: cache, now: time.Now}
}

// Search fetches the visible-flights snapshot (cache-aside) and applies
// the filter in memory. The snapshot is small, tens to low hundreds of
// rows, and already ordered by departure.
func (s *FlightService) Search(ctx context.Context, filter Filter) ([]domain.Flight, error) {
	flights, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(flights, filter), nil
}

func (s *FlightService) snapshot(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.ListVisible(ctx, s.now())
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
