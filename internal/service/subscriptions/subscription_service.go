package subscriptions

import (
	"context"
	"errors"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/repository"
)

type SubscriptionUseCase interface {
	Current(ctx context.Context, userID int64) (*domain.Subscription, error)
	Cancel(ctx context.Context, userID int64) (*domain.Subscription, error)
}

type SubscriptionService struct {
	subscriptions repository.SubscriptionRepository
}

func NewSubscriptionService(subscriptions repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions}
}

// Current returns the subscription to render, or nil when the user has
// none worth showing: never subscribed, or the latest record expired.
// The plan catalog is shown in that case.
func (s *SubscriptionService) Current(ctx context.Context, userID int64) (*domain.Subscription, error) {
	latest, err := s.subscriptions.GetLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !latest.IsCurrent() {
		return nil, nil
	}
	return latest, nil
}

// Cancel only flags cancel_at_period_end; access survives until the
// billing period closes and expiry is enforced externally.
func (s *SubscriptionService) Cancel(ctx context.Context, userID int64) (*domain.Subscription, error) {
	current, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, repository.ErrNotFound
	}
	return s.subscriptions.SetCancelAtPeriodEnd(ctx, userID, current.ID)
}

var _ SubscriptionUseCase = (*SubscriptionService)(nil)
