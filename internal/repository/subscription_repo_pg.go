package repository

import (
	"context"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository interface {
	GetLatestByUser(ctx context.Context, userID int64) (*domain.Subscription, error)
	SetCancelAtPeriodEnd(ctx context.Context, userID, id int64) (*domain.Subscription, error)
}

type PGSubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) SubscriptionRepository {
	return &PGSubscriptionRepository{db: db}
}

const subscriptionColumns = `id, user_id, plan_id, status, current_period_start, current_period_end,
	cancel_at_period_end, created_at, updated_at`

// GetLatestByUser returns the newest subscription record, ErrNotFound
// when the user never subscribed.
func (r *PGSubscriptionRepository) GetLatestByUser(ctx context.Context, userID int64) (*domain.Subscription, error) {
	row := r.db.QueryRow(ctx, `SELECT `+subscriptionColumns+` FROM subscriptions
		WHERE user_id=$1 ORDER BY created_at DESC LIMIT 1`, userID)
	var s domain.Subscription
	if err := scanSubscription(row.Scan, &s); err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

// SetCancelAtPeriodEnd flags the subscription without touching its
// status; expiry enforcement happens in the billing back office.
func (r *PGSubscriptionRepository) SetCancelAtPeriodEnd(ctx context.Context, userID, id int64) (*domain.Subscription, error) {
	row := r.db.QueryRow(ctx, `UPDATE subscriptions SET cancel_at_period_end=true, updated_at=now()
		WHERE id=$1 AND user_id=$2
		RETURNING `+subscriptionColumns, id, userID)
	var s domain.Subscription
	if err := scanSubscription(row.Scan, &s); err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

func scanSubscription(scan func(dest ...any) error, s *domain.Subscription) error {
	return scan(&s.ID, &s.UserID, &s.PlanID, &s.Status, &s.CurrentPeriodStart, &s.CurrentPeriodEnd,
		&s.CancelAtPeriodEnd, &s.CreatedAt, &s.UpdatedAt)
}

var _ SubscriptionRepository = (*PGSubscriptionRepository)(nil)
