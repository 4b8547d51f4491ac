package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/kafka"
	"github.com/heliconnect/client-api/internal/metrics"
	"github.com/heliconnect/client-api/internal/repository"
)

// ErrNotCancellable rejects cancellation once a booking is paid or in a
// terminal state; those go through the back office.
var ErrNotCancellable = errors.New("booking can no longer be cancelled")

// CancellationReason is the fixed reason recorded for client-side
// cancellations.
const CancellationReason = "Cancelled by user"

type BookingUseCase interface {
	List(ctx context.Context, userID int64) (*PartitionedBookings, error)
	GetByID(ctx context.Context, userID, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, user *domain.Profile, id int64) (*domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	notificationsTopic string
	now                func() time.Time
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, notificationsTopic string) *BookingService {
	return &BookingService{bookings: bookings, producer: producer, notificationsTopic: notificationsTopic, now: time.Now}
}

type PartitionedBookings struct {
	Upcoming []domain.Booking
	Past     []domain.Booking
}

func (s *BookingService) List(ctx context.Context, userID int64) (*PartitionedBookings, error) {
	list, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Partition(list, s.now()), nil
}

// Partition splits bookings into upcoming and past. Upcoming needs BOTH
// a live status and a strictly-future departure: a confirmed booking
// whose flight already left belongs to the past, and a booking with no
// joined flight can never be upcoming.
func Partition(list []domain.Booking, now time.Time) *PartitionedBookings {
	p := &PartitionedBookings{
		Upcoming: make([]domain.Booking, 0, len(list)),
		Past:     make([]domain.Booking, 0, len(list)),
	}
	for _, b := range list {
		if liveStatus(b.Status) && b.Flight != nil && b.Flight.DepartureTime.After(now) {
			p.Upcoming = append(p.Upcoming, b)
		} else {
			p.Past = append(p.Past, b)
		}
	}
	return p
}

func liveStatus(status domain.BookingStatus) bool {
	switch status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusPaid:
		return true
	}
	return false
}

func (s *BookingService) GetByID(ctx context.Context, userID, id int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, userID, id)
}

func (s *BookingService) Cancel(ctx context.Context, user *domain.Profile, id int64) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}
	if !current.IsCancellable() {
		return nil, ErrNotCancellable
	}

	updated, err := s.bookings.Cancel(ctx, user.ID, id, s.now(), CancellationReason)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, user, "cancelled", updated)
	return updated, nil
}

func (s *BookingService) publish(ctx context.Context, user *domain.Profile, action string, booking *domain.Booking) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	payload, _ := json.Marshal(booking)
	event := kafka.NotificationEvent{
		Entity:   "booking",
		Action:   action,
		UserID:   user.ID,
		Email:    user.Email,
		Language: string(user.PreferredLanguage),
		Payload:  payload,
		At:       time.Now(),
	}
	if err := s.producer.Publish(ctx, s.notificationsTopic, strconv.FormatInt(user.ID, 10), event); err != nil {
		log.Printf("WARNING: failed to publish booking %s event for booking %s: %v", action, booking.Reference, err)
		return
	}
	metrics.NotificationsTotal.WithLabelValues("booking", action).Inc()
}

var _ BookingUseCase = (*BookingService)(nil)
