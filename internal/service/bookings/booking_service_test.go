package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, userID, id int64, at time.Time, reason string) (*domain.Booking, error) {
	args := m.Called(ctx, userID, id, at, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func flightAt(departure time.Time) *domain.Flight {
	return &domain.Flight{ID: 1, DepartureCity: "Paris", ArrivalCity: "Nice", DepartureTime: departure}
}

func TestPartition(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-48 * time.Hour)

	list := []domain.Booking{
		{ID: 1, Status: domain.BookingStatusConfirmed, Flight: flightAt(future)},
		{ID: 2, Status: domain.BookingStatusConfirmed, Flight: flightAt(past)},
		{ID: 3, Status: domain.BookingStatusCancelled, Flight: flightAt(future)},
		{ID: 4, Status: domain.BookingStatusPaid, Flight: flightAt(future)},
		{ID: 5, Status: domain.BookingStatusPending, Flight: nil},
		{ID: 6, Status: domain.BookingStatusCompleted, Flight: flightAt(past)},
	}

	p := Partition(list, now)

	upcomingIDs := make([]int64, 0, len(p.Upcoming))
	for _, b := range p.Upcoming {
		upcomingIDs = append(upcomingIDs, b.ID)
	}
	pastIDs := make([]int64, 0, len(p.Past))
	for _, b := range p.Past {
		pastIDs = append(pastIDs, b.ID)
	}

	assert.Equal(t, []int64{1, 4}, upcomingIDs)
	assert.Equal(t, []int64{2, 3, 5, 6}, pastIDs)
}

func TestPartition_DepartureExactlyNowIsPast(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	p := Partition([]domain.Booking{
		{ID: 1, Status: domain.BookingStatusConfirmed, Flight: flightAt(now)},
	}, now)

	assert.Empty(t, p.Upcoming)
	assert.Len(t, p.Past, 1)
}

func TestBookingService_List(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	service := &BookingService{bookings: mockRepo, now: func() time.Time { return now }}

	ctx := context.Background()
	list := []domain.Booking{
		{ID: 1, Status: domain.BookingStatusConfirmed, Flight: flightAt(now.Add(time.Hour))},
		{ID: 2, Status: domain.BookingStatusCancelled, Flight: flightAt(now.Add(time.Hour))},
	}
	mockRepo.On("ListByUser", ctx, int64(42)).Return(list, nil).Once()

	p, err := service.List(ctx, 42)

	assert.NoError(t, err)
	assert.Len(t, p.Upcoming, 1)
	assert.Len(t, p.Past, 1)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	service := &BookingService{
		bookings:           mockRepo,
		producer:           mockProducer,
		notificationsTopic: "notifications",
		now:                func() time.Time { return now },
	}

	ctx := context.Background()
	user := &domain.Profile{ID: 42, Email: "ops@acme.example", PreferredLanguage: domain.LanguageFR}
	current := &domain.Booking{ID: 9, UserID: 42, Status: domain.BookingStatusConfirmed}
	cancelled := &domain.Booking{ID: 9, UserID: 42, Status: domain.BookingStatusCancelled, CancellationReason: CancellationReason}

	mockRepo.On("GetByID", ctx, int64(42), int64(9)).Return(current, nil).Once()
	mockRepo.On("Cancel", ctx, int64(42), int64(9), now, CancellationReason).Return(cancelled, nil).Once()
	mockProducer.On("Publish", ctx, "notifications", "42", mock.Anything).Return(nil).Once()

	out, err := service.Cancel(ctx, user, 9)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, out.Status)
	assert.Equal(t, "Cancelled by user", out.CancellationReason)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_Cancel_RejectsPaidBooking(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := &BookingService{bookings: mockRepo, now: time.Now}

	ctx := context.Background()
	user := &domain.Profile{ID: 42}
	current := &domain.Booking{ID: 9, UserID: 42, Status: domain.BookingStatusPaid}
	mockRepo.On("GetByID", ctx, int64(42), int64(9)).Return(current, nil).Once()

	out, err := service.Cancel(ctx, user, 9)

	assert.ErrorIs(t, err, ErrNotCancellable)
	assert.Nil(t, out)
	mockRepo.AssertNotCalled(t, "Cancel")
}

func TestBookingService_Cancel_RejectsTerminalStates(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.BookingStatusCancelled,
		domain.BookingStatusCompleted,
		domain.BookingStatusRefunded,
	} {
		t.Run(string(status), func(t *testing.T) {
			mockRepo := &MockBookingRepository{}
			service := &BookingService{bookings: mockRepo, now: time.Now}

			ctx := context.Background()
			mockRepo.On("GetByID", ctx, int64(42), int64(9)).Return(&domain.Booking{ID: 9, Status: status}, nil).Once()

			_, err := service.Cancel(ctx, &domain.Profile{ID: 42}, 9)

			assert.ErrorIs(t, err, ErrNotCancellable)
		})
	}
}

func TestBookingService_Cancel_PublishFailureDoesNotFailCall(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	service := &BookingService{
		bookings:           mockRepo,
		producer:           mockProducer,
		notificationsTopic: "notifications",
		now:                func() time.Time { return now },
	}

	ctx := context.Background()
	user := &domain.Profile{ID: 42}
	current := &domain.Booking{ID: 9, Status: domain.BookingStatusPending}
	cancelled := &domain.Booking{ID: 9, Status: domain.BookingStatusCancelled}

	mockRepo.On("GetByID", ctx, int64(42), int64(9)).Return(current, nil).Once()
	mockRepo.On("Cancel", ctx, int64(42), int64(9), now, CancellationReason).Return(cancelled, nil).Once()
	mockProducer.On("Publish", ctx, "notifications", "42", mock.Anything).Return(assert.AnError).Once()

	out, err := service.Cancel(ctx, user, 9)

	assert.NoError(t, err)
	assert.NotNil(t, out)
}
