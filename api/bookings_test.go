package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/auth"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/service/bookings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) List(ctx context.Context, userID int64) (*bookings.PartitionedBookings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.PartitionedBookings), args.Error(1)
}

func (m *MockBookingUseCase) GetByID(ctx context.Context, userID, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) Cancel(ctx context.Context, user *domain.Profile, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, user, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func testClientContext(w *httptest.ResponseRecorder) (*gin.Context, *domain.Profile) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	profile := &domain.Profile{ID: 42, Role: domain.RoleClient, PreferredLanguage: domain.LanguageFR}
	auth.SetProfile(c, profile)
	return c, profile
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := testClientContext(w)
	c.Request = httptest.NewRequest("GET", "/bookings", nil)

	departure := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	partitioned := &bookings.PartitionedBookings{
		Upcoming: []domain.Booking{
			{ID: 1, Reference: "HLC-001", Status: domain.BookingStatusConfirmed, Flight: &domain.Flight{ID: 5, DepartureTime: departure}},
		},
		Past: []domain.Booking{
			{ID: 2, Reference: "HLC-002", Status: domain.BookingStatusCancelled},
		},
	}
	mockService.On("List", c.Request.Context(), int64(42)).Return(partitioned, nil).Once()

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Upcoming []bookingResponse `json:"upcoming"`
		Past     []bookingResponse `json:"past"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Upcoming, 1)
	assert.Len(t, body.Past, 1)
	assert.Equal(t, "HLC-001", body.Upcoming[0].Reference)
	assert.NotNil(t, body.Upcoming[0].Flight)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_get(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c, _ := testClientContext(w)
	c.Params = gin.Params{{Key: "id", Value: "9"}}
	c.Request = httptest.NewRequest("GET", "/bookings/9", nil)

	booking := &domain.Booking{ID: 9, Reference: "HLC-009", Status: domain.BookingStatusPaid}
	mockService.On("GetByID", c.Request.Context(), int64(42), int64(9)).Return(booking, nil).Once()

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "HLC-009")
	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c, profile := testClientContext(w)
	c.Params = gin.Params{{Key: "id", Value: "9"}}
	c.Request = httptest.NewRequest("POST", "/bookings/9/cancel", nil)

	cancelled := &domain.Booking{ID: 9, Status: domain.BookingStatusCancelled, CancellationReason: "Cancelled by user"}
	mockService.On("Cancel", c.Request.Context(), profile, int64(9)).Return(cancelled, nil).Once()

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")
	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel_NotCancellable(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	w := httptest.NewRecorder()
	c, profile := testClientContext(w)
	c.Params = gin.Params{{Key: "id", Value: "9"}}
	c.Request = httptest.NewRequest("POST", "/bookings/9/cancel", nil)

	mockService.On("Cancel", c.Request.Context(), profile, int64(9)).Return(nil, bookings.ErrNotCancellable).Once()

	handler.cancel(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_NotImplemented(t *testing.T) {
	handler := NewBookingHandler(&MockBookingUseCase{})

	w := httptest.NewRecorder()
	c, _ := testClientContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", nil)

	handler.create(c)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Contains(t, w.Body.String(), "bientôt")
}
