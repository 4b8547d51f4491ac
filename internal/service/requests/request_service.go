package requests

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

var (
	// ErrMissingFields blocks submission before any store round-trip.
	ErrMissingFields = errors.New("departure, arrival and preferred date are required")
	// ErrNotDeletable rejects deletion outside terminal states.
	ErrNotDeletable = errors.New("request is not cancelled or expired")
)

type RequestUseCase interface {
	List(ctx context.Context, userID int64) ([]domain.FlightRequest, error)
	Create(ctx context.Context, user *domain.Profile, input RequestInput) (*domain.FlightRequest, error)
	Update(ctx context.Context, user *domain.Profile, id int64, input RequestInput) (*domain.FlightRequest, error)
	Cancel(ctx context.Context, user *domain.Profile, id int64) (*domain.FlightRequest, error)
	Delete(ctx context.Context, user *domain.Profile, id int64) error
	ExpireOverdue(ctx context.Context) ([]domain.FlightRequest, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type RequestService struct {
	requests           repository.RequestRepository
	producer           Producer
	notificationsTopic string
	now                func() time.Time
}

func NewRequestService(requests repository.RequestRepository, producer Producer, notificationsTopic string) *RequestService {
	return &RequestService{requests: requests, producer: producer, notificationsTopic: notificationsTopic, now: time.Now}
}

type RequestInput struct {
	DepartureCity       string `json:"departure_city"`
	ArrivalCity         string `json:"arrival_city"`
	PreferredDate       string `json:"preferred_date"`
	DateFlexibilityDays int    `json:"date_flexibility_days"`
	PreferredTimeSlot   string `json:"preferred_time_slot"`
	PassengersCount     int    `json:"passengers_count"`
	MaxBudget           string `json:"max_budget"`
	Notes               string `json:"notes"`
}

func (s *RequestService) List(ctx context.Context, userID int64) ([]domain.FlightRequest, error) {
	return s.requests.ListByUser(ctx, userID)
}

func (s *RequestService) Create(ctx context.Context, user *domain.Profile, input RequestInput) (*domain.FlightRequest, error) {
	req, err := s.build(user.ID, input)
	if err != nil {
		return nil, err
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	s.publish(ctx, user, "created", req)
	return req, nil
}

// Update overwrites every field, expiry included: editing a request
// restarts its 30-day window from the edit time. Longstanding client
// behavior, kept deliberately (DESIGN.md).
func (s *RequestService) Update(ctx context.Context, user *domain.Profile, id int64, input RequestInput) (*domain.FlightRequest, error) {
	req, err := s.build(user.ID, input)
	if err != nil {
		return nil, err
	}
	req.ID = id
	if err := s.requests.Update(ctx, req); err != nil {
		return nil, err
	}
	s.publish(ctx, user, "updated", req)
	return req, nil
}

// Cancel is non-destructive; the record stays around until the user
// deletes it from a terminal state.
func (s *RequestService) Cancel(ctx context.Context, user *domain.Profile, id int64) (*domain.FlightRequest, error) {
	req, err := s.requests.UpdateStatus(ctx, user.ID, id, domain.RequestStatusCancelled)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, user, "cancelled", req)
	return req, nil
}

func (s *RequestService) Delete(ctx context.Context, user *domain.Profile, id int64) error {
	current, err := s.requests.GetByID(ctx, user.ID, id)
	if err != nil {
		return err
	}
	if !current.IsDeletable() {
		return ErrNotDeletable
	}
	return s.requests.Delete(ctx, user.ID, id)
}

// ExpireOverdue is the worker sweep behind the externally-driven
// active -> expired transition.
func (s *RequestService) ExpireOverdue(ctx context.Context) ([]domain.FlightRequest, error) {
	expired, err := s.requests.ExpireActiveBefore(ctx, s.now())
	if err != nil {
		return nil, err
	}
	metrics.ExpiredRequestsTotal.Add(float64(len(expired)))
	return expired, nil
}

func (s *RequestService) build(userID int64, input RequestInput) (*domain.FlightRequest, error) {
	if input.DepartureCity == "" || input.ArrivalCity == "" || input.PreferredDate == "" {
		return nil, ErrMissingFields
	}
	preferred, err := time.Parse("2006-01-02", input.PreferredDate)
	if err != nil {
		return nil, ErrMissingFields
	}

	now := s.now()
	req := &domain.FlightRequest{
		UserID:               userID,
		DepartureCity:        input.DepartureCity,
		ArrivalCity:          input.ArrivalCity,
		PreferredDate:        preferred,
		DateFlexibilityDays:  input.DateFlexibilityDays,
		PassengersCount:      input.PassengersCount,
		Currency:             "EUR",
		Notes:                input.Notes,
		Status:               domain.RequestStatusActive,
		IsVisibleToCompanies: true,
		ExpiresAt:            now.Add(domain.RequestTTL),
	}
	if req.PassengersCount <= 0 {
		req.PassengersCount = 1
	}
	if slot := domain.TimeSlot(input.PreferredTimeSlot); slot == domain.TimeSlotMorning ||
		slot == domain.TimeSlotAfternoon || slot == domain.TimeSlotEvening {
		req.PreferredTimeSlot = &slot
	}
	if b, err := strconv.ParseFloat(input.MaxBudget, 64); err == nil {
		req.MaxBudget = &b
	}
	return req, nil
}

func (s *RequestService) publish(ctx context.Context, user *domain.Profile, action string, req *domain.FlightRequest) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	payload, _ := json.Marshal(req)
	event := kafka.NotificationEvent{
		Entity:   "flight_request",
		Action:   action,
		UserID:   user.ID,
		Email:    user.Email,
		Language: string(user.PreferredLanguage),
		Payload:  payload,
		At:       time.Now(),
	}
	if err := s.producer.Publish(ctx, s.notificationsTopic, strconv.FormatInt(user.ID, 10), event); err != nil {
		log.Printf("WARNING: failed to publish request %s event for user %d: %v", action, user.ID, err)
		return
	}
	metrics.NotificationsTotal.WithLabelValues("flight_request", action).Inc()
}

var _ RequestUseCase = (*RequestService)(nil)
