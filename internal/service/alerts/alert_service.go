package alerts

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/kafka"
	"github.com/heliconnect/client-api/internal/metrics"
	"github.com/heliconnect/client-api/internal/repository"
)

type AlertUseCase interface {
	List(ctx context.Context, userID int64) ([]domain.FlightAlert, error)
	Create(ctx context.Context, user *domain.Profile, input AlertInput) (*domain.FlightAlert, error)
	Update(ctx context.Context, user *domain.Profile, id int64, input AlertInput) (*domain.FlightAlert, error)
	Toggle(ctx context.Context, user *domain.Profile, id int64) (*domain.FlightAlert, error)
	Delete(ctx context.Context, user *domain.Profile, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type AlertService struct {
	alerts             repository.AlertRepository
	producer           Producer
	notificationsTopic string
}

func NewAlertService(alerts repository.AlertRepository, producer Producer, notificationsTopic string) *AlertService {
	return &AlertService{alerts: alerts, producer: producer, notificationsTopic: notificationsTopic}
}

// AlertInput is the saved-search form. No validation beyond type
// coercion: an all-empty alert is a legal "notify me about everything".
type AlertInput struct {
	DepartureCity string `json:"departure_city"`
	ArrivalCity   string `json:"arrival_city"`
	DateFrom      string `json:"date_from"`
	DateTo        string `json:"date_to"`
	MinSeats      int    `json:"min_seats"`
	MaxPrice      string `json:"max_price"`
	NotifyEmail   bool   `json:"notify_email"`
	NotifyPush    bool   `json:"notify_push"`
}

func (s *AlertService) List(ctx context.Context, userID int64) ([]domain.FlightAlert, error) {
	return s.alerts.ListByUser(ctx, userID)
}

func (s *AlertService) Create(ctx context.Context, user *domain.Profile, input AlertInput) (*domain.FlightAlert, error) {
	alert := input.toAlert(user.ID)
	alert.IsActive = true
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, err
	}
	s.publish(ctx, user, "created", alert)
	return alert, nil
}

// Update rewrites the filter payload; is_active is left as stored, the
// toggle is its own operation.
func (s *AlertService) Update(ctx context.Context, user *domain.Profile, id int64, input AlertInput) (*domain.FlightAlert, error) {
	alert := input.toAlert(user.ID)
	alert.ID = id
	if err := s.alerts.Update(ctx, alert); err != nil {
		return nil, err
	}
	s.publish(ctx, user, "updated", alert)
	return alert, nil
}

func (s *AlertService) Toggle(ctx context.Context, user *domain.Profile, id int64) (*domain.FlightAlert, error) {
	current, err := s.alerts.GetByID(ctx, user.ID, id)
	if err != nil {
		return nil, err
	}
	updated, err := s.alerts.SetActive(ctx, user.ID, id, !current.IsActive)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, user, "toggled", updated)
	return updated, nil
}

func (s *AlertService) Delete(ctx context.Context, user *domain.Profile, id int64) error {
	if err := s.alerts.Delete(ctx, user.ID, id); err != nil {
		return err
	}
	s.publish(ctx, user, "deleted", &domain.FlightAlert{ID: id, UserID: user.ID})
	return nil
}

func (i AlertInput) toAlert(userID int64) *domain.FlightAlert {
	alert := &domain.FlightAlert{
		UserID:      userID,
		MinSeats:    i.MinSeats,
		NotifyEmail: i.NotifyEmail,
		NotifyPush:  i.NotifyPush,
	}
	if i.DepartureCity != "" {
		alert.DepartureCity = &i.DepartureCity
	}
	if i.ArrivalCity != "" {
		alert.ArrivalCity = &i.ArrivalCity
	}
	if d, err := time.Parse("2006-01-02", i.DateFrom); err == nil {
		alert.DateFrom = &d
	}
	if d, err := time.Parse("2006-01-02", i.DateTo); err == nil {
		alert.DateTo = &d
	}
	if p, err := strconv.ParseFloat(i.MaxPrice, 64); err == nil {
		alert.MaxPrice = &p
	}
	if alert.MinSeats <= 0 {
		alert.MinSeats = 1
	}
	return alert
}

func (s *AlertService) publish(ctx context.Context, user *domain.Profile, action string, alert *domain.FlightAlert) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}
	payload, _ := json.Marshal(alert)
	event := kafka.NotificationEvent{
		Entity:   "flight_alert",
		Action:   action,
		UserID:   user.ID,
		Email:    user.Email,
		Language: string(user.PreferredLanguage),
		Payload:  payload,
		At:       time.Now(),
	}
	if err := s.producer.Publish(ctx, s.notificationsTopic, strconv.FormatInt(user.ID, 10), event); err != nil {
		log.Printf("WARNING: failed to publish alert %s event for user %d: %v", action, user.ID, err)
		return
	}
	metrics.NotificationsTotal.WithLabelValues("flight_alert", action).Inc()
}

var _ AlertUseCase = (*AlertService)(nil)
