package domain

import "time"

type FlightRequestStatus string

const (
	RequestStatusActive    FlightRequestStatus = "active"
	RequestStatusFulfilled FlightRequestStatus = "fulfilled"
	RequestStatusCancelled FlightRequestStatus = "cancelled"
	RequestStatusExpired   FlightRequestStatus = "expired"
)

// RequestTTL is how long a flight request stays visible to operators.
const RequestTTL = 30 * 24 * time.Hour

type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotEvening   TimeSlot = "evening"
)

type FlightRequest struct {
	ID                   int64
	UserID               int64
	DepartureCity        string
	ArrivalCity          string
	PreferredDate        time.Time
	DateFlexibilityDays  int
	PreferredTimeSlot    *TimeSlot
	PassengersCount      int
	MaxBudget            *float64
	Currency             string
	Notes                string
	Status               FlightRequestStatus
	IsVisibleToCompanies bool
	ExpiresAt            time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsDeletable reports whether the request reached a terminal state.
// Active and fulfilled requests are kept for the operators' benefit.
func (r FlightRequest) IsDeletable() bool {
	return r.Status == RequestStatusCancelled || r.Status == RequestStatusExpired
}
