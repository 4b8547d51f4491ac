package domain

import "time"

// FlightAlert is a saved search; matching is done by the external
// notification pipeline, the client only manages the records.
type FlightAlert struct {
	ID            int64
	UserID        int64
	DepartureCity *string
	ArrivalCity   *string
	DateFrom      *time.Time
	DateTo        *time.Time
	MinSeats      int
	MaxPrice      *float64
	IsActive      bool
	NotifyEmail   bool
	NotifyPush    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
