package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusRefunded  BookingStatus = "refunded"
)

type Booking struct {
	ID                 int64
	UserID             int64
	FlightID           int64
	Reference          string
	Status             BookingStatus
	PassengersCount    int
	TotalPrice         float64
	ContactName        string
	ContactEmail       string
	ContactPhone       string
	CancelledAt        *time.Time
	CancellationReason string
	Flight             *Flight
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsCancellable reports whether the client may still cancel the booking.
// Paid bookings go through the refund flow handled by the back office.
func (b Booking) IsCancellable() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
