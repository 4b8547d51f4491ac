package domain

import "time"

type FlightStatus string

const (
	FlightStatusAvailable FlightStatus = "available"
	FlightStatusBooked    FlightStatus = "booked"
)

type Company struct {
	Name    string
	LogoURL string
}

type Helicopter struct {
	Model             string
	Registration      string
	PassengerCapacity int
}

type Flight struct {
	ID                int64
	DepartureCity     string
	ArrivalCity       string
	DepartureTime     time.Time
	DurationMinutes   int
	TotalSeats        int
	AvailableSeats    int
	BookedSeats       int
	PricePerSeat      *float64
	TotalPrice        *float64
	Status            FlightStatus
	IsVisibleToPublic bool
	Company           *Company
	Helicopter        *Helicopter
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SeatsLeft is the number of seats still bookable on the flight.
func (f Flight) SeatsLeft() int {
	return f.AvailableSeats - f.BookedSeats
}
