package search

import (
	"testing"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ptrFloat(v float64) *float64 { return &v }

func ptrTime(v time.Time) *time.Time { return &v }

func sampleFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID:             1,
			DepartureCity:  "Paris",
			ArrivalCity:    "Nice",
			DepartureTime:  time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC),
			AvailableSeats: 6,
			BookedSeats:    2,
			PricePerSeat:   ptrFloat(450),
			TotalPrice:     ptrFloat(2400),
		},
		{
			ID:             2,
			DepartureCity:  "Paris",
			ArrivalCity:    "Cannes",
			DepartureTime:  time.Date(2026, 6, 15, 14, 0, 0, 0, time.UTC),
			AvailableSeats: 4,
			BookedSeats:    3,
			PricePerSeat:   ptrFloat(900),
			TotalPrice:     ptrFloat(3200),
		},
		{
			ID:             3,
			DepartureCity:  "Monaco",
			ArrivalCity:    "Saint-Tropez",
			DepartureTime:  time.Date(2026, 6, 16, 11, 0, 0, 0, time.UTC),
			AvailableSeats: 5,
		},
	}
}

func TestApply_NoConstraints(t *testing.T) {
	flights := sampleFlights()

	out := Apply(flights, Filter{Passengers: 1})

	assert.Len(t, out, 3)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(3), out[2].ID)
}

func TestApply_CityMatchIsCaseInsensitiveSubstring(t *testing.T) {
	flights := sampleFlights()

	out := Apply(flights, Filter{DepartureCity: "paris", Passengers: 1})
	assert.Len(t, out, 2)

	out = Apply(flights, Filter{ArrivalCity: "TROPEZ", Passengers: 1})
	assert.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].ID)
}

func TestApply_DateComparesCalendarDayOnly(t *testing.T) {
	flights := sampleFlights()

	date := time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)
	out := Apply(flights, Filter{Date: ptrTime(date), Passengers: 1})

	assert.Len(t, out, 2)
	for _, f := range out {
		assert.Equal(t, 15, f.DepartureTime.Day())
	}
}

func TestApply_PassengersAgainstSeatsLeft(t *testing.T) {
	flights := sampleFlights()

	// flight 2 has 4 available minus 3 booked, one seat left
	out := Apply(flights, Filter{Passengers: 2})

	assert.Len(t, out, 2)
	for _, f := range out {
		assert.NotEqual(t, int64(2), f.ID)
	}
}

func TestApply_MaxPricePassesWhenEitherPriceFits(t *testing.T) {
	flights := sampleFlights()

	// flight 1 per-seat 450 fits under 500 even though total 2400 does not
	out := Apply(flights, Filter{Passengers: 1, MaxPrice: ptrFloat(500)})

	assert.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(3), out[1].ID)
}

func TestApply_UnpricedFlightSurvivesPriceFilter(t *testing.T) {
	flights := sampleFlights()

	out := Apply(flights, Filter{Passengers: 1, MaxPrice: ptrFloat(1)})

	assert.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].ID)
}

func TestApply_ConstraintsAreConjunctive(t *testing.T) {
	flights := sampleFlights()

	date := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	out := Apply(flights, Filter{
		DepartureCity: "Paris",
		ArrivalCity:   "Nice",
		Date:          ptrTime(date),
		Passengers:    2,
		MaxPrice:      ptrFloat(500),
	})

	assert.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestApply_IsIdempotent(t *testing.T) {
	flights := sampleFlights()
	filter := Filter{DepartureCity: "Paris", Passengers: 1}

	once := Apply(flights, filter)
	twice := Apply(once, filter)

	assert.Equal(t, once, twice)
}

func TestApply_PreservesInputOrder(t *testing.T) {
	flights := sampleFlights()

	out := Apply(flights, Filter{Passengers: 1})

	for i := 1; i < len(out); i++ {
		assert.Less(t, out[i-1].ID, out[i].ID)
	}
}
