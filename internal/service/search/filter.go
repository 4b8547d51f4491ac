package search

import (
	"strings"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
)

// Filter is the search form. Zero values mean "no constraint" except
// Passengers, which the form always submits (minimum 1).
type Filter struct {
	DepartureCity string
	ArrivalCity   string
	Date          *time.Time
	Passengers    int
	MaxPrice      *float64
}

// Apply narrows flights conjunctively: a flight survives only if it
// satisfies every non-empty predicate. Order is preserved. Pure
// function; the caller owns recomputation.
//
// City matching is case-insensitive substring containment. The date
// predicate compares calendar day only. The price predicate passes when
// either the per-seat or the total price is within the ceiling, and a
// missing price counts as zero — so an unpriced flight is never
// excluded by a price filter. That mirrors the historical client
// behavior; see DESIGN.md before "fixing" it.
func Apply(flights []domain.Flight, f Filter) []domain.Flight {
	out := make([]domain.Flight, 0, len(flights))
	for _, flight := range flights {
		if matches(flight, f) {
			out = append(out, flight)
		}
	}
	return out
}

func matches(flight domain.Flight, f Filter) bool {
	if f.DepartureCity != "" && !containsFold(flight.DepartureCity, f.DepartureCity) {
		return false
	}
	if f.ArrivalCity != "" && !containsFold(flight.ArrivalCity, f.ArrivalCity) {
		return false
	}
	if f.Date != nil && !sameDay(flight.DepartureTime, *f.Date) {
		return false
	}
	if f.Passengers > 0 && flight.SeatsLeft() < f.Passengers {
		return false
	}
	if f.MaxPrice != nil {
		perSeat := priceOrZero(flight.PricePerSeat)
		total := priceOrZero(flight.TotalPrice)
		if perSeat > *f.MaxPrice && total > *f.MaxPrice {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func priceOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
