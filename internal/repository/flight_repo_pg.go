package repository

import (
	"context"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	ListVisible(ctx context.Context, from time.Time) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `f.id, f.departure_city, f.arrival_city, f.departure_datetime, f.flight_duration_minutes,
	f.total_seats, f.available_seats, f.booked_seats, f.price_per_seat, f.total_price,
	f.status, f.is_visible_to_public, f.created_at, f.updated_at,
	c.name, c.logo_url, h.model, h.registration, h.passenger_capacity`

const flightJoins = `FROM flights f
	LEFT JOIN companies c ON c.id = f.company_id
	LEFT JOIN helicopters h ON h.id = f.helicopter_id`

// ListVisible returns the snapshot the client search page works on:
// future-dated, available, publicly visible, ascending by departure.
func (r *PGFlightRepository) ListVisible(ctx context.Context, from time.Time) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` `+flightJoins+`
		WHERE f.status = $1 AND f.is_visible_to_public AND f.departure_datetime >= $2
		ORDER BY f.departure_datetime`, domain.FlightStatusAvailable, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows.Scan)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` `+flightJoins+` WHERE f.id=$1`, id)
	f, err := scanFlight(row.Scan)
	if err != nil {
		return nil, mapErr(err)
	}
	return f, nil
}

func scanFlight(scan func(dest ...any) error) (*domain.Flight, error) {
	var (
		f                        domain.Flight
		companyName, companyLogo *string
		heliModel, heliReg       *string
		heliCapacity             *int
	)
	if err := scan(&f.ID, &f.DepartureCity, &f.ArrivalCity, &f.DepartureTime, &f.DurationMinutes,
		&f.TotalSeats, &f.AvailableSeats, &f.BookedSeats, &f.PricePerSeat, &f.TotalPrice,
		&f.Status, &f.IsVisibleToPublic, &f.CreatedAt, &f.UpdatedAt,
		&companyName, &companyLogo, &heliModel, &heliReg, &heliCapacity); err != nil {
		return nil, err
	}
	if companyName != nil {
		f.Company = &domain.Company{Name: *companyName}
		if companyLogo != nil {
			f.Company.LogoURL = *companyLogo
		}
	}
	if heliModel != nil {
		f.Helicopter = &domain.Helicopter{Model: *heliModel}
		if heliReg != nil {
			f.Helicopter.Registration = *heliReg
		}
		if heliCapacity != nil {
			f.Helicopter.PassengerCapacity = *heliCapacity
		}
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
