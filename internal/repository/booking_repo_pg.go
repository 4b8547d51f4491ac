package repository

import (
	"context"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	GetByID(ctx context.Context, userID, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, userID, id int64, at time.Time, reason string) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `b.id, b.user_id, b.flight_id, b.booking_reference, b.status, b.passengers_count,
	b.total_price, b.contact_name, b.contact_email, b.contact_phone,
	b.cancelled_at, b.cancellation_reason, b.created_at, b.updated_at`

// ListByUser returns the user's bookings newest first, with the joined
// flight so the view can partition them by departure time.
func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+`, `+flightColumns+`
		FROM bookings b
		LEFT JOIN flights f ON f.id = b.flight_id
		LEFT JOIN companies c ON c.id = f.company_id
		LEFT JOIN helicopters h ON h.id = f.helicopter_id
		WHERE b.user_id=$1
		ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBookingWithFlight(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+`, `+flightColumns+`
		FROM bookings b
		LEFT JOIN flights f ON f.id = b.flight_id
		LEFT JOIN companies c ON c.id = f.company_id
		LEFT JOIN helicopters h ON h.id = f.helicopter_id
		WHERE b.id=$1 AND b.user_id=$2`, id, userID)
	b, err := scanBookingWithFlight(row.Scan)
	if err != nil {
		return nil, mapErr(err)
	}
	return b, nil
}

func (r *PGBookingRepository) Cancel(ctx context.Context, userID, id int64, at time.Time, reason string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, cancelled_at=$2, cancellation_reason=$3, updated_at=now()
		WHERE id=$4 AND user_id=$5
		RETURNING `+bookingColumnsBare, domain.BookingStatusCancelled, at, reason, id, userID)
	b, err := scanBooking(row.Scan)
	if err != nil {
		return nil, mapErr(err)
	}
	return b, nil
}

const bookingColumnsBare = `id, user_id, flight_id, booking_reference, status, passengers_count,
	total_price, contact_name, contact_email, contact_phone,
	cancelled_at, cancellation_reason, created_at, updated_at`

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var (
		b      domain.Booking
		reason *string
	)
	if err := scan(&b.ID, &b.UserID, &b.FlightID, &b.Reference, &b.Status, &b.PassengersCount,
		&b.TotalPrice, &b.ContactName, &b.ContactEmail, &b.ContactPhone,
		&b.CancelledAt, &reason, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if reason != nil {
		b.CancellationReason = *reason
	}
	return &b, nil
}

func scanBookingWithFlight(scan func(dest ...any) error) (*domain.Booking, error) {
	var (
		b                        domain.Booking
		reason                   *string
		flightID                 *int64
		depCity, arrCity         *string
		departure                *time.Time
		duration                 *int
		totalSeats               *int
		availableSeats           *int
		bookedSeats              *int
		pricePerSeat, totalPrice *float64
		status                   *string
		visible                  *bool
		fCreated, fUpdated       *time.Time
		companyName, companyLogo *string
		heliModel, heliReg       *string
		heliCapacity             *int
	)
	if err := scan(&b.ID, &b.UserID, &b.FlightID, &b.Reference, &b.Status, &b.PassengersCount,
		&b.TotalPrice, &b.ContactName, &b.ContactEmail, &b.ContactPhone,
		&b.CancelledAt, &reason, &b.CreatedAt, &b.UpdatedAt,
		&flightID, &depCity, &arrCity, &departure, &duration,
		&totalSeats, &availableSeats, &bookedSeats, &pricePerSeat, &totalPrice,
		&status, &visible, &fCreated, &fUpdated,
		&companyName, &companyLogo, &heliModel, &heliReg, &heliCapacity); err != nil {
		return nil, err
	}
	if reason != nil {
		b.CancellationReason = *reason
	}
	if flightID != nil {
		f := domain.Flight{
			ID:           *flightID,
			PricePerSeat: pricePerSeat,
			TotalPrice:   totalPrice,
		}
		if depCity != nil {
			f.DepartureCity = *depCity
		}
		if arrCity != nil {
			f.ArrivalCity = *arrCity
		}
		if departure != nil {
			f.DepartureTime = *departure
		}
		if duration != nil {
			f.DurationMinutes = *duration
		}
		if totalSeats != nil {
			f.TotalSeats = *totalSeats
		}
		if availableSeats != nil {
			f.AvailableSeats = *availableSeats
		}
		if bookedSeats != nil {
			f.BookedSeats = *bookedSeats
		}
		if status != nil {
			f.Status = domain.FlightStatus(*status)
		}
		if visible != nil {
			f.IsVisibleToPublic = *visible
		}
		if fCreated != nil {
			f.CreatedAt = *fCreated
		}
		if fUpdated != nil {
			f.UpdatedAt = *fUpdated
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
		b.Flight = &f
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
