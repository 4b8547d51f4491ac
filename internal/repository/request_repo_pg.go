package repository

import (
	"context"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.FlightRequest, error)
	GetByID(ctx context.Context, userID, id int64) (*domain.FlightRequest, error)
	Create(ctx context.Context, req *domain.FlightRequest) error
	Update(ctx context.Context, req *domain.FlightRequest) error
	UpdateStatus(ctx context.Context, userID, id int64, status domain.FlightRequestStatus) (*domain.FlightRequest, error)
	Delete(ctx context.Context, userID, id int64) error
	ExpireActiveBefore(ctx context.Context, deadline time.Time) ([]domain.FlightRequest, error)
}

type PGRequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) RequestRepository {
	return &PGRequestRepository{db: db}
}

const requestColumns = `id, user_id, departure_city, arrival_city, preferred_date, date_flexibility_days,
	preferred_time_slot, passengers_count, max_budget, currency, notes, status,
	is_visible_to_companies, expires_at, created_at, updated_at`

func (r *PGRequestRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FlightRequest, error) {
	rows, err := r.db.Query(ctx, `SELECT `+requestColumns+` FROM flight_requests
		WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]domain.FlightRequest, 0)
	for rows.Next() {
		var req domain.FlightRequest
		if err := scanRequest(rows.Scan, &req); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *PGRequestRepository) GetByID(ctx context.Context, userID, id int64) (*domain.FlightRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM flight_requests WHERE id=$1 AND user_id=$2`, id, userID)
	var req domain.FlightRequest
	if err := scanRequest(row.Scan, &req); err != nil {
		return nil, mapErr(err)
	}
	return &req, nil
}

func (r *PGRequestRepository) Create(ctx context.Context, req *domain.FlightRequest) error {
	return r.db.QueryRow(ctx, `INSERT INTO flight_requests
		(user_id, departure_city, arrival_city, preferred_date, date_flexibility_days, preferred_time_slot,
		 passengers_count, max_budget, currency, notes, status, is_visible_to_companies, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`,
		req.UserID, req.DepartureCity, req.ArrivalCity, req.PreferredDate, req.DateFlexibilityDays,
		req.PreferredTimeSlot, req.PassengersCount, req.MaxBudget, req.Currency, req.Notes,
		req.Status, req.IsVisibleToCompanies, req.ExpiresAt).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

// Update overwrites every writable column, expires_at included. The
// client has always reset the 30-day window on edit; see DESIGN.md.
func (r *PGRequestRepository) Update(ctx context.Context, req *domain.FlightRequest) error {
	row := r.db.QueryRow(ctx, `UPDATE flight_requests SET
		departure_city=$1, arrival_city=$2, preferred_date=$3, date_flexibility_days=$4,
		preferred_time_slot=$5, passengers_count=$6, max_budget=$7, currency=$8, notes=$9,
		status=$10, is_visible_to_companies=$11, expires_at=$12, updated_at=now()
		WHERE id=$13 AND user_id=$14
		RETURNING created_at, updated_at`,
		req.DepartureCity, req.ArrivalCity, req.PreferredDate, req.DateFlexibilityDays,
		req.PreferredTimeSlot, req.PassengersCount, req.MaxBudget, req.Currency, req.Notes,
		req.Status, req.IsVisibleToCompanies, req.ExpiresAt,
		req.ID, req.UserID)
	if err := row.Scan(&req.CreatedAt, &req.UpdatedAt); err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *PGRequestRepository) UpdateStatus(ctx context.Context, userID, id int64, status domain.FlightRequestStatus) (*domain.FlightRequest, error) {
	row := r.db.QueryRow(ctx, `UPDATE flight_requests SET status=$1, updated_at=now()
		WHERE id=$2 AND user_id=$3
		RETURNING `+requestColumns, status, id, userID)
	var req domain.FlightRequest
	if err := scanRequest(row.Scan, &req); err != nil {
		return nil, mapErr(err)
	}
	return &req, nil
}

func (r *PGRequestRepository) Delete(ctx context.Context, userID, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flight_requests WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ExpireActiveBefore flips active requests past their deadline to
// expired and returns them for notification.
func (r *PGRequestRepository) ExpireActiveBefore(ctx context.Context, deadline time.Time) ([]domain.FlightRequest, error) {
	rows, err := r.db.Query(ctx, `UPDATE flight_requests SET status=$1, updated_at=now()
		WHERE status=$2 AND expires_at <= $3
		RETURNING `+requestColumns, domain.RequestStatusExpired, domain.RequestStatusActive, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expired []domain.FlightRequest
	for rows.Next() {
		var req domain.FlightRequest
		if err := scanRequest(rows.Scan, &req); err != nil {
			return nil, err
		}
		expired = append(expired, req)
	}
	return expired, rows.Err()
}

func scanRequest(scan func(dest ...any) error, req *domain.FlightRequest) error {
	var notes *string
	if err := scan(&req.ID, &req.UserID, &req.DepartureCity, &req.ArrivalCity, &req.PreferredDate,
		&req.DateFlexibilityDays, &req.PreferredTimeSlot, &req.PassengersCount, &req.MaxBudget,
		&req.Currency, &notes, &req.Status, &req.IsVisibleToCompanies, &req.ExpiresAt,
		&req.CreatedAt, &req.UpdatedAt); err != nil {
		return err
	}
	if notes != nil {
		req.Notes = *notes
	}
	return nil
}

var _ RequestRepository = (*PGRequestRepository)(nil)
