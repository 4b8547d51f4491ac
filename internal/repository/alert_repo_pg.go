package repository

import (
	"context"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.FlightAlert, error)
	GetByID(ctx context.Context, userID, id int64) (*domain.FlightAlert, error)
	Create(ctx context.Context, alert *domain.FlightAlert) error
	Update(ctx context.Context, alert *domain.FlightAlert) error
	SetActive(ctx context.Context, userID, id int64, active bool) (*domain.FlightAlert, error)
	Delete(ctx context.Context, userID, id int64) error
}

type PGAlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) AlertRepository {
	return &PGAlertRepository{db: db}
}

const alertColumns = `id, user_id, departure_city, arrival_city, date_from, date_to,
	min_seats, max_price, is_active, notify_email, notify_push, created_at, updated_at`

func (r *PGAlertRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FlightAlert, error) {
	rows, err := r.db.Query(ctx, `SELECT `+alertColumns+` FROM flight_alerts
		WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]domain.FlightAlert, 0)
	for rows.Next() {
		var a domain.FlightAlert
		if err := scanAlert(rows.Scan, &a); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *PGAlertRepository) GetByID(ctx context.Context, userID, id int64) (*domain.FlightAlert, error) {
	row := r.db.QueryRow(ctx, `SELECT `+alertColumns+` FROM flight_alerts WHERE id=$1 AND user_id=$2`, id, userID)
	var a domain.FlightAlert
	if err := scanAlert(row.Scan, &a); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *PGAlertRepository) Create(ctx context.Context, alert *domain.FlightAlert) error {
	return r.db.QueryRow(ctx, `INSERT INTO flight_alerts
		(user_id, departure_city, arrival_city, date_from, date_to, min_seats, max_price, is_active, notify_email, notify_push)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		alert.UserID, alert.DepartureCity, alert.ArrivalCity, alert.DateFrom, alert.DateTo,
		alert.MinSeats, alert.MaxPrice, alert.IsActive, alert.NotifyEmail, alert.NotifyPush).
		Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
}

// Update rewrites the filter payload but leaves is_active alone; the
// toggle is a separate operation.
func (r *PGAlertRepository) Update(ctx context.Context, alert *domain.FlightAlert) error {
	row := r.db.QueryRow(ctx, `UPDATE flight_alerts SET
		departure_city=$1, arrival_city=$2, date_from=$3, date_to=$4,
		min_seats=$5, max_price=$6, notify_email=$7, notify_push=$8, updated_at=now()
		WHERE id=$9 AND user_id=$10
		RETURNING is_active, created_at, updated_at`,
		alert.DepartureCity, alert.ArrivalCity, alert.DateFrom, alert.DateTo,
		alert.MinSeats, alert.MaxPrice, alert.NotifyEmail, alert.NotifyPush,
		alert.ID, alert.UserID)
	if err := row.Scan(&alert.IsActive, &alert.CreatedAt, &alert.UpdatedAt); err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *PGAlertRepository) SetActive(ctx context.Context, userID, id int64, active bool) (*domain.FlightAlert, error) {
	row := r.db.QueryRow(ctx, `UPDATE flight_alerts SET is_active=$1, updated_at=now()
		WHERE id=$2 AND user_id=$3
		RETURNING `+alertColumns, active, id, userID)
	var a domain.FlightAlert
	if err := scanAlert(row.Scan, &a); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *PGAlertRepository) Delete(ctx context.Context, userID, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flight_alerts WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAlert(scan func(dest ...any) error, a *domain.FlightAlert) error {
	return scan(&a.ID, &a.UserID, &a.DepartureCity, &a.ArrivalCity, &a.DateFrom, &a.DateTo,
		&a.MinSeats, &a.MaxPrice, &a.IsActive, &a.NotifyEmail, &a.NotifyPush, &a.CreatedAt, &a.UpdatedAt)
}

var _ AlertRepository = (*PGAlertRepository)(nil)
