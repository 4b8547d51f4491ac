package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Invoice, error)
	GetByID(ctx context.Context, userID, id int64) (*domain.Invoice, error)
}

type PGInvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) InvoiceRepository {
	return &PGInvoiceRepository{db: db}
}

// The joined booking and flight columns let the invoice view show the
// route without a second query. All nullable: subscription invoices
// carry no booking.
const invoiceColumns = `i.id, i.user_id, i.booking_id, i.invoice_number, i.type, i.status,
	i.line_items, i.subtotal, i.tax, i.total, i.pdf_url, i.issued_at, i.due_at, i.created_at,
	b.booking_reference, b.status, b.passengers_count, b.total_price,
	f.departure_city, f.arrival_city, f.departure_datetime`

const invoiceJoins = `FROM invoices i
	LEFT JOIN bookings b ON b.id = i.booking_id
	LEFT JOIN flights f ON f.id = b.flight_id`

func (r *PGInvoiceRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT `+invoiceColumns+` `+invoiceJoins+`
		WHERE i.user_id=$1 ORDER BY i.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		var inv domain.Invoice
		if err := scanInvoice(rows.Scan, &inv); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *PGInvoiceRepository) GetByID(ctx context.Context, userID, id int64) (*domain.Invoice, error) {
	row := r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` `+invoiceJoins+` WHERE i.id=$1 AND i.user_id=$2`, id, userID)
	var inv domain.Invoice
	if err := scanInvoice(row.Scan, &inv); err != nil {
		return nil, mapErr(err)
	}
	return &inv, nil
}

func scanInvoice(scan func(dest ...any) error, inv *domain.Invoice) error {
	var (
		lines            []byte
		pdfURL           *string
		reference        *string
		bookingStatus    *string
		passengers       *int
		bookingTotal     *float64
		depCity, arrCity *string
		departure        *time.Time
	)
	if err := scan(&inv.ID, &inv.UserID, &inv.BookingID, &inv.Number, &inv.Type, &inv.Status,
		&lines, &inv.Subtotal, &inv.Tax, &inv.Total, &pdfURL, &inv.IssuedAt, &inv.DueAt, &inv.CreatedAt,
		&reference, &bookingStatus, &passengers, &bookingTotal,
		&depCity, &arrCity, &departure); err != nil {
		return err
	}
	if pdfURL != nil {
		inv.PDFURL = *pdfURL
	}
	if len(lines) > 0 {
		if err := json.Unmarshal(lines, &inv.Lines); err != nil {
			return err
		}
	}
	if inv.BookingID != nil && reference != nil {
		booking := &domain.Booking{ID: *inv.BookingID, UserID: inv.UserID, Reference: *reference}
		if bookingStatus != nil {
			booking.Status = domain.BookingStatus(*bookingStatus)
		}
		if passengers != nil {
			booking.PassengersCount = *passengers
		}
		if bookingTotal != nil {
			booking.TotalPrice = *bookingTotal
		}
		if depCity != nil {
			booking.Flight = &domain.Flight{DepartureCity: *depCity}
			if arrCity != nil {
				booking.Flight.ArrivalCity = *arrCity
			}
			if departure != nil {
				booking.Flight.DepartureTime = *departure
			}
		}
		inv.Booking = booking
	}
	return nil
}

var _ InvoiceRepository = (*PGInvoiceRepository)(nil)
