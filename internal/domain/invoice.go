package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

type InvoiceType string

const (
	InvoiceTypeBooking      InvoiceType = "booking"
	InvoiceTypeSubscription InvoiceType = "subscription"
)

type InvoiceLine struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Invoice is read-only from the client; amounts and documents are
// produced by the billing back office.
type Invoice struct {
	ID        int64
	UserID    int64
	BookingID *int64
	Number    string
	Type      InvoiceType
	Status    InvoiceStatus
	Lines     []InvoiceLine
	Subtotal  float64
	Tax       float64
	Total     float64
	PDFURL    string
	Booking   *Booking
	IssuedAt  time.Time
	DueAt     *time.Time
	CreatedAt time.Time
}
