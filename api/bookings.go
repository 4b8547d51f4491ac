package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/auth"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/i18n"
	"github.com/heliconnect/client-api/internal/service/bookings"
)

type BookingHandler struct {
	service bookings.BookingUseCase
}

func NewBookingHandler(service bookings.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.POST("/:id/cancel", h.cancel)
}

type bookingResponse struct {
	ID                 int64           `json:"id"`
	Reference          string          `json:"reference"`
	Status             string          `json:"status"`
	PassengersCount    int             `json:"passengers_count"`
	TotalPrice         float64         `json:"total_price"`
	ContactName        string          `json:"contact_name,omitempty"`
	ContactEmail       string          `json:"contact_email,omitempty"`
	ContactPhone       string          `json:"contact_phone,omitempty"`
	CancelledAt        *string         `json:"cancelled_at,omitempty"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	Flight             *flightResponse `json:"flight,omitempty"`
	CreatedAt          string          `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		Status:             string(b.Status),
		PassengersCount:    b.PassengersCount,
		TotalPrice:         b.TotalPrice,
		ContactName:        b.ContactName,
		ContactEmail:       b.ContactEmail,
		ContactPhone:       b.ContactPhone,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		at := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &at
	}
	if b.Flight != nil {
		flight := toFlightResponse(b.Flight)
		resp.Flight = &flight
	}
	return resp
}

// list returns the user's bookings split into upcoming and past, the
// way the bookings page renders them.
func (h *BookingHandler) list(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	partitioned, err := h.service.List(c.Request.Context(), profile.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	upcoming := make([]bookingResponse, 0, len(partitioned.Upcoming))
	for i := range partitioned.Upcoming {
		upcoming = append(upcoming, toBookingResponse(&partitioned.Upcoming[i]))
	}
	past := make([]bookingResponse, 0, len(partitioned.Past))
	for i := range partitioned.Past {
		past = append(past, toBookingResponse(&partitioned.Past[i]))
	}
	c.JSON(http.StatusOK, gin.H{"upcoming": upcoming, "past": past})
}

// create is a placeholder: bookings are taken over the phone for now.
func (h *BookingHandler) create(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": i18n.T(language(c), i18n.MsgBookingComingSoon)})
}

func (h *BookingHandler) get(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	booking, err := h.service.GetByID(c.Request.Context(), profile.ID, id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	booking, err := h.service.Cancel(c.Request.Context(), profile, id)
	if err != nil {
		if errors.Is(err, bookings.ErrNotCancellable) {
			c.JSON(http.StatusConflict, gin.H{"error": i18n.T(language(c), i18n.MsgBookingNotCancellable)})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}
