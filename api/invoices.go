package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/auth"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/service/invoices"
)

type InvoiceHandler struct {
	service invoices.InvoiceUseCase
}

func NewInvoiceHandler(service invoices.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

func (h *InvoiceHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

type invoiceResponse struct {
	ID       int64                `json:"id"`
	Number   string               `json:"number"`
	Type     string               `json:"type"`
	Status   string               `json:"status"`
	Lines    []domain.InvoiceLine `json:"line_items"`
	Subtotal float64              `json:"subtotal"`
	Tax      float64              `json:"tax"`
	Total    float64              `json:"total"`
	PDFURL   string               `json:"pdf_url,omitempty"`
	Booking  *bookingResponse     `json:"booking,omitempty"`
	IssuedAt string               `json:"issued_at"`
	DueAt    *string              `json:"due_at,omitempty"`
}

func toInvoiceResponse(inv *domain.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:       inv.ID,
		Number:   inv.Number,
		Type:     string(inv.Type),
		Status:   string(inv.Status),
		Lines:    inv.Lines,
		Subtotal: inv.Subtotal,
		Tax:      inv.Tax,
		Total:    inv.Total,
		PDFURL:   inv.PDFURL,
		IssuedAt: inv.IssuedAt.Format(time.RFC3339),
	}
	if inv.DueAt != nil {
		due := inv.DueAt.Format(time.RFC3339)
		resp.DueAt = &due
	}
	if inv.Booking != nil {
		booking := toBookingResponse(inv.Booking)
		resp.Booking = &booking
	}
	return resp
}

func (h *InvoiceHandler) list(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	list, err := h.service.List(c.Request.Context(), profile.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	out := make([]invoiceResponse, 0, len(list))
	for i := range list {
		out = append(out, toInvoiceResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"invoices": out})
}

func (h *InvoiceHandler) get(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	invoice, err := h.service.GetByID(c.Request.Context(), profile.ID, id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toInvoiceResponse(invoice))
}
