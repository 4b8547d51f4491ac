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
	"github.com/heliconnect/client-api/internal/service/requests"
)

type RequestHandler struct {
	service requests.RequestUseCase
}

func NewRequestHandler(service requests.RequestUseCase) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.POST("/:id/cancel", h.cancel)
	router.DELETE("/:id", h.delete)
}

type requestResponse struct {
	ID                  int64    `json:"id"`
	DepartureCity       string   `json:"departure_city"`
	ArrivalCity         string   `json:"arrival_city"`
	PreferredDate       string   `json:"preferred_date"`
	DateFlexibilityDays int      `json:"date_flexibility_days"`
	PreferredTimeSlot   *string  `json:"preferred_time_slot"`
	PassengersCount     int      `json:"passengers_count"`
	MaxBudget           *float64 `json:"max_budget"`
	Currency            string   `json:"currency"`
	Notes               string   `json:"notes,omitempty"`
	Status              string   `json:"status"`
	ExpiresAt           string   `json:"expires_at"`
	CreatedAt           string   `json:"created_at"`
}

func toRequestResponse(r *domain.FlightRequest) requestResponse {
	resp := requestResponse{
		ID:                  r.ID,
		DepartureCity:       r.DepartureCity,
		ArrivalCity:         r.ArrivalCity,
		PreferredDate:       r.PreferredDate.Format("2006-01-02"),
		DateFlexibilityDays: r.DateFlexibilityDays,
		PassengersCount:     r.PassengersCount,
		MaxBudget:           r.MaxBudget,
		Currency:            r.Currency,
		Notes:               r.Notes,
		Status:              string(r.Status),
		ExpiresAt:           r.ExpiresAt.Format(time.RFC3339),
		CreatedAt:           r.CreatedAt.Format(time.RFC3339),
	}
	if r.PreferredTimeSlot != nil {
		slot := string(*r.PreferredTimeSlot)
		resp.PreferredTimeSlot = &slot
	}
	return resp
}

func (h *RequestHandler) list(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	list, err := h.service.List(c.Request.Context(), profile.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	out := make([]requestResponse, 0, len(list))
	for i := range list {
		out = append(out, toRequestResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"requests": out})
}

func (h *RequestHandler) create(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	var input requests.RequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := h.service.Create(c.Request.Context(), profile, input)
	if err != nil {
		if errors.Is(err, requests.ErrMissingFields) {
			validationError(c, i18n.MsgRequiredFields)
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRequestResponse(req))
}

func (h *RequestHandler) update(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input requests.RequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := h.service.Update(c.Request.Context(), profile, id, input)
	if err != nil {
		if errors.Is(err, requests.ErrMissingFields) {
			validationError(c, i18n.MsgRequiredFields)
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRequestResponse(req))
}

func (h *RequestHandler) cancel(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	req, err := h.service.Cancel(c.Request.Context(), profile, id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRequestResponse(req))
}

func (h *RequestHandler) delete(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), profile, id); err != nil {
		if errors.Is(err, requests.ErrNotDeletable) {
			c.JSON(http.StatusConflict, gin.H{"error": i18n.T(language(c), i18n.MsgRequestNotDeletable)})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
