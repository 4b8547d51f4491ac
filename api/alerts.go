package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/auth"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/service/alerts"
)

type AlertHandler struct {
	service alerts.AlertUseCase
}

func NewAlertHandler(service alerts.AlertUseCase) *AlertHandler {
	return &AlertHandler{service: service}
}

func (h *AlertHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.PATCH("/:id/toggle", h.toggle)
	router.DELETE("/:id", h.delete)
}

type alertResponse struct {
	ID            int64    `json:"id"`
	DepartureCity *string  `json:"departure_city"`
	ArrivalCity   *string  `json:"arrival_city"`
	DateFrom      *string  `json:"date_from"`
	DateTo        *string  `json:"date_to"`
	MinSeats      int      `json:"min_seats"`
	MaxPrice      *float64 `json:"max_price"`
	IsActive      bool     `json:"is_active"`
	NotifyEmail   bool     `json:"notify_email"`
	NotifyPush    bool     `json:"notify_push"`
	CreatedAt     string   `json:"created_at"`
}

func toAlertResponse(a *domain.FlightAlert) alertResponse {
	resp := alertResponse{
		ID:            a.ID,
		DepartureCity: a.DepartureCity,
		ArrivalCity:   a.ArrivalCity,
		MinSeats:      a.MinSeats,
		MaxPrice:      a.MaxPrice,
		IsActive:      a.IsActive,
		NotifyEmail:   a.NotifyEmail,
		NotifyPush:    a.NotifyPush,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
	if a.DateFrom != nil {
		from := a.DateFrom.Format("2006-01-02")
		resp.DateFrom = &from
	}
	if a.DateTo != nil {
		to := a.DateTo.Format("2006-01-02")
		resp.DateTo = &to
	}
	return resp
}

func (h *AlertHandler) list(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	list, err := h.service.List(c.Request.Context(), profile.ID)
	if err != nil {
		storeError(c, err)
		return
	}

	out := make([]alertResponse, 0, len(list))
	for i := range list {
		out = append(out, toAlertResponse(&list[i]))
	}
	c.JSON(http.StatusOK, gin.H{"alerts": out})
}

func (h *AlertHandler) create(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	var input alerts.AlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.service.Create(c.Request.Context(), profile, input)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAlertResponse(alert))
}

func (h *AlertHandler) update(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input alerts.AlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.service.Update(c.Request.Context(), profile, id, input)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAlertResponse(alert))
}

func (h *AlertHandler) toggle(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	alert, err := h.service.Toggle(c.Request.Context(), profile, id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAlertResponse(alert))
}

func (h *AlertHandler) delete(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), profile, id); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
