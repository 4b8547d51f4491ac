package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/service/search"
)

type FlightHandler struct {
	service search.FlightUseCase
}

func NewFlightHandler(service search.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/cities", h.cities)
	router.GET("/:id", h.get)
}

type flightResponse struct {
	ID              int64              `json:"id"`
	DepartureCity   string             `json:"departure_city"`
	ArrivalCity     string             `json:"arrival_city"`
	DepartureTime   string             `json:"departure_datetime"`
	DurationMinutes int                `json:"flight_duration_minutes,omitempty"`
	SeatsLeft       int                `json:"seats_left"`
	PricePerSeat    *float64           `json:"price_per_seat"`
	TotalPrice      *float64           `json:"total_price"`
	Company         *domain.Company    `json:"company,omitempty"`
	Helicopter      *domain.Helicopter `json:"helicopter,omitempty"`
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:              f.ID,
		DepartureCity:   f.DepartureCity,
		ArrivalCity:     f.ArrivalCity,
		DepartureTime:   f.DepartureTime.Format(time.RFC3339),
		DurationMinutes: f.DurationMinutes,
		SeatsLeft:       f.SeatsLeft(),
		PricePerSeat:    f.PricePerSeat,
		TotalPrice:      f.TotalPrice,
		Company:         f.Company,
		Helicopter:      f.Helicopter,
	}
}

// list serves the search page: the full visible snapshot narrowed by
// whatever filters the query string carries.
func (h *FlightHandler) list(c *gin.Context) {
	filter := search.Filter{
		DepartureCity: c.Query("departure_city"),
		ArrivalCity:   c.Query("arrival_city"),
		Passengers:    1,
	}
	if d, err := time.Parse("2006-01-02", c.Query("date")); err == nil {
		filter.Date = &d
	}
	if n, err := strconv.Atoi(c.Query("passengers")); err == nil && n > 0 {
		filter.Passengers = n
	}
	if p, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filter.MaxPrice = &p
	}

	flights, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		storeError(c, err)
		return
	}

	out := make([]flightResponse, 0, len(flights))
	for i := range flights {
		out = append(out, toFlightResponse(&flights[i]))
	}
	c.JSON(http.StatusOK, gin.H{"flights": out, "results": len(out)})
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) cities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": domain.PopularCities})
}
