package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/auth"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/i18n"
	"github.com/heliconnect/client-api/internal/repository"
	"github.com/heliconnect/client-api/internal/service/subscriptions"
)

type SubscriptionHandler struct {
	service subscriptions.SubscriptionUseCase
}

func NewSubscriptionHandler(service subscriptions.SubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

func (h *SubscriptionHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.current)
	router.POST("/", h.subscribe)
	router.POST("/cancel", h.cancel)
}

type subscriptionResponse struct {
	ID                 int64  `json:"id"`
	PlanID             string `json:"plan_id"`
	Status             string `json:"status"`
	CurrentPeriodStart string `json:"current_period_start"`
	CurrentPeriodEnd   string `json:"current_period_end"`
	CancelAtPeriodEnd  bool   `json:"cancel_at_period_end"`
}

func toSubscriptionResponse(s *domain.Subscription) subscriptionResponse {
	return subscriptionResponse{
		ID:                 s.ID,
		PlanID:             s.PlanID,
		Status:             string(s.Status),
		CurrentPeriodStart: s.CurrentPeriodStart.Format(time.RFC3339),
		CurrentPeriodEnd:   s.CurrentPeriodEnd.Format(time.RFC3339),
		CancelAtPeriodEnd:  s.CancelAtPeriodEnd,
	}
}

// current returns the active subscription when there is one, the plan
// catalog otherwise.
func (h *SubscriptionHandler) current(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	sub, err := h.service.Current(c.Request.Context(), profile.ID)
	if err != nil {
		storeError(c, err)
		return
	}
	if sub == nil {
		c.JSON(http.StatusOK, gin.H{"subscription": nil, "plans": domain.Plans})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscription": toSubscriptionResponse(sub)})
}

// subscribe is a placeholder until the payment provider is wired in.
func (h *SubscriptionHandler) subscribe(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": i18n.T(language(c), i18n.MsgPaymentComingSoon)})
}

func (h *SubscriptionHandler) cancel(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	sub, err := h.service.Cancel(c.Request.Context(), profile.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(language(c), i18n.MsgNoSubscription)})
			return
		}
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSubscriptionResponse(sub))
}
