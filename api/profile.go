package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/auth"
	"github.com/heliconnect/client-api/internal/i18n"
	"github.com/heliconnect/client-api/internal/service/profiles"
)

type ProfileHandler struct {
	service profiles.ProfileUseCase
}

func NewProfileHandler(service profiles.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.get)
	router.PUT("/", h.update)
}

func (h *ProfileHandler) get(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	current, err := h.service.Get(c.Request.Context(), profile.ID)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(current))
}

func (h *ProfileHandler) update(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	var input profiles.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), profile.ID, input)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile": toProfileResponse(updated),
		"message": i18n.T(language(c), i18n.MsgProfileUpdated),
	})
}
