package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/auth"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/i18n"
)

type AuthHandler struct {
	service      auth.AuthUseCase
	cookieName   string
	cookieMaxAge int
	cookieSecure bool
}

func NewAuthHandler(service auth.AuthUseCase, cookieName string, cookieMaxAge int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{service: service, cookieName: cookieName, cookieMaxAge: cookieMaxAge, cookieSecure: cookieSecure}
}

// Register mounts the public surface; login and register are guarded by
// PublicOnly so an authenticated visitor is bounced to the landing view.
func (h *AuthHandler) Register(router *gin.RouterGroup) {
	public := auth.PublicOnly(h.service, h.cookieName)
	router.POST("/register", public, h.register)
	router.POST("/login", public, h.login)
	router.POST("/logout", h.logout)
}

// RegisterProtected mounts what requires a live session.
func (h *AuthHandler) RegisterProtected(router *gin.RouterGroup) {
	router.PUT("/password", h.changePassword)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileResponse struct {
	ID                 int64                  `json:"id"`
	Email              string                 `json:"email"`
	FirstName          string                 `json:"first_name"`
	LastName           string                 `json:"last_name"`
	Phone              string                 `json:"phone,omitempty"`
	CompanyName        string                 `json:"company_name"`
	Siret              string                 `json:"siret,omitempty"`
	JobTitle           string                 `json:"job_title,omitempty"`
	Website            string                 `json:"website,omitempty"`
	Role               string                 `json:"role"`
	BillingAddress     *domain.BillingAddress `json:"billing_address,omitempty"`
	EmailNotifications bool                   `json:"email_notifications"`
	PushNotifications  bool                   `json:"push_notifications"`
	PreferredLanguage  string                 `json:"preferred_language"`
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:                 p.ID,
		Email:              p.Email,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Phone:              p.Phone,
		CompanyName:        p.CompanyName,
		Siret:              p.Siret,
		JobTitle:           p.JobTitle,
		Website:            p.Website,
		Role:               string(p.Role),
		BillingAddress:     p.BillingAddress,
		EmailNotifications: p.EmailNotifications,
		PushNotifications:  p.PushNotifications,
		PreferredLanguage:  string(p.PreferredLanguage),
	}
}

func (h *AuthHandler) register(c *gin.Context) {
	var req auth.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPersonalEmail):
			validationError(c, i18n.MsgPersonalEmail)
		case errors.Is(err, auth.ErrCompanyRequired):
			validationError(c, i18n.MsgCompanyRequired)
		case errors.Is(err, auth.ErrPasswordTooShort):
			validationError(c, i18n.MsgPasswordTooShort)
		default:
			storeError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, toProfileResponse(profile))
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, profile, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(language(c), i18n.MsgInvalidCredentials)})
			return
		}
		storeError(c, err)
		return
	}

	c.SetCookie(h.cookieName, session.Token, h.cookieMaxAge, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{
		"profile":  toProfileResponse(profile),
		"redirect": auth.DefaultLandingPath,
	})
}

func (h *AuthHandler) logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		if err := h.service.SignOut(c.Request.Context(), token); err != nil {
			storeError(c, err)
			return
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"redirect": auth.LoginPath})
}

type changePasswordRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (h *AuthHandler) changePassword(c *gin.Context) {
	profile := auth.ProfileFromContext(c)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), profile.ID, req.NewPassword, req.ConfirmPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordMismatch):
			validationError(c, i18n.MsgPasswordMismatch)
		case errors.Is(err, auth.ErrPasswordTooShort):
			validationError(c, i18n.MsgPasswordTooShort)
		default:
			storeError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": i18n.T(language(c), i18n.MsgPasswordChanged)})
}
