package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/i18n"
)

const profileContextKey = "auth.profile"

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/login"

// OffPlatformURL receives visitors whose role belongs to the operator
// side of the platform; the client app never renders for them.
const OffPlatformURL = "https://www.heliconnect.fr"

// DefaultLandingPath is where authenticated visitors land.
const DefaultLandingPath = "/flights"

// RequireClient is the access gate for protected routes. Session and
// profile resolve in a single pass before any decision; an absent or
// expired session is plain unauthenticated, never an error. Roles other
// than client and superadmin are redirected off-platform.
func RequireClient(svc AuthUseCase, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookieName)
		profile, err := svc.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": i18n.T(domain.LanguageFR, i18n.MsgInternalError)})
			return
		}
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    i18n.T(domain.LanguageFR, i18n.MsgUnauthorized),
				"redirect": LoginPath,
			})
			return
		}
		if profile.Role != domain.RoleClient && profile.Role != domain.RoleSuperadmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    i18n.T(profile.PreferredLanguage, i18n.MsgForbidden),
				"redirect": OffPlatformURL,
			})
			return
		}
		SetProfile(c, profile)
		c.Next()
	}
}

// PublicOnly guards the sign-in surface: an already-authenticated
// visitor is told to go to the landing view instead.
func PublicOnly(svc AuthUseCase, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookieName)
		profile, err := svc.Resolve(c.Request.Context(), token)
		if err == nil && profile != nil {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"redirect": DefaultLandingPath})
			return
		}
		c.Next()
	}
}

// SetProfile attaches the authenticated profile to the request context.
func SetProfile(c *gin.Context, profile *domain.Profile) {
	c.Set(profileContextKey, profile)
}

// ProfileFromContext returns the authenticated profile set by the gate.
func ProfileFromContext(c *gin.Context) *domain.Profile {
	v, ok := c.Get(profileContextKey)
	if !ok {
		return nil
	}
	profile, _ := v.(*domain.Profile)
	return profile
}
