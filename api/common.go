package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/heliconnect/client-api/internal/auth"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/i18n"
	"github.com/heliconnect/client-api/internal/repository"
)

// language resolves the response language: explicit ?lang= override
// first, then the authenticated profile's preference, French otherwise.
func language(c *gin.Context) domain.Language {
	if lang := c.Query("lang"); lang == string(domain.LanguageEN) {
		return domain.LanguageEN
	} else if lang == string(domain.LanguageFR) {
		return domain.LanguageFR
	}
	if profile := auth.ProfileFromContext(c); profile != nil {
		if profile.PreferredLanguage == domain.LanguageEN {
			return domain.LanguageEN
		}
	}
	return domain.LanguageFR
}

// storeError is the unified surface for data-store failures: the
// historical client swallowed them silently, this API does not.
func storeError(c *gin.Context, err error) {
	lang := language(c)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": i18n.T(lang, i18n.MsgNotFound)})
		return
	}
	log.Printf("store error on %s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": i18n.T(lang, i18n.MsgInternalError)})
}

func validationError(c *gin.Context, key string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": i18n.T(language(c), key)})
}
