package i18n

import (
	"testing"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {
	assert.Equal(t, "Email ou mot de passe incorrect", T(domain.LanguageFR, MsgInvalidCredentials))
	assert.Equal(t, "Incorrect email or password", T(domain.LanguageEN, MsgInvalidCredentials))

	// unknown language falls back to French
	assert.Equal(t, "Introuvable", T(domain.Language("de"), MsgNotFound))

	// unknown key returns the key itself
	assert.Equal(t, "no_such_key", T(domain.LanguageFR, "no_such_key"))
}

func TestEveryMessageHasBothLanguages(t *testing.T) {
	assert.Equal(t, len(fr), len(en))
	for key := range fr {
		assert.Contains(t, en, key, "missing english text for %s", key)
	}
}
