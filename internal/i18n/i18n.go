package i18n

import "github.com/heliconnect/client-api/internal/domain"

// Message identifiers used by handlers and services. The client app
// showed every message in French and English; the same pairs live here.
const (
	MsgInvalidCredentials    = "invalid_credentials"
	MsgRequiredFields        = "required_fields"
	MsgPersonalEmail         = "personal_email"
	MsgCompanyRequired       = "company_required"
	MsgPasswordTooShort      = "password_too_short"
	MsgPasswordMismatch      = "password_mismatch"
	MsgPasswordChanged       = "password_changed"
	MsgProfileUpdated        = "profile_updated"
	MsgNotFound              = "not_found"
	MsgInternalError         = "internal_error"
	MsgUnauthorized          = "unauthorized"
	MsgForbidden             = "forbidden"
	MsgBookingNotCancellable = "booking_not_cancellable"
	MsgRequestNotDeletable   = "request_not_deletable"
	MsgBookingComingSoon     = "booking_coming_soon"
	MsgPaymentComingSoon     = "payment_coming_soon"
	MsgNoSubscription        = "no_subscription"
)

var fr = map[string]string{
	MsgInvalidCredentials:    "Email ou mot de passe incorrect",
	MsgRequiredFields:        "Veuillez remplir les champs obligatoires",
	MsgPersonalEmail:         "Veuillez utiliser une adresse email professionnelle. Les adresses personnelles (Gmail, Hotmail, Yahoo, etc.) ne sont pas acceptées.",
	MsgCompanyRequired:       "Le nom de la société est obligatoire.",
	MsgPasswordTooShort:      "Le mot de passe doit contenir au moins 6 caractères",
	MsgPasswordMismatch:      "Les mots de passe ne correspondent pas",
	MsgPasswordChanged:       "Mot de passe modifié",
	MsgProfileUpdated:        "Profil mis à jour",
	MsgNotFound:              "Introuvable",
	MsgInternalError:         "Une erreur est survenue",
	MsgUnauthorized:          "Veuillez vous connecter",
	MsgForbidden:             "Accès réservé aux clients",
	MsgBookingNotCancellable: "Cette réservation ne peut plus être annulée",
	MsgRequestNotDeletable:   "Cette demande ne peut pas être supprimée",
	MsgBookingComingSoon:     "La fonctionnalité de réservation sera bientôt disponible. Contactez-nous pour réserver ce vol.",
	MsgPaymentComingSoon:     "Le paiement sera bientôt disponible. Contactez-nous pour souscrire.",
	MsgNoSubscription:        "Aucun abonnement actif",
}

var en = map[string]string{
	MsgInvalidCredentials:    "Incorrect email or password",
	MsgRequiredFields:        "Please fill in the required fields",
	MsgPersonalEmail:         "Please use a business email address. Personal addresses (Gmail, Hotmail, Yahoo, etc.) are not accepted.",
	MsgCompanyRequired:       "The company name is required.",
	MsgPasswordTooShort:      "Password must be at least 6 characters",
	MsgPasswordMismatch:      "Passwords do not match",
	MsgPasswordChanged:       "Password changed",
	MsgProfileUpdated:        "Profile updated",
	MsgNotFound:              "Not found",
	MsgInternalError:         "An error occurred",
	MsgUnauthorized:          "Please sign in",
	MsgForbidden:             "Client access only",
	MsgBookingNotCancellable: "This booking can no longer be cancelled",
	MsgRequestNotDeletable:   "This request cannot be deleted",
	MsgBookingComingSoon:     "The booking feature will be available soon. Contact us to book this flight.",
	MsgPaymentComingSoon:     "Payment will be available soon. Contact us to subscribe.",
	MsgNoSubscription:        "No active subscription",
}

// T resolves a message for the given language, falling back to French,
// then to the identifier itself for unknown keys.
func T(lang domain.Language, key string) string {
	if lang == domain.LanguageEN {
		if msg, ok := en[key]; ok {
			return msg
		}
	}
	if msg, ok := fr[key]; ok {
		return msg
	}
	return key
}
