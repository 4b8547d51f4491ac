package domain

import "time"

type Role string

const (
	RoleClient     Role = "client"
	RoleOperator   Role = "operator"
	RoleSuperadmin Role = "superadmin"
)

type Language string

const (
	LanguageFR Language = "fr"
	LanguageEN Language = "en"
)

type BillingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Profile struct {
	ID                 int64
	Email              string
	PasswordHash       string
	FirstName          string
	LastName           string
	Phone              string
	CompanyName        string
	Siret              string
	JobTitle           string
	Website            string
	Role               Role
	IsActive           bool
	BillingAddress     *BillingAddress
	EmailNotifications bool
	PushNotifications  bool
	PreferredLanguage  Language
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// PopularCities is the autocomplete catalog for route fields.
var PopularCities = []string{
	"Paris", "Nice", "Cannes", "Monaco", "Saint-Tropez", "Marseille",
	"Lyon", "Bordeaux", "Toulouse", "Ajaccio", "Bastia", "Calvi",
	"Figari", "Porto-Vecchio", "Genève", "Milan", "Courchevel",
	"Megève", "Chamonix",
}
