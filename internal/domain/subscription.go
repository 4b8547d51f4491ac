package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusTrialing  SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue   SubscriptionStatus = "past_due"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

type Subscription struct {
	ID                 int64
	UserID             int64
	PlanID             string
	Status             SubscriptionStatus
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	CancelAtPeriodEnd  bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsCurrent reports whether the record should be shown as the user's
// plan. Anything short of expired still grants or blocks access and is
// rendered as-is.
func (s Subscription) IsCurrent() bool {
	return s.Status != SubscriptionStatusExpired
}

type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	NameEN     string   `json:"name_en"`
	Price      float64  `json:"price"`
	Period     string   `json:"period"`
	PeriodEN   string   `json:"period_en"`
	Features   []string `json:"features"`
	FeaturesEN []string `json:"features_en"`
}

// Plans is the static catalog shown when no subscription is current.
// Checkout is handled outside this service.
var Plans = []Plan{
	{
		ID:       "free_trial",
		Name:     "Essai gratuit",
		NameEN:   "Free Trial",
		Price:    0,
		Period:   "30 jours",
		PeriodEN: "30 days",
		Features: []string{
			"Accès aux vols empty legs",
			"Recherche et filtres",
			"Alertes email",
			"Support par email",
		},
		FeaturesEN: []string{
			"Access to empty leg flights",
			"Search and filters",
			"Email alerts",
			"Email support",
		},
	},
	{
		ID:       "monthly",
		Name:     "Mensuel",
		NameEN:   "Monthly",
		Price:    99,
		Period:   "/mois",
		PeriodEN: "/month",
		Features: []string{
			"Accès prioritaire 48h",
			"Toutes les fonctionnalités",
			"Alertes instantanées",
			"Support prioritaire",
			"Demandes de vol",
		},
		FeaturesEN: []string{
			"48h priority access",
			"All features",
			"Instant alerts",
			"Priority support",
			"Flight requests",
		},
	},
	{
		ID:       "yearly",
		Name:     "Annuel",
		NameEN:   "Yearly",
		Price:    990,
		Period:   "/an",
		PeriodEN: "/year",
		Features: []string{
			"Économisez 2 mois",
			"Accès prioritaire 48h",
			"Toutes les fonctionnalités",
			"Support VIP",
			"Account manager dédié",
		},
		FeaturesEN: []string{
			"Save 2 months",
			"48h priority access",
			"All features",
			"VIP support",
			"Dedicated account manager",
		},
	},
}
