package profiles

import (
	"context"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/repository"
)

type ProfileUseCase interface {
	Get(ctx context.Context, userID int64) (*domain.Profile, error)
	Update(ctx context.Context, userID int64, input UpdateInput) (*domain.Profile, error)
}

type ProfileService struct {
	profiles repository.ProfileRepository
}

func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// UpdateInput carries everything the account page can save, the
// language toggle included: saving persists the UI language back into
// the profile.
type UpdateInput struct {
	FirstName          string                 `json:"first_name"`
	LastName           string                 `json:"last_name"`
	Phone              string                 `json:"phone"`
	CompanyName        string                 `json:"company_name"`
	Siret              string                 `json:"siret"`
	JobTitle           string                 `json:"job_title"`
	Website            string                 `json:"website"`
	BillingAddress     *domain.BillingAddress `json:"billing_address"`
	EmailNotifications bool                   `json:"email_notifications"`
	PushNotifications  bool                   `json:"push_notifications"`
	PreferredLanguage  string                 `json:"preferred_language"`
}

func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, userID)
}

func (s *ProfileService) Update(ctx context.Context, userID int64, input UpdateInput) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.FirstName = input.FirstName
	profile.LastName = input.LastName
	profile.Phone = input.Phone
	profile.CompanyName = input.CompanyName
	profile.Siret = input.Siret
	profile.JobTitle = input.JobTitle
	profile.Website = input.Website
	profile.BillingAddress = input.BillingAddress
	profile.EmailNotifications = input.EmailNotifications
	profile.PushNotifications = input.PushNotifications
	if lang := domain.Language(input.PreferredLanguage); lang == domain.LanguageFR || lang == domain.LanguageEN {
		profile.PreferredLanguage = lang
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

var _ ProfileUseCase = (*ProfileService)(nil)
