package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heliconnect/client-api/internal/domain"
	"github.com/heliconnect/client-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPersonalEmail      = errors.New("personal email domain")
	ErrCompanyRequired    = errors.New("company name required")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrPasswordMismatch   = errors.New("password confirmation mismatch")
)

// Personal email providers rejected at registration; the marketplace is
// B2B and operators contact clients on their company address.
var blockedEmailDomains = map[string]bool{
	"gmail.com": true, "yahoo.com": true, "yahoo.fr": true, "hotmail.com": true, "hotmail.fr": true,
	"outlook.com": true, "outlook.fr": true, "live.com": true, "live.fr": true, "msn.com": true,
	"aol.com": true, "icloud.com": true, "me.com": true, "mail.com": true, "protonmail.com": true,
	"gmx.com": true, "gmx.fr": true, "free.fr": true, "orange.fr": true, "sfr.fr": true,
	"laposte.net": true, "wanadoo.fr": true, "bbox.fr": true, "numericable.fr": true,
}

const minPasswordLength = 6

type SessionStore interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, token string) (*domain.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Profile, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, *domain.Profile, error)
	SignOut(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*domain.Profile, error)
	ChangePassword(ctx context.Context, userID int64, newPassword, confirm string) error
}

type Service struct {
	profiles   repository.ProfileRepository
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewService(profiles repository.ProfileRepository, sessions SessionStore, sessionTTL time.Duration) *Service {
	return &Service{profiles: profiles, sessions: sessions, sessionTTL: sessionTTL}
}

type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
	Siret       string `json:"siret"`
	JobTitle    string `json:"job_title"`
	Website     string `json:"website"`
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Profile, error) {
	if !isBusinessEmail(input.Email) {
		return nil, ErrPersonalEmail
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, ErrCompanyRequired
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		Email:              strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:       string(hash),
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Phone:              input.Phone,
		CompanyName:        input.CompanyName,
		Siret:              input.Siret,
		JobTitle:           input.JobTitle,
		Website:            input.Website,
		Role:               domain.RoleClient,
		IsActive:           true,
		EmailNotifications: true,
		PreferredLanguage:  domain.LanguageFR,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SignIn never reveals whether the email or the password was wrong.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Session, *domain.Profile, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !profile.IsActive {
		return nil, nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    profile.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, profile, nil
}

func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

// Resolve turns a session token into the profile it belongs to. The
// gate decides nothing until both session and profile are loaded, so a
// role check can never run against a half-resolved identity. A missing
// or expired session yields (nil, nil): unauthenticated, not an error.
func (s *Service) Resolve(ctx context.Context, token string) (*domain.Profile, error) {
	if token == "" {
		return nil, nil
	}
	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	profile, err := s.profiles.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID int64, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.profiles.UpdatePassword(ctx, userID, string(hash))
}

func isBusinessEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[1] == "" {
		return false
	}
	return !blockedEmailDomains[strings.ToLower(parts[1])]
}

var _ AuthUseCase = (*Service)(nil)
