package repository

import (
	"context"
	"encoding/json"

	"github.com/heliconnect/client-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) error
	Update(ctx context.Context, profile *domain.Profile) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type PGProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) ProfileRepository {
	return &PGProfileRepository{db: db}
}

const profileColumns = `id, email, password_hash, first_name, last_name, phone, company_name, siret,
	job_title, website, role, is_active, billing_address, email_notifications, push_notifications,
	preferred_language, created_at, updated_at`

func (r *PGProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id=$1`, id)
	return scanProfile(row.Scan)
}

func (r *PGProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE lower(email)=lower($1)`, email)
	return scanProfile(row.Scan)
}

func (r *PGProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	address, err := marshalAddress(profile.BillingAddress)
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, `INSERT INTO profiles
		(email, password_hash, first_name, last_name, phone, company_name, siret, job_title, website,
		 role, is_active, billing_address, email_notifications, push_notifications, preferred_language)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`,
		profile.Email, profile.PasswordHash, profile.FirstName, profile.LastName, profile.Phone,
		profile.CompanyName, profile.Siret, profile.JobTitle, profile.Website,
		profile.Role, profile.IsActive, address, profile.EmailNotifications, profile.PushNotifications,
		profile.PreferredLanguage).
		Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *PGProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	address, err := marshalAddress(profile.BillingAddress)
	if err != nil {
		return err
	}
	row := r.db.QueryRow(ctx, `UPDATE profiles SET
		first_name=$1, last_name=$2, phone=$3, company_name=$4, siret=$5, job_title=$6, website=$7,
		billing_address=$8, email_notifications=$9, push_notifications=$10, preferred_language=$11,
		updated_at=now()
		WHERE id=$12
		RETURNING updated_at`,
		profile.FirstName, profile.LastName, profile.Phone, profile.CompanyName, profile.Siret,
		profile.JobTitle, profile.Website, address, profile.EmailNotifications,
		profile.PushNotifications, profile.PreferredLanguage, profile.ID)
	if err := row.Scan(&profile.UpdatedAt); err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *PGProfileRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE profiles SET password_hash=$1, updated_at=now() WHERE id=$2`, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanProfile(scan func(dest ...any) error) (*domain.Profile, error) {
	var (
		p       domain.Profile
		address []byte
	)
	if err := scan(&p.ID, &p.Email, &p.PasswordHash, &p.FirstName, &p.LastName, &p.Phone,
		&p.CompanyName, &p.Siret, &p.JobTitle, &p.Website, &p.Role, &p.IsActive, &address,
		&p.EmailNotifications, &p.PushNotifications, &p.PreferredLanguage,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	if len(address) > 0 {
		p.BillingAddress = &domain.BillingAddress{}
		if err := json.Unmarshal(address, p.BillingAddress); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func marshalAddress(address *domain.BillingAddress) ([]byte, error) {
	if address == nil {
		return nil, nil
	}
	return json.Marshal(address)
}

var _ ProfileRepository = (*PGProfileRepository)(nil)
