package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"account-service/app/domain"
	"account-service/app/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation: the losing side of a concurrent profile creation race.
const uniqueViolation = "23505"

// ProfileRepository implements port.ProfileRepositoryPort for PostgreSQL
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepositoryPort {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

const profileColumns = `
	id, email, display_name, tier, subscription_status,
	photospheres_created, photos_uploaded, created_at, updated_at`

// Get retrieves a profile by identity ID. A missing row is reported as
// domain.ErrProfileNotFound, the only error variant that triggers
// default profile creation upstream.
func (r *ProfileRepository) Get(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles
		WHERE id = $1`

	row := r.db.QueryRow(ctx, query, identityID)
	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get profile", "identity_id", identityID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// Create inserts a profile row. When a concurrent creation for the same
// identity wins the race, the primary key constraint rejects the insert
// and the winner's row is returned instead; the resolver itself does
// not coordinate concurrent attempts.
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (
			id, email, display_name, tier, subscription_status,
			photospheres_created, photos_uploaded, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`

	r.logger.Info("creating profile", "identity_id", profile.ID, "tier", profile.Tier)

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.DisplayName,
		profile.Tier,
		profile.SubscriptionStatus,
		profile.PhotospheresCreated,
		profile.PhotosUploaded,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Warn("profile creation lost race, fetching winner",
				"identity_id", profile.ID)
			return r.Get(ctx, profile.ID)
		}
		r.logger.Error("failed to create profile", "identity_id", profile.ID, "error", err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	r.logger.Info("profile created", "identity_id", profile.ID)
	return profile, nil
}

// Update persists mutable profile fields
func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles SET
			email = $2,
			display_name = $3,
			tier = $4,
			subscription_status = $5,
			photospheres_created = $6,
			photos_uploaded = $7,
			updated_at = $8
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.DisplayName,
		profile.Tier,
		profile.SubscriptionStatus,
		profile.PhotospheresCreated,
		profile.PhotosUploaded,
		profile.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to update profile", "identity_id", profile.ID, "error", err)
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}

// Delete removes a profile row
func (r *ProfileRepository) Delete(ctx context.Context, identityID uuid.UUID) error {
	query := `DELETE FROM profiles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, identityID)
	if err != nil {
		r.logger.Error("failed to delete profile", "identity_id", identityID, "error", err)
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	r.logger.Info("profile deleted", "identity_id", identityID)
	return nil
}

// scanProfile maps a row to a domain profile
func scanProfile(row pgx.Row) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.DisplayName,
		&profile.Tier,
		&profile.SubscriptionStatus,
		&profile.PhotospheresCreated,
		&profile.PhotosUploaded,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
