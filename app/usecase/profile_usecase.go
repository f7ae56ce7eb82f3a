package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"account-service/app/domain"
	"account-service/app/port"

	"github.com/google/uuid"
)

// ProfileUsecase implements the fetch-or-create profile resolver. A
// profile is created only when the fetch reports the not-found variant;
// any other failure is surfaced as-is so a flaky read never shadows an
// existing profile with a fresh default one.
type ProfileUsecase struct {
	gateway       port.ProfileGateway
	tierTable     *domain.TierTable
	retryAttempts int
	retryDelay    time.Duration
	logger        *slog.Logger
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(gateway port.ProfileGateway, tierTable *domain.TierTable, retryAttempts int, retryDelay time.Duration, logger *slog.Logger) *ProfileUsecase {
	return &ProfileUsecase{
		gateway:       gateway,
		tierTable:     tierTable,
		retryAttempts: retryAttempts,
		retryDelay:    retryDelay,
		logger:        logger.With("component", "profile_usecase"),
	}
}

// EnsureProfile returns the profile for an identity, creating the
// default profile when none exists yet. Concurrent first sign-ins may
// both reach the create path; the repository resolves that race through
// the table's primary key and both callers get the same row.
func (u *ProfileUsecase) EnsureProfile(ctx context.Context, identity domain.Identity) (*domain.Profile, error) {
	profile, err := u.fetchWithRetry(ctx, identity.ID)
	if err == nil {
		return profile, nil
	}

	if !domain.IsNotFound(err) {
		u.logger.Error("profile fetch failed", "identity_id", identity.ID, "error", err)
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	u.logger.Info("no profile for identity, creating default", "identity_id", identity.ID)

	fresh, err := domain.NewProfile(identity.ID, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to build default profile: %w", err)
	}

	created, err := u.gateway.CreateProfile(ctx, fresh)
	if err != nil {
		u.logger.Error("profile creation failed", "identity_id", identity.ID, "error", err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return created, nil
}

// GetProfile fetches an existing profile without the create fallback
func (u *ProfileUsecase) GetProfile(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error) {
	profile, err := u.fetchWithRetry(ctx, identityID)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Rename updates the profile's display name
func (u *ProfileUsecase) Rename(ctx context.Context, identityID uuid.UUID, displayName string) (*domain.Profile, error) {
	profile, err := u.gateway.GetProfile(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if err := profile.Rename(displayName); err != nil {
		return nil, domain.NewValidationError("display_name", displayName, err.Error())
	}

	if err := u.gateway.UpdateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

// RecordPhotosphereCreated increments the photosphere counter after
// checking the profile's tier limit. The limit check fails closed for
// unknown tier names.
func (u *ProfileUsecase) RecordPhotosphereCreated(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error) {
	return u.recordUsage(ctx, identityID, domain.ResourcePhotospheres)
}

// RecordPhotoUploaded increments the photo counter after checking the
// profile's tier limit
func (u *ProfileUsecase) RecordPhotoUploaded(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error) {
	return u.recordUsage(ctx, identityID, domain.ResourcePhotos)
}

func (u *ProfileUsecase) recordUsage(ctx context.Context, identityID uuid.UUID, resource domain.Resource) (*domain.Profile, error) {
	profile, err := u.gateway.GetProfile(ctx, identityID)
	if err != nil {
		return nil, err
	}

	if u.tierTable.LimitReached(profile.Tier, resource, profile.Usage()) {
		u.logger.Warn("tier limit reached",
			"identity_id", identityID,
			"tier", profile.Tier,
			"resource", resource)
		return nil, fmt.Errorf("%s limit for tier %s: %w", resource, profile.Tier, domain.ErrTierLimitReached)
	}

	switch resource {
	case domain.ResourcePhotospheres:
		profile.RecordPhotosphere()
	case domain.ResourcePhotos:
		profile.RecordPhotoUpload()
	}

	if err := u.gateway.UpdateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to record %s usage: %w", resource, err)
	}

	return profile, nil
}

// fetchWithRetry retries the profile fetch on timeout-class failures
// only. Not-found is a definitive answer and service errors are not
// assumed transient, so neither is retried.
func (u *ProfileUsecase) fetchWithRetry(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error) {
	var lastErr error

	for attempt := 0; attempt <= u.retryAttempts; attempt++ {
		if attempt > 0 {
			u.logger.Warn("retrying profile fetch after timeout",
				"identity_id", identityID,
				"attempt", attempt)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(u.retryDelay):
			}
		}

		profile, err := u.gateway.GetProfile(ctx, identityID)
		if err == nil {
			return profile, nil
		}

		lastErr = err
		if !domain.IsTimeout(err) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("profile fetch exhausted retries: %w", lastErr)
}
