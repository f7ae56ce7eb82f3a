package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"account-service/app/domain"
	"account-service/app/port"

	"github.com/google/uuid"
)

// ProfileGateway implements port.ProfileGateway
// It validates profile data on the way into the repository and leaves
// not-found classification to the repository itself.
type ProfileGateway struct {
	profileRepo port.ProfileRepositoryPort
	logger      *slog.Logger
}

// NewProfileGateway creates a new ProfileGateway instance
func NewProfileGateway(profileRepo port.ProfileRepositoryPort, logger *slog.Logger) *ProfileGateway {
	return &ProfileGateway{
		profileRepo: profileRepo,
		logger:      logger.With("component", "profile_gateway"),
	}
}

var _ port.ProfileGateway = (*ProfileGateway)(nil)

// GetProfile retrieves a profile by identity ID
func (g *ProfileGateway) GetProfile(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error) {
	if identityID == uuid.Nil {
		return nil, fmt.Errorf("identity ID cannot be empty")
	}

	profile, err := g.profileRepo.Get(ctx, identityID)
	if err != nil {
		// Not-found is an expected variant, not a gateway failure
		if domain.IsNotFound(err) {
			return nil, err
		}
		g.logger.Error("failed to retrieve profile", "identity_id", identityID, "error", err)
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}

	return profile, nil
}

// CreateProfile persists a new profile
func (g *ProfileGateway) CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if err := g.validateProfile(profile); err != nil {
		g.logger.Error("profile validation failed", "error", err)
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	created, err := g.profileRepo.Create(ctx, profile)
	if err != nil {
		g.logger.Error("failed to create profile", "identity_id", profile.ID, "error", err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	g.logger.Info("profile created", "identity_id", created.ID, "tier", created.Tier)
	return created, nil
}

// UpdateProfile persists profile mutations
func (g *ProfileGateway) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	if err := g.validateProfile(profile); err != nil {
		g.logger.Error("profile validation failed", "error", err)
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if err := g.profileRepo.Update(ctx, profile); err != nil {
		g.logger.Error("failed to update profile", "identity_id", profile.ID, "error", err)
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

// validateProfile validates profile data
func (g *ProfileGateway) validateProfile(profile *domain.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile cannot be nil")
	}

	if profile.ID == uuid.Nil {
		return fmt.Errorf("identity ID cannot be empty")
	}

	if profile.Email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if profile.Tier == "" {
		return fmt.Errorf("tier cannot be empty")
	}

	if profile.SubscriptionStatus == "" {
		return fmt.Errorf("subscription status cannot be empty")
	}

	if profile.PhotospheresCreated < 0 || profile.PhotosUploaded < 0 {
		return fmt.Errorf("usage counters cannot be negative")
	}

	return nil
}
