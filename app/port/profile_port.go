package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go

import (
	"context"

	"account-service/app/domain"

	"github.com/google/uuid"
)

// ProfileUsecase defines profile resolution business logic
type ProfileUsecase interface {
	// EnsureProfile fetches the profile for an identity, creating the
	// default profile when the fetch reports the not-found variant.
	EnsureProfile(ctx context.Context, identity domain.Identity) (*domain.Profile, error)
	GetProfile(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error)
	Rename(ctx context.Context, identityID uuid.UUID, displayName string) (*domain.Profile, error)

	// Usage tracking against the tier gate
	RecordPhotosphereCreated(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error)
	RecordPhotoUploaded(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error)
}

// ProfileGateway sits between usecases and the profile repository
type ProfileGateway interface {
	GetProfile(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error)
	CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profile *domain.Profile) error
}

// ProfileRepositoryPort defines profile data access. Get returns
// domain.ErrProfileNotFound when no row exists. Create resolves
// duplicate-creation races through the store's uniqueness constraint
// and returns the winning row.
type ProfileRepositoryPort interface {
	Get(ctx context.Context, identityID uuid.UUID) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, identityID uuid.UUID) error
}
