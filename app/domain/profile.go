package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the billing status of a profile
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Profile is the application-level record extending an Identity with
// tier and usage data. At most one Profile exists per Identity; the
// profiles table enforces this with its primary key, not the resolver.
type Profile struct {
	ID                  uuid.UUID          `json:"id"`
	Email               string             `json:"email"`
	DisplayName         string             `json:"display_name"`
	Tier                TierName           `json:"tier"`
	SubscriptionStatus  SubscriptionStatus `json:"subscription_status"`
	PhotospheresCreated int                `json:"photospheres_created"`
	PhotosUploaded      int                `json:"photos_uploaded"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// NewProfile creates the default profile for a fresh identity:
// free tier, active status, zero usage counters.
func NewProfile(identityID uuid.UUID, email string) (*Profile, error) {
	if identityID == uuid.Nil {
		return nil, fmt.Errorf("identity ID is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	now := time.Now()

	profile := &Profile{
		ID:                 identityID,
		Email:              email,
		DisplayName:        displayNameFromEmail(email),
		Tier:               TierFree,
		SubscriptionStatus: SubscriptionActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return profile, nil
}

// Rename updates the display name
func (p *Profile) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("display name cannot be empty")
	}
	p.DisplayName = name
	p.UpdatedAt = time.Now()
	return nil
}

// ChangeTier changes the subscription tier with validation against the
// given tier table
func (p *Profile) ChangeTier(table *TierTable, tier TierName) error {
	if !table.Known(tier) {
		return fmt.Errorf("unknown tier: %s", tier)
	}
	p.Tier = tier
	p.UpdatedAt = time.Now()
	return nil
}

// RecordPhotosphere increments the photosphere usage counter
func (p *Profile) RecordPhotosphere() {
	p.PhotospheresCreated++
	p.UpdatedAt = time.Now()
}

// RecordPhotoUpload increments the photo usage counter
func (p *Profile) RecordPhotoUpload() {
	p.PhotosUploaded++
	p.UpdatedAt = time.Now()
}

// Usage returns the profile's counters keyed by gated resource
func (p *Profile) Usage() Usage {
	return Usage{
		ResourcePhotospheres: p.PhotospheresCreated,
		ResourcePhotos:       p.PhotosUploaded,
	}
}

func displayNameFromEmail(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}
