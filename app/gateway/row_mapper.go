package gateway

import (
	"fmt"
	"time"

	"account-service/app/domain"

	"github.com/google/uuid"
)

// MapProfileRow converts a snake_case profile row, as exported from the
// hosted backend, into a domain.Profile. Every field has an explicit
// default; only the identity id and email are mandatory. This replaces
// the duck-typed field mapping the legacy frontend did on raw rows.
func MapProfileRow(row map[string]interface{}) (*domain.Profile, error) {
	if row == nil {
		return nil, fmt.Errorf("profile row cannot be nil")
	}

	idStr, err := stringField(row, "id", "")
	if err != nil {
		return nil, err
	}
	if idStr == "" {
		return nil, domain.NewValidationError("id", nil, "profile row is missing id")
	}
	identityID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, domain.NewValidationError("id", idStr, "profile row id is not a UUID")
	}

	email, err := stringField(row, "email", "")
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, domain.NewValidationError("email", nil, "profile row is missing email")
	}

	displayName, err := stringField(row, "display_name", "")
	if err != nil {
		return nil, err
	}

	tier, err := stringField(row, "subscription_tier", string(domain.TierFree))
	if err != nil {
		return nil, err
	}

	status, err := stringField(row, "subscription_status", string(domain.SubscriptionActive))
	if err != nil {
		return nil, err
	}

	photospheres, err := intField(row, "photospheres_created", 0)
	if err != nil {
		return nil, err
	}

	photos, err := intField(row, "photos_uploaded", 0)
	if err != nil {
		return nil, err
	}

	createdAt, err := timeField(row, "created_at", time.Now())
	if err != nil {
		return nil, err
	}

	updatedAt, err := timeField(row, "updated_at", createdAt)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:                  identityID,
		Email:               email,
		DisplayName:         displayName,
		Tier:                domain.TierName(tier),
		SubscriptionStatus:  domain.SubscriptionStatus(status),
		PhotospheresCreated: photospheres,
		PhotosUploaded:      photos,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}

	if profile.DisplayName == "" {
		profile.DisplayName = email
	}

	return profile, nil
}

// stringField reads an optional string field, rejecting wrong types
func stringField(row map[string]interface{}, key, fallback string) (string, error) {
	value, ok := row[key]
	if !ok || value == nil {
		return fallback, nil
	}
	str, ok := value.(string)
	if !ok {
		return "", domain.NewValidationError(key, value, fmt.Sprintf("field %s must be a string", key))
	}
	return str, nil
}

// intField reads an optional numeric field. JSON decoding delivers
// numbers as float64; both forms are accepted.
func intField(row map[string]interface{}, key string, fallback int) (int, error) {
	value, ok := row[key]
	if !ok || value == nil {
		return fallback, nil
	}
	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, domain.NewValidationError(key, value, fmt.Sprintf("field %s must be a number", key))
	}
}

// timeField reads an optional RFC3339 timestamp field
func timeField(row map[string]interface{}, key string, fallback time.Time) (time.Time, error) {
	value, ok := row[key]
	if !ok || value == nil {
		return fallback, nil
	}
	switch t := value.(type) {
	case time.Time:
		return t, nil
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return time.Time{}, domain.NewValidationError(key, value, fmt.Sprintf("field %s must be an RFC3339 timestamp", key))
		}
		return parsed, nil
	default:
		return time.Time{}, domain.NewValidationError(key, value, fmt.Sprintf("field %s must be a timestamp", key))
	}
}
