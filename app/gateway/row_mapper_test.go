package gateway

import (
	"errors"
	"testing"
	"time"

	"account-service/app/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapProfileRow(t *testing.T) {
	id := uuid.MustParse("4f9be571-0e27-4a42-9b25-7c8b9f30f6c4")
	createdAt := time.Date(2024, 11, 2, 10, 30, 0, 0, time.UTC)

	t.Run("maps complete row", func(t *testing.T) {
		row := map[string]interface{}{
			"id":                   id.String(),
			"email":                "ada@example.com",
			"display_name":         "Ada",
			"subscription_tier":    "creator",
			"subscription_status":  "past_due",
			"photospheres_created": float64(12),
			"photos_uploaded":      float64(40),
			"created_at":           createdAt.Format(time.RFC3339),
			"updated_at":           createdAt.Add(time.Hour).Format(time.RFC3339),
		}

		profile, err := MapProfileRow(row)
		require.NoError(t, err)
		assert.Equal(t, id, profile.ID)
		assert.Equal(t, "Ada", profile.DisplayName)
		assert.Equal(t, domain.TierCreator, profile.Tier)
		assert.Equal(t, domain.SubscriptionPastDue, profile.SubscriptionStatus)
		assert.Equal(t, 12, profile.PhotospheresCreated)
		assert.Equal(t, 40, profile.PhotosUploaded)
		assert.Equal(t, createdAt, profile.CreatedAt.UTC())
	})

	t.Run("fills defaults for sparse row", func(t *testing.T) {
		row := map[string]interface{}{
			"id":    id.String(),
			"email": "ada@example.com",
		}

		profile, err := MapProfileRow(row)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", profile.DisplayName, "display name falls back to email")
		assert.Equal(t, domain.TierFree, profile.Tier)
		assert.Equal(t, domain.SubscriptionActive, profile.SubscriptionStatus)
		assert.Zero(t, profile.PhotospheresCreated)
		assert.Zero(t, profile.PhotosUploaded)
		assert.False(t, profile.CreatedAt.IsZero())
		assert.Equal(t, profile.CreatedAt, profile.UpdatedAt)
	})

	t.Run("accepts native ints and timestamps", func(t *testing.T) {
		row := map[string]interface{}{
			"id":                   id.String(),
			"email":                "ada@example.com",
			"photospheres_created": 3,
			"photos_uploaded":      int64(7),
			"created_at":           createdAt,
		}

		profile, err := MapProfileRow(row)
		require.NoError(t, err)
		assert.Equal(t, 3, profile.PhotospheresCreated)
		assert.Equal(t, 7, profile.PhotosUploaded)
		assert.Equal(t, createdAt, profile.CreatedAt)
	})

	rejections := []struct {
		name string
		row  map[string]interface{}
	}{
		{
			name: "nil row",
			row:  nil,
		},
		{
			name: "missing id",
			row:  map[string]interface{}{"email": "ada@example.com"},
		},
		{
			name: "malformed id",
			row:  map[string]interface{}{"id": "not-a-uuid", "email": "ada@example.com"},
		},
		{
			name: "missing email",
			row:  map[string]interface{}{"id": id.String()},
		},
		{
			name: "wrong type for email",
			row:  map[string]interface{}{"id": id.String(), "email": 42},
		},
		{
			name: "wrong type for counter",
			row: map[string]interface{}{
				"id":                   id.String(),
				"email":                "ada@example.com",
				"photospheres_created": "many",
			},
		},
		{
			name: "malformed timestamp",
			row: map[string]interface{}{
				"id":         id.String(),
				"email":      "ada@example.com",
				"created_at": "yesterday",
			},
		},
	}

	for _, tt := range rejections {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := MapProfileRow(tt.row)
			require.Error(t, err)
			if tt.row != nil {
				var validationErr *domain.ValidationError
				assert.True(t, errors.As(err, &validationErr),
					"expected a validation error, got %v", err)
			}
		})
	}
}
