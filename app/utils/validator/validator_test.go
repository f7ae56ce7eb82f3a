package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test struct for validation
type TestAccount struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	Tier     string `json:"tier" validate:"required,tier"`
	Status   string `json:"status" validate:"required,subscription_status"`
}

type TestOAuthStart struct {
	Provider string `json:"provider" validate:"required,oauth_provider"`
	ReturnTo string `json:"return_to" validate:"omitempty,url"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     interface{}
		wantError bool
		checkErr  func(*testing.T, error)
	}{
		{
			name: "valid account",
			input: TestAccount{
				Email:    "test@example.com",
				Password: "SecurePass123!",
				Tier:     "creator",
				Status:   "active",
			},
			wantError: false,
		},
		{
			name: "invalid email",
			input: TestAccount{
				Email:    "invalid-email",
				Password: "SecurePass123!",
				Tier:     "free",
				Status:   "active",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "email")
			},
		},
		{
			name: "missing required fields",
			input: TestAccount{
				Email: "test@example.com",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "password")
				assert.Contains(t, validationErr.Errors, "tier")
				assert.Contains(t, validationErr.Errors, "status")
			},
		},
		{
			name: "weak password",
			input: TestAccount{
				Email:    "test@example.com",
				Password: "weak",
				Tier:     "free",
				Status:   "active",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "password")
			},
		},
		{
			name: "unknown tier",
			input: TestAccount{
				Email:    "test@example.com",
				Password: "SecurePass123!",
				Tier:     "platinum",
				Status:   "active",
			},
			wantError: true,
			checkErr: func(t *testing.T, err error) {
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, validationErr.Errors, "tier")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if tt.wantError {
				assert.Error(t, err)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ValidateVar(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		field     interface{}
		tag       string
		wantError bool
	}{
		{
			name:      "valid email",
			field:     "test@example.com",
			tag:       "required,email",
			wantError: false,
		},
		{
			name:      "invalid email",
			field:     "invalid-email",
			tag:       "required,email",
			wantError: true,
		},
		{
			name:      "empty required field",
			field:     "",
			tag:       "required",
			wantError: true,
		},
		{
			name:      "valid UUID",
			field:     "550e8400-e29b-41d4-a716-446655440000",
			tag:       "required,uuid4",
			wantError: false,
		},
		{
			name:      "invalid UUID",
			field:     "not-a-uuid",
			tag:       "required,uuid4",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateVar(tt.field, tt.tag)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"valid email", "test@example.com", true},
		{"valid email with subdomain", "user@mail.example.com", true},
		{"invalid email - no @", "testexample.com", false},
		{"invalid email - no domain", "test@", false},
		{"empty email", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid password", "SecurePass123!", true},
		{"valid password with symbols", "MyP@ssw0rd#123", true},
		{"too short", "Sec1!", false},
		{"no uppercase", "securepass123!", false},
		{"no lowercase", "SECUREPASS123!", false},
		{"no number", "SecurePass!", false},
		{"no special char", "SecurePass123", false},
		{"empty password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPassword(tt.password))
		})
	}
}

func TestCustomValidators(t *testing.T) {
	v := New()

	t.Run("tier validation", func(t *testing.T) {
		validTiers := []string{"free", "creator", "studio"}
		invalidTiers := []string{"platinum", "pro", "trial"}

		for _, tier := range validTiers {
			err := v.ValidateVar(tier, "tier")
			assert.NoError(t, err, "Tier %s should be valid", tier)
		}

		for _, tier := range invalidTiers {
			err := v.ValidateVar(tier, "tier")
			assert.Error(t, err, "Tier %s should be invalid", tier)
		}
	})

	t.Run("subscription_status validation", func(t *testing.T) {
		validStatuses := []string{"active", "past_due", "canceled"}
		invalidStatuses := []string{"deleted", "unknown", "trial"}

		for _, status := range validStatuses {
			err := v.ValidateVar(status, "subscription_status")
			assert.NoError(t, err, "Status %s should be valid", status)
		}

		for _, status := range invalidStatuses {
			err := v.ValidateVar(status, "subscription_status")
			assert.Error(t, err, "Status %s should be invalid", status)
		}
	})

	t.Run("oauth_provider validation", func(t *testing.T) {
		validProviders := []string{"google", "apple", "github"}
		invalidProviders := []string{"myspace", "ldap", ""}

		for _, provider := range validProviders {
			err := v.ValidateVar(provider, "oauth_provider")
			assert.NoError(t, err, "Provider %s should be valid", provider)
		}

		for _, provider := range invalidProviders {
			err := v.ValidateVar(provider, "oauth_provider")
			assert.Error(t, err, "Provider %s should be invalid", provider)
		}
	})
}

func TestValidationError(t *testing.T) {
	v := New()

	account := TestAccount{
		Email: "invalid-email",
	}

	err := v.Validate(account)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)

	errorMsg := validationErr.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "email")

	assert.Contains(t, validationErr.Errors, "email")
	assert.Contains(t, validationErr.Errors, "password")
	assert.Contains(t, validationErr.Errors, "tier")
	assert.Contains(t, validationErr.Errors, "status")
}

func TestOAuthStartValidation(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     TestOAuthStart
		wantError bool
	}{
		{
			name:      "valid provider with return URL",
			input:     TestOAuthStart{Provider: "google", ReturnTo: "https://studio.photosphere.example.com/booth"},
			wantError: false,
		},
		{
			name:      "valid provider without return URL",
			input:     TestOAuthStart{Provider: "github"},
			wantError: false,
		},
		{
			name:      "unknown provider",
			input:     TestOAuthStart{Provider: "myspace"},
			wantError: true,
		},
		{
			name:      "malformed return URL",
			input:     TestOAuthStart{Provider: "google", ReturnTo: "not a url"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
