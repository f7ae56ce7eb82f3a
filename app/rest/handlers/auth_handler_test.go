package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"account-service/app/domain"
	"account-service/app/mocks"
	"account-service/app/utils/validator"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	return e
}

func testHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(e *echo.Echo, target, body, sessionKey string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sessionKey != "" {
		req.Header.Set("X-Session-Key", sessionKey)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	identity := &domain.Identity{ID: uuid.New(), Email: "ada@example.com"}

	tests := []struct {
		name           string
		body           string
		sessionKey     string
		mockSetup      func(*mocks.MockAuthUsecase)
		expectedStatus int
		expectedBody   func(*testing.T, []byte)
	}{
		{
			name:       "valid credentials return identity",
			body:       `{"email":"ada@example.com","password":"Sup3r-secret"}`,
			sessionKey: "client-1",
			mockSetup: func(m *mocks.MockAuthUsecase) {
				m.EXPECT().
					PasswordLogin(gomock.Any(), "client-1", "ada@example.com", "Sup3r-secret").
					Return(identity, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: func(t *testing.T, body []byte) {
				var resp IdentityResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, identity.ID.String(), resp.ID)
				assert.Equal(t, "ada@example.com", resp.Email)
			},
		},
		{
			name:       "rejected credentials map to 401",
			body:       `{"email":"ada@example.com","password":"Wrong-pass-1"}`,
			sessionKey: "client-1",
			mockSetup: func(m *mocks.MockAuthUsecase) {
				m.EXPECT().
					PasswordLogin(gomock.Any(), "client-1", "ada@example.com", "Wrong-pass-1").
					Return(nil, domain.NewAuthError(domain.ErrCodeInvalidCredentials, "invalid credentials", nil))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody: func(t *testing.T, body []byte) {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, domain.ErrCodeInvalidCredentials, resp.Code)
			},
		},
		{
			name:           "missing session key is rejected before the usecase",
			body:           `{"email":"ada@example.com","password":"Sup3r-secret"}`,
			sessionKey:     "",
			mockSetup:      func(*mocks.MockAuthUsecase) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed email fails validation",
			body:           `{"email":"not-an-email","password":"Sup3r-secret"}`,
			sessionKey:     "client-1",
			mockSetup:      func(*mocks.MockAuthUsecase) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password fails validation",
			body:           `{"email":"ada@example.com","password":"short"}`,
			sessionKey:     "client-1",
			mockSetup:      func(*mocks.MockAuthUsecase) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authUsecase := mocks.NewMockAuthUsecase(ctrl)
			tt.mockSetup(authUsecase)

			handler := NewAuthHandler(authUsecase, testHandlerLogger())
			c, rec := postJSON(newTestEcho(), "/v1/auth/login", tt.body, tt.sessionKey)

			require.NoError(t, handler.Login(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != nil {
				tt.expectedBody(t, rec.Body.Bytes())
			}
		})
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	identity := &domain.Identity{ID: uuid.New(), Email: "new@example.com"}

	t.Run("successful signup returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		authUsecase.EXPECT().
			PasswordSignup(gomock.Any(), "client-1", "new@example.com", "Sup3r-secret").
			Return(identity, nil)

		handler := NewAuthHandler(authUsecase, testHandlerLogger())
		c, rec := postJSON(newTestEcho(), "/v1/auth/signup",
			`{"email":"new@example.com","password":"Sup3r-secret"}`, "client-1")

		require.NoError(t, handler.Signup(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("existing account maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		authUsecase.EXPECT().
			PasswordSignup(gomock.Any(), "client-1", "taken@example.com", "Sup3r-secret").
			Return(nil, domain.NewAuthError(domain.ErrCodeUserExists, "account already exists", nil))

		handler := NewAuthHandler(authUsecase, testHandlerLogger())
		c, rec := postJSON(newTestEcho(), "/v1/auth/signup",
			`{"email":"taken@example.com","password":"Sup3r-secret"}`, "client-1")

		require.NoError(t, handler.Signup(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandler_OAuth(t *testing.T) {
	t.Run("returns provider redirect URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		authUsecase.EXPECT().
			OAuthLogin(gomock.Any(), "client-1", "google", "/studio").
			Return("https://accounts.google.com/o/oauth2/auth?flow=abc", nil)

		handler := NewAuthHandler(authUsecase, testHandlerLogger())
		c, rec := postJSON(newTestEcho(), "/v1/auth/oauth",
			`{"provider":"google","return_to":"/studio"}`, "client-1")

		require.NoError(t, handler.OAuth(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp OAuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.RedirectURL, "accounts.google.com")
	})

	t.Run("missing provider fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := NewAuthHandler(mocks.NewMockAuthUsecase(ctrl), testHandlerLogger())
		c, rec := postJSON(newTestEcho(), "/v1/auth/oauth", `{}`, "client-1")

		require.NoError(t, handler.OAuth(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("successful logout returns 204", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		authUsecase.EXPECT().
			Logout(gomock.Any(), "client-1", "token-abc").
			Return(nil)

		handler := NewAuthHandler(authUsecase, testHandlerLogger())
		c, rec := postJSON(newTestEcho(), "/v1/auth/logout", "", "client-1")
		c.Request().Header.Set("X-Session-Token", "token-abc")

		require.NoError(t, handler.Logout(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("revocation failure still reports local sign-out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authUsecase := mocks.NewMockAuthUsecase(ctrl)
		authUsecase.EXPECT().
			Logout(gomock.Any(), "client-1", "token-abc").
			Return(domain.ErrServiceUnavailable)

		handler := NewAuthHandler(authUsecase, testHandlerLogger())
		c, rec := postJSON(newTestEcho(), "/v1/auth/logout", "", "client-1")
		c.Request().Header.Set("X-Session-Token", "token-abc")

		require.NoError(t, handler.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "signed_out_locally")
	})
}
