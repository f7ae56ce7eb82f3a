package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"account-service/app/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepoLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStoredProfile() *domain.Profile {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Profile{
		ID:                 uuid.MustParse("4f9be571-0e27-4a42-9b25-7c8b9f30f6c4"),
		Email:              "ada@example.com",
		DisplayName:        "ada",
		Tier:               domain.TierFree,
		SubscriptionStatus: domain.SubscriptionActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func profileRows(mock pgxmock.PgxPoolIface, p *domain.Profile) *pgxmock.Rows {
	return mock.NewRows([]string{
		"id", "email", "display_name", "tier", "subscription_status",
		"photospheres_created", "photos_uploaded", "created_at", "updated_at",
	}).AddRow(
		p.ID, p.Email, p.DisplayName, p.Tier, p.SubscriptionStatus,
		p.PhotospheresCreated, p.PhotosUploaded, p.CreatedAt, p.UpdatedAt,
	)
}

func TestProfileRepository_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepository(mock, testRepoLogger())
	stored := testStoredProfile()

	t.Run("returns stored profile", func(t *testing.T) {
		mock.ExpectQuery("SELECT(.|\n)*FROM profiles").
			WithArgs(stored.ID).
			WillReturnRows(profileRows(mock, stored))

		profile, err := repo.Get(context.Background(), stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, profile.ID)
		assert.Equal(t, stored.Email, profile.Email)
		assert.Equal(t, domain.TierFree, profile.Tier)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		missing := uuid.New()
		mock.ExpectQuery("SELECT(.|\n)*FROM profiles").
			WithArgs(missing).
			WillReturnRows(mock.NewRows([]string{
				"id", "email", "display_name", "tier", "subscription_status",
				"photospheres_created", "photos_uploaded", "created_at", "updated_at",
			}))

		_, err := repo.Get(context.Background(), missing)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		mock.ExpectQuery("SELECT(.|\n)*FROM profiles").
			WithArgs(stored.ID).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Get(context.Background(), stored.ID)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrProfileNotFound)
		assert.False(t, domain.IsTimeout(err), "a plain failure must not be retried as a timeout")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query deadline keeps its timeout classification", func(t *testing.T) {
		mock.ExpectQuery("SELECT(.|\n)*FROM profiles").
			WithArgs(stored.ID).
			WillReturnError(fmt.Errorf("timeout: %w", context.DeadlineExceeded))

		_, err := repo.Get(context.Background(), stored.ID)
		require.Error(t, err)
		assert.True(t, domain.IsTimeout(err), "a query deadline must stay in the retryable class")
		assert.NotErrorIs(t, err, domain.ErrProfileNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepository(mock, testRepoLogger())
	stored := testStoredProfile()

	t.Run("inserts profile", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO profiles").
			WithArgs(stored.ID, stored.Email, stored.DisplayName, stored.Tier,
				stored.SubscriptionStatus, stored.PhotospheresCreated,
				stored.PhotosUploaded, stored.CreatedAt, stored.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		created, err := repo.Create(context.Background(), stored)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("losing a creation race returns the winner", func(t *testing.T) {
		winner := testStoredProfile()
		winner.DisplayName = "First Writer"

		mock.ExpectExec("INSERT INTO profiles").
			WithArgs(stored.ID, stored.Email, stored.DisplayName, stored.Tier,
				stored.SubscriptionStatus, stored.PhotospheresCreated,
				stored.PhotosUploaded, stored.CreatedAt, stored.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: uniqueViolation})
		mock.ExpectQuery("SELECT(.|\n)*FROM profiles").
			WithArgs(stored.ID).
			WillReturnRows(profileRows(mock, winner))

		created, err := repo.Create(context.Background(), stored)
		require.NoError(t, err)
		assert.Equal(t, "First Writer", created.DisplayName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other insert failures are wrapped", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO profiles").
			WithArgs(stored.ID, stored.Email, stored.DisplayName, stored.Tier,
				stored.SubscriptionStatus, stored.PhotospheresCreated,
				stored.PhotosUploaded, stored.CreatedAt, stored.UpdatedAt).
			WillReturnError(errors.New("disk full"))

		_, err := repo.Create(context.Background(), stored)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepository(mock, testRepoLogger())
	stored := testStoredProfile()

	t.Run("updates profile", func(t *testing.T) {
		mock.ExpectExec("UPDATE profiles SET").
			WithArgs(stored.ID, stored.Email, stored.DisplayName, stored.Tier,
				stored.SubscriptionStatus, stored.PhotospheresCreated,
				stored.PhotosUploaded, stored.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.Update(context.Background(), stored))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE profiles SET").
			WithArgs(stored.ID, stored.Email, stored.DisplayName, stored.Tier,
				stored.SubscriptionStatus, stored.PhotospheresCreated,
				stored.PhotosUploaded, stored.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.Update(context.Background(), stored)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProfileRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewProfileRepository(mock, testRepoLogger())
	id := uuid.New()

	t.Run("deletes profile", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM profiles").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		require.NoError(t, repo.Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows maps to not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM profiles").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
