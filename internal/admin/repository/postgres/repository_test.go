package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ErDev77/pc-configurator-sub001/internal/admin/domain"
	repo "github.com/ErDev77/pc-configurator-sub001/internal/admin/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminColumns = []string{"id", "email", "password_hash", "two_factor_enabled", "two_factor_method", "created_at", "updated_at"}

func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAdminRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("a@b.com").
			WillReturnRows(pgxmock.NewRows(adminColumns).
				AddRow(1, "a@b.com", "hash", true, "email", time.Now(), time.Now()))

		admin, err := r.GetByEmail(ctx, "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, 1, admin.ID)
		assert.Equal(t, "a@b.com", admin.Email)
		assert.True(t, admin.TwoFactorEnabled)
		assert.Equal(t, "email", admin.TwoFactorMethod)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("nobody@b.com").
			WillReturnError(pgx.ErrNoRows)

		admin, err := r.GetByEmail(ctx, "nobody@b.com")
		require.NoError(t, err)
		assert.Nil(t, admin)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("a@b.com").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, "a@b.com")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAdminRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(adminColumns).
				AddRow(1, "a@b.com", "hash", false, "", time.Now(), time.Now()))

		admin, err := r.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, admin.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(42).
			WillReturnError(pgx.ErrNoRows)

		admin, err := r.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, admin)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAdminRepository(mock)

	mock.ExpectExec("UPDATE admins SET password_hash").
		WithArgs("new-hash", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, r.UpdatePassword(context.Background(), 1, "new-hash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTwoFactorToggles(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAdminRepository(mock)
	ctx := context.Background()

	mock.ExpectExec("UPDATE admins SET two_factor_enabled = true").
		WithArgs("email", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.EnableTwoFactor(ctx, 1, "email"))

	mock.ExpectExec("UPDATE admins SET two_factor_enabled = false").
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.DisableTwoFactor(ctx, 1))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerificationCodes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAdminRepository(mock)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		expires := time.Now().Add(15 * time.Minute)
		mock.ExpectExec("INSERT INTO verification_codes").
			WithArgs(1, "123456", expires).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.CreateVerificationCode(ctx, &domain.VerificationCode{
			AdminID:   1,
			Code:      "123456",
			ExpiresAt: expires,
		})
		assert.NoError(t, err)
	})

	t.Run("consume live code", func(t *testing.T) {
		mock.ExpectExec("UPDATE verification_codes").
			WithArgs(1, "123456").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := r.ConsumeVerificationCode(ctx, 1, "123456")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	// A used or expired code matches zero rows; the same conditional
	// update reports it without a separate read.
	t.Run("consume dead code", func(t *testing.T) {
		mock.ExpectExec("UPDATE verification_codes").
			WithArgs(1, "123456").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := r.ConsumeVerificationCode(ctx, 1, "123456")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete all for admin", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM verification_codes").
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		assert.NoError(t, r.DeleteVerificationCodes(ctx, 1))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
