package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErDev77/pc-configurator-sub001/internal/admin/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type AdminRepository struct {
	db PgxIface
}

func NewAdminRepository(db PgxIface) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `
		SELECT id, email, password_hash, two_factor_enabled, COALESCE(two_factor_method, ''), created_at, updated_at
		FROM admins
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var admin domain.Admin
	err := row.Scan(&admin.ID, &admin.Email, &admin.PasswordHash,
		&admin.TwoFactorEnabled, &admin.TwoFactorMethod, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return &admin, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int) (*domain.Admin, error) {
	query := `
		SELECT id, email, password_hash, two_factor_enabled, COALESCE(two_factor_method, ''), created_at, updated_at
		FROM admins
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var admin domain.Admin
	err := row.Scan(&admin.ID, &admin.Email, &admin.PasswordHash,
		&admin.TwoFactorEnabled, &admin.TwoFactorMethod, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by id: %w", err)
	}

	return &admin, nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admins SET password_hash = $1, updated_at = now() WHERE id = $2
	`, passwordHash, id)

	return err
}

func (r *AdminRepository) EnableTwoFactor(ctx context.Context, id int, method string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admins SET two_factor_enabled = true, two_factor_method = $1, updated_at = now() WHERE id = $2
	`, method, id)

	return err
}

func (r *AdminRepository) DisableTwoFactor(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE admins SET two_factor_enabled = false, two_factor_method = NULL, updated_at = now() WHERE id = $1
	`, id)

	return err
}

func (r *AdminRepository) CreateVerificationCode(ctx context.Context, code *domain.VerificationCode) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO verification_codes (admin_id, code, expires_at, used, created_at)
		VALUES ($1, $2, $3, false, now())
	`, code.AdminID, code.Code, code.ExpiresAt)

	return err
}

// ConsumeVerificationCode marks the code used in a single conditional
// update so the check and the consumption cannot interleave. The
// affected-row count tells whether a live code matched.
func (r *AdminRepository) ConsumeVerificationCode(ctx context.Context, adminID int, code string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE verification_codes
		SET used = true
		WHERE admin_id = $1 AND code = $2 AND used = false AND expires_at > now()
	`, adminID, code)
	if err != nil {
		return false, fmt.Errorf("failed to consume verification code: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *AdminRepository) DeleteVerificationCodes(ctx context.Context, adminID int) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM verification_codes WHERE admin_id = $1
	`, adminID)

	return err
}
