package domain

import "context"

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id int) (*Admin, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	EnableTwoFactor(ctx context.Context, id int, method string) error
	DisableTwoFactor(ctx context.Context, id int) error
	CreateVerificationCode(ctx context.Context, code *VerificationCode) error
	// ConsumeVerificationCode atomically marks a matching, unused,
	// unexpired code as used and reports whether one was consumed.
	ConsumeVerificationCode(ctx context.Context, adminID int, code string) (bool, error)
	DeleteVerificationCodes(ctx context.Context, adminID int) error
}
