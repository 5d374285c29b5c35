package domain

import "time"

type Admin struct {
	ID               int
	Email            string
	PasswordHash     string
	TwoFactorEnabled bool
	TwoFactorMethod  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// VerificationCode is a single-use second-factor code. A code may only
// be consumed while unused and before ExpiresAt.
type VerificationCode struct {
	ID        int
	AdminID   int
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

const (
	TwoFactorMethodEmail = "email"
	TwoFactorMethodApp   = "app"
)

func ValidTwoFactorMethod(method string) bool {
	return method == TwoFactorMethodEmail || method == TwoFactorMethodApp
}
