package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/ErDev77/pc-configurator-sub001/internal/admin/domain"
	"github.com/ErDev77/pc-configurator-sub001/internal/admin/dto"
	apperrors "github.com/ErDev77/pc-configurator-sub001/internal/errors"
	"github.com/ErDev77/pc-configurator-sub001/internal/notify"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	codeTTL           = 15 * time.Minute
)

type AdminService struct {
	repo   domain.AdminRepository
	tokens TokenGenerator
	email  notify.DirectSender
	chat   notify.Sender
}

func NewAdminService(repo domain.AdminRepository, tokens TokenGenerator, email notify.DirectSender, chat notify.Sender) *AdminService {
	return &AdminService{
		repo:   repo,
		tokens: tokens,
		email:  email,
		chat:   chat,
	}
}

// Login checks credentials and issues a fresh session token. Lookup
// misses and password mismatches are indistinguishable to the caller.
func (s *AdminService) Login(ctx context.Context, input dto.LoginInput) (string, *domain.Admin, error) {
	admin, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", nil, err
	}

	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)) != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(admin.ID, admin.Email, admin.TwoFactorEnabled, false)
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}

func (s *AdminService) ChangePassword(ctx context.Context, adminID int, input dto.ChangePasswordInput) error {
	if len(input.NewPassword) < minPasswordLength {
		return apperrors.ErrPasswordTooShort
	}

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return apperrors.ErrAdminNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return apperrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, adminID, string(hashed))
}

// EnableTwoFactor persists the chosen method and sends a verification
// code over it: SMTP for "email", the operations chat bot for "app".
func (s *AdminService) EnableTwoFactor(ctx context.Context, adminID int, email, method string) error {
	if !domain.ValidTwoFactorMethod(method) {
		return apperrors.ErrInvalidTwoFAMethod
	}

	if err := s.repo.EnableTwoFactor(ctx, adminID, method); err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	if err := s.repo.CreateVerificationCode(ctx, &domain.VerificationCode{
		AdminID:   adminID,
		Code:      code,
		ExpiresAt: time.Now().Add(codeTTL),
	}); err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(codeTTL.Minutes()))
	if method == domain.TwoFactorMethodEmail {
		return s.email.SendTo(ctx, email, "Two-factor verification code", body)
	}
	return s.chat.Send(ctx, fmt.Sprintf("2FA code for %s", email), body)
}

func (s *AdminService) DisableTwoFactor(ctx context.Context, adminID int) error {
	if err := s.repo.DisableTwoFactor(ctx, adminID); err != nil {
		return err
	}
	return s.repo.DeleteVerificationCodes(ctx, adminID)
}

// VerifyTwoFactor consumes a code and re-issues the session token with
// the verified flag set. Consumption is a single conditional update, so
// concurrent submissions of one code succeed at most once.
func (s *AdminService) VerifyTwoFactor(ctx context.Context, claims *SessionClaims, code string) (string, error) {
	ok, err := s.repo.ConsumeVerificationCode(ctx, claims.AdminID, code)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperrors.ErrCodeInvalidOrUsed
	}

	return s.tokens.Sign(claims.AdminID, claims.Email, true, true)
}

// TwoFactorStatus reports enablement and method from storage but the
// verified flag from the caller's claims: verification is a property of
// the current session, not of the account.
func (s *AdminService) TwoFactorStatus(ctx context.Context, claims *SessionClaims) (*dto.TwoFactorStatusOutput, error) {
	admin, err := s.repo.GetByID(ctx, claims.AdminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, apperrors.ErrAdminNotFound
	}

	return &dto.TwoFactorStatusOutput{
		Enabled:  admin.TwoFactorEnabled,
		Verified: claims.TwoFactorVerified,
		Method:   admin.TwoFactorMethod,
	}, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
