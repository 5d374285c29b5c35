package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/ErDev77/pc-configurator-sub001/internal/admin/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionDuration bounds both the token and the cookie carrying it.
const SessionDuration = 24 * time.Hour

type TokenGenerator interface {
	Sign(adminID int, email string, twoFAEnabled, twoFAVerified bool) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
}

// SessionClaims is the decoded payload of an admin session token. The
// two-factor flags are trusted for the token's lifetime without
// re-reading storage; a change of 2FA state only becomes visible when a
// new token is issued.
type SessionClaims struct {
	jwt.RegisteredClaims
	AdminID           int    `json:"adminId"`
	Email             string `json:"email"`
	TwoFactorEnabled  bool   `json:"twoFactorEnabled,omitempty"`
	TwoFactorVerified bool   `json:"twoFactorVerified,omitempty"`
}

type TokenService struct {
	secret string
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: secret}
}

func (ts *TokenService) Sign(adminID int, email string, twoFAEnabled, twoFAVerified bool) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		AdminID:           adminID,
		Email:             email,
		TwoFactorEnabled:  twoFAEnabled,
		TwoFactorVerified: twoFAVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.secret))
}

// Verify parses and validates a session token. Any failure, bad
// signature, wrong algorithm or expired token alike, means the caller
// is unauthenticated; none of them is a server error.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
