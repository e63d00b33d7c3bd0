package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AntonMilev36/fitness-service/internal/models"
)

// TokenIdentity is what a verified token proves: who the caller is and the
// role they held at issue time. The role is informational only; the auth
// middleware always re-reads the current role from the database.
type TokenIdentity struct {
	UserPK uint
	Role   models.UserRole
}

// TokenService issues and verifies the bearer tokens used by the API.
type TokenService interface {
	Issue(user *models.User) (string, error)
	Verify(token string) (*TokenIdentity, error)
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type tokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiry time.Duration) TokenService {
	return &tokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *tokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.PK), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the identity bound to the token. Malformed, expired and
// badly signed tokens all fail with the same ErrInvalidToken so callers
// cannot distinguish why a credential was rejected.
func (s *tokenService) Verify(tokenString string) (*TokenIdentity, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	pk, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || pk == 0 {
		return nil, ErrInvalidToken
	}

	role := models.UserRole(claims.Role)
	if !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &TokenIdentity{UserPK: uint(pk), Role: role}, nil
}
