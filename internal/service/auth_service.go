package service

import (
	"context"
	"time"

	"github.com/hakimdiab/seamnote/internal/pkg/errs"
	"github.com/hakimdiab/seamnote/internal/pkg/jwt"
	"github.com/hakimdiab/seamnote/internal/pkg/password"
)

// AuthService guards the consultant dashboard. The deployment is single
// operator, so the credential lives in config rather than a user table.
type AuthService struct {
	user      string
	passHash  string
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(user, passHash string, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{user: user, passHash: passHash, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Login(ctx context.Context, user, plainPassword string) (string, error) {
	if user != s.user {
		return "", errs.ErrUnauthorized
	}
	if !password.Verify(s.passHash, plainPassword) {
		return "", errs.ErrUnauthorized
	}
	token, err := jwt.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}
