package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/duasfl8r/vestat/internal/apperrors"
	portssvc "github.com/duasfl8r/vestat/internal/core/ports/services"
	"github.com/duasfl8r/vestat/internal/utils"
)

// AuthConfig is what the auth service needs from the application configuration.
type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string // bcrypt
	JWTSecret         string
	JWTIssuer         string
	JWTExpiry         time.Duration
}

// authService authenticates the single back-office operator and issues HS256 tokens.
type authService struct {
	BaseService
	cfg AuthConfig
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg AuthConfig, options ...ServiceOption) portssvc.AuthSvc {
	return &authService{BaseService: newBaseService(options...), cfg: cfg}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPasswordHash == "" {
		s.LogError(ctx, apperrors.ErrUnauthorized, "Login attempted but no operator credentials are configured")
		return "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	passOK := utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash)
	if !userOK || !passOK {
		s.GetLogger(ctx).Warn("Invalid login attempt", slog.String("username", username))
		return "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(username, s.cfg.JWTSecret, s.cfg.JWTExpiry, s.cfg.JWTIssuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return "", apperrors.NewAppError(500, "failed to sign token", err)
	}
	s.LogInfo(ctx, "Operator logged in", slog.String("username", username))
	return token, nil
}
