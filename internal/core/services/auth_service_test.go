package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/duasfl8r/vestat/internal/apperrors"
	"github.com/duasfl8r/vestat/internal/core/services"
	"github.com/duasfl8r/vestat/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("caixa123")
	require.NoError(t, err)

	svc := services.NewAuthService(services.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
		JWTSecret:         "secret",
		JWTIssuer:         "vestat",
		JWTExpiry:         time.Hour,
	})
	ctx := context.Background()

	token, err := svc.Login(ctx, "admin", "caixa123")
	require.NoError(t, err)
	claims, err := utils.ParseAndValidateJWT(token, "secret", "vestat")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Login(ctx, "someone", "caixa123")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_LoginWithoutCredentialsConfigured(t *testing.T) {
	svc := services.NewAuthService(services.AuthConfig{JWTSecret: "secret"})

	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
