package impl

import (
	"context"
	"testing"
	"time"

	"dukaan/config"
	"dukaan/internal/infra/auth"
	"dukaan/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminService(t *testing.T) usecase.AdminUsecase {
	t.Helper()

	cfg := &config.Config{Admin: &config.AdminConfig{DemoOTP: "1234", SessionTTL: time.Hour}}
	cfg.SecretKey.Access = "test-secret"

	verifier, err := auth.NewOTPVerifier(cfg)
	require.NoError(t, err)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAdminService(AdminServiceParams{
		OTPVerifier: verifier,
		TokenSvc:    tokenSvc,
	})
}

func TestAdminService_Login_IssuesSessionForValidOTP(t *testing.T) {
	svc := newAdminService(t)

	session, err := svc.Login(context.Background(), "9876543210", "1234")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, int64(3600), session.ExpiresIn)
}

func TestAdminService_Login_RejectsWrongOTP(t *testing.T) {
	svc := newAdminService(t)

	_, err := svc.Login(context.Background(), "9876543210", "0000")
	require.Error(t, err)
	assert.Equal(t, "INVALID_OTP", appErrCode(t, err))
}
