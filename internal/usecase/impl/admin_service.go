package impl

import (
	"context"

	domainerrors "dukaan/internal/domain/errors"
	"dukaan/internal/domain/service"
	"dukaan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminRole is the role carried by admin session tokens.
const adminRole = "admin"

type adminService struct {
	otpVerifier service.OTPVerifier
	tokenSvc    service.TokenService
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	OTPVerifier service.OTPVerifier
	TokenSvc    service.TokenService
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		otpVerifier: params.OTPVerifier,
		tokenSvc:    params.TokenSvc,
	}
}

// Login verifies the demo OTP and issues an admin session token. The mobile
// number is only the token subject; any number works with the right OTP.
func (s *adminService) Login(ctx context.Context, mobile, otp string) (*usecase.AdminSession, error) {
	if !s.otpVerifier.Verify(otp) {
		return nil, domainerrors.ErrInvalidOTP
	}

	token, err := s.tokenSvc.GenerateToken(mobile, []string{adminRole})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue admin session token")
	}

	return &usecase.AdminSession{
		AccessToken: token,
		ExpiresIn:   int64(s.tokenSvc.SessionDuration().Seconds()),
	}, nil
}
