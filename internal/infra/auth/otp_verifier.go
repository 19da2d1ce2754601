package auth

import (
	"golang.org/x/crypto/bcrypt"

	"dukaan/config"
	"dukaan/internal/domain/service"
)

// bcryptOTPVerifier checks submitted OTPs against a bcrypt hash of the
// configured demo credential, so the plaintext never leaves construction.
type bcryptOTPVerifier struct {
	otpHash []byte
}

// NewOTPVerifier is the constructor for bcryptOTPVerifier.
func NewOTPVerifier(cfg *config.Config) (service.OTPVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.DemoOTP), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &bcryptOTPVerifier{otpHash: hash}, nil
}

// Verify reports whether the submitted OTP matches the configured one.
func (v *bcryptOTPVerifier) Verify(otp string) bool {
	return bcrypt.CompareHashAndPassword(v.otpHash, []byte(otp)) == nil
}
