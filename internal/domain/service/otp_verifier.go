package service

// OTPVerifier checks a submitted OTP against the configured demo credential.
// This is a stand-in for a real OTP delivery flow; the credential is fixed
// per deployment.
type OTPVerifier interface {
	// Verify reports whether the submitted OTP matches.
	Verify(otp string) bool
}
