package usecase

import "context"

// AdminSession is an issued admin console session.
type AdminSession struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"` // Seconds until the token expires.
}

// AdminUsecase defines the interface for admin console authentication
type AdminUsecase interface {
	// Login verifies the demo OTP and issues an admin session token.
	Login(ctx context.Context, mobile, otp string) (*AdminSession, error)
}
