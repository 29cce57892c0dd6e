package auth

import (
	"context"

	"github.com/rudratic/hr-backend-go/internal/domain/user"
)

// AuthService handles registration, credential and OAuth login, and the
// refresh token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (user.ProfileResponse, error)
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, email, name string, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}
