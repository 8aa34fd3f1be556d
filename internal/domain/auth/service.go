package auth

import (
	"context"
)

type AuthService interface {
	// Register creates an establishment, its owner administrator and the owner's CEO employee record
	Register(ctx context.Context, req RegisterRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, req RefreshTokenRequest) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	GenerateSSEToken(ctx context.Context) (SSETokenResponse, error)
}
