package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked  = errors.New("refresh token has been revoked")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
	ErrSamePassword         = errors.New("new password must differ from the current one")
)
