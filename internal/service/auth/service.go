package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/holiday-manager/ponto-backend-go/internal/domain/administrator"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/auth"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/employee"
	"github.com/holiday-manager/ponto-backend-go/internal/domain/establishment"
	"github.com/holiday-manager/ponto-backend-go/internal/pkg/jwt"
	"github.com/holiday-manager/ponto-backend-go/internal/repository/postgresql"
	employeeservice "github.com/holiday-manager/ponto-backend-go/internal/service/employee"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	txManager         postgresql.TxManager
	establishmentRepo establishment.EstablishmentRepository
	employeeRepo      employee.EmployeeRepository
	defaultTimezone   string
	administrator.AdministratorRepository
	jwt.Service
	postgresql.JWTRepository
}

func NewAuthService(
	txManager postgresql.TxManager,
	administratorRepository administrator.AdministratorRepository,
	establishmentRepo establishment.EstablishmentRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	jwtRepository postgresql.JWTRepository,
	defaultTimezone string,
) auth.AuthService {
	return &AuthServiceImpl{
		txManager:               txManager,
		establishmentRepo:       establishmentRepo,
		employeeRepo:            employeeRepo,
		defaultTimezone:         defaultTimezone,
		AdministratorRepository: administratorRepository,
		Service:                 jwtService,
		JWTRepository:           jwtRepository,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// issueTokens generates an access/refresh pair and stores the refresh token, joining any transaction in ctx
func (a *AuthServiceImpl) issueTokens(ctx context.Context, admin administrator.Administrator, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(admin.ID, admin.Email, admin.EstablishmentID, admin.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(admin.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	err = a.CreateRefreshToken(ctx, admin.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}
	return tokenResponse, nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, registerReq auth.RegisterRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := registerReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	email := strings.ToLower(strings.TrimSpace(registerReq.Email))

	exists, err := a.ExistsByEmail(ctx, email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.TokenResponse{}, administrator.ErrEmailExists
	}

	hashedPassword, err := a.hashPassword(registerReq.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashedPIN, err := employeeservice.HashPIN(registerReq.OwnerPIN)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	timezone := a.defaultTimezone
	if registerReq.Timezone != nil && *registerReq.Timezone != "" {
		timezone = *registerReq.Timezone
	}

	var tokenResponse auth.TokenResponse
	var owner administrator.Administrator
	err = a.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		est, err := a.establishmentRepo.Create(txCtx, establishment.Establishment{
			Name:     strings.TrimSpace(registerReq.EstablishmentName),
			Timezone: timezone,
		})
		if err != nil {
			return err
		}

		owner, err = a.AdministratorRepository.Create(txCtx, administrator.Administrator{
			EstablishmentID: est.ID,
			Name:            strings.TrimSpace(registerReq.AdminName),
			Email:           email,
			PasswordHash:    hashedPassword,
			Role:            administrator.RoleOwner,
		})
		if err != nil {
			return err
		}

		// The owner also punches on the kiosk and authorizes privileged actions there
		_, err = a.employeeRepo.Create(txCtx, employee.Employee{
			EstablishmentID: est.ID,
			Name:            owner.Name,
			Role:            employee.RoleCEO,
			Salary:          decimal.Zero,
			PINHash:         &hashedPIN,
		})
		if err != nil {
			return err
		}

		tokenResponse, err = a.issueTokens(txCtx, owner, sessionTrackReq)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	slog.Info("Establishment registered",
		"establishment_id", owner.EstablishmentID,
		"administrator_id", owner.ID,
		"timezone", timezone,
	)

	return tokenResponse, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	admin, err := a.GetByEmail(ctx, strings.TrimSpace(loginReq.Email))
	if err != nil {
		if errors.Is(err, administrator.ErrAdministratorNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get administrator by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, admin, sessionTrackReq)
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	// 1. Verify signature, expiry and token type
	userID, err := a.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check DB for revocation/expiry
	isRevoked, err := a.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 3. Reload the administrator so role changes apply on refresh
	admin, err := a.AdministratorRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, administrator.ErrAdministratorNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, err
	}

	var accessTokenResponse auth.AccessTokenResponse
	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err =
		a.GenerateAccessToken(admin.ID, admin.Email, admin.EstablishmentID, admin.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}

// Logout implements auth.AuthService. Revoking an unknown or revoked token is a no-op.
func (a *AuthServiceImpl) Logout(ctx context.Context, req auth.RefreshTokenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return a.RevokeRefreshToken(ctx, req.RefreshToken)
}

// ChangePassword implements auth.AuthService. Every session of the administrator is revoked afterwards.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	admin, err := a.AdministratorRepository.GetByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongCurrentPassword
	}
	if req.CurrentPassword == req.NewPassword {
		return auth.ErrSamePassword
	}

	hashedPassword, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = a.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := a.UpdatePassword(txCtx, admin.ID, hashedPassword); err != nil {
			return err
		}
		return a.RevokeAllForAdministrator(txCtx, admin.ID)
	})
	if err != nil {
		return err
	}

	slog.Info("Administrator password changed", "administrator_id", admin.ID)
	return nil
}

// GenerateSSEToken implements auth.AuthService.
func (a *AuthServiceImpl) GenerateSSEToken(ctx context.Context) (auth.SSETokenResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return auth.SSETokenResponse{}, err
	}

	token, expiresIn, err := a.Service.GenerateSSEToken(claims.UserID, claims.EstablishmentID)
	if err != nil {
		return auth.SSETokenResponse{}, fmt.Errorf("failed to generate SSE token: %w", err)
	}

	return auth.SSETokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}
