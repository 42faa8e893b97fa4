package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/storemate/storemate-backend-go/internal/domain/auth"
	"github.com/storemate/storemate-backend-go/internal/domain/user"
	"github.com/storemate/storemate-backend-go/internal/pkg/database"
	"github.com/storemate/storemate-backend-go/internal/pkg/jwt"
	"github.com/storemate/storemate-backend-go/internal/pkg/oauth"
	"github.com/storemate/storemate-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db            *database.DB
	userRepo      user.Repository
	jwtService    jwt.Service
	jwtRepo       postgresql.JWTRepository
	googleService oauth.GoogleService
}

// NewAuthService creates a new instance of auth.Service. googleService may
// be nil when Google OAuth is not configured.
func NewAuthService(db *database.DB, userRepo user.Repository, jwtService jwt.Service, jwtRepo postgresql.JWTRepository, googleService oauth.GoogleService) auth.Service {
	return &AuthServiceImpl{
		db:            db,
		userRepo:      userRepo,
		jwtService:    jwtService,
		jwtRepo:       jwtRepo,
		googleService: googleService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// issueTokens generates an access/refresh pair and persists the refresh
// token inside a transaction.
func (a *AuthServiceImpl) issueTokens(ctx context.Context, u user.User, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(ctx context.Context) error {
		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(u.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.jwtRepo.CreateRefreshToken(ctx, u.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, session); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Register implements auth.Service. New accounts start as staff; admins are
// promoted directly in the database or by an existing admin.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hash,
		Role:         user.RoleStaff,
		IsActive:     true,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(ctx, created, auth.SessionTrackingRequest{})
}

// Login implements auth.Service.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueTokens(ctx, userData, session)
}

// LoginWithGoogle implements auth.Service.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, userAgent string) (string, error) {
	if a.googleService == nil {
		return "", auth.ErrOAuthNotConfigured
	}
	state := a.googleService.GenerateState(userAgent)
	return a.googleService.RedirectURL(state), nil
}

// OAuthCallbackGoogle implements auth.Service. The Google identity must
// match an existing account; self-provisioning through OAuth is not
// offered.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if a.googleService == nil {
		return auth.TokenResponse{}, auth.ErrOAuthNotConfigured
	}

	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !info.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	userData, err := a.userRepo.LinkGoogleAccount(ctx, info.GoogleID, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, err
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueTokens(ctx, userData, session)
}

// verifyRefreshToken decodes the token, checks its type claim and asks the
// store whether it has been revoked or expired.
func (a *AuthServiceImpl) verifyRefreshToken(ctx context.Context, token string) (string, error) {
	decoded, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), token)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	claims, err := decoded.AsMap(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", auth.ErrInvalidToken
	}

	// In-process cache first, then the store.
	if a.jwtService.IsTokenRevoked(token) {
		return "", auth.ErrRefreshTokenRevoked
	}
	revoked, err := a.jwtRepo.IsRefreshTokenRevoked(ctx, token)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	if revoked {
		return "", auth.ErrRefreshTokenRevoked
	}

	return userID, nil
}

// RefreshToken implements auth.Service. Tokens rotate: the presented
// refresh token is revoked and a fresh pair issued.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userID, err := a.verifyRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by ID: %w", err)
	}
	if !userData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	if err := a.jwtRepo.RevokeRefreshToken(ctx, req.RefreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	a.jwtService.RevokeToken(req.RefreshToken)

	return a.issueTokens(ctx, userData, session)
}

// Logout implements auth.Service.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.verifyRefreshToken(ctx, refreshToken); err != nil {
		return err
	}
	a.jwtService.RevokeToken(refreshToken)
	return a.jwtRepo.RevokeRefreshToken(ctx, refreshToken)
}
