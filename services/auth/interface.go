package auth

import (
	"context"

	"go.uber.org/zap"

	"jalusi/models"
	"jalusi/utils"
)

// IdentityProvider is the external account system. Every method is a single
// remote call.
type IdentityProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*models.Identity, error)
	SignUp(ctx context.Context, email, password, displayName string) (*models.Identity, error)
	// VerifyIDToken checks a Google-issued ID token and returns the account
	// it belongs to.
	VerifyIDToken(ctx context.Context, idToken string) (*models.Identity, error)
}

// AuthService signs staff in and hands out session tokens.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error)
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error)
	SignInWithGoogle(ctx context.Context, idToken string) (*models.AuthResponse, error)
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Provider IdentityProvider
	Tokens   *utils.TokenIssuer
	Logger   *zap.Logger
}

const (
	MsgInvalidCredentials = "Invalid email or password."
	MsgGoogleFailed       = "Google Sign-In failed. Please try again."
	MsgSignUpFailed       = "Sign-up failed. Please try again."
)
