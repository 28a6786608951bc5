package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"jalusi/metrics"
	"jalusi/models"
	"jalusi/utils"
)

func (s *DefaultAuthService) SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, utils.NewValidationError("Please enter your email and password.")
	}
	identity, err := s.Provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, s.fail("password", MsgInvalidCredentials, err)
	}
	return s.issue("password", identity)
}

func (s *DefaultAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, utils.NewValidationError("Please enter your email and password.")
	}
	if len(req.Password) < 6 {
		return nil, utils.NewValidationError("Password must be at least 6 characters.")
	}
	identity, err := s.Provider.SignUp(ctx, email, req.Password, strings.TrimSpace(req.DisplayName))
	if err != nil {
		return nil, s.fail("signup", MsgSignUpFailed, err)
	}
	return s.issue("signup", identity)
}

func (s *DefaultAuthService) SignInWithGoogle(ctx context.Context, idToken string) (*models.AuthResponse, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, s.fail("google", MsgGoogleFailed, nil)
	}
	identity, err := s.Provider.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, s.fail("google", MsgGoogleFailed, err)
	}
	return s.issue("google", identity)
}

func (s *DefaultAuthService) issue(method string, identity *models.Identity) (*models.AuthResponse, error) {
	token, expires, err := s.Tokens.GenerateToken(identity.UID, identity.Email)
	if err != nil {
		s.Logger.Error("Failed to sign session token", zap.String("uid", identity.UID), zap.Error(err))
		metrics.AuthAttempts.WithLabelValues(method, "error").Inc()
		return nil, err
	}
	metrics.AuthAttempts.WithLabelValues(method, "success").Inc()
	s.Logger.Info("Signed in", zap.String("uid", identity.UID), zap.String("method", method))
	return &models.AuthResponse{
		ID:          identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		Token:       token,
		ExpiresAt:   expires,
	}, nil
}

// fail logs the provider error and returns only the user-facing message.
func (s *DefaultAuthService) fail(method, msg string, cause error) error {
	metrics.AuthAttempts.WithLabelValues(method, "failure").Inc()
	s.Logger.Warn("Authentication failed", zap.String("method", method), zap.Error(cause))
	return utils.NewAuthError(msg, cause)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
