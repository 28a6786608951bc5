package auth

import (
	"context"
	"fmt"

	firebaseAuth "firebase.google.com/go/v4/auth"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"

	"jalusi/models"
)

// FirebaseProvider signs in against Firebase Authentication. The Admin SDK
// cannot check passwords, so password sign-in goes through the Identity
// Toolkit API with the project's web API key.
type FirebaseProvider struct {
	Admin   *firebaseAuth.Client
	Toolkit *identitytoolkit.Service
}

func NewFirebaseProvider(ctx context.Context, admin *firebaseAuth.Client, apiKey string) (*FirebaseProvider, error) {
	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("firebase: error creating identity toolkit client: %w", err)
	}
	return &FirebaseProvider{Admin: admin, Toolkit: toolkit}, nil
}

func (p *FirebaseProvider) SignInWithPassword(ctx context.Context, email, password string) (*models.Identity, error) {
	resp, err := p.Toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("firebase: password sign-in: %w", err)
	}
	return &models.Identity{
		UID:         resp.LocalId,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
		Provider:    "password",
	}, nil
}

func (p *FirebaseProvider) SignUp(ctx context.Context, email, password, displayName string) (*models.Identity, error) {
	params := (&firebaseAuth.UserToCreate{}).Email(email).Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}
	record, err := p.Admin.CreateUser(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("firebase: create user: %w", err)
	}
	return &models.Identity{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		Provider:    "password",
	}, nil
}

func (p *FirebaseProvider) VerifyIDToken(ctx context.Context, idToken string) (*models.Identity, error) {
	token, err := p.Admin.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("firebase: verify id token: %w", err)
	}
	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	return &models.Identity{
		UID:         token.UID,
		Email:       email,
		DisplayName: name,
		Provider:    token.Firebase.SignInProvider,
	}, nil
}
