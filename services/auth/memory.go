package auth

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"jalusi/models"
	"jalusi/utils"
)

type memoryAccount struct {
	identity     models.Identity
	passwordHash []byte
}

// MemoryProvider keeps accounts in process with bcrypt-hashed passwords. It
// stands in for Firebase in development and tests. Google ID tokens are
// registered up front with RegisterGoogleToken.
type MemoryProvider struct {
	mu      sync.RWMutex
	ids     utils.IDGenerator
	byEmail map[string]*memoryAccount
	google  map[string]models.Identity
}

func NewMemoryProvider(ids utils.IDGenerator) *MemoryProvider {
	return &MemoryProvider{
		ids:     ids,
		byEmail: make(map[string]*memoryAccount),
		google:  make(map[string]models.Identity),
	}
}

func (p *MemoryProvider) SignInWithPassword(_ context.Context, email, password string) (*models.Identity, error) {
	p.mu.RLock()
	acct, ok := p.byEmail[email]
	p.mu.RUnlock()
	if !ok {
		return nil, errors.New("EMAIL_NOT_FOUND")
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return nil, errors.New("INVALID_PASSWORD")
	}
	identity := acct.identity
	return &identity, nil
}

func (p *MemoryProvider) SignUp(_ context.Context, email, password, displayName string) (*models.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.byEmail[email]; exists {
		return nil, errors.New("EMAIL_EXISTS")
	}
	acct := &memoryAccount{
		identity: models.Identity{
			UID:         p.ids.NewID(),
			Email:       email,
			DisplayName: displayName,
			Provider:    "password",
		},
		passwordHash: hash,
	}
	p.byEmail[email] = acct
	identity := acct.identity
	return &identity, nil
}

func (p *MemoryProvider) VerifyIDToken(_ context.Context, idToken string) (*models.Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	identity, ok := p.google[idToken]
	if !ok {
		return nil, errors.New("invalid ID token")
	}
	return &identity, nil
}

// RegisterGoogleToken makes idToken verify as email.
func (p *MemoryProvider) RegisterGoogleToken(idToken, email, displayName string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.google[idToken] = models.Identity{
		UID:         p.ids.NewID(),
		Email:       email,
		DisplayName: displayName,
		Provider:    "google.com",
	}
}
