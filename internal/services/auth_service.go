package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ayushkamni/desi-premium/internal/models"
	"github.com/ayushkamni/desi-premium/internal/repository"
	"github.com/ayushkamni/desi-premium/internal/token"
)

const minPasswordLen = 8

type AuthService struct {
	users    repository.UserRepository
	tokens   *token.Manager
	hashCost int
	log      *zap.SugaredLogger
}

func NewAuthService(users repository.UserRepository, tokens *token.Manager, hashCost int, log *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, tokens: tokens, hashCost: hashCost, log: log}
}

// NormalizeEmail fixes the case policy: emails are compared and stored
// lower-cased and trimmed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a pending member account. It never issues a token;
// registration is not login.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: string(hash),
		Role:         models.RoleMember,
		IsApproved:   false,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	s.log.Infow("user registered", "user", u.ID.Hex(), "email", u.Email)
	return u, nil
}

// Login verifies credentials and the approval gate. Unknown email and wrong
// password return the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !u.Approved() {
		return "", nil, ErrPendingApproval
	}
	tok, err := s.tokens.Issue(u.ID.Hex(), u.Role, u.Name)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return tok, u, nil
}

// Reverify checks point-in-time claims against the live store. Authorization
// normally trusts claims until expiry; this is the opt-in hook for callers
// that need a fresh answer.
func (s *AuthService) Reverify(ctx context.Context, claims *token.Claims) (*models.User, error) {
	u, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
