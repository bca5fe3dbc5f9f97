package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mlipatova/airgate/internal/apperr"
	"github.com/mlipatova/airgate/internal/domain"
	"github.com/mlipatova/airgate/internal/repository"
	"github.com/mlipatova/airgate/internal/session"
)

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// CurrentUser resolves the user behind a token. A missing, expired or
	// dangling session yields (nil, nil); errors are infrastructure only.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
}

// LoginResult carries the session deadline alongside the token so transport
// artifacts (the auth cookie) expire on the same instant as the session.
type LoginResult struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	users    repository.UserRepository
	registry session.Registry
}

func NewAuthService(users repository.UserRepository, registry session.Registry) *AuthService {
	return &AuthService{users: users, registry: registry}
}

// ScopesForRole derives session scopes deterministically from the role.
func ScopesForRole(role domain.Role) []string {
	if role == domain.RoleAdmin {
		return []string{"read", "write", "admin"}
	}
	return []string{"read"}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.Unauthenticated("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	sess, err := s.registry.Issue(ctx, user.ID, ScopesForRole(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: *user, Token: sess.Token, ExpiresAt: sess.ExpiresAt}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	sess, err := s.registry.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.registry.Revoke(ctx, token)
}

var _ AuthUseCase = (*AuthService)(nil)
