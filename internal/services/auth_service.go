package services

import (
	"context"
	"errors"
	"time"

	"coal-erp/internal/auth"
	"coal-erp/internal/models"
	"coal-erp/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionStore is the per-token session record keeping logout honest: a token
// whose JTI is gone no longer resolves, whatever its expiry says.
type SessionStore interface {
	SaveSession(ctx context.Context, jti string, userID uint, ttl time.Duration) error
	SessionExists(ctx context.Context, jti string) (bool, error)
	DeleteSession(ctx context.Context, jti string) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.UserProfile, error)
	ResolveToken(ctx context.Context, token string) (*models.UserProfile, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    repository.UserRepository
	sessions SessionStore
	tokens   *auth.TokenManager
}

func NewAuthService(users repository.UserRepository, sessions SessionStore, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, sessions: sessions, tokens: tokens}
}

// Login verifies the credentials and mints a bearer token. Unknown email,
// inactive account and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.Status != models.UserActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, jti, err := s.tokens.Generate(user.ID, user.Email, user.Role.RoleName)
	if err != nil {
		return "", nil, err
	}

	if err := s.sessions.SaveSession(ctx, jti, user.ID, s.tokens.TTL()); err != nil {
		return "", nil, err
	}

	return token, user.Profile(), nil
}

func (s *authService) ResolveToken(ctx context.Context, token string) (*models.UserProfile, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	active, err := s.sessions.SessionExists(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if user.Status != models.UserActive {
		return nil, ErrUnauthorized
	}

	return user.Profile(), nil
}

// Logout revokes the token's session record. Best effort: an unparsable
// token is already unusable, so it is acknowledged without error.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	return s.sessions.DeleteSession(ctx, claims.ID)
}
