package services

import (
	"context"
	"testing"
	"time"

	"coal-erp/internal/auth"
	"coal-erp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*models.User
	roles map[uint]*models.Role
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[string]*models.User),
		roles: make(map[uint]*models.Role),
	}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = uint(len(r.users) + 1)
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if user, ok := r.users[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(id uint, fields map[string]interface{}) (int64, error) {
	for _, user := range r.users {
		if user.ID == id {
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeUserRepo) Delete(id uint) (int64, error) {
	for email, user := range r.users {
		if user.ID == id {
			delete(r.users, email)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeUserRepo) GetRoles() ([]models.Role, error) {
	var out []models.Role
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *fakeUserRepo) GetRoleByID(id uint) (*models.Role, error) {
	if role, ok := r.roles[id]; ok {
		return role, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSessionStore struct {
	sessions map[string]uint
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]uint)}
}

func (s *fakeSessionStore) SaveSession(_ context.Context, jti string, userID uint, _ time.Duration) error {
	s.sessions[jti] = userID
	return nil
}

func (s *fakeSessionStore) SessionExists(_ context.Context, jti string) (bool, error) {
	_, ok := s.sessions[jti]
	return ok, nil
}

func (s *fakeSessionStore) DeleteSession(_ context.Context, jti string) error {
	delete(s.sessions, jti)
	return nil
}

func seedTestUser(t *testing.T, repo *fakeUserRepo, email, password, status string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
		RoleID:   1,
		Role:     models.Role{ID: 1, RoleName: string(models.RoleAccounts)},
		Status:   status,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func newTestAuthService(repo *fakeUserRepo, sessions *fakeSessionStore) AuthService {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(repo, sessions, tokens)
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	seedTestUser(t, repo, "neha.gupta@coalcorp.com", "password123", models.UserActive)
	svc := newTestAuthService(repo, sessions)

	token, profile, err := svc.Login(context.Background(), "neha.gupta@coalcorp.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "neha.gupta@coalcorp.com", profile.Email)
	assert.Equal(t, models.RoleAccounts, profile.Role)
	assert.Len(t, sessions.sessions, 1)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	seedTestUser(t, repo, "active@coalcorp.com", "password123", models.UserActive)
	seedTestUser(t, repo, "inactive@coalcorp.com", "password123", models.UserInactive)
	svc := newTestAuthService(repo, sessions)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@coalcorp.com", "password123"},
		{"wrong password", "active@coalcorp.com", "wrong"},
		{"inactive account", "inactive@coalcorp.com", "password123"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tc.email, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
	assert.Empty(t, sessions.sessions)
}

func TestResolveToken(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	seedTestUser(t, repo, "neha.gupta@coalcorp.com", "password123", models.UserActive)
	svc := newTestAuthService(repo, sessions)

	token, _, err := svc.Login(context.Background(), "neha.gupta@coalcorp.com", "password123")
	require.NoError(t, err)

	profile, err := svc.ResolveToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "neha.gupta@coalcorp.com", profile.Email)

	_, err = svc.ResolveToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogoutRevokesToken(t *testing.T) {
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	seedTestUser(t, repo, "neha.gupta@coalcorp.com", "password123", models.UserActive)
	svc := newTestAuthService(repo, sessions)

	token, _, err := svc.Login(context.Background(), "neha.gupta@coalcorp.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	// Token is still well formed but its session record is gone.
	_, err = svc.ResolveToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Logging out garbage is acknowledged without error.
	assert.NoError(t, svc.Logout(context.Background(), "garbage"))
}
