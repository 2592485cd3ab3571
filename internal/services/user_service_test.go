package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"coal-erp/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRolesCache struct {
	cached []byte
	fail   bool
}

func (c *fakeRolesCache) GetCachedRoles(_ context.Context, dest interface{}) error {
	if c.fail || c.cached == nil {
		return errors.New("roles not cached")
	}
	return json.Unmarshal(c.cached, dest)
}

func (c *fakeRolesCache) CacheRoles(_ context.Context, roles interface{}) error {
	if c.fail {
		return errors.New("cache unavailable")
	}
	data, err := json.Marshal(roles)
	if err != nil {
		return err
	}
	c.cached = data
	return nil
}

func TestCreateUserValidation(t *testing.T) {
	repo := newFakeUserRepo()
	repo.roles[1] = &models.Role{ID: 1, RoleName: string(models.RoleAccounts)}
	svc := NewUserService(repo, &fakeRolesCache{})

	_, err := svc.CreateUser("", "", "", 0)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "role_id")

	id, err := svc.CreateUser("Neha Gupta", "neha.gupta@coalcorp.com", "password123", 1)
	require.NoError(t, err)
	assert.NotZero(t, id)

	// Stored password is a bcrypt hash, never the plaintext.
	stored := repo.users["neha.gupta@coalcorp.com"]
	assert.NotEqual(t, "password123", stored.Password)
	assert.Equal(t, models.UserActive, stored.Status)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.roles[1] = &models.Role{ID: 1, RoleName: string(models.RoleAccounts)}
	svc := NewUserService(repo, &fakeRolesCache{})

	_, err := svc.CreateUser("Neha Gupta", "neha.gupta@coalcorp.com", "password123", 1)
	require.NoError(t, err)

	_, err = svc.CreateUser("Someone Else", "neha.gupta@coalcorp.com", "other", 1)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateUserUnknownRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, &fakeRolesCache{})

	_, err := svc.CreateUser("Neha Gupta", "neha.gupta@coalcorp.com", "password123", 9)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "invalid role")
}

func TestUpdateUserStatusEnum(t *testing.T) {
	repo := newFakeUserRepo()
	repo.roles[1] = &models.Role{ID: 1, RoleName: string(models.RoleAccounts)}
	svc := NewUserService(repo, &fakeRolesCache{})

	id, err := svc.CreateUser("Neha Gupta", "neha.gupta@coalcorp.com", "password123", 1)
	require.NoError(t, err)

	err = svc.UpdateUser(id, "Neha Gupta", "neha.gupta@coalcorp.com", 1, "suspended")
	assert.True(t, IsValidation(err))

	require.NoError(t, svc.UpdateUser(id, "Neha Gupta", "neha.gupta@coalcorp.com", 1, models.UserInactive))
	assert.ErrorIs(t, svc.UpdateUser(99, "X", "x@coalcorp.com", 1, models.UserActive), ErrNotFound)
}

func TestListRolesUsesCache(t *testing.T) {
	repo := newFakeUserRepo()
	repo.roles[1] = &models.Role{ID: 1, RoleName: string(models.RoleAdmin)}
	cache := &fakeRolesCache{}
	svc := NewUserService(repo, cache)

	roles, err := svc.ListRoles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.NotNil(t, cache.cached)

	// Second call is served from the cache even if the repo changes.
	repo.roles[2] = &models.Role{ID: 2, RoleName: string(models.RoleAccounts)}
	roles, err = svc.ListRoles(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}

func TestListRolesSurvivesCacheFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.roles[1] = &models.Role{ID: 1, RoleName: string(models.RoleAdmin)}
	svc := NewUserService(repo, &fakeRolesCache{fail: true})

	roles, err := svc.ListRoles(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}
