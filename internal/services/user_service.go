package services

import (
	"context"
	"errors"
	"log"

	"coal-erp/internal/models"
	"coal-erp/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RolesCache caches the seeded roles list; it only changes on reseed.
type RolesCache interface {
	GetCachedRoles(ctx context.Context, dest interface{}) error
	CacheRoles(ctx context.Context, roles interface{}) error
}

type UserService interface {
	ListUsers() ([]models.User, error)
	CreateUser(name, email, password string, roleID uint) (uint, error)
	UpdateUser(id uint, name, email string, roleID uint, status string) error
	DeleteUser(id uint) error
	ListRoles(ctx context.Context) ([]models.Role, error)
}

type userService struct {
	users repository.UserRepository
	roles RolesCache
}

func NewUserService(users repository.UserRepository, roles RolesCache) UserService {
	return &userService{users: users, roles: roles}
}

func (s *userService) ListUsers() ([]models.User, error) {
	return s.users.GetAll()
}

func (s *userService) CreateUser(name, email, password string, roleID uint) (uint, error) {
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if roleID == 0 {
		missing = append(missing, "role_id")
	}
	if len(missing) > 0 {
		return 0, missingFields(missing...)
	}

	if _, err := s.users.GetByEmail(email); err == nil {
		return 0, invalidInput("user with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	if _, err := s.users.GetRoleByID(roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, invalidInput("invalid role")
		}
		return 0, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		RoleID:   roleID,
		Status:   models.UserActive,
	}
	if err := s.users.Create(user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *userService) UpdateUser(id uint, name, email string, roleID uint, status string) error {
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if roleID == 0 {
		missing = append(missing, "role_id")
	}
	if len(missing) > 0 {
		return missingFields(missing...)
	}
	if status != models.UserActive && status != models.UserInactive {
		return invalidInput("invalid status %q", status)
	}

	affected, err := s.users.Update(id, map[string]interface{}{
		"name":    name,
		"email":   email,
		"role_id": roleID,
		"status":  status,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *userService) DeleteUser(id uint) error {
	affected, err := s.users.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *userService) ListRoles(ctx context.Context) ([]models.Role, error) {
	var cached []models.Role
	if err := s.roles.GetCachedRoles(ctx, &cached); err == nil {
		return cached, nil
	}

	roles, err := s.users.GetRoles()
	if err != nil {
		return nil, err
	}
	if err := s.roles.CacheRoles(ctx, roles); err != nil {
		log.Printf("Warning: failed to cache roles: %v", err)
	}
	return roles, nil
}
