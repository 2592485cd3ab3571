package repository

import (
	"coal-erp/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(id uint, fields map[string]interface{}) (int64, error)
	Delete(id uint) (int64, error)
	GetRoles() ([]models.Role, error)
	GetRoleByID(id uint) (*models.Role, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Role").Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(id uint, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *userRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.User{}, id)
	return result.RowsAffected, result.Error
}

func (r *userRepository) GetRoles() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Order("id").Find(&roles).Error
	return roles, err
}

func (r *userRepository) GetRoleByID(id uint) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}
