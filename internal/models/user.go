package models

import "time"

// RoleName is the closed set of roles the system knows about. Route
// allow-lists and the activity feed are keyed by this type, never by raw
// strings.
type RoleName string

const (
	RoleAdmin            RoleName = "Admin"
	RoleWarehouseManager RoleName = "Warehouse Manager"
	RoleTransportManager RoleName = "Transport Manager"
	RoleAccounts         RoleName = "Accounts"
	RoleManagement       RoleName = "Management"
)

// AllRoles lists every role, in seed order.
var AllRoles = []RoleName{
	RoleAdmin,
	RoleWarehouseManager,
	RoleTransportManager,
	RoleAccounts,
	RoleManagement,
}

func (r RoleName) Valid() bool {
	switch r {
	case RoleAdmin, RoleWarehouseManager, RoleTransportManager, RoleAccounts, RoleManagement:
		return true
	}
	return false
}

type Role struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	RoleName    string `json:"role_name" gorm:"unique;not null"`
	Description string `json:"description"`
}

const (
	UserActive   = "active"
	UserInactive = "inactive"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	RoleID    uint      `json:"role_id" gorm:"not null"`
	Role      Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Status    string    `json:"status" gorm:"default:'active'"` // active, inactive
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserProfile is the public projection returned to clients. It never carries
// the password hash.
type UserProfile struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   RoleName `json:"role"`
	Status string   `json:"status"`
}

func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   RoleName(u.Role.RoleName),
		Status: u.Status,
	}
}
