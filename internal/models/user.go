package models

import "time"

// Role names. ADMIN covers everything MANAGER can do plus user
// administration; EMPLOYEE is sales-only.
const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

type Role struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// User is a system operator. PasswordHash is never serialized.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	Email        string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	FullName     string     `gorm:"size:150;not null" json:"full_name"`
	RoleID       uint       `gorm:"not null" json:"role_id"`
	Role         Role       `json:"role"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) HasRole(name string) bool { return u.Role.Name == name }

func (u *User) IsAdmin() bool    { return u.HasRole(RoleAdmin) }
func (u *User) IsManager() bool  { return u.HasRole(RoleManager) }
func (u *User) IsEmployee() bool { return u.HasRole(RoleEmployee) }

// Capability checks are pure functions of the role name.
func (u *User) CanAccessInventory() bool { return u.IsAdmin() || u.IsManager() }
func (u *User) CanAccessCatalogs() bool  { return u.IsAdmin() || u.IsManager() }
func (u *User) CanAccessReports() bool   { return u.IsAdmin() || u.IsManager() }
func (u *User) CanAccessUsers() bool     { return u.IsAdmin() }
func (u *User) CanAccessSales() bool     { return true }
