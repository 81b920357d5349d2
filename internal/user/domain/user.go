package domain

import (
	"errors"
	"time"
)

// Role types
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists indicates the username or email is already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidCredentials indicates a failed login attempt. The same
	// error covers unknown email and wrong password so the response
	// doesn't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User represents an account owning a set of production records.
// Every other entity in the system is scoped to a user id.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never expose password in JSON
	Role      string    `json:"role" gorm:"not null;default:'admin'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindByUsername(username string) (*User, error)
	FindByEmail(email string) (*User, error)
}
