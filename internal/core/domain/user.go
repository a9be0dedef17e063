package domain

import (
	"errors"
	"time"
)

// Role is the privilege level attached to a user account.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidRole = errors.New("invalid user role")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrForbidden = errors.New("access forbidden")

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User models an account that can sign in and own or be assigned tasks.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claim is the authenticated identity recovered from a validated access
// token. It lives for a single request and is never persisted.
type Claim struct {
	UserID string
	Role   Role
}
