package domain

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// Role is the single access level of a user
type Role string

// Role types
const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a role name case-insensitively, defaulting to RoleUser
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleSeller:
		return RoleSeller
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// User represents the user entity (domain model)
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"not null"` // Never expose password in JSON
	Role         Role      `json:"role" gorm:"type:varchar(16);not null;default:'user'"`
	MobileNumber string    `json:"mobileNumber"`
	Gender       string    `json:"gender"`
	DOB          string    `json:"dob"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// IsUser checks if user has the plain user role
func (u *User) IsUser() bool { return u.Role == RoleUser }

// IsSeller checks if user has seller role
func (u *User) IsSeller() bool { return u.Role == RoleSeller }

// IsAdmin checks if user has admin role
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// MarshalJSON adds the isUser, isSeller and isAdmin flags clients still read
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return json.Marshal(struct {
		plain
		IsUser   bool `json:"isUser"`
		IsSeller bool `json:"isSeller"`
		IsAdmin  bool `json:"isAdmin"`
	}{
		plain:    plain(u),
		IsUser:   u.IsUser(),
		IsSeller: u.IsSeller(),
		IsAdmin:  u.IsAdmin(),
	})
}

// Profile holds the owner editable fields
type Profile struct {
	MobileNumber string
	Gender       string
	DOB          string
	Location     string
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
}
