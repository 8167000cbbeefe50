package user

import (
	"fmt"
	"strings"
	"time"

	"ticketboard/internal/shared/authorization"
)

// User is an account that can report, own and move tickets.
type User struct {
	id        uint
	name      string
	email     string
	role      authorization.UserRole
	createdAt time.Time
}

func NewUser(name, email string, role authorization.UserRole) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email: %s", email)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		name:      name,
		email:     strings.ToLower(strings.TrimSpace(email)),
		role:      role,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructUser(id uint, name, email string, role authorization.UserRole, createdAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		role:      authorization.ParseUserRole(string(role)),
		createdAt: createdAt,
	}
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Name() string                 { return u.name }
func (u *User) Email() string                { return u.email }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) CreatedAt() time.Time         { return u.createdAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	u.id = id
	return nil
}

// Actor returns the permission context for this user.
func (u *User) Actor() *authorization.Actor {
	return authorization.NewActor(u.id, u.role)
}
