package authorization

import "strings"

// UserRole is stored upper-case in the users table and in JWT claims.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

var knownRoles = [...]UserRole{RoleAdmin, RoleUser}

func (r UserRole) String() string { return string(r) }

// IsAdmin reports whether r may move and assign any ticket.
func (r UserRole) IsAdmin() bool { return r == RoleAdmin }

func (r UserRole) IsValid() bool {
	for _, known := range knownRoles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseUserRole matches s against the known roles ignoring case and
// surrounding space. Anything else, including "", is a plain user.
func ParseUserRole(s string) UserRole {
	s = strings.TrimSpace(s)
	for _, known := range knownRoles {
		if strings.EqualFold(s, string(known)) {
			return known
		}
	}
	return RoleUser
}
